package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"ckd-food-advisor/internal/app"
	"ckd-food-advisor/internal/cache"
	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/config"
	"ckd-food-advisor/internal/database"
	"ckd-food-advisor/internal/food"
	"ckd-food-advisor/internal/httpapi"
	"ckd-food-advisor/internal/logging"
	"ckd-food-advisor/internal/metrics"
	"ckd-food-advisor/internal/profile"
)

const serviceName = "ckd-food-advisor"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd, args := os.Args[1], os.Args[2:]

	// issue-token needs neither the catalog nor the database.
	if cmd == "issue-token" {
		if err := runIssueToken(cfg, args); err != nil {
			logger.Fatal("issue-token failed", zap.Error(err))
		}
		return
	}

	ctx := context.Background()
	application, closeAll, err := build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer closeAll()

	switch cmd {
	case "serve":
		err = runServe(cfg, application, logger)
	case "analyze":
		err = runAnalyze(ctx, application, args)
	case "search":
		err = runSearch(ctx, application, args)
	case "metrics":
		err = runMetrics(ctx, application, args)
	case "metrics-cleanup":
		err = runMetricsCleanup(ctx, application, args)
	case "health":
		err = printJSON(application.Health(ctx))
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
		closeAll()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", cmd), zap.Error(err))
		closeAll()
		os.Exit(1)
	}
}

func build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app.App, func(), error) {
	catalog := food.NewSeededCatalog()
	if cfg.CatalogPath != "" {
		c, err := food.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
		catalog = c
	}
	logger.Info("catalog loaded", zap.Int("foods", catalog.Len()), zap.String("path", cfg.CatalogPath))

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	results, closeCache, err := cache.Connect(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
		Prefix:   cfg.CachePrefix,
		Catalog:  catalog.Fingerprint(),
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if cfg.RedisAddr != "" {
		logger.Info("analysis cache enabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Duration("ttl", cfg.CacheTTL),
			zap.String("namespace", cache.Namespace(cfg.CachePrefix, catalog.Fingerprint())),
		)
	}

	application := app.NewApp(
		catalog,
		profile.NewRepository(db.SQL),
		metrics.NewStore(db.SQL),
		results,
		logger,
		app.WithDatabasePath(cfg.DatabasePath),
	)

	var closed bool
	closeAll := func() {
		if closed {
			return
		}
		closed = true
		if err := closeCache(); err != nil {
			logger.Warn("failed to close cache", zap.Error(err))
		}
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	}
	return application, closeAll, nil
}

func runServe(cfg *config.Config, application *app.App, logger *zap.Logger) error {
	router := httpapi.NewRouter(application, httpapi.Options{
		Logger:    logger,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.Bool("auth", cfg.JWTSecret != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}

func runAnalyze(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	foodID := fs.Int("food", 0, "Catalog food id")
	stage := fs.Int("stage", 0, "CKD stage (1-5)")
	hasDM := fs.Bool("dm", false, "Patient has diabetes")
	gender := fs.String("gender", "Female", "Male or Female")
	age := fs.Int("age", 60, "Age in years")
	height := fs.Float64("height", 165, "Height in cm")
	weight := fs.Float64("weight", 65, "Weight in kg")
	var hba1c, serumK, egfr optionalFloat
	fs.Var(&hba1c, "hba1c", "HbA1c percentage (optional)")
	fs.Var(&serumK, "serum-k", "Serum potassium mEq/L (optional)")
	fs.Var(&egfr, "egfr", "eGFR (optional)")
	fs.Parse(args)

	if *foodID == 0 {
		return errors.New("-food is required")
	}

	in := clinical.ProfileInput{
		Gender:         *gender,
		Age:            age,
		HeightCm:       height,
		WeightKg:       weight,
		HasDM:          hasDM,
		CKDStage:       stage,
		HbA1c:          hba1c.v,
		SerumPotassium: serumK.v,
		EGFR:           egfr.v,
	}

	res, err := application.Analyze(ctx, *foodID, in)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func runSearch(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "Name or category substring")
	fs.Parse(args)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFOOD\tCATEGORY\tK (mg)\tP (mg)\tNa (mg)\tGI")
	for _, f := range application.SearchFoods(ctx, *query) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n", f.ID, f.FoodName, f.Category,
			fmtNum(f.PotassiumMg), fmtNum(f.PhosphorusMg), fmtNum(f.SodiumMg), f.GIIndex)
	}
	return w.Flush()
}

func runMetrics(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ExitOnError)
	days := fs.Int("days", 7, "Summarize the last N days")
	fs.Parse(args)

	summary, err := application.DailyVerdicts(ctx, *days)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSAFE\tCAUTION\tLIMIT\tTOTAL\tAVG LATENCY (ms)")
	for _, d := range summary {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f\n", d.Date, d.Safe, d.Caution, d.Limit, d.Total, d.AvgLatencyMS)
	}
	return w.Flush()
}

func runMetricsCleanup(ctx context.Context, application *app.App, args []string) error {
	fs := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
	days := fs.Int("days", 30, "Keep records for the last N days")
	fs.Parse(args)

	affected, err := application.CleanupMetrics(ctx, *days)
	if err != nil {
		return err
	}
	fmt.Printf("Successfully removed %d old metric records.\n", affected)
	return nil
}

func runIssueToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("issue-token", flag.ExitOnError)
	subject := fs.String("sub", "", "Token subject (clinic or user name)")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	fs.Parse(args)

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable not set")
	}
	token, err := httpapi.IssueToken(cfg.JWTSecret, *subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// optionalFloat is a flag that stays nil unless given.
type optionalFloat struct {
	v *float64
}

func (o *optionalFloat) String() string {
	if o.v == nil {
		return ""
	}
	return fmtNum(*o.v)
}

func (o *optionalFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v = &f
	return nil
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsage() {
	fmt.Println("Usage: ckd-food-advisor <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  serve              Start the HTTP API")
	fmt.Println("  analyze            Analyze one food: -food ID -stage N [-dm] [-hba1c X] [-serum-k X]")
	fmt.Println("  search             List catalog foods matching -q")
	fmt.Println("  metrics            Show daily verdict counts for the last -days")
	fmt.Println("  metrics-cleanup    Remove metric records older than -days")
	fmt.Println("  health             Print catalog, schema, cache and process health")
	fmt.Println("  issue-token        Print a bearer token for -sub (requires JWT_SECRET)")
}
