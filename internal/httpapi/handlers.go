package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ckd-food-advisor/internal/clinical"
	"ckd-food-advisor/internal/profile"
)

type handler struct {
	svc    Service
	logger *zap.Logger
}

type analyzeRequest struct {
	FoodID  *int                   `json:"foodId"`
	Profile *clinical.ProfileInput `json:"profile"`
}

func (h *handler) health(c *gin.Context) {
	snapshot := h.svc.Health(c.Request.Context())
	status := http.StatusOK
	if snapshot.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, snapshot)
}

func (h *handler) searchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.SearchFoods(c.Request.Context(), c.Query("q")))
}

func (h *handler) getFood(c *gin.Context) {
	// A non-numeric id can never match a catalog entry.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Food not found"})
		return
	}

	item, err := h.svc.GetFood(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, bindError(err))
		return
	}
	if req.FoodID == nil {
		h.writeError(c, &clinical.ValidationError{Field: "foodId", Message: "Required"})
		return
	}
	if req.Profile == nil {
		h.writeError(c, &clinical.ValidationError{Field: "profile", Message: "Required"})
		return
	}

	res, err := h.svc.Analyze(c.Request.Context(), *req.FoodID, *req.Profile)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *handler) listProfiles(c *gin.Context) {
	list, err := h.svc.ListProfiles(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) createProfile(c *gin.Context) {
	var in profile.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.writeError(c, bindError(err))
		return
	}

	p, err := h.svc.SaveProfile(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handler) getProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) deleteProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteProfile(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// profileID parses the :id parameter. A non-numeric id can never match a
// saved profile, so it answers 404 itself.
func profileID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return 0, false
	}
	return id, true
}

func (h *handler) profileTrends(c *gin.Context) {
	points, err := h.svc.ProfileTrends(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *handler) dailyVerdicts(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(c, &clinical.ValidationError{Field: "days", Message: "Expected number"})
			return
		}
		days = n
	}

	out, err := h.svc.DailyVerdicts(c.Request.Context(), days)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
