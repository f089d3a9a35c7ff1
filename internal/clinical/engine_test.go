package clinical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ckd-food-advisor/internal/food"
)

func f64(v float64) *float64 { return &v }

func testFood(name string, k, p, na, sugar float64, gi int) food.FoodItem {
	return food.FoodItem{
		ID:           1000,
		FoodName:     name,
		Category:     food.CategoryProcessed,
		PotassiumMg:  k,
		PhosphorusMg: p,
		SodiumMg:     na,
		SugarG:       sugar,
		GIIndex:      gi,
	}
}

func TestEvaluateScenarios(t *testing.T) {
	t.Run("SerumPotassiumBranch", func(t *testing.T) {
		p := PatientProfile{CKDStage: 3, SerumPotassium: f64(5.2)}
		ev := Evaluate(p, testFood("Test Food", 250, 50, 100, 2, 40))

		assert.Equal(t, Limit, ev.Status)
		assert.Equal(t, AxisPotassium, ev.PrimaryReason)
		assert.Equal(t, []string{"Moderate Potassium, but your blood potassium is high (5.2)."}, ev.Issues)
	})

	t.Run("GlycemicCautionOnly", func(t *testing.T) {
		p := PatientProfile{CKDStage: 1, HasDM: true, HbA1c: f64(9.0)}
		ev := Evaluate(p, testFood("Test Food", 50, 20, 50, 5, 80))

		assert.Equal(t, Safe, ev.Axes.Potassium)
		assert.Equal(t, Safe, ev.Axes.Phosphorus)
		assert.Equal(t, Safe, ev.Axes.Sodium)
		assert.Equal(t, Caution, ev.Axes.Glycemic)
		assert.Equal(t, Caution, ev.Status)
		assert.Equal(t, AxisGlycemic, ev.PrimaryReason)
		assert.Equal(t, []string{"High GI (80): May spike blood sugar (HbA1c is high)."}, ev.Issues)
	})

	t.Run("PhosphorusAtStageFive", func(t *testing.T) {
		p := PatientProfile{CKDStage: 5}
		ev := Evaluate(p, testFood("Test Food", 50, 400, 50, 1, 10))

		assert.Equal(t, Limit, ev.Status)
		assert.Equal(t, AxisPhosphorus, ev.PrimaryReason)
		assert.Equal(t, []string{"High Phosphorus (400mg): Hard to filter at Stage 5."}, ev.Issues)
	})

	t.Run("SodiumAnyProfile", func(t *testing.T) {
		profiles := []PatientProfile{
			{CKDStage: 1},
			{CKDStage: 2, HasDM: true, HbA1c: f64(6.5)},
			{CKDStage: 5, HasDM: true, HbA1c: f64(10), SerumPotassium: f64(4.0)},
		}
		item := testFood("Noodles", 150, 120, 1700, 4, 30)
		for _, p := range profiles {
			ev := Evaluate(p, item)
			assert.Equal(t, Limit, ev.Status)
			assert.Equal(t, AxisSodium, ev.PrimaryReason)
			assert.Contains(t, ev.Issues, "Very High Sodium (1700mg): Increases blood pressure and fluid retention.")
		}
	})

	t.Run("PotassiumOutranksSodium", func(t *testing.T) {
		p := PatientProfile{CKDStage: 4}
		ev := Evaluate(p, testFood("Salty Greens", 500, 350, 1700, 0, 10))

		assert.Equal(t, Limit, ev.Status)
		assert.Equal(t, AxisPotassium, ev.PrimaryReason)
		assert.Equal(t, []string{
			"High Potassium (500mg): Dangerous for your kidneys.",
			"High Phosphorus (350mg): Hard to filter at Stage 4.",
			"Very High Sodium (1700mg): Increases blood pressure and fluid retention.",
		}, ev.Issues)
	})
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name   string
		p      PatientProfile
		item   food.FoodItem
		status Verdict
		reason Axis
	}{
		{"PotassiumAtLimitIsSafe", PatientProfile{CKDStage: 3}, testFood("x", 350, 0, 0, 0, 0), Safe, ""},
		{"PotassiumJustOver", PatientProfile{CKDStage: 3}, testFood("x", 350.5, 0, 0, 0, 0), Limit, AxisPotassium},
		{"SerumBelowFive", PatientProfile{CKDStage: 3, SerumPotassium: f64(4.9)}, testFood("x", 250, 0, 0, 0, 0), Safe, ""},
		{"SerumExactlyFive", PatientProfile{CKDStage: 3, SerumPotassium: f64(5.0)}, testFood("x", 250, 0, 0, 0, 0), Limit, AxisPotassium},
		{"SerumUnknown", PatientProfile{CKDStage: 5}, testFood("x", 300, 0, 0, 0, 0), Safe, ""},
		{"PhosphorusStageThree", PatientProfile{CKDStage: 3}, testFood("x", 0, 500, 0, 0, 0), Safe, ""},
		{"GlycemicWithoutDM", PatientProfile{CKDStage: 1, HbA1c: f64(12)}, testFood("x", 0, 0, 0, 40, 95), Safe, ""},
		{"HbA1cUnknownHighGI", PatientProfile{CKDStage: 1, HasDM: true}, testFood("x", 0, 0, 0, 1, 95), Safe, ""},
		{"HbA1cBelowEight", PatientProfile{CKDStage: 1, HasDM: true, HbA1c: f64(7.9)}, testFood("x", 0, 0, 0, 1, 95), Safe, ""},
		{"GIExactlySeventy", PatientProfile{CKDStage: 1, HasDM: true, HbA1c: f64(8)}, testFood("x", 0, 0, 0, 1, 70), Caution, AxisGlycemic},
		{"SugarExactlyFifteen", PatientProfile{CKDStage: 1, HasDM: true}, testFood("x", 0, 0, 0, 15, 10), Caution, AxisGlycemic},
		{"SodiumStageTwo", PatientProfile{CKDStage: 2}, testFood("x", 0, 0, 600, 0, 0), Safe, ""},
		{"SodiumStageThree", PatientProfile{CKDStage: 3}, testFood("x", 0, 0, 600, 0, 0), Caution, AxisSodium},
		{"SodiumAtEightHundred", PatientProfile{CKDStage: 3}, testFood("x", 0, 0, 800, 0, 0), Caution, AxisSodium},
		{"CautionThenLimit", PatientProfile{CKDStage: 1, HasDM: true}, testFood("x", 0, 0, 900, 20, 0), Limit, AxisSodium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Evaluate(tt.p, tt.item)
			assert.Equal(t, tt.status, ev.Status)
			assert.Equal(t, tt.reason, ev.PrimaryReason)
		})
	}
}

func TestGlycemicIssuesAccumulate(t *testing.T) {
	p := PatientProfile{CKDStage: 2, HasDM: true, HbA1c: f64(8.4)}
	ev := Evaluate(p, testFood("Candy", 0, 0, 0, 60.5, 78))

	assert.Equal(t, Caution, ev.Axes.Glycemic)
	assert.Equal(t, []string{
		"High GI (78): May spike blood sugar (HbA1c is high).",
		"High Sugar (60.5g): Watch your intake.",
	}, ev.Issues)
}

func TestReducePriority(t *testing.T) {
	tests := []struct {
		name   string
		axes   AxisVerdicts
		status Verdict
		reason Axis
	}{
		{"AllSafe", AxisVerdicts{}, Safe, ""},
		{"FirstLimitKeepsReason", AxisVerdicts{Potassium: Limit, Phosphorus: Limit, Sodium: Limit}, Limit, AxisPotassium},
		{"PhosphorusOverSodium", AxisVerdicts{Phosphorus: Limit, Sodium: Limit}, Limit, AxisPhosphorus},
		{"LimitReplacesCautionReason", AxisVerdicts{Glycemic: Caution, Sodium: Limit}, Limit, AxisSodium},
		{"CautionAfterLimitIgnored", AxisVerdicts{Phosphorus: Limit, Glycemic: Caution, Sodium: Caution}, Limit, AxisPhosphorus},
		{"FirstCautionKeepsReason", AxisVerdicts{Glycemic: Caution, Sodium: Caution}, Caution, AxisGlycemic},
		{"SodiumCautionOnly", AxisVerdicts{Sodium: Caution}, Caution, AxisSodium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := reduce(tt.axes)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestAnalyzeCatalogFoods(t *testing.T) {
	catalog := food.NewSeededCatalog()
	get := func(id int) food.FoodItem {
		item, ok := catalog.GetByID(id)
		require.True(t, ok, "food %d", id)
		return item
	}

	t.Run("SafeWithRecommendations", func(t *testing.T) {
		res := Analyze(PatientProfile{CKDStage: 1}, get(1), catalog.All())

		assert.Equal(t, Safe, res.Status)
		assert.Equal(t, "Safe to Eat", res.Summary)
		assert.Empty(t, res.PrimaryReason)
		assert.Empty(t, res.Details)
		assert.Nil(t, res.Alternatives)
		assert.Equal(t, "[Nutritionist Note] White Rice (Cooked) appears to be a safe choice for your current condition. It fits within your nutritional guidelines.", res.EducationalMessage)
		assert.Equal(t, []RecommendedFood{
			{ID: 2, FoodName: "Brown Rice (Cooked)", Category: food.CategoryGrain, Reason: "Same Grain category"},
			{ID: 3, FoodName: "Multigrain Bread", Category: food.CategoryGrain, Reason: "Same Grain category"},
			{ID: 4, FoodName: "Sweet Potato (Steamed)", Category: food.CategoryGrain, Reason: "Same Grain category"},
			{ID: 5, FoodName: "Potato (Boiled)", Category: food.CategoryGrain, Reason: "Same Grain category"},
			{ID: 6, FoodName: "Spinach (Raw)", Category: food.CategoryVegetable, Reason: "Balanced nutrients"},
		}, res.Recommendations)
	})

	t.Run("CautionHasNoLists", func(t *testing.T) {
		p := PatientProfile{CKDStage: 2, HasDM: true, HbA1c: f64(9.0)}
		res := Analyze(p, get(1), catalog.All())

		assert.Equal(t, Caution, res.Status)
		assert.Equal(t, "Eat with Caution", res.Summary)
		assert.Equal(t, AxisGlycemic, res.PrimaryReason)
		assert.Equal(t, "[Nutritionist Note] White Rice (Cooked) can be eaten, but portion control is key. High GI (73): May spike blood sugar (HbA1c is high).", res.EducationalMessage)
		assert.Nil(t, res.Recommendations)
		assert.Nil(t, res.Alternatives)
	})

	t.Run("LimitWithAlternatives", func(t *testing.T) {
		res := Analyze(PatientProfile{CKDStage: 1}, get(28), catalog.All())

		assert.Equal(t, Limit, res.Status)
		assert.Equal(t, "Avoid / Limit", res.Summary)
		assert.Equal(t, AxisSodium, res.PrimaryReason)
		assert.Equal(t, "[Nutritionist Note] Ramyeon (Instant Noodles) is not recommended. Very High Sodium (1700mg): Increases blood pressure and fluid retention.", res.EducationalMessage)
		assert.Equal(t, NutrientsOfInterest{Potassium: 150, Phosphorus: 120, Sugar: 4, Sodium: 1700, GI: 73}, res.NutrientsOfInterest)
		assert.Nil(t, res.Recommendations)
		assert.Equal(t, []RecommendedFood{
			{ID: 29, FoodName: "Coke (Cola)", Category: food.CategoryProcessed, Reason: "Lower potassium (0mg vs 150mg)"},
			{ID: 30, FoodName: "Potato Chips", Category: food.CategoryProcessed, Reason: "Lower sodium (525mg vs 1700mg)"},
			{ID: 40, FoodName: "Milk Chocolate Bar", Category: food.CategoryProcessed, Reason: "Lower sodium (79mg vs 1700mg)"},
			{ID: 1, FoodName: "White Rice (Cooked)", Category: food.CategoryGrain, Reason: "Low-potassium alternative (35mg)"},
			{ID: 2, FoodName: "Brown Rice (Cooked)", Category: food.CategoryGrain, Reason: "Low-potassium alternative (84mg)"},
		}, res.Alternatives)
	})

	t.Run("PhosphorusOverSodiumCaution", func(t *testing.T) {
		res := Analyze(PatientProfile{CKDStage: 5}, get(38), catalog.All())

		assert.Equal(t, Limit, res.Status)
		assert.Equal(t, AxisPhosphorus, res.PrimaryReason)
		assert.Equal(t, []string{
			"High Phosphorus (512mg): Hard to filter at Stage 5.",
			"Significant Sodium (621mg): Use sparingly.",
		}, res.Details)
		assert.Equal(t, "[Nutritionist Note] Cheddar Cheese is not recommended. High Phosphorus (512mg): Hard to filter at Stage 5.", res.EducationalMessage)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		res := Analyze(PatientProfile{CKDStage: 1}, get(28), nil)

		assert.Equal(t, Limit, res.Status)
		assert.Empty(t, res.Alternatives)

		b, err := json.Marshal(res)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "alternatives")
		assert.NotContains(t, string(b), "recommendations")
	})
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	catalog := food.NewSeededCatalog()
	p := PatientProfile{CKDStage: 4, HasDM: true, HbA1c: f64(8.8), SerumPotassium: f64(5.1)}

	for _, item := range catalog.All() {
		first, err := json.Marshal(Analyze(p, item, catalog.All()))
		require.NoError(t, err)
		second, err := json.Marshal(Analyze(p, item, catalog.All()))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), item.FoodName)
	}
}

func TestEarlyStagesNeverLimitOnPotassium(t *testing.T) {
	catalog := food.NewSeededCatalog()
	for _, stage := range []int{1, 2} {
		p := PatientProfile{CKDStage: stage, SerumPotassium: f64(7.5)}
		for _, item := range catalog.All() {
			ev := Evaluate(p, item)
			assert.Equal(t, Safe, ev.Axes.Potassium, "stage %d, %s", stage, item.FoodName)
			assert.NotEqual(t, AxisPotassium, ev.PrimaryReason)
		}
	}
}

func TestAnalysisResultJSON(t *testing.T) {
	p := PatientProfile{CKDStage: 3, SerumPotassium: f64(5.2)}
	res := Analyze(p, testFood("Test Food", 250, 50, 100, 2, 40), nil)

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "Limit", decoded["status"])
	assert.Equal(t, "potassium", decoded["primaryReason"])
	assert.Equal(t, "Test Food", decoded["foodName"])
	assert.Contains(t, decoded, "nutrientsOfInterest")
	assert.Contains(t, decoded, "details")

	safe, err := json.Marshal(Analyze(p, testFood("Plain", 10, 10, 10, 1, 10), nil))
	require.NoError(t, err)
	assert.NotContains(t, string(safe), "primaryReason")
	assert.Contains(t, string(safe), `"details":[]`)
}
