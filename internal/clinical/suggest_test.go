package clinical

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ckd-food-advisor/internal/food"
)

func profileGrid() []PatientProfile {
	var grid []PatientProfile
	labs := []struct {
		serum, hba1c *float64
	}{
		{nil, nil},
		{f64(4.2), f64(6.0)},
		{f64(5.0), f64(8.0)},
		{f64(6.1), f64(11.2)},
	}
	for stage := 1; stage <= 5; stage++ {
		for _, dm := range []bool{false, true} {
			for _, l := range labs {
				grid = append(grid, PatientProfile{
					CKDStage:       stage,
					HasDM:          dm,
					SerumPotassium: l.serum,
					HbA1c:          l.hba1c,
				})
			}
		}
	}
	return grid
}

func TestQuickVerdictAgreesWithEvaluate(t *testing.T) {
	catalog := food.NewSeededCatalog()
	for i, p := range profileGrid() {
		for _, item := range catalog.All() {
			ev := Evaluate(p, item)
			quick := QuickVerdict(p, item)
			assert.Equal(t, ev.Status == Safe, quick == Safe, "profile %d, %s", i, item.FoodName)
			assert.Equal(t, ev.Status, quick, "profile %d, %s", i, item.FoodName)
		}
	}
}

func TestSuggestionLists(t *testing.T) {
	catalog := food.NewSeededCatalog()
	all := catalog.All()

	for i, p := range profileGrid() {
		for _, item := range all {
			name := fmt.Sprintf("profile %d, %s", i, item.FoodName)
			res := Analyze(p, item, all)

			switch res.Status {
			case Safe:
				assert.Nil(t, res.Alternatives, name)
				assert.LessOrEqual(t, len(res.Recommendations), 5, name)
				for _, r := range res.Recommendations {
					assert.NotEqual(t, item.ID, r.ID, name)
					assert.Equal(t, Safe, quickByID(t, catalog, p, r.ID), name)
				}
			case Limit:
				assert.Nil(t, res.Recommendations, name)
				assert.LessOrEqual(t, len(res.Alternatives), 5, name)
				same := 0
				for _, a := range res.Alternatives {
					assert.NotEqual(t, item.ID, a.ID, name)
					v := quickByID(t, catalog, p, a.ID)
					if a.Category == item.Category {
						same++
						assert.NotEqual(t, Limit, v, name)
					} else {
						assert.Equal(t, Safe, v, name)
					}
				}
				assert.LessOrEqual(t, same, 3, name)
			default:
				assert.Nil(t, res.Recommendations, name)
				assert.Nil(t, res.Alternatives, name)
			}
		}
	}
}

func quickByID(t *testing.T, c *food.Catalog, p PatientProfile, id int) Verdict {
	t.Helper()
	item, ok := c.GetByID(id)
	if !ok {
		t.Fatalf("suggested food %d is not in the catalog", id)
	}
	return QuickVerdict(p, item)
}

func TestAlternativesReasons(t *testing.T) {
	catalog := food.NewSeededCatalog()
	potato, _ := catalog.GetByID(5)

	// Stage 3 with diabetes: potato (K 421) is Limit on potassium, white rice
	// is only Caution through GI.
	p := PatientProfile{CKDStage: 3, HasDM: true, HbA1c: f64(8.5)}
	alts := Alternatives(p, potato, catalog.All())

	assert.Equal(t, []RecommendedFood{
		{ID: 1, FoodName: "White Rice (Cooked)", Category: food.CategoryGrain, Reason: "Lower potassium (35mg vs 421mg) (needs caution)"},
		{ID: 2, FoodName: "Brown Rice (Cooked)", Category: food.CategoryGrain, Reason: "Lower potassium (84mg vs 421mg)"},
		{ID: 3, FoodName: "Multigrain Bread", Category: food.CategoryGrain, Reason: "Lower potassium (230mg vs 421mg)"},
		{ID: 7, FoodName: "Cucumber", Category: food.CategoryVegetable, Reason: "Low-potassium alternative (147mg)"},
		{ID: 8, FoodName: "Carrot (Raw)", Category: food.CategoryVegetable, Reason: "Low-GI alternative (35)"},
	}, alts)
}

func TestRecommendationsReasons(t *testing.T) {
	catalog := food.NewSeededCatalog()
	cucumber, _ := catalog.GetByID(7)

	p := PatientProfile{CKDStage: 5, HasDM: true, HbA1c: f64(9.1), SerumPotassium: f64(5.4)}
	recs := Recommendations(p, cucumber, catalog.All())

	assert.Equal(t, []RecommendedFood{
		{ID: 2, FoodName: "Brown Rice (Cooked)", Category: food.CategoryGrain, Reason: "Low potassium (84mg)"},
		{ID: 9, FoodName: "Cabbage (Boiled)", Category: food.CategoryVegetable, Reason: "Same Vegetable category"},
		{ID: 12, FoodName: "Lettuce", Category: food.CategoryVegetable, Reason: "Same Vegetable category"},
		{ID: 15, FoodName: "Apple (w/ skin)", Category: food.CategoryFruit, Reason: "Low potassium (107mg)"},
		{ID: 18, FoodName: "Orange", Category: food.CategoryFruit, Reason: "Low GI food (43)"},
	}, recs)
}

func TestRecommendationsGIReason(t *testing.T) {
	current := food.FoodItem{ID: 1, FoodName: "Rice", Category: food.CategoryGrain}
	catalog := []food.FoodItem{
		current,
		{ID: 2, FoodName: "Pear", Category: food.CategoryFruit, PotassiumMg: 180, GIIndex: 38},
		{ID: 3, FoodName: "Melon", Category: food.CategoryFruit, PotassiumMg: 180, GIIndex: 65},
	}

	withDM := Recommendations(PatientProfile{CKDStage: 1, HasDM: true}, current, catalog)
	assert.Equal(t, "Low GI food (38)", withDM[0].Reason)
	assert.Equal(t, "Balanced nutrients", withDM[1].Reason)

	withoutDM := Recommendations(PatientProfile{CKDStage: 1}, current, catalog)
	assert.Equal(t, "Balanced nutrients", withoutDM[0].Reason)
}
