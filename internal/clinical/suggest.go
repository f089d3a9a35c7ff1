package clinical

import (
	"fmt"

	"ckd-food-advisor/internal/food"
)

const (
	maxSuggestions        = 5
	maxSameCategoryAltern = 3
	lowPotassiumMg        = 150
	lowGIRecommend        = 50
	lowGIAlternative      = 40
)

// QuickVerdict classifies a food with the same thresholds as Evaluate but
// stops at the first Limit threshold, then the first Caution threshold.
// It agrees with Evaluate on whether a food is Safe.
func QuickVerdict(p PatientProfile, item food.FoodItem) Verdict {
	if p.CKDStage >= potassiumStageMin && item.PotassiumMg > potassiumHighMg {
		return Limit
	}
	if p.CKDStage >= potassiumStageMin && item.PotassiumMg > potassiumModerateMg &&
		p.SerumPotassium != nil && *p.SerumPotassium >= serumPotassiumHigh {
		return Limit
	}
	if p.CKDStage >= phosphorusStageMin && item.PhosphorusMg > phosphorusHighMg {
		return Limit
	}
	if item.SodiumMg > sodiumVeryHighMg {
		return Limit
	}
	if p.HasDM {
		if p.HbA1c != nil && *p.HbA1c >= hba1cUncontrolled && item.GIIndex >= giHigh {
			return Caution
		}
		if item.SugarG >= sugarHighG {
			return Caution
		}
	}
	if item.SodiumMg > sodiumSignificantMg && p.CKDStage >= sodiumCautionStageMin {
		return Caution
	}
	return Safe
}

// Recommendations lists up to five other catalog foods that are Safe for the
// patient, in catalog order.
func Recommendations(p PatientProfile, current food.FoodItem, catalog []food.FoodItem) []RecommendedFood {
	var out []RecommendedFood
	for _, f := range catalog {
		if f.ID == current.ID || QuickVerdict(p, f) != Safe {
			continue
		}

		var reason string
		switch {
		case f.Category == current.Category:
			reason = fmt.Sprintf("Same %s category", f.Category)
		case f.PotassiumMg < lowPotassiumMg:
			reason = fmt.Sprintf("Low potassium (%smg)", num(f.PotassiumMg))
		case p.HasDM && f.GIIndex < lowGIRecommend:
			reason = fmt.Sprintf("Low GI food (%d)", f.GIIndex)
		default:
			reason = "Balanced nutrients"
		}

		out = append(out, suggestion(f, reason))
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

// Alternatives lists up to five substitutes for a food the patient should
// limit: first up to three from the same category (Safe or Caution), then
// Safe foods from other categories.
func Alternatives(p PatientProfile, current food.FoodItem, catalog []food.FoodItem) []RecommendedFood {
	var out []RecommendedFood

	for _, f := range catalog {
		if f.ID == current.ID || f.Category != current.Category {
			continue
		}
		v := QuickVerdict(p, f)
		if v == Limit {
			continue
		}

		var reason string
		switch {
		case f.PotassiumMg < current.PotassiumMg:
			reason = fmt.Sprintf("Lower potassium (%smg vs %smg)", num(f.PotassiumMg), num(current.PotassiumMg))
		case f.SodiumMg < current.SodiumMg:
			reason = fmt.Sprintf("Lower sodium (%smg vs %smg)", num(f.SodiumMg), num(current.SodiumMg))
		case p.HasDM && f.GIIndex < current.GIIndex:
			reason = fmt.Sprintf("Lower GI (%d vs %d)", f.GIIndex, current.GIIndex)
		default:
			reason = fmt.Sprintf("Safer %s choice", f.Category)
		}
		if v == Caution {
			reason += " (needs caution)"
		}

		out = append(out, suggestion(f, reason))
		if len(out) >= maxSameCategoryAltern {
			break
		}
	}

	if len(out) >= maxSuggestions {
		return out
	}

	for _, f := range catalog {
		if f.ID == current.ID || f.Category == current.Category || QuickVerdict(p, f) != Safe {
			continue
		}

		reason := fmt.Sprintf("Substitutable %s option", f.Category)
		switch {
		case f.PotassiumMg < lowPotassiumMg:
			reason = fmt.Sprintf("Low-potassium alternative (%smg)", num(f.PotassiumMg))
		case p.HasDM && f.GIIndex < lowGIAlternative:
			reason = fmt.Sprintf("Low-GI alternative (%d)", f.GIIndex)
		}

		out = append(out, suggestion(f, reason))
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

func suggestion(f food.FoodItem, reason string) RecommendedFood {
	return RecommendedFood{
		ID:       f.ID,
		FoodName: f.FoodName,
		Category: f.Category,
		Reason:   reason,
	}
}
