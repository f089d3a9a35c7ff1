package clinical

import (
	"fmt"
	"strconv"

	"ckd-food-advisor/internal/food"
)

// Clinical thresholds. Nutrient values are per serving as stored in the catalog.
const (
	potassiumHighMg       = 350
	potassiumModerateMg   = 200
	serumPotassiumHigh    = 5.0
	phosphorusHighMg      = 300
	hba1cUncontrolled     = 8.0
	giHigh                = 70
	sugarHighG            = 15
	sodiumVeryHighMg      = 800
	sodiumSignificantMg   = 400
	potassiumStageMin     = 3
	phosphorusStageMin    = 4
	sodiumCautionStageMin = 3
)

const notePrefix = "[Nutritionist Note] "

// NutrientsOfInterest is the snapshot of the values the rules look at.
type NutrientsOfInterest struct {
	Potassium  float64 `json:"potassium"`
	Phosphorus float64 `json:"phosphorus"`
	Sugar      float64 `json:"sugar"`
	Sodium     float64 `json:"sodium"`
	GI         int     `json:"gi"`
}

// RecommendedFood is a catalog entry suggested alongside a verdict.
type RecommendedFood struct {
	ID       int           `json:"id"`
	FoodName string        `json:"foodName"`
	Category food.Category `json:"category"`
	Reason   string        `json:"reason"`
}

// AnalysisResult is the full answer for one food and one patient.
type AnalysisResult struct {
	FoodName            string              `json:"foodName"`
	Status              Verdict             `json:"status"`
	Summary             string              `json:"summary"`
	PrimaryReason       Axis                `json:"primaryReason,omitempty"`
	Details             []string            `json:"details"`
	NutrientsOfInterest NutrientsOfInterest `json:"nutrientsOfInterest"`
	EducationalMessage  string              `json:"educationalMessage"`
	Recommendations     []RecommendedFood   `json:"recommendations,omitempty"`
	Alternatives        []RecommendedFood   `json:"alternatives,omitempty"`
}

// AxisVerdicts holds the independent verdict of every axis.
type AxisVerdicts struct {
	Potassium  Verdict
	Phosphorus Verdict
	Glycemic   Verdict
	Sodium     Verdict
}

// Get returns the verdict recorded for axis a.
func (av AxisVerdicts) Get(a Axis) Verdict {
	switch a {
	case AxisPotassium:
		return av.Potassium
	case AxisPhosphorus:
		return av.Phosphorus
	case AxisGlycemic:
		return av.Glycemic
	case AxisSodium:
		return av.Sodium
	}
	return Safe
}

// Evaluation is the per-axis scoring of a food before suggestions are added.
type Evaluation struct {
	Axes          AxisVerdicts
	Issues        []string
	Status        Verdict
	PrimaryReason Axis
}

// Evaluate scores item on every axis and reduces the axes to one verdict.
func Evaluate(p PatientProfile, item food.FoodItem) Evaluation {
	var ev Evaluation

	ev.Axes.Potassium = ev.scorePotassium(p, item)
	ev.Axes.Phosphorus = ev.scorePhosphorus(p, item)
	ev.Axes.Glycemic = ev.scoreGlycemic(p, item)
	ev.Axes.Sodium = ev.scoreSodium(p, item)

	ev.Status, ev.PrimaryReason = reduce(ev.Axes)
	if ev.Issues == nil {
		ev.Issues = []string{}
	}
	return ev
}

func (ev *Evaluation) flag(format string, args ...any) {
	ev.Issues = append(ev.Issues, fmt.Sprintf(format, args...))
}

func (ev *Evaluation) scorePotassium(p PatientProfile, item food.FoodItem) Verdict {
	if p.CKDStage < potassiumStageMin {
		return Safe
	}
	switch {
	case item.PotassiumMg > potassiumHighMg:
		ev.flag("High Potassium (%smg): Dangerous for your kidneys.", num(item.PotassiumMg))
		return Limit
	case item.PotassiumMg > potassiumModerateMg && p.SerumPotassium != nil && *p.SerumPotassium >= serumPotassiumHigh:
		ev.flag("Moderate Potassium, but your blood potassium is high (%s).", num(*p.SerumPotassium))
		return Limit
	}
	return Safe
}

func (ev *Evaluation) scorePhosphorus(p PatientProfile, item food.FoodItem) Verdict {
	if p.CKDStage < phosphorusStageMin || item.PhosphorusMg <= phosphorusHighMg {
		return Safe
	}
	ev.flag("High Phosphorus (%smg): Hard to filter at Stage %d.", num(item.PhosphorusMg), p.CKDStage)
	return Limit
}

func (ev *Evaluation) scoreGlycemic(p PatientProfile, item food.FoodItem) Verdict {
	if !p.HasDM {
		return Safe
	}
	v := Safe
	if p.HbA1c != nil && *p.HbA1c >= hba1cUncontrolled && item.GIIndex >= giHigh {
		ev.flag("High GI (%d): May spike blood sugar (HbA1c is high).", item.GIIndex)
		v = atLeast(v, Caution)
	}
	if item.SugarG >= sugarHighG {
		ev.flag("High Sugar (%sg): Watch your intake.", num(item.SugarG))
		v = atLeast(v, Caution)
	}
	return v
}

func (ev *Evaluation) scoreSodium(p PatientProfile, item food.FoodItem) Verdict {
	switch {
	case item.SodiumMg > sodiumVeryHighMg:
		ev.flag("Very High Sodium (%smg): Increases blood pressure and fluid retention.", num(item.SodiumMg))
		return Limit
	case item.SodiumMg > sodiumSignificantMg && p.CKDStage >= sodiumCautionStageMin:
		ev.flag("Significant Sodium (%smg): Use sparingly.", num(item.SodiumMg))
		return Caution
	}
	return Safe
}

// reduce walks the axes in priority order. A Caution axis raises the status
// unless it is already Limit and only claims the reason if none is set yet.
// A Limit axis claims the reason unless an earlier axis already reached Limit.
func reduce(axes AxisVerdicts) (Verdict, Axis) {
	status := Safe
	var reason Axis
	for _, a := range axisPriority {
		switch axes.Get(a) {
		case Limit:
			if status != Limit {
				status = Limit
				reason = a
			}
		case Caution:
			if status != Limit {
				status = Caution
				if reason == "" {
					reason = a
				}
			}
		}
	}
	return status, reason
}

// Analyze scores item for the patient and, depending on the verdict, adds
// safe suggestions (Safe) or safer substitutes (Limit) drawn from catalog.
// It is deterministic for a given profile, item and catalog order.
func Analyze(p PatientProfile, item food.FoodItem, catalog []food.FoodItem) AnalysisResult {
	ev := Evaluate(p, item)

	res := AnalysisResult{
		FoodName:      item.FoodName,
		Status:        ev.Status,
		Summary:       ev.Status.Summary(),
		PrimaryReason: ev.PrimaryReason,
		Details:       ev.Issues,
		NutrientsOfInterest: NutrientsOfInterest{
			Potassium:  item.PotassiumMg,
			Phosphorus: item.PhosphorusMg,
			Sugar:      item.SugarG,
			Sodium:     item.SodiumMg,
			GI:         item.GIIndex,
		},
		EducationalMessage: educationalMessage(item.FoodName, ev),
	}

	switch ev.Status {
	case Safe:
		res.Recommendations = Recommendations(p, item, catalog)
	case Limit:
		res.Alternatives = Alternatives(p, item, catalog)
	}
	return res
}

func educationalMessage(foodName string, ev Evaluation) string {
	first := func(fallback string) string {
		if len(ev.Issues) > 0 {
			return ev.Issues[0]
		}
		return fallback
	}

	var msg string
	switch ev.Status {
	case Caution:
		msg = fmt.Sprintf("%s can be eaten, but portion control is key. %s", foodName, first("Monitor your intake."))
	case Limit:
		msg = fmt.Sprintf("%s is not recommended. %s", foodName, first("It conflicts with your health goals."))
	default:
		msg = fmt.Sprintf("%s appears to be a safe choice for your current condition. It fits within your nutritional guidelines.", foodName)
	}
	return notePrefix + msg
}

// num prints a nutrient value without trailing zeros (150, 0.1, 10.6).
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
