package clinical

import "fmt"

// Verdict is the graded suitability of a food. Higher values are more severe.
type Verdict int

const (
	Safe Verdict = iota
	Caution
	Limit
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "Safe"
	case Caution:
		return "Caution"
	case Limit:
		return "Limit"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Summary is the short label shown next to a verdict.
func (v Verdict) Summary() string {
	switch v {
	case Caution:
		return "Eat with Caution"
	case Limit:
		return "Avoid / Limit"
	default:
		return "Safe to Eat"
	}
}

// MarshalText encodes the verdict as its name.
func (v Verdict) MarshalText() ([]byte, error) {
	if v < Safe || v > Limit {
		return nil, fmt.Errorf("unknown verdict %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText parses a verdict name.
func (v *Verdict) UnmarshalText(b []byte) error {
	parsed, err := ParseVerdict(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVerdict converts "Safe", "Caution" or "Limit" to a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "Safe":
		return Safe, nil
	case "Caution":
		return Caution, nil
	case "Limit":
		return Limit, nil
	}
	return Safe, fmt.Errorf("unknown verdict %q", s)
}

// atLeast raises v to floor without ever lowering it.
func atLeast(v, floor Verdict) Verdict {
	if v < floor {
		return floor
	}
	return v
}

// Axis is one of the nutrient risk dimensions scored independently.
type Axis string

const (
	AxisPotassium  Axis = "potassium"
	AxisPhosphorus Axis = "phosphorus"
	AxisGlycemic   Axis = "glycemic"
	AxisSodium     Axis = "sodium"
)

// axisPriority is both the evaluation order and the tie-break order.
var axisPriority = [...]Axis{AxisPotassium, AxisPhosphorus, AxisGlycemic, AxisSodium}
