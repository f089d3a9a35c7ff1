package clinical

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PatientProfile is the validated clinical picture used for scoring.
// Nil lab values are unknown: the rule that needs them is skipped.
type PatientProfile struct {
	Gender   string
	Age      int
	HeightCm float64
	WeightKg float64

	HasDM          bool
	CKDStage       int
	EGFR           *float64
	SerumPotassium *float64
	HbA1c          *float64
}

// ProfileInput is the patient profile as received from a caller, before validation.
type ProfileInput struct {
	Gender   string   `json:"gender" validate:"required,oneof=Male Female"`
	Age      *int     `json:"age" validate:"required,min=1,max=120"`
	HeightCm *float64 `json:"heightCm" validate:"required,min=50,max=300"`
	WeightKg *float64 `json:"weightKg" validate:"required,min=20,max=300"`

	HasDM          *bool    `json:"hasDm" validate:"required"`
	CKDStage       *int     `json:"ckdStage" validate:"required,min=1,max=5"`
	EGFR           *float64 `json:"eGFR,omitempty"`
	SerumPotassium *float64 `json:"serumPotassium,omitempty"`
	HbA1c          *float64 `json:"hba1c,omitempty"`
}

// Validate checks types and ranges and reports the first offending field.
func (in ProfileInput) Validate() error {
	return ValidateStruct(in)
}

// Profile converts a validated input into a PatientProfile.
// Call Validate first; missing required fields become zero values.
func (in ProfileInput) Profile() PatientProfile {
	p := PatientProfile{
		Gender:         in.Gender,
		EGFR:           in.EGFR,
		SerumPotassium: in.SerumPotassium,
		HbA1c:          in.HbA1c,
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.HeightCm != nil {
		p.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil {
		p.WeightKg = *in.WeightKg
	}
	if in.HasDM != nil {
		p.HasDM = *in.HasDM
	}
	if in.CKDStage != nil {
		p.CKDStage = *in.CKDStage
	}
	return p
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the struct's validate tags and converts the first
// failure into a *ValidationError whose Field uses JSON names.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fieldPath(fe.Namespace()),
		Message: fieldMessage(fe),
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
