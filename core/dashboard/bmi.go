package dashboard

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dikshafoundation/diksha/core"
)

// BMI categories
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

var errInvalidMeasure = errors.New("weight and height must be positive numbers")

type BMIResult struct {
	Value    float64 `json:"value"` // one decimal
	Category string  `json:"category"`
}

// BMI computes weight(kg) / (height(cm)/100)^2 rounded to one decimal.
// Non-positive inputs are rejected before computation so the caller never
// sees NaN or Inf.
func BMI(weightKG, heightCM float64) (BMIResult, error) {
	var fldErrs []core.FieldError
	if weightKG <= 0 || math.IsNaN(weightKG) {
		fldErrs = append(fldErrs, core.FieldError{Field: "weight", Error: errInvalidMeasure.Error()})
	}
	if heightCM <= 0 || math.IsNaN(heightCM) {
		fldErrs = append(fldErrs, core.FieldError{Field: "height", Error: errInvalidMeasure.Error()})
	}
	if fldErrs != nil {
		return BMIResult{}, core.NewValidationError(errInvalidMeasure, fldErrs...)
	}

	heightM := heightCM / 100
	value := math.Round(weightKG/(heightM*heightM)*10) / 10

	var category string
	switch {
	case value < 18.5:
		category = BMIUnderweight
	case value < 25:
		category = BMINormal
	case value < 30:
		category = BMIOverweight
	default:
		category = BMIObese
	}
	return BMIResult{Value: value, Category: category}, nil
}
