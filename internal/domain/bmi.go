package domain

import (
	"errors" // Sentinel errors
	"math"   // Rounding and clamping
)

// BMI category labels
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// ErrInvalidMeasurement is returned when weight or height is not a positive finite number
var ErrInvalidMeasurement = errors.New("weight and height must be positive")

// BMIReading is a computed body mass index with its display values
type BMIReading struct {
	Value       float64 `json:"value"`        // Rounded to one decimal
	Category    string  `json:"category"`     // Underweight, Normal, Overweight or Obese
	FillPercent float64 `json:"fill_percent"` // Position on the 15..40 scale, clamped to 0..100
}

// CalculateBMI computes the BMI for a weight in kilograms and a height in centimeters
func CalculateBMI(weightKg, heightCm float64) (BMIReading, error) {
	if !(weightKg > 0 && heightCm > 0) || math.IsInf(weightKg, 0) || math.IsInf(heightCm, 0) {
		return BMIReading{}, ErrInvalidMeasurement
	}
	meters := heightCm / 100
	bmi := weightKg / (meters * meters)
	return BMIReading{
		Value:       math.Round(bmi*10) / 10,
		Category:    BMICategory(bmi),
		FillPercent: math.Min(math.Max((bmi-15)/(40-15)*100, 0), 100),
	}, nil
}

// BMICategory maps an unrounded BMI onto its category
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
