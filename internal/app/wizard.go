package app

import (
	"fmt"     // Error formatting
	"math"    // Finite checks
	"strconv" // Numeric field parsing
	"strings" // Trimming
	"time"    // Completion timestamp

	"sthira/internal/domain" // Onboarding model and BMI
)

// TotalSteps is the number of onboarding steps
const TotalSteps = 3

// Field ids accepted by the wizard
const (
	FieldAge                    = "user-age"
	FieldGender                 = "user-gender"
	FieldWeight                 = "user-weight"
	FieldHeight                 = "user-height"
	FieldFitnessGoals           = "fitness-goals"
	FieldYogaExperience         = "yoga-experience"
	FieldPrimaryYogaGoal        = "primary-yoga-goal"
	FieldCurrentFrequency       = "current-frequency"
	FieldPrimaryReason          = "primary-reason"
	FieldDesiredFrequency       = "desired-frequency"
	FieldPreferredSessionLength = "preferred-session-length"
)

// Field describes one input of a wizard step
type Field struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Required bool    `json:"required"`
	Numeric  bool    `json:"numeric,omitempty"`
	Integer  bool    `json:"integer,omitempty"` // Whole numbers only
	Max      float64 `json:"max,omitempty"`     // Inclusive upper bound for numeric fields
}

// Steps lists the fields of each step; Steps[0] is step 1
var Steps = [TotalSteps][]Field{
	{
		{ID: FieldAge, Label: "Age", Required: true, Numeric: true, Integer: true, Max: 120},
		{ID: FieldGender, Label: "Gender", Required: true},
		{ID: FieldWeight, Label: "Weight (kg)", Required: true, Numeric: true, Max: 500},
		{ID: FieldHeight, Label: "Height (cm)", Required: true, Numeric: true, Max: 300},
	},
	{
		{ID: FieldFitnessGoals, Label: "Fitness Goals"},
		{ID: FieldYogaExperience, Label: "Yoga Experience", Required: true},
		{ID: FieldPrimaryYogaGoal, Label: "Primary Yoga Goal", Required: true},
	},
	{
		{ID: FieldCurrentFrequency, Label: "Current Practice Frequency", Required: true},
		{ID: FieldPrimaryReason, Label: "Primary Reason"},
		{ID: FieldDesiredFrequency, Label: "Desired Frequency", Required: true},
		{ID: FieldPreferredSessionLength, Label: "Preferred Session Length", Required: true},
	},
}

var knownFields = func() map[string]bool {
	m := make(map[string]bool)
	for _, step := range Steps {
		for _, f := range step {
			m[f.ID] = true
		}
	}
	return m
}()

// FieldError reports the first required wizard field that failed validation
type FieldError struct {
	Field  string // Field id
	Label  string // Human label
	Reason string // "missing" or "invalid"
}

func (e *FieldError) Error() string {
	if e.Reason == "invalid" {
		return fmt.Sprintf("Please enter a valid number for the %s field.", e.Label)
	}
	return fmt.Sprintf("Please fill in the %s field.", e.Label)
}

// Wizard is the onboarding draft: the current step and every value entered so far
type Wizard struct {
	Step   int               `json:"step"`
	Fields map[string]string `json:"fields"`
}

// Navigation is the visibility of the wizard buttons
type Navigation struct {
	Previous bool `json:"previous"`
	Next     bool `json:"next"`
	Complete bool `json:"complete"`
}

// NavigationFor derives button visibility from the step
func NavigationFor(step int) Navigation {
	return Navigation{
		Previous: step > 1,
		Next:     step < TotalSteps,
		Complete: step >= TotalSteps,
	}
}

// Progress is the completion percentage shown for step
func Progress(step int) float64 {
	return float64(step) / float64(TotalSteps) * 100
}

// ProgressText is the "Step N of M" label
func ProgressText(step int) string {
	return fmt.Sprintf("Step %d of %d", step, TotalSteps)
}

// merge returns a copy of the draft with the known submitted fields applied
func (w Wizard) merge(submitted map[string]string) Wizard {
	fields := make(map[string]string, len(w.Fields)+len(submitted))
	for k, v := range w.Fields {
		fields[k] = v
	}
	for k, v := range submitted {
		if knownFields[k] {
			fields[k] = v
		}
	}
	return Wizard{Step: w.Step, Fields: fields}
}

// validateStep checks the required and numeric fields of one step
func (w Wizard) validateStep(step int) error {
	if step < 1 || step > TotalSteps {
		return nil
	}
	for _, f := range Steps[step-1] {
		v := strings.TrimSpace(w.Fields[f.ID])
		if v == "" {
			if f.Required {
				return &FieldError{Field: f.ID, Label: f.Label, Reason: "missing"}
			}
			continue
		}
		if f.Numeric && !f.accepts(v) {
			return &FieldError{Field: f.ID, Label: f.Label, Reason: "invalid"}
		}
	}
	return nil
}

// accepts reports whether v is a finite number in (0, Max]
func (f Field) accepts(v string) bool {
	if f.Integer {
		n, err := strconv.Atoi(v)
		return err == nil && n > 0 && (f.Max == 0 || float64(n) <= f.Max)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n > 0 && (f.Max == 0 || n <= f.Max)
}

// snapshot builds the onboarding record once; BMI is computed here and never again
func (w Wizard) snapshot(at time.Time) (domain.OnboardingData, error) {
	for step := 1; step <= TotalSteps; step++ {
		if err := w.validateStep(step); err != nil {
			return domain.OnboardingData{}, err
		}
	}
	value := func(id string) string { return strings.TrimSpace(w.Fields[id]) }
	age, _ := strconv.Atoi(value(FieldAge))
	weight, _ := strconv.ParseFloat(value(FieldWeight), 64)
	height, _ := strconv.ParseFloat(value(FieldHeight), 64)
	reading, err := domain.CalculateBMI(weight, height)
	if err != nil {
		return domain.OnboardingData{}, &FieldError{Field: FieldWeight, Label: "Weight (kg)", Reason: "invalid"}
	}
	return domain.OnboardingData{
		Age:                    age,
		Gender:                 value(FieldGender),
		Weight:                 weight,
		Height:                 height,
		BMI:                    reading.Value,
		BMICategory:            reading.Category,
		FitnessGoals:           value(FieldFitnessGoals),
		YogaExperience:         value(FieldYogaExperience),
		PrimaryYogaGoal:        value(FieldPrimaryYogaGoal),
		CurrentFrequency:       value(FieldCurrentFrequency),
		PrimaryReason:          value(FieldPrimaryReason),
		DesiredFrequency:       value(FieldDesiredFrequency),
		PreferredSessionLength: value(FieldPreferredSessionLength),
		CompletedAt:            at.UTC(),
	}, nil
}
