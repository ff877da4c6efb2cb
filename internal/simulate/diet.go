package simulate

import (
	"errors"  // Sentinel errors
	"strings" // Input normalization
)

// ErrDietFieldsMissing is returned when goal, diet type or activity level is empty
var ErrDietFieldsMissing = errors.New("please fill in all required fields")

// DietRequest describes the diet plan inputs
type DietRequest struct {
	Goal          string `json:"goal" binding:"required"`           // weight-loss, muscle-gain, maintenance...
	Type          string `json:"type" binding:"required"`           // vegan, keto, mediterranean...
	Allergies     string `json:"allergies"`                         // Free text, echoed back
	ActivityLevel string `json:"activity_level" binding:"required"` // sedentary, moderate, active
}

// Meal is one named meal with suggested items
type Meal struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// DietPlan is the simulated plan
type DietPlan struct {
	Goal          string   `json:"goal"`
	Type          string   `json:"type"`
	ActivityLevel string   `json:"activity_level"`
	Allergies     string   `json:"allergies,omitempty"`
	Meals         []Meal   `json:"meals"`
	Tips          []string `json:"tips"`
}

const itemsPerMeal = 2

// PlanDiet builds the daily plan from the lookup tables
func PlanDiet(req DietRequest) (DietPlan, error) {
	goal := strings.TrimSpace(req.Goal)
	kind := strings.TrimSpace(req.Type)
	activity := strings.TrimSpace(req.ActivityLevel)
	if goal == "" || kind == "" || activity == "" {
		return DietPlan{}, ErrDietFieldsMissing
	}
	return DietPlan{
		Goal:          goal,
		Type:          kind,
		ActivityLevel: activity,
		Allergies:     strings.TrimSpace(req.Allergies),
		Meals: []Meal{
			{Name: "Breakfast", Items: firstItems(breakfastItems(kind))},
			{Name: "Lunch", Items: firstItems(lunchItems(kind))},
			{Name: "Dinner", Items: firstItems(dinnerItems(kind))},
			{Name: "Snacks", Items: firstItems(snackItems(kind))},
		},
		Tips: nutritionTips(goal, activity),
	}, nil
}

func firstItems(items []string) []string {
	if len(items) > itemsPerMeal {
		items = items[:itemsPerMeal]
	}
	return append([]string(nil), items...)
}

func breakfastItems(kind string) []string {
	switch kind {
	case "vegan":
		return []string{"Oatmeal with berries and almond milk", "Avocado toast on whole grain bread", "Smoothie bowl with fruits and nuts"}
	case "keto":
		return []string{"Eggs with avocado and spinach", "Greek yogurt with nuts", "Bulletproof coffee"}
	default:
		return []string{"Greek yogurt with honey and granola", "Scrambled eggs with vegetables", "Whole grain toast with nut butter"}
	}
}

func lunchItems(kind string) []string {
	switch kind {
	case "mediterranean":
		return []string{"Quinoa salad with vegetables", "Grilled fish with roasted vegetables", "Hummus with whole grain pita"}
	case "vegetarian":
		return []string{"Lentil curry with brown rice", "Vegetable stir-fry with tofu", "Chickpea salad wrap"}
	default:
		return []string{"Grilled chicken with sweet potato", "Salmon with quinoa and vegetables", "Turkey and vegetable wrap"}
	}
}

func dinnerItems(kind string) []string {
	if kind == "paleo" {
		return []string{"Grilled steak with roasted vegetables", "Baked salmon with asparagus", "Chicken stir-fry with vegetables"}
	}
	return []string{"Baked chicken with quinoa", "Fish with steamed vegetables", "Vegetable soup with whole grain bread"}
}

func snackItems(kind string) []string {
	if kind == "vegan" {
		return []string{"Mixed nuts and dried fruits", "Apple slices with almond butter", "Hummus with vegetable sticks"}
	}
	return []string{"Greek yogurt with berries", "Mixed nuts", "Cheese and whole grain crackers"}
}

func nutritionTips(goal, activity string) []string {
	var tips []string
	switch goal {
	case "weight-loss":
		tips = []string{
			"Focus on portion control and eat smaller, frequent meals",
			"Include plenty of fiber-rich foods to stay full longer",
			"Stay hydrated with water throughout the day",
		}
	case "muscle-gain":
		tips = []string{
			"Increase protein intake to support muscle growth",
			"Eat within 30 minutes after workouts",
			"Include complex carbohydrates for energy",
		}
	default:
		tips = []string{
			"Maintain a balanced diet with all food groups",
			"Eat regular meals to maintain stable energy",
			"Include a variety of colorful fruits and vegetables",
		}
	}
	if activity == "active" {
		tips = append(tips,
			"Increase calorie intake to fuel your active lifestyle",
			"Focus on post-workout nutrition for recovery",
		)
	}
	return tips
}
