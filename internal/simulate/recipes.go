package simulate

import (
	"errors" // Sentinel errors
	"sort"   // Stable key listing
)

var (
	ErrUnknownRecipe   = errors.New("recipe not found")
	ErrUnknownAgeGroup = errors.New("no kids yoga programs for this age group")
)

// Recipe is an entry of the static recipe table
type Recipe struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

var recipes = map[string]Recipe{
	"kitchari": {
		Key:  "kitchari",
		Name: "Ayurvedic Kitchari",
		Ingredients: []string{
			"1 cup basmati rice", "1/2 cup yellow mung dal", "1 tbsp ghee", "1 tsp cumin seeds",
			"1 tsp turmeric", "1 tsp ginger (grated)", "Salt to taste", "4 cups water",
		},
		Instructions: []string{
			"Rinse rice and dal until water runs clear",
			"Heat ghee in a pot and add cumin seeds",
			"Add ginger and turmeric, stir for 30 seconds",
			"Add rice and dal, stir for 2 minutes",
			"Add water and salt, bring to boil",
			"Simmer for 20-25 minutes until soft",
			"Serve warm with fresh herbs",
		},
	},
	"golden-milk": {
		Key:  "golden-milk",
		Name: "Golden Milk (Turmeric Latte)",
		Ingredients: []string{
			"1 cup milk (dairy or plant-based)", "1 tsp turmeric powder", "1/2 tsp cinnamon", "1/4 tsp ginger powder",
			"Pinch of black pepper", "1 tsp honey or maple syrup", "1 tsp coconut oil",
		},
		Instructions: []string{
			"Heat milk in a saucepan over medium heat",
			"Add turmeric, cinnamon, ginger, and black pepper",
			"Whisk continuously for 2-3 minutes",
			"Remove from heat and add honey",
			"Add coconut oil and whisk until frothy",
			"Strain if desired and serve warm",
		},
	},
	"buddha-bowl": {
		Key:  "buddha-bowl",
		Name: "Mediterranean Buddha Bowl",
		Ingredients: []string{
			"1 cup cooked quinoa", "1/2 cup chickpeas", "1/2 avocado (sliced)", "1/2 cup cherry tomatoes",
			"1/4 cup cucumber (diced)", "2 tbsp olive oil", "1 tbsp lemon juice", "Salt and pepper to taste",
			"Fresh herbs (parsley, mint)",
		},
		Instructions: []string{
			"Cook quinoa according to package instructions",
			"Rinse and drain chickpeas",
			"Prepare vegetables and slice avocado",
			"Make dressing with olive oil, lemon juice, salt, and pepper",
			"Arrange quinoa in bowl as base",
			"Top with chickpeas, vegetables, and avocado",
			"Drizzle with dressing and garnish with herbs",
		},
	},
}

// LookupRecipe returns the recipe stored under key
func LookupRecipe(key string) (Recipe, error) {
	r, ok := recipes[key]
	if !ok {
		return Recipe{}, ErrUnknownRecipe
	}
	return r, nil
}

// RecipeKeys lists the known recipes in sorted order
func RecipeKeys() []string {
	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
