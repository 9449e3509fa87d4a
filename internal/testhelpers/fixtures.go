package testhelpers

import (
	"github.com/recipecatalog/backend/internal/model"
)

// NewTestRecipe builds a valid recipe with the given title and ingredients.
func NewTestRecipe(title string, ingredients ...string) *model.Recipe {
	return &model.Recipe{
		Title:       title,
		Description: title + " description",
		Ingredients: model.StringList(ingredients),
		Steps:       model.StringList{"Prepare", "Serve"},
		CookingTime: model.IntPtr(20),
		Difficulty:  model.DifficultyEasy,
		Category:    "Dinner",
	}
}
