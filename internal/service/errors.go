package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/recipecatalog/backend/internal/model"
)

var (
	// ErrRecipeNotFound is returned by GetRecipe for unknown or malformed ids.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInvalidMaxTime is returned when the maxTime filter is not a number.
	ErrInvalidMaxTime = errors.New("maxTime must be a number of minutes")
	// ErrSchema wraps create-time schema violations.
	ErrSchema = errors.New("recipe validation failed")
)

// checkSchema applies the document schema on create: a title is required and
// the difficulty must be one of the known levels. Lists may be empty.
func checkSchema(r *model.Recipe) error {
	var problems []string
	if strings.TrimSpace(r.Title) == "" {
		problems = append(problems, "title is required")
	}
	if !r.Difficulty.Valid() {
		problems = append(problems, fmt.Sprintf("difficulty %q is not one of Easy, Medium, Hard", r.Difficulty))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrSchema, strings.Join(problems, ", "))
	}
	return nil
}
