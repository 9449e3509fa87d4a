package service

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// RecipeQuery is the read-side filter. Zero fields impose no constraint.
type RecipeQuery struct {
	Ingredient string
	Category   string
	Difficulty string
	MaxTime    *float64
}

// ParseRecipeQuery reads ingredient, category, difficulty and maxTime from
// query parameters.
func ParseRecipeQuery(values url.Values) (RecipeQuery, error) {
	q := RecipeQuery{
		Ingredient: values.Get("ingredient"),
		Category:   values.Get("category"),
		Difficulty: values.Get("difficulty"),
	}
	if raw := values.Get("maxTime"); raw != "" {
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(n) {
			return RecipeQuery{}, ErrInvalidMaxTime
		}
		q.MaxTime = &n
	}
	return q, nil
}

// IsEmpty reports whether the query matches every recipe.
func (q RecipeQuery) IsEmpty() bool {
	return q.Ingredient == "" && q.Category == "" && q.Difficulty == "" && q.MaxTime == nil
}

// BSON builds the document store filter. The ingredient is matched as a
// literal, case-insensitive substring against any element of the array.
func (q RecipeQuery) BSON() bson.M {
	filter := bson.M{}
	if q.Ingredient != "" {
		filter["ingredients"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Ingredient), Options: "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Difficulty != "" {
		filter["difficulty"] = q.Difficulty
	}
	if q.MaxTime != nil {
		filter["cookingTime"] = bson.M{"$lte": *q.MaxTime}
	}
	return filter
}

// Scope narrows a gorm query by the scalar columns. Ingredients are stored
// as one JSON text column, so the ingredient test runs per element in
// MatchesIngredient once rows are loaded.
func (q RecipeQuery) Scope(db *gorm.DB) *gorm.DB {
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Difficulty != "" {
		db = db.Where("difficulty = ?", q.Difficulty)
	}
	if q.MaxTime != nil {
		db = db.Where("cooking_time <= ?", *q.MaxTime)
	}
	return db
}

// MatchesIngredient reports whether some ingredient contains q.Ingredient,
// ignoring case. An empty ingredient matches every list.
func (q RecipeQuery) MatchesIngredient(ingredients []string) bool {
	if q.Ingredient == "" {
		return true
	}
	needle := strings.ToLower(q.Ingredient)
	for _, ing := range ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return false
}
