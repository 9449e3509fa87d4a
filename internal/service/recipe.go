package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipecatalog/backend/internal/model"
)

// replaceColumns are the client-owned columns overwritten by UpdateRecipe.
var replaceColumns = []string{
	"title", "description", "ingredients", "steps", "cooking_time",
	"difficulty", "category", "image_url", "created_by", "updated_at",
}

// RecipeService handles recipe operations on a relational store through gorm.
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe persists a new recipe. The id and timestamps are assigned here
// regardless of what the caller sent.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.ID = ""
	recipe.CreatedAt, recipe.UpdatedAt = time.Time{}, time.Time{}
	recipe.Normalize()
	if err := checkSchema(recipe); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, s.fail("create recipe", err)
	}
	return recipe, nil
}

// ListRecipes returns every stored recipe in insertion order.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	return s.find(ctx, RecipeQuery{})
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, s.fail("get recipe", err)
	}
	return &recipe, nil
}

// SearchByIngredient returns recipes with an ingredient containing the text.
func (s *RecipeService) SearchByIngredient(ctx context.Context, ingredient string) ([]*model.Recipe, error) {
	return s.find(ctx, RecipeQuery{Ingredient: ingredient})
}

// FilterRecipes returns recipes matching every set field of query.
func (s *RecipeService) FilterRecipes(ctx context.Context, query RecipeQuery) ([]*model.Recipe, error) {
	return s.find(ctx, query)
}

// UpdateRecipe replaces the client-owned fields of a recipe. A missing id
// yields (nil, nil).
func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, recipe *model.Recipe) (*model.Recipe, error) {
	// The path id addresses the row; a body id must not become a condition.
	recipe.ID = ""
	recipe.Normalize()
	recipe.UpdatedAt = time.Now()

	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ?", id).
		Select(replaceColumns).
		Updates(recipe)
	if result.Error != nil {
		return nil, s.fail("update recipe", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	updated, err := s.GetRecipe(ctx, id)
	if errors.Is(err, ErrRecipeNotFound) {
		// deleted between the two statements
		return nil, nil
	}
	return updated, err
}

// DeleteRecipe removes a recipe if present.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error; err != nil {
		return s.fail("delete recipe", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *RecipeService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *RecipeService) find(ctx context.Context, query RecipeQuery) ([]*model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Scopes(query.Scope).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, s.fail("find recipes", err)
	}

	result := make([]*model.Recipe, 0, len(recipes))
	for i := range recipes {
		if query.MatchesIngredient(recipes[i].Ingredients) {
			result = append(result, &recipes[i])
		}
	}
	return result, nil
}

func (s *RecipeService) fail(op string, err error) error {
	s.logger.Error("recipe store operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
