package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recipecatalog/backend/internal/model"
	"github.com/recipecatalog/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func recipeResult(args mock.Arguments) (*model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func recipesResult(args mock.Arguments) ([]*model.Recipe, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	return recipeResult(m.Called(ctx, recipe))
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	return recipesResult(m.Called(ctx))
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	return recipeResult(m.Called(ctx, id))
}

// SearchByIngredient mocks the SearchByIngredient method
func (m *MockRecipeService) SearchByIngredient(ctx context.Context, ingredient string) ([]*model.Recipe, error) {
	return recipesResult(m.Called(ctx, ingredient))
}

// FilterRecipes mocks the FilterRecipes method
func (m *MockRecipeService) FilterRecipes(ctx context.Context, query service.RecipeQuery) ([]*model.Recipe, error) {
	return recipesResult(m.Called(ctx, query))
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id string, recipe *model.Recipe) (*model.Recipe, error) {
	return recipeResult(m.Called(ctx, id, recipe))
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Ping mocks the Ping method
func (m *MockRecipeService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

// UploadRecipeImage mocks the UploadRecipeImage method
func (m *MockImageService) UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}
