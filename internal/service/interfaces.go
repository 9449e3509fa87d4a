package service

import (
	"context"

	"github.com/recipecatalog/backend/internal/model"
)

// IRecipeService defines the recipe operations. Each call maps to a single
// store operation; nothing is composed into a transaction.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	SearchByIngredient(ctx context.Context, ingredient string) ([]*model.Recipe, error)
	FilterRecipes(ctx context.Context, query RecipeQuery) ([]*model.Recipe, error)
	// UpdateRecipe returns (nil, nil) when id does not exist.
	UpdateRecipe(ctx context.Context, id string, recipe *model.Recipe) (*model.Recipe, error)
	// DeleteRecipe succeeds whether or not the recipe existed.
	DeleteRecipe(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// IImageService stores uploaded recipe images and returns their public URL.
type IImageService interface {
	UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error)
}
