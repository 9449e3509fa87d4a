package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/internal/middleware"
	"github.com/recipecatalog/backend/internal/model"
	"github.com/recipecatalog/backend/internal/service"
)

// RecipeHandler serves the /api/recipes resource.
type RecipeHandler struct {
	recipes service.IRecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(recipes service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search/ingredient", h.SearchByIngredient)
		recipes.GET("/filter", h.FilterRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if author := middleware.Identity(c); author != "" {
		recipe.CreatedBy = author
	}

	created, err := h.recipes.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(recipes))
}

func (h *RecipeHandler) SearchByIngredient(c *gin.Context) {
	ingredient := c.Query("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ingredient is required"})
		return
	}

	recipes, err := h.recipes.SearchByIngredient(c.Request.Context(), ingredient)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(recipes))
}

func (h *RecipeHandler) FilterRecipes(c *gin.Context) {
	query, err := service.ParseRecipeQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	recipes, err := h.recipes.FilterRecipes(c.Request.Context(), query)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe replaces the client-owned fields of a recipe. An unknown id
// yields 200 with a null body.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var recipe model.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.recipes.UpdateRecipe(c.Request.Context(), c.Param("id"), &recipe)
	if err != nil {
		h.storeError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}

func (h *RecipeHandler) storeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func nonNil(recipes []*model.Recipe) []*model.Recipe {
	if recipes == nil {
		return []*model.Recipe{}
	}
	return recipes
}
