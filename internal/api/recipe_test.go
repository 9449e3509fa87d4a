package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/internal/middleware"
	"github.com/recipecatalog/backend/internal/mocks"
	"github.com/recipecatalog/backend/internal/model"
	"github.com/recipecatalog/backend/internal/service"
	"github.com/recipecatalog/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRecipeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	svc := service.NewRecipeService(testhelpers.SetupTestDatabase(t), zap.NewNop())
	router := gin.New()
	router.Use(middleware.OptionalAuth(service.NewTokenService("test-secret")))
	RegisterRoutes(router, svc, nil, zap.NewNop())
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createRecipe(t *testing.T, router http.Handler, body map[string]interface{}) model.Recipe {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/recipes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []model.Recipe {
	t.Helper()
	var recipes []model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	return recipes
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	router := setupRecipeTestRouter(t)

	created := createRecipe(t, router, map[string]interface{}{
		"title":       "Pancakes",
		"description": "Fluffy",
		"ingredients": []string{"flour", "milk", "eggs"},
		"steps":       []string{"Mix", "Fry"},
		"cookingTime": 20,
		"difficulty":  "Easy",
		"category":    "Breakfast",
		"imageURL":    "https://example.com/p.png",
	})
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	w := doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Pancakes", got.Title)
	assert.Equal(t, "Fluffy", got.Description)
	assert.Equal(t, model.StringList{"flour", "milk", "eggs"}, got.Ingredients)
	assert.Equal(t, model.StringList{"Mix", "Fry"}, got.Steps)
	require.NotNil(t, got.CookingTime)
	assert.Equal(t, 20, *got.CookingTime)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)
	assert.Equal(t, "Breakfast", got.Category)
	assert.Equal(t, "https://example.com/p.png", got.ImageURL)
}

func TestCreateAcceptsEmptyIngredients(t *testing.T) {
	router := setupRecipeTestRouter(t)

	created := createRecipe(t, router, map[string]interface{}{
		"title":       "Air",
		"ingredients": []string{},
		"steps":       []string{},
	})
	assert.Empty(t, created.Ingredients)
	assert.NotNil(t, created.Ingredients)
	assert.Equal(t, model.DifficultyEasy, created.Difficulty)
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	router := setupRecipeTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSchemaViolationIsServerError(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/recipes", map[string]interface{}{
		"title":      "Soup",
		"difficulty": "Impossible",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestCreateRecordsTokenIdentity(t *testing.T) {
	router := setupRecipeTestRouter(t)
	token, err := service.NewTokenService("test-secret").GenerateToken("user-7", "chef@example.com", time.Hour)
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{"title": "Stew", "createdBy": "someone else"})
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "chef@example.com", created.CreatedBy)
}

func TestListRecipes(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	createRecipe(t, router, map[string]interface{}{"title": "A"})
	createRecipe(t, router, map[string]interface{}{"title": "B"})

	w = doJSON(t, router, http.MethodGet, "/api/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestSearchByIngredient(t *testing.T) {
	router := setupRecipeTestRouter(t)
	createRecipe(t, router, map[string]interface{}{"title": "Omelette", "ingredients": []string{"Eggs", "Butter"}})
	createRecipe(t, router, map[string]interface{}{"title": "Salad", "ingredients": []string{"Lettuce"}})

	t.Run("missing ingredient", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/recipes/search/ingredient", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Ingredient is required"}`, w.Body.String())
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/recipes/search/ingredient?ingredient=egg", nil)
		require.Equal(t, http.StatusOK, w.Code)
		recipes := decodeList(t, w)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Omelette", recipes[0].Title)
	})

	t.Run("no match", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/recipes/search/ingredient?ingredient=tofu", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestFilterRecipes(t *testing.T) {
	router := setupRecipeTestRouter(t)
	createRecipe(t, router, map[string]interface{}{
		"title": "Quick Toast", "ingredients": []string{"bread"}, "cookingTime": 5,
		"difficulty": "Easy", "category": "Breakfast",
	})
	createRecipe(t, router, map[string]interface{}{
		"title": "Roast", "ingredients": []string{"beef", "salt"}, "cookingTime": 120,
		"difficulty": "Hard", "category": "Dinner",
	})
	createRecipe(t, router, map[string]interface{}{
		"title": "Mystery", "ingredients": []string{"salt"}, "difficulty": "Medium", "category": "Dinner",
	})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query", query: "", want: []string{"Quick Toast", "Roast", "Mystery"}},
		{name: "category", query: "?category=Dinner", want: []string{"Roast", "Mystery"}},
		{name: "difficulty", query: "?difficulty=Hard", want: []string{"Roast"}},
		{name: "max time excludes missing", query: "?maxTime=60", want: []string{"Quick Toast"}},
		{name: "combined", query: "?ingredient=SALT&category=Dinner&maxTime=200", want: []string{"Roast"}},
		{name: "fractional max time", query: "?maxTime=120.5", want: []string{"Quick Toast", "Roast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/api/recipes/filter"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var titles []string
			for _, r := range decodeList(t, w) {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}

	t.Run("non-numeric maxTime", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/recipes/filter?maxTime=soon", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"maxTime must be a number of minutes"}`, w.Body.String())
	})
}

func TestGetRecipeNotFound(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/recipes/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Recipe not found"}`, w.Body.String())
}

func TestUpdateRecipe(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, map[string]interface{}{
		"title": "Soup", "ingredients": []string{"water"}, "cookingTime": 30, "category": "Lunch",
	})

	w := doJSON(t, router, http.MethodPut, "/api/recipes/"+created.ID, map[string]interface{}{
		"title":       "Better Soup",
		"ingredients": []string{"water", "stock"},
		"difficulty":  "Medium",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Better Soup", updated.Title)
	assert.Equal(t, model.StringList{"water", "stock"}, updated.Ingredients)
	assert.Equal(t, model.DifficultyMedium, updated.Difficulty)
	assert.Nil(t, updated.CookingTime)
	assert.Empty(t, updated.Category)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateMissingRecipeReturnsNull(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/recipes/does-not-exist", map[string]interface{}{"title": "X"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestDeleteRecipe(t *testing.T) {
	router := setupRecipeTestRouter(t)
	created := createRecipe(t, router, map[string]interface{}{"title": "Gone"})

	w := doJSON(t, router, http.MethodDelete, "/api/recipes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe deleted"}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/recipes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNonexistentRecipeSucceeds(t *testing.T) {
	router := setupRecipeTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/recipes/never-existed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Recipe deleted"}`, w.Body.String())
}

func TestFixedPathsTakePrecedenceOverID(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("FilterRecipes", mock.Anything, service.RecipeQuery{}).Return([]*model.Recipe{}, nil)
	svc.On("SearchByIngredient", mock.Anything, "rice").Return([]*model.Recipe{}, nil)

	router := gin.New()
	RegisterRoutes(router, svc, nil, zap.NewNop())

	w := doJSON(t, router, http.MethodGet, "/api/recipes/filter", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/recipes/search/ingredient?ingredient=rice", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "GetRecipe", mock.Anything, mock.Anything)
}

func TestStoreErrorsBecome500(t *testing.T) {
	storeErr := errors.New("connection refused")

	svc := new(mocks.MockRecipeService)
	svc.On("ListRecipes", mock.Anything).Return(nil, storeErr)
	svc.On("GetRecipe", mock.Anything, "abc").Return(nil, storeErr)
	svc.On("UpdateRecipe", mock.Anything, "abc", mock.Anything).Return(nil, storeErr)
	svc.On("DeleteRecipe", mock.Anything, "abc").Return(storeErr)
	svc.On("CreateRecipe", mock.Anything, mock.Anything).Return(nil, storeErr)

	router := gin.New()
	RegisterRoutes(router, svc, nil, zap.NewNop())

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/recipes"},
		{http.MethodGet, "/api/recipes/abc"},
		{http.MethodPut, "/api/recipes/abc"},
		{http.MethodDelete, "/api/recipes/abc"},
		{http.MethodPost, "/api/recipes"},
	} {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			w := doJSON(t, router, req.method, req.path, map[string]interface{}{"title": "x"})
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
		})
	}
}

func TestHealthAndRoot(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("Ping", mock.Anything).Return(nil).Once()
	svc.On("Ping", mock.Anything).Return(errors.New("down")).Once()

	router := gin.New()
	RegisterRoutes(router, svc, nil, zap.NewNop())

	w := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe API Running", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
