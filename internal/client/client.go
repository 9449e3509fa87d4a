// Package client is a typed HTTP client for the recipe API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/model"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recipe api: %d %s", e.Status, e.Message)
}

// errorBody covers both error shapes the API emits.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// FilterParams are the server-side filter query parameters. Empty fields are omitted.
type FilterParams struct {
	Ingredient string
	Category   string
	Difficulty string
	MaxTime    string
}

// Client talks to the recipe API.
type Client struct {
	http *resty.Client
}

// New creates a client for cfg.BaseURL.
func New(cfg config.ClientConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// SetToken sends token as a bearer credential on every request.
func (c *Client) SetToken(token string) *Client {
	c.http.SetAuthToken(token)
	return c
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&errorBody{})
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("recipe api request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode(), Message: resp.Status()}
	if body, ok := resp.Error().(*errorBody); ok {
		switch {
		case body.Message != "":
			apiErr.Message = body.Message
		case body.Error != "":
			apiErr.Message = body.Error
		}
	}
	return apiErr
}

func (c *Client) list(ctx context.Context, path string, params map[string]string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&recipes).
		Get(path)
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListRecipes fetches every recipe.
func (c *Client) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	return c.list(ctx, "/api/recipes", nil)
}

// SearchByIngredient runs the server-side ingredient search.
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string) ([]model.Recipe, error) {
	return c.list(ctx, "/api/recipes/search/ingredient", map[string]string{"ingredient": ingredient})
}

// FilterRecipes runs the server-side filter.
func (c *Client) FilterRecipes(ctx context.Context, p FilterParams) ([]model.Recipe, error) {
	params := map[string]string{}
	for key, value := range map[string]string{
		"ingredient": p.Ingredient,
		"category":   p.Category,
		"difficulty": p.Difficulty,
		"maxTime":    p.MaxTime,
	} {
		if value != "" {
			params[key] = value
		}
	}
	return c.list(ctx, "/api/recipes/filter", params)
}

// GetRecipe fetches one recipe.
func (c *Client) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetResult(&recipe).
		Get("/api/recipes/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe stores a new recipe and returns it as persisted.
func (c *Client) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	var created model.Recipe
	resp, err := c.request(ctx).
		SetBody(recipe).
		SetResult(&created).
		Post("/api/recipes")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRecipe replaces a recipe. It returns nil when the id is unknown.
func (c *Client) UpdateRecipe(ctx context.Context, id string, recipe *model.Recipe) (*model.Recipe, error) {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		SetBody(recipe).
		Put("/api/recipes/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}

	var updated *model.Recipe
	if err := json.Unmarshal(resp.Body(), &updated); err != nil {
		return nil, fmt.Errorf("failed to decode updated recipe: %w", err)
	}
	return updated, nil
}

// DeleteRecipe removes a recipe; unknown ids are not an error.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	resp, err := c.request(ctx).
		SetPathParam("id", id).
		Delete("/api/recipes/{id}")
	return check(resp, err)
}

// UploadImage uploads image data and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var out struct {
		ImageURL string `json:"imageURL"`
	}
	resp, err := c.request(ctx).
		SetFileReader("image", filename, bytes.NewReader(data)).
		SetResult(&out).
		Post("/api/images")
	if err := check(resp, err); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// Health reports the server's health document.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	resp, err := c.request(ctx).
		SetResult(&out).
		Get("/health")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
