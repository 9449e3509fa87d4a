package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipecatalog/backend/internal/model"
	"github.com/recipecatalog/backend/internal/testhelpers"
)

// runStoreContract exercises behavior every IRecipeService backend shares.
// newStore must return an empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) IRecipeService) {
	ctx := context.Background()

	titles := func(recipes []*model.Recipe) []string {
		out := make([]string, 0, len(recipes))
		for _, r := range recipes {
			out = append(out, r.Title)
		}
		return out
	}

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		svc := newStore(t)
		in := testhelpers.NewTestRecipe("Pancakes", "flour", "milk")
		in.ID = "client-chosen"

		created, err := svc.CreateRecipe(ctx, in)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEqual(t, "client-chosen", created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		got, err := svc.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pancakes", got.Title)
		assert.Equal(t, model.StringList{"flour", "milk"}, got.Ingredients)
		assert.Equal(t, model.StringList{"Prepare", "Serve"}, got.Steps)
		require.NotNil(t, got.CookingTime)
		assert.Equal(t, 20, *got.CookingTime)
	})

	t.Run("create defaults difficulty and accepts empty lists", func(t *testing.T) {
		svc := newStore(t)

		created, err := svc.CreateRecipe(ctx, &model.Recipe{Title: "Water"})
		require.NoError(t, err)
		assert.Equal(t, model.DifficultyEasy, created.Difficulty)

		got, err := svc.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Ingredients)
		assert.Empty(t, got.Ingredients)
		assert.Nil(t, got.CookingTime)
	})

	t.Run("create enforces schema", func(t *testing.T) {
		svc := newStore(t)

		_, err := svc.CreateRecipe(ctx, &model.Recipe{Title: "  "})
		assert.ErrorIs(t, err, ErrSchema)

		_, err = svc.CreateRecipe(ctx, &model.Recipe{Title: "Stew", Difficulty: "Extreme"})
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("get unknown id", func(t *testing.T) {
		svc := newStore(t)

		_, err := svc.GetRecipe(ctx, "000000000000000000000000")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
		_, err = svc.GetRecipe(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})

	t.Run("search and filter", func(t *testing.T) {
		svc := newStore(t)

		toast := testhelpers.NewTestRecipe("Toast", "Bread", "Butter")
		toast.CookingTime = model.IntPtr(5)
		toast.Category = "Breakfast"
		roast := testhelpers.NewTestRecipe("Roast", "beef", "salt")
		roast.CookingTime = model.IntPtr(120)
		roast.Difficulty = model.DifficultyHard
		odd := testhelpers.NewTestRecipe("Odd", "100% rye", "a_b")
		odd.CookingTime = nil
		for _, r := range []*model.Recipe{toast, roast, odd} {
			_, err := svc.CreateRecipe(ctx, r)
			require.NoError(t, err)
			time.Sleep(2 * time.Millisecond)
		}

		all, err := svc.ListRecipes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Toast", "Roast", "Odd"}, titles(all))

		found, err := svc.SearchByIngredient(ctx, "BUTT")
		require.NoError(t, err)
		assert.Equal(t, []string{"Toast"}, titles(found))

		found, err = svc.SearchByIngredient(ctx, "0% r")
		require.NoError(t, err)
		assert.Equal(t, []string{"Odd"}, titles(found))

		found, err = svc.SearchByIngredient(ctx, "%")
		require.NoError(t, err)
		assert.Equal(t, []string{"Odd"}, titles(found))

		found, err = svc.SearchByIngredient(ctx, "tofu")
		require.NoError(t, err)
		assert.Empty(t, found)

		limit := 60.0
		found, err = svc.FilterRecipes(ctx, RecipeQuery{MaxTime: &limit})
		require.NoError(t, err)
		assert.Equal(t, []string{"Toast"}, titles(found))

		found, err = svc.FilterRecipes(ctx, RecipeQuery{Category: "Dinner", Difficulty: "Hard"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Roast"}, titles(found))

		found, err = svc.FilterRecipes(ctx, RecipeQuery{})
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("ingredient search matches each element", func(t *testing.T) {
		svc := newStore(t)
		for _, r := range []*model.Recipe{
			testhelpers.NewTestRecipe("Toast", "bread", "butter"),
			testhelpers.NewTestRecipe("Cake", `9" pan`, `a\b sugar`),
			testhelpers.NewTestRecipe("Crème", "CRÈME fraîche"),
		} {
			_, err := svc.CreateRecipe(ctx, r)
			require.NoError(t, err)
			time.Sleep(2 * time.Millisecond)
		}

		cases := []struct {
			needle string
			want   []string
		}{
			{needle: `"`, want: []string{"Cake"}},
			{needle: `","`},
			{needle: `9" pan`, want: []string{"Cake"}},
			{needle: `a\b`, want: []string{"Cake"}},
			{needle: "crème", want: []string{"Crème"}},
			{needle: "Fraîche", want: []string{"Crème"}},
			{needle: "d,b"},
		}
		for _, tc := range cases {
			found, err := svc.SearchByIngredient(ctx, tc.needle)
			require.NoError(t, err, tc.needle)
			if tc.want == nil {
				assert.Empty(t, found, tc.needle)
				continue
			}
			assert.Equal(t, tc.want, titles(found), tc.needle)
		}

		found, err := svc.FilterRecipes(ctx, RecipeQuery{Ingredient: `"`, Difficulty: "Easy"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Cake"}, titles(found))
	})

	t.Run("max time accepts fractional bounds", func(t *testing.T) {
		svc := newStore(t)
		quick := testhelpers.NewTestRecipe("Quick", "egg")
		quick.CookingTime = model.IntPtr(30)
		slow := testhelpers.NewTestRecipe("Slow", "beef")
		slow.CookingTime = model.IntPtr(31)
		for _, r := range []*model.Recipe{quick, slow} {
			_, err := svc.CreateRecipe(ctx, r)
			require.NoError(t, err)
		}

		bound := 30.5
		found, err := svc.FilterRecipes(ctx, RecipeQuery{MaxTime: &bound})
		require.NoError(t, err)
		assert.Equal(t, []string{"Quick"}, titles(found))
	})

	t.Run("update replaces fields", func(t *testing.T) {
		svc := newStore(t)
		created, err := svc.CreateRecipe(ctx, testhelpers.NewTestRecipe("Soup", "water"))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		updated, err := svc.UpdateRecipe(ctx, created.ID, &model.Recipe{
			ID:          "ignored",
			Title:       "Broth",
			Ingredients: model.StringList{"bones"},
			Difficulty:  model.DifficultyMedium,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Broth", updated.Title)
		assert.Equal(t, model.StringList{"bones"}, updated.Ingredients)
		assert.Empty(t, updated.Steps)
		assert.Nil(t, updated.CookingTime)
		assert.Empty(t, updated.Category)
		assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Millisecond)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("update unknown id", func(t *testing.T) {
		svc := newStore(t)

		updated, err := svc.UpdateRecipe(ctx, "000000000000000000000000", &model.Recipe{Title: "X"})
		require.NoError(t, err)
		assert.Nil(t, updated)

		updated, err = svc.UpdateRecipe(ctx, "garbage", &model.Recipe{Title: "X"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		svc := newStore(t)
		created, err := svc.CreateRecipe(ctx, testhelpers.NewTestRecipe("Gone", "air"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
		require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
		require.NoError(t, svc.DeleteRecipe(ctx, "garbage"))

		_, err = svc.GetRecipe(ctx, created.ID)
		assert.True(t, errors.Is(err, ErrRecipeNotFound))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
