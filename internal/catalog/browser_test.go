package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recipecatalog/backend/internal/model"
)

func TestBrowserVisibleTracksStateChanges(t *testing.T) {
	b := NewBrowser(InvalidFailsBound)
	b.Replace(sampleRecipes())
	assert.Len(t, b.Visible(), 3)

	b.Criteria.Difficulty = "Easy"
	assert.Equal(t, []string{"a", "c"}, ids(b.Visible()))

	b.Criteria.FavoritesOnly = true
	assert.Empty(t, b.Visible())

	assert.True(t, b.ToggleFavorite("c"))
	assert.Equal(t, []string{"c"}, ids(b.Visible()))

	// a fresh fetch replaces the list but keeps favorites
	b.Replace([]model.Recipe{{ID: "c", Difficulty: model.DifficultyEasy}})
	assert.Equal(t, []string{"c"}, ids(b.Visible()))
	assert.True(t, b.IsFavorite("c"))
}

func TestBrowserReplaceCopies(t *testing.T) {
	list := sampleRecipes()
	b := NewBrowser(InvalidFailsBound)
	b.Replace(list)

	list[0].Title = "changed"
	assert.Equal(t, "Pancakes", b.Recipes()[0].Title)
}

func TestDisplayImage(t *testing.T) {
	assert.Equal(t, PlaceholderImageURL, DisplayImage(model.Recipe{}))
	assert.Equal(t, "http://img", DisplayImage(model.Recipe{ImageURL: "http://img"}))
}
