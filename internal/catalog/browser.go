package catalog

import "github.com/recipecatalog/backend/internal/model"

// PlaceholderImageURL is shown for recipes without an image.
const PlaceholderImageURL = "https://via.placeholder.com/600x400/ffe4e6/9d174d?text=No+Image"

// DisplayImage returns the recipe image or the placeholder.
func DisplayImage(r model.Recipe) string {
	if r.ImageURL == "" {
		return PlaceholderImageURL
	}
	return r.ImageURL
}

// Browser is the mutable client state: the last fetched list, the active
// criteria and the favorites. Visible is recomputed on every call.
type Browser struct {
	Criteria  Criteria
	Policy    CookingTimePolicy
	recipes   []model.Recipe
	favorites Favorites
}

// NewBrowser returns an empty browser using policy for cooking time coercion.
func NewBrowser(policy CookingTimePolicy) *Browser {
	return &Browser{Policy: policy}
}

// Replace swaps the whole recipe list, as after a fresh fetch.
func (b *Browser) Replace(recipes []model.Recipe) {
	b.recipes = append([]model.Recipe(nil), recipes...)
}

// Recipes returns the full list held by the browser.
func (b *Browser) Recipes() []model.Recipe {
	return b.recipes
}

// ToggleFavorite flips the favorite flag of id.
func (b *Browser) ToggleFavorite(id string) bool {
	return b.favorites.Toggle(id)
}

// IsFavorite reports whether id is a favorite.
func (b *Browser) IsFavorite(id string) bool {
	return b.favorites.Has(id)
}

// Favorites returns the favorites set.
func (b *Browser) Favorites() *Favorites {
	return &b.favorites
}

// Visible applies the current criteria to the held list.
func (b *Browser) Visible() []model.Recipe {
	return Filter(b.recipes, b.Criteria, &b.favorites, b.Policy)
}
