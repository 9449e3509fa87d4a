package catalog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/recipecatalog/backend/internal/model"
)

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrNoIngredients = errors.New("at least one ingredient is required")
)

// Categories are the category suggestions offered by the add/edit form. The
// server accepts any category.
var Categories = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert", "Beverage"}

// SplitList splits comma separated form input, trims every entry and drops
// blank ones. An empty input yields an empty, non-nil slice.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Draft is the raw add/edit form state, before it becomes a request payload.
type Draft struct {
	Title       string
	Description string
	Ingredients string
	Steps       string
	CookingTime string
	Difficulty  string
	Category    string
	ImageURL    string
}

// DraftFrom fills a draft from an existing recipe for editing.
func DraftFrom(r model.Recipe) Draft {
	d := Draft{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: strings.Join(r.Ingredients, ", "),
		Steps:       strings.Join(r.Steps, ", "),
		Difficulty:  string(r.Difficulty),
		Category:    r.Category,
		ImageURL:    r.ImageURL,
	}
	if m, ok := r.Minutes(); ok {
		d.CookingTime = strconv.Itoa(m)
	}
	return d
}

// Validate blocks drafts that must never reach the server.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if len(SplitList(d.Ingredients)) == 0 {
		return ErrNoIngredients
	}
	return nil
}

// Recipe converts the draft into a request payload. A cooking time that is
// not an integer is sent as absent.
func (d Draft) Recipe() *model.Recipe {
	r := &model.Recipe{
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Ingredients: SplitList(d.Ingredients),
		Steps:       SplitList(d.Steps),
		Difficulty:  model.Difficulty(d.Difficulty),
		Category:    d.Category,
		ImageURL:    strings.TrimSpace(d.ImageURL),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.CookingTime)); err == nil {
		r.CookingTime = &n
	}
	return r
}
