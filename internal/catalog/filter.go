package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/recipecatalog/backend/internal/model"
)

// CookingTimePolicy decides how a missing or non-numeric cooking time is
// compared against a max-minutes bound.
type CookingTimePolicy int

const (
	// InvalidFailsBound excludes recipes without a usable cooking time as
	// soon as a bound is set.
	InvalidFailsBound CookingTimePolicy = iota
	// InvalidAsZero coerces a missing cooking time to 0, so it passes every
	// non-negative bound.
	InvalidAsZero
)

func (p CookingTimePolicy) String() string {
	switch p {
	case InvalidAsZero:
		return "zero"
	case InvalidFailsBound:
		return "strict"
	}
	return fmt.Sprintf("CookingTimePolicy(%d)", int(p))
}

// ParseCookingTimePolicy accepts "strict" and "zero".
func ParseCookingTimePolicy(s string) (CookingTimePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return InvalidFailsBound, nil
	case "zero":
		return InvalidAsZero, nil
	}
	return InvalidFailsBound, fmt.Errorf("unknown cooking time policy %q", s)
}

// Criteria is the set of filters a user can combine. Empty strings mean
// "no constraint".
type Criteria struct {
	Ingredient    string
	Difficulty    string
	Category      string
	MaxMinutes    string
	FavoritesOnly bool
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter returns the recipes that satisfy every criterion, in their original
// order. The input slice is not modified.
func Filter(recipes []model.Recipe, c Criteria, favorites *Favorites, policy CookingTimePolicy) []model.Recipe {
	m := newMatcher(c, favorites, policy)
	out := make([]model.Recipe, 0, len(recipes))
	for i := range recipes {
		if m.match(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out
}

type matcher struct {
	ingredient    string
	difficulty    model.Difficulty
	category      string
	bound         float64
	boundSet      bool
	boundValid    bool
	favoritesOnly bool
	favorites     *Favorites
	policy        CookingTimePolicy
}

func newMatcher(c Criteria, favorites *Favorites, policy CookingTimePolicy) matcher {
	m := matcher{
		ingredient:    strings.ToLower(c.Ingredient),
		difficulty:    model.Difficulty(c.Difficulty),
		category:      c.Category,
		favoritesOnly: c.FavoritesOnly,
		favorites:     favorites,
		policy:        policy,
	}
	if c.MaxMinutes != "" {
		m.boundSet = true
		// A bound that is not a number matches nothing under either policy.
		if n, err := strconv.ParseFloat(strings.TrimSpace(c.MaxMinutes), 64); err == nil && !math.IsNaN(n) {
			m.bound, m.boundValid = n, true
		}
	}
	return m
}

func (m matcher) match(r *model.Recipe) bool {
	return m.matchIngredient(r) &&
		(m.difficulty == "" || r.Difficulty == m.difficulty) &&
		(m.category == "" || r.Category == m.category) &&
		m.matchTime(r) &&
		(!m.favoritesOnly || m.favorites.Has(r.ID))
}

func (m matcher) matchIngredient(r *model.Recipe) bool {
	if m.ingredient == "" {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), m.ingredient) {
			return true
		}
	}
	return false
}

func (m matcher) matchTime(r *model.Recipe) bool {
	if !m.boundSet {
		return true
	}
	if !m.boundValid {
		return false
	}
	minutes, ok := r.Minutes()
	if !ok {
		if m.policy != InvalidAsZero {
			return false
		}
		minutes = 0
	}
	return float64(minutes) <= m.bound
}
