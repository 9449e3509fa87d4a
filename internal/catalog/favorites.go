package catalog

import "sort"

// Favorites is an in-memory set of recipe ids. The zero value is ready to use.
// It is not safe for concurrent use.
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites returns a set seeded with ids.
func NewFavorites(ids ...string) *Favorites {
	f := &Favorites{}
	for _, id := range ids {
		f.Add(id)
	}
	return f
}

// Toggle flips membership of id and reports whether it is now a favorite.
func (f *Favorites) Toggle(id string) bool {
	if f.Has(id) {
		delete(f.ids, id)
		return false
	}
	f.Add(id)
	return true
}

// Add marks id as a favorite.
func (f *Favorites) Add(id string) {
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	f.ids[id] = struct{}{}
}

// Has reports whether id is a favorite. A nil set has no favorites.
func (f *Favorites) Has(id string) bool {
	if f == nil {
		return false
	}
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	if f == nil {
		return 0
	}
	return len(f.ids)
}

// IDs returns the favorite ids in sorted order.
func (f *Favorites) IDs() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
