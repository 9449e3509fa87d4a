// Package catalog holds the client-side browsing state of the recipe catalog:
// the filter criteria, the in-memory favorites set and the pure filter that
// derives the visible recipes from a fetched list.
//
// Nothing in this package talks to the server. Favorites live only as long as
// the Browser value that holds them.
package catalog
