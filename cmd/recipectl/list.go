package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/recipecatalog/backend/internal/catalog"
	"github.com/recipecatalog/backend/internal/client"
	"github.com/recipecatalog/backend/internal/model"
)

func (a *app) listCmd() *cobra.Command {
	var (
		criteria  catalog.Criteria
		favorites []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, filtered locally",
		Long: `List fetches every recipe and filters the result locally.

Examples:
  # Easy recipes with eggs ready in 20 minutes
  recipectl list --ingredient egg --difficulty Easy --max-minutes 20

  # Only recipes marked as favorites
  recipectl list --favorite 64b0c0ffee --favorite 64b0beef --favorites-only

  # Treat recipes without a cooking time as instant
  recipectl list --max-minutes 10 --policy zero`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := a.cookingTimePolicy()
			if err != nil {
				return err
			}

			recipes, err := a.api.ListRecipes(cmd.Context())
			if err != nil {
				return err
			}

			browser := catalog.NewBrowser(policy)
			browser.Replace(recipes)
			browser.Criteria = criteria
			for _, id := range favorites {
				browser.Favorites().Add(id)
			}

			visible := browser.Visible()
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), visible)
			}
			return printTable(cmd.OutOrStdout(), visible, browser.Favorites())
		},
	}

	cmd.Flags().StringVar(&criteria.Ingredient, "ingredient", "", "ingredient substring (case-insensitive)")
	cmd.Flags().StringVar(&criteria.Difficulty, "difficulty", "", "exact difficulty: Easy, Medium or Hard")
	cmd.Flags().StringVar(&criteria.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&criteria.MaxMinutes, "max-minutes", "", "maximum cooking time in minutes")
	cmd.Flags().StringSliceVar(&favorites, "favorite", nil, "recipe id to mark as favorite (repeatable)")
	cmd.Flags().BoolVar(&criteria.FavoritesOnly, "favorites-only", false, "only show favorites")
	cmd.Flags().StringVar(&a.policy, "policy", "", "cooking time policy: strict or zero")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <ingredient>",
		Short: "Search recipes by ingredient on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := a.api.SearchByIngredient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printRecipes(cmd.OutOrStdout(), recipes)
		},
	}
}

func (a *app) filterCmd() *cobra.Command {
	var params client.FilterParams

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter recipes on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := a.api.FilterRecipes(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.printRecipes(cmd.OutOrStdout(), recipes)
		},
	}

	cmd.Flags().StringVar(&params.Ingredient, "ingredient", "", "ingredient substring")
	cmd.Flags().StringVar(&params.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&params.Difficulty, "difficulty", "", "exact difficulty")
	cmd.Flags().StringVar(&params.MaxTime, "max-time", "", "maximum cooking time in minutes")
	return cmd
}

func (a *app) printRecipes(w io.Writer, recipes []model.Recipe) error {
	if a.asJSON {
		return a.printJSON(w, recipes)
	}
	return printTable(w, recipes, nil)
}

func printTable(w io.Writer, recipes []model.Recipe, favorites *catalog.Favorites) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, "No recipes found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tCATEGORY\tMINUTES\tFAV")
	for _, r := range recipes {
		minutes := "-"
		if m, ok := r.Minutes(); ok {
			minutes = fmt.Sprint(m)
		}
		fav := ""
		if favorites.Has(r.ID) {
			fav = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Difficulty, r.Category, minutes, fav)
	}
	return tw.Flush()
}
