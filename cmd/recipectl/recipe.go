package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/recipecatalog/backend/internal/catalog"
	"github.com/recipecatalog/backend/internal/model"
)

var errRecipeGone = errors.New("recipe not found")

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := a.api.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), recipe)
			}
			printRecipe(cmd.OutOrStdout(), *recipe)
			return nil
		},
	}
}

// draftFlags binds the add/edit form fields.
func draftFlags(fs *pflag.FlagSet, d *catalog.Draft, imageFile *string) {
	fs.StringVar(&d.Title, "title", "", "recipe title")
	fs.StringVar(&d.Description, "description", "", "short description")
	fs.StringVar(&d.Ingredients, "ingredients", "", "comma-separated ingredients")
	fs.StringVar(&d.Steps, "steps", "", "comma-separated steps")
	fs.StringVar(&d.CookingTime, "cooking-time", "", "cooking time in minutes")
	fs.StringVar(&d.Difficulty, "difficulty", "", "Easy, Medium or Hard")
	fs.StringVar(&d.Category, "category", "", "one of "+strings.Join(catalog.Categories, ", "))
	fs.StringVar(&d.ImageURL, "image-url", "", "image URL")
	fs.StringVar(imageFile, "image-file", "", "local image to upload (requires server image storage)")
}

func (a *app) attachImage(cmd *cobra.Command, d *catalog.Draft, imageFile string) error {
	if imageFile == "" {
		return nil
	}
	data, err := os.ReadFile(imageFile)
	if err != nil {
		return err
	}
	url, err := a.api.UploadImage(cmd.Context(), filepath.Base(imageFile), data)
	if err != nil {
		return fmt.Errorf("image upload failed: %w", err)
	}
	d.ImageURL = url
	return nil
}

func (a *app) addCmd() *cobra.Command {
	var (
		draft     catalog.Draft
		imageFile string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Long: `Add a recipe. Title and at least one ingredient are required.

Examples:
  recipectl add --title "Pancakes" --ingredients "flour, milk, eggs" \
    --steps "Mix, Fry" --cooking-time 20 --difficulty Easy --category Breakfast`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := draft.Validate(); err != nil {
				return err
			}
			if err := a.attachImage(cmd, &draft, imageFile); err != nil {
				return err
			}

			created, err := a.api.CreateRecipe(cmd.Context(), draft.Recipe())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %s\n", created.ID)
			return nil
		},
	}
	draftFlags(cmd.Flags(), &draft, &imageFile)
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var (
		changes   catalog.Draft
		imageFile string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recipe; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.api.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			draft := catalog.DraftFrom(*current)
			fs := cmd.Flags()
			for name, field := range map[string]*string{
				"title":        &draft.Title,
				"description":  &draft.Description,
				"ingredients":  &draft.Ingredients,
				"steps":        &draft.Steps,
				"cooking-time": &draft.CookingTime,
				"difficulty":   &draft.Difficulty,
				"category":     &draft.Category,
				"image-url":    &draft.ImageURL,
			} {
				if fs.Changed(name) {
					*field, _ = fs.GetString(name)
				}
			}

			if err := draft.Validate(); err != nil {
				return err
			}
			if err := a.attachImage(cmd, &draft, imageFile); err != nil {
				return err
			}

			recipe := draft.Recipe()
			recipe.CreatedBy = current.CreatedBy
			updated, err := a.api.UpdateRecipe(cmd.Context(), args[0], recipe)
			if err != nil {
				return err
			}
			if updated == nil {
				return errRecipeGone
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %s\n", updated.ID)
			return nil
		},
	}
	draftFlags(cmd.Flags(), &changes, &imageFile)
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.DeleteRecipe(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Recipe deleted")
			return nil
		},
	}
}

func printRecipe(w io.Writer, r model.Recipe) {
	fmt.Fprintf(w, "%s\n%s\n", r.Title, strings.Repeat("=", len(r.Title)))
	if r.Description != "" {
		fmt.Fprintf(w, "%s\n", r.Description)
	}
	fmt.Fprintf(w, "\nID:         %s\n", r.ID)
	fmt.Fprintf(w, "Difficulty: %s\n", r.Difficulty)
	if r.Category != "" {
		fmt.Fprintf(w, "Category:   %s\n", r.Category)
	}
	if m, ok := r.Minutes(); ok {
		fmt.Fprintf(w, "Time:       %d min\n", m)
	}
	fmt.Fprintf(w, "Image:      %s\n", catalog.DisplayImage(r))

	fmt.Fprintln(w, "\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}
	fmt.Fprintln(w, "\nSteps:")
	for i, step := range r.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
