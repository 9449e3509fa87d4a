package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/catalog"
	"github.com/recipecatalog/backend/internal/client"
)

// app holds state shared by every subcommand.
type app struct {
	serverURL string
	token     string
	timeout   time.Duration
	policy    string
	asJSON    bool

	api *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "recipectl",
		Short: "CLI for the recipe catalog API",
		Long: `recipectl browses and edits the recipe catalog served by the recipe API.

Defaults for the server URL and cooking time policy come from the same
environment and .env settings the server reads.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.serverURL, "server", "", "recipe API base URL (default from CLIENT_BASE_URL or http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&a.token, "token", "", "bearer token recorded as the recipe author")
	rootCmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "request timeout")
	rootCmd.PersistentFlags().BoolVar(&a.asJSON, "json", false, "output results as JSON")

	rootCmd.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.searchCmd(),
		a.filterCmd(),
		a.addCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.healthCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	clientCfg := cfg.Client
	if a.serverURL != "" {
		clientCfg.BaseURL = a.serverURL
	}
	if a.timeout > 0 {
		clientCfg.Timeout = a.timeout
	}
	if a.policy == "" {
		a.policy = cfg.Catalog.CookingTimePolicy
	}

	a.api = client.New(clientCfg)
	if a.token != "" {
		a.api.SetToken(a.token)
	}
	return nil
}

func (a *app) cookingTimePolicy() (catalog.CookingTimePolicy, error) {
	return catalog.ParseCookingTimePolicy(a.policy)
}

func (a *app) printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check recipe API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := a.api.Health(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), health)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %v\nstore: %v\n", health["status"], health["store"])
			return nil
		},
	}
}
