package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/recipecatalog/backend/config"
	"github.com/recipecatalog/backend/internal/logging"
	"github.com/recipecatalog/backend/internal/server"
	"github.com/recipecatalog/backend/internal/service"
)

func main() {
	skipExisting := flag.Bool("skip-existing", true, "skip recipes whose title is already stored")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	recipes, closeStore, err := server.OpenRecipeStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open recipe store", zap.Error(err))
	}
	defer closeStore()

	created, err := seed(ctx, recipes, *skipExisting, logger)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Seeding complete", zap.Int("created", created))
}

// seed inserts the sample recipes and returns how many were created.
func seed(ctx context.Context, recipes service.IRecipeService, skipExisting bool, logger *zap.Logger) (int, error) {
	existing := map[string]bool{}
	if skipExisting {
		stored, err := recipes.ListRecipes(ctx)
		if err != nil {
			return 0, err
		}
		for _, r := range stored {
			existing[r.Title] = true
		}
	}

	created := 0
	for _, r := range sampleRecipes() {
		if existing[r.Title] {
			logger.Debug("Skipping existing recipe", zap.String("title", r.Title))
			continue
		}
		if _, err := recipes.CreateRecipe(ctx, r); err != nil {
			return created, err
		}
		logger.Info("Created recipe", zap.String("title", r.Title))
		created++
	}
	return created, nil
}
