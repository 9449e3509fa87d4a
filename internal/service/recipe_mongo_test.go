package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/internal/model"
	"github.com/recipecatalog/backend/internal/testhelpers"
)

func TestMongoRecipeService(t *testing.T) {
	coll := testhelpers.SetupTestMongo(t)
	runStoreContract(t, func(t *testing.T) IRecipeService {
		_, err := coll.DeleteMany(context.Background(), bson.M{})
		require.NoError(t, err)
		return NewMongoRecipeService(coll, zap.NewNop())
	})
}

func TestMongoRecipeServiceStoresObjectIDs(t *testing.T) {
	coll := testhelpers.SetupTestMongo(t)
	svc := NewMongoRecipeService(coll, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &model.Recipe{Title: "Tea", Ingredients: model.StringList{"leaves"}})
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)

	var raw bson.M
	require.NoError(t, coll.FindOne(ctx, bson.M{}).Decode(&raw))
	assert.Contains(t, raw, "_id")
	assert.Equal(t, "Tea", raw["title"])
	assert.Equal(t, "Easy", raw["difficulty"])
}
