package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/recipecatalog/backend/internal/model"
)

// recipeDocument is the stored shape of a recipe in the document store.
type recipeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Ingredients []string           `bson:"ingredients"`
	Steps       []string           `bson:"steps"`
	CookingTime *int               `bson:"cookingTime,omitempty"`
	Difficulty  string             `bson:"difficulty"`
	Category    string             `bson:"category,omitempty"`
	ImageURL    string             `bson:"imageURL,omitempty"`
	CreatedBy   string             `bson:"createdBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toDocument(r *model.Recipe) recipeDocument {
	return recipeDocument{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: nonNil(r.Ingredients),
		Steps:       nonNil(r.Steps),
		CookingTime: r.CookingTime,
		Difficulty:  string(r.Difficulty),
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		CreatedBy:   r.CreatedBy,
	}
}

func (d recipeDocument) recipe() *model.Recipe {
	return &model.Recipe{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Ingredients: nonNil(d.Ingredients),
		Steps:       nonNil(d.Steps),
		CookingTime: d.CookingTime,
		Difficulty:  model.Difficulty(d.Difficulty),
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func nonNil(l []string) []string {
	if l == nil {
		return []string{}
	}
	return l
}

// MongoRecipeService handles recipe operations on a MongoDB collection.
type MongoRecipeService struct {
	coll   *mongo.Collection
	logger *zap.Logger
	now    func() time.Time
}

// NewMongoRecipeService creates a service over the given collection.
func NewMongoRecipeService(coll *mongo.Collection, logger *zap.Logger) *MongoRecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MongoRecipeService{
		coll:   coll,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// CreateRecipe inserts a new document and returns it with its assigned id.
func (s *MongoRecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	recipe.Normalize()
	if err := checkSchema(recipe); err != nil {
		return nil, err
	}

	doc := toDocument(recipe)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = s.now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, s.fail("create recipe", err)
	}
	return doc.recipe(), nil
}

// ListRecipes returns every document in natural order.
func (s *MongoRecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	return s.find(ctx, bson.M{})
}

// GetRecipe fetches one document. Malformed ids are reported as not found.
func (s *MongoRecipeService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRecipeNotFound
	}

	var doc recipeDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecipeNotFound
		}
		return nil, s.fail("get recipe", err)
	}
	return doc.recipe(), nil
}

// SearchByIngredient returns recipes with an ingredient containing the text.
func (s *MongoRecipeService) SearchByIngredient(ctx context.Context, ingredient string) ([]*model.Recipe, error) {
	return s.find(ctx, RecipeQuery{Ingredient: ingredient}.BSON())
}

// FilterRecipes returns recipes matching every set field of query.
func (s *MongoRecipeService) FilterRecipes(ctx context.Context, query RecipeQuery) ([]*model.Recipe, error) {
	return s.find(ctx, query.BSON())
}

// UpdateRecipe sets the client-owned fields in a single find-and-modify and
// returns the new document. A missing or malformed id yields (nil, nil).
func (s *MongoRecipeService) UpdateRecipe(ctx context.Context, id string, recipe *model.Recipe) (*model.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	recipe.Normalize()
	set := bson.M{
		"title":       recipe.Title,
		"description": recipe.Description,
		"ingredients": nonNil(recipe.Ingredients),
		"steps":       nonNil(recipe.Steps),
		"cookingTime": recipe.CookingTime,
		"difficulty":  string(recipe.Difficulty),
		"category":    recipe.Category,
		"imageURL":    recipe.ImageURL,
		"createdBy":   recipe.CreatedBy,
		"updatedAt":   s.now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc recipeDocument
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, s.fail("update recipe", err)
	}
	return doc.recipe(), nil
}

// DeleteRecipe removes a document if present.
func (s *MongoRecipeService) DeleteRecipe(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return s.fail("delete recipe", err)
	}
	return nil
}

// Ping checks that the primary is reachable.
func (s *MongoRecipeService) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func (s *MongoRecipeService) find(ctx context.Context, filter bson.M) ([]*model.Recipe, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, s.fail("find recipes", err)
	}
	defer cur.Close(ctx)

	var docs []recipeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, s.fail("decode recipes", err)
	}

	result := make([]*model.Recipe, len(docs))
	for i := range docs {
		result[i] = docs[i].recipe()
	}
	return result, nil
}

func (s *MongoRecipeService) fail(op string, err error) error {
	s.logger.Error("recipe store operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
