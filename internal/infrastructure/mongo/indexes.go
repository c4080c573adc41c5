package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections names the collections EnsureIndexes touches.
type Collections struct {
	Providers  string
	Categories string
	MenuItems  string
}

// EnsureIndexes creates the unique and lookup indexes. It is safe to call
// on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, c Collections) error {
	if _, err := db.Collection(c.Providers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	if _, err := db.Collection(c.Categories).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "order", Value: 1}}},
	}); err != nil {
		return err
	}
	_, err := db.Collection(c.MenuItems).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "categoryId", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "isAvailable", Value: 1}}},
	})
	return err
}
