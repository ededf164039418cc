package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the name-lookup indexes on every record collection.
// The indexes carry the same collation the search queries use, so whole-field
// case-insensitive matches stay index-backed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, col := range []string{ColLife, ColProperty, ColVehicle} {
		if err := ensureNameIndexes(ctx, db, col); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", col, err)
		}
	}
	return nil
}

func ensureNameIndexes(ctx context.Context, db *mongo.Database, col string) error {
	coll := db.Collection(col)
	models := []mongo.IndexModel{
		newNameIndex("first_name", col+"_first_name_ci"),
		newNameIndex("family_name", col+"_family_name_ci"),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func newNameIndex(field, name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: 1}},
		Options: options.Index().
			SetName(name).
			SetCollation(caseInsensitive),
	}
}
