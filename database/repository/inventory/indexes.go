// FILE: database/repository/inventory/indexes.go
package inventoryRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the availability queries rely on.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	plan := map[string][]mongo.IndexModel{
		unitsCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("unique_id"),
			},
			// Category listing of active units (primary query pattern)
			{
				Keys:    bson.D{{Key: "categoryId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "label", Value: 1}},
				Options: options.Index().SetName("category_active_label_idx"),
			},
		},
		categoriesCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("unique_id"),
			},
			{
				Keys:    bson.D{{Key: "isPublished", Value: 1}, {Key: "maxGuests", Value: 1}, {Key: "name", Value: 1}},
				Options: options.Index().SetName("published_capacity_idx"),
			},
		},
		bookingsCollection: {
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("unique_id"),
			},
			// Overlap lookups per unit
			{
				Keys:    bson.D{{Key: "roomUnitId", Value: 1}, {Key: "checkIn", Value: 1}, {Key: "checkOut", Value: 1}},
				Options: options.Index().SetName("unit_stay_idx"),
			},
		},
	}

	for coll, indexModels := range plan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}
	return nil
}
