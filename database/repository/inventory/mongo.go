package inventoryRepo

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	unitsCollection      = "room_units"
	categoriesCollection = "room_categories"
	bookingsCollection   = "bookings"
)

type mongoInventoryRepo struct {
	units      *mongo.Collection
	categories *mongo.Collection
	bookings   *mongo.Collection
	timeout    time.Duration
}

// NewMongoInventoryRepo constructs a MongoDB-backed Repository.
func NewMongoInventoryRepo(db *mongo.Database, timeout time.Duration) Repository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &mongoInventoryRepo{
		units:      db.Collection(unitsCollection),
		categories: db.Collection(categoriesCollection),
		bookings:   db.Collection(bookingsCollection),
		timeout:    timeout,
	}
}
