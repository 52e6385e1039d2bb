// File: database/repository/inventory/queries.go
package inventoryRepo

import (
	"context"
	"errors"
	"fmt"

	"roomcheck/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoInventoryRepo) GetUnit(ctx context.Context, unitID string) (*models.InventoryUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var unit models.InventoryUnit
	if err := r.units.FindOne(ctx, bson.M{"id": unitID}).Decode(&unit); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch unit %s: %w", unitID, err)
	}
	return &unit, nil
}

func (r *mongoInventoryRepo) FindOverlappingBookings(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) ([]models.ExistingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "checkIn", Value: 1}})
	cursor, err := r.bookings.Find(ctx, unitOverlapFilter(unitID, stay, excludeBookingID), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping bookings for unit %s: %w", unitID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.ExistingBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoInventoryRepo) FindAvailableUnitsInCategory(ctx context.Context, categoryID string, stay models.DateRange) (models.CategoryAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// 1. Active units of the category, in label order.
	opts := options.Find().
		SetSort(bson.D{{Key: "label", Value: 1}, {Key: "id", Value: 1}}).
		SetProjection(bson.M{"id": 1, "label": 1})
	cursor, err := r.units.Find(ctx, activeUnitsFilter(categoryID), opts)
	if err != nil {
		return models.CategoryAvailability{}, fmt.Errorf("failed to list units for category %s: %w", categoryID, err)
	}
	var units []models.InventoryUnit
	if err := cursor.All(ctx, &units); err != nil {
		return models.CategoryAvailability{}, fmt.Errorf("error decoding units: %w", err)
	}
	if len(units) == 0 {
		return models.CategoryAvailability{UnitIDs: []string{}}, nil
	}

	unitIDs := make([]string, len(units))
	for i, u := range units {
		unitIDs[i] = u.ID
	}

	// 2. Units holding at least one blocking booking in the range.
	busy, err := r.bookings.Distinct(ctx, "roomUnitId", categoryOverlapFilter(unitIDs, stay))
	if err != nil {
		return models.CategoryAvailability{}, fmt.Errorf("failed to find occupied units for category %s: %w", categoryID, err)
	}

	return subtractOccupied(unitIDs, busy), nil
}

// subtractOccupied removes occupied unit ids (as returned by Distinct) from the candidate list.
func subtractOccupied(unitIDs []string, occupied []interface{}) models.CategoryAvailability {
	taken := make(map[string]struct{}, len(occupied))
	for _, v := range occupied {
		if id, ok := v.(string); ok {
			taken[id] = struct{}{}
		}
	}

	free := make([]string, 0, len(unitIDs))
	for _, id := range unitIDs {
		if _, ok := taken[id]; !ok {
			free = append(free, id)
		}
	}
	return models.CategoryAvailability{Count: len(free), UnitIDs: free}
}

func (r *mongoInventoryRepo) ListPublishedCategories(ctx context.Context, minCapacity int) ([]models.RoomCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.categories.Find(ctx, publishedCategoriesFilter(minCapacity), publishedCategoriesOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to list published categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.RoomCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %w", err)
	}
	return categories, nil
}

func (r *mongoInventoryRepo) GetBooking(ctx context.Context, bookingID string) (*models.ExistingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var booking models.ExistingBooking
	if err := r.bookings.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *mongoInventoryRepo) CountUnitsInCategory(ctx context.Context, categoryID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.units.CountDocuments(ctx, bson.M{"categoryId": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to count units for category %s: %w", categoryID, err)
	}
	return int(n), nil
}
