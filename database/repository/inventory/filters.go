package inventoryRepo

import (
	"roomcheck/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// blockingOverlapFilter matches bookings that hold a unit during any night of stay.
func blockingOverlapFilter(stay models.DateRange) bson.M {
	return bson.M{
		"paymentStatus": bson.M{"$nin": models.NonBlockingStatusStrings()},
		"checkIn":       bson.M{"$lt": stay.CheckOut},
		"checkOut":      bson.M{"$gt": stay.CheckIn},
	}
}

func unitOverlapFilter(unitID string, stay models.DateRange, excludeBookingID string) bson.M {
	filter := blockingOverlapFilter(stay)
	filter["roomUnitId"] = unitID
	if excludeBookingID != "" {
		filter["id"] = bson.M{"$ne": excludeBookingID}
	}
	return filter
}

func categoryOverlapFilter(unitIDs []string, stay models.DateRange) bson.M {
	filter := blockingOverlapFilter(stay)
	filter["roomUnitId"] = bson.M{"$in": unitIDs}
	return filter
}

func activeUnitsFilter(categoryID string) bson.M {
	return bson.M{"categoryId": categoryID, "isActive": true}
}

func publishedCategoriesFilter(minCapacity int) bson.M {
	return bson.M{"isPublished": true, "maxGuests": bson.M{"$gte": minCapacity}}
}

func publishedCategoriesOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "id", Value: 1}})
}
