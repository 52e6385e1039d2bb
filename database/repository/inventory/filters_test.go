package inventoryRepo

import (
	"testing"
	"time"

	"roomcheck/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func testStay() models.DateRange {
	return models.DateRange{
		CheckIn:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestUnitOverlapFilter(t *testing.T) {
	s := testStay()

	filter := unitOverlapFilter("u1", s, "")
	assert.Equal(t, "u1", filter["roomUnitId"])
	assert.Equal(t, bson.M{"$lt": s.CheckOut}, filter["checkIn"])
	assert.Equal(t, bson.M{"$gt": s.CheckIn}, filter["checkOut"])
	assert.Equal(t, bson.M{"$nin": []string{"cancelled", "refunded", "failed"}}, filter["paymentStatus"])
	assert.NotContains(t, filter, "id")

	withExclude := unitOverlapFilter("u1", s, "b1")
	assert.Equal(t, bson.M{"$ne": "b1"}, withExclude["id"])
}

func TestCategoryOverlapFilter(t *testing.T) {
	filter := categoryOverlapFilter([]string{"u1", "u2"}, testStay())
	assert.Equal(t, bson.M{"$in": []string{"u1", "u2"}}, filter["roomUnitId"])
	assert.Contains(t, filter, "paymentStatus")
}

func TestPublishedCategoriesFilter(t *testing.T) {
	assert.Equal(t, bson.M{"isPublished": true, "maxGuests": bson.M{"$gte": 3}}, publishedCategoriesFilter(3))
	assert.Equal(t, bson.M{"categoryId": "c1", "isActive": true}, activeUnitsFilter("c1"))
}

func TestSubtractOccupied(t *testing.T) {
	got := subtractOccupied(
		[]string{"u1", "u2", "u3"},
		[]interface{}{"u2", nil, 42},
	)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{"u1", "u3"}, got.UnitIDs)

	none := subtractOccupied(nil, nil)
	assert.Equal(t, 0, none.Count)
	assert.Empty(t, none.UnitIDs)
}
