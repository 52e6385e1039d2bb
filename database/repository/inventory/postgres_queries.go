package inventoryRepo

import (
	"errors"

	"roomcheck/models"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

const dialectPostgres = "postgres"

const (
	tableUnits      = "room_units"
	tableCategories = "room_categories"
	tableBookings   = "bookings"
)

var (
	unitColumns     = []interface{}{"id", "category_id", "label", "is_active"}
	categoryColumns = []interface{}{"id", "name", "max_guests", "is_published"}
	bookingColumns  = []interface{}{"id", "room_unit_id", "check_in", "check_out", "payment_status"}
)

func dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

func toSQL(ds *goqu.SelectDataset) (string, []interface{}, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, errors.Join(errors.New("building the query failed"), err)
	}
	return query, args, nil
}

// blockingOverlap is the shared predicate: booking is not in a non-blocking
// status and [check_in, check_out) intersects the stay.
func blockingOverlap(stay models.DateRange) goqu.Expression {
	return goqu.And(
		goqu.C("payment_status").NotIn(models.NonBlockingStatusStrings()),
		goqu.C("check_in").Lt(stay.CheckOut),
		goqu.C("check_out").Gt(stay.CheckIn),
	)
}

func buildGetUnitQuery(unitID string) (string, []interface{}, error) {
	return toSQL(dialect().
		From(tableUnits).
		Select(unitColumns...).
		Where(goqu.C("id").Eq(unitID)).
		Limit(1))
}

func buildOverlappingBookingsQuery(unitID string, stay models.DateRange, excludeBookingID string) (string, []interface{}, error) {
	where := []goqu.Expression{
		goqu.C("room_unit_id").Eq(unitID),
		blockingOverlap(stay),
	}
	if excludeBookingID != "" {
		where = append(where, goqu.C("id").Neq(excludeBookingID))
	}

	return toSQL(dialect().
		From(tableBookings).
		Select(bookingColumns...).
		Where(where...).
		Order(goqu.C("check_in").Asc()))
}

func buildAvailableUnitsQuery(categoryID string, stay models.DateRange) (string, []interface{}, error) {
	occupied := dialect().
		From(tableBookings).
		Select("room_unit_id").
		Where(
			goqu.C("room_unit_id").IsNotNull(),
			blockingOverlap(stay),
		)

	return toSQL(dialect().
		From(tableUnits).
		Select("id").
		Where(
			goqu.C("category_id").Eq(categoryID),
			goqu.C("is_active").IsTrue(),
			goqu.C("id").NotIn(occupied),
		).
		Order(goqu.C("label").Asc(), goqu.C("id").Asc()))
}

func buildPublishedCategoriesQuery(minCapacity int) (string, []interface{}, error) {
	return toSQL(dialect().
		From(tableCategories).
		Select(categoryColumns...).
		Where(
			goqu.C("is_published").IsTrue(),
			goqu.C("max_guests").Gte(minCapacity),
		).
		Order(goqu.C("name").Asc(), goqu.C("id").Asc()))
}

func buildGetBookingQuery(bookingID string) (string, []interface{}, error) {
	return toSQL(dialect().
		From(tableBookings).
		Select(bookingColumns...).
		Where(goqu.C("id").Eq(bookingID)).
		Limit(1))
}

func buildCountUnitsQuery(categoryID string) (string, []interface{}, error) {
	return toSQL(dialect().
		From(tableUnits).
		Select(goqu.COUNT("*")).
		Where(goqu.C("category_id").Eq(categoryID)))
}
