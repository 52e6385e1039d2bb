package inventoryRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"roomcheck/models"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmoiron/sqlx"
)

type postgresInventoryRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgresInventoryRepo constructs a PostgreSQL-backed Repository.
func NewPostgresInventoryRepo(db *sqlx.DB, timeout time.Duration) Repository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &postgresInventoryRepo{db: db, timeout: timeout}
}

// subsegment opens an X-Ray subsegment when a parent segment exists.
func subsegment(ctx context.Context, name string) (context.Context, func(error)) {
	if xray.GetSegment(ctx) == nil {
		return ctx, func(error) {}
	}
	ctx, seg := xray.BeginSubsegment(ctx, name)
	if seg == nil {
		return ctx, func(error) {}
	}
	return ctx, seg.Close
}

func (r *postgresInventoryRepo) GetUnit(ctx context.Context, unitID string) (*models.InventoryUnit, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.GetUnit")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildGetUnitQuery(unitID)
	if err != nil {
		closeSeg(err)
		return nil, err
	}

	var unit models.InventoryUnit
	if err := r.db.GetContext(ctx, &unit, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			closeSeg(nil)
			return nil, ErrNotFound
		}
		closeSeg(err)
		return nil, fmt.Errorf("failed to fetch unit %s: %w", unitID, err)
	}
	closeSeg(nil)
	return &unit, nil
}

func (r *postgresInventoryRepo) FindOverlappingBookings(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) ([]models.ExistingBooking, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.FindOverlappingBookings")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildOverlappingBookingsQuery(unitID, stay, excludeBookingID)
	if err != nil {
		closeSeg(err)
		return nil, err
	}

	var bookings []models.ExistingBooking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		closeSeg(err)
		return nil, fmt.Errorf("failed to find overlapping bookings for unit %s: %w", unitID, err)
	}
	closeSeg(nil)
	return bookings, nil
}

func (r *postgresInventoryRepo) FindAvailableUnitsInCategory(ctx context.Context, categoryID string, stay models.DateRange) (models.CategoryAvailability, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.FindAvailableUnitsInCategory")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildAvailableUnitsQuery(categoryID, stay)
	if err != nil {
		closeSeg(err)
		return models.CategoryAvailability{}, err
	}

	unitIDs := []string{}
	if err := r.db.SelectContext(ctx, &unitIDs, query, args...); err != nil {
		closeSeg(err)
		return models.CategoryAvailability{}, fmt.Errorf("failed to find available units for category %s: %w", categoryID, err)
	}
	closeSeg(nil)
	return models.CategoryAvailability{Count: len(unitIDs), UnitIDs: unitIDs}, nil
}

func (r *postgresInventoryRepo) ListPublishedCategories(ctx context.Context, minCapacity int) ([]models.RoomCategory, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.ListPublishedCategories")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildPublishedCategoriesQuery(minCapacity)
	if err != nil {
		closeSeg(err)
		return nil, err
	}

	var categories []models.RoomCategory
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		closeSeg(err)
		return nil, fmt.Errorf("failed to list published categories: %w", err)
	}
	closeSeg(nil)
	return categories, nil
}

func (r *postgresInventoryRepo) GetBooking(ctx context.Context, bookingID string) (*models.ExistingBooking, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.GetBooking")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildGetBookingQuery(bookingID)
	if err != nil {
		closeSeg(err)
		return nil, err
	}

	var booking models.ExistingBooking
	if err := r.db.GetContext(ctx, &booking, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			closeSeg(nil)
			return nil, ErrNotFound
		}
		closeSeg(err)
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	closeSeg(nil)
	return &booking, nil
}

func (r *postgresInventoryRepo) CountUnitsInCategory(ctx context.Context, categoryID string) (int, error) {
	ctx, closeSeg := subsegment(ctx, "InventoryRepository.CountUnitsInCategory")
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query, args, err := buildCountUnitsQuery(categoryID)
	if err != nil {
		closeSeg(err)
		return 0, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		closeSeg(err)
		return 0, fmt.Errorf("failed to count units for category %s: %w", categoryID, err)
	}
	closeSeg(nil)
	return n, nil
}
