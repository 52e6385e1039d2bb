package availability

import (
	"context"
	"sync"
	"time"

	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/models"
)

// fakeRepo is an in-memory inventory store that records every call.
type fakeRepo struct {
	mu         sync.Mutex
	units      []models.InventoryUnit
	categories []models.RoomCategory
	bookings   []models.ExistingBooking

	failOn map[string]error
	calls  map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{failOn: map[string]error{}, calls: map[string]int{}}
}

func (f *fakeRepo) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.failOn[op]
}

func (f *fakeRepo) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeRepo) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRepo) GetUnit(ctx context.Context, unitID string) (*models.InventoryUnit, error) {
	if err := f.record("GetUnit"); err != nil {
		return nil, err
	}
	for _, u := range f.units {
		if u.ID == unitID {
			u := u
			return &u, nil
		}
	}
	return nil, inventoryRepo.ErrNotFound
}

func (f *fakeRepo) FindOverlappingBookings(ctx context.Context, unitID string, stay models.DateRange, excludeBookingID string) ([]models.ExistingBooking, error) {
	if err := f.record("FindOverlappingBookings"); err != nil {
		return nil, err
	}
	var out []models.ExistingBooking
	for _, b := range f.bookings {
		if b.UnitID() != unitID || b.ID == excludeBookingID {
			continue
		}
		if b.BlocksInventory() && b.Range().Overlaps(stay) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindAvailableUnitsInCategory(ctx context.Context, categoryID string, stay models.DateRange) (models.CategoryAvailability, error) {
	if err := f.record("FindAvailableUnitsInCategory"); err != nil {
		return models.CategoryAvailability{}, err
	}
	occupied := map[string]bool{}
	for _, b := range f.bookings {
		if b.UnitID() != "" && b.BlocksInventory() && b.Range().Overlaps(stay) {
			occupied[b.UnitID()] = true
		}
	}
	avail := models.CategoryAvailability{UnitIDs: []string{}}
	for _, u := range f.units {
		if u.CategoryID == categoryID && u.IsActive && !occupied[u.ID] {
			avail.UnitIDs = append(avail.UnitIDs, u.ID)
		}
	}
	avail.Count = len(avail.UnitIDs)
	return avail, nil
}

func (f *fakeRepo) ListPublishedCategories(ctx context.Context, minCapacity int) ([]models.RoomCategory, error) {
	if err := f.record("ListPublishedCategories"); err != nil {
		return nil, err
	}
	var out []models.RoomCategory
	for _, c := range f.categories {
		if c.IsPublished && c.MaxGuests >= minCapacity {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBooking(ctx context.Context, bookingID string) (*models.ExistingBooking, error) {
	if err := f.record("GetBooking"); err != nil {
		return nil, err
	}
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b := b
			return &b, nil
		}
	}
	return nil, inventoryRepo.ErrNotFound
}

func (f *fakeRepo) CountUnitsInCategory(ctx context.Context, categoryID string) (int, error) {
	if err := f.record("CountUnitsInCategory"); err != nil {
		return 0, err
	}
	n := 0
	for _, u := range f.units {
		if u.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(in, out string) models.DateRange {
	return models.DateRange{CheckIn: day(in), CheckOut: day(out)}
}

func unit(id, category string) models.InventoryUnit {
	return models.InventoryUnit{ID: id, CategoryID: category, Label: id, IsActive: true}
}

func booking(id, unitID, in, out string, status models.PaymentStatus) models.ExistingBooking {
	b := models.ExistingBooking{ID: id, CheckIn: day(in), CheckOut: day(out), PaymentStatus: status}
	if unitID != "" {
		b.RoomUnitID = &unitID
	}
	return b
}
