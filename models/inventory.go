package models

// InventoryUnit is a single physically bookable room.
type InventoryUnit struct {
	ID         string `bson:"id" json:"id" db:"id"`
	CategoryID string `bson:"categoryId" json:"categoryId" db:"category_id"`
	Label      string `bson:"label" json:"label" db:"label"`
	IsActive   bool   `bson:"isActive" json:"isActive" db:"is_active"`
}

// RoomCategory groups interchangeable units under a shared maximum occupancy.
type RoomCategory struct {
	ID          string `bson:"id" json:"id" db:"id"`
	Name        string `bson:"name" json:"name" db:"name"`
	MaxGuests   int    `bson:"maxGuests" json:"maxGuests" db:"max_guests"`
	IsPublished bool   `bson:"isPublished" json:"isPublished" db:"is_published"`
}

// Fits reports whether the category can be offered to a party of the given size.
func (c RoomCategory) Fits(guests int) bool {
	return c.IsPublished && c.MaxGuests >= guests
}

// CategoryAvailability is the set-based answer for one category and date range.
type CategoryAvailability struct {
	Count   int      `json:"count"`
	UnitIDs []string `json:"unitIds"`
}
