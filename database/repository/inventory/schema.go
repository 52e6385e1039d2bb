package inventoryRepo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresSchema creates the tables the PostgreSQL repository reads. The
// exclusion constraint is what finally settles two concurrent bookings that both
// passed validation: only one of the inserts can commit.
const PostgresSchema = `
CREATE EXTENSION IF NOT EXISTS btree_gist;

CREATE TABLE IF NOT EXISTS room_categories (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	max_guests   INTEGER NOT NULL CHECK (max_guests > 0),
	is_published BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS room_units (
	id          TEXT PRIMARY KEY,
	category_id TEXT NOT NULL REFERENCES room_categories (id),
	label       TEXT NOT NULL,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS room_units_category_active_idx ON room_units (category_id, is_active, label);

CREATE TABLE IF NOT EXISTS bookings (
	id             TEXT PRIMARY KEY,
	room_unit_id   TEXT REFERENCES room_units (id),
	check_in       DATE NOT NULL,
	check_out      DATE NOT NULL,
	payment_status TEXT NOT NULL DEFAULT 'pending',
	CHECK (check_out > check_in)
);

CREATE INDEX IF NOT EXISTS bookings_unit_stay_idx ON bookings (room_unit_id, check_in, check_out);

DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap') THEN
		ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (room_unit_id WITH =, daterange(check_in, check_out, '[)') WITH &&)
			WHERE (payment_status NOT IN ('cancelled', 'refunded', 'failed'));
	END IF;
END
$$;
`

// EnsureSchema applies PostgresSchema. Every statement is idempotent.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("failed to apply inventory schema: %w", err)
	}
	return nil
}
