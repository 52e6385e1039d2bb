// Command seed loads a demo inventory into the configured store.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"roomcheck/config"
	"roomcheck/database"
	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/models"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fx := generateFixtures(rng, time.Now(), 3, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch config.AppConfig.StoreDriver {
	case config.StorePostgres:
		if err := database.InitPostgres(); err != nil {
			log.Fatalf("seed: %v", err)
		}
		defer database.PostgresDB.Close()
		if err := seedPostgres(ctx, database.PostgresDB, fx); err != nil {
			log.Fatalf("seed: %v", err)
		}
	default:
		if err := database.InitDB(); err != nil {
			log.Fatalf("seed: %v", err)
		}
		defer database.MongoClient.Disconnect(context.Background())
		if err := seedMongo(ctx, database.MongoDatabase(), fx); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	fmt.Printf("Seeded %d categories, %d units, %d bookings into %s\n",
		len(fx.categories), len(fx.units), len(fx.bookings), config.AppConfig.StoreDriver)
}

func seedMongo(ctx context.Context, db *mongo.Database, fx fixtures) error {
	if err := inventoryRepo.EnsureIndexes(db); err != nil {
		return err
	}

	docs := map[string][]interface{}{
		"room_categories": toDocs(fx.categories),
		"room_units":      toDocs(fx.units),
		"bookings":        toDocs(fx.bookings),
	}
	for _, name := range []string{"bookings", "room_units", "room_categories"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	for _, name := range []string{"room_categories", "room_units", "bookings"} {
		if len(docs[name]) == 0 {
			continue
		}
		if _, err := db.Collection(name).InsertMany(ctx, docs[name]); err != nil {
			return fmt.Errorf("failed to insert %s: %w", name, err)
		}
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i := range items {
		out[i] = items[i]
	}
	return out
}

func seedPostgres(ctx context.Context, db *sqlx.DB, fx fixtures) error {
	if err := inventoryRepo.EnsureSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "TRUNCATE bookings, room_units, room_categories"); err != nil {
		return fmt.Errorf("failed to truncate inventory: %w", err)
	}

	dialect := goqu.Dialect("postgres")

	categories := make([]interface{}, len(fx.categories))
	for i, c := range fx.categories {
		categories[i] = goqu.Record{"id": c.ID, "name": c.Name, "max_guests": c.MaxGuests, "is_published": c.IsPublished}
	}
	units := make([]interface{}, len(fx.units))
	for i, u := range fx.units {
		units[i] = goqu.Record{"id": u.ID, "category_id": u.CategoryID, "label": u.Label, "is_active": u.IsActive}
	}
	bookings := make([]interface{}, len(fx.bookings))
	for i, b := range fx.bookings {
		var unitID interface{}
		if id := b.UnitID(); id != "" {
			unitID = id
		}
		bookings[i] = goqu.Record{
			"id":             b.ID,
			"room_unit_id":   unitID,
			"check_in":       b.CheckIn.Format(models.DateLayout),
			"check_out":      b.CheckOut.Format(models.DateLayout),
			"payment_status": string(b.PaymentStatus),
		}
	}

	for _, batch := range []struct {
		table string
		rows  []interface{}
	}{
		{"room_categories", categories},
		{"room_units", units},
		{"bookings", bookings},
	} {
		if len(batch.rows) == 0 {
			continue
		}
		query, args, err := dialect.Insert(batch.table).Rows(batch.rows...).Prepared(true).ToSQL()
		if err != nil {
			return fmt.Errorf("failed to build %s insert: %w", batch.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert %s: %w", batch.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
