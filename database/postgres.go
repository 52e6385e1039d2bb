package database

import (
	"database/sql"
	"fmt"
	"time"

	"roomcheck/config"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresDB is the global PostgreSQL handle, set by InitPostgres.
var PostgresDB *sqlx.DB

// PostgresDSN builds the lib/pq connection string from configuration.
func PostgresDSN(cfg config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
		cfg.PostgresSSLMode,
	)
}

// InitPostgres opens the connection pool, wrapping the driver with X-Ray when tracing is enabled.
func InitPostgres() error {
	dsn := PostgresDSN(config.AppConfig)

	var (
		db  *sql.DB
		err error
	)
	if config.AppConfig.EnableTracing {
		db, err = xray.SQLContext("postgres", dsn)
	} else {
		db, err = sql.Open("postgres", dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	PostgresDB = sqlx.NewDb(db, "postgres")
	return nil
}
