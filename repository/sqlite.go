package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/smarttransit-lk/agents-api/models"

	_ "modernc.org/sqlite"
)

// SQLiteDB wraps a SQL database connection for SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *SQLiteDB) GetDB() *sql.DB {
	return s.db
}

// SQLiteRouteNetworkRepository serves the seeded route-network table from
// SQLite. The table is written once by Seed and read-only afterwards.
type SQLiteRouteNetworkRepository struct {
	db *sql.DB
}

// NewSQLiteRouteNetworkRepository creates a new SQLiteRouteNetworkRepository
func NewSQLiteRouteNetworkRepository(db *sql.DB) *SQLiteRouteNetworkRepository {
	return &SQLiteRouteNetworkRepository{db: db}
}

// Seed creates the route_network table and loads the literal network rows.
// Existing rows are left untouched, so Seed is safe to run on every startup.
func (r *SQLiteRouteNetworkRepository) Seed(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS route_network (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			modes TEXT NOT NULL,
			distance_km REAL NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create route_network table: %w", err)
	}

	insert := `
		INSERT OR IGNORE INTO route_network (id, name, modes, distance_km)
		VALUES (?, ?, ?, ?)
	`
	for _, route := range seedRoutes() {
		if _, err := r.db.ExecContext(ctx, insert, route.ID, route.Name, joinModes(route.Modes), route.Distance); err != nil {
			return fmt.Errorf("failed to seed route %q: %w", route.Name, err)
		}
	}

	return nil
}

// GetAllRoutes returns every route-network row in id order
func (r *SQLiteRouteNetworkRepository) GetAllRoutes(ctx context.Context) ([]models.RouteNetworkEntry, error) {
	query := `
		SELECT
			id,
			name,
			modes,
			distance_km
		FROM route_network
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query route network: %w", err)
	}
	defer rows.Close()

	var routes []models.RouteNetworkEntry
	for rows.Next() {
		var entry models.RouteNetworkEntry
		var modes string
		if err := rows.Scan(&entry.ID, &entry.Name, &modes, &entry.Distance); err != nil {
			return nil, fmt.Errorf("failed to scan route row: %w", err)
		}
		entry.Modes = splitModes(modes)
		routes = append(routes, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating route rows: %w", err)
	}

	return routes, nil
}
