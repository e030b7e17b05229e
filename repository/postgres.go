package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smarttransit-lk/agents-api/models"
)

// PostgresRouteNetworkRepository serves the seeded route-network table from
// Postgres. Selected over SQLite when DATABASE_URL is configured.
type PostgresRouteNetworkRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRouteNetworkRepository(databaseURL string) (*PostgresRouteNetworkRepository, error) {
	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRouteNetworkRepository{pool: pool}, nil
}

func (r *PostgresRouteNetworkRepository) Close() {
	r.pool.Close()
}

// Seed creates the route_network table and loads the literal network rows.
// Existing rows are left untouched.
func (r *PostgresRouteNetworkRepository) Seed(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS route_network (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			modes TEXT NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL
		)
	`
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create route_network table: %w", err)
	}

	insert := `
		INSERT INTO route_network (id, name, modes, distance_km)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	for _, route := range seedRoutes() {
		if _, err := r.pool.Exec(ctx, insert, route.ID, route.Name, joinModes(route.Modes), route.Distance); err != nil {
			return fmt.Errorf("failed to seed route %q: %w", route.Name, err)
		}
	}

	return nil
}

// GetAllRoutes returns every route-network row in id order
func (r *PostgresRouteNetworkRepository) GetAllRoutes(ctx context.Context) ([]models.RouteNetworkEntry, error) {
	query := `
		SELECT
			id,
			name,
			modes,
			distance_km
		FROM route_network
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
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
