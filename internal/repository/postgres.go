package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"propertyagent/internal/model"
	"propertyagent/internal/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository handles read-only access to the schools and
// parcels catalog
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LoadSchools returns the full school catalog, ordered by name. The
// result is the immutable snapshot the entity resolver works on.
func (r *PostgresRepository) LoadSchools(ctx context.Context) ([]model.School, error) {
	query := `
		SELECT school_id, name,
		       ST_Y(geom::geometry) AS lat,
		       ST_X(geom::geometry) AS lon
		FROM schools
		ORDER BY name
	`
	var schools []model.School
	if err := r.db.SelectContext(ctx, &schools, query); err != nil {
		return nil, fmt.Errorf("failed to load schools: %w", err)
	}
	return schools, nil
}

// ListSchoolNames returns all school names sorted alphabetically
func (r *PostgresRepository) ListSchoolNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT name FROM schools ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return names, nil
}

// SearchParcels executes a query spec produced by the query builder.
// Distances come back in miles and are rounded to two decimals for
// presentation.
func (r *PostgresRepository) SearchParcels(ctx context.Context, spec *model.QuerySpec) ([]model.ParcelHit, error) {
	var hits []model.ParcelHit
	if err := r.db.SelectContext(ctx, &hits, spec.SQL, spec.Args...); err != nil {
		return nil, fmt.Errorf("failed to search parcels: %w", err)
	}

	for i := range hits {
		hits[i].DistanceMiles = utils.RoundTo(hits[i].DistanceMiles, 2)
	}
	return hits, nil
}
