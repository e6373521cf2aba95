package streets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/streetdivider/internal/normalize"
)

// ErrNoSchema is returned when the special_street table has not been created yet.
var ErrNoSchema = errors.New("special_street table missing, run EnsureSchema first")

// postgres SQLSTATE for undefined_table
const pqUndefinedTable = "42P01"

// Store persists special streets in PostgreSQL.
type Store struct {
	db *sql.DB
}

// NewStore creates a store on an open connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the special_street table if it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS special_street (
		street_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		street_key TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_special_street_key ON special_street(street_key);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating special_street table: %w", err)
	}
	return nil
}

// Import inserts names in one transaction and returns how many were new.
func (s *Store) Import(ctx context.Context, names []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO special_street (name, street_key)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`)
	if err != nil {
		return 0, wrapPQ("preparing import", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, name := range names {
		res, err := stmt.ExecContext(ctx, name, normalize.StreetKey(name))
		if err != nil {
			return 0, wrapPQ(fmt.Sprintf("inserting %q", name), err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return inserted, nil
}

// Remove deletes the given names and returns how many rows went away.
func (s *Store) Remove(ctx context.Context, names []string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM special_street WHERE name = ANY($1)`, pq.Array(names))
	if err != nil {
		return 0, wrapPQ("removing streets", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting removed streets: %w", err)
	}
	return int(n), nil
}

// List returns all stored street names ordered by name.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM special_street ORDER BY name`)
	if err != nil {
		return nil, wrapPQ("querying streets", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning street row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM special_street`).Scan(&count)
	if err != nil {
		return 0, wrapPQ("counting streets", err)
	}
	return count, nil
}

func wrapPQ(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
		return fmt.Errorf("%s: %w", op, ErrNoSchema)
	}
	return fmt.Errorf("%s: %w", op, err)
}
