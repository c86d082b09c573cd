// Package store persists catalog snapshots for offline browsing.
//
// Each successful fetch replaces the previous snapshot wholesale inside a
// transaction, preserving fetch order. The store is only read when the user
// explicitly asks for offline mode - a failed live fetch never falls back
// to stale data.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calebwray/shopfront/internal/catalog"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// Store handles persistence of catalog snapshots.
type Store struct {
	db *sql.DB
}

// New creates a SQLite store at the given path. The database is created if
// it doesn't exist, and the schema is applied automatically.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		position INTEGER PRIMARY KEY,
		id INTEGER NOT NULL,
		title TEXT NOT NULL,
		price REAL,
		description TEXT,
		category_name TEXT,
		images TEXT,
		fetched_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveSnapshot replaces the stored catalog with products, keeping fetch
// order via the position column. The replacement is atomic.
func (s *Store) SaveSnapshot(products []catalog.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO products (position, id, title, price, description, category_name, images, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i, p := range products {
		var price sql.NullFloat64
		if p.Price != nil {
			price = sql.NullFloat64{Float64: *p.Price, Valid: true}
		}
		var category sql.NullString
		if p.Category != nil {
			category = sql.NullString{String: p.Category.Name, Valid: true}
		}
		var images sql.NullString
		if p.Images != nil {
			encoded, err := json.Marshal(p.Images)
			if err != nil {
				return fmt.Errorf("failed to encode images for product %d: %w", p.ID, err)
			}
			images = sql.NullString{String: string(encoded), Valid: true}
		}

		if _, err := stmt.Exec(i, p.ID, p.Title, price, p.Description, category, images, now); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot returns the stored catalog in fetch order. An empty store
// yields an empty slice, not an error.
func (s *Store) LoadSnapshot() ([]catalog.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, title, price, description, category_name, images
		FROM products ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var (
			p        catalog.Product
			price    sql.NullFloat64
			category sql.NullString
			images   sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &price, &p.Description, &category, &images); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if price.Valid {
			v := price.Float64
			p.Price = &v
		}
		if category.Valid {
			p.Category = &catalog.Category{Name: category.String}
		}
		if images.Valid {
			if err := json.Unmarshal([]byte(images.String), &p.Images); err != nil {
				return nil, fmt.Errorf("failed to decode images for product %d: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
