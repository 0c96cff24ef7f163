package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/openenvelope/thstrat/stratfile"
	"github.com/openenvelope/thstrat/stratum"
)

// ErrNotFound indicates no material with the requested name exists.
var ErrNotFound = errors.New("catalog: material not found")

// Material is one catalog record.
type Material struct {
	// Name is the unique key referenced from stratigraphy files.
	Name string `db:"name"`
	// Conductivity in W/(K·m).
	Conductivity float64 `db:"conductivity"`
	// Description is free text, informational only.
	Description string `db:"description"`
}

// DB wraps a SQLite connection holding the material catalog.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the catalog database at the given path and runs the
// schema migration.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("catalog: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()

		return nil, fmt.Errorf("catalog: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS materials (
		name TEXT PRIMARY KEY,
		conductivity REAL NOT NULL,
		description TEXT NOT NULL DEFAULT ''
	);`
	_, err := db.conn.Exec(schema)

	return err
}

// Put inserts or replaces a material record.
func (db *DB) Put(m Material) error {
	_, err := db.conn.NamedExec(`
		INSERT INTO materials (name, conductivity, description)
		VALUES (:name, :conductivity, :description)
		ON CONFLICT(name) DO UPDATE SET
			conductivity = excluded.conductivity,
			description  = excluded.description`, m)
	if err != nil {
		return fmt.Errorf("catalog: put %q: %w", m.Name, err)
	}

	return nil
}

// Get returns the material with the given name, or ErrNotFound.
func (db *DB) Get(name string) (Material, error) {
	var m Material
	err := db.conn.Get(&m, `SELECT name, conductivity, description FROM materials WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Material{}, fmt.Errorf("catalog: get %q: %w", name, err)
	}

	return m, nil
}

// List returns all materials in ascending name order.
func (db *DB) List() ([]Material, error) {
	var out []Material
	if err := db.conn.Select(&out, `SELECT name, conductivity, description FROM materials ORDER BY name`); err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	return out, nil
}

// Resolve fills every pending material reference of the project from the
// catalog, converting it into a conductive layer, and clears the pending
// list. The first missing material aborts with ErrNotFound wrapped with the
// referencing layer id.
func (db *DB) Resolve(p *stratfile.Project) error {
	for _, pending := range p.Pending {
		m, err := db.Get(pending.Material)
		if err != nil {
			return fmt.Errorf("layer %q: %w", pending.ID, err)
		}
		p.Layers[pending.ID] = stratum.Conductive(m.Name, pending.Thickness, m.Conductivity, pending.Area)
	}
	p.Pending = nil

	return nil
}
