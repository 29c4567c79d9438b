// Package storage persists route display flags and import history in SQLite.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Rorical/RoriMap/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// stampLayout is fixed-width so imported_at sorts lexically.
const stampLayout = "2006-01-02T15:04:05.000000000Z"

// DB is the SQLite-backed persister.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one connection keeps :memory: databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &DB{db: db, now: time.Now}, nil
}

// runMigrations applies all embedded up migrations. The migrate instance is
// not closed: its database driver would close db.
func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SchemaVersion reports the applied migration version.
func (d *DB) SchemaVersion() (uint, error) {
	var version uint
	var dirty bool
	err := d.db.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) SaveRouteDisplayed(key string, displayed bool) error {
	_, err := d.db.Exec(`
		INSERT INTO route_display (key, displayed, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET displayed = excluded.displayed, updated_at = excluded.updated_at`,
		key, boolToInt(displayed), d.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save route %q: %w", key, err)
	}
	return nil
}

func (d *DB) DisplayedRoutes() (map[string]bool, error) {
	rows, err := d.db.Query(`SELECT key, displayed FROM route_display`)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var key string
		var displayed int
		if err := rows.Scan(&key, &displayed); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		out[key] = displayed != 0
	}
	return out, rows.Err()
}

// RecordImport stores the batch, its markers and its route flags in one
// transaction. Markers already found by an earlier batch keep their batch.
func (d *DB) RecordImport(batch models.ImportBatch) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT INTO imports (id, source, marker_count, route_count, imported_at) VALUES (?, ?, ?, ?, ?)`,
		batch.ID, batch.Source, len(batch.Found), len(batch.Routes), batch.ImportedAt.UTC().Format(stampLayout)); err != nil {
		return fmt.Errorf("insert import: %w", err)
	}

	markerStmt, err := tx.Prepare(`INSERT OR IGNORE INTO found_markers (marker_id, batch_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare marker insert: %w", err)
	}
	defer markerStmt.Close()
	for _, id := range batch.Found {
		if _, err := markerStmt.Exec(id, batch.ID); err != nil {
			return fmt.Errorf("insert marker %q: %w", id, err)
		}
	}

	stamp := batch.ImportedAt.UTC().Format(time.RFC3339)
	for key, displayed := range batch.Routes {
		if _, err := tx.Exec(`
			INSERT INTO route_display (key, displayed, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET displayed = excluded.displayed, updated_at = excluded.updated_at`,
			key, boolToInt(displayed), stamp); err != nil {
			return fmt.Errorf("save route %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func (d *DB) FoundMarkers() ([]string, error) {
	rows, err := d.db.Query(`SELECT marker_id FROM found_markers ORDER BY marker_id`)
	if err != nil {
		return nil, fmt.Errorf("query markers: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan marker: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ImportRecord is a row of the import history.
type ImportRecord struct {
	ID          string
	Source      string
	MarkerCount int
	RouteCount  int
	ImportedAt  time.Time
}

// Imports returns the newest limit imports, newest first.
func (d *DB) Imports(limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.db.Query(`
		SELECT id, source, marker_count, route_count, imported_at
		FROM imports ORDER BY imported_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	var out []ImportRecord
	for rows.Next() {
		var rec ImportRecord
		var stamp string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.MarkerCount, &rec.RouteCount, &stamp); err != nil {
			return nil, fmt.Errorf("scan import: %w", err)
		}
		rec.ImportedAt, err = time.Parse(stampLayout, strings.TrimSpace(stamp))
		if err != nil {
			return nil, fmt.Errorf("parse import time %q: %w", stamp, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
