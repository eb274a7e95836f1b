package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"sync"

	"github.com/golang-migrate/migrate/v4/database"
)

// migrateDriver adapts our sql.DB connection to golang-migrate's database
// driver interface. The stock sqlite drivers each register their own CGO or
// wasm engine; this adapter reuses the connection we already hold instead.
type migrateDriver struct {
	conn *sql.DB
	mu   sync.Mutex
}

var _ database.Driver = (*migrateDriver)(nil)

func newMigrateDriver(conn *sql.DB) *migrateDriver {
	return &migrateDriver{conn: conn}
}

// Open is only used by URL-based construction, which we never do.
func (d *migrateDriver) Open(string) (database.Driver, error) {
	return nil, fmt.Errorf("sqlite migrate driver must be constructed with an existing connection")
}

// Close is a no-op; the connection is owned by the DB struct.
func (d *migrateDriver) Close() error {
	return nil
}

// Lock serializes migrations within this process. Cross-process locking is
// handled by SQLite's busy timeout.
func (d *migrateDriver) Lock() error {
	d.mu.Lock()
	return d.ensureVersionTable()
}

func (d *migrateDriver) Unlock() error {
	d.mu.Unlock()
	return nil
}

func (d *migrateDriver) ensureVersionTable() error {
	_, err := d.conn.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (version BIGINT NOT NULL, dirty BOOLEAN NOT NULL)`,
	)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}
	return nil
}

// Run executes a single migration inside a transaction.
func (d *migrateDriver) Run(migration io.Reader) error {
	statements, err := io.ReadAll(migration)
	if err != nil {
		return fmt.Errorf("reading migration: %w", err)
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	if _, err := tx.Exec(string(statements)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("executing migration: %w", err)
	}
	return tx.Commit()
}

func (d *migrateDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting version transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clearing schema version: %w", err)
	}
	// NilVersion means no migration has been applied; keep the table empty.
	if version >= 0 {
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirty); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording schema version: %w", err)
		}
	}
	return tx.Commit()
}

func (d *migrateDriver) Version() (int, bool, error) {
	var version int
	var dirty bool
	err := d.conn.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if err == sql.ErrNoRows {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading schema version: %w", err)
	}
	return version, dirty, nil
}

// Drop removes every table except SQLite internals.
func (d *migrateDriver) Drop() error {
	rows, err := d.conn.Query(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	)
	if err != nil {
		return fmt.Errorf("listing tables: %w", err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("iterating tables: %w", err)
	}
	_ = rows.Close()

	for _, table := range tables {
		if _, err := d.conn.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
			return fmt.Errorf("dropping table %s: %w", table, err)
		}
	}
	return nil
}
