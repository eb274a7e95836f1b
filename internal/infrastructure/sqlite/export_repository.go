package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/fenwick/namesmith/internal/history"
)

// exportColumns is the list of columns to select for export queries.
const exportColumns = `id, name_set, rows_written, format, destination, created_at`

// exportRepository implements history.Repository using SQLite.
type exportRepository struct {
	db *sql.DB
}

// newExportRepository creates a new exportRepository instance.
func newExportRepository(db *sql.DB) *exportRepository {
	return &exportRepository{db: db}
}

// Ensure exportRepository implements history.Repository.
var _ history.Repository = (*exportRepository)(nil)

// scanExport scans a row into an ExportModel.
func scanExport(scanner interface{ Scan(...any) error }) (*ExportModel, error) {
	var model ExportModel
	err := scanner.Scan(
		&model.ID, &model.NameSet, &model.Rows, &model.Format,
		&model.Destination, &model.CreatedAt,
	)
	return &model, err
}

// Record stores a completed export.
func (r *exportRepository) Record(record *history.ExportRecord) error {
	model := toExportModel(record)
	_, err := r.db.Exec(
		`INSERT INTO exports (id, name_set, rows_written, format, destination, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		model.ID, model.NameSet, model.Rows, model.Format, model.Destination, model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert export record: %w", err)
	}
	return nil
}

// Recent returns the newest records, most recent first.
func (r *exportRepository) Recent(limit int) ([]*history.ExportRecord, error) {
	query := `SELECT ` + exportColumns + ` FROM exports ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*history.ExportRecord
	for rows.Next() {
		model, err := scanExport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		records = append(records, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating export rows: %w", err)
	}

	return records, nil
}

// CountForNameSet returns how many exports were recorded for a set.
func (r *exportRepository) CountForNameSet(nameSet string) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM exports WHERE name_set = ?`, nameSet).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count exports: %w", err)
	}
	return count, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *exportRepository) Close() error {
	return nil
}
