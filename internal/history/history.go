// Package history defines the export history domain: a record of every
// generation the user ran and where the names went.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Export formats.
const (
	FormatCSV       = "csv"
	FormatClipboard = "clipboard"
	FormatPlain     = "plain" // delimiter-joined names written to a file or stdout
)

// ExportRecord describes one completed export.
type ExportRecord struct {
	ID          string
	NameSet     string
	Rows        int64
	Format      string
	Destination string // file path for CSV, empty for clipboard
	CreatedAt   time.Time
}

// NewExportRecord creates a record for an export that just finished.
func NewExportRecord(nameSet string, rows int64, format, destination string) *ExportRecord {
	return &ExportRecord{
		ID:          uuid.NewString(),
		NameSet:     nameSet,
		Rows:        rows,
		Format:      format,
		Destination: destination,
		CreatedAt:   time.Now(),
	}
}

// Repository persists export records.
type Repository interface {
	// Record stores a completed export.
	Record(record *ExportRecord) error

	// Recent returns the newest records, most recent first.
	// A limit of 0 or less returns all records.
	Recent(limit int) ([]*ExportRecord, error)

	// CountForNameSet returns how many exports were recorded for a set.
	CountForNameSet(nameSet string) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
