package sqlite

import (
	"time"

	"github.com/fenwick/namesmith/internal/history"
)

// ExportModel represents the database row for the exports table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type ExportModel struct {
	ID          string
	NameSet     string
	Rows        int64
	Format      string
	Destination *string // nullable, empty for clipboard exports
	CreatedAt   int64   // Unix timestamp
}

// toExportModel converts a domain ExportRecord to a database ExportModel.
func toExportModel(r *history.ExportRecord) *ExportModel {
	m := &ExportModel{
		ID:        r.ID,
		NameSet:   r.NameSet,
		Rows:      r.Rows,
		Format:    r.Format,
		CreatedAt: r.CreatedAt.Unix(),
	}
	if r.Destination != "" {
		destination := r.Destination
		m.Destination = &destination
	}
	return m
}

// toDomain converts a database ExportModel to a domain ExportRecord.
func (m *ExportModel) toDomain() *history.ExportRecord {
	var destination string
	if m.Destination != nil {
		destination = *m.Destination
	}
	return &history.ExportRecord{
		ID:          m.ID,
		NameSet:     m.NameSet,
		Rows:        m.Rows,
		Format:      m.Format,
		Destination: destination,
		CreatedAt:   time.Unix(m.CreatedAt, 0),
	}
}
