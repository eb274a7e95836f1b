package naming

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
)

// ExportOptions controls the streaming exporters.
type ExportOptions struct {
	// IncludeHeader writes a header row of element names (CSV only).
	IncludeHeader bool

	// MaxRows bounds the export size. When > 0 and the generator's
	// TotalCount exceeds it, the export fails with ErrExportLimitExceeded
	// before a single row is produced. 0 means unbounded.
	MaxRows int64
}

// checkLimit runs the pre-flight size check shared by both exporters.
func (o ExportOptions) checkLimit(g *Generator) error {
	if o.MaxRows <= 0 {
		return nil
	}
	if g.TotalCount().Cmp(big.NewInt(o.MaxRows)) > 0 {
		return fmt.Errorf("%w: %s rows, limit %d", ErrExportLimitExceeded, g.TotalCount(), o.MaxRows)
	}
	return nil
}

// WriteCSV streams the full enumeration to w as CSV, one column per
// template slot. Fields containing commas, quotes, or newlines get standard
// CSV quoting (embedded quotes doubled), so tuples whose terms collide with
// the record syntax round-trip exactly.
//
// Rows are produced lazily from a cursor; memory stays bounded regardless
// of the cross-product size. Cancelling ctx stops the walk between rows.
// Returns the number of data rows written.
func WriteCSV(ctx context.Context, w io.Writer, g *Generator, opts ExportOptions) (int64, error) {
	if err := opts.checkLimit(g); err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if opts.IncludeHeader && len(g.Slots()) > 0 {
		if err := cw.Write(g.Slots()); err != nil {
			return 0, fmt.Errorf("writing header: %w", err)
		}
	}

	var rows int64
	cursor := g.Cursor()
	for {
		select {
		case <-ctx.Done():
			return rows, ctx.Err()
		default:
		}

		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		if err := cw.Write(tuple); err != nil {
			return rows, fmt.Errorf("writing row %d: %w", rows, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("flushing csv: %w", err)
	}
	return rows, nil
}

// WritePlain streams the enumeration to w as rendered names, one per line:
// each tuple joined with the NameSet's delimiter, rows separated by
// newlines. This is the clipboard export format.
// Returns the number of names written.
func WritePlain(ctx context.Context, w io.Writer, g *Generator, opts ExportOptions) (int64, error) {
	if err := opts.checkLimit(g); err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	var rows int64
	cursor := g.Cursor()
	for {
		select {
		case <-ctx.Done():
			return rows, ctx.Err()
		default:
		}

		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		if rows > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return rows, err
			}
		}
		if _, err := bw.WriteString(g.Render(tuple)); err != nil {
			return rows, err
		}
		rows++
	}

	if err := bw.Flush(); err != nil {
		return rows, err
	}
	return rows, nil
}
