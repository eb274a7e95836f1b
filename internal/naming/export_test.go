package naming

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newExportGenerator(t *testing.T, vocab map[string][]string, template []string, delimiter string) *Generator {
	t.Helper()
	elements := buildRegistry(t, vocab)
	g, err := NewGenerator(&NameSet{Name: "S", Template: template, Delimiter: delimiter}, elements)
	require.NoError(t, err)
	return g
}

func TestWriteCSV_Basic(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"SoundType": {"SFX", "VO"},
		"Action":    {"Jump", "Land"},
	}, []string{"SoundType", "Action"}, "_")

	var buf strings.Builder
	rows, err := WriteCSV(context.Background(), &buf, g, ExportOptions{IncludeHeader: true})
	require.NoError(t, err)
	require.EqualValues(t, 4, rows)

	want := "SoundType,Action\nSFX,Jump\nSFX,Land\nVO,Jump\nVO,Land\n"
	require.Equal(t, want, buf.String())
}

// Terms containing commas, quotes, and newlines must round-trip exactly
// through a standard CSV parser.
func TestWriteCSV_QuotingRoundTrip(t *testing.T) {
	vocab := map[string][]string{
		"A": {`plain`, `with,comma`, `with"quote`},
		"B": {"line\nbreak", "x"},
	}
	g := newExportGenerator(t, vocab, []string{"A", "B"}, ",")

	var buf strings.Builder
	rows, err := WriteCSV(context.Background(), &buf, g, ExportOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 6, rows)

	parsed, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 6)

	var expected [][]string
	cursor := g.Cursor()
	for {
		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		expected = append(expected, tuple)
	}
	require.Equal(t, expected, parsed)
}

func TestWriteCSV_LimitExceeded(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"A": {"1", "2", "3"},
		"B": {"1", "2", "3"},
	}, []string{"A", "B"}, "_")

	var buf strings.Builder
	_, err := WriteCSV(context.Background(), &buf, g, ExportOptions{MaxRows: 8})
	require.ErrorIs(t, err, ErrExportLimitExceeded)
	// Pre-flight check: nothing was written.
	require.Empty(t, buf.String())

	rows, err := WriteCSV(context.Background(), &buf, g, ExportOptions{MaxRows: 9})
	require.NoError(t, err)
	require.EqualValues(t, 9, rows)
}

func TestWriteCSV_Cancellation(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"A": {"1", "2", "3"},
	}, []string{"A"}, "_")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	_, err := WriteCSV(ctx, &buf, g, ExportOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWriteCSV_EmptyEnumeration(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"A": {"1"},
		"B": {},
	}, []string{"A", "B"}, "_")

	var buf strings.Builder
	rows, err := WriteCSV(context.Background(), &buf, g, ExportOptions{IncludeHeader: true})
	require.NoError(t, err)
	require.Zero(t, rows)
	// Header still written; no data rows follow.
	require.Equal(t, "A,B\n", buf.String())
}

func TestWritePlain(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"SoundType": {"SFX", "VO"},
		"Action":    {"Jump", "Land"},
	}, []string{"SoundType", "Action"}, "_")

	var buf strings.Builder
	rows, err := WritePlain(context.Background(), &buf, g, ExportOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 4, rows)
	require.Equal(t, "SFX_Jump\nSFX_Land\nVO_Jump\nVO_Land", buf.String())
}

func TestWritePlain_LimitExceeded(t *testing.T) {
	g := newExportGenerator(t, map[string][]string{
		"A": {"1", "2"},
	}, []string{"A"}, "_")

	var buf strings.Builder
	_, err := WritePlain(context.Background(), &buf, g, ExportOptions{MaxRows: 1})
	require.ErrorIs(t, err, ErrExportLimitExceeded)
	require.Empty(t, buf.String())
}
