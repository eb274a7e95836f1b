package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestRenderWithTitleBorder_ContainsTitle(t *testing.T) {
	result := RenderWithTitleBorder("content", "Elements", 30, 5, false, OverlayTitleColor, BorderHighlightFocusColor)

	require.Contains(t, result, "Elements")
	require.Contains(t, result, "content")
}

func TestRenderWithTitleBorder_LineCount(t *testing.T) {
	result := RenderWithTitleBorder("a\nb", "T", 20, 6, false, OverlayTitleColor, BorderHighlightFocusColor)

	lines := strings.Split(result, "\n")
	require.Len(t, lines, 6, "output should match requested height")
}

func TestRenderWithTitleBorder_AllLinesSameWidth(t *testing.T) {
	result := RenderWithTitleBorder("short", "Title", 24, 5, true, OverlayTitleColor, BorderHighlightFocusColor)

	for _, line := range strings.Split(result, "\n") {
		require.Equal(t, 24, lipgloss.Width(line), "line %q should span full width", line)
	}
}

func TestRenderWithTitleBorder_EmptyTitle(t *testing.T) {
	result := RenderWithTitleBorder("content", "", 20, 4, false, OverlayTitleColor, BorderHighlightFocusColor)

	require.Contains(t, result, "╭")
	require.Contains(t, result, "╯")
}

func TestRenderWithTitleBorder_TruncatesLongTitle(t *testing.T) {
	longTitle := strings.Repeat("x", 60)
	result := RenderWithTitleBorder("c", longTitle, 20, 4, false, OverlayTitleColor, BorderHighlightFocusColor)

	for _, line := range strings.Split(result, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "fits", input: "short", maxWidth: 10, expected: "short"},
		{name: "exact", input: "exact", maxWidth: 5, expected: "exact"},
		{name: "truncated", input: "a long string here", maxWidth: 10, expected: "a long ..."},
		{name: "tiny width", input: "abc", maxWidth: 2, expected: ".."},
		{name: "zero width", input: "abc", maxWidth: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateString(tt.input, tt.maxWidth))
		})
	}
}
