package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func background(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestPlace_CenterOverlaysForeground(t *testing.T) {
	bg := background(20, 9)
	fg := "XXXX\nXXXX\nXXXX"

	result := Place(Config{Width: 20, Height: 9, Position: Center}, fg, bg)
	lines := strings.Split(result, "\n")

	require.Len(t, lines, 9)
	// Foreground sits in the vertical middle
	require.NotContains(t, lines[0], "X")
	require.Contains(t, lines[4], "XXXX")
	require.NotContains(t, lines[8], "X")
	// Background visible on both sides
	require.True(t, strings.HasPrefix(lines[4], "."))
	require.True(t, strings.HasSuffix(lines[4], "."))
}

func TestPlace_BottomRespectsPadding(t *testing.T) {
	bg := background(10, 6)
	fg := "TOAST"

	result := Place(Config{Width: 10, Height: 6, Position: Bottom, PadY: 1}, fg, bg)
	lines := strings.Split(result, "\n")

	require.Contains(t, lines[4], "TOAST")
	require.NotContains(t, lines[5], "TOAST")
}

func TestPlace_TopPosition(t *testing.T) {
	bg := background(10, 6)
	fg := "HEAD"

	result := Place(Config{Width: 10, Height: 6, Position: Top, PadY: 0}, fg, bg)
	lines := strings.Split(result, "\n")

	require.Contains(t, lines[0], "HEAD")
}

func TestPlace_ForegroundWiderThanBackground(t *testing.T) {
	bg := background(4, 3)
	fg := "WIDE-LINE"

	result := Place(Config{Width: 4, Height: 3, Position: Center}, fg, bg)
	require.Contains(t, result, "WIDE-LINE")
}

func TestPlace_PadsShortBackground(t *testing.T) {
	result := Place(Config{Width: 8, Height: 5, Position: Bottom, PadY: 0}, "FG", "")
	lines := strings.Split(result, "\n")

	require.Len(t, lines, 5)
	require.Contains(t, lines[4], "FG")
}
