// Package previewbar renders the one-line preview of the current name and
// the total count of names the active set would generate.
package previewbar

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fenwick/namesmith/internal/ui/styles"
)

// Model holds the preview bar state.
type Model struct {
	setName string
	preview string
	total   *big.Int
	empty   string // non-empty when an element blocks generation
	width   int
}

// New creates an empty preview bar.
func New() Model {
	return Model{}
}

// SetPreview updates the rendered name and its source set.
func (m Model) SetPreview(setName, preview string) Model {
	m.setName = setName
	m.preview = preview
	return m
}

// SetTotal updates the generation count shown next to the preview.
// A nil total hides the count.
func (m Model) SetTotal(total *big.Int) Model {
	m.total = total
	return m
}

// SetEmptyReason marks the bar with the element blocking generation, or
// clears it with "".
func (m Model) SetEmptyReason(element string) Model {
	m.empty = element
	return m
}

// SetSize updates the bar width.
func (m Model) SetSize(width int) Model {
	m.width = width
	return m
}

// View renders the single-line bar.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	if m.setName == "" {
		return styles.StatusBarStyle.Render(labelStyle.Render("No active name set"))
	}

	var parts []string
	parts = append(parts, labelStyle.Render(m.setName+":"))

	// Placeholder slots render dimmer than resolved terms.
	if strings.Contains(m.preview, "[") {
		parts = append(parts, styles.PreviewPlaceholderStyle.Render(m.preview))
	} else {
		parts = append(parts, styles.PreviewNameStyle.Render(m.preview))
	}

	switch {
	case m.empty != "":
		warn := lipgloss.NewStyle().Foreground(styles.StatusWarningColor)
		parts = append(parts, warn.Render(fmt.Sprintf("(no names: %q has no terms)", m.empty)))
	case m.total != nil:
		noun := "names"
		if m.total.Cmp(big.NewInt(1)) == 0 {
			noun = "name"
		}
		parts = append(parts, styles.PreviewCountStyle.Render(fmt.Sprintf("(%s %s)", m.total.String(), noun)))
	}

	line := strings.Join(parts, " ")
	if m.width > 2 {
		line = truncate.StringWithTail(line, uint(m.width-2), "…") //nolint:gosec // width checked above
	}
	return styles.StatusBarStyle.Render(line)
}
