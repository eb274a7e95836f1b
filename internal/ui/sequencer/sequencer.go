// Package sequencer renders the active name set's template as an ordered
// strip of element slots and handles slot reordering.
package sequencer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/fenwick/namesmith/internal/keys"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

// MoveSlotMsg is sent when the user moves a template slot.
type MoveSlotMsg struct {
	FromIndex int
	ToIndex   int
}

// RemoveSlotMsg requests removal of the highlighted slot.
type RemoveSlotMsg struct {
	Index int
}

// AddSlotMsg requests the add-slot picker.
type AddSlotMsg struct{}

// Model holds the sequencer state.
type Model struct {
	slots     []string
	delimiter string
	cursor    int
	keymap    keys.KeyMap
	focused   bool
	width     int
	height    int
}

// New creates an empty sequencer.
func New() Model {
	return Model{keymap: keys.DefaultKeyMap()}
}

// SetTemplate replaces the slot list and delimiter, clamping the cursor.
func (m Model) SetTemplate(slots []string, delimiter string) Model {
	m.slots = slots
	m.delimiter = delimiter
	if m.cursor >= len(slots) {
		m.cursor = max(len(slots)-1, 0)
	}
	return m
}

// SetSize updates the component dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Focus gives the sequencer keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the sequencer has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// Cursor returns the highlighted slot index.
func (m Model) Cursor() int {
	return m.cursor
}

// Update handles slot navigation and reordering.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Right), key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Left), key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.MoveSlotLeft):
		if m.cursor > 0 {
			from, to := m.cursor, m.cursor-1
			m.cursor--
			return m, func() tea.Msg { return MoveSlotMsg{FromIndex: from, ToIndex: to} }
		}
	case key.Matches(keyMsg, m.keymap.MoveSlotRight):
		if m.cursor < len(m.slots)-1 {
			from, to := m.cursor, m.cursor+1
			m.cursor++
			return m, func() tea.Msg { return MoveSlotMsg{FromIndex: from, ToIndex: to} }
		}
	case key.Matches(keyMsg, m.keymap.Add):
		return m, func() tea.Msg { return AddSlotMsg{} }
	case key.Matches(keyMsg, m.keymap.Delete):
		if len(m.slots) > 0 {
			idx := m.cursor
			return m, func() tea.Msg { return RemoveSlotMsg{Index: idx} }
		}
	}

	return m, nil
}

// View renders the slot strip inside a titled border.
func (m Model) View() string {
	var body string

	if len(m.slots) == 0 {
		body = lipgloss.NewStyle().Foreground(styles.TextMutedColor).
			Render("Empty template. Press a to add a slot.")
	} else {
		parts := make([]string, 0, len(m.slots)*2-1)
		budget := max(m.width-4, 8)
		slotWidth := max(budget/max(len(m.slots), 1)-2, 3)

		for i, slot := range m.slots {
			label := runewidth.Truncate(slot, slotWidth, "…")
			if i == m.cursor && m.focused {
				parts = append(parts, styles.SlotSelectedStyle.Render(label))
			} else {
				parts = append(parts, styles.SlotStyle.Render(label))
			}
			if i < len(m.slots)-1 {
				parts = append(parts, styles.DelimiterStyle.Render(m.delimiter))
			}
		}
		body = strings.Join(parts, "")
	}

	return styles.RenderWithTitleBorder(
		body, "Template", m.width, m.height, m.focused,
		styles.OverlayTitleColor, styles.BorderHighlightFocusColor,
	)
}
