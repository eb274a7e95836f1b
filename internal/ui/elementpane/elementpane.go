// Package elementpane renders the element vocabulary pane: every element in
// the project with its terms, and the term currently selected for the
// preview name.
package elementpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick/namesmith/internal/keys"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

// Item is one element row: its name, vocabulary and current selection.
type Item struct {
	Name     string
	Terms    []string
	Selected string
	InActive bool // referenced by the active name set's template
}

// TermChosenMsg is sent when the user selects a term for an element.
type TermChosenMsg struct {
	Element string
	Term    string
}

// AddElementMsg requests the new-element prompt.
type AddElementMsg struct{}

// AddTermMsg requests the new-term prompt for an element.
type AddTermMsg struct {
	Element string
}

// DeleteTermMsg requests removal of the highlighted term.
type DeleteTermMsg struct {
	Element string
	Term    string
}

// Model holds the element pane state.
type Model struct {
	items   []Item
	cursor  int // element row
	termCur int // term within the cursor element
	keymap  keys.KeyMap
	focused bool
	width   int
	height  int
}

// New creates an empty element pane.
func New() Model {
	return Model{keymap: keys.DefaultKeyMap()}
}

// SetItems replaces the pane contents, clamping the cursors.
func (m Model) SetItems(items []Item) Model {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
	m.termCur = m.clampTermCursor(m.termCur)
	return m
}

// SetSize updates the pane dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Focus gives the pane keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the pane has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// Cursor returns the highlighted element name, or "" when empty.
func (m Model) Cursor() string {
	if len(m.items) == 0 {
		return ""
	}
	return m.items[m.cursor].Name
}

// CursorTerm returns the highlighted term, or "" when the element has none.
func (m Model) CursorTerm() string {
	if len(m.items) == 0 {
		return ""
	}
	terms := m.items[m.cursor].Terms
	if len(terms) == 0 {
		return ""
	}
	return terms[m.termCur]
}

func (m Model) clampTermCursor(cur int) int {
	if len(m.items) == 0 {
		return 0
	}
	limit := len(m.items[m.cursor].Terms) - 1
	if cur > limit {
		cur = limit
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

// Update handles navigation and selection keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.termCur = m.termCursorForSelection()
		}
	case key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
			m.termCur = m.termCursorForSelection()
		}
	case key.Matches(keyMsg, m.keymap.Right):
		m.termCur = m.clampTermCursor(m.termCur + 1)
	case key.Matches(keyMsg, m.keymap.Left):
		m.termCur = m.clampTermCursor(m.termCur - 1)
	case key.Matches(keyMsg, m.keymap.Enter):
		element, term := m.Cursor(), m.CursorTerm()
		if term != "" {
			return m, func() tea.Msg { return TermChosenMsg{Element: element, Term: term} }
		}
	case key.Matches(keyMsg, m.keymap.Add):
		element := m.Cursor()
		return m, func() tea.Msg { return AddTermMsg{Element: element} }
	case keyMsg.String() == "A":
		return m, func() tea.Msg { return AddElementMsg{} }
	case key.Matches(keyMsg, m.keymap.Delete):
		element, term := m.Cursor(), m.CursorTerm()
		if term != "" {
			return m, func() tea.Msg { return DeleteTermMsg{Element: element, Term: term} }
		}
	}

	return m, nil
}

// termCursorForSelection puts the term cursor on the element's selected term.
func (m Model) termCursorForSelection() int {
	item := m.items[m.cursor]
	for i, term := range item.Terms {
		if term == item.Selected {
			return i
		}
	}
	return 0
}

// View renders the pane inside a titled border.
func (m Model) View() string {
	var body strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	inactiveNameStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	termStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	selectedTermStyle := lipgloss.NewStyle().Foreground(styles.StatusSuccessColor).Bold(true)
	cursorTermStyle := lipgloss.NewStyle().
		Foreground(styles.ButtonTextColor).
		Background(styles.ButtonPrimaryFocusBgColor)

	if len(m.items) == 0 {
		body.WriteString(mutedStyle.Render("No elements yet. Press A to add one."))
	}

	for i, item := range m.items {
		prefix := "  "
		if i == m.cursor && m.focused {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
		}

		name := item.Name
		if item.InActive {
			body.WriteString(prefix + nameStyle.Render(name))
		} else {
			body.WriteString(prefix + inactiveNameStyle.Render(name))
		}
		body.WriteString("\n")

		if len(item.Terms) == 0 {
			body.WriteString("    " + mutedStyle.Render("(no terms)"))
			body.WriteString("\n")
			continue
		}

		rendered := make([]string, len(item.Terms))
		for j, term := range item.Terms {
			switch {
			case i == m.cursor && j == m.termCur && m.focused:
				rendered[j] = cursorTermStyle.Render(term)
			case term == item.Selected:
				rendered[j] = selectedTermStyle.Render(term)
			default:
				rendered[j] = termStyle.Render(term)
			}
		}
		body.WriteString("    " + strings.Join(rendered, " "))
		body.WriteString("\n")
	}

	return styles.RenderWithTitleBorder(
		body.String(), "Elements", m.width, m.height, m.focused,
		styles.OverlayTitleColor, styles.BorderHighlightFocusColor,
	)
}
