// Package setpane renders the name set list: every set in the project with
// its group and tag badges, filterable by group and tag.
package setpane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fenwick/namesmith/internal/keys"
	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

// Item is one name set row.
type Item struct {
	Name   string
	Group  string
	Tags   []string
	Active bool
}

// ActivateMsg is sent when the user activates a name set.
type ActivateMsg struct {
	Name string
}

// NewSetMsg requests the new-set dialog.
type NewSetMsg struct{}

// EditFiltersMsg requests the group/tag filter dialog.
type EditFiltersMsg struct{}

// ReorderMsg is sent when the user moves a set up or down the list.
type ReorderMsg struct {
	Name      string
	FromIndex int
	ToIndex   int
}

// Model holds the set pane state.
type Model struct {
	items       []Item
	cursor      int
	groupFilter string
	tagFilter   string
	keymap      keys.KeyMap
	focused     bool
	width       int
	height      int
}

// New creates an empty set pane.
func New() Model {
	return Model{keymap: keys.DefaultKeyMap()}
}

// SetItems replaces the pane contents. Items must already be in creation
// order; filtering never reorders them.
func (m Model) SetItems(items []Item) Model {
	m.items = items
	m.cursor = m.clampCursor(m.cursor)
	return m
}

// SetFilters updates the group and tag filters.
func (m Model) SetFilters(group, tag string) Model {
	m.groupFilter = group
	m.tagFilter = tag
	m.cursor = m.clampCursor(m.cursor)
	return m
}

// Filters returns the current group and tag filters.
func (m Model) Filters() (group, tag string) {
	return m.groupFilter, m.tagFilter
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

// visible returns the filtered rows with their indexes into items. Matching
// is delegated to the engine's filter predicate; the pane's unset group
// filter ("") maps to its match-all token.
func (m Model) visible() []int {
	groupFilter := m.groupFilter
	if groupFilter == "" {
		groupFilter = naming.GroupAll
	}
	var out []int
	for i, item := range m.items {
		if !naming.MatchesFilter(item.Group, item.Tags, groupFilter, m.tagFilter) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (m Model) clampCursor(cur int) int {
	limit := len(m.visible()) - 1
	if cur > limit {
		cur = limit
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

// Cursor returns the highlighted set name, or "" when the filter hides all.
func (m Model) Cursor() string {
	visible := m.visible()
	if len(visible) == 0 {
		return ""
	}
	return m.items[visible[m.cursor]].Name
}

// Update handles navigation, activation and reordering keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	visible := m.visible()

	switch {
	case key.Matches(keyMsg, m.keymap.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keymap.Enter):
		if name := m.Cursor(); name != "" {
			return m, func() tea.Msg { return ActivateMsg{Name: name} }
		}
	case key.Matches(keyMsg, m.keymap.Add):
		return m, func() tea.Msg { return NewSetMsg{} }
	case key.Matches(keyMsg, m.keymap.Filter):
		return m, func() tea.Msg { return EditFiltersMsg{} }
	case keyMsg.String() == "K":
		// Reordering acts on the unfiltered list; only allow it when no
		// filter hides neighbors.
		if m.groupFilter == "" && m.tagFilter == "" && m.cursor > 0 && len(visible) > 0 {
			idx := visible[m.cursor]
			name := m.items[idx].Name
			from, to := idx, idx-1
			m.cursor--
			return m, func() tea.Msg { return ReorderMsg{Name: name, FromIndex: from, ToIndex: to} }
		}
	case keyMsg.String() == "J":
		if m.groupFilter == "" && m.tagFilter == "" && m.cursor < len(visible)-1 {
			idx := visible[m.cursor]
			name := m.items[idx].Name
			from, to := idx, idx+1
			m.cursor++
			return m, func() tea.Msg { return ReorderMsg{Name: name, FromIndex: from, ToIndex: to} }
		}
	}

	return m, nil
}

// View renders the pane inside a titled border.
func (m Model) View() string {
	var body strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	activeStyle := lipgloss.NewStyle().Foreground(styles.StatusSuccessColor).Bold(true)

	visible := m.visible()
	if len(visible) == 0 {
		if len(m.items) == 0 {
			body.WriteString(mutedStyle.Render("No name sets yet. Press a to add one."))
		} else {
			body.WriteString(mutedStyle.Render("No sets match the current filter."))
		}
	}

	innerWidth := max(m.width-4, 10)
	for row, idx := range visible {
		item := m.items[idx]

		prefix := "  "
		if row == m.cursor && m.focused {
			prefix = styles.SelectionIndicatorStyle.Render("> ")
		}

		marker := "  "
		if item.Active {
			marker = activeStyle.Render("● ")
		}

		line := item.Name
		if item.Group != "" {
			line += " " + styles.GroupBadgeStyle.Render("["+item.Group+"]")
		}
		if len(item.Tags) > 0 {
			line += " " + styles.TagBadgeStyle.Render("#"+strings.Join(item.Tags, " #"))
		}

		style := nameStyle
		if item.Active {
			style = activeStyle
		}
		body.WriteString(prefix + marker + style.Render(truncate.StringWithTail(line, uint(innerWidth), "…"))) //nolint:gosec // width is clamped positive
		body.WriteString("\n")
	}

	title := "Name Sets"
	if m.groupFilter != "" || m.tagFilter != "" {
		title = fmt.Sprintf("Name Sets (%d/%d)", len(visible), len(m.items))
	}

	return styles.RenderWithTitleBorder(
		body.String(), title, m.width, m.height, m.focused,
		styles.OverlayTitleColor, styles.BorderHighlightFocusColor,
	)
}
