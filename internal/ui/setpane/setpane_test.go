package setpane

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Name: "Locomotion", Group: "Player", Tags: []string{"loco"}, Active: true},
		{Name: "Combat", Group: "Player", Tags: []string{"fight"}},
		{Name: "Ambience", Group: "World"},
	}
}

func press(m Model, s string) (Model, tea.Cmd) {
	switch s {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func TestNavigation(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	require.Equal(t, "Locomotion", m.Cursor())

	m, _ = press(m, "j")
	require.Equal(t, "Combat", m.Cursor())

	m, _ = press(m, "k")
	require.Equal(t, "Locomotion", m.Cursor())
}

func TestEnter_EmitsActivate(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	m, _ = press(m, "j")

	_, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	require.Equal(t, ActivateMsg{Name: "Combat"}, cmd())
}

func TestGroupFilter_HidesOtherGroups(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("World", "").Focus()

	require.Equal(t, "Ambience", m.Cursor())
	m, _ = press(m, "j")
	require.Equal(t, "Ambience", m.Cursor(), "only one visible row")
}

func TestTagFilter_SubstringCaseInsensitive(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("", "FIGHT").Focus()
	require.Equal(t, "Combat", m.Cursor())
}

func TestFilter_PreservesCreationOrder(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("Player", "")

	visible := m.visible()
	require.Equal(t, []int{0, 1}, visible)
}

func TestFilters_EmptyMatchNotAnError(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("Nope", "").SetSize(40, 8)
	require.Empty(t, m.Cursor())
	require.Contains(t, m.View(), "No sets match")
}

func TestReorder_EmitsMoveAndFollowsCursor(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	m, _ = press(m, "j")

	m2, cmd := press(m, "K")
	require.NotNil(t, cmd)
	require.Equal(t, ReorderMsg{Name: "Combat", FromIndex: 1, ToIndex: 0}, cmd())
	require.Zero(t, m2.cursor)
}

func TestReorder_BlockedWhileFiltered(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("Player", "").Focus()
	m, _ = press(m, "j")

	_, cmd := press(m, "K")
	require.Nil(t, cmd, "reorder with an active filter would scramble hidden rows")
}

func TestAddAndFilterKeys(t *testing.T) {
	m := New().SetItems(testItems()).Focus()

	_, cmd := press(m, "a")
	require.NotNil(t, cmd)
	require.Equal(t, NewSetMsg{}, cmd())

	_, cmd = press(m, "f")
	require.NotNil(t, cmd)
	require.Equal(t, EditFiltersMsg{}, cmd())
}

func TestView_ShowsBadgesAndActiveMarker(t *testing.T) {
	m := New().SetItems(testItems()).SetSize(50, 10).Focus()

	view := m.View()
	require.Contains(t, view, "Locomotion")
	require.Contains(t, view, "[Player]")
	require.Contains(t, view, "#loco")
	require.Contains(t, view, "●")
}

func TestView_FilteredTitleShowsCounts(t *testing.T) {
	m := New().SetItems(testItems()).SetFilters("Player", "").SetSize(50, 10)
	require.Contains(t, m.View(), "(2/3)")
}
