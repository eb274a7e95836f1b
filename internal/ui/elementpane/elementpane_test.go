package elementpane

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Name: "SoundType", Terms: []string{"SFX", "VO"}, Selected: "SFX", InActive: true},
		{Name: "Action", Terms: []string{"Jump", "Land"}, Selected: "Land", InActive: true},
		{Name: "Unused", Terms: nil},
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

func TestNavigation_MovesElementCursor(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	require.Equal(t, "SoundType", m.Cursor())

	m, _ = press(m, "j")
	require.Equal(t, "Action", m.Cursor())

	m, _ = press(m, "k")
	require.Equal(t, "SoundType", m.Cursor())
}

func TestNavigation_TermCursorFollowsSelection(t *testing.T) {
	m := New().SetItems(testItems()).Focus()

	// Moving onto Action lands the term cursor on its selected term.
	m, _ = press(m, "j")
	require.Equal(t, "Land", m.CursorTerm())
}

func TestNavigation_TermCursorClamps(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	require.Equal(t, "SFX", m.CursorTerm())

	m, _ = press(m, "l")
	require.Equal(t, "VO", m.CursorTerm())

	// Already at the last term; stays put.
	m, _ = press(m, "l")
	require.Equal(t, "VO", m.CursorTerm())

	m, _ = press(m, "h")
	require.Equal(t, "SFX", m.CursorTerm())
}

func TestEnter_EmitsTermChosen(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	m, _ = press(m, "l")

	_, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	require.Equal(t, TermChosenMsg{Element: "SoundType", Term: "VO"}, cmd())
}

func TestEnter_ElementWithoutTermsDoesNothing(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	m, _ = press(m, "j")
	m, _ = press(m, "j") // Unused

	_, cmd := press(m, "enter")
	require.Nil(t, cmd)
}

func TestAddKeys_EmitRequests(t *testing.T) {
	m := New().SetItems(testItems()).Focus()

	_, cmd := press(m, "a")
	require.NotNil(t, cmd)
	require.Equal(t, AddTermMsg{Element: "SoundType"}, cmd())

	_, cmd = press(m, "A")
	require.NotNil(t, cmd)
	require.Equal(t, AddElementMsg{}, cmd())
}

func TestDelete_EmitsDeleteTerm(t *testing.T) {
	m := New().SetItems(testItems()).Focus()

	_, cmd := press(m, "d")
	require.NotNil(t, cmd)
	require.Equal(t, DeleteTermMsg{Element: "SoundType", Term: "SFX"}, cmd())
}

func TestUnfocused_IgnoresKeys(t *testing.T) {
	m := New().SetItems(testItems())

	m2, cmd := press(m, "j")
	require.Nil(t, cmd)
	require.Equal(t, m.Cursor(), m2.Cursor())
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := New().SetItems(testItems()).Focus()
	m, _ = press(m, "j")
	m, _ = press(m, "j")

	m = m.SetItems(testItems()[:1])
	require.Equal(t, "SoundType", m.Cursor())
}

func TestView_ShowsElementsAndPlaceholder(t *testing.T) {
	m := New().SetItems(testItems()).SetSize(50, 14).Focus()

	view := m.View()
	require.Contains(t, view, "SoundType")
	require.Contains(t, view, "(no terms)")
	require.Contains(t, view, "Elements")
}

func TestView_EmptyState(t *testing.T) {
	m := New().SetSize(50, 10)
	require.Contains(t, m.View(), "No elements yet")
}
