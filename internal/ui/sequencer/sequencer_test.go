package sequencer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(m Model, s string) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func newTestModel() Model {
	return New().SetTemplate([]string{"SoundType", "Action", "Variation"}, "_").Focus()
}

func TestNavigation_MovesCursor(t *testing.T) {
	m := newTestModel()
	require.Zero(t, m.Cursor())

	m, _ = press(m, "l")
	require.Equal(t, 1, m.Cursor())

	m, _ = press(m, "h")
	require.Zero(t, m.Cursor())

	// Clamped at the edges
	m, _ = press(m, "h")
	require.Zero(t, m.Cursor())
}

func TestMoveSlot_EmitsMoveAndFollowsCursor(t *testing.T) {
	m := newTestModel()
	m, _ = press(m, "l")

	m2, cmd := press(m, "L")
	require.NotNil(t, cmd)
	require.Equal(t, MoveSlotMsg{FromIndex: 1, ToIndex: 2}, cmd())
	require.Equal(t, 2, m2.Cursor())
}

func TestMoveSlot_LeftAtStartDoesNothing(t *testing.T) {
	m := newTestModel()

	_, cmd := press(m, "H")
	require.Nil(t, cmd)
}

func TestDelete_EmitsRemoveSlot(t *testing.T) {
	m := newTestModel()
	m, _ = press(m, "l")

	_, cmd := press(m, "d")
	require.NotNil(t, cmd)
	require.Equal(t, RemoveSlotMsg{Index: 1}, cmd())
}

func TestAdd_EmitsAddSlot(t *testing.T) {
	m := newTestModel()

	_, cmd := press(m, "a")
	require.NotNil(t, cmd)
	require.Equal(t, AddSlotMsg{}, cmd())
}

func TestSetTemplate_ClampsCursor(t *testing.T) {
	m := newTestModel()
	m, _ = press(m, "l")
	m, _ = press(m, "l")
	require.Equal(t, 2, m.Cursor())

	m = m.SetTemplate([]string{"SoundType"}, "_")
	require.Zero(t, m.Cursor())
}

func TestView_ShowsSlotsAndDelimiter(t *testing.T) {
	m := newTestModel().SetSize(60, 4)

	view := m.View()
	require.Contains(t, view, "SoundType")
	require.Contains(t, view, "_")
	require.Contains(t, view, "Template")
}

func TestView_EmptyTemplate(t *testing.T) {
	m := New().SetSize(40, 4)
	require.Contains(t, m.View(), "Empty template")
}
