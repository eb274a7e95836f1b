package newsetmodal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func press(m Model, s string) (Model, tea.Cmd) {
	switch s {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	case "tab":
		return m.Update(tea.KeyMsg{Type: tea.KeyTab})
	case "space":
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
	default:
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func submitFrom(m Model) tea.Cmd {
	// Walk focus to the Create button, then confirm.
	for m.focused != fieldSave {
		m, _ = press(m, "tab")
	}
	_, cmd := press(m, "enter")
	return cmd
}

func TestCreate_EmitsNameAndCloneFlag(t *testing.T) {
	m := New([]string{"Combat"}, "Combat")
	m = typeString(m, "Locomotion")

	// Toggle clone on.
	m, _ = press(m, "tab")
	m, _ = press(m, "space")

	cmd := submitFrom(m)
	require.NotNil(t, cmd)
	require.Equal(t, CreateMsg{Name: "Locomotion", CloneFromActive: true}, cmd())
}

func TestCreate_WithoutClone(t *testing.T) {
	m := New(nil, "")
	m = typeString(m, "First")

	cmd := submitFrom(m)
	require.NotNil(t, cmd)
	require.Equal(t, CreateMsg{Name: "First", CloneFromActive: false}, cmd())
}

func TestCreate_DuplicateNameBlocked(t *testing.T) {
	m := New([]string{"Locomotion"}, "Locomotion")
	m = typeString(m, "Locomotion")

	for m.focused != fieldSave {
		m, _ = press(m, "tab")
	}
	m2, cmd := press(m, "enter")
	require.Nil(t, cmd)
	require.Contains(t, m2.View(), "already exists")
}

func TestCreate_EmptyNameBlocked(t *testing.T) {
	m := New(nil, "")

	for m.focused != fieldSave {
		m, _ = press(m, "tab")
	}
	m2, cmd := press(m, "enter")
	require.Nil(t, cmd)
	require.Contains(t, m2.View(), "Name is required")
}

func TestCloneToggle_SkippedWithoutActiveSet(t *testing.T) {
	m := New(nil, "")

	m, _ = press(m, "tab")
	require.Equal(t, fieldSave, m.focused, "clone toggle should be skipped when nothing can be cloned")
}

func TestEsc_Cancels(t *testing.T) {
	m := New(nil, "")

	_, cmd := press(m, "esc")
	require.NotNil(t, cmd)
	require.IsType(t, CancelMsg{}, cmd())
}

func TestView_ShowsCloneSource(t *testing.T) {
	m := New(nil, "Combat")
	require.Contains(t, m.View(), "Clone template from Combat")
}
