// Package newsetmodal implements the dialog for creating a name set, with
// an optional clone of the active set's template and delimiter.
package newsetmodal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick/namesmith/internal/ui/overlay"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

// CreateMsg is sent when the user confirms the dialog.
type CreateMsg struct {
	Name            string
	CloneFromActive bool
}

// CancelMsg is sent when the user dismisses the dialog.
type CancelMsg struct{}

// field identifies the focused control.
type field int

const (
	fieldName field = iota
	fieldClone
	fieldSave
	fieldCancel
)

// Model is the new-set dialog state.
type Model struct {
	input     textinput.Model
	existing  map[string]struct{}
	activeSet string // "" when there is no set to clone
	clone     bool
	focused   field
	errText   string
	width     int
	height    int
}

// New creates the dialog. existingNames is used for inline duplicate
// validation; activeSet enables the clone toggle when non-empty.
func New(existingNames []string, activeSet string) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. Locomotion"
	ti.Width = 36
	ti.Prompt = ""
	ti.Focus()

	existing := make(map[string]struct{}, len(existingNames))
	for _, name := range existingNames {
		existing[name] = struct{}{}
	}

	return Model{
		input:     ti,
		existing:  existing,
		activeSet: activeSet,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles dialog input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }

		case "tab", "down":
			m = m.move(1)
			return m, nil

		case "shift+tab", "up":
			m = m.move(-1)
			return m, nil

		case " ":
			if m.focused == fieldClone {
				m.clone = !m.clone
				return m, nil
			}

		case "enter":
			switch m.focused {
			case fieldName:
				m = m.move(1)
				return m, nil
			case fieldClone:
				m.clone = !m.clone
				return m, nil
			case fieldCancel:
				return m, func() tea.Msg { return CancelMsg{} }
			case fieldSave:
				return m.submit()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.focused == fieldName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.errText = "" // typing clears a stale error
		return m, cmd
	}

	return m, nil
}

// submit validates and emits CreateMsg, or records an inline error.
func (m Model) submit() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		m.errText = "Name is required"
		return m, nil
	}
	if _, dup := m.existing[name]; dup {
		m.errText = "A set with that name already exists"
		return m, nil
	}

	clone := m.clone && m.activeSet != ""
	return m, func() tea.Msg { return CreateMsg{Name: name, CloneFromActive: clone} }
}

// move shifts focus by delta, skipping the clone toggle when cloning is
// unavailable.
func (m Model) move(delta int) Model {
	fields := []field{fieldName, fieldClone, fieldSave, fieldCancel}
	idx := 0
	for i, f := range fields {
		if f == m.focused {
			idx = i
			break
		}
	}

	for {
		idx = (idx + delta + len(fields)) % len(fields)
		next := fields[idx]
		if next == fieldClone && m.activeSet == "" {
			continue
		}
		m = m.setFocus(next)
		return m
	}
}

func (m Model) setFocus(f field) Model {
	m.focused = f
	if f == fieldName {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// View renders the dialog box.
func (m Model) View() string {
	const contentWidth = 40

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)

	var content strings.Builder

	content.WriteString(styles.RenderFormSection(
		[]string{m.input.View()}, "Name", "", contentWidth,
		m.focused == fieldName, styles.BorderHighlightFocusColor,
	))
	content.WriteString("\n\n")

	if m.activeSet != "" {
		check := "[ ]"
		if m.clone {
			check = "[x]"
		}
		line := check + " Clone template from " + m.activeSet
		if m.focused == fieldClone {
			line = styles.SelectionIndicatorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		content.WriteString(mutedStyle.Render(line))
		content.WriteString("\n\n")
	}

	if m.errText != "" {
		content.WriteString(errStyle.Render(m.errText))
		content.WriteString("\n\n")
	}

	saveStyle := styles.PrimaryButtonStyle
	if m.focused == fieldSave {
		saveStyle = styles.PrimaryButtonFocusedStyle
	}
	cancelStyle := styles.SecondaryButtonStyle
	if m.focused == fieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	content.WriteString(saveStyle.Render("Create") + "  " + cancelStyle.Render("Cancel"))

	var result strings.Builder
	result.WriteString(titleStyle.Render("New Name Set"))
	result.WriteString("\n")
	result.WriteString(dividerStyle.Render(strings.Repeat("─", contentWidth+2)))
	result.WriteString("\n")
	result.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(contentWidth + 2).
		Render(result.String())
}

// Overlay renders the dialog centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize updates the dialog's knowledge of viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
