// Package exportmodal implements the generate dialog: it shows the
// pre-flight count for the active name set and collects the export
// destination before any name is produced.
package exportmodal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick/namesmith/internal/history"
	"github.com/fenwick/namesmith/internal/ui/overlay"
	"github.com/fenwick/namesmith/internal/ui/styles"
)

// SubmitMsg is sent when the user starts the export.
type SubmitMsg struct {
	Format        string // history.FormatCSV or history.FormatClipboard
	Path          string // destination file, empty for clipboard
	IncludeHeader bool
}

// CancelMsg is sent when the user dismisses the dialog.
type CancelMsg struct{}

// field identifies the focused control.
type field int

const (
	fieldFormat field = iota
	fieldPath
	fieldHeader
	fieldSave
	fieldCancel
)

// Model is the export dialog state.
type Model struct {
	setName     string
	total       *big.Int
	maxRows     int64
	emptyReason string // element blocking generation, "" when none

	format        string
	pathInput     textinput.Model
	includeHeader bool
	focused       field
	width         int
	height        int
}

// New creates the dialog for the given set. total is the pre-flight count;
// maxRows caps what Submit will allow (0 disables the cap). emptyReason
// names the element that makes the enumeration empty, or "".
func New(setName string, total *big.Int, maxRows int64, emptyReason, defaultPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "names.csv"
	ti.Width = 36
	ti.Prompt = ""
	if defaultPath != "" {
		ti.SetValue(defaultPath)
	}

	return Model{
		setName:       setName,
		total:         total,
		maxRows:       maxRows,
		emptyReason:   emptyReason,
		format:        history.FormatCSV,
		pathInput:     ti,
		includeHeader: true,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// overLimit reports whether the pre-flight count exceeds the row cap.
func (m Model) overLimit() bool {
	if m.maxRows <= 0 || m.total == nil {
		return false
	}
	return m.total.Cmp(big.NewInt(m.maxRows)) > 0
}

// blocked reports whether the export cannot start at all.
func (m Model) blocked() bool {
	if m.emptyReason != "" {
		return true
	}
	if m.total != nil && m.total.Sign() == 0 {
		return true
	}
	return m.overLimit()
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
			switch m.focused {
			case fieldFormat:
				m = m.toggleFormat()
				return m, nil
			case fieldHeader:
				m.includeHeader = !m.includeHeader
				return m, nil
			}

		case "enter":
			switch m.focused {
			case fieldFormat:
				m = m.toggleFormat()
				return m, nil
			case fieldPath:
				m = m.move(1)
				return m, nil
			case fieldHeader:
				m.includeHeader = !m.includeHeader
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

	if m.focused == fieldPath {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) toggleFormat() Model {
	if m.format == history.FormatCSV {
		m.format = history.FormatClipboard
	} else {
		m.format = history.FormatCSV
	}
	return m
}

// submit emits SubmitMsg unless the pre-flight count blocks the export.
func (m Model) submit() (Model, tea.Cmd) {
	if m.blocked() {
		return m, nil
	}

	format := m.format
	path := strings.TrimSpace(m.pathInput.Value())
	if format == history.FormatClipboard {
		path = ""
	} else if path == "" {
		path = "names.csv"
	}
	header := m.includeHeader

	return m, func() tea.Msg {
		return SubmitMsg{Format: format, Path: path, IncludeHeader: header}
	}
}

// move shifts focus by delta, skipping path and header controls when they
// do not apply to the chosen format.
func (m Model) move(delta int) Model {
	fields := []field{fieldFormat, fieldPath, fieldHeader, fieldSave, fieldCancel}
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
		if (next == fieldPath || next == fieldHeader) && m.format == history.FormatClipboard {
			continue
		}
		m.focused = next
		if next == fieldPath {
			m.pathInput.Focus()
		} else {
			m.pathInput.Blur()
		}
		return m
	}
}

// View renders the dialog box.
func (m Model) View() string {
	const contentWidth = 44

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	mutedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	warnStyle := lipgloss.NewStyle().Foreground(styles.StatusWarningColor)
	errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	countStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	var content strings.Builder

	// Pre-flight count line.
	switch {
	case m.emptyReason != "":
		content.WriteString(errStyle.Render(fmt.Sprintf("No names to generate: %q has no terms.", m.emptyReason)))
	case m.total != nil && m.total.Sign() == 0:
		content.WriteString(errStyle.Render("No names to generate: the template is empty."))
	case m.overLimit():
		content.WriteString(warnStyle.Render(fmt.Sprintf(
			"%s names exceed the limit of %d. Trim a vocabulary or raise export.maxRows.",
			m.total.String(), m.maxRows,
		)))
	default:
		total := "?"
		if m.total != nil {
			total = m.total.String()
		}
		content.WriteString(countStyle.Render(total) + mutedStyle.Render(" names will be generated."))
	}
	content.WriteString("\n\n")

	// Format selector.
	content.WriteString(m.renderChoice("Destination", m.describeFormat(), m.focused == fieldFormat))
	content.WriteString("\n")

	if m.format == history.FormatCSV {
		content.WriteString(styles.RenderFormSection(
			[]string{m.pathInput.View()}, "File", "", contentWidth,
			m.focused == fieldPath, styles.BorderHighlightFocusColor,
		))
		content.WriteString("\n\n")

		check := "[ ]"
		if m.includeHeader {
			check = "[x]"
		}
		content.WriteString(m.renderChoice("Header row", check, m.focused == fieldHeader))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	saveStyle := styles.PrimaryButtonStyle
	if m.blocked() {
		saveStyle = styles.SecondaryButtonStyle
	} else if m.focused == fieldSave {
		saveStyle = styles.PrimaryButtonFocusedStyle
	}
	cancelStyle := styles.SecondaryButtonStyle
	if m.focused == fieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	content.WriteString(saveStyle.Render("Generate") + "  " + cancelStyle.Render("Cancel"))

	var result strings.Builder
	result.WriteString(titleStyle.Render("Generate: " + m.setName))
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

func (m Model) describeFormat() string {
	if m.format == history.FormatClipboard {
		return "Clipboard"
	}
	return "CSV file"
}

func (m Model) renderChoice(label, value string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	valueStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)

	prefix := "  "
	if focused {
		prefix = styles.SelectionIndicatorStyle.Render("> ")
	}
	return prefix + labelStyle.Render(label+": ") + valueStyle.Render(value)
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
