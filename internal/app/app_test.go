package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/fenwick/namesmith/internal/clipboard"
	"github.com/fenwick/namesmith/internal/config"
	"github.com/fenwick/namesmith/internal/history"
	"github.com/fenwick/namesmith/internal/projectstore"
	"github.com/fenwick/namesmith/internal/testutil"
	"github.com/fenwick/namesmith/internal/ui/elementpane"
	"github.com/fenwick/namesmith/internal/ui/exportmodal"
	"github.com/fenwick/namesmith/internal/ui/modal"
	"github.com/fenwick/namesmith/internal/ui/newsetmodal"
	"github.com/fenwick/namesmith/internal/ui/sequencer"
	"github.com/fenwick/namesmith/internal/ui/setpane"
	"github.com/fenwick/namesmith/internal/ui/toaster"
)

// memRepo is an in-memory history.Repository for tests.
type memRepo struct {
	records []*history.ExportRecord
}

func (r *memRepo) Record(record *history.ExportRecord) error {
	r.records = append(r.records, record)
	return nil
}

func (r *memRepo) Recent(limit int) ([]*history.ExportRecord, error) {
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	return r.records[:limit], nil
}

func (r *memRepo) CountForNameSet(nameSet string) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.NameSet == nameSet {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) Close() error { return nil }

// createTestModel builds a Model around a temp-dir store and a small
// project. Auto-reload stays off so tests never race the watcher.
func createTestModel(t *testing.T) (Model, *clipboard.MockClipboard, *memRepo) {
	t.Helper()

	dir := t.TempDir()
	store := projectstore.New(filepath.Join(dir, "project.json"), noop.NewTracerProvider().Tracer("test"))

	project := testutil.NewBuilder(t).
		WithElement("SoundType", "SFX", "VO").
		WithElement("Action", "Jump", "Land").
		WithNameSet("Locomotion", testutil.WithTemplate("SoundType", "Action"), testutil.WithDelimiter("_")).
		Build()

	cfg := config.Defaults()
	cfg.AutoReload = false

	clip := &clipboard.MockClipboard{}
	repo := &memRepo{}

	m := New(Deps{
		Store:      store,
		Project:    project,
		Config:     cfg,
		ConfigPath: filepath.Join(dir, "config.yaml"),
		Clipboard:  clip,
		History:    repo,
	})

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return newModel.(Model), clip, repo
}

// drain runs a command and feeds the produced messages back into the model,
// expanding batches. Follow-up commands (toast dismiss timers and the like)
// are not executed.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			continue
		}
		newModel, _ := m.Update(msg)
		m = newModel.(Model)
	}
	return m
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 150, Height: 50})
	m = newModel.(Model)

	assert.Equal(t, 150, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_FirstSetIsActive(t *testing.T) {
	m, _, _ := createTestModel(t)
	assert.Equal(t, "Locomotion", m.project.ActiveName())
}

func TestApp_ViewRenders(t *testing.T) {
	m, _, _ := createTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Locomotion")
	assert.Contains(t, view, "SoundType")
	assert.Contains(t, view, "SFX_Jump", "preview bar should render the current selection")
}

func TestApp_TabCyclesFocus(t *testing.T) {
	m, _, _ := createTestModel(t)
	assert.Equal(t, paneElements, m.focus)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)
	assert.Equal(t, paneSequencer, m.focus)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = newModel.(Model)
	assert.Equal(t, paneSets, m.focus)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = newModel.(Model)
	assert.Equal(t, paneSequencer, m.focus)
}

func TestApp_QuitKey(t *testing.T) {
	m, _, _ := createTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_TermChosenUpdatesPreview(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.TermChosenMsg{Element: "Action", Term: "Land"})
	m = newModel.(Model)

	assert.Contains(t, m.View(), "SFX_Land")
}

func TestApp_DeleteTermPersists(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.DeleteTermMsg{Element: "Action", Term: "Jump"})
	m = newModel.(Model)

	el := m.project.Elements.Get("Action")
	require.NotNil(t, el)
	assert.Equal(t, []string{"Land"}, el.Terms)

	// The mutation was written through to disk.
	reloaded, err := m.store.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"Land"}, reloaded.Elements.Get("Action").Terms)
}

func TestApp_AddElementFlow(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.AddElementMsg{})
	m = newModel.(Model)
	assert.Equal(t, overlayPrompt, m.overlay)

	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"name": "Surface"}})
	m = newModel.(Model)

	assert.Equal(t, overlayNone, m.overlay)
	assert.True(t, m.project.Elements.Has("Surface"))
	// New elements join the active template.
	assert.Contains(t, m.project.ActiveNameSet().Template, "Surface")
}

func TestApp_AddTermFlow(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.AddTermMsg{Element: "Action"})
	m = newModel.(Model)
	assert.Equal(t, overlayPrompt, m.overlay)

	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"term": "Slide"}})
	m = newModel.(Model)

	assert.True(t, m.project.Elements.Get("Action").HasTerm("Slide"))
	// Freshly added terms become the selection.
	assert.Contains(t, m.View(), "SFX_Slide")
}

func TestApp_DuplicateElementShowsToast(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.AddElementMsg{})
	m = newModel.(Model)
	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"name": "Action"}})
	m = newModel.(Model)

	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.View(), "already exists")
}

func TestApp_NewSetFlow(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(setpane.NewSetMsg{})
	m = newModel.(Model)
	assert.Equal(t, overlayNewSet, m.overlay)

	newModel, _ = m.Update(newsetmodal.CreateMsg{Name: "Combat", CloneFromActive: true})
	m = newModel.(Model)

	assert.Equal(t, "Combat", m.project.ActiveName())
	set := m.project.NameSets.Get("Combat")
	require.NotNil(t, set)
	assert.Equal(t, []string{"SoundType", "Action"}, set.Template, "clone copies the template")
}

func TestApp_ActivateSet(t *testing.T) {
	m, _, _ := createTestModel(t)
	_, err := m.project.CreateNameSet("Combat", false)
	require.NoError(t, err)
	require.NoError(t, m.project.SetActive("Combat"))

	newModel, _ := m.Update(setpane.ActivateMsg{Name: "Locomotion"})
	m = newModel.(Model)

	assert.Equal(t, "Locomotion", m.project.ActiveName())
}

func TestApp_ReorderSetMovesListNotTemplate(t *testing.T) {
	m, _, _ := createTestModel(t)
	_, err := m.project.CreateNameSet("Combat", false)
	require.NoError(t, err)
	require.NoError(t, m.project.SetActive("Locomotion"))
	m = m.refresh()

	// What "J" on the first list row emits.
	newModel, _ := m.Update(setpane.ReorderMsg{Name: "Locomotion", FromIndex: 0, ToIndex: 1})
	m = newModel.(Model)

	assert.Equal(t, []string{"SoundType", "Action"}, m.project.NameSets.Get("Locomotion").Template,
		"moving a set down the list must not touch its template")

	names := make([]string, 0, 2)
	for _, set := range m.project.NameSets.List() {
		names = append(names, set.Name)
	}
	assert.Equal(t, []string{"Combat", "Locomotion"}, names)

	// The new list order is what gets persisted.
	reloaded, err := m.store.Load(t.Context())
	require.NoError(t, err)
	persisted := make([]string, 0, 2)
	for _, set := range reloaded.NameSets.List() {
		persisted = append(persisted, set.Name)
	}
	assert.Equal(t, []string{"Combat", "Locomotion"}, persisted)
	assert.Equal(t, []string{"SoundType", "Action"}, reloaded.NameSets.Get("Locomotion").Template)
}

func TestApp_SlotOps(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(sequencer.MoveSlotMsg{FromIndex: 0, ToIndex: 1})
	m = newModel.(Model)
	assert.Equal(t, []string{"Action", "SoundType"}, m.project.ActiveNameSet().Template)

	newModel, _ = m.Update(sequencer.RemoveSlotMsg{Index: 0})
	m = newModel.(Model)
	assert.Equal(t, []string{"SoundType"}, m.project.ActiveNameSet().Template)

	// Adding a slot back goes through the prompt.
	newModel, _ = m.Update(sequencer.AddSlotMsg{})
	m = newModel.(Model)
	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"element": "Action"}})
	m = newModel.(Model)
	assert.Equal(t, []string{"SoundType", "Action"}, m.project.ActiveNameSet().Template)
}

func TestApp_AddSlotUnknownElementToasts(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(sequencer.AddSlotMsg{})
	m = newModel.(Model)
	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"element": "Nope"}})
	m = newModel.(Model)

	assert.True(t, m.toaster.Visible())
}

func TestApp_YankCopiesPreview(t *testing.T) {
	m, clip, _ := createTestModel(t)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = newModel.(Model)
	require.NotNil(t, cmd)

	assert.Equal(t, "SFX_Jump", clip.Last())
	assert.True(t, m.toaster.Visible())
}

func TestApp_GenerateOpensExportModal(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = newModel.(Model)

	assert.Equal(t, overlayExport, m.overlay)
	assert.Contains(t, m.View(), "4", "2x2 cross-product count is shown up front")
}

func TestApp_ClipboardExportRecordsHistory(t *testing.T) {
	m, clip, repo := createTestModel(t)

	newModel, cmd := m.Update(exportmodal.SubmitMsg{Format: history.FormatClipboard, IncludeHeader: false})
	m = newModel.(Model)
	m = drain(t, m, cmd)

	require.Len(t, clip.Copied, 1)
	lines := strings.Split(clip.Last(), "\n")
	assert.Equal(t, []string{"SFX_Jump", "SFX_Land", "VO_Jump", "VO_Land"}, lines,
		"enumeration follows odometer order, last slot fastest")

	require.Len(t, repo.records, 1)
	assert.Equal(t, int64(4), repo.records[0].Rows)
	assert.Equal(t, history.FormatClipboard, repo.records[0].Format)
}

func TestApp_CSVExportWritesFile(t *testing.T) {
	m, _, repo := createTestModel(t)
	out := filepath.Join(t.TempDir(), "loco.csv")

	newModel, cmd := m.Update(exportmodal.SubmitMsg{Format: history.FormatCSV, Path: out, IncludeHeader: true})
	m = newModel.(Model)
	m = drain(t, m, cmd)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"SoundType,Action\nSFX,Jump\nSFX,Land\nVO,Jump\nVO,Land\n",
		string(data))

	require.Len(t, repo.records, 1)
	assert.Equal(t, out, repo.records[0].Destination)
	assert.True(t, m.toaster.Visible())
}

func TestApp_HelpOverlayToggles(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	assert.Equal(t, overlayHelp, m.overlay)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = newModel.(Model)
	assert.Equal(t, overlayNone, m.overlay)
}

func TestApp_EscClosesPrompt(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(elementpane.AddElementMsg{})
	m = newModel.(Model)

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = newModel.(Model)
	m = drain(t, m, cmd)

	assert.Equal(t, overlayNone, m.overlay)
}

func TestApp_FilterPromptAppliesToSetPane(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(setpane.EditFiltersMsg{})
	m = newModel.(Model)
	newModel, _ = m.Update(modal.SubmitMsg{Values: map[string]string{"group": "SFX", "tag": "loco"}})
	m = newModel.(Model)

	group, tag := m.sets.Filters()
	assert.Equal(t, "SFX", group)
	assert.Equal(t, "loco", tag)
}

func TestApp_ReloadSwapsProject(t *testing.T) {
	m, _, _ := createTestModel(t)

	// Persist, then mutate the in-memory copy so the reload is observable.
	require.NoError(t, m.store.Save(t.Context(), m.project))
	require.NoError(t, m.project.AddTerm("Action", "Transient"))

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = newModel.(Model)
	m = drain(t, m, cmd)

	assert.False(t, m.project.Elements.Get("Action").HasTerm("Transient"))
	assert.Equal(t, "Locomotion", m.project.ActiveName(), "active set survives a reload")
}

func TestApp_ToasterDismiss(t *testing.T) {
	m, _, _ := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = newModel.(Model)
	require.True(t, m.toaster.Visible())

	newModel, _ = m.Update(toaster.DismissMsg{})
	m = newModel.(Model)
	assert.False(t, m.toaster.Visible())
}

func TestApp_CloseReleasesRepo(t *testing.T) {
	m, _, _ := createTestModel(t)
	assert.NoError(t, m.Close())
}
