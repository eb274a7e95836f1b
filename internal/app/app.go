// Package app contains the root application model.
package app

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick/namesmith/internal/cachemanager"
	"github.com/fenwick/namesmith/internal/clipboard"
	"github.com/fenwick/namesmith/internal/config"
	"github.com/fenwick/namesmith/internal/history"
	"github.com/fenwick/namesmith/internal/keys"
	"github.com/fenwick/namesmith/internal/log"
	"github.com/fenwick/namesmith/internal/naming"
	"github.com/fenwick/namesmith/internal/projectstore"
	"github.com/fenwick/namesmith/internal/templates"
	"github.com/fenwick/namesmith/internal/ui/elementpane"
	"github.com/fenwick/namesmith/internal/ui/exportmodal"
	"github.com/fenwick/namesmith/internal/ui/markdown"
	"github.com/fenwick/namesmith/internal/ui/modal"
	"github.com/fenwick/namesmith/internal/ui/newsetmodal"
	"github.com/fenwick/namesmith/internal/ui/overlay"
	"github.com/fenwick/namesmith/internal/ui/previewbar"
	"github.com/fenwick/namesmith/internal/ui/sequencer"
	"github.com/fenwick/namesmith/internal/ui/setpane"
	"github.com/fenwick/namesmith/internal/ui/styles"
	"github.com/fenwick/namesmith/internal/ui/toaster"
	"github.com/fenwick/namesmith/internal/watcher"
)

// pane identifies which pane owns keyboard focus.
type pane int

const (
	paneSets pane = iota
	paneElements
	paneSequencer
)

// activeOverlay identifies the modal layer on top of the panes, if any.
type activeOverlay int

const (
	overlayNone activeOverlay = iota
	overlayPrompt
	overlayNewSet
	overlayExport
	overlayHelp
)

// promptPurpose identifies what the generic input modal is collecting.
type promptPurpose int

const (
	promptAddElement promptPurpose = iota
	promptAddTerm
	promptAddSlot
	promptEditFilters
)

// fileChangedMsg signals that the project document changed on disk.
type fileChangedMsg struct{}

// reloadedMsg carries the result of reloading the project document.
type reloadedMsg struct {
	project *naming.Project
	err     error
}

// exportDoneMsg carries the result of a finished export.
type exportDoneMsg struct {
	rows   int64
	format string
	path   string
	err    error
}

// Deps are the services the application model is built from.
type Deps struct {
	Store      *projectstore.Store
	Project    *naming.Project
	Config     config.Config
	ConfigPath string
	Clipboard  clipboard.Clipboard

	// History records completed exports; nil disables recording.
	History history.Repository
}

// Model is the root application state.
type Model struct {
	project *naming.Project
	store   *projectstore.Store
	cfg     config.Config
	cfgPath string
	clip    clipboard.Clipboard
	histRepo history.Repository

	keymap keys.KeyMap

	// Panes
	sets      setpane.Model
	elements  elementpane.Model
	sequencer sequencer.Model
	preview   previewbar.Model
	focus     pane

	// Overlays - owned by app, at most one visible at a time
	overlay    activeOverlay
	prompt     modal.Model
	purpose    promptPurpose
	promptElem string // target element for promptAddTerm
	newSet     newsetmodal.Model
	export     exportmodal.Model
	helpView   string

	toaster toaster.Model

	// Cross-product counts for the active set, invalidated on mutation
	countCache cachemanager.CacheManager[string, *big.Int]

	// File watcher for auto-reload
	watcherHandle *watcher.Watcher
	reloadCh      <-chan struct{}
	lastSave      time.Time

	width  int
	height int
}

// New creates the application model from its dependencies. The file watcher
// is started when auto-reload is enabled; watcher init errors are ignored
// because the application works fine without auto-reload.
func New(deps Deps) Model {
	m := Model{
		project:  deps.Project,
		store:    deps.Store,
		cfg:      deps.Config,
		cfgPath:  deps.ConfigPath,
		clip:     deps.Clipboard,
		histRepo: deps.History,
		keymap:   keys.DefaultKeyMap(),

		sets:      setpane.New(),
		elements:  elementpane.New(),
		sequencer: sequencer.New(),
		preview:   previewbar.New(),
		focus:     paneElements,

		countCache: cachemanager.NewInMemoryCacheManager[string, *big.Int](
			"preview-count", 10*time.Minute, 30*time.Minute,
		),
	}

	if deps.Config.AutoReload && deps.Store != nil {
		cfg := watcher.DefaultConfig(deps.Store.Path())
		if deps.Config.AutoReloadDebounce > 0 {
			cfg.DebounceDur = time.Duration(deps.Config.AutoReloadDebounce) * time.Millisecond
		}
		if w, err := watcher.New(cfg); err == nil {
			if ch, err := w.Start(); err == nil {
				m.watcherHandle = w
				m.reloadCh = ch
			} else {
				_ = w.Stop()
			}
		}
	}

	m.elements = m.elements.Focus()
	m = m.restoreActiveSet()
	return m.refresh()
}

// restoreActiveSet activates the configured last-active set, falling back to
// the first set in the project.
func (m Model) restoreActiveSet() Model {
	if m.project.ActiveName() != "" {
		return m
	}
	if m.cfg.ActiveNameSet != "" && m.project.NameSets.Has(m.cfg.ActiveNameSet) {
		_ = m.project.SetActive(m.cfg.ActiveNameSet)
		return m
	}
	if sets := m.project.NameSets.List(); len(sets) > 0 {
		_ = m.project.SetActive(sets[0].Name)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.reloadCh != nil {
		return listenForReload(m.reloadCh)
	}
	return nil
}

// listenForReload waits for the next watcher notification.
func listenForReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.layout()
		m.prompt.SetSize(msg.Width, msg.Height)
		m.newSet.SetSize(msg.Width, msg.Height)
		m.export.SetSize(msg.Width, msg.Height)
		m.helpView = "" // re-rendered at the new width on next toggle
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileChangedMsg:
		// Our own atomic save lands in the watched directory too; a change
		// right after a save is an echo, not an external edit.
		if time.Since(m.lastSave) < time.Second {
			return m, listenForReload(m.reloadCh)
		}
		return m, tea.Batch(m.reloadCmd(), listenForReload(m.reloadCh))

	case reloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatProject, "Reload failed", msg.err)
			return m.toast("Reload failed: "+msg.err.Error(), toaster.StyleError)
		}
		active := m.project.ActiveName()
		m.project = msg.project
		if active != "" && m.project.NameSets.Has(active) {
			_ = m.project.SetActive(active)
		}
		m = m.restoreActiveSet()
		if err := m.countCache.Flush(context.Background()); err != nil {
			log.Warn(log.CatCache, "Failed to flush count cache on reload", "error", err)
		}
		m = m.refresh()
		return m.toast("Project reloaded", toaster.StyleInfo)

	case exportDoneMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatExport, "Export failed", msg.err)
			return m.toast("Export failed: "+msg.err.Error(), toaster.StyleError)
		}
		if msg.format == history.FormatClipboard {
			return m.toast(fmt.Sprintf("Copied %d names to clipboard", msg.rows), toaster.StyleSuccess)
		}
		return m.toast(fmt.Sprintf("Wrote %d names to %s", msg.rows, msg.path), toaster.StyleSuccess)

	case elementpane.TermChosenMsg:
		if err := m.project.Select(msg.Element, msg.Term); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.refresh(), nil

	case elementpane.AddElementMsg:
		return m.openPrompt(promptAddElement, modal.Config{
			Title:  "New Element",
			Inputs: []modal.InputConfig{{Key: "name", Label: "Name", Placeholder: "e.g. SoundType"}},
		})

	case elementpane.AddTermMsg:
		m.promptElem = msg.Element
		return m.openPrompt(promptAddTerm, modal.Config{
			Title:  "Add Term to " + msg.Element,
			Inputs: []modal.InputConfig{{Key: "term", Label: "Term", Placeholder: "e.g. Jump"}},
		})

	case elementpane.DeleteTermMsg:
		if err := m.project.RemoveTerm(msg.Element, msg.Term); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case setpane.ActivateMsg:
		if err := m.project.SetActive(msg.Name); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		if err := config.SaveActiveNameSet(m.cfgPath, msg.Name); err != nil {
			log.Warn(log.CatConfig, "Failed to persist active set", "error", err)
		}
		return m.refresh(), nil

	case setpane.NewSetMsg:
		var names []string
		for _, s := range m.project.NameSets.List() {
			names = append(names, s.Name)
		}
		m.newSet = newsetmodal.New(names, m.project.ActiveName())
		m.newSet.SetSize(m.width, m.height)
		m.overlay = overlayNewSet
		return m, m.newSet.Init()

	case setpane.EditFiltersMsg:
		group, tag := m.sets.Filters()
		return m.openPrompt(promptEditFilters, modal.Config{
			Title: "Filter Name Sets",
			Inputs: []modal.InputConfig{
				{Key: "group", Label: "Group", Placeholder: "exact match", Value: group, Optional: true},
				{Key: "tag", Label: "Tag", Placeholder: "substring", Value: tag, Optional: true},
			},
		})

	case setpane.ReorderMsg:
		if err := m.project.NameSets.MoveSet(msg.FromIndex, msg.ToIndex); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case sequencer.MoveSlotMsg:
		if err := m.project.MoveSlot(msg.FromIndex, msg.ToIndex); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case sequencer.RemoveSlotMsg:
		if err := m.project.RemoveSlot(msg.Index); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case sequencer.AddSlotMsg:
		return m.openPrompt(promptAddSlot, modal.Config{
			Title:   "Add Slot",
			Message: "Reference an existing element.",
			Inputs:  []modal.InputConfig{{Key: "element", Label: "Element", Placeholder: strings.Join(m.project.Elements.Names(), ", ")}},
		})

	case modal.SubmitMsg:
		return m.handlePromptSubmit(msg)

	case modal.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case newsetmodal.CreateMsg:
		m.overlay = overlayNone
		if _, err := m.project.CreateNameSet(msg.Name, msg.CloneFromActive); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		if err := config.SaveActiveNameSet(m.cfgPath, msg.Name); err != nil {
			log.Warn(log.CatConfig, "Failed to persist active set", "error", err)
		}
		return m.mutated()

	case newsetmodal.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case exportmodal.SubmitMsg:
		m.overlay = overlayNone
		return m, m.exportCmd(msg)

	case exportmodal.CancelMsg:
		m.overlay = overlayNone
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input to the active overlay or pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open overlay takes all input.
	switch m.overlay {
	case overlayPrompt:
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	case overlayNewSet:
		var cmd tea.Cmd
		m.newSet, cmd = m.newSet.Update(msg)
		return m, cmd
	case overlayExport:
		var cmd tea.Cmd
		m.export, cmd = m.export.Update(msg)
		return m, cmd
	case overlayHelp:
		if key.Matches(msg, m.keymap.Help) || key.Matches(msg, m.keymap.Escape) || key.Matches(msg, m.keymap.Quit) {
			m.overlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m = m.renderHelp()
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextPane):
		return m.cycleFocus(1), nil

	case key.Matches(msg, m.keymap.PrevPane):
		return m.cycleFocus(-1), nil

	case key.Matches(msg, m.keymap.Reload):
		return m, m.reloadCmd()

	case key.Matches(msg, m.keymap.Yank):
		return m.yankPreview()

	case key.Matches(msg, m.keymap.Generate):
		return m.openExport()
	}

	// Everything else belongs to the focused pane.
	var cmd tea.Cmd
	switch m.focus {
	case paneSets:
		m.sets, cmd = m.sets.Update(msg)
	case paneElements:
		m.elements, cmd = m.elements.Update(msg)
	case paneSequencer:
		m.sequencer, cmd = m.sequencer.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves keyboard focus to the next pane in order.
func (m Model) cycleFocus(delta int) Model {
	order := []pane{paneSets, paneElements, paneSequencer}
	idx := 0
	for i, p := range order {
		if p == m.focus {
			idx = i
			break
		}
	}
	m.focus = order[(idx+delta+len(order))%len(order)]

	m.sets = m.sets.Blur()
	m.elements = m.elements.Blur()
	m.sequencer = m.sequencer.Blur()
	switch m.focus {
	case paneSets:
		m.sets = m.sets.Focus()
	case paneElements:
		m.elements = m.elements.Focus()
	case paneSequencer:
		m.sequencer = m.sequencer.Focus()
	}
	return m
}

// openPrompt switches to the generic input modal for the given purpose.
func (m Model) openPrompt(purpose promptPurpose, cfg modal.Config) (Model, tea.Cmd) {
	m.purpose = purpose
	m.prompt = modal.New(cfg)
	m.prompt.SetSize(m.width, m.height)
	m.overlay = overlayPrompt
	return m, m.prompt.Init()
}

// handlePromptSubmit applies the generic modal's values per its purpose.
func (m Model) handlePromptSubmit(msg modal.SubmitMsg) (tea.Model, tea.Cmd) {
	m.overlay = overlayNone

	switch m.purpose {
	case promptAddElement:
		if _, err := m.project.CreateElement(msg.Values["name"]); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case promptAddTerm:
		if err := m.project.AddTerm(m.promptElem, msg.Values["term"]); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case promptAddSlot:
		set := m.project.ActiveName()
		if set == "" {
			return m.toast("No active name set", toaster.StyleWarn)
		}
		if err := m.project.AddSlot(set, msg.Values["element"]); err != nil {
			return m.toast(err.Error(), toaster.StyleError)
		}
		return m.mutated()

	case promptEditFilters:
		m.sets = m.sets.SetFilters(msg.Values["group"], msg.Values["tag"])
		return m, nil
	}

	return m, nil
}

// mutated persists the project after a successful mutation, invalidates the
// count cache, and refreshes every pane.
func (m Model) mutated() (tea.Model, tea.Cmd) {
	if err := m.countCache.Flush(context.Background()); err != nil {
		log.Warn(log.CatCache, "Failed to flush count cache", "error", err)
	}

	m.lastSave = time.Now()
	if err := m.store.Save(context.Background(), m.project); err != nil {
		return m.toast("Save failed: "+err.Error(), toaster.StyleError)
	}
	return m.refresh(), nil
}

// reloadCmd re-reads the project document from disk.
func (m Model) reloadCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		project, err := store.Load(context.Background())
		return reloadedMsg{project: project, err: err}
	}
}

// yankPreview copies the current preview name to the clipboard.
func (m Model) yankPreview() (tea.Model, tea.Cmd) {
	name := m.project.Preview()
	if name == "" {
		return m.toast("Nothing to copy", toaster.StyleWarn)
	}
	if err := m.clip.Copy(name); err != nil {
		return m.toast("Clipboard error: "+err.Error(), toaster.StyleError)
	}
	return m.toast("Copied "+name, toaster.StyleSuccess)
}

// openExport shows the generate dialog with the pre-flight count.
func (m Model) openExport() (tea.Model, tea.Cmd) {
	set := m.project.ActiveNameSet()
	if set == nil {
		return m.toast("No active name set", toaster.StyleWarn)
	}

	total, emptyElem := m.activeCount()
	defaultPath := sanitizeFilename(set.Name) + ".csv"
	m.export = exportmodal.New(set.Name, total, m.cfg.Export.MaxRows, emptyElem, defaultPath)
	m.export.SetSize(m.width, m.height)
	m.overlay = overlayExport
	return m, m.export.Init()
}

// activeCount returns the active set's cross-product size and, when the
// enumeration is empty because of a dry vocabulary, the offending element.
func (m Model) activeCount() (*big.Int, string) {
	g, err := m.project.Generator()
	if err != nil {
		return big.NewInt(0), ""
	}

	key := m.project.ActiveName()
	ctx := context.Background()
	total, ok := m.countCache.Get(ctx, key)
	if !ok {
		total = g.TotalCount()
		m.countCache.Set(ctx, key, total, 0)
	}

	if reason, empty := g.EmptyReason(); empty {
		return total, reason.Element
	}
	return total, ""
}

// exportCmd streams the enumeration to its destination off the UI loop. The
// generator is built from a deep copy so later edits cannot race the export.
func (m Model) exportCmd(sub exportmodal.SubmitMsg) tea.Cmd {
	snapshot := m.project.Clone()
	if err := snapshot.SetActive(m.project.ActiveName()); err != nil {
		return func() tea.Msg { return exportDoneMsg{err: err} }
	}
	g, err := snapshot.Generator()
	if err != nil {
		return func() tea.Msg { return exportDoneMsg{err: err} }
	}

	opts := naming.ExportOptions{
		IncludeHeader: sub.IncludeHeader,
		MaxRows:       m.cfg.Export.MaxRows,
	}
	clip := m.clip
	repo := m.histRepo

	return func() tea.Msg {
		ctx := context.Background()
		var rows int64
		var err error

		switch sub.Format {
		case history.FormatClipboard:
			var buf bytes.Buffer
			rows, err = naming.WritePlain(ctx, &buf, g, opts)
			if err == nil {
				err = clip.Copy(buf.String())
			}
		default:
			var f *os.File
			f, err = os.Create(sub.Path) //nolint:gosec // G304: user-chosen export path
			if err != nil {
				break
			}
			rows, err = naming.WriteCSV(ctx, f, g, opts)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}

		if err != nil {
			return exportDoneMsg{err: err}
		}

		log.Info(log.CatExport, "Export complete", "set", g.SetName(), "rows", rows, "format", sub.Format)
		if repo != nil {
			rec := history.NewExportRecord(g.SetName(), rows, sub.Format, sub.Path)
			if recErr := repo.Record(rec); recErr != nil {
				log.Warn(log.CatDB, "Failed to record export", "error", recErr)
			}
		}
		return exportDoneMsg{rows: rows, format: sub.Format, path: sub.Path}
	}
}

// toast shows a transient notification.
func (m Model) toast(message string, style toaster.Style) (tea.Model, tea.Cmd) {
	m.toaster = m.toaster.Show(message, style)
	return m, toaster.ScheduleDismiss(3 * time.Second)
}

// refresh rebuilds every pane's view model from the project.
func (m Model) refresh() Model {
	active := m.project.ActiveNameSet()
	selection := m.project.Selection()

	items := make([]elementpane.Item, 0, m.project.Elements.Len())
	for _, el := range m.project.Elements.List() {
		selected, _ := selection.Get(el.Name)
		inActive := false
		if active != nil {
			for _, slot := range active.Template {
				if slot == el.Name {
					inActive = true
					break
				}
			}
		}
		items = append(items, elementpane.Item{
			Name:     el.Name,
			Terms:    el.Terms,
			Selected: selected,
			InActive: inActive,
		})
	}
	m.elements = m.elements.SetItems(items)

	setItems := make([]setpane.Item, 0, m.project.NameSets.Len())
	for _, s := range m.project.NameSets.List() {
		setItems = append(setItems, setpane.Item{
			Name:   s.Name,
			Group:  s.Group,
			Tags:   s.Tags,
			Active: active != nil && s.Name == active.Name,
		})
	}
	m.sets = m.sets.SetItems(setItems)

	if active != nil {
		m.sequencer = m.sequencer.SetTemplate(active.Template, active.Delimiter)
		m.preview = m.preview.SetPreview(active.Name, m.project.Preview())
		total, emptyElem := m.activeCount()
		m.preview = m.preview.SetTotal(total).SetEmptyReason(emptyElem)
	} else {
		m.sequencer = m.sequencer.SetTemplate(nil, "")
		m.preview = m.preview.SetPreview("", "")
	}

	return m
}

// layout distributes the window between the panes.
func (m Model) layout() Model {
	if m.width <= 0 || m.height <= 0 {
		return m
	}

	const sequencerHeight = 3
	footerHeight := 2 // preview bar + status bar
	paneHeight := max(m.height-sequencerHeight-footerHeight, 3)

	setsWidth := m.width / 3
	elementsWidth := m.width - setsWidth

	m.sets = m.sets.SetSize(setsWidth, paneHeight)
	m.elements = m.elements.SetSize(elementsWidth, paneHeight)
	m.sequencer = m.sequencer.SetSize(m.width, sequencerHeight)
	m.preview = m.preview.SetSize(m.width)
	return m
}

// renderHelp renders the embedded help document for the current width.
func (m Model) renderHelp() Model {
	if m.helpView != "" {
		return m
	}

	width := min(m.width-8, 78)
	if width < 20 {
		width = 20
	}
	r, err := markdown.NewWithStyle(width, m.cfg.UI.MarkdownStyle)
	if err != nil {
		m.helpView = templates.Help()
		return m
	}
	out, err := r.Render(templates.Help())
	if err != nil {
		m.helpView = templates.Help()
		return m
	}
	m.helpView = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(0, 1).
		Render(out)
	return m
}

// statusBar renders the one-line key hint footer.
func (m Model) statusBar() string {
	if !m.cfg.UI.ShowStatusBar {
		return ""
	}

	var hints []string
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	bar := strings.Join(hints, "  ·  ")
	return styles.StatusBarStyle.Width(m.width).Render(styles.TruncateString(bar, max(m.width-2, 0)))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.sets.View(), m.elements.View())
	view := lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.sequencer.View(),
		m.preview.View(),
		m.statusBar(),
	)

	switch m.overlay {
	case overlayPrompt:
		view = m.prompt.Overlay(view)
	case overlayNewSet:
		view = m.newSet.Overlay(view)
	case overlayExport:
		view = m.export.Overlay(view)
	case overlayHelp:
		view = overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   m.height,
			Position: overlay.Center,
		}, m.helpView, view)
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	return view
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	if m.histRepo != nil {
		return m.histRepo.Close()
	}
	return nil
}

// sanitizeFilename makes a set name safe to use as a default file name.
func sanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		case ' ':
			return '_'
		}
		return r
	}, name)
	if mapped == "" {
		return "names"
	}
	return mapped
}
