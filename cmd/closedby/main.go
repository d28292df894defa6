package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dialogkit/closedby/dismiss"
	"github.com/dialogkit/closedby/host"
	"github.com/dialogkit/closedby/internal/config"
	"github.com/dialogkit/closedby/internal/scenario"
	"github.com/dialogkit/closedby/widgets"
)

type keyMap struct {
	Open1  key.Binding
	Open2  key.Binding
	Open3  key.Binding
	Open4  key.Binding
	Cycle  key.Binding
	Clear  key.Binding
	Cancel key.Binding
	Escape key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open1:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "open confirm (any)")),
		Open2:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "open settings (closerequest)")),
		Open3:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "open wizard (none)")),
		Open4:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "open shadow dialog")),
		Cycle:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle closedby of top dialog")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear closedby of top dialog")),
		Cancel: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "request close")),
		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// diagBuffer keeps the latest diagnostic line. The bubbletea model is copied
// by value on every update, so diagnostics land in shared state instead.
type diagBuffer struct {
	last string
}

func (b *diagBuffer) Log(ev dismiss.Event) {
	b.last = ev.Op
	if ev.Message != "" {
		b.last += ": " + ev.Message
	}
}

type model struct {
	cfg      config.Config
	keys     keyMap
	doc      *host.Document
	feature  *host.Feature
	dialogs  map[string]*host.Element
	diag     *diagBuffer
	order    []string // render order = open order
	status   string
	quitting bool
}

func newModel(cfg config.Config) (model, error) {
	m := model{cfg: cfg, keys: defaultKeyMap(), doc: host.NewDocument(), diag: &diagBuffer{}}

	scn, err := loadScenario(cfg.Scenario.Path)
	if err != nil {
		return model{}, err
	}
	m.dialogs, err = scn.Build(m.doc)
	if err != nil {
		return model{}, err
	}

	var log dismiss.Logger
	if cfg.Diagnostics.Verbose {
		log = m.diag
	}
	m.feature = host.Install(m.doc, host.Options{Logger: log})
	if m.feature == nil {
		return model{}, fmt.Errorf("dismissal layer declined to install")
	}
	m.status = "ready"
	return m, nil
}

func loadScenario(path string) (scenario.Scenario, error) {
	if path == "" {
		return scenario.Parse(scenario.Default)
	}
	return scenario.Load(path)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.routeClick(msg.X, msg.Y)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.cfg.UI.Width = msg.Width
		m.cfg.UI.Height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		if m.feature.Escape() {
			m.status = "escape handled by dialog stack"
			return m, nil
		}
		// Unconsumed Escape falls through to the app's own default.
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open1):
		m.openDialog("confirm")
	case key.Matches(msg, m.keys.Open2):
		m.openDialog("settings")
	case key.Matches(msg, m.keys.Open3):
		m.openDialog("wizard")
	case key.Matches(msg, m.keys.Open4):
		m.openDialog("embedded")
	case key.Matches(msg, m.keys.Cycle):
		if d := m.topDialog(); d != nil {
			next := cycleValue(d.ClosedByProperty())
			d.SetClosedByProperty(next)
			m.status = fmt.Sprintf("%s closedby=%s", d.ID(), next)
		}
	case key.Matches(msg, m.keys.Clear):
		if d := m.topDialog(); d != nil {
			d.ClearClosedByProperty()
			m.status = fmt.Sprintf("%s closedby cleared (no longer tracked)", d.ID())
		}
	case key.Matches(msg, m.keys.Cancel):
		if d := m.topDialog(); d != nil {
			d.RequestClose()
		}
	}
	return m, nil
}

func (m *model) openDialog(id string) {
	d, ok := m.dialogs[id]
	if !ok {
		m.status = fmt.Sprintf("no dialog %q in scenario", id)
		return
	}
	if err := d.ShowModal(); err != nil {
		m.status = fmt.Sprintf("open %s: %v", id, err)
		return
	}
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append(m.order, id)
	m.status = fmt.Sprintf("opened %s (closedby=%s)", id, d.ClosedByProperty())
}

// topDialog returns the most recently opened dialog that is still open.
func (m *model) topDialog() *host.Element {
	for i := len(m.order) - 1; i >= 0; i-- {
		if d := m.dialogs[m.order[i]]; d.Open() {
			return d
		}
	}
	return nil
}

// routeClick delivers a pointer press to the top-most open dialog. Presses
// inside the dialog's content box target its content, not the dialog
// surface, so only outside presses are backdrop-eligible.
func (m *model) routeClick(x, y int) {
	d := m.topDialog()
	if d == nil {
		return
	}
	target := d
	if d.ContentRect().Contains(x, y) {
		target = nil // a descendant, as far as the dialog is concerned
	}
	d.DispatchClick(x, y, target)
}

func cycleValue(v string) string {
	switch v {
	case dismiss.ValueAny:
		return dismiss.ValueCloseRequest
	case dismiss.ValueCloseRequest:
		return dismiss.ValueNone
	default:
		return dismiss.ValueAny
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	w, h := m.cfg.UI.Width, m.cfg.UI.Height
	base := m.baseCanvas(h)
	for _, id := range m.order {
		d := m.dialogs[id]
		if !d.Open() {
			continue
		}
		content := titleStyle.Render(d.ID()) + "\nclosedby: " + d.ClosedByProperty()
		var rect dismiss.Rect
		base, rect = widgets.RenderDialog(base, content, w, h)
		d.SetContentRect(rect)
	}
	return base
}

func (m model) baseCanvas(h int) string {
	lines := []string{
		titleStyle.Render("closedby demo"),
		"",
		"1/2/3/4 open dialogs · esc dismiss · click outside a dialog to light-dismiss",
		"c cycle policy · x clear policy · r request close · q quit",
		"",
		statusStyle.Render(m.status),
		statusStyle.Render(m.diag.last),
	}
	out := ""
	for i := 0; i < h; i++ {
		if i < len(lines) {
			out += lines[i]
		}
		if i < h-1 {
			out += "\n"
		}
	}
	return out
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "closedby: %v\n", err)
		os.Exit(1)
	}
	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "closedby: %v\n", err)
		os.Exit(1)
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "closedby: %v\n", err)
		os.Exit(1)
	}
}
