// Package tui is the interactive task list screen.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/tareas/internal/logging"
	"github.com/idilsaglam/tareas/internal/model"
	"github.com/idilsaglam/tareas/internal/store/taskstore"
	"github.com/idilsaglam/tareas/internal/ui"
)

// Title is the static text of the title bar.
const Title = "Lista de Tareas"

// title bar, counts header, blank, blank, help
const chromeHeight = 5

// listItem adapts model.Task to bubbles/list.Item
type listItem struct{ task model.Task }

func (i listItem) FilterValue() string { return i.task.Title }

func toItems(tasks []model.Task) []list.Item {
	out := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, listItem{task: t})
	}
	return out
}

// rowDelegate renders one task per line. bubbles/list only calls Render for
// the rows on the current page.
type rowDelegate struct {
	store *taskstore.Store
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 1 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.row(it.task).View(ui.Current(), m.Width(), index == m.Index()))
}

// row wires the task's action to a toggle on the screen's store.
func (d rowDelegate) row(t model.Task) ui.Row {
	id := t.ID
	return ui.RenderRow(t, func() { d.store.Toggle(id) })
}

// Model is the task list screen. It owns the store for its whole lifetime.
type Model struct {
	store    *taskstore.Store
	delegate rowDelegate
	list     list.Model
	help     help.Model
	keys     keyMap
	log      *logrus.Logger

	width, height int
}

// New builds the screen around store.
func New(store *taskstore.Store, log *logrus.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	d := rowDelegate{store: store}
	l := list.New(toItems(store.Snapshot()), d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = ui.Current().Help.PaddingLeft(2)

	h := help.New()
	h.Styles.ShortKey = ui.Current().Accent
	h.Styles.ShortDesc = ui.Current().Help

	return Model{
		store:    store,
		delegate: d,
		list:     l,
		help:     h,
		keys:     defaultKeyMap(),
		log:      log,
	}
}

// Tasks returns the current snapshot.
func (m Model) Tasks() []model.Task { return m.store.Snapshot() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(1, msg.Height-chromeHeight))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m, m.activateSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// activateSelected fires the selected row's action and, when the store moved
// to a new snapshot, hands that snapshot to the list.
func (m *Model) activateSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	before := m.store.Version()
	m.delegate.row(it.task).Activate()
	if m.store.Version() == before {
		return nil
	}

	if task, found := m.store.Find(it.task.ID); found {
		m.log.WithFields(logrus.Fields{
			"id":        task.ID,
			"completed": task.IsCompleted,
			"version":   m.store.Version(),
		}).Debug("task toggled")
	}
	return m.list.SetItems(toItems(m.store.Snapshot()))
}

func (m Model) View() string {
	th := ui.Current()

	bar := th.TitleBar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		bar.Render(Title),
		"  "+Header(m.store),
		"",
		m.list.View(),
		"",
		"  "+m.help.View(m.keys),
	)
}

// Header summarises the store with live counts.
func Header(store *taskstore.Store) string {
	th := ui.Current()
	done, pending := store.Stats()
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		th.Success.Render(th.GlyphDone), done,
		th.Pending.Render(th.GlyphPending), pending,
		th.Accent.Render("Total"), store.Len(),
	)
}

// Run starts the screen and blocks until the user quits or ctx is cancelled.
// It returns the snapshot the screen held at exit.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) ([]model.Task, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return m.Tasks(), nil
	}
	return fm.Tasks(), nil
}
