package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/tareas/internal/logging"
	"github.com/idilsaglam/tareas/internal/model"
	"github.com/idilsaglam/tareas/internal/store/taskstore"
)

func newScreen(t *testing.T, width, height int) Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	m := New(taskstore.NewSeeded(), logging.Discard())
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func listIDs(m Model) []int {
	var ids []int
	for _, it := range m.list.Items() {
		ids = append(ids, it.(listItem).task.ID)
	}
	return ids
}

func TestScreenStartsWithSeed(t *testing.T) {
	m := newScreen(t, 80, 24)
	if !reflect.DeepEqual(m.Tasks(), model.Seed()) {
		t.Fatalf("tasks = %+v", m.Tasks())
	}
	if ids := listIDs(m); !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Fatalf("list ids = %v", ids)
	}
}

func TestScreenToggleSelectedRow(t *testing.T) {
	m := newScreen(t, 80, 24)
	m = send(t, m, keyDown)
	m = send(t, m, keyEnter)

	want := []model.Task{
		{ID: 1, Title: "Comprar comida"},
		{ID: 2, Title: "Estudiar Kotlin", IsCompleted: true},
		{ID: 3, Title: "Hacer ejercicio", IsCompleted: true},
	}
	if !reflect.DeepEqual(m.Tasks(), want) {
		t.Fatalf("tasks = %+v, want %+v", m.Tasks(), want)
	}
	if got := m.list.Items()[1].(listItem).task; !got.IsCompleted {
		t.Fatalf("list row 2 not refreshed: %+v", got)
	}
	if m.list.Index() != 1 {
		t.Fatalf("selection moved to %d", m.list.Index())
	}
	if ids := listIDs(m); !reflect.DeepEqual(ids, []int{1, 2, 3}) {
		t.Fatalf("order changed: %v", ids)
	}

	m = send(t, m, keyX)
	if !reflect.DeepEqual(m.Tasks(), model.Seed()) {
		t.Fatalf("second toggle did not restore: %+v", m.Tasks())
	}
	if m.store.Version() != 2 {
		t.Fatalf("version = %d, want 2", m.store.Version())
	}
}

func TestScreenViewReflectsState(t *testing.T) {
	m := newScreen(t, 80, 24)
	view := m.View()
	for _, want := range []string{Title, "Comprar comida", "Estudiar Kotlin", "Hacer ejercicio", "Completar", "Desmarcar", "Total 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if n := strings.Count(view, "Desmarcar"); n != 1 {
		t.Errorf("Desmarcar shown %d times, want 1", n)
	}

	m = send(t, m, keyEnter)
	if n := strings.Count(m.View(), "Desmarcar"); n != 2 {
		t.Errorf("after toggling row 1, Desmarcar shown %d times, want 2", n)
	}
}

func TestScreenRendersOnlyVisiblePage(t *testing.T) {
	// two lines for the list: one row per page
	m := newScreen(t, 80, chromeHeight+2)
	view := m.View()
	if !strings.Contains(view, "Comprar comida") {
		t.Fatalf("first row missing:\n%s", view)
	}
	if strings.Contains(view, "Hacer ejercicio") {
		t.Fatalf("off-screen row was rendered:\n%s", view)
	}

	m = send(t, m, keyDown)
	m = send(t, m, keyDown)
	view = m.View()
	if !strings.Contains(view, "Hacer ejercicio") || strings.Contains(view, "Comprar comida") {
		t.Fatalf("page did not follow the cursor:\n%s", view)
	}
}

func TestScreenQuit(t *testing.T) {
	m := newScreen(t, 80, 24)
	_, cmd := m.Update(keyQ)
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestRowCallbackTogglesStore(t *testing.T) {
	store := taskstore.NewSeeded()
	d := rowDelegate{store: store}
	task, _ := store.Find(3)
	d.row(task).Activate()
	if got, _ := store.Find(3); got.IsCompleted {
		t.Fatal("row action did not toggle task 3")
	}
}
