package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tareas/internal/model"
)

// Glyph names the status asset shown at the start of a row.
type Glyph string

const (
	GlyphDone    Glyph = "check"
	GlyphPending Glyph = "pending"
)

// Action labels.
const (
	ActionComplete = "Completar"
	ActionUnmark   = "Desmarcar"
)

// Content descriptions.
const (
	DescriptionDone    = "Tarea completada"
	DescriptionPending = "Tarea pendiente"
)

// Row is the visual description of one task. It carries no state of its own:
// everything is derived from the task passed to RenderRow.
type Row struct {
	ID            int
	Title         string
	Glyph         Glyph
	Strikethrough bool
	Muted         bool
	Action        string
	Description   string

	onActivate func()
}

// RenderRow maps a task and its toggle callback to a Row.
func RenderRow(t model.Task, onToggle func()) Row {
	r := Row{
		ID:          t.ID,
		Title:       t.Title,
		Glyph:       GlyphPending,
		Action:      ActionComplete,
		Description: DescriptionPending,
		onActivate:  onToggle,
	}
	if t.IsCompleted {
		r.Glyph = GlyphDone
		r.Strikethrough = true
		r.Muted = true
		r.Action = ActionUnmark
		r.Description = DescriptionDone
	}
	return r
}

// Activate runs the row's action. The row never computes the new state.
func (r Row) Activate() {
	if r.onActivate != nil {
		r.onActivate()
	}
}

// Symbol resolves a glyph against the theme's assets.
func (t Theme) Symbol(g Glyph) string {
	if g == GlyphDone {
		return t.GlyphDone
	}
	return t.GlyphPending
}

// View paints the row on one line of the given width: cursor, glyph, title
// stretched to fill, then the action button. A width of 0 disables padding.
func (r Row) View(t Theme, width int, selected bool) string {
	cursor := strings.Repeat(" ", lipgloss.Width(t.Cursor))
	if selected {
		cursor = t.Selected.Render(t.Cursor)
	}

	glyph := t.Symbol(r.Glyph)
	if r.Glyph == GlyphDone {
		glyph = t.Success.Render(glyph)
	} else {
		glyph = t.Pending.Render(glyph)
	}

	titleStyle := t.Text
	if r.Muted {
		titleStyle = t.Muted
	}
	titleStyle = titleStyle.Strikethrough(r.Strikethrough)

	button := t.Button.Render(r.Action)
	left := cursor + glyph + " "

	title := titleStyle.Render(r.Title)
	if gap := width - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(button) - 1; gap > 0 {
		title += strings.Repeat(" ", gap)
	}
	return left + title + " " + button
}
