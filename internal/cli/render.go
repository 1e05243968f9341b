package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/idilsaglam/tareas/internal/store/taskstore"
	"github.com/idilsaglam/tareas/internal/tui"
	"github.com/idilsaglam/tareas/internal/ui"
)

const (
	maxRowWidth   = 64
	progressWidth = 24
	// border + padding on both sides
	panelChrome = 4
)

// renderPanel draws the non-interactive version of the screen.
func renderPanel(store *taskstore.Store, width int) string {
	th := ui.Current()
	done, _ := store.Stats()

	lines := []string{
		th.TitleBar.Render(tui.Title),
		tui.Header(store),
		"",
	}
	for _, t := range store.Snapshot() {
		lines = append(lines, ui.RenderRow(t, nil).View(th, width, false))
	}
	lines = append(lines, "", ui.ProgressBar(done, store.Len(), progressWidth))
	return ui.Panel(lines)
}

// rowWidth sizes rows to the terminal behind w; 0 (no padding) when w is not one.
func rowWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return min(cols-panelChrome, maxRowWidth)
}
