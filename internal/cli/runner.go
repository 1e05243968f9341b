package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	ucli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/idilsaglam/tareas/internal/config"
	"github.com/idilsaglam/tareas/internal/logging"
	"github.com/idilsaglam/tareas/internal/store/jsonstore"
	"github.com/idilsaglam/tareas/internal/store/taskstore"
	"github.com/idilsaglam/tareas/internal/tui"
	"github.com/idilsaglam/tareas/internal/ui"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	return run(ctx, NewRootCommand(), args)
}

func run(ctx context.Context, cmd *ucli.Command, args []string) int {
	err := cmd.Run(ctx, args)
	if err == nil {
		return exitOK
	}
	w := cmd.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	ui.Fail(w, err.Error())

	var ec ucli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitError
}

// session holds what the root Before hook resolves for the subcommands.
type session struct {
	log    *logrus.Logger
	closer io.Closer
}

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *ucli.Command {
	s := &session{log: logging.Discard()}
	return &ucli.Command{
		Name:      "tareas",
		Usage:     "A single-screen task list",
		ArgsUsage: " ",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.Path(),
			},
			&ucli.StringFlag{
				Name:  "theme",
				Usage: "Color theme: " + strings.Join(ui.ThemeNames, ", "),
			},
			&ucli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colors",
			},
			&ucli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&ucli.StringFlag{
				Name:  "log-file",
				Usage: "Write JSON logs to this file",
			},
		},
		Before:         s.before,
		After:          s.after,
		Action:         s.rootAction,
		OnUsageError:   usageError,
		ExitErrHandler: func(context.Context, *ucli.Command, error) {},
		Commands: []*ucli.Command{
			s.tuiCommand(),
			s.lsCommand(),
			s.toggleCommand(),
		},
	}
}

func usageError(_ context.Context, _ *ucli.Command, err error, _ bool) error {
	return ucli.Exit(err.Error(), exitUsage)
}

func (s *session) before(ctx context.Context, cmd *ucli.Command) (context.Context, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, ucli.Exit(err.Error(), exitError)
	}
	if cmd.IsSet("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(cmd.String("theme")))
		if err := cfg.Validate(); err != nil {
			return ctx, ucli.Exit(err.Error(), exitUsage)
		}
	}
	if cmd.Bool("no-color") {
		cfg.NoColor = true
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = "debug"
	}
	if f := cmd.String("log-file"); f != "" {
		cfg.Log.File = f
	}

	ui.SetTheme(cfg.Theme)
	ui.SetButtonColor(cfg.ButtonColor)
	ui.SetColorForcing(false, cfg.NoColor)

	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return ctx, ucli.Exit(err.Error(), exitError)
	}
	s.log, s.closer = log, closer
	s.log.WithFields(logrus.Fields{
		"config": path,
		"theme":  cfg.Theme,
	}).Debug("config loaded")
	return ctx, nil
}

func (s *session) after(context.Context, *ucli.Command) error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *session) rootAction(ctx context.Context, cmd *ucli.Command) error {
	if cmd.Args().Present() {
		return ucli.Exit("unknown subcommand: "+cmd.Args().First(), exitUsage)
	}
	return s.runTUI(ctx, cmd)
}

func (s *session) tuiCommand() *ucli.Command {
	return &ucli.Command{
		Name:         "tui",
		Usage:        "Launch the interactive task list (default)",
		Action:       s.runTUI,
		OnUsageError: usageError,
	}
}

func (s *session) lsCommand() *ucli.Command {
	return &ucli.Command{
		Name:  "ls",
		Usage: "Print the task list",
		Flags: []ucli.Flag{
			&ucli.BoolFlag{Name: "json", Usage: "Print the snapshot as JSON"},
		},
		OnUsageError: usageError,
		Action: func(_ context.Context, cmd *ucli.Command) error {
			return s.print(cmd, taskstore.NewSeeded())
		},
	}
}

func (s *session) toggleCommand() *ucli.Command {
	return &ucli.Command{
		Name:      "toggle",
		Usage:     "Toggle tasks by id, in order, and print the result",
		ArgsUsage: "<id>...",
		Flags: []ucli.Flag{
			&ucli.BoolFlag{Name: "json", Usage: "Print the snapshot as JSON"},
		},
		OnUsageError: usageError,
		Action: func(_ context.Context, cmd *ucli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return ucli.Exit("usage: tareas toggle <id>...", exitUsage)
			}
			ids := make([]int, 0, len(args))
			for _, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return ucli.Exit("toggle: not a number: "+a, exitUsage)
				}
				ids = append(ids, n)
			}

			store := taskstore.NewSeeded()
			for _, id := range ids {
				if !store.Toggle(id) {
					ui.Note(cmd.Root().ErrWriter, fmt.Sprintf("no task with id %d", id))
					continue
				}
				task, _ := store.Find(id)
				s.log.WithFields(logrus.Fields{
					"id":        id,
					"completed": task.IsCompleted,
					"version":   store.Version(),
				}).Debug("task toggled")
			}
			return s.print(cmd, store)
		},
	}
}

func (s *session) runTUI(ctx context.Context, _ *ucli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ucli.Exit("tui: stdout is not a terminal (try `tareas ls`)", exitError)
	}
	store := taskstore.NewSeeded()
	s.log.WithField("tasks", store.Len()).Debug("screen mounted")

	tasks, err := tui.Run(ctx, tui.New(store, s.log), tea.WithAltScreen())
	if err != nil {
		return ucli.Exit(err.Error(), exitError)
	}
	done, pending := taskstore.New(tasks).Stats()
	s.log.WithFields(logrus.Fields{
		"done":     done,
		"pending":  pending,
		"toggles":  store.Version(),
	}).Info("screen closed")
	return nil
}

func (s *session) print(cmd *ucli.Command, store *taskstore.Store) error {
	w := cmd.Root().Writer
	if cmd.Bool("json") {
		if err := jsonstore.Encode(w, store.Snapshot()); err != nil {
			return ucli.Exit(err.Error(), exitError)
		}
		return nil
	}
	fmt.Fprintln(w, renderPanel(store, rowWidth(w)))
	return nil
}
