// Package cli implements the todo command tree.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/config"
	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/project"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
	"github.com/jaydenyuan326/todo-list-manager/internal/store"
	"github.com/jaydenyuan326/todo-list-manager/internal/tui"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
}

func (app *App) textOutput() bool {
	return app.Format == "" || app.Format == format.Text
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Per-project todo lists with bounded undo/redo (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Scriptable commands
  todo add "buy milk" --priority high --due 2025-09-01
  todo list --status pending
  todo done 1
  todo undo

  # JSON for scripts
  todo list --format json --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return fmt.Errorf("unknown format: %s (expected text|json)", app.Format)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TODO_DIR", ""), "Path to data dir (default: data_dir from config, else ~/.todo)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", format.Text), "Output format (text|json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newUndoCmd(app))
	cmd.AddCommand(newRedoCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newSortCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sess, st, err := loadSession(app)
	if err != nil {
		return err
	}
	return tui.Run(sess, st, cfg.TUI.Glyphs)
}

// loadSession resolves the data directory (--dir flag beats config),
// loads the snapshot and applies the configured default project on
// first run.
func loadSession(app *App) (*session.Session, store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, store.Store{}, err
	}

	dir := app.Dir
	if dir == "" {
		dir = cfg.DataDir
	}
	s := store.Store{Dir: dir}

	fresh := !s.SnapshotExists()
	sess, err := s.Load(cfg.HistoryDepth)
	if err != nil {
		return nil, s, err
	}
	if fresh && cfg.DefaultProject != project.DefaultName {
		_ = sess.Projects.Create(cfg.DefaultProject)
		_ = sess.Projects.Switch(cfg.DefaultProject)
	}
	return sess, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, format.JSON, app.PrettyJSON)
}

func writeText(cmd *cobra.Command, lines ...string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	return err
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
