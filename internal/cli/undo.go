package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

func newUndoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the most recent add, delete, or done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			a, ok := sess.Undo()
			if !ok {
				if app.textOutput() {
					return writeText(cmd, "Nothing to undo.")
				}
				return writeOut(cmd, app, map[string]any{"data": nil, "_hint": "undo history is empty"})
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.undo", actionDetail(a))

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Undid %s %q.", strings.ToLower(string(a.Kind)), a.Description))
			}
			return writeOut(cmd, app, map[string]any{"data": a})
		},
	}
	return cmd
}

func newRedoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redo",
		Short: "Reapply the most recently undone action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			a, ok := sess.Redo()
			if !ok {
				if app.textOutput() {
					return writeText(cmd, "Nothing to redo.")
				}
				return writeOut(cmd, app, map[string]any{"data": nil, "_hint": "redo history is empty"})
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.redo", actionDetail(a))

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Redid %s %q.", strings.ToLower(string(a.Kind)), a.Description))
			}
			return writeOut(cmd, app, map[string]any{"data": a})
		},
	}
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var showRedo bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the undo stack (oldest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			stack := "undo"
			actions := sess.History.UndoActions()
			if showRedo {
				stack = "redo"
				actions = sess.History.RedoActions()
			}

			if app.textOutput() {
				header := fmt.Sprintf("%s history (%d):", strings.ToUpper(stack[:1])+stack[1:], len(actions))
				return writeText(cmd, header, format.HistoryView(actions))
			}
			if actions == nil {
				actions = []model.Action{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"stack":   stack,
				"actions": actions,
			}})
		},
	}

	cmd.Flags().BoolVar(&showRedo, "redo", false, "show the redo stack instead")
	return cmd
}

func actionDetail(a model.Action) string {
	return string(a.Kind) + " " + a.Description
}
