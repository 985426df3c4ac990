package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
)

func newSortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <priority|due|description>",
		Short: "Reorder the current project's tasks",
		Long: `Reorder the current project's tasks in place.

Sorting keeps the relative order of tasks that compare equal, so
sorting by priority and then by due date behaves predictably.
Sorting is not undoable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := model.ParseSortKey(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			sess.Sort(key)
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.sort", key.String())

			rows := sess.Filtered(session.Filter{})
			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Sorted by %s.", key), format.TaskTable(rows))
			}
			if rows == nil {
				rows = []session.NumberedTask{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"project": sess.Projects.CurrentName(),
				"sorted":  key.String(),
				"tasks":   rows,
			}})
		},
	}
	return cmd
}
