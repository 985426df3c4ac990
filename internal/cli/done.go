package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

func newDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <position>",
		Short: "Mark the task at the given position completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			task, err := sess.Complete(pos)
			if errors.Is(err, tasklist.ErrAlreadyDone) {
				// Nothing changed and nothing was recorded.
				if app.textOutput() {
					return writeText(cmd, fmt.Sprintf("%q is already completed.", task.Description))
				}
				return writeOut(cmd, app, map[string]any{"data": task, "_hint": "already completed; nothing recorded"})
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.done", task.Description)

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Completed %q.", task.Description))
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
	return cmd
}
