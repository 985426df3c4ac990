package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <position>",
		Aliases: []string{"rm"},
		Short:   "Delete the task at the given position",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}

			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			task, err := sess.Delete(pos)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.delete", task.Description)

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Deleted %q.", task.Description))
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}
	return cmd
}
