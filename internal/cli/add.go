package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

func newAddCmd(app *App) *cobra.Command {
	var priority, due string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task to the current project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pri, err := model.ParsePriority(priority)
			if err != nil {
				return writeErr(cmd, err)
			}

			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Unquoted descriptions work too: every positional arg is
			// part of the description.
			task, err := sess.Add(strings.Join(args, " "), pri, due, tags)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), sess.Projects.CurrentName(), "task.add", task.Description)

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Added %q to %s.", task.Description, sess.Projects.CurrentName()))
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (high|medium|low; default medium)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	return cmd
}
