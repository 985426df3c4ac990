package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
)

func newListCmd(app *App) *cobra.Command {
	var status, priority, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current project's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := session.Filter{Search: search}
			switch status {
			case "", "pending", "done":
				f.Status = status
			default:
				return writeErr(cmd, fmt.Errorf("invalid status: %q (expected pending|done)", status))
			}
			if priority != "" {
				pri, err := model.ParsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
				f.Priority = pri
			}

			sess, _, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows := sess.Filtered(f)

			if app.textOutput() {
				return writeText(cmd, format.TaskTable(rows))
			}
			if rows == nil {
				rows = []session.NumberedTask{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"project": sess.Projects.CurrentName(),
				"tasks":   rows,
			}})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status (pending|done)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Only tasks with this priority (high|medium|low)")
	cmd.Flags().StringVar(&search, "search", "", "Only tasks whose description contains this text")
	return cmd
}
