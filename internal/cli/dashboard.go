package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show progress stats and a kanban board for the current project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			stats := sess.Stats()
			overdue := sess.OverdueRecords()
			board := sess.Kanban()
			project := sess.Projects.CurrentName()

			if app.textOutput() {
				return writeText(cmd,
					format.DashboardView(project, stats, overdue, time.Now()),
					"",
					format.KanbanView(board),
				)
			}
			if overdue == nil {
				overdue = []model.Task{}
			}
			if board.Todo == nil {
				board.Todo = []model.Task{}
			}
			if board.InProgress == nil {
				board.InProgress = []model.Task{}
			}
			if board.Done == nil {
				board.Done = []model.Task{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"project":         project,
				"stats":           stats,
				"completion_rate": format.CompletionRate(stats),
				"overdue":         overdue,
				"board":           board,
			}})
		},
	}
	return cmd
}
