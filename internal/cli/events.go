package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
)

func newEventsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent activity across projects (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			evs, err := st.Events(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}

			if app.textOutput() {
				return writeText(cmd, format.EventsView(evs, time.Now()))
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max events to show (0 = all)")
	return cmd
}
