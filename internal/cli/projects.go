package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/project"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `todo projects` lists, same as `todo projects list`.
			return runProjectsList(cmd, app)
		},
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsCreateCmd(app))
	cmd.AddCommand(newProjectsSwitchCmd(app))
	cmd.AddCommand(newProjectsDeleteCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsList(cmd, app)
		},
	}
}

func runProjectsList(cmd *cobra.Command, app *App) error {
	sess, _, err := loadSession(app)
	if err != nil {
		return writeErr(cmd, err)
	}

	rows := projectRows(sess.Projects)
	if app.textOutput() {
		return writeText(cmd, format.ProjectsView(rows))
	}
	return writeOut(cmd, app, map[string]any{"data": rows})
}

func projectRows(reg *project.Registry) []format.ProjectRow {
	current := reg.CurrentName()
	rows := make([]format.ProjectRow, 0, reg.Len())
	for _, name := range reg.Names() {
		l, _ := reg.Get(name)
		rows = append(rows, format.ProjectRow{
			Name:    name,
			Tasks:   l.Len(),
			Current: name == current,
		})
	}
	return rows
}

func newProjectsCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			name := args[0]
			if err := sess.Projects.Create(name); err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), name, "project.create", "")

			if app.textOutput() {
				return writeText(cmd,
					fmt.Sprintf("Created project %q.", name),
					fmt.Sprintf("Switch to it with `todo projects switch %s`.", name),
				)
			}
			return writeOut(cmd, app, map[string]any{
				"data":  map[string]any{"name": name},
				"_hint": fmt.Sprintf("switch with `todo projects switch %s`", name),
			})
		},
	}
}

func newProjectsSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Make a project the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			name := args[0]
			if err := sess.Projects.Switch(name); err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), name, "project.switch", "")

			if app.textOutput() {
				return writeText(cmd, fmt.Sprintf("Switched to %q.", name))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"current_project": name}})
		},
	}
}

func newProjectsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := loadSession(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			name := args[0]
			wasCurrent := name == sess.Projects.CurrentName()
			if err := sess.Projects.Delete(name); err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Save(sess); err != nil {
				return writeErr(cmd, err)
			}
			_ = st.AppendEvent(cmd.Context(), name, "project.delete", "")

			if app.textOutput() {
				lines := []string{fmt.Sprintf("Deleted project %q.", name)}
				if wasCurrent {
					lines = append(lines, fmt.Sprintf("Now on %q.", sess.Projects.CurrentName()))
				}
				return writeText(cmd, lines...)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted":         name,
				"current_project": sess.Projects.CurrentName(),
			}})
		},
	}
}
