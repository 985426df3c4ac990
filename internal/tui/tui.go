// Package tui implements the interactive full-screen interface.
package tui

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaydenyuan326/todo-list-manager/internal/session"
	"github.com/jaydenyuan326/todo-list-manager/internal/store"
)

// Run starts the interactive interface on an already-loaded session.
// Every mutation saves through the store, so CLI invocations in another
// terminal and the TUI stay consistent.
func Run(sess *session.Session, st store.Store, glyphPref string) error {
	applyGlyphPreference(glyphPref)
	applyColorProfilePreference()

	if strings.TrimSpace(os.Getenv("TODO_TUI_DEBUG")) != "" {
		if f, err := tea.LogToFile(filepath.Join(st.Dir, "tui-debug.log"), "debug"); err == nil {
			defer f.Close()
		}
	}

	m := newAppModel(sess, st)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
