package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/dustin/go-humanize/english"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
)

type taskItem struct {
	row session.NumberedTask
}

func (i taskItem) FilterValue() string { return strings.TrimSpace(i.row.Description) }

func (i taskItem) Title() string {
	check := glyphCheckboxPending()
	desc := i.row.Description
	switch {
	case i.row.Done:
		check = glyphCheckboxDone()
		desc = styleDone().Render(desc)
	case i.row.Priority == model.PriorityHigh:
		desc = styleHigh().Render(desc)
	}
	return check + " " + desc
}

func (i taskItem) Description() string {
	meta := []string{string(i.row.Priority)}
	if i.row.Due != "" {
		meta = append(meta, "due "+i.row.Due)
	}
	for _, tag := range i.row.Tags {
		meta = append(meta, "#"+tag)
	}
	return strings.Join(meta, ", ")
}

type projectItem struct {
	name    string
	tasks   int
	current bool
}

func (i projectItem) FilterValue() string { return i.name }

// Title is the whole compact row: marker, name, task count.
func (i projectItem) Title() string {
	count := styleMuted().Render("(" + english.Plural(i.tasks, "task", "") + ")")
	if i.current {
		return glyphCurrentMarker() + " " + styleHeader().Render(i.name) + "  " + count
	}
	return "  " + i.name + "  " + count
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// The app renders its own header and footer, so keep list chrome
	// minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
