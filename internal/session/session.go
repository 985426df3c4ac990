// Package session wires the project registry, the active task list and
// the action history into one editing surface shared by the CLI and the
// TUI.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jaydenyuan326/todo-list-manager/internal/history"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/project"
	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

var (
	ErrEmptyDescription = errors.New("task description is empty")
	ErrInvalidDate      = errors.New("invalid due date")
)

// Session is the in-memory state of one todo store: every project, the
// active project selection and the undo/redo history. All edits go
// through Session so reversible ones get recorded.
type Session struct {
	Projects *project.Registry
	History  *history.History

	// Now supplies timestamps recorded on actions. Tests pin it for
	// deterministic output.
	Now func() time.Time
}

// New returns an empty session with the given history depth per stack.
func New(historyDepth int) *Session {
	return &Session{
		Projects: project.NewRegistry(),
		History:  history.New(historyDepth),
		Now:      time.Now,
	}
}

// List returns the active project's task list.
func (s *Session) List() *tasklist.List {
	return s.Projects.Current()
}

// Add validates and appends a new pending task to the active project,
// recording an ADD action.
func (s *Session) Add(desc string, pri model.Priority, due string, tags []string) (model.Task, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return model.Task{}, ErrEmptyDescription
	}
	if !model.ValidDate(due) {
		return model.Task{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, due)
	}
	if pri == "" {
		pri = model.PriorityMedium
	}

	t := model.Task{Description: desc, Priority: pri, Due: due, Tags: tags}
	s.List().Append(t)
	s.push(model.ActionAdd, desc, &t)
	return t, nil
}

// Delete removes the task at the 1-based position from the active
// project, recording a DELETE action with the full task snapshot so
// undo can restore it.
func (s *Session) Delete(pos int) (model.Task, error) {
	t, err := s.List().RemoveAt(pos)
	if err != nil {
		return model.Task{}, err
	}
	s.push(model.ActionDelete, t.Description, &t)
	return t, nil
}

// Complete marks the task at the 1-based position done and records a
// DONE action. Completing an already-done task returns
// tasklist.ErrAlreadyDone and records nothing.
func (s *Session) Complete(pos int) (model.Task, error) {
	t, err := s.List().MarkDoneAt(pos)
	if err != nil {
		return t, err
	}
	s.push(model.ActionDone, t.Description, nil)
	return t, nil
}

// Sort reorders the active project's tasks. Sorting is not recorded in
// the history.
func (s *Session) Sort(key model.SortKey) {
	s.List().Sort(key)
}

// Undo reverses the most recent recorded action on the active project.
// The reversed action is returned; ok is false when the history is
// empty.
func (s *Session) Undo() (model.Action, bool) {
	a, ok := s.History.PopUndo()
	if !ok {
		return model.Action{}, false
	}
	s.applyInverse(a)
	return a, true
}

// Redo re-applies the most recently undone action.
func (s *Session) Redo() (model.Action, bool) {
	a, ok := s.History.PopRedo()
	if !ok {
		return model.Action{}, false
	}
	s.applyForward(a)
	return a, true
}

func (s *Session) push(kind model.ActionKind, desc string, data *model.Task) {
	s.History.Push(model.Action{
		Kind:        kind,
		Description: desc,
		Data:        data,
		Time:        model.Timestamp(s.Now()),
	})
}

func (s *Session) applyInverse(a model.Action) {
	l := s.List()
	switch a.Kind {
	case model.ActionAdd:
		l.RemoveLast()
	case model.ActionDelete:
		// The deleted task returns at the tail; its original position
		// is not restored.
		l.Append(restoredTask(a))
	case model.ActionDone:
		l.SetDoneByDescription(a.Description, false)
	}
}

func (s *Session) applyForward(a model.Action) {
	l := s.List()
	switch a.Kind {
	case model.ActionAdd:
		l.Append(restoredTask(a))
	case model.ActionDelete:
		l.RemoveFirstByDescription(a.Description)
	case model.ActionDone:
		l.SetDoneByDescription(a.Description, true)
	}
}

// restoredTask rebuilds the task an action refers to. Actions loaded
// from older snapshots may lack the data payload; those fall back to a
// default pending task with the recorded description.
func restoredTask(a model.Action) model.Task {
	if a.Data != nil {
		return *a.Data
	}
	return model.Task{Description: a.Description, Priority: model.PriorityMedium}
}

// Stats summarizes the active project as of the session clock.
func (s *Session) Stats() tasklist.Stats {
	return s.List().Stats(model.Today(s.Now()))
}

// OverdueTasks lists the active project's overdue task descriptions.
func (s *Session) OverdueTasks() []string {
	return s.List().OverdueTasks(model.Today(s.Now()))
}

// OverdueRecords returns the active project's overdue tasks in list
// order.
func (s *Session) OverdueRecords() []model.Task {
	today := model.Today(s.Now())
	var out []model.Task
	for _, t := range s.List().Tasks() {
		if t.Overdue(today) {
			out = append(out, t)
		}
	}
	return out
}

// Filter narrows the task listing. Zero values match everything.
type Filter struct {
	Status   string         // "", "pending" or "done"
	Priority model.Priority // "" matches any priority
	Search   string         // case-insensitive substring of the description
}

// NumberedTask pairs a task with its 1-based position in the unfiltered
// list, so positions printed by a filtered listing still address the
// right task in done/delete commands.
type NumberedTask struct {
	Pos int `json:"pos"`
	model.Task
}

// Filtered returns the active project's tasks that pass the filter,
// numbered by their position in the full list.
func (s *Session) Filtered(f Filter) []NumberedTask {
	var out []NumberedTask
	pos := 0
	for n := s.List().Head(); n != nil; n = n.Next() {
		pos++
		t := n.Task
		if f.Status == "pending" && t.Done {
			continue
		}
		if f.Status == "done" && !t.Done {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if !tasklist.Matches(t, f.Search) {
			continue
		}
		out = append(out, NumberedTask{Pos: pos, Task: t})
	}
	return out
}

// Board groups the active project's tasks into kanban columns: done
// tasks, pending high-priority tasks in progress, and the remaining
// backlog.
type Board struct {
	Todo       []model.Task `json:"todo"`
	InProgress []model.Task `json:"in_progress"`
	Done       []model.Task `json:"done"`
}

// Kanban builds the board for the active project.
func (s *Session) Kanban() Board {
	var b Board
	for _, t := range s.List().Tasks() {
		switch {
		case t.Done:
			b.Done = append(b.Done, t)
		case t.Priority == model.PriorityHigh:
			b.InProgress = append(b.InProgress, t)
		default:
			b.Todo = append(b.Todo, t)
		}
	}
	return b
}
