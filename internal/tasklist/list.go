// Package tasklist implements the ordered task collection as a doubly
// linked list. The list owns its nodes through the forward chain; prev
// links are back-references used only for O(1) unlinking and are never
// followed to manage node lifetime.
package tasklist

import (
	"errors"
	"strings"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

var (
	// ErrNotFound is returned by positional operations when the 1-based
	// index falls outside [1, Len()]. Callers treat it as a normal
	// outcome, not a fatal condition.
	ErrNotFound = errors.New("task not found")

	// ErrAlreadyDone is returned by MarkDoneAt for tasks that are already
	// completed, so callers can skip recording a no-op action.
	ErrAlreadyDone = errors.New("task already completed")
)

// Node wraps one task and links to its neighbours.
type Node struct {
	Task model.Task

	next *Node
	prev *Node
}

// Next returns the following node, or nil at the tail.
func (n *Node) Next() *Node { return n.next }

// List is an ordered collection of tasks. The zero value is an empty list.
type List struct {
	head *Node
	tail *Node
	size int
}

func New() *List { return &List{} }

func (l *List) Len() int { return l.size }

// Head returns the first node, or nil when the list is empty.
func (l *List) Head() *Node { return l.head }

// Append links the task as the new tail and returns its node.
func (l *List) Append(t model.Task) *Node {
	n := &Node{Task: t}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return n
}

// nodeAt walks forward to the 1-based position.
func (l *List) nodeAt(pos int) *Node {
	if pos < 1 || pos > l.size {
		return nil
	}
	n := l.head
	for i := 1; i < pos; i++ {
		n = n.next
	}
	return n
}

// unlink splices the node out of the chain. O(1) once located: the prev
// back-reference lets interior and tail removals skip any re-traversal.
func (l *List) unlink(n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.next = nil
	n.prev = nil
	l.size--
}

// RemoveAt removes the task at the 1-based position and returns it.
func (l *List) RemoveAt(pos int) (model.Task, error) {
	n := l.nodeAt(pos)
	if n == nil {
		return model.Task{}, ErrNotFound
	}
	t := n.Task
	l.unlink(n)
	return t, nil
}

// RemoveLast removes the tail task. No-op on an empty list.
// It is the inverse of Append when undoing an ADD.
func (l *List) RemoveLast() {
	if l.tail == nil {
		return
	}
	l.unlink(l.tail)
}

// RemoveFirstByDescription removes the first task whose description equals
// text. With duplicate descriptions the first match wins; no-op if absent.
func (l *List) RemoveFirstByDescription(text string) {
	for n := l.head; n != nil; n = n.next {
		if n.Task.Description == text {
			l.unlink(n)
			return
		}
	}
}

// SetDoneByDescription sets the completion flag on the first task whose
// description equals text. No-op if absent; first match wins.
func (l *List) SetDoneByDescription(text string, done bool) {
	for n := l.head; n != nil; n = n.next {
		if n.Task.Description == text {
			n.Task.Done = done
			return
		}
	}
}

// MarkDoneAt completes the task at the 1-based position and returns the
// updated record. Returns ErrNotFound for an invalid position and
// ErrAlreadyDone when the task was completed before this call.
func (l *List) MarkDoneAt(pos int) (model.Task, error) {
	n := l.nodeAt(pos)
	if n == nil {
		return model.Task{}, ErrNotFound
	}
	if n.Task.Done {
		return n.Task, ErrAlreadyDone
	}
	n.Task.Done = true
	return n.Task, nil
}

// TaskAt returns a copy of the task at the 1-based position.
func (l *List) TaskAt(pos int) (model.Task, error) {
	n := l.nodeAt(pos)
	if n == nil {
		return model.Task{}, ErrNotFound
	}
	return n.Task, nil
}

// Tasks returns the tasks in list order. The copies are detached from the
// list, safe for display and persistence.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Task)
	}
	return out
}

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// Pending returns the not-yet-completed count.
func (s Stats) Pending() int { return s.Total - s.Completed }

// Stats counts tasks in a single pass. A task is overdue when it has a due
// date lexically before today and is not completed.
func (l *List) Stats(today string) Stats {
	var s Stats
	for n := l.head; n != nil; n = n.next {
		s.Total++
		if n.Task.Done {
			s.Completed++
		}
		if n.Task.Overdue(today) {
			s.Overdue++
		}
	}
	return s
}

// OverdueTasks returns the descriptions of overdue tasks in list order.
func (l *List) OverdueTasks(today string) []string {
	var out []string
	for n := l.head; n != nil; n = n.next {
		if n.Task.Overdue(today) {
			out = append(out, n.Task.Description)
		}
	}
	return out
}

// Matches reports whether the task matches a case-insensitive search term.
// An empty term matches everything.
func Matches(t model.Task, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(term))
}
