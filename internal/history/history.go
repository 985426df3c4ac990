// Package history tracks undoable actions in two bounded stacks.
package history

import (
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

// DefaultDepth is the number of actions kept per stack when no explicit
// depth is configured.
const DefaultDepth = 15

// History holds the undo and redo stacks for one project session. Both
// stacks share a single capacity; pushing onto a full stack evicts the
// oldest entry so recent actions always remain reachable.
type History struct {
	capacity int
	undo     []model.Action
	redo     []model.Action
}

// New returns a History bounded to the given depth per stack. Depths
// below one fall back to DefaultDepth.
func New(depth int) *History {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &History{capacity: depth}
}

// Capacity reports the per-stack depth.
func (h *History) Capacity() int { return h.capacity }

// SetCapacity changes the per-stack depth, dropping the oldest entries
// on either stack that no longer fit. Depths below one fall back to
// DefaultDepth, matching New.
func (h *History) SetCapacity(depth int) {
	if depth < 1 {
		depth = DefaultDepth
	}
	h.capacity = depth
	h.undo = clampNewest(h.undo, h.capacity)
	h.redo = clampNewest(h.redo, h.capacity)
}

// Push records a freshly performed action. Any pending redo entries are
// invalidated: redo only replays actions undone since the last edit.
func (h *History) Push(a model.Action) {
	h.undo = h.pushBounded(h.undo, a)
	h.redo = nil
}

// PopUndo removes the most recent action from the undo stack and moves
// it to the redo stack. The second return is false when there is
// nothing to undo.
func (h *History) PopUndo() (model.Action, bool) {
	if len(h.undo) == 0 {
		return model.Action{}, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = h.pushBounded(h.redo, a)
	return a, true
}

// PopRedo removes the most recent action from the redo stack and moves
// it back to the undo stack. The second return is false when there is
// nothing to redo.
func (h *History) PopRedo() (model.Action, bool) {
	if len(h.redo) == 0 {
		return model.Action{}, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = h.pushBounded(h.undo, a)
	return a, true
}

// UndoActions returns the undo stack oldest-first.
func (h *History) UndoActions() []model.Action {
	return append([]model.Action(nil), h.undo...)
}

// RedoActions returns the redo stack oldest-first.
func (h *History) RedoActions() []model.Action {
	return append([]model.Action(nil), h.redo...)
}

// UndoLen reports how many actions can be undone.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen reports how many actions can be redone.
func (h *History) RedoLen() int { return len(h.redo) }

// Restore replaces both stacks from persisted state, keeping only the
// newest entries when a stack exceeds the capacity.
func (h *History) Restore(undo, redo []model.Action) {
	h.undo = clampNewest(undo, h.capacity)
	h.redo = clampNewest(redo, h.capacity)
}

func (h *History) pushBounded(stack []model.Action, a model.Action) []model.Action {
	if len(stack) >= h.capacity {
		drop := len(stack) - h.capacity + 1
		copy(stack, stack[drop:])
		stack = stack[:len(stack)-drop]
	}
	return append(stack, a)
}

func clampNewest(stack []model.Action, capacity int) []model.Action {
	if len(stack) > capacity {
		stack = stack[len(stack)-capacity:]
	}
	return append([]model.Action(nil), stack...)
}
