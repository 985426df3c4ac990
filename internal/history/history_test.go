package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

func act(desc string) model.Action {
	return model.Action{Kind: model.ActionAdd, Description: desc}
}

func undoDescs(h *History) []string {
	var out []string
	for _, a := range h.UndoActions() {
		out = append(out, a.Description)
	}
	return out
}

func redoDescs(h *History) []string {
	var out []string
	for _, a := range h.RedoActions() {
		out = append(out, a.Description)
	}
	return out
}

func TestNewClampsDepth(t *testing.T) {
	t.Parallel()

	if got := New(0).Capacity(); got != DefaultDepth {
		t.Fatalf("New(0).Capacity() = %d; want %d", got, DefaultDepth)
	}
	if got := New(-3).Capacity(); got != DefaultDepth {
		t.Fatalf("New(-3).Capacity() = %d; want %d", got, DefaultDepth)
	}
	if got := New(12).Capacity(); got != 12 {
		t.Fatalf("New(12).Capacity() = %d; want 12", got)
	}
}

func TestSetCapacityDropsOldest(t *testing.T) {
	t.Parallel()

	h := New(5)
	h.Restore(
		[]model.Action{act("a"), act("b"), act("c"), act("d")},
		[]model.Action{act("x"), act("y"), act("z")},
	)

	h.SetCapacity(2)
	if got := h.Capacity(); got != 2 {
		t.Fatalf("Capacity = %d; want 2", got)
	}
	if got, want := undoDescs(h), []string{"c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo after shrink = %v; want %v", got, want)
	}
	if got, want := redoDescs(h), []string{"y", "z"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("redo after shrink = %v; want %v", got, want)
	}

	h.SetCapacity(0)
	if got := h.Capacity(); got != DefaultDepth {
		t.Fatalf("SetCapacity(0) left Capacity = %d; want %d", got, DefaultDepth)
	}
}

func TestPushEvictsOldest(t *testing.T) {
	t.Parallel()

	h := New(3)
	for _, d := range []string{"a", "b", "c", "d"} {
		h.Push(act(d))
	}

	if got, want := undoDescs(h), []string{"b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo stack = %v; want %v", got, want)
	}
	if h.UndoLen() != 3 {
		t.Fatalf("UndoLen = %d; want 3", h.UndoLen())
	}
}

func TestPushAtDefaultDepth(t *testing.T) {
	t.Parallel()

	h := New(DefaultDepth)
	for i := 1; i <= DefaultDepth+1; i++ {
		h.Push(act(fmt.Sprintf("action-%d", i)))
	}

	if h.UndoLen() != DefaultDepth {
		t.Fatalf("UndoLen = %d; want %d", h.UndoLen(), DefaultDepth)
	}
	actions := h.UndoActions()
	if actions[0].Description != "action-2" {
		t.Fatalf("oldest surviving action = %q; want action-2", actions[0].Description)
	}
	if actions[len(actions)-1].Description != fmt.Sprintf("action-%d", DefaultDepth+1) {
		t.Fatalf("newest action = %q", actions[len(actions)-1].Description)
	}
}

func TestPopUndoMovesToRedo(t *testing.T) {
	t.Parallel()

	h := New(5)
	h.Push(act("a"))
	h.Push(act("b"))

	got, ok := h.PopUndo()
	if !ok || got.Description != "b" {
		t.Fatalf("PopUndo = (%q, %v); want (b, true)", got.Description, ok)
	}
	if got, want := undoDescs(h), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo = %v; want %v", got, want)
	}
	if got, want := redoDescs(h), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("redo = %v; want %v", got, want)
	}

	back, ok := h.PopRedo()
	if !ok || back.Description != "b" {
		t.Fatalf("PopRedo = (%q, %v); want (b, true)", back.Description, ok)
	}
	if got, want := undoDescs(h), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo after redo = %v; want %v", got, want)
	}
	if h.RedoLen() != 0 {
		t.Fatalf("redo not drained: %v", redoDescs(h))
	}
}

func TestPopOnEmptyStacks(t *testing.T) {
	t.Parallel()

	h := New(5)
	if _, ok := h.PopUndo(); ok {
		t.Fatalf("PopUndo on empty history reported ok")
	}
	if _, ok := h.PopRedo(); ok {
		t.Fatalf("PopRedo on empty history reported ok")
	}
}

func TestPushClearsRedo(t *testing.T) {
	t.Parallel()

	h := New(5)
	h.Push(act("a"))
	h.Push(act("b"))
	if _, ok := h.PopUndo(); !ok {
		t.Fatal("PopUndo failed")
	}
	if h.RedoLen() != 1 {
		t.Fatalf("RedoLen = %d; want 1", h.RedoLen())
	}

	h.Push(act("c"))
	if h.RedoLen() != 0 {
		t.Fatalf("push did not clear redo: %v", redoDescs(h))
	}
	if got, want := undoDescs(h), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo = %v; want %v", got, want)
	}
}

func TestRedoEviction(t *testing.T) {
	t.Parallel()

	// Load both stacks at capacity, then move one more action across:
	// the oldest redo entry has to go.
	h := New(2)
	h.Restore(
		[]model.Action{act("a"), act("b")},
		[]model.Action{act("x"), act("y")},
	)

	got, ok := h.PopUndo()
	if !ok || got.Description != "b" {
		t.Fatalf("PopUndo = (%q, %v); want (b, true)", got.Description, ok)
	}
	if got, want := redoDescs(h), []string{"y", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("redo = %v; want %v", got, want)
	}
}

func TestRestoreTruncatesOldest(t *testing.T) {
	t.Parallel()

	h := New(3)
	h.Restore(
		[]model.Action{act("1"), act("2"), act("3"), act("4"), act("5")},
		nil,
	)

	if got, want := undoDescs(h), []string{"3", "4", "5"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("undo = %v; want %v", got, want)
	}
	if h.RedoLen() != 0 {
		t.Fatalf("RedoLen = %d; want 0", h.RedoLen())
	}
}

func TestActionsReturnCopies(t *testing.T) {
	t.Parallel()

	h := New(5)
	h.Push(act("a"))

	out := h.UndoActions()
	out[0].Description = "mutated"
	if got := undoDescs(h); got[0] != "a" {
		t.Fatalf("internal stack mutated through returned slice: %v", got)
	}
}
