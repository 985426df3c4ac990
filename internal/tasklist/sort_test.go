package tasklist

import (
	"reflect"
	"sort"
	"testing"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

func TestSortByPriority(t *testing.T) {
	t.Parallel()

	l := New()
	l.Append(model.Task{Description: "groceries", Priority: model.PriorityLow})
	l.Append(model.Task{Description: "taxes", Priority: model.PriorityHigh})
	l.Append(model.Task{Description: "gym", Priority: model.PriorityMedium})
	l.Append(model.Task{Description: "dentist", Priority: model.PriorityHigh})

	l.Sort(model.SortByPriority)
	checkInvariants(t, l)

	want := []string{"taxes", "dentist", "gym", "groceries"}
	if got := descriptions(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v; want %v", got, want)
	}
}

func TestSortByDue(t *testing.T) {
	t.Parallel()

	l := New()
	l.Append(model.Task{Description: "someday", Priority: model.PriorityMedium})
	l.Append(model.Task{Description: "late", Priority: model.PriorityMedium, Due: "2025-12-01"})
	l.Append(model.Task{Description: "soon", Priority: model.PriorityMedium, Due: "2025-01-15"})

	l.Sort(model.SortByDue)
	checkInvariants(t, l)

	// Tasks without a due date sort after every dated task.
	want := []string{"soon", "late", "someday"}
	if got := descriptions(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v; want %v", got, want)
	}
}

func TestSortByDescription(t *testing.T) {
	t.Parallel()

	l := New()
	appendAll(l, "banana", "Apple", "cherry")

	l.Sort(model.SortByDescription)
	checkInvariants(t, l)

	want := []string{"Apple", "banana", "cherry"}
	if got := descriptions(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v; want %v", got, want)
	}
}

func TestSortIsStable(t *testing.T) {
	t.Parallel()

	// All tasks share the same priority, so a stable sort must keep the
	// insertion order untouched.
	l := New()
	inserted := []string{"first", "second", "third", "fourth", "fifth"}
	appendAll(l, inserted...)

	l.Sort(model.SortByPriority)
	checkInvariants(t, l)

	if got := descriptions(l); !reflect.DeepEqual(got, inserted) {
		t.Fatalf("equal-key order changed: %v; want %v", got, inserted)
	}
}

func TestSortPreservesElements(t *testing.T) {
	t.Parallel()

	l := New()
	before := []string{"m", "a", "z", "a", "k", "b", "q", "a"}
	appendAll(l, before...)

	l.Sort(model.SortByDescription)
	checkInvariants(t, l)

	after := descriptions(l)
	if len(after) != len(before) {
		t.Fatalf("sort changed length: %d -> %d", len(before), len(after))
	}
	wantSorted := append([]string(nil), before...)
	sort.Strings(wantSorted)
	gotSorted := append([]string(nil), after...)
	sort.Strings(gotSorted)
	if !reflect.DeepEqual(gotSorted, wantSorted) {
		t.Fatalf("sort changed the element multiset: %v; want %v", gotSorted, wantSorted)
	}
}

func TestSortSmallLists(t *testing.T) {
	t.Parallel()

	empty := New()
	empty.Sort(model.SortByPriority)
	checkInvariants(t, empty)

	single := New()
	appendAll(single, "only")
	single.Sort(model.SortByDue)
	checkInvariants(t, single)
	if got := descriptions(single); !reflect.DeepEqual(got, []string{"only"}) {
		t.Fatalf("order = %v; want [only]", got)
	}
}

func TestSortThenRemoveUsesRepairedLinks(t *testing.T) {
	t.Parallel()

	// RemoveAt walks back-links during unlink, so a stale prev pointer
	// after sorting would corrupt the list here.
	l := New()
	l.Append(model.Task{Description: "c", Priority: model.PriorityLow})
	l.Append(model.Task{Description: "a", Priority: model.PriorityHigh})
	l.Append(model.Task{Description: "b", Priority: model.PriorityMedium})

	l.Sort(model.SortByPriority)
	if _, err := l.RemoveAt(2); err != nil {
		t.Fatalf("RemoveAt(2): %v", err)
	}
	checkInvariants(t, l)

	if got := descriptions(l); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("order = %v; want [a c]", got)
	}

	l.RemoveLast()
	checkInvariants(t, l)
	if got := descriptions(l); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("order = %v; want [a]", got)
	}
}
