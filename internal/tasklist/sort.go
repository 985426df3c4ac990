package tasklist

import (
	"strings"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
)

// Absent due dates sort last: the sentinel compares greater than any real
// ISO-8601 date.
const noDueSentinel = "9999-99-99"

// leqFunc reports left <= right under the active sort key. Merging takes
// from the left sublist on ties, which is what makes the sort stable.
type leqFunc func(a, b *model.Task) bool

func keyFunc(key model.SortKey) leqFunc {
	switch key {
	case model.SortByDue:
		return func(a, b *model.Task) bool {
			return dueKey(a) <= dueKey(b)
		}
	case model.SortByDescription:
		return func(a, b *model.Task) bool {
			return strings.ToLower(a.Description) <= strings.ToLower(b.Description)
		}
	default: // model.SortByPriority
		return func(a, b *model.Task) bool {
			return a.Priority.Weight() <= b.Priority.Weight()
		}
	}
}

func dueKey(t *model.Task) string {
	if t.Due == "" {
		return noDueSentinel
	}
	return t.Due
}

// Sort reorders the list in place with a stable merge sort. Nodes are
// relinked, never copied: task payloads stay attached to their nodes.
//
// The merge phase only maintains next pointers. A final forward pass
// rebuilds every prev pointer (and the tail reference) to restore the
// doubly linked invariant; skipping it would leave stale back-links.
func (l *List) Sort(key model.SortKey) {
	if l.head == nil || l.head.next == nil {
		return
	}
	leq := keyFunc(key)
	l.head = mergeSort(l.head, leq)
	l.repairLinks()
}

// mergeSort sorts a forward-linked chain. Prev pointers are left stale
// throughout; callers repair them after the top-level merge returns.
func mergeSort(head *Node, leq leqFunc) *Node {
	if head == nil || head.next == nil {
		return head
	}
	mid := splitHalf(head)
	left := mergeSort(head, leq)
	right := mergeSort(mid, leq)
	return merge(left, right, leq)
}

// splitHalf severs the chain after its middle node (slow/fast traversal)
// and returns the head of the second half.
func splitHalf(head *Node) *Node {
	slow := head
	fast := head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil
	return mid
}

// merge interleaves two sorted chains into one, biased to the left input
// on equal keys so equal elements keep their original relative order.
func merge(left, right *Node, leq leqFunc) *Node {
	var head, tail *Node
	appendNode := func(n *Node) {
		if head == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for left != nil && right != nil {
		if leq(&left.Task, &right.Task) {
			next := left.next
			appendNode(left)
			left = next
		} else {
			next := right.next
			appendNode(right)
			right = next
		}
	}
	if left != nil {
		appendNode(left)
	}
	if right != nil {
		appendNode(right)
	}
	// The surviving run is already chained; just make sure the merged
	// head starts the result.
	return head
}

// repairLinks walks the forward chain once, fixing prev pointers, the
// head's nil back-link, and the cached tail.
func (l *List) repairLinks() {
	l.head.prev = nil
	n := l.head
	for n.next != nil {
		n.next.prev = n
		n = n.next
	}
	l.tail = n
}
