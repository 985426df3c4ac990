package model

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight orders priorities for sorting: lower sorts first.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		// Unknown values sort after the known set.
		return 3
	}
}

func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium", "m", "2":
		return PriorityMedium, nil
	case "high", "h", "1":
		return PriorityHigh, nil
	case "low", "l", "3":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority: %q (expected high|medium|low)", s)
	}
}

// Task is one todo entry. Field tags follow the snapshot wire format
// (todo.json), so tasks marshal directly into persisted documents.
type Task struct {
	Description string   `json:"desc"`
	Done        bool     `json:"done"`
	Priority    Priority `json:"pri"`
	Due         string   `json:"due,omitempty"` // YYYY-MM-DD; empty means no due date
	Tags        []string `json:"tags,omitempty"`
}

// Overdue reports whether the task counts as overdue on the given day.
// Dates are ISO-8601 strings, so lexical comparison is chronological.
func (t Task) Overdue(today string) bool {
	return t.Due != "" && t.Due < today && !t.Done
}

type ActionKind string

const (
	ActionAdd    ActionKind = "ADD"
	ActionDelete ActionKind = "DELETE"
	ActionDone   ActionKind = "DONE"
)

// Action records one reversible edit. Data carries the full task snapshot
// where the inverse needs it (DELETE restores from it; ADD redoes from it).
type Action struct {
	Kind        ActionKind `json:"type"`
	Description string     `json:"desc"`
	Data        *Task      `json:"data,omitempty"`
	Time        string     `json:"time"` // wall-clock HH:MM:SS, display only
}

// Timestamp returns the clock string recorded on new actions.
func Timestamp(now time.Time) string {
	return now.Format("15:04:05")
}

type SortKey int

const (
	SortByPriority SortKey = iota
	SortByDue
	SortByDescription
)

func (k SortKey) String() string {
	switch k {
	case SortByPriority:
		return "priority"
	case SortByDue:
		return "due"
	case SortByDescription:
		return "description"
	default:
		return "unknown"
	}
}

func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "priority", "pri":
		return SortByPriority, nil
	case "due", "due_date", "duedate", "date":
		return SortByDue, nil
	case "description", "desc", "alpha":
		return SortByDescription, nil
	default:
		return 0, fmt.Errorf("invalid sort key: %q (expected priority|due|description)", s)
	}
}

// ValidDate reports whether s looks like an ISO-8601 calendar date.
// The empty string is valid (no due date).
func ValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Today formats a time as the ISO-8601 date used for overdue checks.
func Today(now time.Time) string {
	return now.Format("2006-01-02")
}
