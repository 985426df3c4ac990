package model

import (
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "high", want: PriorityHigh},
		{in: "HIGH", want: PriorityHigh},
		{in: "h", want: PriorityHigh},
		{in: "1", want: PriorityHigh},
		{in: "medium", want: PriorityMedium},
		{in: "", want: PriorityMedium}, // default
		{in: "low", want: PriorityLow},
		{in: "  low  ", want: PriorityLow},
		{in: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePriority(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriority(%q): expected error; got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParsePriority(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriorityWeightOrdering(t *testing.T) {
	t.Parallel()

	if !(PriorityHigh.Weight() < PriorityMedium.Weight() && PriorityMedium.Weight() < PriorityLow.Weight()) {
		t.Fatalf("priority weights out of order: high=%d medium=%d low=%d",
			PriorityHigh.Weight(), PriorityMedium.Weight(), PriorityLow.Weight())
	}
	if Priority("party").Weight() <= PriorityLow.Weight() {
		t.Fatalf("unknown priority should sort after low")
	}
}

func TestTaskOverdue(t *testing.T) {
	t.Parallel()

	today := "2024-06-01"
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "past due pending", task: Task{Description: "a", Due: "2020-01-01"}, want: true},
		{name: "past due completed", task: Task{Description: "a", Due: "2020-01-01", Done: true}, want: false},
		{name: "no due date", task: Task{Description: "a"}, want: false},
		{name: "due today", task: Task{Description: "a", Due: "2024-06-01"}, want: false},
		{name: "due later", task: Task{Description: "a", Due: "2025-01-01"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.task.Overdue(today); got != tt.want {
				t.Fatalf("Overdue(%q) = %v; want %v", today, got, tt.want)
			}
		})
	}
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{in: "priority", want: SortByPriority},
		{in: "due", want: SortByDue},
		{in: "due_date", want: SortByDue},
		{in: "description", want: SortByDescription},
		{in: "DESC", want: SortByDescription},
		{in: "rank", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSortKey(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSortKey(%q): expected error; got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSortKey(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseSortKey(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	valid := []string{"", "2024-01-31", "1999-12-01"}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false; want true", s)
		}
	}
	invalid := []string{"2024-13-01", "2024-1-1", "tomorrow", "01-02-2024"}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true; want false", s)
		}
	}
}

func TestTimestampFormat(t *testing.T) {
	t.Parallel()

	ts := Timestamp(time.Date(2024, 6, 1, 9, 5, 7, 0, time.UTC))
	if ts != "09:05:07" {
		t.Fatalf("Timestamp = %q; want 09:05:07", ts)
	}
}
