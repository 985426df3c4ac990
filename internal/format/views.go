package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
	"github.com/jaydenyuan326/todo-list-manager/internal/store"
	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

// Text views must stay readable on both light and dark terminals, so
// every color is adaptive.
func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	styMuted  = lipgloss.NewStyle().Foreground(ac("240", "243"))
	styHeader = lipgloss.NewStyle().Bold(true)
	styDone   = lipgloss.NewStyle().Foreground(ac("240", "243")).Strikethrough(true)

	styHigh   = lipgloss.NewStyle().Foreground(ac("160", "203"))
	styMedium = lipgloss.NewStyle().Foreground(ac("130", "214"))
	styLow    = lipgloss.NewStyle().Foreground(ac("28", "78"))

	styColumn = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac("250", "243")).
			Width(26).
			Padding(0, 1)
)

func priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return styHigh
	case model.PriorityLow:
		return styLow
	default:
		return styMedium
	}
}

// TaskLine renders one listing row: position, checkbox, description and
// metadata.
func TaskLine(r session.NumberedTask) string {
	check := "[ ]"
	if r.Done {
		check = "[x]"
	}
	desc := r.Description
	if r.Done {
		desc = styDone.Render(desc)
	}

	var meta []string
	meta = append(meta, priorityStyle(r.Priority).Render(string(r.Priority)))
	if r.Due != "" {
		meta = append(meta, "due "+r.Due)
	}
	if len(r.Tags) > 0 {
		meta = append(meta, "#"+strings.Join(r.Tags, " #"))
	}

	return fmt.Sprintf("%3d. %s %s  %s", r.Pos, check, desc, styMuted.Render("("+strings.Join(meta, ", ")+")"))
}

// TaskTable renders the full listing, one task per line.
func TaskTable(rows []session.NumberedTask) string {
	if len(rows) == 0 {
		return styMuted.Render("No tasks.")
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, TaskLine(r))
	}
	return strings.Join(lines, "\n")
}

// ProjectRow is one line of the projects listing.
type ProjectRow struct {
	Name    string `json:"name"`
	Tasks   int    `json:"tasks"`
	Current bool   `json:"current"`
}

// ProjectsView renders the projects listing, marking the active one.
func ProjectsView(rows []ProjectRow) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := "  "
		name := r.Name
		if r.Current {
			marker = "* "
			name = styHeader.Render(name)
		}
		b.WriteString(marker + name + "  " + styMuted.Render("("+english.Plural(r.Tasks, "task", "")+")"))
	}
	return b.String()
}

// HistoryView renders recorded actions oldest-first.
func HistoryView(actions []model.Action) string {
	if len(actions) == 0 {
		return styMuted.Render("(empty)")
	}
	lines := make([]string, 0, len(actions))
	for i, a := range actions {
		lines = append(lines, fmt.Sprintf("%3d. %-6s %s  %s",
			i+1, a.Kind, a.Description, styMuted.Render(a.Time)))
	}
	return strings.Join(lines, "\n")
}

// EventsView renders activity log entries newest-first with humanized
// ages.
func EventsView(evs []store.Event, now time.Time) string {
	if len(evs) == 0 {
		return styMuted.Render("No activity yet.")
	}
	lines := make([]string, 0, len(evs))
	for _, e := range evs {
		age := humanize.RelTime(e.Time, now, "ago", "from now")
		line := fmt.Sprintf("%-15s %-8s %-10s %s", age, e.Kind, e.Project, e.Detail)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

// DashboardView renders the stats block with the overdue breakdown.
func DashboardView(project string, st tasklist.Stats, overdue []model.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(styHeader.Render("Dashboard ("+project+")") + "\n")
	fmt.Fprintf(&b, "  Total:      %d\n", st.Total)
	fmt.Fprintf(&b, "  Completed:  %d\n", st.Completed)
	fmt.Fprintf(&b, "  Pending:    %d\n", st.Pending())
	fmt.Fprintf(&b, "  Overdue:    %d\n", st.Overdue)
	fmt.Fprintf(&b, "  Completion: %s", CompletionRate(st))

	if len(overdue) > 0 {
		b.WriteString("\n\n" + styHigh.Render("Overdue:"))
		for _, t := range overdue {
			line := "\n  - " + t.Description + " " + styMuted.Render("(due "+t.Due+dueAge(t.Due, now)+")")
			b.WriteString(line)
		}
	}
	return b.String()
}

// CompletionRate formats completed/total as a percentage, matching the
// dashboard's one-decimal display.
func CompletionRate(st tasklist.Stats) string {
	if st.Total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(st.Completed)/float64(st.Total)*100)
}

func dueAge(due string, now time.Time) string {
	d, err := time.Parse("2006-01-02", due)
	if err != nil {
		return ""
	}
	return ", " + humanize.RelTime(d, now, "ago", "from now")
}

// KanbanView renders the three board columns side by side.
func KanbanView(b session.Board) string {
	cols := []string{
		kanbanColumn("TODO", b.Todo),
		kanbanColumn("IN PROGRESS", b.InProgress),
		kanbanColumn("DONE", b.Done),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func kanbanColumn(title string, tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(styHeader.Render(title))
	if len(tasks) == 0 {
		b.WriteString("\n" + styMuted.Render("(none)"))
	}
	for _, t := range tasks {
		desc := t.Description
		if t.Priority == model.PriorityHigh && !t.Done {
			desc = styHigh.Render(desc)
		}
		b.WriteString("\n- " + desc)
	}
	return styColumn.Render(b.String())
}
