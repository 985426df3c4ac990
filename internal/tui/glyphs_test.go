package tui

import (
	"strings"
	"testing"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
)

func TestApplyGlyphPreference(t *testing.T) {
	t.Setenv("TODO_TUI_GLYPHS", "")
	defer setGlyphs(glyphSetUnicode)

	applyGlyphPreference("ascii")
	if glyphs() != glyphSetASCII {
		t.Fatal("configured ascii should select the ASCII set")
	}
	if got := glyphCheckboxDone(); got != "[x]" {
		t.Errorf("done checkbox = %q", got)
	}
	if got := glyphCheckboxPending(); got != "[ ]" {
		t.Errorf("pending checkbox = %q", got)
	}
	if got := glyphCurrentMarker(); got != "*" {
		t.Errorf("current marker = %q", got)
	}

	applyGlyphPreference("unicode")
	if glyphs() != glyphSetUnicode {
		t.Fatal("configured unicode should select the Unicode set")
	}

	// Unknown values leave the current set alone.
	applyGlyphPreference("wingdings")
	if glyphs() != glyphSetUnicode {
		t.Fatal("unknown preference must not change the set")
	}

	// Env overrides config.
	t.Setenv("TODO_TUI_GLYPHS", "ascii")
	applyGlyphPreference("unicode")
	if glyphs() != glyphSetASCII {
		t.Fatal("env override should win over the configured value")
	}
}

func TestTaskItemRendering(t *testing.T) {
	defer setGlyphs(glyphSetUnicode)
	setGlyphs(glyphSetASCII)

	it := taskItem{row: session.NumberedTask{
		Pos: 1,
		Task: model.Task{
			Description: "buy milk",
			Priority:    model.PriorityHigh,
			Due:         "2030-01-02",
			Tags:        []string{"errand"},
		},
	}}
	if title := it.Title(); !strings.Contains(title, "[ ]") || !strings.Contains(title, "buy milk") {
		t.Errorf("pending title = %q", title)
	}
	if desc := it.Description(); desc != "high, due 2030-01-02, #errand" {
		t.Errorf("meta = %q", desc)
	}

	it.row.Done = true
	if title := it.Title(); !strings.Contains(title, "[x]") {
		t.Errorf("done title = %q", title)
	}

	if fv := it.FilterValue(); fv != "buy milk" {
		t.Errorf("filter value = %q", fv)
	}
}

func TestProjectItemRendering(t *testing.T) {
	defer setGlyphs(glyphSetUnicode)
	setGlyphs(glyphSetASCII)

	cur := projectItem{name: "main", tasks: 1, current: true}
	title := cur.Title()
	if !strings.HasPrefix(title, "* ") {
		t.Errorf("current title = %q", title)
	}
	if !strings.Contains(title, "(1 task)") || strings.Contains(title, "tasks") {
		t.Errorf("singular count in %q", title)
	}

	other := projectItem{name: "work", tasks: 3}
	title = other.Title()
	if !strings.HasPrefix(title, "  work") {
		t.Errorf("other title = %q", title)
	}
	if !strings.Contains(title, "(3 tasks)") {
		t.Errorf("plural count in %q", title)
	}
}
