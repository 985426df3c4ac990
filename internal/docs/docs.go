// Package docs serves the embedded help topics shown by `todo docs`.
package docs

import (
	"embed"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed content/*.md
var contentFS embed.FS

// Topics lists the available topic names, sorted.
func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	topics := make([]string, 0, len(entries))
	for _, name := range entries {
		base := strings.TrimPrefix(name, "content/")
		if topic := strings.TrimSuffix(base, ".md"); topic != "" {
			topics = append(topics, topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Get returns the raw markdown for a topic.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Render returns a topic rendered for the terminal. On any rendering
// problem the raw markdown comes back instead, so help is never
// unavailable.
func Render(topic string, width int) (string, bool) {
	md, ok := Get(topic)
	if !ok {
		return "", false
	}
	if width < 20 {
		width = 80
	}
	// WithAutoStyle can block on terminal queries in some setups, so
	// the style is picked explicitly.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, true
	}
	out, err := r.Render(md)
	if err != nil {
		return md, true
	}
	return strings.TrimRight(out, "\n"), true
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TODO_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
