// Package store persists sessions as a JSON snapshot on disk and keeps
// a local activity log alongside it.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

const (
	snapshotFileName = "todo.json"
	eventsFileName   = "events.sqlite"
)

// Store reads and writes all persistent state under one directory.
type Store struct {
	Dir string
}

// DefaultDir returns the data directory when no flag or config names
// one: $TODO_DIR if set, otherwise ~/.todo.
func DefaultDir() (string, error) {
	if v := os.Getenv("TODO_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todo"), nil
}

// Ensure creates the data directory if needed.
func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// SnapshotPath returns the location of the JSON snapshot.
func (s Store) SnapshotPath() string {
	return filepath.Join(s.Dir, snapshotFileName)
}

// SnapshotExists reports whether a snapshot has been written before.
func (s Store) SnapshotExists() bool {
	_, err := os.Stat(s.SnapshotPath())
	return err == nil
}

// document is the snapshot wire format. Projects map names to their
// task slices in display order; both history stacks are persisted
// oldest-first so a restart can pick up undo and redo where they were.
type document struct {
	Projects       orderedProjects `json:"projects"`
	CurrentProject string          `json:"current_project"`
	UndoHistory    []model.Action  `json:"undo_history"`
	RedoHistory    []model.Action  `json:"redo_history"`
}

// orderedProjects keeps the document order of the projects object.
// encoding/json maps would lose it, and project listings are expected
// to keep creation order across restarts.
type orderedProjects struct {
	Names []string
	Tasks map[string][]model.Task
}

func (p orderedProjects) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		tasks := p.Tasks[name]
		if tasks == nil {
			tasks = []model.Task{}
		}
		v, err := json.Marshal(tasks)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *orderedProjects) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("projects: expected object, got %v", tok)
	}
	p.Names = nil
	p.Tasks = make(map[string][]model.Task)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("projects: expected string key, got %v", keyTok)
		}
		var tasks []model.Task
		if err := dec.Decode(&tasks); err != nil {
			return fmt.Errorf("projects[%s]: %w", name, err)
		}
		if _, dup := p.Tasks[name]; !dup {
			p.Names = append(p.Names, name)
		}
		p.Tasks[name] = tasks
	}
	_, err = dec.Token()
	return err
}

// Load reads the snapshot into a fresh session with the given history
// depth. A missing or unparseable snapshot yields a default session;
// Save keeps a .bak of the previous snapshot so a damaged file is
// recoverable by hand.
func (s Store) Load(historyDepth int) (*session.Session, error) {
	sess := session.New(historyDepth)

	b, err := os.ReadFile(s.SnapshotPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sess, nil
		}
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return sess, nil
	}

	for _, name := range doc.Projects.Names {
		list := tasklist.New()
		for _, t := range doc.Projects.Tasks[name] {
			if t.Priority == "" {
				t.Priority = model.PriorityMedium
			}
			list.Append(t)
		}
		sess.Projects.Attach(name, list)
	}
	if err := sess.Projects.Switch(doc.CurrentProject); err != nil {
		// Unknown or empty current project falls back to the default.
		_ = sess.Projects.Switch(sess.Projects.CurrentName())
	}
	sess.History.Restore(doc.UndoHistory, doc.RedoHistory)
	return sess, nil
}

// Save writes the session atomically, keeping a best-effort .bak copy
// of the previous snapshot.
func (s Store) Save(sess *session.Session) error {
	if err := s.Ensure(); err != nil {
		return err
	}

	doc := document{
		CurrentProject: sess.Projects.CurrentName(),
		UndoHistory:    sess.History.UndoActions(),
		RedoHistory:    sess.History.RedoActions(),
	}
	if doc.UndoHistory == nil {
		doc.UndoHistory = []model.Action{}
	}
	if doc.RedoHistory == nil {
		doc.RedoHistory = []model.Action{}
	}
	doc.Projects = orderedProjects{
		Names: sess.Projects.Names(),
		Tasks: make(map[string][]model.Task),
	}
	for _, name := range doc.Projects.Names {
		list, ok := sess.Projects.Get(name)
		if !ok {
			continue
		}
		doc.Projects.Tasks[name] = list.Tasks()
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := s.SnapshotPath()
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(s.Dir, snapshotFileName+".bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(s.Dir, snapshotFileName+".*.tmp", path, b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
