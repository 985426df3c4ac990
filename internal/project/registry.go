// Package project keeps named task lists and tracks which one is active.
package project

import (
	"errors"

	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

// DefaultName is the project every registry starts with. It is always
// present and cannot be deleted, so the active project has somewhere to
// fall back to.
const DefaultName = "main"

var (
	ErrExists         = errors.New("project already exists")
	ErrNotFound       = errors.New("project not found")
	ErrDefaultProject = errors.New("default project cannot be deleted")
	ErrEmptyName      = errors.New("project name is empty")
)

// Registry maps project names to their task lists, preserving creation
// order for display.
type Registry struct {
	order   []string
	lists   map[string]*tasklist.List
	current string
}

// NewRegistry returns a registry seeded with the default project, which
// starts active.
func NewRegistry() *Registry {
	r := &Registry{
		lists:   make(map[string]*tasklist.List),
		current: DefaultName,
	}
	r.order = append(r.order, DefaultName)
	r.lists[DefaultName] = tasklist.New()
	return r
}

// CurrentName reports the active project's name.
func (r *Registry) CurrentName() string { return r.current }

// Current returns the active project's task list.
func (r *Registry) Current() *tasklist.List {
	return r.lists[r.current]
}

// Create adds an empty project under the given name.
func (r *Registry) Create(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.lists[name]; ok {
		return ErrExists
	}
	r.order = append(r.order, name)
	r.lists[name] = tasklist.New()
	return nil
}

// Switch makes the named project active.
func (r *Registry) Switch(name string) error {
	if _, ok := r.lists[name]; !ok {
		return ErrNotFound
	}
	r.current = name
	return nil
}

// Delete removes the named project and its tasks. Deleting the active
// project switches back to the default one.
func (r *Registry) Delete(name string) error {
	if name == DefaultName {
		return ErrDefaultProject
	}
	if _, ok := r.lists[name]; !ok {
		return ErrNotFound
	}
	delete(r.lists, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.current == name {
		r.current = DefaultName
	}
	return nil
}

// Get returns the named project's task list.
func (r *Registry) Get(name string) (*tasklist.List, bool) {
	l, ok := r.lists[name]
	return l, ok
}

// Names lists all projects in creation order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len reports the number of projects.
func (r *Registry) Len() int { return len(r.order) }

// Attach installs a task list under the given name, creating the
// project if needed. Loading a snapshot uses this to rebuild the
// registry in file order.
func (r *Registry) Attach(name string, l *tasklist.List) {
	if name == "" {
		return
	}
	if _, ok := r.lists[name]; !ok {
		r.order = append(r.order, name)
	}
	r.lists[name] = l
}
