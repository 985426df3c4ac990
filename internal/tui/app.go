package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaydenyuan326/todo-list-manager/internal/format"
	"github.com/jaydenyuan326/todo-list-manager/internal/model"
	"github.com/jaydenyuan326/todo-list-manager/internal/session"
	"github.com/jaydenyuan326/todo-list-manager/internal/store"
	"github.com/jaydenyuan326/todo-list-manager/internal/tasklist"
)

type view int

const (
	viewTasks view = iota
	viewProjects
	viewDashboard
	viewHistory
)

var viewNames = []string{"Tasks", "Projects", "Dashboard", "History"}

type promptField int

const (
	promptNone promptField = iota
	promptDescription
	promptPriority
	promptDue
	promptTags
	promptSortKey
	promptProjectName
)

type reloadTickMsg struct{}

// draft collects the add-prompt answers until the final field commits.
type draft struct {
	desc string
	pri  model.Priority
	due  string
	tags []string
}

type appModel struct {
	sess  *session.Session
	store store.Store

	width  int
	height int

	view view

	tasksList    list.Model
	projectsList list.Model

	input  textinput.Model
	prompt promptField
	draft  draft

	// Project name awaiting delete confirmation; empty means none.
	confirmDelete string

	status string

	lastSnapshotMod time.Time
}

func newAppModel(sess *session.Session, st store.Store) appModel {
	m := appModel{
		sess:  sess,
		store: st,
		view:  viewTasks,
	}

	m.tasksList = newList("Tasks", []list.Item{})
	m.projectsList = newList("Projects", []list.Item{})
	m.projectsList.SetDelegate(newCompactDelegate())

	in := textinput.New()
	in.CharLimit = 256
	m.input = in

	m.refreshTasks()
	m.refreshProjects()
	m.lastSnapshotMod = fileModTime(st.SnapshotPath())
	return m
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case reloadTickMsg:
		if m.storeChanged() {
			m.reloadFromDisk()
		}
		return m, tickReload()

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		if m.confirmDelete != "" {
			return m.updateConfirm(msg)
		}
		if m.settingFilter() {
			break
		}

		m.status = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.view = (m.view + 1) % view(len(viewNames))
			return m, nil
		case "shift+tab":
			m.view = (m.view + view(len(viewNames)) - 1) % view(len(viewNames))
			return m, nil
		case "esc":
			if m.view != viewTasks {
				m.view = viewTasks
				return m, nil
			}
		case "r":
			m.reloadFromDisk()
			m.status = "Reloaded."
			return m, nil
		}

		switch m.view {
		case viewTasks:
			if handled, next, cmd := m.updateTasksKey(msg); handled {
				return next, cmd
			}
		case viewProjects:
			if handled, next, cmd := m.updateProjectsKey(msg); handled {
				return next, cmd
			}
		}
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	// Let the active list handle navigation and filtering keys.
	switch m.view {
	case viewTasks:
		var cmd tea.Cmd
		m.tasksList, cmd = m.tasksList.Update(msg)
		return m, cmd
	case viewProjects:
		var cmd tea.Cmd
		m.projectsList, cmd = m.projectsList.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m appModel) updateTasksKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.draft = draft{}
		return true, m, m.openPrompt(promptDescription, "what needs doing?")

	case "enter", "x":
		row, ok := m.selectedTask()
		if !ok {
			m.status = "No task selected."
			return true, m, nil
		}
		task, err := m.sess.Complete(row.Pos)
		if errors.Is(err, tasklist.ErrAlreadyDone) {
			m.status = fmt.Sprintf("%q is already completed.", task.Description)
			return true, m, nil
		}
		if err != nil {
			m.status = err.Error()
			return true, m, nil
		}
		m.commit(m.sess.Projects.CurrentName(), "task.done", task.Description)
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Completed %q.", task.Description)
		return true, m, nil

	case "d":
		row, ok := m.selectedTask()
		if !ok {
			m.status = "No task selected."
			return true, m, nil
		}
		task, err := m.sess.Delete(row.Pos)
		if err != nil {
			m.status = err.Error()
			return true, m, nil
		}
		m.commit(m.sess.Projects.CurrentName(), "task.delete", task.Description)
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Deleted %q.", task.Description)
		return true, m, nil

	case "u":
		a, ok := m.sess.Undo()
		if !ok {
			m.status = "Nothing to undo."
			return true, m, nil
		}
		m.commit(m.sess.Projects.CurrentName(), "task.undo", string(a.Kind)+" "+a.Description)
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Undid %s %q.", strings.ToLower(string(a.Kind)), a.Description)
		return true, m, nil

	case "ctrl+r":
		a, ok := m.sess.Redo()
		if !ok {
			m.status = "Nothing to redo."
			return true, m, nil
		}
		m.commit(m.sess.Projects.CurrentName(), "task.redo", string(a.Kind)+" "+a.Description)
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Redid %s %q.", strings.ToLower(string(a.Kind)), a.Description)
		return true, m, nil

	case "s":
		return true, m, m.openPrompt(promptSortKey, "priority, due or description")
	}
	return false, m, nil
}

func (m appModel) updateProjectsKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		return true, m, m.openPrompt(promptProjectName, "new project name")

	case "enter":
		it, ok := m.projectsList.SelectedItem().(projectItem)
		if !ok {
			return true, m, nil
		}
		if err := m.sess.Projects.Switch(it.name); err != nil {
			m.status = err.Error()
			return true, m, nil
		}
		m.commit(it.name, "project.switch", "")
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Switched to %q.", it.name)
		return true, m, nil

	case "d":
		it, ok := m.projectsList.SelectedItem().(projectItem)
		if !ok {
			return true, m, nil
		}
		m.confirmDelete = it.name
		return true, m, nil
	}
	return false, m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		m.status = "Canceled."
		return m, nil
	case "enter":
		return m.advancePrompt()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advancePrompt consumes the current field and either opens the next
// one or commits. Invalid input keeps the field open.
func (m appModel) advancePrompt() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.input.Value())

	switch m.prompt {
	case promptDescription:
		if val == "" {
			m.status = "Description cannot be empty."
			return m, nil
		}
		m.draft.desc = val
		return m, m.openPrompt(promptPriority, "high, medium or low (empty = medium)")

	case promptPriority:
		pri, err := model.ParsePriority(val)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.draft.pri = pri
		return m, m.openPrompt(promptDue, "YYYY-MM-DD (empty = none)")

	case promptDue:
		if !model.ValidDate(val) {
			m.status = fmt.Sprintf("invalid date: %q (expected YYYY-MM-DD)", val)
			return m, nil
		}
		m.draft.due = val
		return m, m.openPrompt(promptTags, "space-separated tags (empty = none)")

	case promptTags:
		m.draft.tags = parseTags(val)
		task, err := m.sess.Add(m.draft.desc, m.draft.pri, m.draft.due, m.draft.tags)
		m.closePrompt()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.commit(m.sess.Projects.CurrentName(), "task.add", task.Description)
		m.refreshTasks()
		m.refreshProjects()
		m.status = fmt.Sprintf("Added %q.", task.Description)
		return m, nil

	case promptSortKey:
		key, err := model.ParseSortKey(val)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.closePrompt()
		m.sess.Sort(key)
		m.commit(m.sess.Projects.CurrentName(), "task.sort", key.String())
		m.refreshTasks()
		m.status = fmt.Sprintf("Sorted by %s.", key)
		return m, nil

	case promptProjectName:
		m.closePrompt()
		if err := m.sess.Projects.Create(val); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.commit(val, "project.create", "")
		m.refreshProjects()
		m.status = fmt.Sprintf("Created project %q. Press enter on it to switch.", val)
		return m, nil
	}

	m.closePrompt()
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name := m.confirmDelete
	m.confirmDelete = ""

	if s := msg.String(); s != "y" && s != "Y" {
		m.status = "Canceled."
		return m, nil
	}
	if err := m.sess.Projects.Delete(name); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.commit(name, "project.delete", "")
	m.refreshTasks()
	m.refreshProjects()
	m.status = fmt.Sprintf("Deleted project %q.", name)
	return m, nil
}

func (m appModel) View() string {
	header := styleHeader().Render(fmt.Sprintf("todo  Project=%s  Tasks=%d",
		m.sess.Projects.CurrentName(), m.sess.List().Len()))

	var body string
	switch m.view {
	case viewTasks:
		body = m.tasksList.View()
	case viewProjects:
		body = m.projectsList.View()
	case viewDashboard:
		body = format.DashboardView(m.sess.Projects.CurrentName(), m.sess.Stats(), m.sess.OverdueRecords(), time.Now()) +
			"\n\n" + format.KanbanView(m.sess.Kanban())
	case viewHistory:
		body = styleHeader().Render("Undo") + "\n" + format.HistoryView(m.sess.History.UndoActions()) +
			"\n\n" + styleHeader().Render("Redo") + "\n" + format.HistoryView(m.sess.History.RedoActions())
	}

	var bottom []string
	if m.prompt != promptNone {
		bottom = append(bottom, stylePrompt().Render(promptLabel(m.prompt))+" "+m.input.View())
	}
	if m.confirmDelete != "" {
		bottom = append(bottom, stylePrompt().Render(fmt.Sprintf("Delete project %q and its tasks? (y/n)", m.confirmDelete)))
	}
	if m.status != "" {
		bottom = append(bottom, styleStatus().Render(m.status))
	}
	bottom = append(bottom, styleMuted().Render(m.footer()))

	ruleWidth := m.width
	if ruleWidth <= 0 || ruleWidth > 100 {
		ruleWidth = 100
	}
	tabs := renderTabs(m.view) + "\n" + styleMuted().Render(strings.Repeat(glyphHRule(), ruleWidth))

	return strings.Join([]string{header, tabs, body, strings.Join(bottom, "\n")}, "\n\n")
}

func renderTabs(active view) string {
	parts := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == active {
			parts[i] = styleHeader().Render(name)
		} else {
			parts[i] = styleMuted().Render(name)
		}
	}
	return strings.Join(parts, "   ")
}

func (m appModel) footer() string {
	switch m.view {
	case viewTasks:
		return "a: add  x/enter: done  d: delete  u: undo  ctrl+r: redo  s: sort  /: filter  r: reload  tab: views  q: quit"
	case viewProjects:
		return "enter: switch  n: new  d: delete  /: filter  tab: views  q: quit"
	default:
		return "r: reload  tab: views  q: quit"
	}
}

func promptLabel(f promptField) string {
	switch f {
	case promptDescription:
		return "Description:"
	case promptPriority:
		return "Priority:"
	case promptDue:
		return "Due date:"
	case promptTags:
		return "Tags:"
	case promptSortKey:
		return "Sort by:"
	case promptProjectName:
		return "Project:"
	default:
		return ""
	}
}

func (m *appModel) openPrompt(f promptField, placeholder string) tea.Cmd {
	m.prompt = f
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *appModel) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *appModel) settingFilter() bool {
	switch m.view {
	case viewTasks:
		return m.tasksList.SettingFilter()
	case viewProjects:
		return m.projectsList.SettingFilter()
	default:
		return false
	}
}

func (m appModel) selectedTask() (session.NumberedTask, bool) {
	it, ok := m.tasksList.SelectedItem().(taskItem)
	if !ok {
		return session.NumberedTask{}, false
	}
	return it.row, true
}

// commit saves the snapshot and appends an activity log entry. Save
// failures surface in the status line instead of crashing the UI.
func (m *appModel) commit(project, kind, detail string) {
	if err := m.store.Save(m.sess); err != nil {
		m.status = "Save failed: " + err.Error()
		return
	}
	_ = m.store.AppendEvent(context.Background(), project, kind, detail)
	m.lastSnapshotMod = fileModTime(m.store.SnapshotPath())
}

func (m *appModel) refreshTasks() {
	rows := m.sess.Filtered(session.Filter{})
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, taskItem{row: r})
	}
	sel := m.tasksList.Index()
	m.tasksList.SetItems(items)
	if sel >= len(items) {
		sel = len(items) - 1
	}
	if sel >= 0 {
		m.tasksList.Select(sel)
	}
}

func (m *appModel) refreshProjects() {
	selected := ""
	if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
		selected = it.name
	}

	current := m.sess.Projects.CurrentName()
	items := make([]list.Item, 0, m.sess.Projects.Len())
	for _, name := range m.sess.Projects.Names() {
		l, ok := m.sess.Projects.Get(name)
		if !ok {
			continue
		}
		items = append(items, projectItem{name: name, tasks: l.Len(), current: name == current})
	}
	m.projectsList.SetItems(items)
	if selected != "" {
		selectProjectByName(&m.projectsList, selected)
	}
}

func selectProjectByName(l *list.Model, name string) {
	for i, it := range l.Items() {
		if p, ok := it.(projectItem); ok && p.name == name {
			l.Select(i)
			return
		}
	}
}

func (m *appModel) resizeLists() {
	// Leave room for header, tabs, prompt/status and footer.
	h := m.height - 10
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.tasksList.SetSize(w, h)
	m.projectsList.SetSize(w, h)
}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

// storeChanged reports whether another process wrote the snapshot since
// we last loaded or saved it, so CLI edits in a second terminal show up.
func (m *appModel) storeChanged() bool {
	return fileModTime(m.store.SnapshotPath()).After(m.lastSnapshotMod)
}

func (m *appModel) reloadFromDisk() {
	sess, err := m.store.Load(m.sess.History.Capacity())
	if err != nil {
		m.status = "Reload failed: " + err.Error()
		return
	}
	m.sess = sess
	m.lastSnapshotMod = fileModTime(m.store.SnapshotPath())
	m.refreshTasks()
	m.refreshProjects()
}

func fileModTime(path string) time.Time {
	st, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return st.ModTime()
}

// parseTags splits a free-form tag answer on spaces and commas and
// strips any leading # the user typed.
func parseTags(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	var tags []string
	for _, f := range fields {
		f = strings.TrimPrefix(f, "#")
		if f != "" {
			tags = append(tags, f)
		}
	}
	return tags
}
