// Package tui is the interactive Bubble Tea front end. Every change goes
// straight to the store; the list is rebuilt from store.List afterwards.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/memtodo/internal/model"
	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/ui"
)

// Options tune the interactive list.
type Options struct {
	Group bool // pending first, then completed
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return i.todo.Description }
func (i listItem) FilterValue() string { return i.todo.Title + " " + i.todo.Description }

// itemDelegate renders one todo per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	th := ui.Current()

	box := ui.MutedStyle.Render(th.BoxUnchecked)
	text := it.todo.Title
	if r := []rune(text); len(r) > 80 {
		text = string(r[:77]) + "..."
	}
	if it.todo.Completed {
		box = ui.SuccessStyle.Render(th.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}
	if it.todo.Description != "" {
		text += ui.MutedStyle.Render("  " + it.todo.Description)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	store store.TodoStore
	group bool

	list list.Model

	// add / edit form
	mode   mode
	editID string
	inputs [2]textinput.Model // title, description
	focus  int
	err    string

	width, height int
}

var (
	addKey      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editKey     = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	completeKey = key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c/space", "complete"))
	deleteKey   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

// New builds the model and loads the current todos.
func New(st store.TodoStore, opts Options) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{addKey, editKey, completeKey, deleteKey}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{
		store:  st,
		group:  opts.Group,
		list:   l,
		width:  80,
		height: 24,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		// no limit, so editing never shortens a stored value
		ti.CharLimit = 0
		m.inputs[i] = ti
	}
	m.inputs[0].Placeholder = "Title"
	m.inputs[1].Placeholder = "Description (optional)"

	m.refresh("")
	m.resize()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(st store.TodoStore, opts Options) error {
	p := tea.NewProgram(New(st, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.mode != modeBrowse {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	// while the filter prompt is open every key belongs to it
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch km.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			return m, nil
		}
		return m, tea.Quit
	}

	switch {
	case key.Matches(km, addKey):
		return m.openForm(modeAdd, model.Todo{}), textinput.Blink
	case key.Matches(km, editKey):
		if t, ok := m.selected(); ok {
			return m.openForm(modeEdit, t), textinput.Blink
		}
		return m, nil
	case key.Matches(km, completeKey):
		if t, ok := m.selected(); ok {
			status := "completed"
			if !m.store.Complete(t.ID) {
				status = "todo no longer exists"
			}
			cmd := m.refresh(status)
			return m, cmd
		}
		return m, nil
	case key.Matches(km, deleteKey):
		if t, ok := m.selected(); ok {
			status := "deleted"
			if !m.store.Delete(t.ID) {
				status = "todo no longer exists"
			}
			cmd := m.refresh(status)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m.closeForm(), nil
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			cmd := m.inputs[m.focus].Focus()
			return m, cmd
		case "enter":
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[0].Value())
	desc := strings.TrimSpace(m.inputs[1].Value())

	switch m.mode {
	case modeAdd:
		if _, err := m.store.Create(title, desc); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m = m.closeForm()
		cmd := m.refresh("added")
		return m, cmd

	case modeEdit:
		ok, err := m.store.Update(m.editID, title, desc)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m = m.closeForm()
		status := "updated"
		if !ok {
			status = "todo no longer exists"
		}
		cmd := m.refresh(status)
		return m, cmd
	}
	return m.closeForm(), nil
}

func (m Model) openForm(md mode, t model.Todo) Model {
	m.mode = md
	m.editID = t.ID
	m.err = ""
	m.inputs[0].SetValue(t.Title)
	m.inputs[1].SetValue(t.Description)
	m.inputs[0].CursorEnd()
	m.inputs[1].CursorEnd()
	m.inputs[1].Blur()
	m.focus = 0
	m.inputs[0].Focus()
	m.resize()
	return m
}

func (m Model) closeForm() Model {
	m.mode = modeBrowse
	m.editID = ""
	m.err = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.resize()
	return m
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

// refresh reloads items from the store, keeping the cursor in range.
func (m *Model) refresh(status string) tea.Cmd {
	todos := ui.SortForDisplay(m.store.List())
	if m.group {
		var pend, done []model.Todo
		for _, t := range todos {
			if t.Completed {
				done = append(done, t)
			} else {
				pend = append(pend, t)
			}
		}
		todos = append(pend, done...)
	}

	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, listItem{todo: t})
	}
	cmds := []tea.Cmd{m.list.SetItems(items)}
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}

	d, p := ui.Stats(todos)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Todos"),
		ui.SuccessStyle.Render(ui.Current().SymDone), d,
		ui.PendingStyle.Render(ui.Current().SymPending), p,
		ui.AccentStyle.Render("Total"), len(todos),
	)

	if status != "" {
		cmds = append(cmds, m.list.NewStatusMessage(status))
	}
	return tea.Batch(cmds...)
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != modeBrowse {
		h -= 5
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.list.SetSize(w, h)
	for i := range m.inputs {
		m.inputs[i].Width = w - 6
	}
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != modeBrowse {
		heading := "Add todo"
		if m.mode == modeEdit {
			heading = "Edit todo"
		}
		if m.err != "" {
			heading += "  " + ui.ErrorStyle.Render(m.err)
		}
		form := heading + "\n" + m.inputs[0].View() + "\n" + m.inputs[1].View()
		content += "\n" + ui.FrameStyle.Render(form)
	}
	return ui.FrameStyle.Render(content)
}
