package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/memtodo/internal/store"
	"github.com/idilsaglam/memtodo/internal/ui"
)

const (
	choiceCreate = iota + 1
	choiceList
	choiceGet
	choiceUpdate
	choiceComplete
	choiceDelete
	choiceExit
)

// Menu is the numbered console loop.
type Menu struct {
	store store.TodoStore
	in    *bufio.Reader
	out   io.Writer
	group bool

	readErr error // set when input fails for a reason other than EOF
}

// NewMenu wires a menu to a store and a pair of streams.
func NewMenu(st store.TodoStore, in io.Reader, out io.Writer, group bool) *Menu {
	return &Menu{
		store: st,
		in:    bufio.NewReader(in),
		out:   out,
		group: group,
	}
}

// Run loops until the user picks Exit or input ends. Returns an exit code.
func (m *Menu) Run() int {
	for {
		m.printMenu()
		choice, ok := m.readInt("Enter your choice: ")
		if !ok {
			return m.endOfInput()
		}

		var more bool
		switch choice {
		case choiceCreate:
			more = m.create()
		case choiceList:
			m.list()
			more = true
		case choiceGet:
			more = m.get()
		case choiceUpdate:
			more = m.update()
		case choiceComplete:
			more = m.complete()
		case choiceDelete:
			more = m.delete()
		case choiceExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return 0
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			more = true
		}
		if !more {
			return m.endOfInput()
		}
	}
}

func (m *Menu) printMenu() {
	th := ui.Current()
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ui.C(th.Title, "=== Todo List Application ==="))
	fmt.Fprintln(m.out, "1. Create new todo")
	fmt.Fprintln(m.out, "2. List all todos")
	fmt.Fprintln(m.out, "3. Get todo by ID")
	fmt.Fprintln(m.out, "4. Update todo")
	fmt.Fprintln(m.out, "5. Mark todo as completed")
	fmt.Fprintln(m.out, "6. Delete todo")
	fmt.Fprintln(m.out, "7. Exit")
}

func (m *Menu) heading(s string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, ui.C(ui.Current().Accent, "=== "+s+" ==="))
}

// -------------- actions ----------------
// Each returns false when input ran out mid-prompt.

func (m *Menu) create() bool {
	m.heading("Create New Todo")
	title, ok := m.readLine("Enter title: ")
	if !ok {
		return false
	}
	desc, ok := m.readLine("Enter description: ")
	if !ok {
		return false
	}

	todo, err := m.store.Create(title, desc)
	if err != nil {
		ui.Fail(m.out, "Error: "+err.Error())
		return true
	}
	ui.OK(m.out, "Todo created successfully with ID: "+todo.ID)
	return true
}

func (m *Menu) list() {
	m.heading("All Todos")
	todos := m.store.List()
	if len(todos) == 0 {
		fmt.Fprintln(m.out, ui.C(ui.Current().Muted, "No todos found."))
		return
	}
	ui.Panel(m.out, ui.ListLines(todos, m.group))
}

func (m *Menu) get() bool {
	m.heading("Get Todo by ID")
	id, ok := m.readLine("Enter todo ID: ")
	if !ok {
		return false
	}

	todo, found := m.store.Get(id)
	if !found {
		m.notFound(id)
		return true
	}
	ui.Panel(m.out, ui.Card(todo))
	return true
}

func (m *Menu) update() bool {
	m.heading("Update Todo")
	id, ok := m.readLine("Enter todo ID: ")
	if !ok {
		return false
	}
	title, ok := m.readLine("Enter new title: ")
	if !ok {
		return false
	}
	desc, ok := m.readLine("Enter new description: ")
	if !ok {
		return false
	}

	updated, err := m.store.Update(id, title, desc)
	switch {
	case err != nil:
		ui.Fail(m.out, "Error: "+err.Error())
	case updated:
		ui.OK(m.out, "Todo updated successfully")
	default:
		m.notFound(id)
	}
	return true
}

func (m *Menu) complete() bool {
	m.heading("Mark Todo as Completed")
	id, ok := m.readLine("Enter todo ID: ")
	if !ok {
		return false
	}
	if m.store.Complete(id) {
		ui.OK(m.out, "Todo marked as completed")
	} else {
		m.notFound(id)
	}
	return true
}

func (m *Menu) delete() bool {
	m.heading("Delete Todo")
	id, ok := m.readLine("Enter todo ID: ")
	if !ok {
		return false
	}
	if m.store.Delete(id) {
		ui.OK(m.out, "Todo deleted successfully")
	} else {
		m.notFound(id)
	}
	return true
}

func (m *Menu) notFound(id string) {
	ui.Fail(m.out, "Todo not found with ID: "+id)
}

// -------------- input helpers --------------

// readLine reads one line of any length. A final line without a newline
// still counts.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.readErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

// readInt re-prompts until a number is entered.
func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		s, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n, true
		}
		fmt.Fprintln(m.out, "Please enter a valid number.")
	}
}

func (m *Menu) endOfInput() int {
	if err := m.readErr; err != nil {
		fmt.Fprintln(m.out)
		ui.Fail(m.out, "read input: "+err.Error())
		return 1
	}
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Goodbye!")
	return 0
}
