package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/idilsaglam/memtodo/internal/model"
)

// SortForDisplay returns a copy ordered by creation time, then id.
// The store itself makes no ordering promise.
func SortForDisplay(todos []model.Todo) []model.Todo {
	out := slices.Clone(todos)
	slices.SortStableFunc(out, func(a, b model.Todo) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Stats counts completed and pending todos.
func Stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Status renders the completion label with the theme's symbol and colour.
func Status(t model.Todo) string {
	th := Current()
	if t.Completed {
		return C(th.Success, th.SymDone+" "+t.Status())
	}
	return C(th.Pending, th.SymPending+" "+t.Status())
}

// Card is the multi-line view of a single todo.
func Card(t model.Todo) []string {
	th := Current()
	desc := t.Description
	if desc == "" {
		desc = C(th.Muted, "(none)")
	}
	return []string{
		C(th.Muted, "ID:          ") + C(dim, t.ID),
		C(th.Muted, "Title:       ") + C(th.Title, t.Title),
		C(th.Muted, "Description: ") + desc,
		C(th.Muted, "Status:      ") + Status(t),
	}
}

// ListLines builds the panel body for a listing: header, progress, then one
// card per todo, optionally grouped by pending/completed.
func ListLines(todos []model.Todo, group bool) []string {
	th := Current()
	todos = SortForDisplay(todos)
	d, p := Stats(todos)

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			C(th.Title, "Todos"),
			C(th.Success, th.SymDone), d,
			C(th.Pending, th.SymPending), p,
			C(th.Accent, "Total"), len(todos),
		),
		C(th.Muted, ProgressBar(d, d+p, 28)),
	}

	if !group {
		return append(lines, cards(todos)...)
	}

	var pend, done []model.Todo
	for _, t := range todos {
		if t.Completed {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	lines = append(lines, "", C(th.Accent, "Pending"))
	lines = append(lines, section(pend)...)
	lines = append(lines, "", C(th.Accent, "Completed"))
	lines = append(lines, section(done)...)
	return lines
}

func section(todos []model.Todo) []string {
	if len(todos) == 0 {
		return []string{C(Current().Muted, "(none)")}
	}
	return cards(todos)
}

func cards(todos []model.Todo) []string {
	var out []string
	for _, t := range todos {
		out = append(out, "")
		out = append(out, Card(t)...)
	}
	return out
}
