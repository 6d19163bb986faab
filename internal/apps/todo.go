package apps

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kungfusheep/weft"
)

// Filter selects which todos are shown.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

var filterNames = []string{"all", "active", "done"}

// Todo is one item of the list.
type Todo struct {
	Text string
	Done bool
}

type todoState struct {
	todos  *weft.Ver[[]Todo]
	draft  string
	filter Filter
}

// Todos is a todo list with an input, per-item checkboxes and a filter.
// The items are versioned so the list only re-renders after a change to
// them, not on every keystroke in the input.
func Todos(initial ...Todo) weft.View {
	return weft.Stateful(func() todoState {
		return todoState{todos: weft.NewVer(slices.Clone(initial))}
	}, func(s *weft.Hook[todoState]) weft.View {
		st := s.Peek()
		return weft.El("div",
			weft.El("h1", "Todo"),
			weft.El("p",
				weft.El("input", weft.InputValue(st.draft), weft.OnInput(weft.Bind(s, setDraft))),
				" ",
				weft.El("button", weft.OnClick(s.Do(addTodo)), "add"),
			),
			st.todos.Fence(func() weft.View { return todoList(s) }),
			weft.El("p",
				weft.Display(st.todos, func() string { return remaining(st.todos.Get()) }),
				" · ",
				weft.Range(len(filterNames), func(i int) weft.View { return filterButton(s, Filter(i)) }),
			),
		)
	})
}

func setDraft(s *todoState, e *weft.InputEvent) weft.Then {
	s.draft = e.Value
	return weft.Render
}

func addTodo(s *todoState) weft.Then {
	text := strings.TrimSpace(s.draft)
	if text == "" {
		return weft.Stop
	}
	s.todos.Update(func(t *[]Todo) { *t = append(*t, Todo{Text: text}) })
	s.draft = ""
	return weft.Render
}

func todoList(s *weft.Hook[todoState]) weft.View {
	st := s.Peek()
	todos := st.todos.Get()
	return weft.El("ul", weft.Range(len(todos), func(i int) weft.View {
		todo := todos[i]
		return weft.When(visible(st.filter, todo), func() weft.View {
			class := ""
			if todo.Done {
				class = "done"
			}
			return weft.El("li",
				weft.El("input",
					weft.AttrStatic("type", "checkbox"),
					weft.Checked(todo.Done),
					weft.OnClick(s.Do(func(s *todoState) weft.Then {
						s.todos.Update(func(t *[]Todo) { (*t)[i].Done = !(*t)[i].Done })
						return weft.Render
					})),
				),
				" ",
				weft.El("span", weft.Class(class), weft.Text(todo.Text)),
			)
		})
	}))
}

func visible(f Filter, t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterDone:
		return t.Done
	}
	return true
}

func filterButton(s *weft.Hook[todoState], f Filter) weft.View {
	class := ""
	if s.Peek().filter == f {
		class = "selected"
	}
	return weft.El("button", weft.Class(class), weft.OnClick(s.Do(func(st *todoState) weft.Then {
		if st.filter == f {
			return weft.Stop
		}
		st.filter = f
		// The fenced list depends on the filter too.
		st.todos.Mut()
		return weft.Render
	})), filterNames[f])
}

func remaining(todos []Todo) string {
	n := 0
	for _, t := range todos {
		if !t.Done {
			n++
		}
	}
	if n == 1 {
		return "1 item left"
	}
	return strconv.Itoa(n) + " items left"
}
