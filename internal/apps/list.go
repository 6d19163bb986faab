package apps

import (
	"fmt"
	"slices"

	"github.com/kungfusheep/weft"
)

type listState struct {
	items    []string
	selected int
	next     int
}

// List is a growable list navigated with j and k. a appends an item, d
// deletes the selected one.
func List() weft.View {
	return weft.Stateful(func() listState {
		return listState{items: []string{"alpha", "beta", "gamma"}, next: 1}
	}, func(s *weft.Hook[listState]) weft.View {
		st := s.Get()
		return weft.El("div",
			weft.OnKeyDown(weft.Bind(s, listKey)),
			weft.El("h1", "List"),
			weft.El("p", weft.Class("muted"), "j/k move · a add · d delete"),
			weft.El("ul", weft.Range(len(st.items), func(i int) weft.View {
				class := ""
				if i == st.selected {
					class = "selected"
				}
				return weft.El("li", weft.Class(class), weft.Text(st.items[i]))
			})),
			weft.Either(len(st.items) == 0,
				func() weft.View { return weft.El("p", weft.Class("muted"), "empty") },
				func() weft.View {
					return weft.El("p", weft.Value(st.selected+1), " of ", weft.Value(len(st.items)))
				},
			),
		)
	})
}

func listKey(s *listState, e *weft.KeyEvent) weft.Then {
	switch e.Key {
	case "j", "down":
		if s.selected >= len(s.items)-1 {
			return weft.Stop
		}
		s.selected++
	case "k", "up":
		if s.selected == 0 {
			return weft.Stop
		}
		s.selected--
	case "a":
		s.items = append(s.items, fmt.Sprintf("item %d", s.next))
		s.next++
	case "d":
		if len(s.items) == 0 {
			return weft.Stop
		}
		s.items = slices.Delete(s.items, s.selected, s.selected+1)
		s.selected = max(min(s.selected, len(s.items)-1), 0)
	default:
		return weft.Stop
	}
	return weft.Render
}
