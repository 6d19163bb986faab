package weft_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kungfusheep/weft"
)

func texts(items []string) func() weft.View {
	return func() weft.View {
		return weft.ForEach(items, func(s string) weft.View { return weft.Text(s) })
	}
}

func TestListLengthConvergence(t *testing.T) {
	cases := []struct{ from, to int }{
		{0, 0}, {0, 5}, {5, 0}, {3, 3}, {3, 7}, {7, 3}, {15, 17}, {40, 1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d to %d", tc.from, tc.to), func(t *testing.T) {
			n := tc.from
			host, rt := mount(t, func() weft.View {
				return weft.Range(n, func(i int) weft.View { return weft.Value(i) })
			})

			n = tc.to
			rerender(t, rt)

			lp := rt.Root().(*weft.ListProduct)
			if lp.Mounted() != tc.to {
				t.Errorf("expected %d mounted, got %d", tc.to, lp.Mounted())
			}
			if lp.Len() != max(tc.from, tc.to) {
				t.Errorf("expected %d stored, got %d", max(tc.from, tc.to), lp.Len())
			}
			if host.Texts != max(0, tc.to-tc.from) {
				t.Errorf("expected %d builds, got %d", max(0, tc.to-tc.from), host.Texts)
			}
			if host.Removes != max(0, tc.from-tc.to) {
				t.Errorf("expected %d unmounts, got %d", max(0, tc.from-tc.to), host.Removes)
			}
			if got := len(host.Root.Children[0].Flat()); got != tc.to {
				t.Errorf("expected %d attached nodes, got %d", tc.to, got)
			}
		})
	}
}

func TestListShrinkAndRegrow(t *testing.T) {
	items := []string{"a", "b", "c"}
	host, rt := mount(t, func() weft.View { return texts(items)() })
	lp := rt.Root().(*weft.ListProduct)
	third := lp.At(2)

	items = []string{"a", "x"}
	rerender(t, rt)
	if host.String() != "ax" {
		t.Errorf("expected ax, got %s", host.String())
	}
	if lp.Len() != 3 || lp.Mounted() != 2 {
		t.Errorf("expected 3 stored and 2 mounted, got %d and %d", lp.Len(), lp.Mounted())
	}
	if host.TextSets != 1 || host.Removes != 1 || host.Texts != 0 {
		t.Errorf("expected one text set and one unmount, got %+v", host.Counters)
	}

	items = []string{"a", "x", "y", "z"}
	host.Reset()
	rerender(t, rt)
	if host.String() != "axyz" {
		t.Errorf("expected axyz, got %s", host.String())
	}
	if lp.At(2) != third {
		t.Error("expected position 2 to reuse the retained product")
	}
	if host.Texts != 1 {
		t.Errorf("expected exactly one new build, got %d", host.Texts)
	}
	if host.TextSets != 1 {
		t.Errorf("expected the retained product to be updated once, got %d", host.TextSets)
	}
	if lp.Len() != 4 || lp.Mounted() != 4 {
		t.Errorf("expected 4 stored and 4 mounted, got %d and %d", lp.Len(), lp.Mounted())
	}
}

func TestListRetainsState(t *testing.T) {
	n := 3
	host, rt := mount(t, func() weft.View {
		return weft.El("ul", weft.Range(n, func(i int) weft.View {
			return weft.StatefulValue(i*10, func(h *weft.Hook[int]) weft.View {
				return weft.El("li", weft.OnClick(h.Do(func(v *int) weft.Then {
					*v++
					return weft.Render
				})), weft.Value(h.Get()))
			})
		}))
	})

	last := host.Root.FindTag("li")[2]
	if err := host.Click(last); err != nil {
		t.Fatal(err)
	}

	n = 1
	rerender(t, rt)
	if err := host.Click(last); err != nil {
		t.Fatal(err)
	}
	if rt.Stats().Unhandled != 1 {
		t.Errorf("expected the detached listener to be skipped, got %+v", rt.Stats())
	}

	n = 3
	rerender(t, rt)
	var got []string
	for _, li := range host.Root.FindTag("li") {
		got = append(got, li.TextContent())
	}
	if diff := cmp.Diff([]string{"0", "10", "21"}, got); diff != "" {
		t.Errorf("unexpected items after regrow (-want +got):\n%s", diff)
	}
}

func TestListEvents(t *testing.T) {
	var clicked []string
	items := []string{"a", "b", "c"}
	host, _ := mount(t, func() weft.View {
		return weft.ForEach(items, func(s string) weft.View {
			return weft.El("button", weft.OnClick(weft.Callback(func(*weft.MouseEvent) {
				clicked = append(clicked, s)
			})), s)
		})
	})

	buttons := host.Root.FindTag("button")
	for _, i := range []int{1, 2, 0} {
		if err := host.Click(buttons[i]); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"b", "c", "a"}, clicked); diff != "" {
		t.Errorf("unexpected clicks (-want +got):\n%s", diff)
	}
}
