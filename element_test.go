package weft_test

import (
	"testing"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

func TestElementBuild(t *testing.T) {
	t.Run("markup", func(t *testing.T) {
		host, _ := mount(t, func() weft.View {
			return weft.El("p",
				weft.Class("greet"),
				weft.Attr("id", "hello"),
				"Hello ", weft.Text("world"),
				weft.El("b", weft.Value(3)),
			)
		})
		want := `<p id="hello" class="greet">Hello world<b>3</b></p>`
		if host.String() != want {
			t.Errorf("expected %s, got %s", want, host.String())
		}
	})

	t.Run("nil parts are skipped", func(t *testing.T) {
		host, _ := mount(t, func() weft.View {
			return weft.El("div", nil, weft.Text("x"), nil)
		})
		if host.String() != "<div>x</div>" {
			t.Errorf("expected <div>x</div>, got %s", host.String())
		}
	})

	t.Run("unsupported part panics", func(t *testing.T) {
		err := expectPanic(t, func() {
			weft.El("div", 42).Build(weft.NewCtx(memhost.New()))
		})
		if err.Kind != weft.KindShape {
			t.Errorf("expected %s, got %s", weft.KindShape, err.Kind)
		}
	})
}

func TestNoopUpdate(t *testing.T) {
	items := []string{"a", "b", "c"}
	flag := true

	host, rt := mount(t, func() weft.View {
		return weft.El("main",
			weft.Class("app"),
			weft.Attr("data-count", len(items)),
			weft.Checked(flag),
			weft.El("h1", weft.Text("title"), weft.Value(1.5)),
			weft.ForEach(items, func(s string) weft.View {
				return weft.El("li", weft.OnClick(weft.Callback(func(*weft.MouseEvent) {})), weft.Text(s))
			}),
			weft.Either(flag,
				func() weft.View { return weft.Text("on") },
				func() weft.View { return weft.El("i", "off") },
			),
			weft.StatefulValue(0, func(n *weft.Hook[int]) weft.View {
				return weft.Value(n.Get())
			}),
			weft.Fence(weft.Cmp(len(items)), func() weft.View { return weft.Value(len(items)) }),
			weft.Display(weft.Str(items[0]), func() string { return "first " + items[0] }),
		)
	})

	for range 3 {
		rerender(t, rt)
	}

	if host.Mutations() != 0 {
		t.Errorf("expected no host mutations, got %+v", host.Counters)
	}
	if host.Creates() != 0 {
		t.Errorf("expected no node creation, got %+v", host.Counters)
	}
	if rt.Stats().Renders != 3 {
		t.Errorf("expected 3 renders, got %d", rt.Stats().Renders)
	}
}

func TestElementUpdate(t *testing.T) {
	t.Run("changed text sets once", func(t *testing.T) {
		name := "ann"
		host, rt := mount(t, func() weft.View {
			return weft.El("p", "Hi ", weft.Text(name), weft.Value(len(name)))
		})

		name = "bob"
		rerender(t, rt)
		if host.TextSets != 1 {
			t.Errorf("expected 1 text set, got %d", host.TextSets)
		}
		if host.String() != "<p>Hi bob3</p>" {
			t.Errorf("expected <p>Hi bob3</p>, got %s", host.String())
		}
	})

	t.Run("changed attributes", func(t *testing.T) {
		class, id := "a", 1
		host, rt := mount(t, func() weft.View {
			return weft.El("div", weft.Class(class), weft.Attr("id", id), weft.AttrStatic("role", "list"))
		})

		class = "b"
		rerender(t, rt)
		if host.PropSets != 1 || host.AttrSets != 0 {
			t.Errorf("expected 1 property set and no attribute sets, got %+v", host.Counters)
		}

		id = 2
		rerender(t, rt)
		if host.AttrSets != 1 {
			t.Errorf("expected 1 attribute set, got %d", host.AttrSets)
		}
		if host.String() != `<div id="2" role="list" class="b"></div>` {
			t.Errorf("unexpected markup %s", host.String())
		}
	})

	t.Run("eager attribute always sets", func(t *testing.T) {
		host, rt := mount(t, func() weft.View {
			return weft.El("div", weft.AttrEager("title", "same"))
		})
		rerender(t, rt)
		rerender(t, rt)
		if host.AttrSets != 2 {
			t.Errorf("expected 2 attribute sets, got %d", host.AttrSets)
		}
	})

	t.Run("changed part count panics", func(t *testing.T) {
		c := weft.NewCtx(memhost.New())
		p := weft.El("p", weft.Text("a")).Build(c)
		err := expectPanic(t, func() {
			weft.El("p", weft.Text("a"), weft.Text("b")).Update(c, p)
		})
		if err.Kind != weft.KindShape {
			t.Errorf("expected %s, got %s", weft.KindShape, err.Kind)
		}
	})

	t.Run("changed tag panics", func(t *testing.T) {
		c := weft.NewCtx(memhost.New())
		p := weft.El("p").Build(c)
		err := expectPanic(t, func() { weft.El("div").Update(c, p) })
		if err.Kind != weft.KindShape {
			t.Errorf("expected %s, got %s", weft.KindShape, err.Kind)
		}
	})
}

func TestOnMountOnRender(t *testing.T) {
	var mounted, rendered int
	_, rt := mount(t, func() weft.View {
		return weft.El("div",
			weft.OnMount(weft.Text("a"), func(weft.Node) { mounted++ }),
			weft.OnRender(weft.Text("b"), func(weft.Node) { rendered++ }),
		)
	})
	rerender(t, rt)
	rerender(t, rt)

	if mounted != 1 {
		t.Errorf("expected OnMount to run once, got %d", mounted)
	}
	if rendered != 3 {
		t.Errorf("expected OnRender to run on build and both updates, got %d", rendered)
	}
}

func TestFunc(t *testing.T) {
	n, calls := 1, 0
	host, rt := mount(t, func() weft.View {
		return weft.El("p", weft.Func(func() weft.View {
			calls++
			return weft.Value(n)
		}))
	})
	if calls != 1 {
		t.Errorf("expected the component to run once at build, got %d", calls)
	}

	n = 2
	rerender(t, rt)
	if calls != 2 {
		t.Errorf("expected the component to run again on update, got %d", calls)
	}
	if host.String() != "<p>2</p>" || host.TextSets != 1 {
		t.Errorf("expected <p>2</p> with one text set, got %s and %d", host.String(), host.TextSets)
	}
}
