package apps

import (
	"strings"
	"testing"
	"time"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

func start(t *testing.T, v weft.View) (*memhost.Host, *weft.Runtime) {
	t.Helper()
	host := memhost.New()
	rt := weft.NewRuntime(host)
	host.Bind(rt)
	if err := rt.Start(func() weft.View { return v }); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rt.Stop() })
	return host, rt
}

func button(t *testing.T, host *memhost.Host, label string) *memhost.Node {
	t.Helper()
	for _, b := range host.Root.FindTag("button") {
		if b.TextContent() == label {
			return b
		}
	}
	t.Fatalf("no button %q in %s", label, host.String())
	return nil
}

func TestCounterApp(t *testing.T) {
	host, _ := start(t, Counter())
	for _, label := range []string{"+", "+", "-", "-", "-"} {
		if err := host.Click(button(t, host, label)); err != nil {
			t.Fatal(err)
		}
	}
	text := host.Root.TextContent()
	if !strings.Contains(text, "Counter is at -1") || !strings.Contains(text, "below zero") {
		t.Errorf("expected -1 with a warning, got %q", text)
	}

	if err := host.Click(button(t, host, "reset")); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(host.Root.TextContent(), "below zero") {
		t.Error("expected the warning to go away after reset")
	}
}

func TestListApp(t *testing.T) {
	host, _ := start(t, List())
	div := host.Root.FindTag("div")[0]
	key := func(k string) {
		t.Helper()
		if err := host.Fire(div, "keydown", &weft.KeyEvent{Name: "keydown", Key: k}); err != nil {
			t.Fatal(err)
		}
	}

	key("j")
	key("j")
	key("j")
	selected := host.Root.Find(func(n *memhost.Node) bool { return n.Props[weft.PropClass] == "selected" })
	if len(selected) != 1 || selected[0].TextContent() != "gamma" {
		t.Errorf("expected gamma selected, got %v", selected)
	}

	key("d")
	key("a")
	if got := len(host.Root.FindTag("li")); got != 3 {
		t.Errorf("expected 3 items, got %d", got)
	}
	if !strings.Contains(host.Root.TextContent(), "item 1") {
		t.Errorf("expected the added item, got %q", host.Root.TextContent())
	}

	for range 3 {
		key("d")
	}
	if !strings.Contains(host.Root.TextContent(), "empty") {
		t.Errorf("expected the empty message, got %q", host.Root.TextContent())
	}
}

func TestTodoApp(t *testing.T) {
	host, _ := start(t, Todos(Todo{Text: "write tests"}))
	input := host.Root.FindTag("input")[0]

	if err := host.Input(input, "ship it"); err != nil {
		t.Fatal(err)
	}
	host.Reset()
	if err := host.Click(button(t, host, "add")); err != nil {
		t.Fatal(err)
	}
	if got := len(host.Root.FindTag("li")); got != 2 || host.Elements != 3 {
		t.Errorf("expected one new item built, got %d items and %+v", got, host.Counters)
	}
	if input.Props[weft.PropValue] != "" {
		t.Errorf("expected the draft to clear, got %v", input.Props[weft.PropValue])
	}

	boxes := host.Root.Find(func(n *memhost.Node) bool { return n.Attrs["type"] == "checkbox" })
	if len(boxes) != 2 {
		t.Fatalf("expected 2 checkboxes, got %d", len(boxes))
	}
	if err := host.Click(boxes[0]); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(host.Root.TextContent(), "1 item left") {
		t.Errorf("expected 1 item left, got %q", host.Root.TextContent())
	}

	if err := host.Click(button(t, host, "done")); err != nil {
		t.Fatal(err)
	}
	items := host.Root.FindTag("li")
	if len(items) != 1 || !strings.Contains(items[0].TextContent(), "write tests") {
		t.Errorf("expected only the done item, got %d items", len(items))
	}
}

func TestTodoDraftSkipsList(t *testing.T) {
	host, _ := start(t, Todos(Todo{Text: "a"}, Todo{Text: "b"}))
	input := host.Root.FindTag("input")[0]
	host.Reset()
	if err := host.Input(input, "x"); err != nil {
		t.Fatal(err)
	}
	if host.PropSets != 1 || host.TextSets != 0 {
		t.Errorf("expected only the input value to change, got %+v", host.Counters)
	}
}

func TestIntervalApp(t *testing.T) {
	host, rt := start(t, Interval(time.Millisecond))

	laps := func() int { return len(host.Root.FindTag("li")) }
	deadline := time.Now().Add(2 * time.Second)
	for laps() < 5 {
		if time.Now().After(deadline) {
			t.Fatalf("expected 5 laps, got %q", host.Root.TextContent())
		}
		rt.Flush()
		time.Sleep(time.Millisecond)
	}

	time.Sleep(5 * time.Millisecond)
	rt.Flush()
	if laps() != 5 {
		t.Errorf("expected the lap list to stay at 5, got %d", laps())
	}
	if !strings.Contains(host.Root.TextContent(), "ticks: ") {
		t.Errorf("expected a tick count, got %q", host.Root.TextContent())
	}
}
