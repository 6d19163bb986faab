package termhost

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kungfusheep/weft"
)

func newTestModel(t *testing.T, render func() weft.View) (*Model, *Host, *weft.Runtime) {
	t.Helper()
	host := New(nil)
	rt := weft.NewRuntime(host)
	host.Bind(rt)
	if err := rt.Start(render); err != nil {
		t.Fatal(err)
	}
	return NewModel(host, rt, WithTitle("test")), host, rt
}

func press(m *Model, msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func twoCounters() weft.View {
	button := func(label string) weft.View {
		return weft.StatefulValue(0, func(n *weft.Hook[int]) weft.View {
			return weft.El("p", label, " ", weft.Value(n.Get()), " ",
				weft.El("button", weft.OnClick(n.Do(func(v *int) weft.Then {
					*v++
					return weft.Render
				})), "+"))
		})
	}
	return weft.El("div", button("a"), button("b"))
}

func TestModelFocusAndActivate(t *testing.T) {
	app := twoCounters()
	m, host, _ := newTestModel(t, func() weft.View { return app })

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeySpace})

	got := Snapshot(host.Root, 40)
	if got != "a 1 [ + ]\nb 2 [ + ]" {
		t.Errorf("expected a=1 b=2, got %q", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if host.Focused() != host.Focusable()[0] {
		t.Error("expected focus to wrap to the first element")
	}
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if host.Focused() != host.Focusable()[1] {
		t.Error("expected shift+tab to wrap backwards")
	}
}

func TestModelTyping(t *testing.T) {
	app := weft.StatefulValue("", func(s *weft.Hook[string]) weft.View {
		return weft.El("div",
			weft.El("input", weft.InputValue(s.Get()), weft.OnInput(weft.Bind(s, func(v *string, e *weft.InputEvent) weft.Then {
				*v = e.Value
				return weft.Render
			}))),
			weft.El("p", "echo ", weft.Text(s.Get())),
		)
	})
	m, host, _ := newTestModel(t, func() weft.View { return app })

	press(m, runes("h"), runes("i"), tea.KeyMsg{Type: tea.KeySpace}, runes("x"), tea.KeyMsg{Type: tea.KeyBackspace})
	input := host.Root.FindTag("input")[0]
	if input.Props[weft.PropValue] != "hi " {
		t.Errorf("expected the value to be 'hi ', got %q", input.Props[weft.PropValue])
	}
	if !strings.Contains(Snapshot(host.Root, 40), "echo hi") {
		t.Errorf("expected the echo to follow the input, got %q", Snapshot(host.Root, 40))
	}
	if !host.Editing() {
		t.Error("expected the input to be in editing mode")
	}
}

func TestModelKeydown(t *testing.T) {
	var keys []string
	app := weft.El("div", weft.OnKeyDown(weft.Callback(func(e *weft.KeyEvent) {
		keys = append(keys, e.Key)
	})), "list")
	m, _, _ := newTestModel(t, func() weft.View { return app })

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyCtrlD})
	want := []string{"j", "down", "ctrl+d"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, keys)
	}
}

func TestModelPostAndQuit(t *testing.T) {
	var sig weft.Signal[int]
	app := weft.StatefulValue(1, func(n *weft.Hook[int]) weft.View {
		return weft.El("p", weft.Value(n.Get()))
	}).Once(func(s weft.Signal[int]) func() {
		sig = s
		return nil
	})
	m, host, rt := newTestModel(t, func() weft.View { return app })

	done := false
	m.Update(postMsg{fn: func() {
		done = sig.Set(5) == nil
	}})
	if !done || Snapshot(host.Root, 10) != "5" {
		t.Errorf("expected the posted update to apply, got %q", Snapshot(host.Root, 10))
	}

	if !strings.Contains(m.View(), "test") {
		t.Error("expected the title in the status line")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if rt.Running() {
		t.Error("expected the runtime to be stopped")
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	err := Print(&out, func() weft.View {
		return weft.El("p", "hello ", weft.El("button", "ok"))
	}, 40)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello [ ok ]\n" {
		t.Errorf("expected the first frame, got %q", out.String())
	}
}
