// Package termhost runs weft applications in a terminal.
//
// The document is a memhost tree. It is laid out into a cell buffer on every
// frame and driven by a bubbletea program: tab moves focus between elements
// that have listeners, enter presses the focused element, typing edits the
// focused input and any other key is delivered as a keydown event. Signal
// posts from other goroutines arrive as program messages.
package termhost

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

// Host is a memhost document with keyboard focus.
type Host struct {
	*memhost.Host

	focus *memhost.Node
	log   *zap.Logger
}

// New returns an empty terminal document.
func New(log *zap.Logger) *Host {
	if log == nil {
		log = weft.Logger()
	}
	return &Host{Host: memhost.New(), log: log}
}

func focusable(n *memhost.Node) bool {
	return n.Kind == memhost.KindElement && len(n.Listeners) > 0
}

// Focusable returns the attached elements that have listeners, in document
// order.
func (h *Host) Focusable() []*memhost.Node {
	return h.Root.Find(focusable)
}

// Focused returns the focused element. Focus falls back to the first
// focusable element when the focused one left the document.
func (h *Host) Focused() *memhost.Node {
	if h.focus != nil && h.focus.Attached() {
		return h.focus
	}
	h.focus = nil
	if all := h.Focusable(); len(all) > 0 {
		h.focus = all[0]
	}
	return h.focus
}

// Focus moves focus to n.
func (h *Host) Focus(n *memhost.Node) {
	h.focus = n
}

// FocusNext moves focus delta positions through the focusable elements,
// wrapping at either end.
func (h *Host) FocusNext(delta int) {
	all := h.Focusable()
	if len(all) == 0 {
		h.focus = nil
		return
	}
	cur := h.Focused()
	i := 0
	for j, n := range all {
		if n == cur {
			i = j
			break
		}
	}
	i = ((i+delta)%len(all) + len(all)) % len(all)
	h.focus = all[i]
}

// Activate clicks the focused element.
func (h *Host) Activate() error {
	n := h.Focused()
	if n == nil {
		return nil
	}
	return h.ignoreMissing(h.Click(n))
}

// Editing reports whether the focused element is a text input accepting
// typed characters.
func (h *Host) Editing() bool {
	n := h.Focused()
	if n == nil || n.Tag != "input" || n.Attrs["type"] == "checkbox" {
		return false
	}
	_, ok := n.Listeners["input"]
	return ok
}

// Type edits the focused input with key, which is either a printable
// string or "backspace", and fires an input event with the new value.
func (h *Host) Type(key string) error {
	n := h.Focused()
	value := ""
	if v, ok := n.Props[weft.PropValue]; ok {
		value = fmt.Sprint(v)
	}
	if key == "backspace" {
		if _, size := utf8.DecodeLastRuneInString(value); size > 0 {
			value = value[:len(value)-size]
		}
	} else {
		value += key
	}
	return h.Input(n, value)
}

// Key delivers a keydown event. It goes to the nearest element from the
// focused one up that listens for keydown, or to the first keydown listener
// in the document when none does. It reports whether a listener received it.
func (h *Host) Key(ev *weft.KeyEvent) (bool, error) {
	for n := h.Focused(); n != nil; n = n.Parent {
		if _, ok := n.Listeners["keydown"]; ok {
			ev.Target = n
			return true, h.Fire(n, "keydown", ev)
		}
	}
	global := h.Root.Find(func(n *memhost.Node) bool {
		_, ok := n.Listeners["keydown"]
		return ok
	})
	if len(global) == 0 {
		return false, nil
	}
	ev.Target = global[0]
	return true, h.Fire(global[0], "keydown", ev)
}

func (h *Host) ignoreMissing(err error) error {
	if errors.Is(err, memhost.ErrNoListener) {
		h.log.Debug("focused element has no click listener")
		return nil
	}
	return err
}
