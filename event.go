package weft

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

var eventCounter atomic.Uint32

// nextEventID allocates a process-wide unique listener id.
func nextEventID() EventID {
	return EventID(eventCounter.Add(1))
}

// Event is a payload delivered by the host.
type Event interface {
	Type() string
}

// BasicEvent is an event with no payload beyond its type and target.
type BasicEvent struct {
	Name   string
	Target Node
}

func (e *BasicEvent) Type() string { return e.Name }

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Name   string // "keydown", "keyup"
	Key    string
	Target Node
	Ctrl   bool
	Alt    bool
	Shift  bool
}

func (e *KeyEvent) Type() string { return e.Name }

// MouseEvent is a pointer event.
type MouseEvent struct {
	Name   string // "click", "dblclick", ...
	Target Node
	X, Y   int
	Button int
}

func (e *MouseEvent) Type() string { return e.Name }

// InputEvent carries the current value of an editable target.
type InputEvent struct {
	Name   string // "input", "change"
	Target Node
	Value  string
}

func (e *InputEvent) Type() string { return e.Name }

// EventContext is what the dispatch walk carries down the product tree.
type EventContext struct {
	ID    EventID
	Event Event
	log   *zap.Logger
}

// Listener is the attribute-side half of an event binding: it builds a
// ListenerProduct with a fresh EventID and refreshes its callback on update.
type Listener interface {
	BuildListener(c *Ctx) ListenerProduct
	UpdateListener(c *Ctx, p ListenerProduct)
}

// ListenerProduct is a built listener.
type ListenerProduct interface {
	Triggerer
	ID() EventID
}

// cast recovers the typed payload of ev for a listener expecting E.
func cast[E Event](ev *EventContext) (E, bool) {
	e, ok := ev.Event.(E)
	if !ok && ev.log != nil {
		var want E
		ev.log.Debug("event payload type mismatch",
			zap.Uint32("event", uint32(ev.ID)),
			zap.String("got", typeName(ev.Event)),
			zap.String("want", typeName(want)))
	}
	return e, ok
}

// Callback returns a stateless listener. Its verdict is always Stop: a
// callback that does not own state has nothing to re-render.
func Callback[E Event](fn func(E)) Listener {
	return callback[E]{fn: fn}
}

type callback[E Event] struct {
	fn func(E)
}

type callbackProduct[E Event] struct {
	id EventID
	fn func(E)
}

func (cb callback[E]) BuildListener(*Ctx) ListenerProduct {
	return &callbackProduct[E]{id: nextEventID(), fn: cb.fn}
}

func (cb callback[E]) UpdateListener(_ *Ctx, p ListenerProduct) {
	cp, ok := p.(*callbackProduct[E])
	if !ok {
		panic(errorf("update", KindProduct, "%T cannot update listener %T", cb, p))
	}
	cp.fn = cb.fn
}

func (p *callbackProduct[E]) ID() EventID { return p.id }

func (p *callbackProduct[E]) Trigger(ev *EventContext) (Then, bool) {
	if ev.ID != p.id {
		return Stop, false
	}
	if e, ok := cast[E](ev); ok {
		p.fn(e)
	}
	return Stop, true
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
