package weft

import "go.uber.org/zap"

// Hook owns one piece of persistent state for the lifetime of the Stateful
// product that created it.
//
// Render code reads the state through Get or Peek. Writes only happen inside
// listeners made with Bind or Do and through Signals, both of which run while
// the runtime holds exclusive control of the tree.
type Hook[S any] struct {
	state S
	alive bool
	rt    *Runtime
	log   *zap.Logger
}

// Get returns a copy of the state.
func (h *Hook[S]) Get() S {
	return h.state
}

// Peek returns a pointer to the state for reading without a copy. Writing
// through it bypasses the runtime and will not trigger a render.
func (h *Hook[S]) Peek() *S {
	return &h.state
}

// Alive reports whether the owning product is still part of the tree.
func (h *Hook[S]) Alive() bool {
	return h.alive
}

// HookValue renders the current state of h as text.
func HookValue[S Primitive](h *Hook[S]) View {
	return Value(h.state)
}

// Signal returns an owned handle to the state usable outside the render
// cycle.
func (h *Hook[S]) Signal() Signal[S] {
	return Signal[S]{hook: h}
}

// Do binds fn to the state as a listener accepting any event.
//
//	weft.OnClick(count.Do(func(n *int) weft.Then {
//		*n++
//		return weft.Render
//	}))
func (h *Hook[S]) Do(fn func(*S) Then) Listener {
	return Bind(h, func(s *S, _ Event) Then { return fn(s) })
}

// Bind returns a listener that receives mutable access to the state of h and
// the event payload cast to E for the duration of the callback.
func Bind[S any, E Event](h *Hook[S], fn func(*S, E) Then) Listener {
	return bound[S, E]{hook: h, fn: fn}
}

type bound[S any, E Event] struct {
	hook *Hook[S]
	fn   func(*S, E) Then
}

type boundProduct[S any, E Event] struct {
	id   EventID
	hook *Hook[S]
	fn   func(*S, E) Then
}

func (b bound[S, E]) BuildListener(*Ctx) ListenerProduct {
	return &boundProduct[S, E]{id: nextEventID(), hook: b.hook, fn: b.fn}
}

func (b bound[S, E]) UpdateListener(_ *Ctx, p ListenerProduct) {
	bp, ok := p.(*boundProduct[S, E])
	if !ok {
		panic(errorf("update", KindProduct, "%T cannot update listener %T", b, p))
	}
	bp.hook = b.hook
	bp.fn = b.fn
}

func (p *boundProduct[S, E]) ID() EventID { return p.id }

func (p *boundProduct[S, E]) Trigger(ev *EventContext) (Then, bool) {
	if ev.ID != p.id {
		return Stop, false
	}
	e, ok := cast[E](ev)
	if !ok || !p.hook.alive {
		return Stop, true
	}
	return p.fn(&p.hook.state, e), true
}

// StatefulView is a view that owns state. The state is created once when the
// view is first built; later renders of the same slot reuse it.
type StatefulView[S any] struct {
	init   func() S
	render func(*Hook[S]) View
	once   func(Signal[S]) func()
}

// Stateful creates a view owning the state returned by init, rendered by
// render on every pass.
//
//	weft.Stateful(func() int { return 0 }, func(count *weft.Hook[int]) weft.View {
//		return weft.El("p",
//			weft.Value(count.Get()),
//			weft.El("button", weft.OnClick(count.Do(inc)), "+"),
//		)
//	})
func Stateful[S any](init func() S, render func(*Hook[S]) View) StatefulView[S] {
	return StatefulView[S]{init: init, render: render}
}

// StatefulValue is Stateful with a fixed initial value.
func StatefulValue[S any](v S, render func(*Hook[S]) View) StatefulView[S] {
	return Stateful(func() S { return v }, render)
}

// Once runs fn a single time right after the view is built, handing it a
// Signal to the state. The returned stop function, if not nil, runs when the
// product is discarded; use it to stop timers started by fn.
func (v StatefulView[S]) Once(fn func(Signal[S]) (stop func())) StatefulView[S] {
	v.once = fn
	return v
}

// StatefulProduct holds the hook and the product of the rendered view.
type StatefulProduct[S any] struct {
	hook  *Hook[S]
	inner Product
	stop  func()
}

// Hook returns the hook owned by the product.
func (p *StatefulProduct[S]) Hook() *Hook[S] {
	return p.hook
}

func (v StatefulView[S]) Build(c *Ctx) Product {
	h := &Hook[S]{state: v.init(), alive: true, rt: c.rt, log: c.Logger()}
	p := &StatefulProduct[S]{hook: h, inner: v.render(h).Build(c)}
	if v.once != nil {
		p.stop = v.once(h.Signal())
	}
	return p
}

func (v StatefulView[S]) Update(c *Ctx, p Product) {
	sp, ok := p.(*StatefulProduct[S])
	if !ok {
		productMismatch(v, p)
	}
	v.render(sp.hook).Update(c, sp.inner)
}

func (p *StatefulProduct[S]) Node() Node                 { return p.inner.Node() }
func (p *StatefulProduct[S]) Unmount(c *Ctx)             { p.inner.Unmount(c) }
func (p *StatefulProduct[S]) ReplaceWith(c *Ctx, n Node) { p.inner.ReplaceWith(c, n) }

func (p *StatefulProduct[S]) Trigger(ev *EventContext) (Then, bool) {
	return trigger(p.inner, ev)
}

// Discard marks the hook dead, stops the Once handler and discards the
// inner product. Signals to the hook are no-ops from here on.
func (p *StatefulProduct[S]) Discard() {
	if !p.hook.alive {
		return
	}
	p.hook.alive = false
	if p.stop != nil {
		p.stop()
	}
	discard(p.inner)
}

// Signal is an owned handle to a Hook's state, for code running outside the
// render cycle: timers, network callbacks, other goroutines via Post.
//
// Updating a Signal whose product has been discarded is a no-op.
type Signal[S any] struct {
	hook *Hook[S]
}

// Alive reports whether the state behind the signal still exists.
func (s Signal[S]) Alive() bool {
	return s.hook != nil && s.hook.alive
}

// Update runs fn with mutable access to the state and re-renders when it
// returns Render. It must be called on the goroutine driving the runtime;
// use Post from anywhere else. It fails with ErrCyclicUpdate when called
// from inside another update.
func (s Signal[S]) Update(fn func(*S) Then) error {
	h := s.hook
	if h == nil || !h.alive {
		return nil
	}
	if h.rt == nil {
		fn(&h.state)
		return nil
	}
	return h.rt.lockUpdate("signal", func() Then {
		if !h.alive {
			return Stop
		}
		return fn(&h.state)
	})
}

// UpdateSilent is Update that never re-renders.
func (s Signal[S]) UpdateSilent(fn func(*S)) error {
	return s.Update(func(st *S) Then {
		fn(st)
		return Stop
	})
}

// Set replaces the state and re-renders.
func (s Signal[S]) Set(v S) error {
	return s.Update(func(st *S) Then {
		*st = v
		return Render
	})
}

// Post schedules Update onto the goroutine driving the runtime. It is safe to
// call from any goroutine, provided the hook belongs to a runtime. State
// built under a bare NewCtx has no driving goroutine: Post then applies fn
// at once and may only be called from the goroutine that owns the hook.
func (s Signal[S]) Post(fn func(*S) Then) {
	h := s.hook
	if h == nil {
		return
	}
	if h.rt == nil {
		_ = s.Update(fn)
		return
	}
	h.rt.Post(func() {
		if err := s.Update(fn); err != nil {
			h.log.Warn("posted signal update rejected", zap.Error(err))
		}
	})
}
