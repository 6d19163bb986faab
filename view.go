package weft

import "go.uber.org/zap"

// View is a transient description of one piece of UI for a single render
// pass. Values are not retained after Build or Update returns.
//
// Build is called at most once per View value. Update receives a product
// built earlier by a View of the same concrete type and shape, and must only
// touch the host when something actually changed.
type View interface {
	Build(c *Ctx) Product
	Update(c *Ctx, p Product)
}

// Product is the live, mounted counterpart of a View. It owns the host
// node(s) it controls and whatever memo data later updates diff against.
type Product interface {
	// Node returns the host node to insert when mounting this product.
	Node() Node
	// Unmount detaches the product's node(s) from the host. The product
	// stays usable and can be mounted again.
	Unmount(c *Ctx)
	// ReplaceWith swaps the product's node(s) in the host for n.
	ReplaceWith(c *Ctx, n Node)
}

// Triggerer is implemented by products that contain bound listeners.
// Trigger reports whether a listener matching ev.ID was found and, if so,
// whether the tree should render again.
type Triggerer interface {
	Trigger(ev *EventContext) (Then, bool)
}

// Discarder is implemented by products that own resources which must be
// released when the product is dropped for good: hooks and Once handlers.
type Discarder interface {
	Discard()
}

// Then is the verdict of an event callback.
type Then uint8

const (
	// Stop applies the change silently.
	Stop Then = iota
	// Render re-renders the tree after the change.
	Render
)

func (t Then) String() string {
	if t == Render {
		return "render"
	}
	return "stop"
}

// Ctx carries the host surface, the owning runtime and the logger through
// build and update.
type Ctx struct {
	Host Surface
	rt   *Runtime
	log  *zap.Logger
}

// NewCtx returns a context bound to s with no runtime. Signals created under
// it apply mutations without re-rendering.
func NewCtx(s Surface) *Ctx {
	return &Ctx{Host: s, log: Logger()}
}

// Logger returns the logger of the context.
func (c *Ctx) Logger() *zap.Logger {
	if c.log == nil {
		return Logger()
	}
	return c.log
}

// Runtime returns the runtime the context belongs to, or nil.
func (c *Ctx) Runtime() *Runtime {
	return c.rt
}

func trigger(p Product, ev *EventContext) (Then, bool) {
	if t, ok := p.(Triggerer); ok {
		return t.Trigger(ev)
	}
	return Stop, false
}

func discard(p Product) {
	if d, ok := p.(Discarder); ok {
		d.Discard()
	}
}

// Func defers building a view until the tree asks for it, so a component
// function runs during build and update rather than when the parent view is
// assembled.
func Func(fn func() View) View {
	return funcView(fn)
}

type funcView func() View

func (f funcView) Build(c *Ctx) Product {
	return f().Build(c)
}

func (f funcView) Update(c *Ctx, p Product) {
	f().Update(c, p)
}

// OnMount wraps v so that fn receives the built node once, right after build.
func OnMount(v View, fn func(n Node)) View {
	return onMount{view: v, fn: fn}
}

type onMount struct {
	view View
	fn   func(Node)
}

func (m onMount) Build(c *Ctx) Product {
	p := m.view.Build(c)
	m.fn(p.Node())
	return p
}

func (m onMount) Update(c *Ctx, p Product) {
	m.view.Update(c, p)
}

// OnRender is like OnMount but fn also runs after every update.
func OnRender(v View, fn func(n Node)) View {
	return onRender{view: v, fn: fn}
}

type onRender struct {
	view View
	fn   func(Node)
}

func (r onRender) Build(c *Ctx) Product {
	p := r.view.Build(c)
	r.fn(p.Node())
	return p
}

func (r onRender) Update(c *Ctx, p Product) {
	r.view.Update(c, p)
	r.fn(p.Node())
}
