package weft

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type runState uint8

const (
	stateIdle runState = iota
	stateRunning
	stateStopped
	stateCrashed
)

// root is the mounted tree together with the render function that
// recomputes it.
type root struct {
	product Product
	render  func() View
}

// Stats are counters kept by a Runtime.
type Stats struct {
	Renders    uint64 // whole-tree updates
	Dispatches uint64 // events that reached a listener
	Unhandled  uint64 // events no listener matched
	Rejected   uint64 // cyclic updates refused
}

// Runtime holds exactly one mounted tree and the render function that
// recomputes it.
//
// A Runtime is confined to the goroutine that drives it: Start, Dispatch,
// Render, Flush, Stop and Signal.Update must all be called from there. Other
// goroutines hand work over with Post.
//
// While an update is in flight the tree is taken out of its slot. A second
// update arriving in that window finds the slot empty and is rejected with
// ErrCyclicUpdate, which is what keeps mutable access to state exclusive.
type Runtime struct {
	host     Surface
	ctx      *Ctx
	log      *zap.Logger
	strict   bool
	schedule func(func())
	queue    chan func()
	done     chan struct{}
	halt     sync.Once

	state runState
	slot  *root
	stats Stats
}

// NewRuntime returns a runtime rendering to s. It does nothing until Start.
func NewRuntime(s Surface, opts ...Option) *Runtime {
	cfg := config{queueSize: defaultQueueSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = Logger()
	}

	rt := &Runtime{
		host:     s,
		log:      cfg.log,
		strict:   cfg.strict,
		schedule: cfg.schedule,
		queue:    make(chan func(), cfg.queueSize),
		done:     make(chan struct{}),
	}
	rt.ctx = &Ctx{Host: s, rt: rt, log: cfg.log}
	return rt
}

// Host returns the surface the runtime renders to.
func (rt *Runtime) Host() Surface {
	return rt.host
}

// Running reports whether the runtime has a mounted tree.
func (rt *Runtime) Running() bool {
	return rt.state == stateRunning
}

// Stats returns a copy of the runtime counters.
func (rt *Runtime) Stats() Stats {
	return rt.stats
}

// Root returns the mounted root product, or nil while an update is in
// flight or before Start.
func (rt *Runtime) Root() Product {
	if rt.slot == nil {
		return nil
	}
	return rt.slot.product
}

// Start builds the view returned by render and mounts it at the document
// root. Calling Start on a running runtime does nothing.
func (rt *Runtime) Start(render func() View) error {
	switch rt.state {
	case stateRunning:
		return nil
	case stateStopped, stateCrashed:
		return ErrNotRunning
	}
	rt.state = stateRunning

	start := time.Now()
	p := rt.guard("start", func() Product {
		return render().Build(rt.ctx)
	})
	rt.host.MountRoot(p.Node())
	rt.slot = &root{product: p, render: render}

	rt.log.Debug("runtime started", zap.Duration("build", time.Since(start)))
	return nil
}

// Dispatch routes an event fired by the host to the listener registered
// under id, and re-renders the tree if the listener asks for it. An id no
// mounted listener owns is ignored.
func (rt *Runtime) Dispatch(id EventID, ev Event) error {
	r, err := rt.take("dispatch")
	if err != nil {
		return err
	}
	defer rt.put(r)

	ctx := &EventContext{ID: id, Event: ev, log: rt.log}
	then, found := rt.guardThen("dispatch", func() (Then, bool) {
		return trigger(r.product, ctx)
	})
	if !found {
		rt.stats.Unhandled++
		rt.log.Debug("no listener for event", zap.Uint32("event", uint32(id)))
		return nil
	}
	rt.stats.Dispatches++

	if then == Render {
		rt.update(r)
	}
	return nil
}

// Render forces a whole-tree update.
func (rt *Runtime) Render() error {
	return rt.lockUpdate("render", func() Then { return Render })
}

// lockUpdate runs fn with exclusive control of the tree and re-renders when
// fn returns Render.
func (rt *Runtime) lockUpdate(op string, fn func() Then) error {
	r, err := rt.take(op)
	if err != nil {
		return err
	}
	defer rt.put(r)

	var then Then
	rt.guard(op, func() Product {
		then = fn()
		return nil
	})
	if then == Render {
		rt.update(r)
	}
	return nil
}

func (rt *Runtime) update(r *root) {
	start := time.Now()
	rt.guard("update", func() Product {
		r.render().Update(rt.ctx, r.product)
		return nil
	})
	rt.stats.Renders++
	rt.log.Debug("tree updated", zap.Duration("took", time.Since(start)))
}

// take moves the tree out of its slot. An empty slot on a running runtime
// means an update is already in flight.
func (rt *Runtime) take(op string) (*root, error) {
	switch rt.state {
	case stateIdle, stateStopped:
		return nil, ErrNotRunning
	case stateCrashed:
		return nil, errorf(op, KindCrashed, "a previous render panicked")
	}

	r := rt.slot
	if r == nil {
		rt.stats.Rejected++
		rt.log.Warn("cyclic update detected", zap.String("op", op))
		if rt.strict {
			panic(errorf(op, KindCyclicUpdate, "update requested from inside another update"))
		}
		return nil, ErrCyclicUpdate
	}
	rt.slot = nil
	return r, nil
}

func (rt *Runtime) put(r *root) {
	if rt.state == stateRunning {
		rt.slot = r
	}
}

// guard runs fn and marks the runtime crashed if it panics. The panic is not
// recovered: a tree whose render panicked is in an unspecified state.
func (rt *Runtime) guard(op string, fn func() Product) Product {
	defer func() {
		if v := recover(); v != nil {
			rt.state = stateCrashed
			rt.shutdown()
			rt.log.Error("render panicked", zap.String("op", op), zap.Any("panic", v))
			panic(v)
		}
	}()
	return fn()
}

func (rt *Runtime) guardThen(op string, fn func() (Then, bool)) (then Then, found bool) {
	rt.guard(op, func() Product {
		then, found = fn()
		return nil
	})
	return then, found
}

// Post schedules fn to run on the goroutine driving the runtime. It is safe
// to call from any goroutine. Without a scheduler, fn waits in the queue
// until Flush; Post blocks while the queue is full. Once the runtime has
// stopped or crashed, fn is dropped and Post returns at once.
func (rt *Runtime) Post(fn func()) {
	select {
	case <-rt.done:
		return
	default:
	}
	if rt.schedule != nil {
		rt.schedule(fn)
		return
	}
	select {
	case rt.queue <- fn:
	case <-rt.done:
	}
}

// Done returns a channel closed when the runtime stops or crashes.
func (rt *Runtime) Done() <-chan struct{} {
	return rt.done
}

func (rt *Runtime) shutdown() {
	rt.halt.Do(func() { close(rt.done) })
}

// Queue exposes the posted work queue, for hosts that select on it in their
// event loop. Each received function must be called on the driving
// goroutine.
func (rt *Runtime) Queue() <-chan func() {
	return rt.queue
}

// Flush runs all queued work and returns how many functions ran.
func (rt *Runtime) Flush() int {
	n := 0
	for {
		select {
		case fn := <-rt.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Stop unmounts and discards the tree. Signals to state inside it become
// no-ops, Once handlers are stopped, and the runtime cannot be started
// again.
func (rt *Runtime) Stop() error {
	r, err := rt.take("stop")
	if err != nil {
		return err
	}
	rt.state = stateStopped
	rt.shutdown()
	r.product.Unmount(rt.ctx)
	discard(r.product)
	rt.log.Debug("runtime stopped")
	return nil
}

var (
	defaultMu      sync.Mutex
	defaultRuntime *Runtime
)

// Start creates the process-wide default runtime on s and starts it with
// render. Later calls return the same runtime and do nothing else.
func Start(s Surface, render func() View, opts ...Option) (*Runtime, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRuntime != nil {
		return defaultRuntime, nil
	}
	defaultRuntime = NewRuntime(s, opts...)
	return defaultRuntime, defaultRuntime.Start(render)
}

// Default returns the runtime created by Start, or nil.
func Default() *Runtime {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRuntime
}
