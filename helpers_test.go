package weft_test

import (
	"errors"
	"testing"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

// mount starts a runtime on a fresh memhost document and zeroes the host
// counters, so tests only see what happens after the initial build.
func mount(t *testing.T, render func() weft.View, opts ...weft.Option) (*memhost.Host, *weft.Runtime) {
	t.Helper()
	host := memhost.New()
	rt := weft.NewRuntime(host, opts...)
	host.Bind(rt)
	if err := rt.Start(render); err != nil {
		t.Fatalf("start: %v", err)
	}
	host.Reset()
	return host, rt
}

func rerender(t *testing.T, rt *weft.Runtime) {
	t.Helper()
	if err := rt.Render(); err != nil {
		t.Fatalf("render: %v", err)
	}
}

// expectPanic runs fn and returns the *weft.Error it panicked with.
func expectPanic(t *testing.T, fn func()) (err *weft.Error) {
	t.Helper()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected a panic")
		}
		e, ok := v.(*weft.Error)
		if !ok {
			t.Fatalf("expected *weft.Error panic, got %T: %v", v, v)
		}
		err = e
	}()
	fn()
	return nil
}

func isKind(err error, kind weft.Kind) bool {
	return errors.Is(err, &weft.Error{Kind: kind})
}
