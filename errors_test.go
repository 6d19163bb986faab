package weft

import (
	"errors"
	"io"
	"testing"
)

func TestErrorString(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		err := &Error{Op: "dispatch", Kind: KindCyclicUpdate, Detail: "busy", Cause: io.EOF}
		want := "weft: dispatch: cyclic_update: busy (caused by: EOF)"
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("kind only", func(t *testing.T) {
		if ErrNotRunning.Error() != "weft: not_running" {
			t.Errorf("expected bare kind, got %q", ErrNotRunning.Error())
		}
	})
}

func TestErrorIs(t *testing.T) {
	err := errorf("signal", KindCyclicUpdate, "from %s", "timer")
	if !errors.Is(err, ErrCyclicUpdate) {
		t.Error("expected errors.Is to match by kind")
	}
	if errors.Is(err, ErrNotRunning) {
		t.Error("expected different kinds not to match")
	}

	wrapped := &Error{Kind: KindShape, Cause: io.ErrUnexpectedEOF}
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestProductMismatchPanics(t *testing.T) {
	defer func() {
		v := recover()
		err, ok := v.(*Error)
		if !ok {
			t.Fatalf("expected *Error panic, got %T", v)
		}
		if err.Kind != KindProduct {
			t.Errorf("expected %s, got %s", KindProduct, err.Kind)
		}
	}()
	Text("a").Update(NewCtx(nil), &EmptyProduct{})
}
