package weft

import (
	"fmt"
	"io"
	"sync/atomic"
)

var verCounter atomic.Uint64

func nextVer() uint64 {
	return verCounter.Add(1)
}

// Ver wraps a value with a version tag. Every mutable access takes a fresh
// tag, so diffing a Ver is O(1) no matter how large the value is. Taking a
// mutable access without actually changing the value still counts as a
// change.
type Ver[T any] struct {
	inner T
	ver   uint64
}

// NewVer returns a versioned value.
func NewVer[T any](v T) *Ver[T] {
	return &Ver[T]{inner: v, ver: nextVer()}
}

// Get returns a copy of the value.
func (v *Ver[T]) Get() T {
	return v.inner
}

// Peek returns a pointer to the value without bumping the version. Writing
// through it is invisible to diffing.
func (v *Ver[T]) Peek() *T {
	return &v.inner
}

// Mut returns a pointer to the value and bumps the version.
func (v *Ver[T]) Mut() *T {
	v.ver = nextVer()
	return &v.inner
}

// Set replaces the value.
func (v *Ver[T]) Set(val T) {
	v.ver = nextVer()
	v.inner = val
}

// Update runs fn on the value and bumps the version.
func (v *Ver[T]) Update(fn func(*T)) {
	fn(v.Mut())
}

// Version returns the current tag.
func (v *Ver[T]) Version() uint64 {
	return v.ver
}

// Write appends to the value when it is an io.Writer (for example a
// strings.Builder or bytes.Buffer), bumping the version.
func (v *Ver[T]) Write(p []byte) (int, error) {
	w, ok := any(v.Mut()).(io.Writer)
	if !ok {
		return 0, fmt.Errorf("weft: %T is not an io.Writer", v.inner)
	}
	return w.Write(p)
}

// Fence returns a view that only updates when the version changed since the
// last render.
func (v *Ver[T]) Fence(render func() View) View {
	return Fence(v, render)
}

func (v *Ver[T]) String() string {
	return fmt.Sprint(v.inner)
}

func (v *Ver[T]) Memo() any {
	m := new(uint64)
	*m = v.ver
	return m
}

func (v *Ver[T]) Diff(memo any) bool {
	m := memo.(*uint64)
	if *m != v.ver {
		*m = v.ver
		return true
	}
	return false
}
