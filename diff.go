package weft

import (
	"strings"
	"unsafe"
)

// Diff defines how a value is compared against what was rendered before.
//
// Memo creates the data a later Diff compares against. Diff compares the
// value to memo, updates memo if they differ, and reports whether they did.
// The memo returned by Memo is always a pointer owned by the product, so
// Diff never allocates when nothing changed.
type Diff interface {
	Memo() any
	Diff(memo any) bool
}

// Cmp diffs a comparable value by equality. The memo is a copy of the last
// value.
func Cmp[T comparable](v T) CmpDiff[T] {
	return CmpDiff[T]{v: v}
}

type CmpDiff[T comparable] struct {
	v T
}

func (d CmpDiff[T]) Memo() any {
	m := new(T)
	*m = d.v
	return m
}

func (d CmpDiff[T]) Diff(memo any) bool {
	m := memo.(*T)
	if *m != d.v {
		*m = d.v
		return true
	}
	return false
}

// Str diffs a string by content. The memo is an owned copy of the last
// contents, replaced only when the contents change.
func Str(s string) StrDiff {
	return StrDiff{s: s}
}

type StrDiff struct {
	s string
}

func (d StrDiff) Memo() any {
	m := new(string)
	*m = strings.Clone(d.s)
	return m
}

func (d StrDiff) Diff(memo any) bool {
	m := memo.(*string)
	if *m != d.s {
		*m = strings.Clone(d.s)
		return true
	}
	return false
}

// StrBytes is Str for a byte slice. The caller may reuse b after the render;
// the memo keeps its own copy.
func StrBytes(b []byte) BytesDiff {
	return BytesDiff{b: b}
}

type BytesDiff struct {
	b []byte
}

func (d BytesDiff) Memo() any {
	m := new(string)
	*m = string(d.b)
	return m
}

func (d BytesDiff) Diff(memo any) bool {
	m := memo.(*string)
	if *m != string(d.b) {
		*m = string(d.b)
		return true
	}
	return false
}

// Ref diffs by identity: it reports a change only when p points somewhere
// else than last time. The memo is a raw address, so the caller must make
// sure an unrelated value is never rendered from the same address.
func Ref[T any](p *T) RefDiff[T] {
	return RefDiff[T]{p: p}
}

type RefDiff[T any] struct {
	p *T
}

// Get returns the referenced value.
func (d RefDiff[T]) Get() *T {
	return d.p
}

func (d RefDiff[T]) Memo() any {
	m := new(uintptr)
	*m = uintptr(unsafe.Pointer(d.p))
	return m
}

func (d RefDiff[T]) Diff(memo any) bool {
	m := memo.(*uintptr)
	addr := uintptr(unsafe.Pointer(d.p))
	if *m != addr {
		*m = addr
		return true
	}
	return false
}

// Always is a guard that reports a change on every render.
type Always struct{}

func (Always) Memo() any     { return nil }
func (Always) Diff(any) bool { return true }

// Never is a guard that never reports a change.
type Never struct{}

func (Never) Memo() any     { return nil }
func (Never) Diff(any) bool { return false }
