package weft

import (
	"reflect"
	"strconv"
)

// Primitive is the set of value types rendered directly as text.
type Primitive interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

func format[T Primitive](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}

// leaf is embedded by products that control exactly one host node.
type leaf struct {
	node Node
}

func (l *leaf) Node() Node {
	return l.node
}

func (l *leaf) Unmount(c *Ctx) {
	c.Host.Remove(l.node)
}

func (l *leaf) ReplaceWith(c *Ctx, n Node) {
	c.Host.Replace(l.node, n)
}

// TextProduct is a text node with the last rendered content as its memo.
type TextProduct struct {
	leaf
	memo string
}

// Text returns the last rendered content.
func (p *TextProduct) Text() string {
	return p.memo
}

// Text renders s as a text node. Updates compare by content.
func Text(s string) View {
	return textView(s)
}

type textView string

func (t textView) Build(c *Ctx) Product {
	return &TextProduct{leaf: leaf{c.Host.CreateText(string(t))}, memo: string(t)}
}

func (t textView) Update(c *Ctx, p Product) {
	tp, ok := p.(*TextProduct)
	if !ok {
		productMismatch(t, p)
	}
	if tp.memo != string(t) {
		tp.memo = string(t)
		c.Host.SetText(tp.node, tp.memo)
	}
}

// Bytes renders b as a text node. The product keeps its own copy of the
// contents, so b may be reused once the render returns.
func Bytes(b []byte) View {
	return bytesView(b)
}

type bytesView []byte

func (b bytesView) Build(c *Ctx) Product {
	s := string(b)
	return &TextProduct{leaf: leaf{c.Host.CreateText(s)}, memo: s}
}

func (b bytesView) Update(c *Ctx, p Product) {
	tp, ok := p.(*TextProduct)
	if !ok {
		productMismatch(b, p)
	}
	if tp.memo != string(b) {
		tp.memo = string(b)
		c.Host.SetText(tp.node, tp.memo)
	}
}

// ValueProduct is a text node rendering a primitive, memoizing the value
// rather than its text.
type ValueProduct[T Primitive] struct {
	leaf
	memo T
}

// Value returns the last rendered value.
func (p *ValueProduct[T]) Value() T {
	return p.memo
}

// Value renders a primitive as text. Updates compare by value, so the text is
// only formatted when the value changed.
func Value[T Primitive](v T) View {
	return valueView[T]{v: v}
}

type valueView[T Primitive] struct {
	v T
}

func (v valueView[T]) Build(c *Ctx) Product {
	return &ValueProduct[T]{leaf: leaf{c.Host.CreateText(format(v.v))}, memo: v.v}
}

func (v valueView[T]) Update(c *Ctx, p Product) {
	vp, ok := p.(*ValueProduct[T])
	if !ok {
		productMismatch(v, p)
	}
	if vp.memo != v.v {
		vp.memo = v.v
		c.Host.SetText(vp.node, format(v.v))
	}
}

// NodeProduct is a single host node with no memo.
type NodeProduct struct {
	leaf
}

// EagerValue renders its value on every update without diffing.
type EagerValue[T Primitive] struct {
	V T
}

// Eager disables diffing for v: its text is set on every render. Mostly
// useful inside a Fence, where the fence guard already decided.
func Eager[T Primitive](v T) EagerValue[T] {
	return EagerValue[T]{V: v}
}

func (e EagerValue[T]) Build(c *Ctx) Product {
	return &NodeProduct{leaf{c.Host.CreateText(format(e.V))}}
}

func (e EagerValue[T]) Update(c *Ctx, p Product) {
	np, ok := p.(*NodeProduct)
	if !ok {
		productMismatch(e, p)
	}
	c.Host.SetText(np.node, format(e.V))
}

func (EagerValue[T]) Memo() any     { return nil }
func (EagerValue[T]) Diff(any) bool { return true }

// StaticValue renders its value once and never updates it.
type StaticValue[T Primitive] struct {
	V T
}

// Static renders v at build and never again. Only for values that stay
// constant for the lifetime of the product; anything else freezes stale UI.
func Static[T Primitive](v T) StaticValue[T] {
	return StaticValue[T]{V: v}
}

func (s StaticValue[T]) Build(c *Ctx) Product {
	return &NodeProduct{leaf{c.Host.CreateText(format(s.V))}}
}

func (s StaticValue[T]) Update(_ *Ctx, p Product) {
	if _, ok := p.(*NodeProduct); !ok {
		productMismatch(s, p)
	}
}

func (StaticValue[T]) Memo() any     { return nil }
func (StaticValue[T]) Diff(any) bool { return false }

// Display renders text produced by format, re-formatting only when guard
// reports a change. Combine with Ref or a *Ver to render values that are
// expensive to compare.
func Display(guard Diff, format func() string) View {
	return displayView{guard: guard, format: format}
}

type displayView struct {
	guard  Diff
	format func() string
}

// DisplayProduct is the product of Display.
type DisplayProduct struct {
	leaf
	memo any
}

func (d displayView) Build(c *Ctx) Product {
	return &DisplayProduct{leaf: leaf{c.Host.CreateText(d.format())}, memo: d.guard.Memo()}
}

func (d displayView) Update(c *Ctx, p Product) {
	dp, ok := p.(*DisplayProduct)
	if !ok {
		productMismatch(d, p)
	}
	if d.guard.Diff(dp.memo) {
		c.Host.SetText(dp.node, d.format())
	}
}

// Empty renders a placeholder node and nothing else.
type Empty struct{}

func (Empty) Build(c *Ctx) Product {
	return &EmptyProduct{leaf{c.Host.CreateEmpty()}}
}

func (Empty) Update(*Ctx, Product) {}

// EmptyProduct is the placeholder node of Empty.
type EmptyProduct struct {
	leaf
}
