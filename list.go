package weft

import "iter"

// For turns a sequence of views into a list view. On update the sequence is
// consumed once and diffed position by position against the products of the
// previous render. Nothing is allocated unless the list grows past the
// largest length it ever had.
//
// There are no keys: moving an item shows up as every position from the
// move onwards being updated.
func For[V View](seq iter.Seq[V]) View {
	return listView[V]{seq: seq}
}

// ForEach renders fn(item) for every item of items.
func ForEach[T any, V View](items []T, fn func(T) V) View {
	return For(eachSeq(items, fn))
}

// Range renders fn(i) for i in [0, n).
func Range[V View](n int, fn func(int) V) View {
	return For(rangeSeq(n, fn))
}

func eachSeq[T any, V View](items []T, fn func(T) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, item := range items {
			if !yield(fn(item)) {
				return
			}
		}
	}
}

func rangeSeq[V View](n int, fn func(int) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range n {
			if !yield(fn(i)) {
				return
			}
		}
	}
}

type listView[V View] struct {
	seq iter.Seq[V]
}

// ListProduct is the product of an unbounded list.
//
// It keeps every product it ever built. Products past Mounted are detached
// from the host but retained, so regrowing the list updates and re-attaches
// them instead of building new ones.
type ListProduct struct {
	list     chain[Product]
	mounted  int
	fragment Node
}

// Len returns the number of stored products, mounted or not.
func (p *ListProduct) Len() int {
	return p.list.len
}

// Mounted returns the number of products attached to the host.
func (p *ListProduct) Mounted() int {
	return p.mounted
}

// At returns the product at position i, or nil.
func (p *ListProduct) At(i int) Product {
	if slot := p.list.at(i); slot != nil {
		return *slot
	}
	return nil
}

func (l listView[V]) Build(c *Ctx) Product {
	p := &ListProduct{fragment: c.Host.CreateFragment()}
	for v := range l.seq {
		built := v.Build(c)
		c.Host.Append(p.fragment, built.Node())
		p.list.push(built)
	}
	p.mounted = p.list.len
	return p
}

func (l listView[V]) Update(c *Ctx, p Product) {
	lp, ok := p.(*ListProduct)
	if !ok {
		productMismatch(l, p)
	}

	cur := lp.list.cursor()
	n := 0
	for v := range l.seq {
		if slot := cur.next(); slot != nil {
			v.Update(c, *slot)
			if n >= lp.mounted {
				c.Host.Append(lp.fragment, (*slot).Node())
			}
		} else {
			built := v.Build(c)
			c.Host.Append(lp.fragment, built.Node())
			lp.list.push(built)
		}
		n++
	}

	if n < lp.mounted {
		cur.limit(lp.mounted)
		for slot := cur.next(); slot != nil; slot = cur.next() {
			(*slot).Unmount(c)
		}
	}
	lp.mounted = n
}

func (p *ListProduct) Node() Node                 { return p.fragment }
func (p *ListProduct) Unmount(c *Ctx)             { c.Host.Remove(p.fragment) }
func (p *ListProduct) ReplaceWith(c *Ctx, n Node) { c.Host.Replace(p.fragment, n) }

// Trigger walks the mounted products only.
func (p *ListProduct) Trigger(ev *EventContext) (Then, bool) {
	cur := p.list.cursor()
	cur.limit(p.mounted)
	for slot := cur.next(); slot != nil; slot = cur.next() {
		if then, found := trigger(*slot, ev); found {
			return then, true
		}
	}
	return Stop, false
}

func (p *ListProduct) Discard() {
	cur := p.list.cursor()
	for slot := cur.next(); slot != nil; slot = cur.next() {
		discard(*slot)
	}
}
