package weft

import "iter"

// ForBounded is For with a fixed capacity. Storage for capacity products is
// allocated once at build and never grows; items past capacity are silently
// dropped and the sequence is not consumed any further. Use it for small
// lists with a known upper bound.
func ForBounded[V View](capacity int, seq iter.Seq[V]) View {
	return boundedView[V]{capacity: max(capacity, 0), seq: seq}
}

// ForEachBounded is ForEach with a fixed capacity.
func ForEachBounded[T any, V View](capacity int, items []T, fn func(T) V) View {
	return ForBounded(capacity, eachSeq(items, fn))
}

type boundedView[V View] struct {
	capacity int
	seq      iter.Seq[V]
}

// BoundedVec is a vector with a capacity fixed at creation.
type BoundedVec[T any] struct {
	data []T
}

// NewBoundedVec returns an empty vector that holds at most capacity items.
func NewBoundedVec[T any](capacity int) BoundedVec[T] {
	return BoundedVec[T]{data: make([]T, 0, max(capacity, 0))}
}

// Push appends v and reports whether it fit. Pushing into a full vector is a
// no-op.
func (b *BoundedVec[T]) Push(v T) bool {
	if len(b.data) == cap(b.data) {
		return false
	}
	b.data = append(b.data, v)
	return true
}

func (b *BoundedVec[T]) Len() int { return len(b.data) }
func (b *BoundedVec[T]) Cap() int { return cap(b.data) }

// At returns item i. It panics when i is out of range.
func (b *BoundedVec[T]) At(i int) T {
	return b.data[i]
}

// All returns the stored items. The slice aliases the vector.
func (b *BoundedVec[T]) All() []T {
	return b.data
}

// BoundedProduct is the product of a bounded list. Like ListProduct it keeps
// detached products past Mounted for reuse.
type BoundedProduct struct {
	list     BoundedVec[Product]
	mounted  int
	fragment Node
}

// Len returns the number of stored products, mounted or not.
func (p *BoundedProduct) Len() int { return p.list.Len() }

// Cap returns the fixed capacity.
func (p *BoundedProduct) Cap() int { return p.list.Cap() }

// Mounted returns the number of products attached to the host.
func (p *BoundedProduct) Mounted() int { return p.mounted }

// At returns the product at position i, or nil.
func (p *BoundedProduct) At(i int) Product {
	if i < 0 || i >= p.list.Len() {
		return nil
	}
	return p.list.At(i)
}

func (b boundedView[V]) Build(c *Ctx) Product {
	p := &BoundedProduct{
		list:     NewBoundedVec[Product](b.capacity),
		fragment: c.Host.CreateFragment(),
	}
	for v := range b.seq {
		if p.list.Len() == p.list.Cap() {
			break
		}
		built := v.Build(c)
		c.Host.Append(p.fragment, built.Node())
		p.list.Push(built)
	}
	p.mounted = p.list.Len()
	return p
}

func (b boundedView[V]) Update(c *Ctx, p Product) {
	bp, ok := p.(*BoundedProduct)
	if !ok {
		productMismatch(b, p)
	}

	items := bp.list.All()
	n := 0
	for v := range b.seq {
		if n == bp.list.Cap() {
			break
		}
		if n < len(items) {
			v.Update(c, items[n])
			if n >= bp.mounted {
				c.Host.Append(bp.fragment, items[n].Node())
			}
		} else {
			built := v.Build(c)
			c.Host.Append(bp.fragment, built.Node())
			bp.list.Push(built)
		}
		n++
	}

	if n < bp.mounted {
		for _, old := range items[n:bp.mounted] {
			old.Unmount(c)
		}
	}
	bp.mounted = n
}

func (p *BoundedProduct) Node() Node                 { return p.fragment }
func (p *BoundedProduct) Unmount(c *Ctx)             { c.Host.Remove(p.fragment) }
func (p *BoundedProduct) ReplaceWith(c *Ctx, n Node) { c.Host.Replace(p.fragment, n) }

// Trigger walks the mounted products only.
func (p *BoundedProduct) Trigger(ev *EventContext) (Then, bool) {
	for _, item := range p.list.All()[:p.mounted] {
		if then, found := trigger(item, ev); found {
			return then, true
		}
	}
	return Stop, false
}

func (p *BoundedProduct) Discard() {
	for _, item := range p.list.All() {
		discard(item)
	}
}
