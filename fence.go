package weft

// Fence wraps the view returned by render so that it is built once and only
// updated when guard reports a change. The render function is not even
// called when the guard holds, which makes fencing an expensive subtree
// behind a cheap guard value the main optimization tool of the package.
//
//	weft.Fence(weft.Cmp(user.ID), func() weft.View {
//		return weft.El("tr",
//			weft.El("td", weft.Value(user.ID)),
//			weft.El("td", weft.Eager(user.Name)),
//		)
//	})
func Fence(guard Diff, render func() View) View {
	return fenceView{guard: guard, render: render}
}

type fenceView struct {
	guard  Diff
	render func() View
}

// FenceProduct holds the guard memo and the fenced product.
type FenceProduct struct {
	memo  any
	inner Product
}

// Inner returns the fenced product.
func (p *FenceProduct) Inner() Product {
	return p.inner
}

func (f fenceView) Build(c *Ctx) Product {
	return &FenceProduct{
		memo:  f.guard.Memo(),
		inner: f.render().Build(c),
	}
}

func (f fenceView) Update(c *Ctx, p Product) {
	fp, ok := p.(*FenceProduct)
	if !ok {
		productMismatch(f, p)
	}
	if f.guard.Diff(fp.memo) {
		f.render().Update(c, fp.inner)
	}
}

func (p *FenceProduct) Node() Node                 { return p.inner.Node() }
func (p *FenceProduct) Unmount(c *Ctx)             { p.inner.Unmount(c) }
func (p *FenceProduct) ReplaceWith(c *Ctx, n Node) { p.inner.ReplaceWith(c, n) }
func (p *FenceProduct) Discard()                   { discard(p.inner) }

// Trigger walks into the fenced product. Listeners inside keep the callback
// they were last updated with.
func (p *FenceProduct) Trigger(ev *EventContext) (Then, bool) {
	return trigger(p.inner, ev)
}

// Invar builds the view returned by render once and never updates it. It is
// an unconditional Fence.
func Invar(render func() View) View {
	return Fence(Never{}, render)
}
