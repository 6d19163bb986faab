package weft

// MaxArms is the largest number of arms a Branch can choose between.
const MaxArms = 9

// Branch is a closed tagged union of views. It lets a slot render views of
// different shapes depending on data, through one update path.
//
// On update, the same tag updates the inner product in place. A different
// tag builds the new arm, swaps its node into the host in place of the old
// one and discards the old product, all within the one Update call.
type Branch struct {
	tag  int
	view View
}

// Arm returns a Branch selecting arm tag, rendered by v.
func Arm(tag int, v View) Branch {
	if tag < 0 || tag >= MaxArms {
		panic(errorf("branch", KindBranch, "tag %d outside [0, %d)", tag, MaxArms))
	}
	return Branch{tag: tag, view: v}
}

// Match renders arms[tag]. Only the selected arm is evaluated.
//
//	weft.Match(int(state.Tab),
//		func() weft.View { return inbox(state) },
//		func() weft.View { return settings(state) },
//	)
func Match(tag int, arms ...func() View) Branch {
	if len(arms) < 2 || len(arms) > MaxArms {
		panic(errorf("branch", KindBranch, "%d arms, want 2 to %d", len(arms), MaxArms))
	}
	if tag < 0 || tag >= len(arms) {
		panic(errorf("branch", KindBranch, "tag %d outside [0, %d)", tag, len(arms)))
	}
	return Branch{tag: tag, view: arms[tag]()}
}

// Either renders then() when cond holds and otherwise() when it does not.
func Either(cond bool, then, otherwise func() View) Branch {
	if cond {
		return Branch{tag: 0, view: then()}
	}
	return Branch{tag: 1, view: otherwise()}
}

// When renders then() when cond holds and an empty placeholder otherwise.
func When(cond bool, then func() View) Branch {
	if cond {
		return Branch{tag: 0, view: then()}
	}
	return Branch{tag: 1, view: Empty{}}
}

// Maybe renders v, or an empty placeholder when v is nil.
func Maybe(v View) Branch {
	if v == nil {
		return Branch{tag: 1, view: Empty{}}
	}
	return Branch{tag: 0, view: v}
}

// BranchProduct is the product of a Branch.
type BranchProduct struct {
	tag   int
	inner Product
}

// Tag returns the arm currently mounted.
func (p *BranchProduct) Tag() int {
	return p.tag
}

// Inner returns the product of the mounted arm.
func (p *BranchProduct) Inner() Product {
	return p.inner
}

func (b Branch) Build(c *Ctx) Product {
	return &BranchProduct{tag: b.tag, inner: b.view.Build(c)}
}

func (b Branch) Update(c *Ctx, p Product) {
	bp, ok := p.(*BranchProduct)
	if !ok {
		productMismatch(b, p)
	}
	if bp.tag == b.tag {
		b.view.Update(c, bp.inner)
		return
	}

	next := b.view.Build(c)
	bp.inner.ReplaceWith(c, next.Node())
	discard(bp.inner)
	bp.inner = next
	bp.tag = b.tag
}

func (p *BranchProduct) Node() Node                 { return p.inner.Node() }
func (p *BranchProduct) Unmount(c *Ctx)             { p.inner.Unmount(c) }
func (p *BranchProduct) ReplaceWith(c *Ctx, n Node) { p.inner.ReplaceWith(c, n) }
func (p *BranchProduct) Discard()                   { discard(p.inner) }

func (p *BranchProduct) Trigger(ev *EventContext) (Then, bool) {
	return trigger(p.inner, ev)
}
