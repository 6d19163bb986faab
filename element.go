package weft

// El describes a host element. Parts are applied in order and may be:
//   - an Attribute, applied to the element;
//   - a View, built as a child;
//   - a string, rendered once as static text.
//
// The number and kind of parts must be the same on every render of the same
// slot. Conditional content belongs in a Branch.
//
//	weft.El("p",
//		weft.Class("greeting"),
//		"Hello ", weft.Text(name),
//	)
func El(tag string, parts ...any) View {
	return element{tag: tag, parts: parts}
}

type element struct {
	tag   string
	parts []any
}

// ElementProduct is a built element: its node, attribute state and child
// products.
type ElementProduct struct {
	leaf
	tag      string
	attrs    []any
	children []Product
}

// Tag returns the element tag.
func (p *ElementProduct) Tag() string {
	return p.tag
}

// Children returns the child products in order.
func (p *ElementProduct) Children() []Product {
	return p.children
}

func (e element) Build(c *Ctx) Product {
	n := c.Host.CreateElement(e.tag)
	p := &ElementProduct{leaf: leaf{n}, tag: e.tag}

	for _, part := range e.parts {
		switch part := part.(type) {
		case Attribute:
			p.attrs = append(p.attrs, part.BuildAttr(c, n))
		case View:
			child := part.Build(c)
			c.Host.Append(n, child.Node())
			p.children = append(p.children, child)
		case string:
			c.Host.Append(n, c.Host.CreateText(part))
		case nil:
		default:
			panic(errorf("build", KindShape, "<%s>: unsupported part %T", e.tag, part))
		}
	}
	return p
}

func (e element) Update(c *Ctx, p Product) {
	ep, ok := p.(*ElementProduct)
	if !ok {
		productMismatch(e, p)
	}
	if ep.tag != e.tag {
		panic(errorf("update", KindShape, "<%s> cannot update <%s>", e.tag, ep.tag))
	}

	var a, ch int
	for _, part := range e.parts {
		switch part := part.(type) {
		case Attribute:
			if a >= len(ep.attrs) {
				e.shapeChanged()
			}
			part.UpdateAttr(c, ep.node, ep.attrs[a])
			a++
		case View:
			if ch >= len(ep.children) {
				e.shapeChanged()
			}
			part.Update(c, ep.children[ch])
			ch++
		}
	}
	if a != len(ep.attrs) || ch != len(ep.children) {
		e.shapeChanged()
	}
}

func (e element) shapeChanged() {
	panic(errorf("update", KindShape, "<%s>: parts changed between renders", e.tag))
}

// Trigger checks the element's own listeners, then its children.
func (p *ElementProduct) Trigger(ev *EventContext) (Then, bool) {
	for _, a := range p.attrs {
		if t, ok := a.(Triggerer); ok {
			if then, found := t.Trigger(ev); found {
				return then, true
			}
		}
	}
	for _, child := range p.children {
		if then, found := trigger(child, ev); found {
			return then, true
		}
	}
	return Stop, false
}

func (p *ElementProduct) Discard() {
	for _, child := range p.children {
		discard(child)
	}
}
