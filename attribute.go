package weft

// Attribute is the attribute-side counterpart of View. It builds into state
// kept on the element product and updates the element's node only when its
// value changed.
type Attribute interface {
	BuildAttr(c *Ctx, n Node) any
	UpdateAttr(c *Ctx, n Node, state any)
}

// Attr sets a plain attribute, diffed by value.
func Attr[T Primitive](name string, v T) Attribute {
	return attrValue[T]{name: name, v: v}
}

type attrValue[T Primitive] struct {
	name string
	v    T
}

func (a attrValue[T]) BuildAttr(c *Ctx, n Node) any {
	c.Host.SetAttribute(n, a.name, format(a.v))
	m := new(T)
	*m = a.v
	return m
}

func (a attrValue[T]) UpdateAttr(c *Ctx, n Node, state any) {
	m := state.(*T)
	if *m != a.v {
		*m = a.v
		c.Host.SetAttribute(n, a.name, format(a.v))
	}
}

// AttrEager sets a plain attribute on every render.
func AttrEager[T Primitive](name string, v T) Attribute {
	return attrEager[T]{name: name, v: v}
}

type attrEager[T Primitive] struct {
	name string
	v    T
}

func (a attrEager[T]) BuildAttr(c *Ctx, n Node) any {
	c.Host.SetAttribute(n, a.name, format(a.v))
	return nil
}

func (a attrEager[T]) UpdateAttr(c *Ctx, n Node, _ any) {
	c.Host.SetAttribute(n, a.name, format(a.v))
}

// AttrStatic sets a plain attribute at build only.
func AttrStatic[T Primitive](name string, v T) Attribute {
	return attrStatic[T]{name: name, v: v}
}

type attrStatic[T Primitive] struct {
	name string
	v    T
}

func (a attrStatic[T]) BuildAttr(c *Ctx, n Node) any {
	c.Host.SetAttribute(n, a.name, format(a.v))
	return nil
}

func (attrStatic[T]) UpdateAttr(*Ctx, Node, any) {}

// Prop sets one of the special host properties, diffed by value.
func Prop[T comparable](p Property, v T) Attribute {
	return propValue[T]{prop: p, v: v}
}

type propValue[T comparable] struct {
	prop Property
	v    T
}

func (a propValue[T]) BuildAttr(c *Ctx, n Node) any {
	c.Host.SetProperty(n, a.prop, a.v)
	m := new(T)
	*m = a.v
	return m
}

func (a propValue[T]) UpdateAttr(c *Ctx, n Node, state any) {
	m := state.(*T)
	if *m != a.v {
		*m = a.v
		c.Host.SetProperty(n, a.prop, a.v)
	}
}

// Class sets the class name.
func Class(name string) Attribute { return Prop(PropClass, name) }

// Checked sets the checked state of an input.
func Checked(on bool) Attribute { return Prop(PropChecked, on) }

// InputValue sets the value of an input.
func InputValue[T Primitive](v T) Attribute { return Prop(PropValue, v) }

// Href sets the link target.
func Href(url string) Attribute { return Prop(PropHref, url) }

// Style sets the inline style string.
func Style(css string) Attribute { return Prop(PropStyle, css) }

// On binds l to the named host event of the element.
func On(event string, l Listener) Attribute {
	return onEvent{event: event, l: l}
}

// OnClick is On("click", l).
func OnClick(l Listener) Attribute { return On("click", l) }

// OnInput is On("input", l).
func OnInput(l Listener) Attribute { return On("input", l) }

// OnKeyDown is On("keydown", l).
func OnKeyDown(l Listener) Attribute { return On("keydown", l) }

type onEvent struct {
	event string
	l     Listener
}

func (o onEvent) BuildAttr(c *Ctx, n Node) any {
	lp := o.l.BuildListener(c)
	c.Host.Listen(n, o.event, c.Host.EventHandler(lp.ID()))
	return lp
}

func (o onEvent) UpdateAttr(c *Ctx, _ Node, state any) {
	o.l.UpdateListener(c, state.(ListenerProduct))
}
