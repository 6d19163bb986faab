// Package memhost is an in-memory weft.Surface.
//
// It keeps a plain node tree, counts every host call, and can fire events
// back into a runtime. Tests use it as a mutation-counting mock; tools use
// it to render an application headlessly and dump the resulting markup.
package memhost

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kungfusheep/weft"
)

// Kind is the kind of a Node.
type Kind uint8

const (
	KindRoot Kind = iota
	KindElement
	KindText
	KindEmpty
	KindFragment
)

// Node is a host node.
type Node struct {
	Kind      Kind
	Serial    int
	Tag       string
	Text      string
	Attrs     map[string]string
	Props     map[weft.Property]any
	Listeners map[string]weft.EventID
	Parent    *Node
	Children  []*Node
}

// Handler is the handler reference memhost hands out for an event id.
type Handler struct {
	ID weft.EventID
}

// Counters count the calls made into the host.
type Counters struct {
	Elements  int // CreateElement
	Texts     int // CreateText
	Empties   int // CreateEmpty
	Fragments int // CreateFragment
	Appends   int
	Removes   int
	Replaces  int
	TextSets  int
	AttrSets  int
	PropSets  int
	Listens   int
}

// Creates returns the number of nodes created.
func (c Counters) Creates() int {
	return c.Elements + c.Texts + c.Empties + c.Fragments
}

// Mutations returns the number of calls that changed the tree or a node.
// Node creation is not a mutation.
func (c Counters) Mutations() int {
	return c.Appends + c.Removes + c.Replaces + c.TextSets + c.AttrSets + c.PropSets + c.Listens
}

// ErrNoListener is returned by Fire when the node has no listener for the
// event.
var ErrNoListener = errors.New("memhost: no listener for event")

// Host is an in-memory document.
type Host struct {
	Root *Node
	Counters

	serial int
	rt     *weft.Runtime
}

var _ weft.Surface = (*Host)(nil)

// New returns an empty document.
func New() *Host {
	return &Host{Root: &Node{Kind: KindRoot, Tag: "body"}}
}

// Bind attaches the runtime events are fired into.
func (h *Host) Bind(rt *weft.Runtime) {
	h.rt = rt
}

// Reset zeroes the counters.
func (h *Host) Reset() {
	h.Counters = Counters{}
}

func (h *Host) node(kind Kind) *Node {
	h.serial++
	return &Node{Kind: kind, Serial: h.serial}
}

func (h *Host) CreateElement(tag string) weft.Node {
	h.Elements++
	n := h.node(KindElement)
	n.Tag = tag
	return n
}

func (h *Host) CreateText(text string) weft.Node {
	h.Texts++
	n := h.node(KindText)
	n.Text = text
	return n
}

func (h *Host) CreateEmpty() weft.Node {
	h.Empties++
	return h.node(KindEmpty)
}

func (h *Host) CreateFragment() weft.Node {
	h.Fragments++
	return h.node(KindFragment)
}

func (h *Host) Append(parent, child weft.Node) {
	h.Appends++
	p, c := parent.(*Node), child.(*Node)
	c.detach()
	c.Parent = p
	p.Children = append(p.Children, c)
}

func (h *Host) Remove(n weft.Node) {
	h.Removes++
	n.(*Node).detach()
}

func (h *Host) Replace(old, new weft.Node) {
	h.Replaces++
	o, n := old.(*Node), new.(*Node)
	p := o.Parent
	if p == nil {
		return
	}
	n.detach()
	i := slices.Index(p.Children, o)
	p.Children[i] = n
	n.Parent = p
	o.Parent = nil
}

func (h *Host) SetText(n weft.Node, text string) {
	h.TextSets++
	n.(*Node).Text = text
}

func (h *Host) SetAttribute(n weft.Node, name, value string) {
	h.AttrSets++
	node := n.(*Node)
	if node.Attrs == nil {
		node.Attrs = make(map[string]string)
	}
	node.Attrs[name] = value
}

func (h *Host) SetProperty(n weft.Node, p weft.Property, value any) {
	h.PropSets++
	node := n.(*Node)
	if node.Props == nil {
		node.Props = make(map[weft.Property]any)
	}
	node.Props[p] = value
}

func (h *Host) EventHandler(id weft.EventID) weft.Handler {
	return Handler{ID: id}
}

func (h *Host) Listen(n weft.Node, event string, handler weft.Handler) {
	h.Listens++
	node := n.(*Node)
	if node.Listeners == nil {
		node.Listeners = make(map[string]weft.EventID)
	}
	node.Listeners[event] = handler.(Handler).ID
}

func (h *Host) MountRoot(n weft.Node) {
	h.Append(h.Root, n)
}

// Fire delivers ev to the listener n registered for event, through the
// bound runtime.
func (h *Host) Fire(n *Node, event string, ev weft.Event) error {
	id, ok := n.Listeners[event]
	if !ok {
		return ErrNoListener
	}
	if h.rt == nil {
		return fmt.Errorf("memhost: fire %q: no runtime bound", event)
	}
	return h.rt.Dispatch(id, ev)
}

// Click fires a click MouseEvent at n.
func (h *Host) Click(n *Node) error {
	return h.Fire(n, "click", &weft.MouseEvent{Name: "click", Target: n})
}

// Input fires an input event carrying value at n.
func (h *Host) Input(n *Node, value string) error {
	return h.Fire(n, "input", &weft.InputEvent{Name: "input", Target: n, Value: value})
}

func (n *Node) detach() {
	p := n.Parent
	if p == nil {
		return
	}
	if i := slices.Index(p.Children, n); i >= 0 {
		p.Children = slices.Delete(p.Children, i, i+1)
	}
	n.Parent = nil
}

// Attached reports whether n is reachable from a root.
func (n *Node) Attached() bool {
	for p := n; p != nil; p = p.Parent {
		if p.Kind == KindRoot {
			return true
		}
	}
	return false
}

// Flat returns the children of n with fragments spliced in, the way a
// document would see them.
func (n *Node) Flat() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindFragment {
			out = append(out, c.Flat()...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// TextContent returns the concatenated text below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(c *Node) {
		if c.Kind == KindText {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

// Find returns the nodes below n, in document order, for which match holds.
func (n *Node) Find(match func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if match(c) {
			out = append(out, c)
		}
	})
	return out
}

// FindTag returns the elements below n with the given tag.
func (n *Node) FindTag(tag string) []*Node {
	return n.Find(func(c *Node) bool { return c.Kind == KindElement && c.Tag == tag })
}

func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children {
		fn(c)
		c.walk(fn)
	}
}

// String renders n and its subtree as markup. Fragments are transparent,
// empty placeholders render as comments.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindEmpty:
		b.WriteString("<!---->")
	case KindRoot, KindFragment:
		for _, c := range n.Children {
			c.render(b)
		}
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
			fmt.Fprintf(b, " %s=%q", k, n.Attrs[k])
		}
		for _, p := range slices.Sorted(maps.Keys(n.Props)) {
			switch v := n.Props[p].(type) {
			case bool:
				if v {
					fmt.Fprintf(b, " %s", p)
				}
			default:
				fmt.Fprintf(b, " %s=%q", p, fmt.Sprint(v))
			}
		}
		b.WriteByte('>')
		for _, c := range n.Children {
			c.render(b)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

// String renders the whole document body.
func (h *Host) String() string {
	return h.Root.String()
}
