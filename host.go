package weft

// Node is an opaque handle to a host node. The core never looks inside it.
type Node = any

// Handler is an opaque host event-handler reference produced by
// Surface.EventHandler.
type Handler = any

// EventID tags a bound listener. Ids are allocated from a process-wide
// counter when a listener product is built, so routing an event is a single
// integer comparison.
type EventID uint32

// Property is one of the special host properties set through
// Surface.SetProperty instead of a plain attribute.
type Property uint8

const (
	PropClass Property = iota
	PropValue
	PropChecked
	PropHref
	PropStyle
	PropInnerHTML
)

var propertyNames = [...]string{
	PropClass:     "class",
	PropValue:     "value",
	PropChecked:   "checked",
	PropHref:      "href",
	PropStyle:     "style",
	PropInnerHTML: "innerHTML",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "unknown"
}

// Surface is the capability set the core needs from the host document.
// Every call is assumed to be cheap and synchronous.
//
// Fragments are contiguous insertion points: children appended to a fragment
// stay together, in append order, wherever the fragment itself is mounted.
type Surface interface {
	CreateElement(tag string) Node
	CreateText(text string) Node
	CreateEmpty() Node
	CreateFragment() Node

	// Append adds child at the end of parent. For a fragment parent the
	// child goes at the end of the fragment's range.
	Append(parent, child Node)
	Remove(n Node)
	Replace(old, new Node)

	SetText(n Node, text string)
	SetAttribute(n Node, name, value string)
	SetProperty(n Node, p Property, value any)

	// EventHandler builds a handler reference that, when fired, calls back
	// into Runtime.Dispatch with id.
	EventHandler(id EventID) Handler
	Listen(n Node, event string, h Handler)

	// MountRoot appends n to the document root.
	MountRoot(n Node)
}
