package weft

import (
	"fmt"
	"strings"
)

// Kind categorizes an Error.
type Kind string

const (
	KindCyclicUpdate Kind = "cyclic_update"
	KindNotRunning   Kind = "not_running"
	KindShape        Kind = "shape_mismatch"
	KindProduct      Kind = "product_mismatch"
	KindBranch       Kind = "branch_arity"
	KindCrashed      Kind = "crashed"
)

// Error is the structured error used by the runtime. Runtime conditions are
// returned; programmer misuse panics with an *Error as the value.
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("weft: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	// ErrCyclicUpdate is returned when an update is requested while another
	// update of the same runtime is still in flight.
	ErrCyclicUpdate = &Error{Kind: KindCyclicUpdate}

	// ErrNotRunning is returned by operations that need a started runtime.
	ErrNotRunning = &Error{Kind: KindNotRunning}
)

func errorf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// productMismatch panics when Update is handed a product some other view type
// built.
func productMismatch(view any, p Product) {
	panic(errorf("update", KindProduct, "%T cannot update product %T", view, p))
}
