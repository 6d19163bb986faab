package termhost

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

var blockTags = map[string]bool{
	"body": true, "main": true, "div": true, "section": true, "header": true,
	"footer": true, "nav": true, "form": true, "p": true, "pre": true,
	"ul": true, "ol": true, "li": true, "h1": true, "h2": true, "h3": true,
	"table": true, "tr": true,
}

// layout flows a memhost tree into a buffer. Block elements start on a new
// row, everything else is inline and wraps at the right edge.
type layout struct {
	buf    *Buffer
	width  int
	theme  Theme
	focus  *memhost.Node
	scroll int

	x, y   int
	focusY int
}

// Layout draws root into a width × height buffer, skipping the first scroll
// rows. It also returns the unscrolled row the focused node starts on, or -1.
func Layout(root, focus *memhost.Node, theme Theme, width, height, scroll int) (*Buffer, int) {
	l := &layout{
		buf:    NewBuffer(width, height),
		width:  width,
		theme:  theme,
		focus:  focus,
		scroll: scroll,
		focusY: -1,
	}
	l.children(root, Style{}, "")
	return l.buf, l.focusY
}

// Rows returns how many rows root takes at the given width.
func Rows(root *memhost.Node, width int) int {
	l := &layout{buf: NewBuffer(width, 0), width: width, theme: DefaultTheme(), focusY: -1}
	l.children(root, Style{}, "")
	if l.x > 0 {
		return l.y + 1
	}
	return l.y
}

// Snapshot renders root as plain text, for tests and non-terminal output.
func Snapshot(root *memhost.Node, width int) string {
	buf, _ := Layout(root, nil, DefaultTheme(), width, Rows(root, width), 0)
	return buf.String()
}

func (l *layout) newline() {
	if l.x > 0 {
		l.x = 0
		l.y++
	}
}

func (l *layout) write(s string, style Style) {
	for _, r := range s {
		if r == '\n' {
			l.x, l.y = 0, l.y+1
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if l.x+w > l.width && l.x > 0 {
			l.x, l.y = 0, l.y+1
		}
		l.buf.SetRune(l.x, l.y-l.scroll, r, style)
		l.x += w
	}
}

func (l *layout) children(n *memhost.Node, style Style, prefix string) {
	for _, c := range n.Children {
		switch c.Kind {
		case memhost.KindText:
			l.write(c.Text, style)
		case memhost.KindFragment:
			l.children(c, style, prefix)
		case memhost.KindElement:
			l.element(c, style, prefix)
		}
	}
}

func (l *layout) element(n *memhost.Node, style Style, prefix string) {
	style = style.With(l.theme.Tags[n.Tag])
	if class, ok := n.Props[weft.PropClass].(string); ok {
		style = style.With(l.theme.classes(class))
	}

	block := blockTags[n.Tag]
	if block {
		l.newline()
	}
	if n == l.focus {
		style = style.With(l.theme.Focus)
		l.focusY = l.y
	}

	switch n.Tag {
	case "li":
		l.write(prefix+"• ", style)
		l.children(n, style, prefix+"  ")
	case "button":
		l.write("[ ", style)
		l.children(n, style, prefix)
		l.write(" ]", style)
	case "input":
		l.input(n, style)
	case "br":
		l.x, l.y = 0, l.y+1
	default:
		l.children(n, style, prefix)
	}

	if block {
		l.newline()
	}
}

func (l *layout) input(n *memhost.Node, style Style) {
	if n.Attrs["type"] == "checkbox" {
		if checked, _ := n.Props[weft.PropChecked].(bool); checked {
			l.write("[x]", style)
		} else {
			l.write("[ ]", style)
		}
		return
	}
	value := ""
	if v, ok := n.Props[weft.PropValue]; ok {
		value = fmt.Sprint(v)
	}
	if n == l.focus {
		value += "_"
	}
	l.write("["+value+"]", style)
}
