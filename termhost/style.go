package termhost

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrReverse
	AttrStrike
)

// Style is the comparable style stored in a Cell. FG is an ANSI 256 colour
// index; 0 leaves the terminal default.
type Style struct {
	Attr Attr
	FG   uint8
}

// With returns s with the attributes of o added and o's colour, if set.
func (s Style) With(o Style) Style {
	s.Attr |= o.Attr
	if o.FG != 0 {
		s.FG = o.FG
	}
	return s
}

// Lipgloss converts s for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(s.Attr&AttrBold != 0).
		Faint(s.Attr&AttrFaint != 0).
		Italic(s.Attr&AttrItalic != 0).
		Underline(s.Attr&AttrUnderline != 0).
		Reverse(s.Attr&AttrReverse != 0).
		Strikethrough(s.Attr&AttrStrike != 0)
	if s.FG != 0 {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(int(s.FG))))
	}
	return st
}

// Theme maps class names and tags to styles.
type Theme struct {
	Classes map[string]Style
	Tags    map[string]Style
	Focus   Style
	Status  lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme returns the theme used when none is configured.
func DefaultTheme() Theme {
	return Theme{
		Classes: map[string]Style{
			"done":     {Attr: AttrFaint | AttrStrike},
			"title":    {Attr: AttrBold},
			"muted":    {Attr: AttrFaint},
			"selected": {Attr: AttrBold, FG: 14},
			"error":    {FG: 9},
			"ok":       {FG: 10},
		},
		Tags: map[string]Style{
			"h1":     {Attr: AttrBold | AttrUnderline},
			"h2":     {Attr: AttrBold},
			"b":      {Attr: AttrBold},
			"strong": {Attr: AttrBold},
			"i":      {Attr: AttrItalic},
			"em":     {Attr: AttrItalic},
			"a":      {Attr: AttrUnderline, FG: 12},
			"button": {FG: 11},
		},
		Focus:  Style{Attr: AttrReverse},
		Status: lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// classes resolves a space separated class list.
func (t Theme) classes(list string) Style {
	var s Style
	for _, name := range strings.Fields(list) {
		s = s.With(t.Classes[name])
	}
	return s
}
