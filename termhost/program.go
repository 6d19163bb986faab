package termhost

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kungfusheep/weft"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Activate}, {k.Help, k.Quit}}
}

var defaultKeys = keyMap{
	Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

type config struct {
	log     *zap.Logger
	theme   Theme
	title   string
	runtime []weft.Option
	alt     bool
	out     io.Writer
}

// Option configures Run.
type Option func(*config)

// WithLogger sets the logger for the driver and the runtime.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithTitle sets the text shown in the status line.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithRuntimeOptions passes options through to the runtime.
func WithRuntimeOptions(opts ...weft.Option) Option {
	return func(c *config) { c.runtime = append(c.runtime, opts...) }
}

// WithInline keeps the program out of the alternate screen.
func WithInline() Option {
	return func(c *config) { c.alt = false }
}

// WithOutput sets where a non-terminal run prints its snapshot.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// postMsg carries work posted to the runtime from another goroutine.
type postMsg struct {
	fn func()
}

// Model is the bubbletea model driving a runtime on a Host.
type Model struct {
	host  *Host
	rt    *weft.Runtime
	theme Theme
	title string
	keys  keyMap
	help  help.Model
	log   *zap.Logger

	width  int
	height int
	scroll int
	err    error
}

// NewModel returns a model for a runtime already bound to host.
func NewModel(host *Host, rt *weft.Runtime, opts ...Option) *Model {
	cfg := newConfig(opts)
	return &Model{
		host:   host,
		rt:     rt,
		theme:  cfg.theme,
		title:  cfg.title,
		keys:   defaultKeys,
		help:   help.New(),
		log:    cfg.log,
		width:  80,
		height: 24,
	}
}

func newConfig(opts []Option) config {
	cfg := config{log: weft.Logger(), theme: DefaultTheme(), alt: true, out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case postMsg:
		msg.fn()
	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if err := m.rt.Stop(); err != nil {
			m.log.Warn("stop failed", zap.Error(err))
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Next):
		m.host.FocusNext(1)
		return nil
	case key.Matches(msg, m.keys.Prev):
		m.host.FocusNext(-1)
		return nil
	}

	k := msg.String()
	if m.host.Editing() {
		switch msg.Type {
		case tea.KeyBackspace:
			m.report("input", m.host.Type("backspace"))
			return nil
		case tea.KeySpace:
			m.report("input", m.host.Type(" "))
			return nil
		case tea.KeyRunes:
			m.report("input", m.host.Type(string(msg.Runes)))
			return nil
		}
	}
	if key.Matches(msg, m.keys.Activate) {
		m.report("click", m.host.Activate())
		return nil
	}

	ev := &weft.KeyEvent{
		Name: "keydown",
		Key:  k,
		Ctrl: strings.HasPrefix(k, "ctrl+"),
		Alt:  msg.Alt,
	}
	handled, err := m.host.Key(ev)
	m.report("keydown", err)
	if !handled {
		m.log.Debug("key not handled", zap.String("key", k))
	}
	return nil
}

func (m *Model) report(event string, err error) {
	if err != nil {
		m.log.Warn("dispatch failed", zap.String("event", event), zap.Error(err))
	}
	m.err = err
}

func (m *Model) View() string {
	status := m.status()
	helpView := m.help.View(m.keys)
	height := max(m.height-lineCount(status)-lineCount(helpView), 1)

	focus := m.host.Focused()
	buf, focusY := Layout(m.host.Root, focus, m.theme, m.width, height, m.scroll)
	if focusY >= 0 && (focusY < m.scroll || focusY >= m.scroll+height) {
		m.scroll = max(focusY-height+1, 0)
		buf, _ = Layout(m.host.Root, focus, m.theme, m.width, height, m.scroll)
	}

	return buf.Render() + "\n" + status + "\n" + helpView
}

func (m *Model) status() string {
	if m.err != nil {
		return m.theme.Error.Render("error: " + m.err.Error())
	}
	s := m.rt.Stats()
	line := fmt.Sprintf("%d renders · %d events", s.Renders, s.Dispatches)
	if m.title != "" {
		line = m.title + " · " + line
	}
	return m.theme.Status.Render(line)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// Run starts render on a new terminal document and drives it until the user
// quits. When stdout is not a terminal the first frame is printed instead.
func Run(render func() weft.View, opts ...Option) error {
	cfg := newConfig(opts)
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return Print(cfg.out, render, 80, opts...)
	}

	host := New(cfg.log)
	var p *tea.Program
	schedule := func(fn func()) { p.Send(postMsg{fn: fn}) }
	rt := weft.NewRuntime(host, append([]weft.Option{
		weft.WithLogger(cfg.log),
		weft.WithScheduler(schedule),
	}, cfg.runtime...)...)
	host.Bind(rt)

	m := NewModel(host, rt, opts...)
	if w, h, err := term.GetSize(fd); err == nil {
		m.width, m.height = w, h
	}

	popts := []tea.ProgramOption{}
	if cfg.alt {
		popts = append(popts, tea.WithAltScreen())
	}
	p = tea.NewProgram(m, popts...)

	if err := rt.Start(render); err != nil {
		return err
	}
	_, err := p.Run()
	if rt.Running() {
		_ = rt.Stop()
	}
	return err
}

// Print renders the first frame of render as plain text at the given width
// and writes it to w.
func Print(w io.Writer, render func() weft.View, width int, opts ...Option) error {
	cfg := newConfig(opts)
	host := New(cfg.log)
	rt := weft.NewRuntime(host, append([]weft.Option{weft.WithLogger(cfg.log)}, cfg.runtime...)...)
	host.Bind(rt)
	if err := rt.Start(render); err != nil {
		return err
	}
	defer func() { _ = rt.Stop() }()

	rt.Flush()
	_, err := fmt.Fprintln(w, Snapshot(host.Root, width))
	return err
}
