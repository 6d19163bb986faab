// Command weft-dump renders one of the demo applications headlessly, replays
// a scripted sequence of events against it and prints the resulting
// document.
//
//	weft-dump -app todo -events 'input:0=milk,click:add,click:done'
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/internal/apps"
	"github.com/kungfusheep/weft/memhost"
	"github.com/kungfusheep/weft/termhost"
)

var demos = map[string]func() weft.View{
	"counter":  apps.Counter,
	"list":     apps.List,
	"todo":     func() weft.View { return apps.Todos() },
	"interval": func() weft.View { return apps.Interval(time.Hour) },
}

func main() {
	app := flag.String("app", "counter", "demo to render: counter, list, todo, interval")
	events := flag.String("events", "", "comma separated steps: click:<label>, input:<n>=<value>, key:<name>, render")
	format := flag.String("format", "markup", "output format: markup or text")
	width := flag.Int("width", 60, "width for text output")
	stats := flag.Bool("stats", false, "print host and runtime counters")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := dump(os.Stdout, log, *app, *events, *format, *width, *stats); err != nil {
		fmt.Fprintln(os.Stderr, "weft-dump:", err)
		os.Exit(1)
	}
}

func dump(w io.Writer, log *zap.Logger, app, events, format string, width int, stats bool) error {
	newView, ok := demos[app]
	if !ok {
		return fmt.Errorf("unknown app %q", app)
	}
	steps, err := parseScript(events)
	if err != nil {
		return err
	}

	host := memhost.New()
	rt := weft.NewRuntime(host, weft.WithLogger(log), weft.StrictFromEnv())
	host.Bind(rt)
	view := newView()
	if err := rt.Start(func() weft.View { return view }); err != nil {
		return err
	}
	defer func() { _ = rt.Stop() }()

	for _, st := range steps {
		if err := st.run(host, rt); err != nil {
			return err
		}
		rt.Flush()
	}

	switch format {
	case "markup":
		fmt.Fprintln(w, host.String())
	case "text":
		fmt.Fprintln(w, termhost.Snapshot(host.Root, width))
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if stats {
		s := rt.Stats()
		fmt.Fprintf(w, "host: %d creates, %d mutations (%+v)\n", host.Creates(), host.Mutations(), host.Counters)
		fmt.Fprintf(w, "runtime: %d renders, %d dispatches, %d unhandled, %d rejected\n",
			s.Renders, s.Dispatches, s.Unhandled, s.Rejected)
	}
	return nil
}
