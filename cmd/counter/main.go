package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/internal/apps"
	"github.com/kungfusheep/weft/termhost"
)

func main() {
	logPath := flag.String("log", "", "write debug logs to this file")
	inline := flag.Bool("inline", false, "render below the prompt instead of the alternate screen")
	flag.Parse()

	log, err := apps.Logger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	opts := []termhost.Option{
		termhost.WithLogger(log),
		termhost.WithTitle("counter"),
		termhost.WithRuntimeOptions(weft.StrictFromEnv()),
	}
	if *inline {
		opts = append(opts, termhost.WithInline())
	}

	counter := apps.Counter()
	if err := termhost.Run(func() weft.View { return counter }, opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
