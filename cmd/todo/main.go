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
	flag.Parse()

	log, err := apps.Logger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	todos := apps.Todos(
		apps.Todo{Text: "Learn weft", Done: true},
		apps.Todo{Text: "Build something"},
	)
	err = termhost.Run(func() weft.View { return todos },
		termhost.WithLogger(log),
		termhost.WithTitle("todo"),
		termhost.WithRuntimeOptions(weft.StrictFromEnv()),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
