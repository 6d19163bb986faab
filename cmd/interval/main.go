package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/internal/apps"
	"github.com/kungfusheep/weft/termhost"
)

func main() {
	period := flag.Duration("every", time.Second, "tick period")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	log, err := apps.Logger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	interval := apps.Interval(*period)
	err = termhost.Run(func() weft.View { return interval },
		termhost.WithLogger(log),
		termhost.WithTitle("interval"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
