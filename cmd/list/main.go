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

	list := apps.List()
	err = termhost.Run(func() weft.View { return list },
		termhost.WithLogger(log),
		termhost.WithTitle("list"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
