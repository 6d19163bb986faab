// Package apps holds the demo applications shared by the interactive
// commands and weft-dump.
package apps

import (
	"go.uber.org/zap"

	"github.com/kungfusheep/weft"
)

// Counter is a number with increment, decrement and reset buttons.
func Counter() weft.View {
	return weft.Stateful(func() int { return 0 }, func(count *weft.Hook[int]) weft.View {
		return weft.El("div",
			weft.El("h1", "Counter"),
			weft.El("p", "Counter is at ", weft.Value(count.Get())),
			weft.El("p",
				weft.El("button", weft.OnClick(count.Do(add(-1))), "-"), " ",
				weft.El("button", weft.OnClick(count.Do(add(1))), "+"), " ",
				weft.El("button", weft.OnClick(count.Do(func(n *int) weft.Then {
					if *n == 0 {
						return weft.Stop
					}
					*n = 0
					return weft.Render
				})), "reset"),
			),
			weft.When(count.Get() < 0, func() weft.View {
				return weft.El("p", weft.Class("error"), "below zero")
			}),
		)
	})
}

func add(d int) func(*int) weft.Then {
	return func(n *int) weft.Then {
		*n += d
		return weft.Render
	}
}

// Logger returns a development logger writing to path, or a no-op logger
// when path is empty. The terminal belongs to the UI, so logs go to a file.
func Logger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
