package apps

import (
	"time"

	"github.com/kungfusheep/weft"
)

const maxLaps = 8

type tick struct {
	n   int
	at  time.Time
	lap []time.Duration
}

// Interval counts ticks of a timer running on its own goroutine. The timer
// posts into the runtime through a Signal and is stopped when the view is
// discarded. The last five lap times are kept in a bounded list.
func Interval(period time.Duration) weft.View {
	start := time.Now()
	return weft.Stateful(func() tick { return tick{at: start} }, func(t *weft.Hook[tick]) weft.View {
		st := t.Get()
		return weft.El("div",
			weft.El("h1", "Interval"),
			weft.El("p", weft.Class("ok"), "ticks: ", weft.Value(st.n)),
			weft.El("p", weft.Class("muted"), "every ", weft.Static(period.String())),
			weft.El("ul", weft.ForEachBounded(5, st.lap, func(d time.Duration) weft.View {
				return weft.El("li", weft.Text(d.Round(time.Millisecond).String()))
			})),
		)
	}).Once(func(sig weft.Signal[tick]) func() {
		ticker := time.NewTicker(period)
		done := make(chan struct{})
		go func() {
			for {
				select {
				case now := <-ticker.C:
					sig.Post(func(s *tick) weft.Then {
						s.n++
						s.lap = append([]time.Duration{now.Sub(s.at)}, s.lap[:min(len(s.lap), maxLaps-1)]...)
						s.at = now
						return weft.Render
					})
				case <-done:
					return
				}
			}
		}()
		return func() {
			ticker.Stop()
			close(done)
		}
	})
}
