// Package weft is a retained-mode UI core. It mounts a tree of views onto a
// host document exposed through the Surface interface and keeps the document
// up to date with the smallest set of host mutations it can find.
//
// A View describes one piece of UI for a single render pass. Building it
// produces a Product that owns the live host nodes; on the next pass the new
// View updates that Product in place, diffing against memo data instead of
// the document. Structure is fixed per slot: conditional content goes through
// a Branch and variable-length content through For.
//
// State lives in Hooks owned by Stateful views. Listeners bound with Bind or
// Do get mutable access to their hook while the runtime holds the tree, and a
// Signal carries the same access to timers and other goroutines:
//
//	counter := weft.Stateful(func() int { return 0 }, func(count *weft.Hook[int]) weft.View {
//		return weft.El("p",
//			"Counter is at ", weft.Value(count.Get()),
//			weft.El("button", weft.OnClick(count.Do(func(n *int) weft.Then {
//				*n++
//				return weft.Render
//			})), "+"),
//		)
//	})
//
//	rt := weft.NewRuntime(host)
//	rt.Start(func() weft.View { return counter })
//
// The runtime is single-threaded. Everything except Post runs on the
// goroutine that drives it.
package weft
