package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kungfusheep/weft"
	"github.com/kungfusheep/weft/memhost"
)

// step is one scripted event:
//
//	click:<button label>
//	input:<input index>=<value>
//	key:<key name>
//	render
type step struct {
	kind   string
	target string
	value  string
}

func parseScript(s string) ([]step, error) {
	var steps []step
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kind, target, _ := strings.Cut(part, ":")
		st := step{kind: kind, target: target}
		switch kind {
		case "click", "key":
			if target == "" {
				return nil, fmt.Errorf("step %q: missing target", part)
			}
		case "input":
			idx, value, ok := strings.Cut(target, "=")
			if !ok {
				return nil, fmt.Errorf("step %q: want input:<index>=<value>", part)
			}
			st.target, st.value = idx, value
		case "render":
		default:
			return nil, fmt.Errorf("step %q: unknown kind %q", part, kind)
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func (st step) run(host *memhost.Host, rt *weft.Runtime) error {
	switch st.kind {
	case "click":
		for _, b := range host.Root.FindTag("button") {
			if b.TextContent() == st.target {
				return host.Click(b)
			}
		}
		return fmt.Errorf("click: no button %q", st.target)
	case "input":
		i, err := strconv.Atoi(st.target)
		if err != nil {
			return fmt.Errorf("input: bad index %q", st.target)
		}
		inputs := host.Root.FindTag("input")
		if i < 0 || i >= len(inputs) {
			return fmt.Errorf("input: no input %d", i)
		}
		return host.Input(inputs[i], st.value)
	case "key":
		targets := host.Root.Find(func(n *memhost.Node) bool {
			_, ok := n.Listeners["keydown"]
			return ok
		})
		if len(targets) == 0 {
			return fmt.Errorf("key: no keydown listener")
		}
		return host.Fire(targets[0], "keydown", &weft.KeyEvent{Name: "keydown", Key: st.target, Target: targets[0]})
	default:
		return rt.Render()
	}
}
