package main

import (
	"strings"

	"github.com/aocgo/aoc"
	"golang.org/x/exp/maps"
)

type pulse struct {
	From, To string
	High     bool
}

// module is a communication module. receive handles one pulse and returns
// the pulses it sends in response.
type module interface {
	receive(p pulse) []pulse
	outputs() []string
}

type broadcaster struct {
	name string
	out  []string
}

type flipFlop struct {
	broadcaster
	on bool
}

type conjunction struct {
	broadcaster
	last map[string]bool // most recent pulse from each input
}

func (b *broadcaster) outputs() []string { return b.out }

func (b *broadcaster) send(high bool) []pulse {
	return aoc.Map(b.out, func(to string) pulse {
		return pulse{From: b.name, To: to, High: high}
	})
}

func (b *broadcaster) receive(p pulse) []pulse {
	return b.send(p.High)
}

func (f *flipFlop) receive(p pulse) []pulse {
	if p.High {
		return nil
	}
	f.on = !f.on
	return f.send(f.on)
}

func (c *conjunction) receive(p pulse) []pulse {
	c.last[p.From] = p.High
	for _, high := range c.last {
		if !high {
			return c.send(true)
		}
	}
	return c.send(false)
}

func parseModules(lines []string) map[string]module {
	mods := map[string]module{}
	for _, line := range lines {
		if line == "" {
			continue
		}
		name, out := aoc.Cut(line, " -> ")
		b := broadcaster{out: strings.Split(out, ", ")}
		switch name[0] {
		case '%':
			b.name = name[1:]
			mods[b.name] = &flipFlop{broadcaster: b}
		case '&':
			b.name = name[1:]
			mods[b.name] = &conjunction{broadcaster: b, last: map[string]bool{}}
		default:
			b.name = name
			mods[name] = &b
		}
	}
	for name, m := range mods {
		for _, o := range m.outputs() {
			if c, ok := mods[o].(*conjunction); ok {
				c.last[name] = false
			}
		}
	}
	return mods
}

func (s solver) modules() map[string]module {
	return parseModules(s.Lines())
}

// press pushes the button once, calling watch on every pulse sent.
func press(mods map[string]module, watch func(pulse)) {
	q := aoc.NewQueue(pulse{From: "button", To: "broadcaster"})
	q.While(func(p pulse) bool {
		watch(p)
		if m, ok := mods[p.To]; ok {
			for _, next := range m.receive(p) {
				q.Push(next)
			}
		}
		return true
	})
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
/*
want=11687500

broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
*/
func (s solver) D20p1() any {
	mods := s.modules()
	var low, high int
	for i := 0; i < 1000; i++ {
		press(mods, func(p pulse) {
			if p.High {
				high++
			} else {
				low++
			}
		})
	}
	return low * high
}

// rxPresses returns the presses needed for rx to get a low pulse. rx is
// fed by a single conjunction, so that happens once all of its inputs have
// sent it a high pulse in the same press. Each input is assumed to do so
// on a fixed cycle starting from the first press.
func rxPresses(mods map[string]module) int {
	var feeder string
	for name, m := range mods {
		for _, o := range m.outputs() {
			if o == "rx" {
				feeder = name
			}
		}
	}
	c, ok := mods[feeder].(*conjunction)
	if !ok {
		aoc.Logger().Fatalf("rx is not fed by a conjunction")
	}
	cycles := map[string]int{}
	for presses := 1; len(cycles) < len(c.last); presses++ {
		press(mods, func(p pulse) {
			if p.To == feeder && p.High {
				if _, ok := cycles[p.From]; !ok {
					cycles[p.From] = presses
				}
			}
		})
	}
	return aoc.LCM(maps.Values(cycles)...)
}

func (s solver) D20p2() any {
	return rxPresses(s.modules())
}
