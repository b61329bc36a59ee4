package main

import (
	"strings"

	"github.com/aocgo/aoc"
)

// rule sends a part to Target when its Category compares to Value per Op.
// An empty Op matches every part.
type rule struct {
	Category byte
	Op       byte
	Value    int
	Target   string
}

type workflows map[string][]rule

// machinePart holds the x, m, a and s ratings of a part.
type machinePart map[byte]int

func parseWorkflow(line string) (string, []rule) {
	name, rest := aoc.Cut(line, "{")
	var rules []rule
	for _, r := range strings.Split(strings.TrimSuffix(rest, "}"), ",") {
		cond, target, ok := strings.Cut(r, ":")
		if !ok {
			rules = append(rules, rule{Target: r})
			continue
		}
		rules = append(rules, rule{
			Category: cond[0],
			Op:       cond[1],
			Value:    aoc.Int(cond[2:]),
			Target:   target,
		})
	}
	return name, rules
}

func parseMachinePart(line string) machinePart {
	p := machinePart{}
	for _, f := range strings.Split(strings.Trim(line, "{}"), ",") {
		k, v := aoc.Cut(f, "=")
		p[k[0]] = aoc.Int(v)
	}
	return p
}

func (s solver) system() (workflows, []machinePart) {
	blocks := s.Blocks()
	wf := workflows{}
	for _, line := range blocks[0] {
		name, rules := parseWorkflow(line)
		wf[name] = rules
	}
	var parts []machinePart
	if len(blocks) > 1 {
		parts = aoc.Map(blocks[1], parseMachinePart)
	}
	return wf, parts
}

func (r rule) matches(p machinePart) bool {
	switch r.Op {
	case '<':
		return p[r.Category] < r.Value
	case '>':
		return p[r.Category] > r.Value
	}
	return true
}

func (wf workflows) accepts(p machinePart) bool {
	name := "in"
	for name != "A" && name != "R" {
		for _, r := range wf[name] {
			if r.matches(p) {
				name = r.Target
				break
			}
		}
	}
	return name == "A"
}

// ratingRanges holds the inclusive range of each rating.
type ratingRanges map[byte][2]int

func (rr ratingRanges) combinations() int {
	n := 1
	for _, r := range rr {
		if r[1] < r[0] {
			return 0
		}
		n *= r[1] - r[0] + 1
	}
	return n
}

// split returns the parts of rr that match r and those that do not.
func (r rule) split(rr ratingRanges) (match, rest ratingRanges) {
	if r.Op == 0 {
		return rr, nil
	}
	match, rest = ratingRanges{}, ratingRanges{}
	for k, v := range rr {
		match[k], rest[k] = v, v
	}
	cur := rr[r.Category]
	if r.Op == '<' {
		match[r.Category] = [2]int{cur[0], min(cur[1], r.Value-1)}
		rest[r.Category] = [2]int{max(cur[0], r.Value), cur[1]}
	} else {
		match[r.Category] = [2]int{max(cur[0], r.Value+1), cur[1]}
		rest[r.Category] = [2]int{cur[0], min(cur[1], r.Value)}
	}
	return match, rest
}

// accepted counts the rating combinations in rr that workflow name
// accepts.
func (wf workflows) accepted(name string, rr ratingRanges) int {
	switch name {
	case "A":
		return rr.combinations()
	case "R":
		return 0
	}
	total := 0
	for _, r := range wf[name] {
		if rr == nil || rr.combinations() == 0 {
			break
		}
		match, rest := r.split(rr)
		total += wf.accepted(r.Target, match)
		rr = rest
	}
	return total
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	wf, parts := s.system()
	sum := 0
	for _, p := range parts {
		if wf.accepts(p) {
			sum += p['x'] + p['m'] + p['a'] + p['s']
		}
	}
	return sum
}

// want=167409079868000
func (s solver) D19p2() any {
	wf, _ := s.system()
	all := ratingRanges{}
	for _, c := range []byte("xmas") {
		all[c] = [2]int{1, 4000}
	}
	return wf.accepted("in", all)
}
