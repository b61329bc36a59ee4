package main

import (
	"strings"
)

// markerEnd returns the number of characters read when the last n of them
// are all different, or -1 if that never happens.
func markerEnd(signal string, n int) int {
	var counts [256]int
	dupes := 0
	for i := 0; i < len(signal); i++ {
		if counts[signal[i]]++; counts[signal[i]] == 2 {
			dupes++
		}
		if i >= n {
			if counts[signal[i-n]]--; counts[signal[i-n]] == 1 {
				dupes--
			}
		}
		if i >= n-1 && dupes == 0 {
			return i + 1
		}
	}
	return -1
}

/*
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
/*
want=5

bvwbjplbgvbhsrlpgdmjqwftvncz
*/
/*
want=6

nppdvjthqldpwncqszvftbrmjlhg
*/
/*
want=10

nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg
*/
/*
want=11

zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw
*/
func (s solver) D6p1() any {
	return markerEnd(strings.TrimSpace(string(s.Input())), 4)
}
