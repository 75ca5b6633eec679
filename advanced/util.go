package advanced

import (
	"fmt"
	"strings"
)

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *RankStack) Push(rank int) {
	*s = append(*s, rank)
}

// Popping an empty stack means the sweep lost track of its state, which can only
// happen on input that slipped past validation.
func (s *RankStack) Pop() int {
	if len(*s) == 0 {
		fatalf(ErrOracleContradiction, "pop from empty stack")
	}
	rank := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return rank
}

func (s *RankStack) Peek() int {
	if len(*s) == 0 {
		fatalf(ErrOracleContradiction, "peek at empty stack")
	}
	return (*s)[len(*s)-1]
}

func (s *RankStack) Empty() bool {
	return len(*s) == 0
}

func (s *RankStack) Len() int {
	return len(*s)
}

// Bottom to top, e.g. "[0 1 4]"
func (s RankStack) String() string {
	parts := make([]string, len(s))
	for i, rank := range s {
		parts[i] = fmt.Sprint(rank)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
