package trace

import (
	"fmt"
	"strings"
)

// Trace is the sequence of values visited by one Collatz sequence.
type Trace struct {
	values []int64
	moves  []Move
	peak   int64
}

// NewTrace creates a new Trace from the visited values, starting value first.
// Each pair of consecutive values is recorded as a Move taken from the earlier one.
func NewTrace(values []int64) *Trace {
	var moves []Move
	var peak int64
	for i, v := range values {
		if v > peak {
			peak = v
		}
		if i+1 < len(values) {
			moves = append(moves, newMove(v))
		}
	}

	return &Trace{
		values: values,
		moves:  moves,
		peak:   peak,
	}
}

// Start returns the starting value, or 0 for an empty trace.
func (t *Trace) Start() int64 {
	if len(t.values) == 0 {
		return 0
	}
	return t.values[0]
}

// Values returns the recorded values.
func (t *Trace) Values() []int64 {
	return t.values
}

// Moves returns the recorded transitions.
func (t *Trace) Moves() []Move {
	return t.moves
}

// Steps returns the number of transitions.
func (t *Trace) Steps() int {
	return len(t.moves)
}

// Peak returns the largest recorded value.
func (t *Trace) Peak() int64 {
	return t.peak
}

// IsComplete returns true if the trace reached 1.
func (t *Trace) IsComplete() bool {
	return len(t.values) > 0 && t.values[len(t.values)-1] == 1
}

func (t *Trace) String() string {
	ss := make([]string, len(t.values))
	for i, v := range t.values {
		ss[i] = fmt.Sprint(v)
	}
	return strings.Join(ss, " -> ")
}
