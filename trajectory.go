package collatz

import (
	"math"

	"github.com/ajalab/collatz/trace"
	"github.com/pkg/errors"
)

var (
	// ErrNotPositive is returned for a starting value below 1.
	ErrNotPositive = errors.New("starting value must be positive")
	// ErrOverflow is returned when 3n+1 does not fit in an int64.
	ErrOverflow = errors.New("int64 overflow")
)

// maxOdd is the largest value for which 3n+1 fits in an int64.
const maxOdd = (math.MaxInt64 - 1) / 3

// Trajectory evaluates the Collatz sequence from start and records every visited value.
// It fails before any transition would wrap around.
func Trajectory(start int64) (*trace.Trace, error) {
	if start < 1 {
		return nil, errors.Wrapf(ErrNotPositive, "start %d", start)
	}

	n := start
	values := []int64{n}
	for n != 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			if n > maxOdd {
				return nil, errors.Wrapf(ErrOverflow, "3*%d+1 at step %d from %d", n, len(values), start)
			}
			n = 3*n + 1
		}
		values = append(values, n)
	}
	return trace.NewTrace(values), nil
}

// Summary describes the sequences of the whole range.
type Summary struct {
	// Total is the sum of the step counts.
	Total int
	// Longest is the trace with the most steps.
	Longest *trace.Trace
	// Highest is the trace that reaches the largest value.
	Highest *trace.Trace
}

// Summarize traces every starting value in [First, Last].
// Ties are resolved in favor of the lower starting value.
func Summarize() (*Summary, error) {
	s := &Summary{}
	for i := int64(First); i <= Last; i++ {
		t, err := Trajectory(i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to trace %d", i)
		}
		s.Total += t.Steps()
		if s.Longest == nil || t.Steps() > s.Longest.Steps() {
			s.Longest = t
		}
		if s.Highest == nil || t.Peak() > s.Highest.Peak() {
			s.Highest = t
		}
	}
	return s, nil
}
