package collatz

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	// First is the smallest starting value of the summed range.
	First = 1
	// Last is the largest starting value of the summed range.
	Last = 50
	// Label precedes the total in the report line.
	Label = "Collatz Sum: "
)

// CountSteps returns the number of Collatz transitions needed to bring start down to 1.
// Values below 1 never reach 1, so CountSteps returns 0 for them.
func CountSteps(start int) int {
	n := start
	steps := 0
	for n > 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
		steps++
	}
	return steps
}

// TotalSteps sums CountSteps over every starting value in [First, Last].
func TotalSteps() int {
	total := 0
	for i := First; i <= Last; i++ {
		total += CountSteps(i)
	}
	return total
}

// Report writes the report line for total to w.
func Report(w io.Writer, total int) error {
	if _, err := fmt.Fprintf(w, "%s%d\n", Label, total); err != nil {
		return errors.Wrap(err, "failed to write the report")
	}
	return nil
}
