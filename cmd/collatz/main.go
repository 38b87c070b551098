package main

import (
	"io"
	"os"

	"github.com/ajalab/collatz"
	"github.com/ajalab/collatz/log"
	"github.com/pkg/errors"
	"github.com/shurcooL/go-goon"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Error.Fatalf("collatz: %v", err)
	}
}

func run(w io.Writer) error {
	total := collatz.TotalSteps()
	if log.CurrentLevel() <= log.DebugLevel {
		if err := dumpSummary(); err != nil {
			return err
		}
	}
	return collatz.Report(w, total)
}

type summary struct {
	Total        int
	LongestStart int64
	LongestSteps int
	HighestStart int64
	HighestPeak  int64
}

func dumpSummary() error {
	s, err := collatz.Summarize()
	if err != nil {
		return errors.Wrap(err, "failed to summarize the range")
	}
	log.Debug.Printf("range [%d, %d]\n%s", collatz.First, collatz.Last, goon.Sdump(summary{
		Total:        s.Total,
		LongestStart: s.Longest.Start(),
		LongestSteps: s.Longest.Steps(),
		HighestStart: s.Highest.Start(),
		HighestPeak:  s.Highest.Peak(),
	}))
	log.Debug.Printf("longest: %v", s.Longest)
	return nil
}
