package trace

// Move represents a single Collatz transition that appeared in a trace.
type Move interface {
	// From returns the value before the transition.
	From() int64
	// To returns the value after the transition.
	To() int64
}

// Halve is the transition taken from an even value.
type Halve struct {
	from int64
}

// From returns the value before the transition.
func (m *Halve) From() int64 {
	return m.from
}

// To returns the halved value.
func (m *Halve) To() int64 {
	return m.from / 2
}

// Triple is the transition taken from an odd value (3n+1).
type Triple struct {
	from int64
}

// From returns the value before the transition.
func (m *Triple) From() int64 {
	return m.from
}

// To returns 3n+1 for the value n before the transition.
func (m *Triple) To() int64 {
	return 3*m.from + 1
}

func newMove(from int64) Move {
	if from%2 == 0 {
		return &Halve{from}
	}
	return &Triple{from}
}
