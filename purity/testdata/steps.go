package testdata

import "fmt"

func steps(n int) int {
	s := 0
	for n > 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
		s++
	}
	return s
}

// PureSteps is a test case for a pure function calling a helper.
func PureSteps(n int) int {
	return steps(n)
}

// RecursiveSteps is a test case for a pure recursive function.
func RecursiveSteps(n int) int {
	if n <= 1 {
		return 0
	}
	if n%2 == 0 {
		return 1 + RecursiveSteps(n/2)
	}
	return 1 + RecursiveSteps(3*n+1)
}

// ClosureSteps is a test case for a pure function calling a closure.
func ClosureSteps(n int) int {
	next := func(m int) int {
		if m%2 == 0 {
			return m / 2
		}
		return 3*m + 1
	}
	s := 0
	for n > 1 {
		n = next(n)
		s++
	}
	return s
}

// SliceSteps is a test case for a pure function using builtins on local values.
func SliceSteps(n int) int {
	var seen []int
	for n > 1 {
		seen = append(seen, n)
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
	}
	return len(seen)
}

var calls int

// CountingSteps is a test case for a function mutating a global counter.
func CountingSteps(n int) int {
	calls++
	return steps(n)
}

var memo = map[int]int{1: 0}

// MemoSteps is a test case for a function reading a global cache.
func MemoSteps(n int) int {
	if s, ok := memo[n]; ok {
		return s
	}
	s := steps(n)
	memo[n] = s
	return s
}

var last [2]int

// TableSteps is a test case for a function writing into a global array.
func TableSteps(n int) int {
	s := steps(n)
	last[0] = s
	return s
}

// PrintingSteps is a test case for a function calling into another package.
func PrintingSteps(n int) int {
	s := steps(n)
	fmt.Println(s)
	return s
}

// ConcurrentSteps is a test case for a function starting a goroutine.
func ConcurrentSteps(n int) int {
	ch := make(chan int, 1)
	go func() {
		ch <- steps(n)
	}()
	return <-ch
}

// DynamicSteps is a test case for a function calling a function value.
func DynamicSteps(n int, f func(int) int) int {
	return f(n)
}

// IndirectSteps is a test case for impurity hidden in a callee.
func IndirectSteps(n int) int {
	return CountingSteps(n)
}

// PointerSteps is a test case for a function writing through a pointer argument.
func PointerSteps(n int, out *int) int {
	*out = steps(n)
	return *out
}

type result struct {
	steps int
}

// FieldSteps is a test case for a function writing a field of an argument.
func FieldSteps(n int, r *result) int {
	r.steps = steps(n)
	return r.steps
}

// SliceArgSteps is a test case for a function writing into a caller's slice.
func SliceArgSteps(n int, xs []int) int {
	xs[0] = steps(n)
	return xs[0]
}

// MapSteps is a test case for a function updating a caller's map.
func MapSteps(n int, m map[int]int) int {
	s := steps(n)
	m[n] = s
	return s
}

// LocalMapSteps is a test case for a pure function updating its own map.
func LocalMapSteps(n int) int {
	seen := make(map[int]bool)
	for n > 1 {
		seen[n] = true
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
	}
	return len(seen)
}

// LocalPointerSteps is a test case for a pure function writing through its own pointer.
func LocalPointerSteps(n int) int {
	r := &result{}
	r.steps = steps(n)
	return r.steps
}

// CapturingSteps is a test case for a closure writing a captured variable.
func CapturingSteps(n int) int {
	s := 0
	step := func() {
		s++
	}
	for n > 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			n = 3*n + 1
		}
		step()
	}
	return s
}
