package table

import (
	"fmt"
	"strings"
)

// maxBits is the largest variable count whose assignments can be indexed by a uint64
// without overflow.
const maxBits = 62

// An Assignment associates a boolean value with each variable, in the same order as the variables.
type Assignment []bool

// NewAssignment returns assignment number i out of the 2^n assignments of n variables:
// the binary representation of i, most significant bit first.
func NewAssignment(i uint64, n int) Assignment {
	a := make(Assignment, n)
	for j := range a {
		a[j] = i&(1<<uint(n-j-1)) != 0
	}
	return a
}

// Index is the reverse of NewAssignment.
func (a Assignment) Index() uint64 {
	var i uint64
	for _, b := range a {
		i <<= 1
		if b {
			i |= 1
		}
	}
	return i
}

// Format describes the assignment with the given variable names, e.g "a=true, b=false".
func (a Assignment) Format(vars []string) string {
	strs := make([]string, len(a))
	for i, b := range a {
		strs[i] = fmt.Sprintf("%s=%t", vars[i], b)
	}
	return strings.Join(strs, ", ")
}

// Count returns the number of assignments of n variables, 2^n.
func Count(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("invalid variable count %d", n)
	}
	if n > maxBits {
		return 0, fmt.Errorf("%w: %d variables cannot be enumerated", ErrTooManyVariables, n)
	}
	return 1 << uint(n), nil
}

// Enumerate calls fn on each of the 2^n assignments of n variables, in increasing binary order.
// With n = 0, fn is called exactly once, with an empty assignment.
// Enumeration stops at the first error returned by fn, and that error is returned.
func Enumerate(n int, fn func(i uint64, a Assignment) error) error {
	count, err := Count(n)
	if err != nil {
		return err
	}
	for i := uint64(0); i < count; i++ {
		if err := fn(i, NewAssignment(i, n)); err != nil {
			return err
		}
	}
	return nil
}
