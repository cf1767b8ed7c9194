package dictomaton

import "fmt"

// OutOfOrderError is returned by Builder.Add when the given sequence is not
// strictly greater than the previously added one.
type OutOfOrderError struct {
	Previous, Given string
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("dictomaton: %q is not strictly greater than previously added %q", e.Given, e.Previous)
}

// AlreadyFinalizedError is returned by Builder.Add once the builder has been
// finalized by Build, BuildPerfectHash, or ToDot.
type AlreadyFinalizedError struct {
	Given string
}

func (e *AlreadyFinalizedError) Error() string {
	if e.Given == "" {
		return "dictomaton: builder already finalized"
	}
	return fmt.Sprintf("dictomaton: builder already finalized, cannot add %q", e.Given)
}

// UnsortedInputError describes input whose ordering is known up front not to
// be the natural string order. No function in this package returns it:
// Builder.Add and SortedValueMapBuilder.Add take one key at a time and
// report ordering faults with *OutOfOrderError.
type UnsortedInputError struct {
	Reason string
}

func (e *UnsortedInputError) Error() string {
	return fmt.Sprintf("dictomaton: input is not naturally sorted: %s", e.Reason)
}

// UnsupportedError describes a mutating operation attempted on an immutable
// value. Dictionary and ValueMap expose no mutating methods, so no function
// in this package returns it.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("dictomaton: unsupported operation on immutable value: %s", e.Op)
}

// NotFoundError is returned by PerfectHashDictionary.Sequence when the given
// rank falls outside [1, N].
type NotFoundError struct {
	Rank, N int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dictomaton: rank %d out of range [1, %d]", e.Rank, e.N)
}
