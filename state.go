package dictomaton

import "unsafe"

// transition is one outgoing edge of a MutableState, labeled by a single
// Char and pointing at the (possibly still-mutable, possibly already
// canonical) destination state.
type transition struct {
	char Char
	dest *MutableState
}

// MutableState is a node of the in-construction automaton. Its transitions
// are kept in ascending Char order, since that is the order the builder
// appends them in and the order the packed form needs them in. Equality and
// hashing are defined structurally (see Equal and Hash) so that a Register
// can use MutableState as a content-addressed key; both are sound only while
// every destination is itself already canonical, which the builder
// guarantees by registering bottom-up.
type MutableState struct {
	transitions []transition
	final       bool

	hashValid bool
	hash      uint64
}

// HasTransitions reports whether s has any outgoing transition.
func (s *MutableState) HasTransitions() bool {
	return len(s.transitions) > 0
}

// LastTransition returns the most recently added transition, which is always
// the one with the greatest Char since the builder only ever appends or
// rewrites the last one. ok is false if s has no transitions.
func (s *MutableState) LastTransition() (c Char, dest *MutableState, ok bool) {
	if len(s.transitions) == 0 {
		return 0, nil, false
	}
	t := s.transitions[len(s.transitions)-1]
	return t.char, t.dest, true
}

// SetLastTransitionDest rewrites the destination of the last transition,
// e.g. to point at a canonical state returned by the register instead of
// the dangling one the builder created.
func (s *MutableState) SetLastTransitionDest(dest *MutableState) {
	s.transitions[len(s.transitions)-1].dest = dest
	s.invalidate()
}

// AddTransition appends a new outgoing transition. c must be strictly
// greater than every Char already present; this holds automatically because
// the builder only appends while walking a strictly sorted input.
func (s *MutableState) AddTransition(c Char, dest *MutableState) {
	s.transitions = append(s.transitions, transition{c, dest})
	s.invalidate()
}

// Move follows the transition labeled c, if any.
func (s *MutableState) Move(c Char) (*MutableState, bool) {
	lo, hi := 0, len(s.transitions)
	for lo < hi {
		mid := lo + (hi-lo)>>1
		switch {
		case s.transitions[mid].char < c:
			lo = mid + 1
		case s.transitions[mid].char > c:
			hi = mid
		default:
			return s.transitions[mid].dest, true
		}
	}
	return nil, false
}

// Final reports whether s accepts the empty suffix.
func (s *MutableState) Final() bool { return s.final }

// SetFinal sets whether s accepts the empty suffix.
func (s *MutableState) SetFinal(final bool) {
	s.final = final
	s.invalidate()
}

func (s *MutableState) invalidate() {
	s.hashValid = false
}

// Hash returns the structural hash of s, recomputing it lazily if it was
// invalidated by a mutation since the last read. It mixes the final flag
// with an order-independent sum over transitions of charHash XOR
// identityHash(destination); using the destination's identity rather than
// its own structural hash keeps this O(|transitions|) instead of recursing
// into already-canonicalized children.
func (s *MutableState) Hash() uint64 {
	if s.hashValid {
		return s.hash
	}
	var h uint64
	if s.final {
		h = 0x9e3779b97f4a7c15
	}
	for _, t := range s.transitions {
		h += charHash(t.char) ^ identityHash(t.dest)
	}
	s.hash = h
	s.hashValid = true
	return h
}

// Equal reports whether s and other are structurally identical: same final
// flag, same set of transition Chars in the same order, and identical
// (pointer-equal) destinations for corresponding Chars. This is the
// equivalence Register uses to merge confluent suffixes.
func (s *MutableState) Equal(other *MutableState) bool {
	if s == other {
		return true
	}
	if s.final != other.final || len(s.transitions) != len(other.transitions) {
		return false
	}
	for i, t := range s.transitions {
		o := other.transitions[i]
		if t.char != o.char || t.dest != o.dest {
			return false
		}
	}
	return true
}

// fastMix64 is the reference's fast-hash finalizer
// (https://code.google.com/p/fast-hash), reused here to mix both Chars and
// pointer identities into well-distributed 64-bit values.
func fastMix64(h uint64) uint64 {
	h ^= h >> 23
	h *= 0x2127599bf4325c37
	h ^= h >> 47
	return h
}

func charHash(c Char) uint64 {
	return fastMix64(uint64(c) + 1)
}

func identityHash(s *MutableState) uint64 {
	return fastMix64(uint64(uintptr(unsafe.Pointer(s))))
}
