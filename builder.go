package dictomaton

import (
	"io"

	"github.com/golang/glog"
)

// Builder drives incremental construction of a minimal acyclic DFA using
// the algorithm of Daciuk, Mihov, Watson & Watson (2000). Sequences must be
// added in strictly increasing lexicographic order (by UTF-16 code unit);
// the builder maintains the active path -- the path of states corresponding
// to the most recently added sequence -- and merges confluent suffixes into
// a Register as soon as they fall off that path. Must be constructed with
// NewBuilder.
type Builder struct {
	start    *MutableState
	register *Register

	// activePath[i] is the state reached after consuming the first i
	// Chars of previous; activePath[0] is always start.
	activePath  []*MutableState
	previous    []Char
	hasPrevious bool
	numAdded    int
	finalized   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	start := &MutableState{}
	return &Builder{
		start:      start,
		register:   NewRegister(0),
		activePath: []*MutableState{start},
	}
}

// Add inserts seq. It must be strictly greater than every previously added
// sequence, or an *OutOfOrderError is returned (this includes the case of
// an exact duplicate, which fails the strict-greater check). Returns
// *AlreadyFinalizedError if Build, BuildPerfectHash, or ToDot has already
// been called.
func (b *Builder) Add(seq string) error {
	if b.finalized {
		return &AlreadyFinalizedError{Given: seq}
	}
	chars := encodeString(seq)

	if b.hasPrevious && compareChars(chars, b.previous) <= 0 {
		return &OutOfOrderError{Previous: decodeChars(b.previous), Given: seq}
	}

	i := commonPrefixLen(chars, b.previous)
	lastCommon := b.activePath[i]

	if lastCommon.HasTransitions() {
		b.replaceOrRegister(lastCommon)
	}

	b.activePath = b.activePath[:i+1]
	tail := lastCommon
	for _, c := range chars[i:] {
		next := &MutableState{}
		tail.AddTransition(c, next)
		b.activePath = append(b.activePath, next)
		tail = next
	}
	tail.SetFinal(true)

	b.previous = chars
	b.hasPrevious = true
	b.numAdded++
	return nil
}

// AddAll inserts every sequence in seqs, in order, stopping at the first
// error.
func (b *Builder) AddAll(seqs []string) error {
	for _, seq := range seqs {
		if err := b.Add(seq); err != nil {
			return err
		}
	}
	return nil
}

func commonPrefixLen(a, b []Char) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// replaceOrRegister canonicalizes the chain hanging off s's last
// transition: the child is no longer on the active path, so it (and,
// recursively, everything below it that is also freshly built) is
// registered or replaced with its canonical equivalent. Leaves are
// registered before their parents (post-order), matching the bottom-up
// requirement of Register's identity-based equality.
func (b *Builder) replaceOrRegister(s *MutableState) {
	_, child, ok := s.LastTransition()
	if !ok {
		return
	}
	if child.HasTransitions() {
		b.replaceOrRegister(child)
	}
	canonical := b.register.RegisterOrReplace(child)
	if canonical != child {
		s.SetLastTransitionDest(canonical)
	}
}

func (b *Builder) finalizeOnce() {
	if b.finalized {
		return
	}
	b.replaceOrRegister(b.start)
	b.finalized = true
	if glog.V(1) {
		glog.Infof("dictomaton: finalized builder: %d sequences added, %d canonical states registered", b.numAdded, b.register.Size())
	}
}

// Build finalizes the builder (idempotently -- calling it, or
// BuildPerfectHash, or ToDot more than once is safe) and returns a
// read-only membership Dictionary.
func (b *Builder) Build() *Dictionary {
	b.finalizeOnce()
	p := pack(b.start)
	return &Dictionary{packedArrays: *p}
}

// BuildPerfectHash finalizes the builder and returns a read-only
// PerfectHashDictionary: in addition to membership, it assigns every
// accepted sequence its lexicographic rank in [1, N].
func (b *Builder) BuildPerfectHash() *PerfectHashDictionary {
	b.finalizeOnce()
	p := pack(b.start)
	counts := p.wordCounts()
	transNumbers := make([]int, len(p.transTo))
	for t, to := range p.transTo {
		transNumbers[t] = counts[to]
	}
	return &PerfectHashDictionary{
		Dictionary:   Dictionary{packedArrays: *p},
		transNumbers: transNumbers,
		startIsFinal: p.finalStates[0],
		n:            counts[0],
	}
}

// ToDot finalizes the builder and writes a Graphviz "digraph" rendering of
// the resulting automaton to w: final states are drawn with
// peripheries=2, and each transition is labeled with its character.
func (b *Builder) ToDot(w io.Writer) error {
	b.finalizeOnce()
	return writeDot(w, pack(b.start))
}
