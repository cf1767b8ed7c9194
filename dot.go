package dictomaton

import (
	"fmt"
	"io"
)

// writeDot renders p as a Graphviz "digraph", final states marked with
// peripheries=2 and one line per transition labeled with its character.
// This is the same shape as the reference's three Graphviz methods
// (Builder.Graphviz, Model.Graphviz, and the free Graphviz function in
// basic.go), collapsed into one function since the packed form is the only
// representation this module renders.
func writeDot(w io.Writer, p *packedArrays) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	for s, final := range p.finalStates {
		if final {
			if _, err := fmt.Fprintf(w, "  %d [peripheries=2];\n", s); err != nil {
				return err
			}
		}
	}
	for s := range p.finalStates {
		lo, hi := p.stateOffsets[s], p.stateOffsets[s+1]
		for t := lo; t < hi; t++ {
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=%q];\n", s, p.transTo[t], string(rune(p.transChars[t]))); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
