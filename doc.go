// Package dictomaton builds and queries a minimal acyclic deterministic
// finite-state automaton (MA-DFA) over a statically known, lexicographically
// sorted set of strings.
//
// A Builder ingests strings in strict order and incrementally constructs the
// automaton using the algorithm of Daciuk, Mihov, Watson & Watson (2000): a
// register of already-minimized states is consulted on every insertion so the
// automaton is minimal at every step, with no separate minimization pass.
// Finalizing a Builder packs the automaton into flat arrays (Dictionary) or,
// for the perfect-hash variant (PerfectHashDictionary), additionally
// decorates every transition with the number of words accepted by its
// destination subautomaton, turning traversal into a bijection onto
// [1, N]. ValueMap pairs a PerfectHashDictionary with a values array to form
// an immutable key-value mapping.
package dictomaton
