// Command dictomaton-build reads a sorted, newline-delimited list of
// strings (optionally tab-separated with an int64 value) from stdin or a
// file and writes a packed dictionary to disk (with -values, the
// gob-encoded key/value entries instead).
package main

import (
	"bufio"
	"encoding/gob"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/fmannhardt/dictomaton"
)

func main() {
	in := pflag.StringP("in", "i", "", "input file of sorted, newline-delimited keys (default: stdin)")
	out := pflag.StringP("out", "o", "", "output path for the packed dictionary (required)")
	dot := pflag.String("dot", "", "optional path to also write a Graphviz rendering")
	withValues := pflag.Bool("values", false, "treat each input line as \"key\\tvalue\" and build a ValueMap instead of a plain dictionary")
	pflag.Parse()

	if *out == "" {
		glog.Fatal("-out is required")
	}

	r := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			glog.Fatalf("opening %s: %v", *in, err)
		}
		defer f.Close()
		r = f
	}

	if *withValues {
		buildValueMap(r, *out)
		return
	}
	buildDictionary(r, *out, *dot)
}

func buildDictionary(r *os.File, out, dot string) {
	b := dictomaton.NewBuilder()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		if err := b.Add(scanner.Text()); err != nil {
			glog.Fatalf("line %d: %v", n+1, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		glog.Fatalf("reading input: %v", err)
	}

	dict := b.Build()
	if err := dict.WriteBinary(out); err != nil {
		glog.Fatalf("writing %s: %v", out, err)
	}
	if dot != "" {
		f, err := os.Create(dot)
		if err != nil {
			glog.Fatalf("creating %s: %v", dot, err)
		}
		if err := b.ToDot(f); err != nil {
			glog.Fatalf("writing %s: %v", dot, err)
		}
		f.Close()
	}
	glog.Infof("wrote %d keys, %d states to %s", n, dict.NumStates(), out)
}

func buildValueMap(r *os.File, out string) {
	b := dictomaton.NewSortedValueMapBuilder()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		line := scanner.Text()
		key, valueStr, ok := strings.Cut(line, "\t")
		if !ok {
			glog.Fatalf("line %d: expected \"key\\tvalue\", got %q", n+1, line)
		}
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			glog.Fatalf("line %d: bad value %q: %v", n+1, valueStr, err)
		}
		if err := b.Add(key, value); err != nil {
			glog.Fatalf("line %d: %v", n+1, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		glog.Fatalf("reading input: %v", err)
	}

	m := b.Build()
	f, err := os.Create(out)
	if err != nil {
		glog.Fatalf("creating %s: %v", out, err)
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err := enc.Encode(m.Entries()); err != nil {
		glog.Fatalf("writing %s: %v", out, err)
	}
	glog.Infof("wrote %d entries to %s", m.Size(), out)
}
