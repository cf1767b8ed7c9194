// Command dictomaton-query loads a packed dictionary written by
// dictomaton-build and answers membership and rank queries against it.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/fmannhardt/dictomaton"
)

func main() {
	in := pflag.StringP("in", "i", "", "path to a packed dictionary written by dictomaton-build (required)")
	mapped := pflag.Bool("mmap", false, "memory-map the dictionary file and decode it from the mapping instead of reading the whole file into memory first")
	rank := pflag.Bool("rank", false, "also print the lexicographic rank of matched keys")
	pflag.Parse()

	if *in == "" {
		glog.Fatal("-in is required")
	}

	var dict *dictomaton.Dictionary
	var closer func() error
	if *mapped {
		m, err := dictomaton.OpenMappedDictionary(*in)
		if err != nil {
			glog.Fatalf("opening %s: %v", *in, err)
		}
		dict = &m.Dictionary
		closer = m.Close
	} else {
		d, err := dictomaton.ReadBinary(*in)
		if err != nil {
			glog.Fatalf("opening %s: %v", *in, err)
		}
		dict = d
	}
	if closer != nil {
		defer closer()
	}

	// -rank needs a PerfectHashDictionary's Number, which a plain packed
	// dictionary file doesn't carry transNumbers for; rebuilding one from
	// the loaded keys keeps the CLI usable without a second on-disk format.
	var phd *dictomaton.PerfectHashDictionary
	if *rank {
		b := dictomaton.NewBuilder()
		dict.Iterate(func(seq string) bool {
			_ = b.Add(seq)
			return true
		})
		phd = b.BuildPerfectHash()
	}

	args := pflag.Args()
	query := func(key string) {
		if !dict.Contains(key) {
			fmt.Printf("%s\tabsent\n", key)
			return
		}
		if phd != nil {
			fmt.Printf("%s\tpresent\t%d\n", key, phd.Number(key))
		} else {
			fmt.Printf("%s\tpresent\n", key)
		}
	}

	if len(args) > 0 {
		for _, key := range args {
			query(key)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		query(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		glog.Fatalf("reading stdin: %v", err)
	}
}
