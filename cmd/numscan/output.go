package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// writeText prints one token per line, preceded by a header line per file.
func writeText(w io.Writer, results []fileResult) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "# %s: %d tokens\n", r.Path, len(r.Tokens))
		for _, t := range r.Tokens {
			if t.Value == nil {
				fmt.Fprintf(bw, "%-8s %-16q (%d…%d)\n", t.Type, t.Lexeme, t.From, t.To)
				continue
			}
			fmt.Fprintf(bw, "%-8s %-16q (%d…%d) %v\n", t.Type, t.Lexeme, t.From, t.To, t.Value)
		}
	}
	return bw.Flush()
}

// writeMsgpack encodes one record per file.
func writeMsgpack(w io.Writer, results []fileResult) error {
	enc := msgpack.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("cannot encode tokens of %s: %w", r.Path, err)
		}
	}
	return nil
}
