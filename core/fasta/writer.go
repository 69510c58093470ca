// core/fasta/writer.go
package fasta

import (
	"bufio"
	"fmt"
	"io"

	"seqdedupe-core/seq"
)

// Width is the sequence line width used when writing.
const Width = 60

// Write serializes records to w in FASTA format, headers verbatim and
// sequences wrapped at Width columns. A record with an empty sequence gets
// a header line only.
func Write(w io.Writer, records []seq.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n", rec.Header()); err != nil {
			return err
		}
		for s := rec.Seq; s != ""; {
			line := s
			if len(line) > Width {
				line = s[:Width]
			}
			s = s[len(line):]
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
