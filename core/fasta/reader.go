// core/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"seqdedupe-core/seq"
)

// ReadAll parses FASTA records from r into memory. Header lines start with
// '>'; the first token becomes the record ID, the remainder the description.
// Sequence lines are concatenated verbatim (no case folding), blank lines
// are skipped. A record with no sequence lines is kept with an empty Seq.
func ReadAll(r io.Reader) ([]seq.Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		records []seq.Record
		cur     *seq.Record
		body    strings.Builder
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Seq = body.String()
		records = append(records, *cur)
		body.Reset()
	}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, ">"):
			flush()
			id, desc, _ := strings.Cut(strings.TrimPrefix(line, ">"), " ")
			cur = &seq.Record{ID: id, Description: strings.TrimSpace(desc)}
		case line == "":
			// skip
		default:
			if cur == nil {
				return nil, fmt.Errorf("fasta: line %d: sequence data before first header", lineNo)
			}
			body.WriteString(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

// ReadPath opens path (stdin / gzip aware, see Open) and reads all records.
func ReadPath(path string) ([]seq.Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadAll(rc)
}
