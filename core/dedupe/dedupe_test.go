// core/dedupe/dedupe_test.go
package dedupe

import (
	"fmt"

	"seqdedupe-core/seq"
)

func recs(seqs ...string) []seq.Record {
	out := make([]seq.Record, len(seqs))
	for i, s := range seqs {
		out[i] = seq.Record{ID: fmt.Sprintf("r%d", i+1), Seq: s}
	}
	return out
}

func ids(records []seq.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func seqsOf(records []seq.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Seq
	}
	return out
}
