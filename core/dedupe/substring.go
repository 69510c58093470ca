// core/dedupe/substring.go
package dedupe

import (
	"sort"
	"strings"

	"seqdedupe-core/seq"
)

// Substrings drops every record whose sequence (or, in nucleotide mode,
// whose reverse complement) occurs as a contiguous substring of another
// retained record's sequence. Records are processed longest-first so a
// single pass suffices: later records are never longer than earlier
// survivors, so nothing already kept can be invalidated afterwards. Output
// order is length-descending, ties keeping their relative input order.
//
// Assumes exact duplicates were already removed (Exact). Naive O(n^2)
// substring scans; callers opt in knowing this is the slow path.
func Substrings(records []seq.Record, nucleotide bool) ([]seq.Record, error) {
	sorted := make([]seq.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Seq) > len(sorted[j].Seq)
	})

	kept := make([]seq.Record, 0, len(sorted))
	for _, rec := range sorted {
		var rc string
		if nucleotide {
			var err error
			rc, err = seq.RevComp(rec.Seq)
			if err != nil {
				return nil, err
			}
		}
		contained := false
		for _, k := range kept {
			if strings.Contains(k.Seq, rec.Seq) || (nucleotide && strings.Contains(k.Seq, rc)) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}
