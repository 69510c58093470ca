// core/dedupe/exact.go
package dedupe

import "seqdedupe-core/seq"

// Exact removes records whose sequence exactly matches an earlier retained
// record's. In nucleotide mode the reverse complement of every retained
// sequence counts as seen too, so a strand-flipped duplicate is dropped as
// well. First occurrence wins; survivors keep their input order.
//
// The only error condition is a reverse-complement failure on an out-of
// alphabet character (nucleotide mode only).
func Exact(records []seq.Record, nucleotide bool) ([]seq.Record, error) {
	seen := make(map[string]struct{}, len(records))
	unique := make([]seq.Record, 0, len(records))

	for _, rec := range records {
		if _, dup := seen[rec.Seq]; dup {
			continue
		}
		var rc string
		if nucleotide {
			var err error
			rc, err = seq.RevComp(rec.Seq)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[rc]; dup {
				continue
			}
		}
		seen[rec.Seq] = struct{}{}
		if nucleotide {
			seen[rc] = struct{}{}
		}
		unique = append(unique, rec)
	}
	return unique, nil
}
