// core/seq/record.go
package seq

// Record represents one FASTA sequence entry. ID is the first whitespace
// delimited token of the header line, Description the remainder (possibly
// empty). Dedupe passes never mutate a Record; they only select survivors.
type Record struct {
	ID          string
	Description string
	Seq         string
}

// Header reconstructs the header text without the leading '>'.
func (r Record) Header() string {
	if r.Description == "" {
		return r.ID
	}
	return r.ID + " " + r.Description
}
