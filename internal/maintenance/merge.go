package maintenance

// MergeReport summarises a merge.
type MergeReport struct {
	ExistingCount int `json:"existingCount"`
	Candidates    int `json:"candidates"`
	Added         int `json:"added"`
	Duplicates    int `json:"duplicates"`
	Skipped       int `json:"skipped"`
	MergedCount   int `json:"mergedCount"`
}

// Merge appends the entries of each batch to existing, in order. A candidate
// whose creative id is already present, in existing or in an earlier
// candidate, is dropped; candidates without a creative id are skipped.
// Existing and added entries keep their raw text.
func Merge(existing []Entry, batches ...[]Entry) ([]Entry, MergeReport) {
	report := MergeReport{ExistingCount: len(existing)}

	seen := make(map[string]struct{}, len(existing))
	for i := range existing {
		if id := existing[i].CreativeID(); id != "" {
			seen[id] = struct{}{}
		}
	}

	merged := make([]Entry, len(existing), len(existing)+countAll(batches))
	copy(merged, existing)
	for _, batch := range batches {
		for i := range batch {
			report.Candidates++
			id := batch[i].CreativeID()
			if id == "" {
				report.Skipped++
				continue
			}
			if _, dup := seen[id]; dup {
				report.Duplicates++
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, batch[i])
			report.Added++
		}
	}
	report.MergedCount = len(merged)
	return merged, report
}

func countAll(batches [][]Entry) int {
	n := 0
	for _, b := range batches {
		n += len(b)
	}
	return n
}
