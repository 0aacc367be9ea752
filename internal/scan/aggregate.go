package scan

// Summary is the run-level total after global deduplication.
type Summary struct {
	Files int
	Bytes int64
}

// Dedup merges candidate lists from all groups into one set with a
// single entry per canonical path. Overlapping sources (a generic
// cache pattern resolving into a directory another group already
// scanned) therefore count each file exactly once. Last seen wins,
// which is harmless: entries for the same path are structurally
// identical.
func Dedup(lists ...[]Candidate) []Candidate {
	index := make(map[string]int)
	var out []Candidate
	for _, list := range lists {
		for _, c := range list {
			key := canonicalKey(c.Path)
			if i, ok := index[key]; ok {
				out[i] = c
				continue
			}
			index[key] = len(out)
			out = append(out, c)
		}
	}
	return out
}

// Summarize computes the run summary over a deduplicated set.
func Summarize(candidates []Candidate) Summary {
	var s Summary
	s.Files = len(candidates)
	for _, c := range candidates {
		s.Bytes += c.Size
	}
	return s
}
