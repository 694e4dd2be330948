package blaze

import (
	"log/slog"
	"sort"
	"strings"
)

// RemoveDuplicates groups documents by their word-set signature (the
// sorted set of distinct words they contain, ignoring term frequency),
// keeps the smallest id per group, and removes the rest from idx. It
// returns the removed ids, in ascending order, and logs one line per
// removal — ported from the original's RemoveDuplicates.
func RemoveDuplicates(idx *Index) []int32 {
	bySignature := make(map[string][]int32)
	for _, id := range idx.sortedDocIDs() {
		sig := wordSetSignature(idx.GetWordFrequencies(id))
		bySignature[sig] = append(bySignature[sig], id)
	}

	var removed []int32
	for _, ids := range bySignature {
		if len(ids) < 2 {
			continue
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, dup := range ids[1:] {
			idx.RemoveDocument(dup)
			removed = append(removed, dup)
		}
	}

	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, id := range removed {
		slog.Default().Info("found duplicate document", slog.Int("id", int(id)))
	}
	return removed
}

func wordSetSignature(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\x00")
}
