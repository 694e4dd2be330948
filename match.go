package blaze

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MatchDocument returns the sorted, unique plus-terms of raw that occur in
// document id, along with its status. If any minus-term occurs in the
// document, the word list is empty (the document still matches, it's just
// excluded). An empty query returns an empty word list immediately. id must
// name a known document, or MatchDocument fails with ErrMissingDocument.
func (idx *Index) MatchDocument(policy ExecutionPolicy, raw string, id int32) ([]string, DocumentStatus, error) {
	status, ok := idx.documentStatus(id)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrMissingDocument, id)
	}
	if raw == "" {
		return nil, status, nil
	}

	if policy == Parallel {
		return idx.matchDocumentParallel(raw, id, status)
	}
	return idx.matchDocumentSequential(raw, id, status)
}

func (idx *Index) matchDocumentSequential(raw string, id int32, status DocumentStatus) ([]string, DocumentStatus, error) {
	query, err := ParseQuery(raw, idx.stopWords)
	if err != nil {
		return nil, 0, err
	}

	docWords := idx.forward[id]
	for _, w := range query.Minus {
		if _, ok := docWords[w]; ok {
			return nil, status, nil
		}
	}

	var matched []string
	for _, w := range query.Plus {
		if _, ok := docWords[w]; ok {
			matched = append(matched, w)
		}
	}
	return matched, status, nil
}

// matchDocumentParallel parses with duplicates kept, probes minus-terms,
// then copies the hitting plus-terms in parallel before sorting and
// de-duplicating the result — the observable output is identical to the
// sequential path.
func (idx *Index) matchDocumentParallel(raw string, id int32, status DocumentStatus) ([]string, DocumentStatus, error) {
	query, err := ParseQueryKeepDuplicates(raw, idx.stopWords)
	if err != nil {
		return nil, 0, err
	}

	docWords := idx.forward[id]
	for _, w := range query.Minus {
		if _, ok := docWords[w]; ok {
			return nil, status, nil
		}
	}

	hits := make([]string, len(query.Plus))
	var g errgroup.Group
	for i, w := range query.Plus {
		i, w := i, w
		g.Go(func() error {
			if _, ok := docWords[w]; ok {
				hits[i] = w
			}
			return nil
		})
	}
	_ = g.Wait()

	matched := make([]string, 0, len(hits))
	for _, w := range hits {
		if w != "" {
			matched = append(matched, w)
		}
	}
	sort.Strings(matched)
	matched = dedupSorted(matched)
	return matched, status, nil
}

func dedupSorted(words []string) []string {
	if len(words) < 2 {
		return words
	}
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
