package blaze

import (
	"iter"

	"golang.org/x/sync/errgroup"
)

// ═══════════════════════════════════════════════════════════════════════════════
// BATCH QUERY EXECUTION
// ═══════════════════════════════════════════════════════════════════════════════
// ProcessQueries runs N independent queries against a read-only index in
// parallel, one goroutine per query via errgroup.Group, exactly mirroring
// the structure of the original's std::execution::par transform. The
// result slice is indexed by query position regardless of completion order.
// ═══════════════════════════════════════════════════════════════════════════════

// ProcessQueries evaluates each query in queries against idx, in parallel,
// using filter (ActualOnly if nil). The i-th result list corresponds to
// the i-th query.
func ProcessQueries(idx *Index, queries []string, filter Filter) ([][]Document, error) {
	results := make([][]Document, len(queries))
	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := idx.FindTopDocuments(Parallel, q, filter)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined runs the same batch as ProcessQueries and returns a
// flattened iterator over the results, preserving per-query order and,
// within a query, rank order. This replaces the C++ original's hand-rolled
// FlatIterator/Flatten template with a native range-over-func iterator.
func ProcessQueriesJoined(idx *Index, queries []string, filter Filter) (iter.Seq[Document], error) {
	results, err := ProcessQueries(idx, queries, filter)
	if err != nil {
		return nil, err
	}
	return func(yield func(Document) bool) {
		for _, docs := range results {
			for _, d := range docs {
				if !yield(d) {
					return
				}
			}
		}
	}, nil
}
