package blaze

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"
)

// ═══════════════════════════════════════════════════════════════════════════════
// RELEVANCE SCORING AND RANKING
// ═══════════════════════════════════════════════════════════════════════════════
// relevance(doc) = Σ over plus-terms w of TF(w, doc) · IDF(w)
// IDF(w) = ln(|docs| / |docs containing w|)
//
// Any document hit by a minus-term is dropped from the candidates entirely,
// regardless of how high its relevance would otherwise be.
//
// Ranking is a strict-weak composite order: relevance descending, ties
// within 1e-6 broken by rating descending, remaining ties left to a stable
// sort (insertion order).
// ═══════════════════════════════════════════════════════════════════════════════

const (
	// MaxResults is the K in "top-K" — FindTopDocuments never returns more
	// than this many documents.
	MaxResults = 5
	// relevanceEpsilon is the absolute tolerance within which two
	// relevance scores are treated as tied (spec.md §4.6).
	relevanceEpsilon = 1e-6
)

// Filter decides whether a candidate document should be considered for
// ranking, given its id, status, and rating.
type Filter func(id int32, status DocumentStatus, rating int32) bool

// ActualOnly is the default filter: keep only ACTUAL documents.
func ActualOnly(_ int32, status DocumentStatus, _ int32) bool {
	return status == ACTUAL
}

// StatusEquals returns a filter that keeps documents with exactly the
// given status.
func StatusEquals(want DocumentStatus) Filter {
	return func(_ int32, status DocumentStatus, _ int32) bool {
		return status == want
	}
}

func (idx *Index) idf(word string) float64 {
	postings := idx.invertedDocs[word]
	if postings == nil || postings.IsEmpty() {
		return 0
	}
	return math.Log(float64(idx.GetDocumentCount()) / float64(postings.GetCardinality()))
}

// FindTopDocuments scores and ranks documents against raw using filter,
// returning at most MaxResults results in composite order. An empty query
// yields an empty result with no error.
func (idx *Index) FindTopDocuments(policy ExecutionPolicy, raw string, filter Filter) ([]Document, error) {
	if filter == nil {
		filter = ActualOnly
	}
	if raw == "" {
		return nil, nil
	}

	query, err := ParseQuery(raw, idx.stopWords)
	if err != nil {
		return nil, err
	}
	if query.Empty() {
		return nil, nil
	}

	var results []Document
	switch policy {
	case Parallel:
		results = idx.findAllDocumentsParallel(query, filter)
	default:
		results = idx.findAllDocumentsSequential(query, filter)
	}

	sortByCompositeOrder(results)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}

func (idx *Index) findAllDocumentsSequential(query Query, filter Filter) []Document {
	relevance := make(map[int32]float64)

	for _, word := range query.Plus {
		postings, ok := idx.inverted[word]
		if !ok {
			continue
		}
		idf := idx.idf(word)
		for id, tf := range postings {
			meta := idx.docs[id]
			if filter(id, meta.status, meta.rating) {
				relevance[id] += tf * idf
			}
		}
	}

	for _, word := range query.Minus {
		for id := range idx.inverted[word] {
			delete(relevance, id)
		}
	}

	results := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		results = append(results, Document{ID: id, Relevance: rel, Rating: idx.docs[id].rating})
	}
	return results
}

func (idx *Index) findAllDocumentsParallel(query Query, filter Filter) []Document {
	acc := NewShardedAccumulator(DefaultAccumulatorShards())

	var g errgroup.Group
	for _, word := range query.Plus {
		word := word
		g.Go(func() error {
			postings, ok := idx.inverted[word]
			if !ok {
				return nil
			}
			idf := idx.idf(word)
			for id, tf := range postings {
				meta := idx.docs[id]
				if filter(id, meta.status, meta.rating) {
					acc.Add(id, tf*idf)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	// Each minus-term's exclusion bitmap is built by its own goroutine from
	// the index's already-existing per-word bitmap, then unioned once the
	// fan-out completes — no bitmap is ever written from two goroutines.
	excludedPerTerm := make([]*roaring.Bitmap, len(query.Minus))
	var g2 errgroup.Group
	for i, word := range query.Minus {
		i, word := i, word
		g2.Go(func() error {
			if bm := idx.invertedDocs[word]; bm != nil {
				excludedPerTerm[i] = bm
			}
			return nil
		})
	}
	_ = g2.Wait()
	nonEmpty := make([]*roaring.Bitmap, 0, len(excludedPerTerm))
	for _, bm := range excludedPerTerm {
		if bm != nil {
			nonEmpty = append(nonEmpty, bm)
		}
	}
	var excluded *roaring.Bitmap
	if len(nonEmpty) > 0 {
		excluded = roaring.FastOr(nonEmpty...)
	}

	ordered := acc.BuildOrdered()
	results := make([]Document, 0, len(ordered))
	for _, e := range ordered {
		if excluded != nil && excluded.Contains(uint32(e.key)) {
			continue
		}
		results = append(results, Document{ID: e.key, Relevance: e.value, Rating: idx.docs[e.key].rating})
	}
	return results
}

// sortByCompositeOrder sorts docs by relevance descending, tying within
// relevanceEpsilon and breaking ties by rating descending, stable
// otherwise.
func sortByCompositeOrder(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if math.Abs(a.Relevance-b.Relevance) <= relevanceEpsilon {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})
}
