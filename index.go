// Package blaze implements an in-memory, incrementally updatable inverted
// index with TF-IDF ranked retrieval and structural document matching.
//
// ═══════════════════════════════════════════════════════════════════════════════
// WHAT IS AN INVERTED INDEX?
// ═══════════════════════════════════════════════════════════════════════════════
// An inverted index is like the index at the back of a book: instead of
// scanning every document to find a word, you look the word up once and get
// the list of documents (and, here, the term frequency within each) that
// contain it directly.
//
//	"quick" → {Doc1: 0.25, Doc3: 0.33}
//	"brown" → {Doc1: 0.25, Doc3: 0.33}
//	"fox"   → {Doc1: 0.25}
//
// The index also keeps the mirror image — the forward index, doc → word →
// frequency — so that removing a document or inspecting its contents never
// requires scanning every posting list.
// ═══════════════════════════════════════════════════════════════════════════════

package blaze

import (
	"fmt"
	"iter"
	"log/slog"
	"sort"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// Index holds the inverted and forward data structures described in
// spec.md §3. Mutations (AddDocument, RemoveDocument) are not safe to run
// concurrently with each other or with reads — the caller is responsible
// for serializing writers, the same contract the C++ original's
// SearchServer carries. Reads (FindTopDocuments, MatchDocument,
// GetWordFrequencies, DocumentIDs) may run concurrently with each other.
type Index struct {
	stopWords *StopWords

	// storage is append-only; entries are never relocated, so the word
	// slices handed out of forward/inverted stay valid for the life of the
	// server (or until the owning document is removed).
	storage []string

	inverted     map[string]map[int32]float64
	invertedDocs map[string]*roaring.Bitmap // word -> bitmap of doc ids, mirrors inverted's keys
	forward      map[int32]map[string]float64
	docs         map[int32]documentMeta
	docIDs       *roaring.Bitmap

	// mu guards inverted/invertedDocs only while a parallel mutation
	// (RemoveDocumentParallel) is fanning per-word erases out across
	// goroutines. It is not a substitute for the caller's serialization
	// contract above.
	mu sync.Mutex
}

// NewIndex creates an empty Index using stop as its stop-word set. A nil
// stop is treated as an empty set.
func NewIndex(stop *StopWords) *Index {
	return &Index{
		stopWords:    stop,
		inverted:     make(map[string]map[int32]float64),
		invertedDocs: make(map[string]*roaring.Bitmap),
		forward:      make(map[int32]map[string]float64),
		docs:         make(map[int32]documentMeta),
		docIDs:       roaring.NewBitmap(),
	}
}

func validateContent(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] < 0x20 {
			return fmt.Errorf("%w", ErrInvalidContent)
		}
	}
	return nil
}

// AddDocument registers a document under id with the given status and
// ratings. It validates id and text before mutating any state: a rejected
// call leaves the index exactly as it was (spec.md §7).
//
// A document whose text has no non-stop tokens is still registered, with no
// postings — the original's 1/0 division is deliberately avoided.
func (idx *Index) AddDocument(id int32, text string, status DocumentStatus, ratings []int32) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDocumentID, id)
	}
	if _, exists := idx.docs[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateDocumentID, id)
	}
	if err := validateContent(text); err != nil {
		return err
	}

	idx.storage = append(idx.storage, text)
	stored := idx.storage[len(idx.storage)-1]

	tokens, err := splitIntoWordsNoStop(stored, idx.stopWords)
	if err != nil {
		// Already validated above; unreachable in practice, kept for safety.
		return err
	}

	n := len(tokens)
	var inv float64
	if n > 0 {
		inv = 1.0 / float64(n)
	}

	wordFreqs := make(map[string]float64, n)
	for _, w := range tokens {
		wordFreqs[w] += inv
	}

	for w, freq := range wordFreqs {
		if idx.inverted[w] == nil {
			idx.inverted[w] = make(map[int32]float64)
			idx.invertedDocs[w] = roaring.NewBitmap()
		}
		idx.inverted[w][id] = freq
		idx.invertedDocs[w].Add(uint32(id))
	}
	idx.forward[id] = wordFreqs
	idx.docs[id] = documentMeta{rating: averageRating(ratings), status: status}
	idx.docIDs.Add(uint32(id))

	slog.Default().Debug("indexed document", slog.Int("id", int(id)), slog.Int("tokens", n))
	return nil
}

// RemoveDocument deletes id from the index. Removing an unknown or
// already-removed id is a silent no-op, so repeated calls are idempotent.
func (idx *Index) RemoveDocument(id int32) {
	words, ok := idx.forward[id]
	if !ok {
		return
	}
	for w := range words {
		idx.eraseWordEntry(w, id)
	}
	delete(idx.forward, id)
	delete(idx.docs, id)
	idx.docIDs.Remove(uint32(id))
}

func (idx *Index) eraseWordEntry(word string, id int32) {
	postings := idx.inverted[word]
	delete(postings, id)
	if bm := idx.invertedDocs[word]; bm != nil {
		bm.Remove(uint32(id))
	}
	if len(postings) == 0 {
		delete(idx.inverted, word)
		delete(idx.invertedDocs, word)
	}
}

// GetDocumentCount reports how many documents are currently indexed.
func (idx *Index) GetDocumentCount() int32 {
	return int32(len(idx.docs))
}

// GetWordFrequencies returns a copy of doc id's word -> TF map, or an empty
// map if the id is unknown.
func (idx *Index) GetWordFrequencies(id int32) map[string]float64 {
	freqs, ok := idx.forward[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for w, f := range freqs {
		out[w] = f
	}
	return out
}

// DocumentIDs iterates the current document ids in ascending order.
func (idx *Index) DocumentIDs() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		it := idx.docIDs.Iterator()
		for it.HasNext() {
			if !yield(int32(it.Next())) {
				return
			}
		}
	}
}

// documentStatus looks up a document's status; ok is false if id is
// unknown.
func (idx *Index) documentStatus(id int32) (DocumentStatus, bool) {
	meta, ok := idx.docs[id]
	if !ok {
		return 0, false
	}
	return meta.status, true
}

// sortedDocIDs is a small helper used by the duplicate scrubber and tests
// that want a plain slice instead of the iterator.
func (idx *Index) sortedDocIDs() []int32 {
	ids := make([]int32, 0, len(idx.docs))
	for id := range idx.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
