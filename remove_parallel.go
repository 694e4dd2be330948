package blaze

import "golang.org/x/sync/errgroup"

// RemoveDocumentParallel is the parallel flavor of RemoveDocument: the
// per-word erases are distributed across goroutines via errgroup.Group.
// Each goroutine holds Index.mu while it erases one word's entries from
// inverted/invertedDocs; forward, docs and docIDs are updated after the
// fan-out completes. The caller still guarantees no concurrent readers,
// exactly as the sequential path does.
func (idx *Index) RemoveDocumentParallel(id int32) {
	words, ok := idx.forward[id]
	if !ok {
		return
	}

	targets := make([]string, 0, len(words))
	for w := range words {
		targets = append(targets, w)
	}

	var g errgroup.Group
	for _, w := range targets {
		w := w
		g.Go(func() error {
			idx.mu.Lock()
			idx.eraseWordEntry(w, id)
			idx.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	delete(idx.forward, id)
	delete(idx.docs, id)
	idx.docIDs.Remove(uint32(id))
}
