package blaze

import (
	"errors"
	"reflect"
	"testing"
)

func TestMatchDocument_Basic(t *testing.T) {
	idx := NewIndex(nil)
	_ = idx.AddDocument(0, "white cat and fashionable collar", ACTUAL, nil)

	words, status, err := idx.MatchDocument(Sequential, "cat collar", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ACTUAL {
		t.Errorf("status = %v, want ACTUAL", status)
	}
	if !reflect.DeepEqual(words, []string{"cat", "collar"}) {
		t.Errorf("words = %v, want [cat collar]", words)
	}
}

func TestMatchDocument_MinusExcludesEverything(t *testing.T) {
	idx := NewIndex(nil)
	_ = idx.AddDocument(0, "white cat and fashionable collar", ACTUAL, nil)

	words, _, err := idx.MatchDocument(Sequential, "cat -collar", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected empty word list when a minus-term hits, got %v", words)
	}
}

func TestMatchDocument_UnknownID(t *testing.T) {
	idx := NewIndex(nil)
	_, _, err := idx.MatchDocument(Sequential, "cat", 99)
	if !errors.Is(err, ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument, got %v", err)
	}
}

func TestMatchDocument_EmptyQuery(t *testing.T) {
	idx := NewIndex(nil)
	_ = idx.AddDocument(0, "cat", ACTUAL, nil)
	words, status, err := idx.MatchDocument(Sequential, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 0 || status != ACTUAL {
		t.Errorf("got words=%v status=%v, want empty/ACTUAL", words, status)
	}
}

func TestMatchDocument_SequentialAndParallelAgree(t *testing.T) {
	idx := NewIndex(nil)
	_ = idx.AddDocument(0, "cat dog cat bird fish dog", ACTUAL, nil)

	seqWords, seqStatus, err := idx.MatchDocument(Sequential, "cat dog bird snake", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parWords, parStatus, err := idx.MatchDocument(Parallel, "cat dog bird snake", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seqStatus != parStatus {
		t.Errorf("status mismatch: %v vs %v", seqStatus, parStatus)
	}
	if !reflect.DeepEqual(seqWords, parWords) {
		t.Errorf("word mismatch: sequential=%v parallel=%v", seqWords, parWords)
	}
}

func TestDedupSorted(t *testing.T) {
	got := dedupSorted([]string{"a", "a", "b", "b", "b", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupSorted = %v, want %v", got, want)
	}
}
