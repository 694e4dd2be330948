package blaze

import "testing"

func TestNewStopWords(t *testing.T) {
	stop, err := NewStopWords("in the  and")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range []string{"in", "the", "and"} {
		if !stop.Contains(w) {
			t.Errorf("expected %q to be a stop word", w)
		}
	}
	if stop.Contains("cat") {
		t.Error("cat should not be a stop word")
	}
}

func TestNewStopWords_InvalidWord(t *testing.T) {
	_, err := NewStopWords("in\x01 the")
	if err == nil {
		t.Fatal("expected error for control character in stop word")
	}
}

func TestNewStopWordsFromSlice_EmptyDropped(t *testing.T) {
	stop, err := NewStopWordsFromSlice([]string{"in", "", "the"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stop.Contains("") {
		t.Error("empty word should have been dropped")
	}
}

func TestNilStopWords(t *testing.T) {
	var stop *StopWords
	if stop.Contains("anything") {
		t.Error("nil StopWords should contain nothing")
	}
}
