package blaze

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseQuery_PlusAndMinus(t *testing.T) {
	q, err := ParseQuery("cat -dog bird", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"bird", "cat"}) {
		t.Errorf("Plus = %v, want sorted [bird cat]", q.Plus)
	}
	if !reflect.DeepEqual(q.Minus, []string{"dog"}) {
		t.Errorf("Minus = %v, want [dog]", q.Minus)
	}
}

func TestParseQuery_DedupesAndSorts(t *testing.T) {
	q, err := ParseQuery("cat cat dog", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"cat", "dog"}) {
		t.Errorf("Plus = %v, want [cat dog]", q.Plus)
	}
}

func TestParseQuery_BareMinus(t *testing.T) {
	_, err := ParseQuery("cat - dog", nil)
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseQuery_DoubleMinus(t *testing.T) {
	_, err := ParseQuery("--cat", nil)
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseQuery_ControlCharacter(t *testing.T) {
	_, err := ParseQuery("ca\x01t", nil)
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseQuery_StopWordsDiscarded(t *testing.T) {
	stop, _ := NewStopWords("in the")
	q, err := ParseQuery("in the cat", stop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"cat"}) {
		t.Errorf("Plus = %v, want [cat]", q.Plus)
	}
}

func TestParseQueryKeepDuplicates(t *testing.T) {
	q, err := ParseQueryKeepDuplicates("cat cat dog", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Plus) != 3 {
		t.Errorf("expected duplicates preserved, got %v", q.Plus)
	}
}

func TestQueryEmpty(t *testing.T) {
	q, _ := ParseQuery("", nil)
	if !q.Empty() {
		t.Error("empty raw query should yield an empty Query")
	}
}
