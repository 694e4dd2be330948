package blaze

import "fmt"

// StopWords is the immutable set of words ignored during both indexing and
// query parsing. Built once at construction time; membership checks never
// allocate.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a StopWords set from a whitespace-delimited string.
// Empty words are dropped silently; a control character in any word fails
// with ErrInvalidStopWord.
func NewStopWords(text string) (*StopWords, error) {
	return NewStopWordsFromSlice(splitWords(text))
}

// NewStopWordsFromSlice builds a StopWords set from a container of words.
func NewStopWordsFromSlice(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !isValidWord(w) {
			return nil, fmt.Errorf("%w: word %q", ErrInvalidStopWord, w)
		}
		set[w] = struct{}{}
	}
	return &StopWords{words: set}, nil
}

// Contains reports whether word is a stop word. Safe to call on a nil
// receiver (treated as an empty set), so callers need not special-case an
// unconfigured StopWords.
func (s *StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}
