package blaze

import (
	"fmt"
	"sort"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY MINI-LANGUAGE
// ═══════════════════════════════════════════════════════════════════════════════
// A query is whitespace-tokenized, then each token is classified:
//
//	"cat"   → plus term  (must be present)
//	"-cat"  → minus term (must be absent)
//	"-"     → invalid (empty minus word)
//	"--cat" → invalid (double minus)
//
// Stop words are discarded silently after the leading '-' is stripped, so
// "-the" with "the" as a stop word simply vanishes from the query rather
// than erroring.
// ═══════════════════════════════════════════════════════════════════════════════

// Query is a parsed search query: the terms that must be present (Plus)
// and the terms that must be absent (Minus). Both are borrowed views into
// the raw query string passed to ParseQuery, so the raw string must outlive
// the Query.
type Query struct {
	Plus  []string
	Minus []string
}

// Empty reports whether the query carries no terms at all.
func (q Query) Empty() bool {
	return len(q.Plus) == 0 && len(q.Minus) == 0
}

// queryWord is one classified token: its text with any leading '-'
// stripped, and whether it was a minus term.
type queryWord struct {
	text    string
	isMinus bool
}

// parseQueryWord classifies a single whitespace-delimited token.
func parseQueryWord(word string) (queryWord, error) {
	if !isValidWord(word) {
		return queryWord{}, fmt.Errorf("%w: word %q contains a control character", ErrInvalidQuery, word)
	}
	isMinus := false
	if len(word) > 0 && word[0] == '-' {
		isMinus = true
		word = word[1:]
	}
	if isMinus && word == "" {
		return queryWord{}, fmt.Errorf("%w: bare minus token", ErrInvalidQuery)
	}
	if isMinus && len(word) > 0 && word[0] == '-' {
		return queryWord{}, fmt.Errorf("%w: double-minus token", ErrInvalidQuery)
	}
	return queryWord{text: word, isMinus: isMinus}, nil
}

// ParseQuery parses raw into a Query, de-duplicating and sorting both the
// plus and minus term sequences in place. FindTopDocuments uses it for both
// execution policies, and the sequential MatchDocument uses it as well.
func ParseQuery(raw string, stop *StopWords) (Query, error) {
	return parseQuery(raw, stop, true)
}

// ParseQueryKeepDuplicates parses raw without sorting or de-duplicating the
// result. The parallel MatchDocument uses this and sorts and de-duplicates
// its own hits afterwards, so a repeated term is merely redundant work.
func ParseQueryKeepDuplicates(raw string, stop *StopWords) (Query, error) {
	return parseQuery(raw, stop, false)
}

func parseQuery(raw string, stop *StopWords, dedup bool) (Query, error) {
	var result Query
	for _, token := range splitWords(raw) {
		qw, err := parseQueryWord(token)
		if err != nil {
			return Query{}, err
		}
		if stop.Contains(qw.text) {
			continue
		}
		if qw.isMinus {
			result.Minus = append(result.Minus, qw.text)
		} else {
			result.Plus = append(result.Plus, qw.text)
		}
	}
	if dedup {
		result.Plus = sortUnique(result.Plus)
		result.Minus = sortUnique(result.Minus)
	}
	return result, nil
}

// sortUnique sorts words and removes adjacent duplicates in place.
func sortUnique(words []string) []string {
	if len(words) < 2 {
		return words
	}
	sort.Strings(words)
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
