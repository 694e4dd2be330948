package blaze

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════════
// TOKENIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// Splitting is purely on the ASCII space character — no Unicode-aware
// splitting, no lowercasing, no stemming. This index ranks raw words, not
// normalized ones; leading, trailing, and repeated spaces never produce
// empty tokens.
//
// A word is invalid if any byte in it is a control character (< 0x20,
// including '\0'). Validation never copies: it walks the borrowed slice.
// ═══════════════════════════════════════════════════════════════════════════════

// splitWords splits text on ASCII space, dropping empty runs.
func splitWords(text string) []string {
	var words []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// isValidWord reports whether word contains no control character.
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}

// splitIntoWordsNoStop tokenizes text, drops stop words, and rejects any
// token containing a control character.
func splitIntoWordsNoStop(text string, stop *StopWords) ([]string, error) {
	words := splitWords(text)
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !isValidWord(w) {
			return nil, fmt.Errorf("%w: word %q", ErrInvalidContent, w)
		}
		if stop == nil || !stop.Contains(w) {
			result = append(result, w)
		}
	}
	return result, nil
}
