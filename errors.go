package blaze

import "errors"

// Sentinel errors for the kinds the public API can fail with. Each is
// wrapped with fmt.Errorf at its call site for context and is checkable
// with errors.Is, following the teacher's ErrNoPostingList-style errors.
var (
	ErrInvalidStopWord     = errors.New("stop word list contains a control character")
	ErrInvalidDocumentID   = errors.New("document id must be non-negative")
	ErrInvalidContent      = errors.New("document text contains a control character")
	ErrDuplicateDocumentID = errors.New("document id already exists")
	ErrInvalidQuery        = errors.New("query is malformed")
	ErrMissingDocument     = errors.New("document id not found")
	ErrOutOfRange          = errors.New("index out of range")
)
