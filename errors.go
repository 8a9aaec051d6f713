package itunes

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is() to check.
var (
	ErrUnknownMedia      = errors.New("itunes: unknown media")
	ErrInvalidVocabulary = errors.New("itunes: invalid vocabulary")
)

// VocabularyError reports an entity or attribute value that is not legal
// for the media it was attached to.
type VocabularyError struct {
	Media Media
	Field string // "entity" or "attribute"
	Value string
}

func (e *VocabularyError) Error() string {
	return fmt.Sprintf("itunes: %s %q is not valid for media %q", e.Field, e.Value, e.Media)
}

// Is makes errors.Is(err, ErrInvalidVocabulary) true for any VocabularyError.
func (e *VocabularyError) Is(target error) bool {
	return target == ErrInvalidVocabulary
}
