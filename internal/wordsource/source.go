// Package wordsource produces the target words for a typing session.
package wordsource

import (
	"errors"
	"fmt"
)

// ErrEmptyDictionary is returned when there are no words to draw from.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// ErrBlankWord is returned when the dictionary yields an empty word.
var ErrBlankWord = errors.New("dictionary produced a blank word")

// Source produces an ordered sequence of count words.
type Source interface {
	Generate(count int) ([]string, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(count int) ([]string, error)

// Generate implements Source.
func (f SourceFunc) Generate(count int) ([]string, error) {
	return f(count)
}

// GenerationError reports that a source could not produce the requested words.
type GenerationError struct {
	Requested int
	Produced  int
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate words: produced %d of %d: %v", e.Produced, e.Requested, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
