package wordsource

import (
	"errors"
	"testing"
	"unicode"
)

func TestGenerateCountAndMembership(t *testing.T) {
	dict := []string{"cat", "dog", "fish"}
	gen := New(dict, WithSeed(1))
	words, err := gen.Generate(200)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(words) != 200 {
		t.Fatalf("expected 200 words, got %d", len(words))
	}
	allowed := map[string]bool{"cat": true, "dog": true, "fish": true}
	for i, w := range words {
		if !allowed[w] {
			t.Fatalf("unexpected word %q at %d", w, i)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	dict := []string{"a", "b", "c", "d", "e"}
	first, err := New(dict, WithSeed(42)).Generate(20)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := New(dict, WithSeed(42)).Generate(20)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected same sequence for same seed, differ at %d", i)
		}
	}
}

func TestGenerateEmptyDictionary(t *testing.T) {
	_, err := New(nil).Generate(5)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Requested != 5 {
		t.Fatalf("expected requested 5, got %d", genErr.Requested)
	}
	if !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("expected ErrEmptyDictionary in chain")
	}
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	_, err := New([]string{"cat"}).Generate(0)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerateBlankWord(t *testing.T) {
	_, err := New([]string{""}).Generate(3)
	if !errors.Is(err, ErrBlankWord) {
		t.Fatalf("expected ErrBlankWord, got %v", err)
	}
}

func TestGenerateDecoration(t *testing.T) {
	gen := New([]string{"cat"}, WithSeed(7), WithDecoration(1, 1, []rune{'!'}))
	words, err := gen.Generate(3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, w := range words {
		if w != "Cat!" {
			t.Fatalf("expected decorated word Cat!, got %q", w)
		}
	}
}

func TestBuiltinWords(t *testing.T) {
	words, err := BuiltinWords("en")
	if err != nil {
		t.Fatalf("BuiltinWords failed: %v", err)
	}
	if len(words) < 200 {
		t.Fatalf("expected a sizeable builtin list, got %d", len(words))
	}
	for _, w := range words {
		for _, r := range w {
			if unicode.IsSpace(r) {
				t.Fatalf("builtin word %q contains whitespace", w)
			}
		}
	}
	if _, err := BuiltinWords("xx"); err == nil {
		t.Fatalf("expected error for unknown builtin language")
	}
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func(count int) ([]string, error) {
		return make([]string, count), nil
	})
	words, err := src.Generate(4)
	if err != nil || len(words) != 4 {
		t.Fatalf("unexpected result: %v %v", words, err)
	}
}
