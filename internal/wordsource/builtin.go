package wordsource

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/verte-zerg/wordrush/internal/wordlist"
)

//go:embed words_en.txt
var builtinEnglish string

// BuiltinWords returns the embedded dictionary for lang.
func BuiltinWords(lang string) ([]string, error) {
	switch strings.ToLower(lang) {
	case "", "en":
		return wordlist.ReadWords(strings.NewReader(builtinEnglish))
	default:
		return nil, fmt.Errorf("no builtin word list for %q", lang)
	}
}
