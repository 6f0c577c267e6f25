package wordsource

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
	"unicode"
)

// Generator draws words uniformly and independently from a dictionary.
type Generator struct {
	rnd      *rand.Rand
	words    []string
	capsPct  float64
	punctPct float64
	punctSet []rune
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the draw sequence deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithDecoration capitalizes the first letter with probability capsPct and
// appends one rune from punctSet with probability punctPct.
func WithDecoration(capsPct, punctPct float64, punctSet []rune) Option {
	return func(g *Generator) {
		g.capsPct = capsPct
		g.punctPct = punctPct
		g.punctSet = punctSet
	}
}

// New returns a Generator over words. The slice is copied.
func New(words []string, opts ...Option) *Generator {
	g := &Generator{words: append([]string(nil), words...)}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(newSeed()))
	}
	return g
}

// Generate implements Source.
func (g *Generator) Generate(count int) ([]string, error) {
	if count <= 0 {
		return nil, &GenerationError{Requested: count, Err: fmt.Errorf("count must be > 0")}
	}
	if len(g.words) == 0 {
		return nil, &GenerationError{Requested: count, Err: ErrEmptyDictionary}
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := g.words[g.rnd.Intn(len(g.words))]
		if word == "" {
			return nil, &GenerationError{Requested: count, Produced: i, Err: ErrBlankWord}
		}
		word = applyCaps(g.rnd, word, g.capsPct)
		word = applyPunct(g.rnd, word, g.punctPct, g.punctSet)
		result = append(result, word)
	}
	return result, nil
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 || rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 || rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}
