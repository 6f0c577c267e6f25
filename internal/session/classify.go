package session

// Class is the render state of one target character.
type Class int

const (
	Untouched Class = iota
	Correct
	Incorrect
	Cursor
)

func (c Class) String() string {
	switch c {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Cursor:
		return "cursor"
	default:
		return "untouched"
	}
}

// CharView is one character of a target word with its classification.
type CharView struct {
	Char  rune
	Class Class
}

// WordView is one target word prepared for rendering.
type WordView struct {
	Text      string
	Current   bool
	Completed bool
	Chars     []CharView
}

// Classify returns the highlight class of character ch at charIdx of word
// wordIdx. It reads session state only.
func (s *Session) Classify(wordIdx, charIdx int, ch rune) Class {
	if wordIdx != s.wordIdx || wordIdx >= len(s.words) {
		return Untouched
	}
	target := []rune(s.words[wordIdx])
	if charIdx == s.charIdx && s.hasLast {
		if s.lastChar == ch && prefixMatches([]rune(s.input), target, charIdx) {
			return Correct
		}
		return Incorrect
	}
	if s.charIdx > len(target)-1 {
		return Incorrect
	}
	if charIdx == s.charIdx {
		return Cursor
	}
	return Untouched
}

// prefixMatches reports whether the first n runes of input equal those of target.
func prefixMatches(input, target []rune, n int) bool {
	if n > len(input) || n > len(target) {
		return false
	}
	for i := 0; i < n; i++ {
		if input[i] != target[i] {
			return false
		}
	}
	return true
}

// WordsView projects every target word with per-character classes.
func (s *Session) WordsView() []WordView {
	views := make([]WordView, len(s.words))
	for i, word := range s.words {
		runes := []rune(word)
		chars := make([]CharView, len(runes))
		for j, r := range runes {
			chars[j] = CharView{Char: r, Class: s.Classify(i, j, r)}
		}
		views[i] = WordView{
			Text:      word,
			Current:   i == s.wordIdx && s.status == Running,
			Completed: s.done[i],
			Chars:     chars,
		}
	}
	return views
}
