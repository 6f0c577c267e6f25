package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrush/internal/session"
)

type styledRune struct {
	s     string
	width int
	word  int // index of the owning word, -1 for separators
}

func (r styledRune) isSpace() bool {
	return r.word < 0
}

func styleFor(view session.WordView, class session.Class) lipgloss.Style {
	switch class {
	case session.Correct:
		return correctStyle
	case session.Incorrect:
		return incorrectStyle
	case session.Cursor:
		return cursorStyle
	}
	switch {
	case view.Completed:
		return completedStyle
	case view.Current:
		return currentWordStyle
	default:
		return pendingStyle
	}
}

func buildStyledRunes(views []session.WordView) []styledRune {
	out := make([]styledRune, 0, len(views)*6)
	for i, view := range views {
		if i > 0 {
			out = append(out, styledRune{s: " ", width: 1, word: -1})
		}
		for _, ch := range view.Chars {
			out = append(out, styledRune{
				s:     styleFor(view, ch.Class).Render(string(ch.Char)),
				width: runewidth.RuneWidth(ch.Char),
				word:  i,
			})
		}
	}
	return out
}

// wrapLines breaks runes into lines no wider than width, splitting at the
// last separator when possible. Separators at a break are dropped.
func wrapLines(runes []styledRune, width int) [][]styledRune {
	if width <= 0 {
		return [][]styledRune{runes}
	}
	var lines [][]styledRune
	line := make([]styledRune, 0, width)
	lineWidth := 0
	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if item.isSpace() {
				lines = append(lines, line)
				line = []styledRune{}
				lineWidth = 0
				i++
				continue
			}
			if cut := lastSpaceIndex(line); cut >= 0 {
				lines = append(lines, line[:cut])
				line = append([]styledRune{}, line[cut+1:]...)
			} else {
				lines = append(lines, line)
				line = []styledRune{}
			}
			lineWidth = lineWidthOf(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		i++
	}
	return append(lines, line)
}

// lineOfWord returns the first line holding a rune of word, or -1.
func lineOfWord(lines [][]styledRune, word int) int {
	for i, line := range lines {
		for _, item := range line {
			if item.word == word {
				return i
			}
		}
	}
	return -1
}

// visibleWindow picks up to height lines, keeping the line of the current
// word second from the top once typing has moved past the first line.
func visibleWindow(lines [][]styledRune, current, height int) [][]styledRune {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	idx := lineOfWord(lines, current)
	if idx < 0 {
		return lines[len(lines)-height:]
	}
	start := idx - 1
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func renderLines(lines [][]styledRune) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		var b strings.Builder
		for _, item := range line {
			b.WriteString(item.s)
		}
		rendered[i] = b.String()
	}
	return strings.Join(rendered, "\n")
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace() {
			return i
		}
	}
	return -1
}
