// Package session implements the timed typing session state machine.
//
// A Session is driven by a single writer: the host forwards keystrokes, text
// field changes and one-second ticks, then reads projections to render. Calls
// that do not apply to the current status are silent no-ops.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/score"
	"github.com/verte-zerg/wordrush/internal/timer"
	"github.com/verte-zerg/wordrush/internal/wordsource"
)

// Defaults used when Options leave a value unset.
const (
	DefaultWords    = 200
	DefaultDuration = 60
)

// Status is the lifecycle state of a session.
type Status int

const (
	Idle Status = iota
	Running
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Options configures a Session.
type Options struct {
	Words    int
	Duration int
	Lang     string
	Now      func() time.Time
}

// Session holds the state of one active typing exercise.
type Session struct {
	source wordsource.Source
	opts   Options
	timer  *timer.Timer

	generation uint64
	status     Status
	words      []string

	wordIdx  int
	charIdx  int
	lastChar rune
	hasLast  bool
	input    string

	completed []int
	done      []bool
	correct   int
	incorrect int

	startedAt time.Time
	endedAt   time.Time
}

// New returns an idle session drawing words from src.
func New(src wordsource.Source, opts Options) *Session {
	if opts.Words <= 0 {
		opts.Words = DefaultWords
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		source:  src,
		opts:    opts,
		timer:   timer.New(),
		charIdx: -1,
	}
}

// Start replaces the session with a fresh one and begins the countdown. It is
// valid from any status. When word generation fails the previous state is kept
// and the error is returned.
func (s *Session) Start() error {
	words, err := s.source.Generate(s.opts.Words)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if len(words) != s.opts.Words {
		return fmt.Errorf("start session: %w", &wordsource.GenerationError{
			Requested: s.opts.Words,
			Produced:  len(words),
			Err:       fmt.Errorf("short word sequence"),
		})
	}

	s.generation++
	s.words = words
	s.wordIdx = 0
	s.charIdx = -1
	s.lastChar = 0
	s.hasLast = false
	s.input = ""
	s.completed = nil
	s.done = make([]bool, len(words))
	s.correct = 0
	s.incorrect = 0
	s.startedAt = s.opts.Now()
	s.endedAt = time.Time{}
	s.timer.Start(s.opts.Duration)
	s.status = Running
	return nil
}

// Tick advances the countdown by one second while running and finishes the
// session when it expires.
func (s *Session) Tick() {
	if s.status != Running {
		return
	}
	if s.timer.Tick() {
		s.onTimerExpired()
	}
}

// onTimerExpired is only reached from Tick while Running.
func (s *Session) onTimerExpired() {
	s.status = Finished
	s.input = ""
	s.endedAt = s.opts.Now()
}

// OnKeystroke applies a keystroke to the highlight cursor or submits the
// current word. The text itself arrives through OnInputChanged.
func (s *Session) OnKeystroke(ev KeyEvent) {
	if s.status != Running || s.wordIdx >= len(s.words) {
		return
	}
	if ev.Mods.Has(ModCtrl) || ev.Mods.Has(ModAlt) {
		return
	}
	switch ev.Kind {
	case KeyComposition:
		return
	case KeyAdvance:
		s.advance()
	case KeyBackspace:
		if s.charIdx == -1 {
			return
		}
		s.charIdx--
		s.lastChar = 0
		s.hasLast = false
	case KeyPrintable:
		s.charIdx++
		s.lastChar = ev.Char
		s.hasLast = true
	}
}

// OnInputChanged records the authoritative text field contents for the
// current word.
func (s *Session) OnInputChanged(text string) {
	if s.status != Running {
		return
	}
	s.input = text
}

func (s *Session) advance() {
	s.evaluateCurrentWord()
	s.completed = append(s.completed, s.wordIdx)
	s.done[s.wordIdx] = true
	s.input = ""
	s.wordIdx++
	s.charIdx = -1
	s.lastChar = 0
	s.hasLast = false
}

func (s *Session) evaluateCurrentWord() {
	if strings.TrimSpace(s.input) == s.words[s.wordIdx] {
		s.correct++
		return
	}
	s.incorrect++
}

// Generation identifies the current Start; it changes on every successful Start.
func (s *Session) Generation() uint64 { return s.generation }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// RemainingSeconds returns the countdown value.
func (s *Session) RemainingSeconds() int {
	if s.status == Idle {
		return s.opts.Duration
	}
	return s.timer.Remaining()
}

// Words returns a copy of the target words.
func (s *Session) Words() []string { return append([]string(nil), s.words...) }

// CurrentWordIndex returns the index of the word being typed; it equals the
// word count once every word was submitted.
func (s *Session) CurrentWordIndex() int { return s.wordIdx }

// CurrentCharIndex returns the highlight cursor, -1 before any character.
func (s *Session) CurrentCharIndex() int { return s.charIdx }

// CurrentInput returns the text typed for the current word.
func (s *Session) CurrentInput() string { return s.input }

// CompletedWordIndices returns the submitted word indices in order.
func (s *Session) CompletedWordIndices() []int { return append([]int(nil), s.completed...) }

// CorrectCount returns the number of exactly matched words.
func (s *Session) CorrectCount() int { return s.correct }

// IncorrectCount returns the number of mismatched words.
func (s *Session) IncorrectCount() int { return s.incorrect }

// Accuracy returns the live accuracy percentage.
func (s *Session) Accuracy() int { return score.Accuracy(s.correct, s.incorrect) }

// Result summarizes the session so far.
func (s *Session) Result() model.Result {
	return model.Result{
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
		Lang:      s.opts.Lang,
		Duration:  s.opts.Duration,
		Attempted: len(s.completed),
		Correct:   s.correct,
		Incorrect: s.incorrect,
		Accuracy:  s.Accuracy(),
	}
}
