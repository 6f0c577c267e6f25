// Package tui provides the Bubble Tea typing interface.
//
// The Model is the single writer for its session: keystrokes, text field
// changes and timer ticks all arrive as messages on the Bubble Tea loop.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/session"
)

const (
	visibleLines   = 3
	startFailedMsg = "could not start session, try again"
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#2E7D32"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#C62828"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E1E1E")).Background(lipgloss.Color("#B0B0B0"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	completedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Strikethrough(true)
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FB3BF")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle        = lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

type keyMap struct {
	Start   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Restart: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// tickMsg is one elapsed second for the session generation that scheduled it.
type tickMsg struct {
	gen uint64
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *session.Session
	input   textinput.Model
	keys    keyMap
	help    help.Model

	width  int
	height int

	errMsg    string
	result    model.Result
	hasResult bool
}

// NewModel constructs a typing TUI model around an idle session.
func NewModel(s *session.Session) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "press enter to start"
	disableEditing(&input.KeyMap)
	return &Model{
		session: s,
		input:   input,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// disableEditing turns off the text field shortcuts the highlight cursor
// cannot follow. Only appending runes and backspace stay live.
func disableEditing(km *textinput.KeyMap) {
	off := key.NewBinding(key.WithDisabled())
	km.CharacterForward = off
	km.CharacterBackward = off
	km.WordForward = off
	km.WordBackward = off
	km.DeleteWordBackward = off
	km.DeleteWordForward = off
	km.DeleteAfterCursor = off
	km.DeleteBeforeCursor = off
	km.DeleteCharacterForward = off
	km.LineStart = off
	km.LineEnd = off
	km.Paste = off
	km.AcceptSuggestion = off
	km.NextSuggestion = off
	km.PrevSuggestion = off
}

// Result returns the outcome of the last finished session.
func (m *Model) Result() (model.Result, bool) {
	return m.result, m.hasResult
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			return m, m.start()
		}
		if m.session.Status() != session.Running {
			if key.Matches(msg, m.keys.Start) {
				return m, m.start()
			}
			return m, nil
		}
		return m, m.handleTypingKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) start() tea.Cmd {
	if err := m.session.Start(); err != nil {
		m.errMsg = startFailedMsg
		logErrf("%v\n", err)
		return nil
	}
	m.errMsg = ""
	m.input.Reset()
	m.input.Placeholder = ""
	return tea.Batch(m.input.Focus(), tickCmd(m.session.Generation()))
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// handleTick drops ticks scheduled by an earlier session.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != m.session.Generation() || m.session.Status() != session.Running {
		return nil
	}
	m.session.Tick()
	if m.session.Status() == session.Finished {
		m.finish()
		return nil
	}
	return tickCmd(msg.gen)
}

func (m *Model) finish() {
	m.input.Reset()
	m.input.Blur()
	m.input.Placeholder = "press enter to start again"
	m.result = m.session.Result()
	m.hasResult = true
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Alt {
		m.session.OnKeystroke(session.KeyEvent{Kind: session.KeyPrintable, Mods: session.ModAlt})
		return nil
	}
	switch msg.Type {
	case tea.KeySpace, tea.KeyEnter:
		m.session.OnKeystroke(session.Advance())
		m.input.Reset()
		return nil
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.session.OnKeystroke(session.Backspace())
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == ' ' {
				continue
			}
			m.session.OnKeystroke(session.Printable(r))
		}
	default:
		if r, ok := ctrlChord(msg.Type); ok {
			m.session.OnKeystroke(session.KeyEvent{Kind: session.KeyPrintable, Char: r, Mods: session.ModCtrl})
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.OnInputChanged(stripSpaces(m.input.Value()))
	return cmd
}

// ctrlChord returns the letter of a Ctrl+letter key. Terminals send tab as
// ctrl+i, so it is reported as a chord too.
func ctrlChord(t tea.KeyType) (rune, bool) {
	if t < tea.KeyCtrlA || t > tea.KeyCtrlZ {
		return 0, false
	}
	return 'a' + rune(t-tea.KeyCtrlA), true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderHeader()}
	if m.session.Status() != session.Idle {
		sections = append(sections, m.renderWords())
	}
	sections = append(sections, m.input.View())
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	if m.session.Status() == session.Finished {
		sections = append(sections, m.renderResult())
	}
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(1, int(float64(m.width)*0.70))
}

func (m *Model) renderHeader() string {
	clock := timerStyle.Render(fmt.Sprintf("%ds", m.session.RemainingSeconds()))
	live := footerStyle.Render(fmt.Sprintf("correct %d · incorrect %d · accuracy %d%%",
		m.session.CorrectCount(), m.session.IncorrectCount(), m.session.Accuracy()))
	return clock + "  " + live
}

func (m *Model) renderWords() string {
	runes := buildStyledRunes(m.session.WordsView())
	lines := wrapLines(runes, m.contentWidth())
	lines = visibleWindow(lines, m.session.CurrentWordIndex(), visibleLines)
	return renderLines(lines)
}

func (m *Model) renderResult() string {
	card := func(title string, value string) string {
		return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Correct words", fmt.Sprintf("%d", m.result.Correct)),
		card("Incorrect words", fmt.Sprintf("%d", m.result.Incorrect)),
		card("Accuracy", fmt.Sprintf("%d%%", m.result.Accuracy)),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
