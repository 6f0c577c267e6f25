package session

// KeyKind identifies what a keystroke means to the session.
type KeyKind int

const (
	// KeyPrintable is a character that lands in the text field.
	KeyPrintable KeyKind = iota
	// KeyAdvance submits the current word (space or enter).
	KeyAdvance
	// KeyBackspace moves the highlight cursor back one character.
	KeyBackspace
	// KeyComposition is an IME composition pseudo-key and is ignored.
	KeyComposition
)

// Modifiers is a bit set of held modifier keys. Events carrying Ctrl or Alt
// are shortcuts and never touch the cursor. Terminal hosts fold Shift into the
// typed rune, so ModShift is only set by hosts that report it separately.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// KeyEvent is a single keystroke as seen by the host.
type KeyEvent struct {
	Kind KeyKind
	Char rune
	Mods Modifiers
}

// Printable builds a KeyEvent for a typed character.
func Printable(r rune) KeyEvent {
	return KeyEvent{Kind: KeyPrintable, Char: r}
}

// Advance builds an advance KeyEvent.
func Advance() KeyEvent {
	return KeyEvent{Kind: KeyAdvance}
}

// Backspace builds a backspace KeyEvent.
func Backspace() KeyEvent {
	return KeyEvent{Kind: KeyBackspace}
}
