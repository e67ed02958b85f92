// internal/game/types.go
//
// Core type definitions for the word game engine.
// Defines:
//   - Result: per-letter classification of a submitted guess.
//   - Phase: lifecycle of a single game (not_started → in_progress → won/lost).
//   - Event: discrete key input delivered by a front end.
//   - Outcome: the signal produced by applying an event.

package game

import "errors"

const (
	// WordLength is the number of letters in the secret word and every guess.
	WordLength = 5
	// MaxGuesses is the number of rows on the board.
	MaxGuesses = 6
)

var (
	ErrInvalidSecretWord  = errors.New("secret word must be exactly 5 letters A-Z")
	ErrInvalidGuessLength = errors.New("guess must be exactly 5 letters")
	ErrAlreadyStarted     = errors.New("game already started")
)

// Result represents the evaluation of a single letter in a guess.
//   - "correct": letter matches the secret at the same position.
//   - "present": letter is in the secret at another, still unmatched position.
//   - "absent":  letter is not in any unmatched position of the secret.
type Result string

const (
	Correct Result = "correct"
	Present Result = "present"
	Absent  Result = "absent"
)

// rank orders results so key status can only move upward.
func (r Result) rank() int {
	switch r {
	case Correct:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	}
	return 0
}

// Phase is the coarse state of a game.
type Phase string

const (
	NotStarted Phase = "not_started"
	InProgress Phase = "in_progress"
	Won        Phase = "won"
	Lost       Phase = "lost"
)

// Over reports whether the phase is terminal.
func (p Phase) Over() bool { return p == Won || p == Lost }

// EventKind identifies the kind of key input.
type EventKind int

const (
	EventLetter EventKind = iota
	EventBackspace
	EventEnter
)

// Event is a single key press from an input source.
type Event struct {
	Kind EventKind
	Ch   rune // only meaningful for EventLetter
}

// Letter returns a letter key event.
func Letter(ch rune) Event { return Event{Kind: EventLetter, Ch: ch} }

var (
	Backspace = Event{Kind: EventBackspace}
	Enter     = Event{Kind: EventEnter}
)

// ParseKey maps a key name as sent by clients ("A", "BACKSPACE", "ENTER")
// to an Event. Unknown names return false.
func ParseKey(key string) (Event, bool) {
	switch key {
	case "ENTER", "Enter", "enter":
		return Enter, true
	case "BACKSPACE", "Backspace", "backspace":
		return Backspace, true
	}
	r := []rune(key)
	if len(r) == 1 && isLetter(r[0]) {
		return Letter(r[0]), true
	}
	return Event{}, false
}

// Signal describes what happened after an event was applied.
type Signal string

const (
	SignalNone     Signal = ""         // event did not apply
	SignalEdit     Signal = "edit"     // buffer changed
	SignalContinue Signal = "continue" // guess scored, game goes on
	SignalWin      Signal = "win"
	SignalLoss     Signal = "loss"
)

// Outcome is returned by state-changing operations.
type Outcome struct {
	Signal  Signal
	Results []Result // set when a guess was scored
	Secret  string   // set on loss
}

// Message is the player-facing line for an outcome, or "" when there is none.
func (o Outcome) Message() string {
	switch o.Signal {
	case SignalContinue:
		return "Next guess"
	case SignalWin:
		return "Congratulations! You guessed the word!"
	case SignalLoss:
		return "Game over! The word was " + o.Secret
	}
	return ""
}

const (
	MsgStarted       = "Game started! Make your first guess"
	MsgInvalidSecret = "Please enter a 5-letter word"
)
