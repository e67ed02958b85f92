// internal/game/state.go
//
// Game is the state machine for a single round of play.
// Responsibilities:
//   - Hold the secret word, submitted rows, the in-progress buffer and key status.
//   - Apply key input (letter / backspace / enter) one event at a time.
//   - Track transitions: not_started → in_progress → won | lost.
//
// Notes:
//   - Game is not safe for concurrent use; callers that share a Game across
//     goroutines must serialise access (see internal/store.Session).
//   - Malformed interactive input is ignored rather than reported.

package game

import "strings"

// Row is a submitted guess together with its per-letter results.
type Row struct {
	Guess   string   `json:"guess"`
	Results []Result `json:"results"`
}

// Game holds the state of one game.
type Game struct {
	phase   Phase
	secret  string
	history []Row
	buffer  []rune
	keys    KeyStatus
	message string
}

// New returns a game in the NotStarted phase.
func New() *Game {
	return &Game{phase: NotStarted, keys: KeyStatus{}}
}

// Start sets the secret word and moves the game to InProgress.
// The word is uppercased; it must then be exactly five letters A–Z.
func (g *Game) Start(secret string) error {
	if g.phase != NotStarted {
		return ErrAlreadyStarted
	}
	w := strings.ToUpper(secret)
	if !ValidWord(w) {
		g.message = MsgInvalidSecret
		return ErrInvalidSecretWord
	}
	g.secret = w
	g.history = g.history[:0]
	g.buffer = g.buffer[:0]
	g.keys = KeyStatus{}
	g.phase = InProgress
	g.message = MsgStarted
	return nil
}

// Reset discards the current game so Start can be called again.
func (g *Game) Reset() {
	*g = Game{phase: NotStarted, keys: KeyStatus{}}
}

// AppendLetter adds ch to the current guess. It is a no-op unless the game is
// in progress, the buffer has room, and ch is a single letter A–Z (any case).
func (g *Game) AppendLetter(ch rune) Outcome {
	if g.phase != InProgress || len(g.buffer) >= WordLength || !isLetter(ch) {
		return Outcome{}
	}
	g.buffer = append(g.buffer, upper(ch))
	return Outcome{Signal: SignalEdit}
}

// Backspace removes the last letter of the current guess, if any.
func (g *Game) Backspace() Outcome {
	if g.phase != InProgress || len(g.buffer) == 0 {
		return Outcome{}
	}
	g.buffer = g.buffer[:len(g.buffer)-1]
	return Outcome{Signal: SignalEdit}
}

// SubmitGuess scores the buffer once it holds five letters.
// Below five letters (or outside InProgress) it does nothing.
func (g *Game) SubmitGuess() Outcome {
	if g.phase != InProgress || len(g.buffer) != WordLength {
		return Outcome{}
	}
	guess := string(g.buffer)
	results, err := Evaluate(g.secret, guess)
	if err != nil {
		// unreachable: secret and buffer lengths are both enforced above
		return Outcome{}
	}
	g.history = append(g.history, Row{Guess: guess, Results: results})
	g.keys.Record(guess, results)
	g.buffer = g.buffer[:0]

	out := Outcome{Results: append([]Result(nil), results...)}
	switch {
	case allCorrect(results):
		g.phase = Won
		out.Signal = SignalWin
	case len(g.history) >= MaxGuesses:
		g.phase = Lost
		out.Signal = SignalLoss
		out.Secret = g.secret
	default:
		out.Signal = SignalContinue
	}
	g.message = out.Message()
	return out
}

// Apply dispatches a single input event.
func (g *Game) Apply(ev Event) Outcome {
	switch ev.Kind {
	case EventLetter:
		return g.AppendLetter(ev.Ch)
	case EventBackspace:
		return g.Backspace()
	case EventEnter:
		return g.SubmitGuess()
	}
	return Outcome{}
}

// Phase reports the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Buffer returns the letters typed into the current row.
func (g *Game) Buffer() string { return string(g.buffer) }

// History returns a deep copy of the submitted rows in order.
func (g *Game) History() []Row {
	out := make([]Row, len(g.history))
	for i, r := range g.history {
		out[i] = Row{Guess: r.Guess, Results: append([]Result(nil), r.Results...)}
	}
	return out
}

// Keys returns a copy of the key status map.
func (g *Game) Keys() KeyStatus { return g.keys.clone() }

// Secret returns the secret word once the game is over, "" before that.
func (g *Game) Secret() string {
	if g.phase.Over() {
		return g.secret
	}
	return ""
}

// Message is the last player-facing status line.
func (g *Game) Message() string { return g.message }

// ValidWord reports whether w is exactly five uppercase letters A–Z.
func ValidWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
