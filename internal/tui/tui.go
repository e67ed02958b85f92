// Package tui is a terminal front end for a single game, drawn with tcell.
//
// It plays the setup, input and render roles around a *game.Game: it reads
// the secret (typed, masked, or supplied up front), turns key events into
// game events, and redraws from Snapshot after every event.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-share/internal/game"
	"github.com/robalobadob/wordle-share/internal/share"
)

// action is what a key press asks the app to do.
type action int

const (
	actNone action = iota
	actQuit
	actGame    // forward ev to the game
	actRestart // start another game once this one is over
)

// translateKey maps a tcell key event to an app action.
func translateKey(ev *tcell.EventKey) (action, game.Event) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, game.Event{}
	case tcell.KeyCtrlN:
		return actRestart, game.Event{}
	case tcell.KeyEnter:
		return actGame, game.Enter
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return actGame, game.Backspace
	case tcell.KeyRune:
		if e, ok := game.ParseKey(string(ev.Rune())); ok {
			return actGame, e
		}
	}
	return actNone, game.Event{}
}

// App runs one terminal session.
type App struct {
	screen tcell.Screen
	game   *game.Game
	next   func() string // secret for the next game; nil means prompt

	setup   []rune // masked secret being typed while NotStarted
	message string
}

// New returns an App drawing on screen. When secret is non-empty the game
// starts immediately; otherwise the player is prompted to type one. next,
// if non-nil, supplies the secret after Ctrl-N.
func New(screen tcell.Screen, secret string, next func() string) *App {
	a := &App{screen: screen, game: game.New(), next: next}
	if secret != "" {
		a.start(secret)
	}
	return a
}

// Game exposes the underlying game (for callers that print a summary).
func (a *App) Game() *game.Game { return a.game }

func (a *App) start(secret string) {
	if err := a.game.Start(share.NormalizeSecret(secret)); err != nil {
		log.Debug().Err(err).Msg("secret rejected")
		a.message = game.MsgInvalidSecret
		return
	}
	a.message = a.game.Message()
}

// Handle applies one key event and reports whether the app should exit.
func (a *App) Handle(ev *tcell.EventKey) bool {
	act, gev := translateKey(ev)
	switch act {
	case actQuit:
		return true
	case actRestart:
		if a.game.Phase().Over() {
			a.game.Reset()
			a.setup = a.setup[:0]
			a.message = "Enter a secret word"
			if a.next != nil {
				a.start(a.next())
			}
		}
	case actGame:
		if a.game.Phase() == game.NotStarted {
			a.handleSetup(gev)
			return false
		}
		out := a.game.Apply(gev)
		if msg := out.Message(); msg != "" {
			a.message = msg
			if a.game.Phase().Over() {
				a.message += "  (Ctrl-N: new game, Esc: quit)"
			}
			log.Debug().Str("signal", string(out.Signal)).Msg("guess scored")
		}
	}
	return false
}

// handleSetup collects the secret while the game has not started.
func (a *App) handleSetup(ev game.Event) {
	switch ev.Kind {
	case game.EventLetter:
		if len(a.setup) < game.WordLength {
			a.setup = append(a.setup, ev.Ch)
		}
	case game.EventBackspace:
		if len(a.setup) > 0 {
			a.setup = a.setup[:len(a.setup)-1]
		}
	case game.EventEnter:
		a.start(string(a.setup))
		a.setup = a.setup[:0]
	}
}

// Run draws and processes events until the player quits.
func (a *App) Run() error {
	if a.game.Phase() == game.NotStarted && a.message == "" {
		a.message = "Enter a secret word"
	}
	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.Handle(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func (a *App) draw() {
	a.screen.Clear()
	for _, c := range layout(a.game.Snapshot(), len(a.setup), a.message) {
		a.screen.SetContent(c.x, c.y, c.r, nil, c.style)
	}
	a.screen.Show()
}
