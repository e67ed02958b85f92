// Command wordle-tui plays the word game in a terminal.
//
//	wordle-tui                     prompt for a secret word, then guess it
//	wordle-tui -random             guess a random answer
//	wordle-tui -daily              guess today's word
//	wordle-tui -link URL           guess the word carried by a share link
//	wordle-tui -share WORD         print share links for WORD and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-share/internal/config"
	"github.com/robalobadob/wordle-share/internal/daily"
	"github.com/robalobadob/wordle-share/internal/game"
	"github.com/robalobadob/wordle-share/internal/share"
	"github.com/robalobadob/wordle-share/internal/tui"
	"github.com/robalobadob/wordle-share/internal/words"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and plays one terminal session. Deferred cleanup (log file,
// screen) always runs before main decides the exit code.
func run(args []string, stdout io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("wordle-tui", flag.ContinueOnError)
	var (
		random  = fs.Bool("random", false, "guess a random answer")
		today   = fs.Bool("daily", false, "guess today's word")
		link    = fs.String("link", "", "share link to open")
		setWord = fs.String("share", "", "print share links for this word and exit")
		logPath = fs.String("log", "", "write debug logs to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The screen owns stdout/stderr while running, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var sealer *share.Sealer
	if cfg.Game.ShareSecret != "" {
		sealer = share.NewSealer(cfg.Game.ShareSecret, cfg.Game.ShareTTL)
	}

	if *setWord != "" {
		return printShare(stdout, cfg.Game.ShareBaseURL, *setWord, sealer)
	}

	list, err := words.Load(cfg.Game.AnswersFile)
	if err != nil {
		log.Error().Err(err).Msg("load words")
		return fmt.Errorf("load words: %w", err)
	}

	var (
		secret string
		next   func() string
	)
	switch {
	case *link != "":
		secret, err = share.FromLink(*link, sealer)
		if err != nil {
			log.Error().Err(err).Msg("open share link")
			return err
		}
	case *today:
		_, secret = daily.Word(list, time.Now(), cfg.Game.DailySalt)
	case *random:
		secret, next = list.Random(), list.Random
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	app := tui.New(screen, secret, next)
	runErr := app.Run()
	screen.Fini()
	if runErr != nil {
		return runErr
	}

	g := app.Game()
	if g.Phase().Over() {
		fmt.Fprintf(stdout, "%s in %d/%d: %s\n", g.Phase(), len(g.History()), game.MaxGuesses, g.Secret())
	}
	return nil
}

// printShare writes the plain link and, when sealing is configured, the
// sealed link for word.
func printShare(w io.Writer, base, word string, sealer *share.Sealer) error {
	secret := share.NormalizeSecret(word)
	if !game.ValidWord(secret) {
		return fmt.Errorf("%s: %w", game.MsgInvalidSecret, game.ErrInvalidSecretWord)
	}
	fmt.Fprintln(w, share.Link(base, secret))
	if sealer != nil {
		sealed, err := sealer.Link(base, secret)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sealed)
	}
	return nil
}
