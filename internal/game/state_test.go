package game

import (
	"errors"
	"slices"
	"testing"
)

func typeWord(g *Game, w string) {
	for _, ch := range w {
		g.AppendLetter(ch)
	}
}

func started(t *testing.T, secret string) *Game {
	t.Helper()
	g := New()
	if err := g.Start(secret); err != nil {
		t.Fatalf("Start(%q): %v", secret, err)
	}
	return g
}

func TestStart(t *testing.T) {
	g := New()
	if g.Phase() != NotStarted {
		t.Fatalf("new game phase = %s", g.Phase())
	}
	for _, bad := range []string{"", "CRAN", "CRANES", "CR4NE", "CRÄNE", " CRANE"} {
		if err := g.Start(bad); !errors.Is(err, ErrInvalidSecretWord) {
			t.Errorf("Start(%q) err = %v, want ErrInvalidSecretWord", bad, err)
		}
		if g.Phase() != NotStarted {
			t.Errorf("Start(%q) left phase %s", bad, g.Phase())
		}
	}
	if g.Message() != MsgInvalidSecret {
		t.Errorf("message = %q", g.Message())
	}
	if err := g.Start("crane"); err != nil {
		t.Fatalf("Start(crane): %v", err)
	}
	if g.Phase() != InProgress || g.Message() != MsgStarted {
		t.Errorf("after start: phase %s, message %q", g.Phase(), g.Message())
	}
	if err := g.Start("OTHER"); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start err = %v, want ErrAlreadyStarted", err)
	}
}

func TestInputIgnoredBeforeStart(t *testing.T) {
	g := New()
	if out := g.AppendLetter('A'); out.Signal != SignalNone {
		t.Errorf("AppendLetter before start = %q", out.Signal)
	}
	if out := g.SubmitGuess(); out.Signal != SignalNone {
		t.Errorf("SubmitGuess before start = %q", out.Signal)
	}
	if g.Buffer() != "" {
		t.Errorf("buffer = %q", g.Buffer())
	}
}

func TestBufferBoundaries(t *testing.T) {
	g := started(t, "CRANE")

	if out := g.Backspace(); out.Signal != SignalNone {
		t.Errorf("backspace on empty buffer = %q", out.Signal)
	}
	typeWord(g, "abcdefg")
	if g.Buffer() != "ABCDE" {
		t.Errorf("buffer = %q, want ABCDE", g.Buffer())
	}
	g.Backspace()
	if out := g.SubmitGuess(); out.Signal != SignalNone {
		t.Errorf("submit with 4 letters = %q", out.Signal)
	}
	if len(g.History()) != 0 {
		t.Errorf("history grew on short submit")
	}
	for _, ch := range []rune{'1', ' ', '-', 'é'} {
		if out := g.AppendLetter(ch); out.Signal != SignalNone {
			t.Errorf("AppendLetter(%q) = %q", ch, out.Signal)
		}
	}
	if g.Buffer() != "ABCD" {
		t.Errorf("buffer = %q, want ABCD", g.Buffer())
	}
}

func TestContinueThenWin(t *testing.T) {
	g := started(t, "CRANE")

	typeWord(g, "slate")
	out := g.SubmitGuess()
	if out.Signal != SignalContinue || g.Phase() != InProgress {
		t.Fatalf("first guess: signal %q phase %s", out.Signal, g.Phase())
	}
	if g.Message() != "Next guess" {
		t.Errorf("message = %q", g.Message())
	}
	if g.Buffer() != "" {
		t.Errorf("buffer not cleared: %q", g.Buffer())
	}
	if g.Secret() != "" {
		t.Errorf("secret leaked while in progress")
	}

	typeWord(g, "CRANE")
	out = g.Apply(Enter)
	if out.Signal != SignalWin || g.Phase() != Won {
		t.Fatalf("winning guess: signal %q phase %s", out.Signal, g.Phase())
	}
	if !allCorrect(out.Results) {
		t.Errorf("winning results = %v", out.Results)
	}
	if got := len(g.History()); got != 2 {
		t.Errorf("history len = %d", got)
	}
	if out := g.AppendLetter('A'); out.Signal != SignalNone {
		t.Errorf("input after win = %q", out.Signal)
	}
}

func TestWinOnLastRow(t *testing.T) {
	g := started(t, "CRANE")
	for i := 0; i < MaxGuesses-1; i++ {
		typeWord(g, "MOIST")
		g.SubmitGuess()
	}
	typeWord(g, "CRANE")
	if out := g.SubmitGuess(); out.Signal != SignalWin || g.Phase() != Won {
		t.Fatalf("sixth-row win: signal %q phase %s", out.Signal, g.Phase())
	}
}

func TestLoss(t *testing.T) {
	g := started(t, "CRANE")
	var out Outcome
	for i := 0; i < MaxGuesses; i++ {
		if g.Phase() != InProgress {
			t.Fatalf("phase %s before guess %d", g.Phase(), i+1)
		}
		typeWord(g, "MOIST")
		out = g.SubmitGuess()
	}
	if out.Signal != SignalLoss || g.Phase() != Lost {
		t.Fatalf("signal %q phase %s", out.Signal, g.Phase())
	}
	if out.Secret != "CRANE" || g.Secret() != "CRANE" {
		t.Errorf("secret not revealed: outcome %q, game %q", out.Secret, g.Secret())
	}
	if g.Message() != "Game over! The word was CRANE" {
		t.Errorf("message = %q", g.Message())
	}
	typeWord(g, "CRANE")
	if out := g.SubmitGuess(); out.Signal != SignalNone {
		t.Errorf("submit after loss = %q", out.Signal)
	}
	if len(g.History()) != MaxGuesses {
		t.Errorf("history len = %d", len(g.History()))
	}
}

func TestKeysNeverDowngrade(t *testing.T) {
	g := started(t, "CRANE")
	typeWord(g, "CRUST")
	g.SubmitGuess()
	typeWord(g, "SCALD")
	g.SubmitGuess()

	keys := g.Keys()
	if keys.Get('C') != Correct {
		t.Errorf("C = %q, want correct", keys.Get('C'))
	}
	if keys.Get('A') != Correct {
		t.Errorf("A = %q, want correct", keys.Get('A'))
	}
	if keys.Get('S') != Absent {
		t.Errorf("S = %q, want absent", keys.Get('S'))
	}
}

func TestSubmittedRowsAreImmutable(t *testing.T) {
	g := started(t, "CRANE")
	typeWord(g, "SLATE")
	out := g.SubmitGuess()
	want := []Result{Absent, Absent, Correct, Absent, Correct}

	out.Results[0] = Correct
	g.History()[0].Results[1] = Correct

	if got := g.History()[0].Results; !slices.Equal(got, want) {
		t.Errorf("history results = %v, want %v", got, want)
	}
	board := g.Snapshot().Board[0]
	if board[0].State != TileAbsent || board[1].State != TileAbsent {
		t.Errorf("board row = %+v", board)
	}
}

func TestReset(t *testing.T) {
	g := started(t, "CRANE")
	typeWord(g, "SLATE")
	g.SubmitGuess()
	g.Reset()
	if g.Phase() != NotStarted || len(g.History()) != 0 || len(g.Keys()) != 0 {
		t.Fatalf("reset left state: phase %s, history %d, keys %d", g.Phase(), len(g.History()), len(g.Keys()))
	}
	if err := g.Start("PLANT"); err != nil {
		t.Fatalf("Start after reset: %v", err)
	}
}

func TestApplyParsedKeys(t *testing.T) {
	g := started(t, "CRANE")
	for _, k := range []string{"c", "R", "A", "X", "BACKSPACE", "N", "E", "ENTER"} {
		ev, ok := ParseKey(k)
		if !ok {
			t.Fatalf("ParseKey(%q) not ok", k)
		}
		g.Apply(ev)
	}
	if g.Phase() != Won {
		t.Fatalf("phase = %s, want won", g.Phase())
	}
	for _, k := range []string{"", "AB", "1", "TAB"} {
		if _, ok := ParseKey(k); ok {
			t.Errorf("ParseKey(%q) ok", k)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := started(t, "CRANE")
	typeWord(g, "TRACE")
	g.SubmitGuess()
	typeWord(g, "CR")

	s := g.Snapshot()
	if s.Phase != InProgress || s.Row != 1 {
		t.Fatalf("phase %s row %d", s.Phase, s.Row)
	}
	if len(s.Board) != MaxGuesses || len(s.Board[0]) != WordLength {
		t.Fatalf("board is %dx%d", len(s.Board), len(s.Board[0]))
	}
	want := []Tile{
		{"T", TileAbsent}, {"R", TileCorrect}, {"A", TileCorrect}, {"C", TilePresent}, {"E", TileCorrect},
	}
	for i, tile := range want {
		if s.Board[0][i] != tile {
			t.Errorf("row 0 tile %d = %+v, want %+v", i, s.Board[0][i], tile)
		}
	}
	if s.Board[1][0] != (Tile{"C", TileTBD}) || s.Board[1][2] != (Tile{State: TileEmpty}) {
		t.Errorf("row 1 = %+v", s.Board[1])
	}
	if s.Keys["R"] != Correct || s.Keys["T"] != Absent {
		t.Errorf("keys = %v", s.Keys)
	}
	if s.Secret != "" {
		t.Errorf("secret visible in progress")
	}
}
