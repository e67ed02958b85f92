package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/wordle-share/internal/game"
	"github.com/robalobadob/wordle-share/internal/share"
)

func TestPrintShare(t *testing.T) {
	var buf bytes.Buffer
	if err := printShare(&buf, "http://x/play", "crane", share.NewSealer("k", 0)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != "http://x/play?word=CRANE" || !strings.HasPrefix(lines[1], "http://x/play?t=") {
		t.Fatalf("output = %q", buf.String())
	}
	if err := printShare(&buf, "http://x/play", "no", nil); !errors.Is(err, game.ErrInvalidSecretWord) {
		t.Errorf("err = %v", err)
	}
}

func TestRunShareFlag(t *testing.T) {
	t.Setenv("SHARE_BASE_URL", "http://x/play")
	t.Setenv("SHARE_SECRET", "")
	var buf bytes.Buffer
	if err := run([]string{"-share", " crane "}, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "http://x/play?word=CRANE" {
		t.Errorf("output = %q", got)
	}
}

func TestRunErrorFlushesLog(t *testing.T) {
	t.Setenv("SHARE_SECRET", "")
	t.Setenv("LOG_LEVEL", "debug")
	logPath := filepath.Join(t.TempDir(), "tui.log")

	err := run([]string{"-log", logPath, "-link", "http://x/play?word=no"}, &bytes.Buffer{})
	if !errors.Is(err, game.ErrInvalidSecretWord) {
		t.Fatalf("err = %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "open share link") {
		t.Errorf("log file = %q", b)
	}
}
