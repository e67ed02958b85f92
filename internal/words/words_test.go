package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle-share/internal/game"
)

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded: %v", err)
	}
	if l.Len() < 100 {
		t.Errorf("embedded list has %d words", l.Len())
	}
	for i := 0; i < l.Len(); i++ {
		if !game.ValidWord(l.At(i)) {
			t.Errorf("invalid embedded word %q", l.At(i))
		}
	}
}

func TestLoadFileFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	body := "crane\n  Plant \nab\nsix666\ncrane\n\nTOOLONG\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 2 || l.At(0) != "CRANE" || l.At(1) != "PLANT" {
		t.Errorf("got %v", l.words)
	}
	if l.At(2) != "CRANE" {
		t.Errorf("At wraps: got %q", l.At(2))
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New([]string{"no", "12345"}); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestRandomFromList(t *testing.T) {
	l, _ := New([]string{"CRANE", "PLANT"})
	for i := 0; i < 20; i++ {
		if w := l.Random(); w != "CRANE" && w != "PLANT" {
			t.Fatalf("Random = %q", w)
		}
	}
}
