// internal/words/words.go
//
// Answer list management for picking secret words.
//
// Responsibilities:
//   - Load answers from an environment-provided file, or fall back to the
//     list embedded in the assets package.
//   - Supply Random (for solo games) and At (for the daily word).
//
// Constraints:
//   • Words must be 5 alphabetic letters; anything else is skipped.
//   • Lists are normalised to uppercase and de-duplicated, keeping first order.
//
// Guesses are never checked against this list; any five letters may be played.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle-share/assets"
	"github.com/robalobadob/wordle-share/internal/game"
)

// ErrEmpty is returned when no usable words were loaded.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable, ordered set of candidate secret words.
type List struct {
	words []string
}

// Load reads answers from path, or from the embedded list when path is "".
func Load(path string) (*List, error) {
	var (
		raw []string
		err error
	)
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = assets.AnswersList()
	}
	if err != nil {
		return nil, err
	}
	return New(raw)
}

// New builds a List from raw words, normalising and filtering them.
func New(raw []string) (*List, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !game.ValidWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// At returns the word at index i modulo Len.
func (l *List) At(i int) string {
	if i < 0 {
		i = -i
	}
	return l.words[i%len(l.words)]
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}
