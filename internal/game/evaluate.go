// internal/game/evaluate.go
//
// Two-pass guess scoring.
//
// Pass 1:
//   - Mark exact matches Correct and consume the secret and guess letter.
//
// Pass 2:
//   - For each unconsumed guess letter, consume the first unconsumed occurrence
//     in the secret (left to right) and mark Present; otherwise Absent.
//
// Each secret letter can satisfy at most one guess letter, and exact matches
// are resolved before any presence match, so repeated letters score correctly.

package game

import "strings"

// Evaluate scores guess against secret. Both are compared case-insensitively.
// Evaluate has no side effects; calling it twice yields identical results.
func Evaluate(secret, guess string) ([]Result, error) {
	s := []rune(strings.ToUpper(secret))
	g := []rune(strings.ToUpper(guess))
	if len(s) != WordLength {
		return nil, ErrInvalidSecretWord
	}
	if len(g) != WordLength {
		return nil, ErrInvalidGuessLength
	}

	res := make([]Result, WordLength)
	var consumed [WordLength]bool

	for i := 0; i < WordLength; i++ {
		if g[i] == s[i] {
			res[i] = Correct
			consumed[i] = true
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Correct {
			continue
		}
		res[i] = Absent
		for j := 0; j < WordLength; j++ {
			if !consumed[j] && s[j] == g[i] {
				consumed[j] = true
				res[i] = Present
				break
			}
		}
	}
	return res, nil
}

// allCorrect reports whether every result is Correct.
func allCorrect(rs []Result) bool {
	for _, r := range rs {
		if r != Correct {
			return false
		}
	}
	return len(rs) > 0
}
