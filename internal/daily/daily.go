// Package daily picks a deterministic secret word per calendar day.
//
// The word for a day is the list entry at HMAC-SHA256(salt, YYYY-MM-DD)
// taken modulo the list length. Every process with the same list and salt
// agrees on the word without sharing state.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
	"time"
)

// Lister is the subset of words.List the daily picker needs.
type Lister interface {
	Len() int
	At(i int) string
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Word returns the date key and secret word for the UTC day containing t.
// An empty list yields an empty word.
func Word(l Lister, t time.Time, salt string) (date, word string) {
	date = DateKey(t)
	n := l.Len()
	if n <= 0 {
		return date, ""
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(date))
	// reduce the whole digest, not a prefix
	idx := new(big.Int).SetBytes(mac.Sum(nil))
	idx.Mod(idx, big.NewInt(int64(n)))
	return date, l.At(int(idx.Int64()))
}
