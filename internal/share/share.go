// internal/share/share.go
//
// Share-link construction and decoding for setter → guesser games.
//
// Two link shapes are supported:
//   - plain:  <base>?word=CRANE  (pure templating, no server state)
//   - sealed: <base>?t=<HS256 JWT carrying the word>, so the answer is not
//     readable at a glance and cannot be edited without the share key.
//
// Setup rules: secrets are trimmed and uppercased before validation.

package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle-share/internal/game"
)

const (
	ParamWord  = "word"
	ParamToken = "t"
)

// ErrNoSecret is returned when a link carries neither a word nor a token.
var ErrNoSecret = errors.New("share: link has no secret word")

// NormalizeSecret trims surrounding whitespace and uppercases s.
func NormalizeSecret(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Link templates secret into base as the word query parameter.
func Link(base, secret string) string {
	return join(base, ParamWord, NormalizeSecret(secret))
}

func join(base, key, value string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + key + "=" + url.QueryEscape(value)
}

// Sealer signs and verifies share tokens.
type Sealer struct {
	key []byte
	ttl time.Duration
}

// NewSealer returns a Sealer using key for HS256. A zero ttl means tokens
// never expire.
func NewSealer(key string, ttl time.Duration) *Sealer {
	return &Sealer{key: []byte(key), ttl: ttl}
}

type claims struct {
	Word string `json:"w"`
	jwt.RegisteredClaims
}

// Seal returns a signed token for secret.
func (s *Sealer) Seal(secret string) (string, error) {
	w := NormalizeSecret(secret)
	if !game.ValidWord(w) {
		return "", game.ErrInvalidSecretWord
	}
	now := time.Now()
	c := claims{Word: w, RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)}}
	if s.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("share: sign token: %w", err)
	}
	return tok, nil
}

// Open verifies token and returns the secret word it carries.
func (s *Sealer) Open(token string) (string, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("share: open token: %w", err)
	}
	if !game.ValidWord(c.Word) {
		return "", game.ErrInvalidSecretWord
	}
	return c.Word, nil
}

// Link returns base with a sealed token for secret.
func (s *Sealer) Link(base, secret string) (string, error) {
	tok, err := s.Seal(secret)
	if err != nil {
		return "", err
	}
	return join(base, ParamToken, tok), nil
}

// FromQuery extracts the secret from link query parameters. A token takes
// precedence over a plain word; tokens are rejected when s is nil.
func FromQuery(q url.Values, s *Sealer) (string, error) {
	if tok := q.Get(ParamToken); tok != "" {
		if s == nil {
			return "", errors.New("share: sealed links are not enabled")
		}
		return s.Open(tok)
	}
	raw := q.Get(ParamWord)
	if raw == "" {
		return "", ErrNoSecret
	}
	w := NormalizeSecret(raw)
	if !game.ValidWord(w) {
		return "", game.ErrInvalidSecretWord
	}
	return w, nil
}

// FromLink parses a full share URL and extracts its secret.
func FromLink(link string, s *Sealer) (string, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", fmt.Errorf("share: parse link: %w", err)
	}
	return FromQuery(u.Query(), s)
}
