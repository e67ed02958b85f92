// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily word.
//   - GET  /daily      → today's date key (the word itself is never exposed)
//   - POST /daily/new  → start a game whose secret is today's word
//
// The word is chosen deterministically from the answer list by date + salt,
// so every player gets the same secret on the same UTC day.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-share/internal/daily"
	"github.com/robalobadob/wordle-share/internal/store"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyInfoRes is returned by GET /daily.
type dailyInfoRes struct {
	Date string `json:"date"`
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyInfoRes{Date: daily.DateKey(s.opts.Now())})
}

// dailyNewRes is returned by POST /daily/new.
type dailyNewRes struct {
	gameRes
	Date string `json:"date"`
}

// handleDailyNew starts a fresh game with today's word. Each call creates a
// new session; nothing is remembered about who has played.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, word := daily.Word(s.opts.Words, s.opts.Now(), s.opts.DailySalt)
	sess, snap, err := s.startSession(r.Context(), word, store.SourceDaily)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "daily_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, dailyNewRes{gameRes: gameRes{GameID: sess.ID, Game: snap}, Date: date})
}
