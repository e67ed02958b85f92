// internal/httpserver/server.go
//
// HTTP server wiring for hosted games.
// Responsibilities:
//   - Router + middleware (request IDs, access logs, panic recovery, timeouts, CORS).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Setup: POST /game/new, GET /play (share link), POST /share.
//   - Input + render: GET /game/{id}, POST /game/{id}/key, POST /game/guess.
//   - Daily word: mounted under /daily.
//   - Live play over WebSocket: GET /game/{id}/ws (see ws.go).
//
// Notes:
//   - The server never pushes state on its own; every response is a snapshot
//     read back after the caller's event was applied.
//   - Each game lives in a store.Session, which applies events one at a time.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-share/internal/game"
	"github.com/robalobadob/wordle-share/internal/metrics"
	"github.com/robalobadob/wordle-share/internal/share"
	"github.com/robalobadob/wordle-share/internal/store"
	"github.com/robalobadob/wordle-share/internal/words"
)

// Options carries the collaborators and settings the server needs.
type Options struct {
	Words          *words.List
	Sealer         *share.Sealer // nil disables sealed links
	ShareBaseURL   string
	DailySalt      string
	ClientOrigin   string
	HandlerTimeout time.Duration
	Now            func() time.Time // defaults to time.Now
}

// Server bundles router, session store and metrics.
type Server struct {
	r        *chi.Mux
	store    store.Store
	metrics  *metrics.Metrics
	opts     Options
	upgrader websocket.Upgrader
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, m *metrics.Metrics, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HandlerTimeout <= 0 {
		opts.HandlerTimeout = 10 * time.Second
	}
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		metrics: m,
		opts:    opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(opts.ClientOrigin),
		},
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(requestIDLogger)
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-share",
			"endpoints": []string{
				"/health", "POST /game/new", "GET /play", "POST /share",
				"GET /game/{id}", "POST /game/{id}/key", "POST /game/guess",
				"GET /game/{id}/ws", "POST /daily/new", "/metrics",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", m.Handler())
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"answers": s.opts.Words.Len(), "sessions": s.store.Len()})
	})

	// WebSocket play stays outside the timeout group: connections are long-lived.
	s.r.Get("/game/{id}/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(s.opts.HandlerTimeout))

		r.Post("/game/new", s.handleNewGame)
		r.Get("/play", s.handlePlayLink)
		r.Post("/share", s.handleShare)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/game/{id}", s.handleGetGame)
		r.Post("/game/{id}/key", s.handleKey)

		s.mountDaily(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (used by main and tests).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// accessLog writes one structured line per request.
func accessLog(r *http.Request, status, size int, dur time.Duration) {
	lvl := zerolog.DebugLevel
	if status >= http.StatusInternalServerError {
		lvl = zerolog.WarnLevel
	}
	hlog.FromRequest(r).WithLevel(lvl).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("dur", dur).
		Msg("request")
}

// requestIDLogger tags the request logger with chi's request ID.
func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimw.GetReqID(r.Context()); id != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("req_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkOrigin accepts same-host requests and the configured client origin.
func checkOrigin(origin string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		o := r.Header.Get("Origin")
		if o == "" || o == origin {
			return true
		}
		return strings.TrimPrefix(strings.TrimPrefix(o, "https://"), "http://") == r.Host
	}
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// ------------------------------ SETUP --------------------------------------

// newGameReq is the payload for POST /game/new. At most one of Word and Link
// is used; with neither, a random answer is chosen.
type newGameReq struct {
	Word string `json:"word"`
	Link string `json:"link"`
}

// gameRes is returned whenever a game is created or read.
type gameRes struct {
	GameID string        `json:"gameId"`
	Game   game.Snapshot `json:"game"`
}

// handleNewGame starts a game from a typed word, a share link, or at random.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		secret string
		src    store.Source
	)
	switch {
	case strings.TrimSpace(req.Word) != "":
		secret, src = share.NormalizeSecret(req.Word), store.SourceCustom
	case strings.TrimSpace(req.Link) != "":
		w0, err := share.FromLink(req.Link, s.opts.Sealer)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("rejected share link")
			writeError(w, http.StatusBadRequest, "invalid_link")
			return
		}
		secret, src = w0, store.SourceLink
	default:
		secret, src = s.opts.Words.Random(), store.SourceRandom
	}
	s.startAndRespond(w, r, secret, src)
}

// handlePlayLink opens a game from the query of a share link (?word= or ?t=).
func (s *Server) handlePlayLink(w http.ResponseWriter, r *http.Request) {
	secret, err := share.FromQuery(r.URL.Query(), s.opts.Sealer)
	if err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("rejected share link")
		writeError(w, http.StatusBadRequest, "invalid_link")
		return
	}
	s.startAndRespond(w, r, secret, store.SourceLink)
}

func (s *Server) startAndRespond(w http.ResponseWriter, r *http.Request, secret string, src store.Source) {
	sess, snap, err := s.startSession(r.Context(), secret, src)
	if errors.Is(err, game.ErrInvalidSecretWord) {
		writeError(w, http.StatusBadRequest, game.MsgInvalidSecret)
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, gameRes{GameID: sess.ID, Game: snap})
}

// startSession validates secret, starts a game and registers it.
func (s *Server) startSession(ctx context.Context, secret string, src store.Source) (*store.Session, game.Snapshot, error) {
	g := game.New()
	if err := g.Start(secret); err != nil {
		return nil, game.Snapshot{}, err
	}
	sess, err := s.store.Create(ctx, g, src)
	if err != nil {
		return nil, game.Snapshot{}, err
	}
	s.metrics.Started(string(src))
	log.Info().Str("gameId", sess.ID).Str("source", string(src)).Msg("game started")

	var snap game.Snapshot
	sess.Do(func(g *game.Game) { snap = g.Snapshot() })
	return sess, snap, nil
}

// shareReq/Res payloads for POST /share.
type shareReq struct {
	Word string `json:"word"`
}
type shareRes struct {
	URL       string `json:"url"`
	SealedURL string `json:"sealedUrl,omitempty"`
}

// handleShare builds share links for a setter's word without starting a game.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	var req shareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	secret := share.NormalizeSecret(req.Word)
	if !game.ValidWord(secret) {
		writeError(w, http.StatusBadRequest, game.MsgInvalidSecret)
		return
	}
	res := shareRes{URL: share.Link(s.opts.ShareBaseURL, secret)}
	if s.opts.Sealer != nil {
		sealed, err := s.opts.Sealer.Link(s.opts.ShareBaseURL, secret)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("seal share link")
			writeError(w, http.StatusInternalServerError, "seal_failed")
			return
		}
		res.SealedURL = sealed
	}
	writeJSON(w, http.StatusOK, res)
}

// --------------------------- INPUT + RENDER --------------------------------

// session resolves {id} or writes a 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request, id string) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

// handleGetGame returns the current snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var snap game.Snapshot
	sess.Do(func(g *game.Game) { snap = g.Snapshot() })
	writeJSON(w, http.StatusOK, gameRes{GameID: sess.ID, Game: snap})
}

// keyReq/Res payloads for POST /game/{id}/key.
type keyReq struct {
	Key string `json:"key"` // "A".."Z", "BACKSPACE", "ENTER"
}
type keyRes struct {
	Signal  game.Signal   `json:"signal"`
	Results []game.Result `json:"results,omitempty"`
	Game    game.Snapshot `json:"game"`
}

// handleKey applies one key event. Keys that cannot apply are ignored and
// reported with an empty signal, never as an error.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	writeJSON(w, http.StatusOK, s.applyKey(sess, req.Key))
}

// applyKey parses key and applies it to the session's game.
func (s *Server) applyKey(sess *store.Session, key string) keyRes {
	var res keyRes
	ev, ok := game.ParseKey(key)
	sess.Do(func(g *game.Game) {
		if ok {
			out := g.Apply(ev)
			s.observe(sess.ID, out, len(g.History()))
			res.Signal, res.Results = out.Signal, out.Results
		}
		res.Game = g.Snapshot()
	})
	return res
}

// observe records metrics and logs finished games.
func (s *Server) observe(id string, out game.Outcome, rows int) {
	s.metrics.Observe(out, rows)
	switch out.Signal {
	case game.SignalWin:
		log.Info().Str("gameId", id).Int("rows", rows).Msg("game won")
	case game.SignalLoss:
		log.Info().Str("gameId", id).Msg("game lost")
	}
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Results []game.Result `json:"results"`
	Phase   game.Phase    `json:"phase"`
	Game    game.Snapshot `json:"game"`
}

// handleGuess submits a whole word: it replaces whatever is in the current
// row with the guess and presses Enter.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	guess := strings.ToUpper(strings.TrimSpace(req.Guess))
	if len([]rune(guess)) != game.WordLength {
		writeError(w, http.StatusBadRequest, game.ErrInvalidGuessLength.Error())
		return
	}
	if !game.ValidWord(guess) {
		writeError(w, http.StatusBadRequest, "guess must be letters A-Z")
		return
	}
	sess, ok := s.session(w, r, req.GameID)
	if !ok {
		return
	}

	var (
		res      guessRes
		finished bool
	)
	sess.Do(func(g *game.Game) {
		if g.Phase() != game.InProgress {
			finished = true
			return
		}
		for g.Buffer() != "" {
			g.Backspace()
		}
		for _, ch := range guess {
			g.AppendLetter(ch)
		}
		out := g.SubmitGuess()
		s.observe(sess.ID, out, len(g.History()))
		res = guessRes{Results: out.Results, Phase: g.Phase(), Game: g.Snapshot()}
	})
	if finished {
		writeError(w, http.StatusConflict, "game_finished")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
