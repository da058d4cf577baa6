// Package server exposes dashboard state over HTTP and websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/config"
)

// Config holds server-specific configuration.
type Config struct {
	Addr string
	// Now is the reference clock for summaries. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives response encoding failures. If nil, nothing is logged.
	Logger shiftboard.Logger
}

type handler struct {
	board *shiftboard.Board
	dash  *config.Dashboard
	now   func() time.Time
	log   shiftboard.Logger
}

// NewRouter returns the HTTP routes of the dashboard API.
func NewRouter(cfg Config, board *shiftboard.Board, dash *config.Dashboard, hub *Hub) http.Handler {
	h := &handler{board: board, dash: dash, now: cfg.Now, log: cfg.Logger}
	if h.now == nil {
		h.now = time.Now
	}
	if h.log == nil {
		h.log = shiftboard.NopLogger{}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", h.dashboard)
		r.Get("/summary", h.summary)
		r.Get("/screens", h.screens)
		r.Get("/sectors/{id}", h.sector)
		r.Get("/sectors/{id}/chart", h.chart)
	})
	r.Handle("/ws", hub)

	return r
}

// NewHTTPServer returns an http.Server serving NewRouter on cfg.Addr.
func NewHTTPServer(cfg Config, board *shiftboard.Board, dash *config.Dashboard, hub *Hub) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg, board, dash, hub),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Serve runs refresher and srv until ctx is done or srv fails, then shuts srv
// down within shutdownTimeout. It returns only after the refresh loop has exited.
func Serve(ctx context.Context, srv *http.Server, refresher *Refresher, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		refresher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "loaded": h.board.Loaded()})
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.board.Dashboard(h.now()))
}

func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.board.Dashboard(h.now()).Summary)
}

func (h *handler) screens(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"screens":          h.dash.EffectiveScreens(),
		"switchIntervalMs": h.dash.SwitchInterval().Milliseconds(),
	})
}

func (h *handler) sector(w http.ResponseWriter, r *http.Request) {
	st, ok := h.board.Sector(chi.URLParam(r, "id"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "setor não encontrado"})
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

func (h *handler) chart(w http.ResponseWriter, r *http.Request) {
	st, ok := h.board.Sector(chi.URLParam(r, "id"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "setor não encontrado"})
		return
	}
	h.writeJSON(w, http.StatusOK, st.Series.ChartPoints())
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Error(fmt.Sprintf("encode response: %v", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		h.log.Debug(fmt.Sprintf("write response: %v", err))
	}
}
