package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 30 * time.Second
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewRouter wires every endpoint under /api.
func NewRouter(h Handlers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(handlerTimeout))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{id}", h.GetCategory)
		r.Get("/categories/{id}/words", h.GetCategoryWords)

		r.Get("/scores", h.GetScores)
		r.Post("/scores", h.ReplaceScores)
		r.Patch("/scores", h.PatchScores)

		r.Route("/game", func(r chi.Router) {
			r.Post("/start", h.StartWordGame)
			r.Post("/{id}/guess", h.GuessLetter)
			r.Post("/{id}/hint", h.UseWordHint)
			r.Post("/{id}/next", h.NextWord)
			r.Post("/{id}/restart", h.RestartWordGame)
		})

		r.Route("/memory", func(r chi.Router) {
			r.Post("/start", h.StartMemoryGame)
			r.Post("/{id}/flip", h.FlipCard)
			r.Post("/{id}/restart", h.RestartMemoryGame)
		})

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/start", h.StartSequenceGame)
			r.Post("/{id}/answer", h.SubmitAnswer)
			r.Post("/{id}/hint", h.ToggleSequenceHint)
			r.Post("/{id}/restart", h.RestartSequenceGame)
		})

		r.Route("/crossword", func(r chi.Router) {
			r.Post("/start", h.StartCrosswordGame)
			r.Post("/{id}/select", h.SelectCell)
			r.Post("/{id}/letter", h.InputLetter)
			r.Post("/{id}/hint", h.UseCrosswordHint)
			r.Post("/{id}/direction", h.ToggleDirection)
			r.Post("/{id}/move", h.MoveCursor)
			r.Post("/{id}/restart", h.RestartCrosswordGame)
		})
	})

	return router
}

// Start serves the router until ctx is cancelled, then drains in-flight
// requests before returning.
func Start(ctx context.Context, port string, h Handlers) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(h),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
