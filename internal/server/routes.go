package server

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/mihrab-app/mihrab/internal/xhttp/middleware"
)

// Routes assembles the full handler tree with the middleware chain.
func Routes(h *Handler, backend Pinger, cfg Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/timetable", h.HandleTimetable)
	mux.HandleFunc("GET /v1/next", h.HandleNext)
	mux.HandleFunc("GET /v1/surahs", h.HandleSurahs)
	mux.HandleFunc("GET /v1/surahs/{number}", h.HandleSurah)
	mux.HandleFunc("GET /healthz", HandleHealth(backend, logger))

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.SecurityHeaders,
		middleware.Gzip,
		middleware.RateLimit(rate.Limit(cfg.RateLimit.Limit), cfg.RateLimit.Burst),
	)
}
