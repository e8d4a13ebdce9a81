package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// NewRouter wires the API routes. Calculation endpoints go through limiter
// when it is non-nil.
func NewRouter(bvh *BVHandler, eqh *EquipmentHandler, limiter *RateLimiter, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	calc := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return limiter.Middleware(h)
	}
	mux.Handle("POST /api/bv", calc(bvh.Calculate))
	mux.Handle("POST /api/bv/mtf", calc(bvh.CalculateMTF))
	mux.Handle("POST /api/rosters/score", calc(bvh.ScoreRoster))
	mux.HandleFunc("GET /api/results", bvh.Results)
	mux.HandleFunc("GET /api/equipment", eqh.Names)

	return corsMiddleware(requestLogger(log, mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func requestLogger(log zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Int("status", rec.status).
			Dur("duration", time.Since(start)).Msg("request")
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := origin == "https://starleagueintelligencecommand.com" ||
			origin == "http://localhost:5173" ||
			origin == "http://localhost:8080"
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
