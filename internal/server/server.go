package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/champion"
	"github.com/osse101/RiftStats_Go/internal/database"
	"github.com/osse101/RiftStats_Go/internal/handler"
	"github.com/osse101/RiftStats_Go/internal/ingest"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/metrics"
	"github.com/osse101/RiftStats_Go/internal/report"
	"github.com/osse101/RiftStats_Go/internal/user"
)

// Options configures the HTTP listener and edge protections
type Options struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	RequestsPerSecond float64
	RequestBurst      int
}

// Services are the domain services behind the routes
type Services struct {
	Auth      auth.Service
	Users     user.Service
	Champions champion.Service
	Reports   report.Service
	Ingest    ingest.Service
	Repair    ingest.RepairService
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(opts Options, dbPool database.Pool, svc Services) http.Handler {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if opts.RequestBurst <= 0 {
		opts.RequestBurst = DefaultRequestBurst
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewClientRateLimiter(opts.RequestsPerSecond, opts.RequestBurst)

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(AuthMiddleware(svc.Auth, opts.APIKey, opts.TrustedProxies, detector))

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(svc.Auth, svc.Users)
	favorites := handler.NewFavoritesHandler(svc.Users)
	champions := handler.NewChampionHandler(svc.Champions, svc.Reports)
	admin := handler.NewAdminHandler(svc.Ingest, svc.Champions)
	raw := handler.NewRawHandler(svc.Repair)
	reports := handler.NewReportHandler(svc.Reports)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
		})

		r.Route("/users/me", func(r chi.Router) {
			r.Use(RequireUser)
			r.Get("/", authHandler.HandleMe)
			r.Put("/password", authHandler.HandleChangePassword)
			r.Get("/favorites", favorites.HandleListMine)
			r.Post("/favorites", favorites.HandleAddMine)
			r.Delete("/favorites/{championId}", favorites.HandleRemoveMine)
		})

		r.Route("/champions", func(r chi.Router) {
			r.Get("/", champions.HandleList)
			r.With(RequireAdmin).Post("/", champions.HandleCreate)

			r.Group(func(r chi.Router) {
				r.Use(RequireUser)
				r.Get("/favorites/{username}", favorites.HandleListForUser)
				r.Post("/favorites", favorites.HandleAddForUser)
				r.Delete("/favorites/{username}/{championId}", favorites.HandleRemoveForUser)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", champions.HandleGet)
				r.Get("/winrate", champions.HandleWinrate)
				r.Get("/winrate-history", champions.HandleWinrateHistory)
				r.Get("/winrate-history.png", champions.HandleWinrateHistoryChart)
				r.Get("/top-items", champions.HandleTopItems)
			})
		})

		r.Get("/patches", champions.HandleListPatches)
		r.Get("/items", champions.HandleListItems)

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin)

			r.Post("/champions/sync", admin.HandleSyncChampions)
			r.Post("/items/sync", admin.HandleSyncItems)
			r.Post("/import-matches", admin.HandleImportMatches)
			r.Post("/generate-matches", admin.HandleGenerateMatches)
			r.Post("/add-manual-match", admin.HandleAddManualMatch)
			r.Get("/matches/{id}", admin.HandleGetMatch)
			r.Delete("/matches/{id}", admin.HandleDeleteMatch)

			r.Route("/raw", func(r chi.Router) {
				r.Post("/item", raw.HandleItem)
				r.Post("/user", raw.HandleUser)
				r.Post("/match", raw.HandleMatch)
				r.Post("/participant", raw.HandleParticipant)
				r.Post("/participant-item", raw.HandleParticipantItem)
				r.Post("/favorite", raw.HandleFavorite)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/winrate", reports.HandleWinrates)
				r.Get("/top-items", reports.HandleTopItems)
				r.Get("/patches", reports.HandlePatches)
				r.Get("/export.xlsx", reports.HandleExport)
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func unlogged(path string) bool {
	for _, p := range UnloggedPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if unlogged(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
