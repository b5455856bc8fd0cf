package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Readiness сообщает готов ли бот обслуживать команды
type Readiness interface {
	IsLoaded() bool
}

// HealthResponse ответ /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Loaded bool   `json:"loaded"`
}

const (
	statusOK      = "ok"
	statusLoading = "loading"
)

// NewRouter собирает роутер служебных эндпоинтов: /healthz и /metrics
func NewRouter(ready Readiness, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", Health(ready))
	router.Handle("/metrics", promhttp.Handler())

	return router
}

// Health 200 после загрузки расписания, 503 пока загрузка не завершена
func Health(ready Readiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ready.IsLoaded() {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, HealthResponse{Status: statusLoading})
			return
		}
		render.JSON(w, r, HealthResponse{Status: statusOK, Loaded: true})
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(started)),
			)
		})
	}
}

// Server служебный HTTP сервер
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer создаёт сервер на addr
func NewServer(addr string, ready Readiness, logger *zap.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(ready, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start запускает сервер в отдельной горутине
func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting ops HTTP server", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Ops HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
}

// Shutdown останавливает сервер
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
