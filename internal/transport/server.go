// Package transport exposes the bridge over a JSON HTTP API and the gRPC health service.
package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// CallerHeader carries the caller principal. Authenticating it is left to the deployment.
const CallerHeader = "X-Bridge-Caller"

const (
	defaultRequestTimeout = 30 * time.Second
	maxBodyBytes          = 1 << 20
)

type Config struct {
	Bridge Bridge
	// Records and History are optional; their routes are mounted only when set.
	Records        RecordReader
	History        History
	Metrics        Metrics
	Logger         *zap.Logger
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Server serves the bridge HTTP API.
type Server struct {
	router   chi.Router
	handler  http.Handler
	bridge   Bridge
	records  RecordReader
	history  History
	metrics  Metrics
	logger   *zap.Logger
	validate *validator.Validate
	timeout  time.Duration
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.Bridge == nil {
		return nil, errors.New("bridge is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	s := &Server{
		bridge:   cfg.Bridge,
		records:  cfg.Records,
		history:  cfg.History,
		metrics:  metrics,
		logger:   logger.Named("http"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		timeout:  timeout,
	}
	s.routes()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.handler = cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", CallerHeader},
		MaxAge:         300,
	}).Handler(s.router)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/headers", s.handleSubmitHeader)
		r.Get("/headers/{height}", s.handleGetHeader)
		r.Post("/headers/{height}/verify", s.handleVerifyHeader)

		r.Post("/proofs", s.handleSubmitProof)
		r.Get("/proofs/{txid}", s.handleGetProof)
		r.Post("/proofs/{txid}/verify", s.handleVerifyProof)

		r.Post("/claims", s.handleSubmitClaim)
		r.Get("/claims", s.handleListClaims)
		r.Get("/claims/{txid}", s.handleGetClaim)
		r.Post("/claims/{txid}/finalize", s.handleFinalizeClaim)
		r.Post("/claims/{txid}/reject", s.handleRejectClaim)

		r.Get("/transactions/{txid}", s.handleGetTransaction)
		r.Post("/transactions/{txid}/deactivate", s.handleDeactivateTransaction)
		if s.history != nil {
			r.Get("/transactions/{txid}/history", s.handleTransactionHistory)
		}
		if s.records != nil {
			r.Get("/transactions/{txid}/records", s.handleTransactionRecords)
			r.Get("/records/{id}", s.handleGetRecord)
		}

		r.Post("/deposits", s.handleCreateDeposit)
		r.Get("/deposits/{id}", s.handleGetDeposit)
		r.Post("/deposits/{id}/confirm", s.handleConfirmDeposit)

		r.Get("/policy", s.handleGetPolicy)
		r.Put("/policy/paused", s.handleSetPaused)
		r.Put("/policy/min-confirmations", s.handleSetMinConfirmations)
		r.Put("/policy/max-confirmations", s.handleSetMaxConfirmations)
		r.Put("/policy/min-deposit", s.handleSetMinDeposit)
		r.Put("/operators/{principal}", s.handleGrantOperator)
		r.Delete("/operators/{principal}", s.handleRevokeOperator)
		r.Put("/owner", s.handleTransferOwnership)

		r.Get("/stats", s.handleStats)
		r.Get("/oplog", s.handleOperationLog)
	})
	s.router = r
}

// observe records every request by its route pattern, not by its raw path.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			s.metrics.ObserveRequest(r.Method, route, status, started)
			s.logger.Debug("request served",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("took", time.Since(started)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

type nopMetrics struct{}

func (nopMetrics) ObserveRequest(string, string, int, time.Time) {}
