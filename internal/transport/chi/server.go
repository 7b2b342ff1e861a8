package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/logger"
	"github.com/shelfwise/shelfwise/internal/metrics"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	"github.com/shelfwise/shelfwise/internal/usecase/route"
)

// catalogReader is the book CRUD surface the server needs (ISP).
type catalogReader interface {
	Get(ctx context.Context, id string) (book.Book, error)
	Delete(ctx context.Context, id string) error
}

// Server exposes the query pipeline and catalog over HTTP.
type Server struct {
	router  *route.Router
	ingest  *ingestuc.Service
	catalog catalogReader
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	router *route.Router,
	ingest *ingestuc.Service,
	catalog catalogReader,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		router:  router,
		ingest:  ingest,
		catalog: catalog,
		health:  health,
		logger:  logger,
	}
}

// Routes mounts all handlers on a chi router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/query", s.handleQuery)
	r.Put("/v1/books", s.handleIngest)
	r.Get("/v1/books/{id}", s.handleGetBook)
	r.Delete("/v1/books/{id}", s.handleDeleteBook)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// handleQuery runs the full understanding-and-retrieval pipeline.
// The response always carries the parsed query, even on failure.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}

	start := time.Now()
	env := s.router.Route(r.Context(), req.Query)
	elapsed := time.Since(start)
	intentLabel := string(env.Parsed.Intent())
	metrics.QueryDuration.WithLabelValues(intentLabel).Observe(elapsed.Seconds())

	resp := queryResponse{
		Success:     env.Success,
		ParsedQuery: parsedToView(env.Parsed),
		Result:      env.Result,
		ElapsedMS:   float64(elapsed.Microseconds()) / 1000,
	}

	if env.Err != nil {
		metrics.QueriesTotal.WithLabelValues(intentLabel, "error").Inc()
		logger.FromContext(r.Context(), s.logger).Warn("query failed",
			zap.String("intent", intentLabel),
			zap.Error(env.Err),
		)
		resp.Error = safeQueryMessage(env.Err)
		writeJSON(w, queryErrorStatus(env.Err), resp)
		return
	}

	metrics.QueriesTotal.WithLabelValues(intentLabel, "success").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// handleIngest embeds and indexes a batch of books.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Books) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "books list is empty")
		return
	}

	entries := make([]ingestuc.Entry, len(req.Books))
	for i, b := range req.Books {
		entries[i] = ingestuc.Entry{ID: b.ID, Book: b.toBook()}
	}

	summary := s.ingest.Index(r.Context(), entries)

	status := http.StatusOK
	if summary.Indexed == 0 && summary.Failed > 0 {
		status = http.StatusBadGateway
	}

	writeJSON(w, status, ingestResponse{
		Indexed: summary.Indexed,
		Failed:  summary.Failed,
		Errors:  summary.Errors,
	})
}

// handleGetBook handles GET /v1/books/{id}.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, "book not found")
			return
		}
		logger.FromContext(r.Context(), s.logger).Error("get book failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, b)
}

// handleDeleteBook handles DELETE /v1/books/{id}.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		logger.FromContext(r.Context(), s.logger).Error("delete book failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// queryErrorStatus maps pipeline errors onto HTTP statuses. Empty
// analytics stays 200: the query was understood, there was just
// nothing to aggregate.
func queryErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoAnalyticsData):
		return http.StatusOK
	case errors.Is(err, domain.ErrNoHandler):
		return http.StatusNotImplemented
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// safeQueryMessage returns a sentinel error message for the client without exposing internals.
func safeQueryMessage(err error) string {
	sentinels := []error{
		domain.ErrNoAnalyticsData,
		domain.ErrNoHandler,
		domain.ErrEmbeddingProviderError,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}
