package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/notes"
	"github.com/iwvelando/interest-calculator/internal/report"
	"github.com/iwvelando/interest-calculator/internal/session"
	"github.com/iwvelando/interest-calculator/internal/store"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"go.uber.org/zap"
)

const (
	errorKindValidation = "validation"
	errorKindDomain     = "domain"
)

type handler struct {
	logger          *zap.Logger
	store           store.Store
	reportOptions   report.Options
	defaultCurrency string
	maxBodySize     int64
	version         string
}

// Options carries the optional handler settings.
type Options struct {
	MaxBodySize     int64
	Version         string
	DefaultCurrency string
	Report          report.Options
	// RateLimit is applied per client IP; a zero rate disables it.
	RateLimit RateLimitConfig
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, results store.Store, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	reportOptions := opts.Report
	// Exports are streamed back from a scratch directory.
	reportOptions.KeepChartImage = false

	h := &handler{
		logger:          logger,
		store:           results,
		reportOptions:   reportOptions,
		defaultCurrency: opts.DefaultCurrency,
		maxBodySize:     maxBodySize,
		version:         trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if opts.RateLimit.RequestsPerSecond > 0 {
		r.Use(h.rateLimit(newClientLimiter(opts.RateLimit.RequestsPerSecond, opts.RateLimit.Burst)))
	}
	r.Use(middleware.RequestSize(maxBodySize))

	r.Get("/api/version", h.handleVersion)
	r.Get("/api/notes", h.handleNotes)
	r.Get("/api/notes/{name}", h.handleNote)
	r.Post("/api/calculate", h.handleCalculate)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/calculate", h.handleSessionCalculate)
			r.Get("/result", h.handleSessionResult)
			r.Get("/chart", h.handleSessionChart)
			r.Get("/export", h.handleSessionExport)
			r.Delete("/", h.handleSessionDelete)
		})
	})

	return r
}

type calculateResponse struct {
	Headline []string          `json:"headline"`
	Result   calculator.Result `json:"result"`
}

type noteResponse struct {
	Entry notes.Entry `json:"entry"`
	Lines []string    `json:"lines"`
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{
		"names": notes.Names(),
	})
}

func (h *handler) handleNote(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, ok := notes.Lookup(name)
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown note %q", name), "server.handleNote")
		return
	}
	h.writeJSON(w, http.StatusOK, noteResponse{Entry: entry, Lines: entry.Lines()})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	form, ok := h.decodeForm(w, r, op)
	if !ok {
		return
	}

	sess := h.newSession()
	res, err := sess.Calculate(form)
	if err != nil {
		h.respondCalculationError(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusOK, calculateResponse{Headline: output.Headline(res), Result: res})
}

func (h *handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	h.logger.Debug("session created",
		zap.String("op", "server.handleCreateSession"),
		zap.String("session", id),
	)
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *handler) handleSessionCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionCalculate"

	id, ok := h.sessionID(w, r, op)
	if !ok {
		return
	}
	form, ok := h.decodeForm(w, r, op)
	if !ok {
		return
	}

	sess := h.newSession()
	res, err := sess.Calculate(form)
	if err != nil {
		if delErr := h.store.Delete(r.Context(), id); delErr != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to clear session: %v", delErr), op)
			return
		}
		h.respondCalculationError(w, err, op)
		return
	}

	if err := h.store.Put(r.Context(), id, res); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to store session: %v", err), op)
		return
	}
	h.writeJSON(w, http.StatusOK, calculateResponse{Headline: output.Headline(res), Result: res})
}

func (h *handler) handleSessionResult(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionResult"

	res, ok := h.loadResult(w, r, op)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, calculateResponse{Headline: output.Headline(res), Result: res})
}

func (h *handler) handleSessionChart(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionChart"

	res, ok := h.loadResult(w, r, op)
	if !ok {
		return
	}

	chartPNG := session.Restore(h.logger, res, h.sessionOptions()...).Chart()
	if len(chartPNG) == 0 {
		h.respondErrorWithOp(w, http.StatusInternalServerError, "failed to render chart", op)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(chartPNG); err != nil {
		h.logger.Error("failed to write chart response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleSessionExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionExport"

	id, ok := h.sessionID(w, r, op)
	if !ok {
		return
	}
	res, found, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to load session: %v", err), op)
		return
	}

	var sess *session.Session
	if found {
		sess = session.Restore(h.logger, res, h.sessionOptions()...)
	} else {
		sess = h.newSession()
	}

	dir, err := os.MkdirTemp("", "interest-calculator-export-")
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to prepare export: %v", err), op)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "calculation.pdf")
	if err := sess.Export(path); err != nil {
		if errors.Is(err, session.ErrNoResult) {
			h.writeJSON(w, http.StatusConflict, map[string]string{"warning": err.Error()})
			return
		}
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to read export: %v", err), op)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="calculation.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write export response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSessionDelete"

	id, ok := h.sessionID(w, r, op)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete session: %v", err), op)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) newSession() *session.Session {
	return session.New(h.logger, h.sessionOptions()...)
}

func (h *handler) sessionOptions() []session.Option {
	return []session.Option{
		session.WithDefaultCurrency(h.defaultCurrency),
		session.WithExporter(report.NewWriter(h.logger, h.reportOptions)),
	}
}

func (h *handler) sessionID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid session id %q", raw), op)
		return "", false
	}
	return id.String(), true
}

func (h *handler) loadResult(w http.ResponseWriter, r *http.Request, op string) (calculator.Result, bool) {
	id, ok := h.sessionID(w, r, op)
	if !ok {
		return calculator.Result{}, false
	}
	res, found, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to load session: %v", err), op)
		return calculator.Result{}, false
	}
	if !found {
		h.respondErrorWithOp(w, http.StatusNotFound, session.ErrNoResult.Error(), op)
		return calculator.Result{}, false
	}
	return res, true
}

func (h *handler) decodeForm(w http.ResponseWriter, r *http.Request, op string) (calculator.Form, bool) {
	var form calculator.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds maximum size of %d bytes", h.maxBodySize), op)
			return calculator.Form{}, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return calculator.Form{}, false
	}
	return form, true
}

func (h *handler) respondCalculationError(w http.ResponseWriter, err error, op string) {
	kind := errorKindValidation
	var domainErr *calculator.DomainError
	if errors.As(err, &domainErr) {
		kind = errorKindDomain
	}

	h.logger.Info("calculation rejected",
		zap.String("op", op),
		zap.String("kind", kind),
		zap.String("error", err.Error()),
	)
	h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "kind": kind})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
