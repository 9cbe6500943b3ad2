// Package server exposes the simulator as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/iwvelando/property-simulator/internal/simulation"
	"github.com/iwvelando/property-simulator/pkg/constants"
	"github.com/iwvelando/property-simulator/pkg/jurisdiction"
	"github.com/iwvelando/property-simulator/pkg/validation"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestId"

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	validator   *validation.Validator
	now         func() time.Time
}

// NewHandler constructs the HTTP handler that serves the simulation API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	return newHandler(logger, maxBodySize, version).routes()
}

func newHandler(logger *zap.Logger, maxBodySize int64, version string) *handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	return &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		validator:   validation.New(),
		now:         time.Now,
	}
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/simulate", h.handleSimulate)
	mux.HandleFunc("/api/simulate/preview", h.handlePreview)
	mux.HandleFunc("/api/compare", h.handleCompare)
	mux.HandleFunc("/api/version", h.handleVersion)

	return withRequestID(mux)
}

// withRequestID tags every request with an identifier, reusing the
// caller's one when present.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

type simulateResponse struct {
	*simulation.Result
	Warnings []string `json:"warnings,omitempty"`
	Duration string   `json:"duration"`
}

type compareResponse struct {
	*simulation.Comparison
	Warnings []string `json:"warnings,omitempty"`
	Duration string   `json:"duration"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSimulate"
	start := time.Now()

	input, ok := h.decodeInput(w, r, op, false)
	if !ok {
		return
	}

	now := h.now()
	result, ok := h.simulate(w, r, input, now, op)
	if !ok {
		return
	}

	elapsed := time.Since(start)
	h.requestLogger(r).Info("simulation computed",
		zap.String("op", op),
		zap.String("country", string(input.Country)),
		zap.String("operationType", string(input.OperationType)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, simulateResponse{
		Result:   result,
		Warnings: input.Warnings(now),
		Duration: elapsed.String(),
	})
}

func (h *handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePreview"

	input, ok := h.decodeInput(w, r, op, false)
	if !ok {
		return
	}

	result, ok := h.simulate(w, r, input, h.now(), op)
	if !ok {
		return
	}

	h.requestLogger(r).Info("simulation preview computed",
		zap.String("op", op),
		zap.String("country", string(input.Country)),
	)

	h.writeJSON(w, http.StatusOK, result.Preview())
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	start := time.Now()

	input, ok := h.decodeInput(w, r, op, true)
	if !ok {
		return
	}

	now := h.now()
	comparison, err := simulation.Compare(h.requestLogger(r), input, now)
	if err != nil {
		h.respondSimulationError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	h.requestLogger(r).Info("comparison computed",
		zap.String("op", op),
		zap.Int("jurisdictions", len(comparison.Results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, compareResponse{
		Comparison: comparison,
		Warnings:   input.Warnings(now),
		Duration:   elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondErrorWithOp(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "server.handleVersion")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeInput reads and validates a simulation request. Comparisons run
// every jurisdiction, so their country is optional.
func (h *handler) decodeInput(w http.ResponseWriter, r *http.Request, op string, anyCountry bool) (simulation.Input, bool) {
	var input simulation.Input

	if r.Method != http.MethodPost {
		h.respondErrorWithOp(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), op)
		return input, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return input, false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return input, false
	}

	if err := json.Unmarshal(body, &input); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode simulation: %v", err), op)
		return input, false
	}

	if anyCountry && input.Country == "" {
		input.Country = jurisdiction.France
	}

	if err := h.validator.Struct(input); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return input, false
	}

	return input, true
}

func (h *handler) simulate(w http.ResponseWriter, r *http.Request, input simulation.Input, now time.Time, op string) (*simulation.Result, bool) {
	result, err := simulation.RunWithFixedTime(h.requestLogger(r), input, now)
	if err != nil {
		h.respondSimulationError(w, r, err, op)
		return nil, false
	}
	return result, true
}

func (h *handler) respondSimulationError(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := http.StatusInternalServerError
	if errors.Is(err, simulation.ErrInvalidAcquisitionDate) {
		status = http.StatusBadRequest
	}
	h.respondErrorWithOp(w, r, status, err.Error(), op)
}

func (h *handler) requestLogger(r *http.Request) *zap.Logger {
	if id, ok := r.Context().Value(requestIDKey).(string); ok && id != "" {
		return h.logger.With(zap.String("requestId", id))
	}
	return h.logger
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.requestLogger(r).Error("simulation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
