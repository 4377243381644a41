package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/mizan-labs/mizan/internal/api/middleware"
	"github.com/mizan-labs/mizan/internal/cache"
	"github.com/mizan-labs/mizan/internal/finance"
	"github.com/mizan-labs/mizan/internal/pipeline"
)

// Runner processes one transaction description end to end.
type Runner interface {
	Run(ctx context.Context, inputText string, opts pipeline.Options) map[string]any
}

// ProcessHandler handles POST /api/process.
type ProcessHandler struct {
	runner         Runner
	cache          *cache.Cache
	maxInputLength int
	log            zerolog.Logger
}

// NewProcessHandler creates a new process handler.
func NewProcessHandler(runner Runner, c *cache.Cache, maxInputLength int, log zerolog.Logger) *ProcessHandler {
	return &ProcessHandler{
		runner:         runner,
		cache:          c,
		maxInputLength: maxInputLength,
		log:            log,
	}
}

// Process handles POST /api/process
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InputText string `json:"input_text"`
		Language  string `json:"language"`
		Visualize *bool  `json:"visualize"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.InputText == "" {
		middleware.WriteError(w, http.StatusBadRequest, "input_text is required")
		return
	}
	if len(req.InputText) > h.maxInputLength {
		middleware.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("input_text exceeds the %d character limit", h.maxInputLength))
		return
	}
	if req.Language == "" {
		req.Language = "english"
	}
	// Visualization is on unless explicitly disabled.
	visualize := req.Visualize == nil || *req.Visualize

	key := cache.Key(req.InputText, req.Language, strconv.FormatBool(visualize))
	if body, ok := h.cache.Get(key); ok {
		h.log.Debug().Str("key", key).Msg("process cache hit")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	doc := h.runner.Run(r.Context(), req.InputText, pipeline.Options{
		Language:  req.Language,
		Visualize: visualize,
	})

	body, err := json.Marshal(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	h.cache.Set(key, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// StandardsHandler handles GET /api/standards.
type StandardsHandler struct {
	cache *cache.Cache
	log   zerolog.Logger
}

// NewStandardsHandler creates a new standards handler.
func NewStandardsHandler(c *cache.Cache, log zerolog.Logger) *StandardsHandler {
	return &StandardsHandler{cache: c, log: log}
}

// List handles GET /api/standards
func (h *StandardsHandler) List(w http.ResponseWriter, r *http.Request) {
	const key = "standards"
	if body, ok := h.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
		return
	}

	type standardInfo struct {
		ID                  string   `json:"id"`
		Name                string   `json:"name"`
		KeyTerms            []string `json:"key_terms"`
		RecognitionCriteria []string `json:"recognition_criteria"`
		MeasurementRules    []string `json:"measurement_rules"`
	}

	defs := finance.All()
	out := make([]standardInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, standardInfo{
			ID:                  string(d.ID),
			Name:                d.Name,
			KeyTerms:            d.KeyTerms,
			RecognitionCriteria: d.RecognitionCriteria,
			MeasurementRules:    d.MeasurementRules,
		})
	}

	body, err := json.Marshal(map[string]any{
		"standards": out,
		"count":     len(out),
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode standards")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to encode standards")
		return
	}
	h.cache.Set(key, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
