package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vsinha/bbqplan/pkg/application/dto"
	"github.com/vsinha/bbqplan/pkg/application/services/planner"
)

// maxBodyBytes caps plan request bodies
const maxBodyBytes = 64 << 10

// Handler serves the planning endpoints
type Handler struct {
	planner *planner.Planner
	schema  *jsonschema.Schema
	logger  *slog.Logger
}

// NewHandler creates the endpoint handlers
func NewHandler(p *planner.Planner, logger *slog.Logger) (*Handler, error) {
	schema, err := compilePlanRequestSchema()
	if err != nil {
		return nil, err
	}
	return &Handler{planner: p, schema: schema, logger: logger}, nil
}

// Plan handles POST /api/plan and POST /calcular
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	doc, err := dto.DecodeDocument(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.schema.Validate(doc); err != nil {
		writeError(w, http.StatusBadRequest, schemaMessage(err))
		return
	}

	// the schema guarantees an object
	req := dto.FromDocument(doc.(map[string]any))

	plan, err := h.planner.Plan(r.Context(), req.ToRaw())
	if err != nil {
		writeEngineError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FromPlan(plan))
}

// Categories handles GET /api/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.planner.Catalog()
	if err != nil {
		writeEngineError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Schema handles GET /api/schema
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(planRequestSchema)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.planner.Catalog(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "no rates loaded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// schemaMessage flattens a validation error to its first leaf cause
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return "invalid request: " + err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("invalid request at %s: %s", location, ve.Message)
}
