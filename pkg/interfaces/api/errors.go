package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vsinha/bbqplan/pkg/application/dto"
	"github.com/vsinha/bbqplan/pkg/domain/entities"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an {"error": message} response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

// statusFor maps engine errors to HTTP status codes
func statusFor(err error) int {
	var unknown *entities.UnknownCategoryError
	var infeasible *entities.BudgetInfeasibleError
	switch {
	case errors.Is(err, entities.ErrMissingRequiredInput), errors.As(err, &unknown):
		return http.StatusBadRequest
	case errors.As(err, &infeasible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeEngineError reports a planner error. Internal causes are logged and
// replaced by a generic message.
func writeEngineError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "plan evaluation failed",
			"error", err,
			"request_id", RequestIDFromContext(r.Context()))
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}
