package handlers

import (
	"dispatch-board-service/internal/api/dto"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Str("req_id", obs.RequestID(r.Context())).Str("method", r.Method).Str("path", r.URL.Path).Err(err).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to client statuses; anything else is
// logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var ve *domain.ValidationError
	var nf *domain.NotFoundError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &nf):
		writeError(w, r, http.StatusNotFound, nf.Error())
	default:
		log.Error().Str("req_id", obs.RequestID(r.Context())).Str("op", op).Err(err).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON strictly decodes exactly one JSON object from the request body.
// It writes the 400 response itself and reports false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toAssignmentResponse(a domain.Assignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:          a.ID,
		Driver:      a.Driver,
		Route:       a.Route,
		VehicleType: string(a.VehicleType),
		CargoType:   string(a.CargoType),
		AIHint:      a.AIHint,
	}
}

func toListResponse(as []domain.Assignment) dto.ListAssignmentsResponse {
	res := dto.ListAssignmentsResponse{
		Assignments: make([]dto.AssignmentResponse, 0, len(as)),
	}
	for _, a := range as {
		res.Assignments = append(res.Assignments, toAssignmentResponse(a))
	}
	return res
}
