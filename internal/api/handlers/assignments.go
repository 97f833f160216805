package handlers

import (
	"dispatch-board-service/internal/api/dto"
	"dispatch-board-service/internal/domain"
	"dispatch-board-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AssignmentHandler exposes the dispatch board operations.
type AssignmentHandler struct {
	Service *services.DispatchService
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toListResponse(h.Service.List(r.Context())))
}

func (h *AssignmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddAssignmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.Service.Add(r.Context(), services.AddAssignmentRequest{
		Driver:       req.Driver,
		Route:        req.Route,
		LicenseClass: domain.LicenseClass(req.LicenseClass),
		VehicleType:  domain.VehicleType(req.VehicleType),
		CargoType:    domain.CargoType(req.CargoType),
	})
	if err != nil {
		writeServiceError(w, r, "add assignment", err)
		return
	}

	w.Header().Set("Location", "/assignments/"+a.ID)
	writeJSON(w, r, http.StatusCreated, toAssignmentResponse(a))
}

// Reorder applies a drag-drop gesture and returns the updated board.
func (h *AssignmentHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	list, err := h.Service.Reorder(r.Context(), req.MovedID, req.TargetID)
	if err != nil {
		writeServiceError(w, r, "reorder assignment", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListResponse(list))
}

func (h *AssignmentHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.Optimize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "optimize assignment", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toAssignmentResponse(a))
}

func (h *AssignmentHandler) Notify(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Service.Notify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "notify driver", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NotifyResponse{Message: msg})
}

func (h *AssignmentHandler) MapLink(w http.ResponseWriter, r *http.Request) {
	url, err := h.Service.MapLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "map link", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MapLinkResponse{URL: url})
}
