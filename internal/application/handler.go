package application

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/homecare-staffing/internal/auth"
	"github.com/frahmantamala/homecare-staffing/internal/transport"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(base *transport.BaseHandler, service *Service) *Handler {
	return &Handler{BaseHandler: base, Service: service}
}

// Submit is the public careers-form endpoint; no authentication.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto CreateApplicationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.Service.Submit(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, app)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, app)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	var (
		apps []*EmploymentApplication
		err  error
	)
	if r.URL.Query().Get("status") == "pending" {
		apps, err = h.Service.ListPending(limit, offset)
	} else {
		apps, err = h.Service.List(limit, offset)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{
		Applications: apps,
		Limit:        limit,
		Offset:       offset,
	})
}

// Hire runs the review workflow; the response is the only place the
// temporary credential ever appears besides the onboarding email.
func (h *Handler) Hire(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	reviewer, ok := auth.UserFromContext(r.Context())
	if !ok || reviewer == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.Service.Hire(r.Context(), id, reviewer.ID)
	if err != nil {
		h.Logger.Error("hire request failed", "error", err, "application_id", id, "reviewer_id", reviewer.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	reviewer, ok := auth.UserFromContext(r.Context())
	if !ok || reviewer == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Service.Reject(r.Context(), id, reviewer.ID); err != nil {
		h.Logger.Error("reject request failed", "error", err, "application_id", id, "reviewer_id", reviewer.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func paginationParams(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
