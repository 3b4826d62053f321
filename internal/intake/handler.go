package intake

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

// Submit is the public client-interest endpoint; no authentication.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto CreateSubmissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.Service.Submit(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, sub)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	sub, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sub)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	var (
		subs []*ClientInterestSubmission
		err  error
	)
	if r.URL.Query().Get("status") == "unreviewed" {
		subs, err = h.Service.ListUnreviewed(limit, offset)
	} else {
		subs, err = h.Service.List(limit, offset)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{
		Submissions: subs,
		Limit:       limit,
		Offset:      offset,
	})
}

func (h *Handler) MarkReviewed(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	reviewer, ok := auth.UserFromContext(r.Context())
	if !ok || reviewer == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sub, err := h.Service.MarkReviewed(id, reviewer.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sub)
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
