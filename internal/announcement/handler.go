package announcement

import (
	"context"
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	author, ok := auth.UserFromContext(r.Context())
	if !ok || author == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateAnnouncementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.Create(r.Context(), dto, author.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	a, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	var (
		items []*Announcement
		err   error
	)
	if r.URL.Query().Get("status") == "active" {
		items, err = h.Service.ListActive(limit, offset)
	} else {
		items, err = h.Service.List(limit, offset)
	}
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ListResponse{
		Announcements: items,
		Limit:         limit,
		Offset:        offset,
	})
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Post)
}

func (h *Handler) Repost(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Repost)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	a, err := h.Service.Archive(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, posterID int64) (*Announcement, error)) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	poster, ok := auth.UserFromContext(r.Context())
	if !ok || poster == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	a, err := op(r.Context(), id, poster.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
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
