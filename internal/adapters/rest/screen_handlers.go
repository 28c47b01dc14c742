package rest

import (
	"admin-console/internal/contextkeys"
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleFeaturedLoad - GET /api/console/featured и POST .../refresh: оба списка заново
func (h *ConsoleHandlers) HandleFeaturedLoad(w http.ResponseWriter, r *http.Request) {
	err := h.featured.Load(r.Context())
	respondWithState(w, r, err, renderFeatured(h.featured.Snapshot()))
}

func (h *ConsoleHandlers) HandleFeaturedSearch(w http.ResponseWriter, r *http.Request) {
	var req FeaturedSearchDTO
	if !decodeBody(w, r, &req, true) {
		return
	}
	if req.Q != nil {
		h.featured.SetLiveQuery(*req.Q)
	}
	err := h.featured.Search(r.Context())
	respondWithState(w, r, err, renderFeatured(h.featured.Snapshot()))
}

func (h *ConsoleHandlers) HandleFeaturedReset(w http.ResponseWriter, r *http.Request) {
	err := h.featured.Reset(r.Context())
	respondWithState(w, r, err, renderFeatured(h.featured.Snapshot()))
}

// HandleSetFeatured - PUT /api/console/featured/{id} {isFeatured}
func (h *ConsoleHandlers) HandleSetFeatured(w http.ResponseWriter, r *http.Request) {
	var req SetFeaturedDTO
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.IsFeatured == nil {
		WriteJSONError(w, http.StatusBadRequest, "Field 'isFeatured' is required")
		return
	}
	_, err := h.featured.SetFeatured(r.Context(), chi.URLParam(r, "id"), *req.IsFeatured)
	respondWithState(w, r, err, renderFeatured(h.featured.Snapshot()))
}

// HandleRatingStars - POST /api/console/ratings/stars {stars}, "" снимает фильтр
func (h *ConsoleHandlers) HandleRatingStars(w http.ResponseWriter, r *http.Request) {
	var req SetStarsDTO
	if !decodeBody(w, r, &req, false) {
		return
	}
	err := h.ratings.SetStars(r.Context(), req.Stars)
	respondWithState(w, r, err, h.ratings.Snapshot())
}

func (h *ConsoleHandlers) HandleRatingSelect(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.ratings.Select(chi.URLParam(r, "id")); !ok {
		WriteJSONError(w, http.StatusNotFound, "Rating not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.ratings.Snapshot())
}

func (h *ConsoleHandlers) HandleRatingClearSelection(w http.ResponseWriter, r *http.Request) {
	h.ratings.ClearSelection()
	RespondWithJSON(w, http.StatusOK, h.ratings.Snapshot())
}

// HandleUserSelect - GET /api/console/users/{id}: выбор строки из текущей страницы
func (h *ConsoleHandlers) HandleUserSelect(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.users.Select(chi.URLParam(r, "id")); !ok {
		WriteJSONError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}
	RespondWithJSON(w, http.StatusOK, h.users.Snapshot())
}

func (h *ConsoleHandlers) HandleUserClearSelection(w http.ResponseWriter, r *http.Request) {
	h.users.ClearSelection()
	RespondWithJSON(w, http.StatusOK, h.users.Snapshot())
}

// HandleSetUserBlocked - PUT /api/console/users/{id}/blocked {isBlocked}
func (h *ConsoleHandlers) HandleSetUserBlocked(w http.ResponseWriter, r *http.Request) {
	var req SetBlockedDTO
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.IsBlocked == nil {
		WriteJSONError(w, http.StatusBadRequest, "Field 'isBlocked' is required")
		return
	}
	id := chi.URLParam(r, "id")
	contextkeys.LoggerFromContext(r.Context()).Info("Received request to change user block flag", port.Fields{"user_id": id, "blocked": *req.IsBlocked})

	_, err := h.users.SetBlocked(r.Context(), id, *req.IsBlocked)
	respondWithState(w, r, err, h.users.Snapshot())
}
