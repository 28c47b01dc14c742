package rest

import (
	"admin-console/internal/core/domain"
	"admin-console/internal/core/port/usecases_port"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// mountListRoutes вешает общие маршруты экрана со списком.
// GET открывает экран: список перезагружается и возвращается его состояние.
func mountListRoutes[T any, F any](r chi.Router, screen usecases_port.ListScreenUseCasePort[T, F], render func(domain.ListState[T, F]) any) {
	snapshot := func() any {
		state := screen.Snapshot()
		if render == nil {
			return state
		}
		return render(state)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		err := screen.Reload(r.Context())
		respondWithState(w, r, err, snapshot())
	})

	// черновик фильтров без применения
	r.Put("/filters", func(w http.ResponseWriter, r *http.Request) {
		var filters F
		if !decodeBody(w, r, &filters, false) {
			return
		}
		screen.SetLiveFilters(filters)
		RespondWithJSON(w, http.StatusOK, snapshot())
	})

	r.Post("/search", func(w http.ResponseWriter, r *http.Request) {
		var filters F
		present := r.ContentLength != 0
		if present {
			if !decodeBody(w, r, &filters, true) {
				return
			}
			screen.SetLiveFilters(filters)
		}
		err := screen.Submit(r.Context())
		respondWithState(w, r, err, snapshot())
	})

	r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
		err := screen.Reset(r.Context())
		respondWithState(w, r, err, snapshot())
	})

	r.Post("/page", func(w http.ResponseWriter, r *http.Request) {
		var req PageRequestDTO
		if !decodeBody(w, r, &req, false) {
			return
		}
		var err error
		switch {
		case req.Direction == "next":
			err = screen.NextPage(r.Context())
		case req.Direction == "prev":
			err = screen.PrevPage(r.Context())
		case req.Direction == "" && req.Page > 0:
			err = screen.SetPage(r.Context(), req.Page)
		default:
			WriteJSONError(w, http.StatusBadRequest, "Field 'page' must be a positive number or 'direction' must be next/prev")
			return
		}
		respondWithState(w, r, err, snapshot())
	})
}
