package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/entropass/entropass-go/internal/middleware"
	"github.com/entropass/entropass-go/internal/model"
	"github.com/entropass/entropass-go/internal/service"
	"github.com/go-chi/chi/v5"
)

// WordlistHandler handles HTTP requests for stored custom wordlists.
type WordlistHandler struct {
	service *service.WordlistService
}

// NewWordlistHandler creates a new WordlistHandler.
func NewWordlistHandler(svc *service.WordlistService) *WordlistHandler {
	return &WordlistHandler{service: svc}
}

// isWordlistValidationError reports whether err is a client-side upload problem.
func isWordlistValidationError(err error) bool {
	return errors.Is(err, service.ErrWordlistNameInvalid) ||
		errors.Is(err, service.ErrWordlistNameReserved) ||
		errors.Is(err, service.ErrWordlistTooSmall) ||
		errors.Is(err, service.ErrWordlistTooLarge) ||
		errors.Is(err, service.ErrWordInvalid)
}

// HandleCreate handles POST /api/v1/wordlists requests.
func (h *WordlistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB

	var req model.CreateWordlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case isWordlistValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrWordlistTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/wordlists requests.
func (h *WordlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	lists, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// HandleGet handles GET /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" || len(name) > 64 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist name"))
		return
	}

	resp, err := h.service.Get(r.Context(), userID, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordlistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/wordlists/{name} requests.
func (h *WordlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	name := chi.URLParam(r, "name")
	if name == "" || len(name) > 64 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid wordlist name"))
		return
	}

	err := h.service.Delete(r.Context(), userID, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWordlistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
