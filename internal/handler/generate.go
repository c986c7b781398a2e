package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/entropass/entropass-go/internal/entropy"
	"github.com/entropass/entropass-go/internal/middleware"
	"github.com/entropass/entropass-go/internal/model"
	"github.com/entropass/entropass-go/internal/service"
)

// GenerateHandler handles HTTP requests for secret generation and planning.
type GenerateHandler struct {
	service *service.GenerateService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(svc *service.GenerateService) *GenerateHandler {
	return &GenerateHandler{service: svc}
}

// decodeBody decodes an optional JSON request body into v. It reports
// whether the caller should continue; on failure the error response has
// already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeGenerateError maps generation failures to status codes: invalid
// configuration is the caller's fault, unknown wordlists are 404.
func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entropy.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrUnknownWordlist):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// HandlePassphrase handles POST /api/v1/generate/passphrase requests.
func (h *GenerateHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.Passphrase(r.Context(), userID, req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePassword handles POST /api/v1/generate/password requests.
func (h *GenerateHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Password(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUUID handles POST /api/v1/generate/uuid requests.
func (h *GenerateHandler) HandleUUID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.UUID()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePlanPassphrase handles POST /api/v1/plan/passphrase requests.
func (h *GenerateHandler) HandlePlanPassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphrasePlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	resp, err := h.service.PlanPassphrase(r.Context(), userID, req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePlanPassword handles POST /api/v1/plan/password requests.
func (h *GenerateHandler) HandlePlanPassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordPlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.PlanPassword(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
