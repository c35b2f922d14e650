package ingest

import (
	"errors"
	"net/http"

	"mediarec/internal/association"
	"mediarec/internal/httpx"
	"mediarec/internal/logging"
	"mediarec/internal/media"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Load handles POST /v1/load/{kind}; the request body is the CSV file.
func (h *HTTPHandler) Load(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	run, err := h.svc.Load(r.Context(), kind, r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		case errors.Is(err, ErrUnknownKind):
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_INPUT", "kind must be books, shows or associations", nil)
		case errors.Is(err, media.ErrFormat), errors.Is(err, association.ErrSelfAssociation):
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "FORMAT_ERROR", err.Error(), nil)
		default:
			logging.Ctx(r.Context()).Error().Err(err).Str("kind", kind).Msg("load failed")
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, run, nil)
}

// Runs handles GET /v1/load/runs
func (h *HTTPHandler) Runs(w http.ResponseWriter, r *http.Request) {
	runs, err := h.svc.Runs(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, runs, map[string]any{"total": len(runs)})
}
