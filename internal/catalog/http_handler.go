package catalog

import (
	"net/http"
	"strings"

	"mediarec/internal/httpx"
)

type HTTPHandler struct {
	reader Reader
}

func NewHTTPHandler(reader Reader) *HTTPHandler {
	return &HTTPHandler{reader: reader}
}

// GetBook handles GET /v1/books/{id}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id is required", nil)
		return
	}
	b, ok := h.reader.Book(id)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// GetShow handles GET /v1/shows/{id}
func (h *HTTPHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id is required", nil)
		return
	}
	sh, ok := h.reader.Show(id)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Show not found", nil)
		return
	}
	httpx.JSONSuccess(w, r, sh, nil)
}
