package usecase

import (
	"errors"
	"net/http"
	"strings"

	"mediarec/internal/httpx"
	"mediarec/internal/logging"
	"mediarec/internal/media"
	"mediarec/internal/recommend"
	"mediarec/internal/search"
)

type HTTPHandler struct {
	q Querier
}

func NewHTTPHandler(q Querier) *HTTPHandler {
	return &HTTPHandler{q: q}
}

// textResult is the JSON body of the endpoints that produce rendered text.
type textResult struct {
	Text    string `json:"text"`
	Message string `json:"message,omitempty"`
}

func wantsText(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "text")
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text + "\n"))
}

func (h *HTTPHandler) respondText(w http.ResponseWriter, r *http.Request, text, msg string) {
	if wantsText(r) {
		writeText(w, http.StatusOK, text)
		return
	}
	httpx.JSONSuccess(w, r, textResult{Text: text, Message: msg}, nil)
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, search.ErrInvalidInput):
		if msg == "" {
			msg = err.Error()
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_INPUT", msg, nil)
	case errors.Is(err, ErrUnknownStats):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_INPUT", "kind must be movies, tv or books", nil)
	case errors.Is(err, recommend.ErrNoMatches):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", msg, nil)
	case errors.Is(err, media.ErrFormat):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "FORMAT_ERROR", err.Error(), nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("query failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request, fn func() (string, string, error)) {
	text, msg, err := fn()
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	h.respondText(w, r, text, msg)
}

// Movies handles GET /v1/movies
func (h *HTTPHandler) Movies(w http.ResponseWriter, r *http.Request) { h.list(w, r, h.q.MovieList) }

// TV handles GET /v1/tv
func (h *HTTPHandler) TV(w http.ResponseWriter, r *http.Request) { h.list(w, r, h.q.TVList) }

// Books handles GET /v1/books
func (h *HTTPHandler) Books(w http.ResponseWriter, r *http.Request) { h.list(w, r, h.q.BookList) }

// Stats handles GET /v1/stats/{kind}
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	rep, err := h.q.Stats(r.PathValue("kind"))
	if err != nil {
		h.fail(w, r, "", err)
		return
	}
	if wantsText(r) {
		writeText(w, http.StatusOK, rep.Text)
		return
	}
	httpx.JSONSuccess(w, r, rep, nil)
}

// Ratings handles GET /v1/ratings
func (h *HTTPHandler) Ratings(w http.ResponseWriter, r *http.Request) {
	rs := h.q.Ratings()
	if wantsText(r) {
		writeText(w, http.StatusOK, rs.Text())
		return
	}
	httpx.JSONSuccess(w, r, rs, nil)
}

// SearchShows handles GET /v1/search/shows?type=&title=&director=&actor=&genre=
func (h *HTTPHandler) SearchShows(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := search.ShowQuery{
		Type:     v.Get("type"),
		Title:    v.Get("title"),
		Director: v.Get("director"),
		Actor:    v.Get("actor"),
		Genre:    v.Get("genre"),
	}
	if details := httpx.ValidateStruct(q); details != nil {
		msg := "Invalid query"
		for _, d := range details {
			if d.Field == "type" {
				msg = search.MsgSelectShowType
			}
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", msg, details)
		return
	}

	shows, msg, err := h.q.FindShows(q)
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	text := search.RenderShows(shows)
	if wantsText(r) {
		writeText(w, http.StatusOK, text)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"results": shows, "text": text}, map[string]any{"total": len(shows)})
}

// SearchBooks handles GET /v1/search/books?title=&author=&publisher=
func (h *HTTPHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := search.BookQuery{
		Title:     v.Get("title"),
		Author:    v.Get("author"),
		Publisher: v.Get("publisher"),
	}
	if details := httpx.ValidateStruct(q); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query", details)
		return
	}

	books, msg, err := h.q.FindBooks(q)
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	text := search.RenderBooks(books)
	if wantsText(r) {
		writeText(w, http.StatusOK, text)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"results": books, "text": text}, map[string]any{"total": len(books)})
}

type recommendQuery struct {
	Type  string `validate:"required,mediatype"`
	Title string `validate:"max=256"`
}

// Recommend handles GET /v1/recommendations?type=&title=&format=
// The text format returns the rendered blocks; JSON returns the ranked
// suggestions.
func (h *HTTPHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := recommendQuery{Type: v.Get("type"), Title: v.Get("title")}
	if details := httpx.ValidateStruct(q); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", search.MsgSelectMediaType, details)
		return
	}

	if wantsText(r) {
		text, msg, err := h.q.Recommend(q.Type, q.Title)
		if err != nil && !errors.Is(err, recommend.ErrNoMatches) {
			h.fail(w, r, msg, err)
			return
		}
		status := http.StatusOK
		if err != nil {
			status = http.StatusNotFound
		}
		writeText(w, status, text)
		return
	}

	out, msg, err := h.q.Suggestions(q.Type, q.Title)
	if err != nil {
		h.fail(w, r, msg, err)
		return
	}
	httpx.JSONSuccess(w, r, out, map[string]any{"total": len(out)})
}
