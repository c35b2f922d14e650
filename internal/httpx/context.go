package httpx

import (
	"context"
	"net/http"

	"mediarec/internal/logging"
)

// ContextWithRequestID stores the id where logging.Ctx finds it.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return logging.ContextWithRequestID(ctx, id)
}

func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return ""
	}
	return logging.RequestIDFromContext(r.Context())
}
