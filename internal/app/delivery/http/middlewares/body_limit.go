package middlewares

import (
	"appointment-service/internal/pkg/exceptions"
	"appointment-service/internal/pkg/utils"
	"net/http"
)

// BodyLimit rejects requests that announce a body larger than the configured
// limit and caps the readable body for the rest.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		if limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(nil, limit))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
