package utils

import (
	"appointment-service/internal/pkg/constvars"
	"appointment-service/internal/pkg/dto/responses"
	"appointment-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildFileResponse sends content as a downloadable attachment.
func BuildFileResponse(w http.ResponseWriter, contentType, fileName string, content []byte) {
	header := w.Header()
	header.Set(constvars.HeaderContentType, contentType)
	header.Set(constvars.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	header.Set("Content-Length", strconv.Itoa(len(content)))
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write(content)
}

// BuildErrorResponse writes err as a JSON error body. Anything that is not a
// CustomError is reported as an internal error. Developer details are only
// exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	switch {
	case errors.As(err, &customErr):
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int("status_code", customErr.StatusCode),
			zap.Any("locations", customErr.Locations),
		)
		if GetEnvString("APP_ENV", "development") != "production" {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	case err != nil:
		log.Error(err.Error(), zap.Int("status_code", response.StatusCode))
	}

	writeJSON(w, response.StatusCode, response)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
