package handle

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ride-dispatch/internal/dispatch-service/core/myerrors"
	"ride-dispatch/internal/mylogger"
)

const (
	WaitTime = 10
)

// JsonResponse writes the given data as a JSON-encoded HTTP response.
func JsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// JsonError writes an error response as JSON with a message field.
func JsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message": err.Error(),
	})
}

// respondError maps the error taxonomy onto status codes. Data-access
// failures are logged with their context label and surfaced as a generic 500.
func respondError(w http.ResponseWriter, log mylogger.Logger, err error, context string) {
	switch {
	case errors.Is(err, myerrors.ErrRequiredFieldsMissing),
		errors.Is(err, myerrors.ErrFieldNotAllowed):
		JsonError(w, http.StatusBadRequest, err)
	case errors.Is(err, myerrors.ErrInvalidCredentials):
		JsonError(w, http.StatusUnauthorized, err)
	case errors.Is(err, myerrors.ErrDriverNotFound),
		errors.Is(err, myerrors.ErrTripNotFound):
		JsonError(w, http.StatusNotFound, err)
	default:
		log.Error(context+" error", err)
		JsonError(w, http.StatusInternalServerError, fmt.Errorf("%s failed", context))
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, myerrors.ErrRequiredFieldsMissing
	}
	return id, nil
}
