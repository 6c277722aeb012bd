package httpx

import (
	"errors"
	"net/http"

	"github.com/autolote/autolote/internal/schema"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound = errors.New("resource not found")
)

// RespondError maps domain errors to HTTP responses. Validation
// failures answer 422 with the field → message map, missing records
// answer 404 with an empty body, everything else answers 500 with an
// empty body; the caller logs the detail server-side.
func RespondError(w http.ResponseWriter, err error) {
	var vErr *schema.Error
	switch {
	case errors.As(err, &vErr):
		JSON(w, http.StatusUnprocessableEntity, schema.FieldMessages(vErr))
	case errors.Is(err, ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
