// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "fleet-rental-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// errorBody is the error shape of every failing endpoint: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// Error sends an error response with an explicit status.
func Error(c *gin.Context, status int, err error) {
	c.Abort()
	c.JSON(status, errorBody{Error: xerrors.MessageOrDefault(err, http.StatusText(status))})
}

// FromError maps the error taxonomy onto HTTP statuses: domain errors are
// bad requests, conflicts 409, missing entities 404, anything else an
// unhandled 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrDomain):
		Error(c, http.StatusBadRequest, err)
	case errors.Is(err, xerrors.ErrConflict):
		Error(c, http.StatusConflict, err)
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, err)
	default:
		Error(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}
