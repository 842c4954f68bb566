package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/solarsense-dev/solarsense/internal/errors"
)

// respondError maps a domain error to its HTTP status and writes the
// standard error body.
func respondError(ctx *gin.Context, err error) {
	httpErr := apperrors.MapErrorToHTTP(err)
	ctx.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
