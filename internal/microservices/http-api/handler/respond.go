package handler

import (
	"net/http"
	"strconv"

	"skillswap/internal/apperror"
	"skillswap/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
)

// respondError renders err as {"error", "code"}. Internal causes are
// attached to the context for the request logger and never sent.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		_ = c.Error(err)
	}
	c.JSON(apperror.HTTPStatus(kind), gin.H{
		"error": apperror.PublicMessage(err),
		"code":  kind,
	})
}

// respondBindError maps a gin binding failure to a validation error
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"code":  apperror.KindValidation,
	})
}

// currentUserID returns the id set by AuthMiddleware
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		respondError(c, apperror.Unauthorized("user not authenticated"))
		return "", false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperror.Validation("invalid "+label+" id"))
		return 0, false
	}
	return id, true
}
