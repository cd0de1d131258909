package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentwheels/internal/services"
)

// respond writes the API envelope every endpoint shares.
func respond(c *gin.Context, status int, success bool, message string, data interface{}) {
	body := gin.H{"success": success, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// fail maps a service error onto the envelope. Domain errors carry their own
// HTTP status and caller-safe message; anything else is logged with full
// context and surfaced as a generic 500.
func fail(c *gin.Context, err error, fallback string) {
	var de *services.DomainError
	if errors.As(err, &de) {
		respond(c, de.Status, false, de.Message, nil)
		return
	}
	logrus.WithError(err).WithField("path", c.FullPath()).Error(fallback)
	respond(c, http.StatusInternalServerError, false, fallback, nil)
}

// caller returns the identity RequireAuth stored on the context.
func caller(c *gin.Context) (uint, string) {
	return c.MustGet("user_id").(uint), c.MustGet("role").(string)
}

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
