package controllers

import (
	"errors"
	"io"

	"RPGLobby/apperr"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst. An empty body leaves dst
// zeroed so that the field checks report what is missing.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}
