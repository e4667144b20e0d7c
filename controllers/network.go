package controllers

import (
	"net/http"

	"RPGLobby/config"

	"github.com/gin-gonic/gin"
	"github.com/samber/oops"
	"gorm.io/gorm"
)

// @Summary Endpoint just pings the server
// @Description Returns a basic message once the database answers
// @Tags test
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 500 {object} object{error=string}
// @Router /ping [get]
func Ping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := config.PingGORM(db); err != nil {
			_ = c.Error(oops.Wrapf(err, "ping database"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}
