package middleware

import (
	"log/slog"
	"net/http"

	"RPGLobby/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetUpMiddleware installs the middleware shared by every route: recovery,
// request logging, CORS, metrics and the error responder.
func SetUpMiddleware(r *gin.Engine, log *slog.Logger, origins []string, metrics *Metrics) {
	r.Use(gin.Recovery())
	r.Use(utils.Logger(log))

	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", utils.RequestIDHeader},
		ExposeHeaders: []string{utils.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	if metrics != nil {
		r.Use(metrics.Middleware())
	}
	r.Use(utils.ErrorHandler(log))
}
