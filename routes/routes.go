package routes

import (
	"log/slog"

	"RPGLobby/controllers"
	"RPGLobby/middleware"
	"RPGLobby/services/auth"
	"RPGLobby/services/invite"
	"RPGLobby/services/lobby"
	"RPGLobby/services/redis"
	"RPGLobby/services/sheet"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options are the dependencies of the HTTP surface.
type Options struct {
	DB          *gorm.DB
	Revoker     redis.Revoker
	JWTSecret   []byte
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewRouter builds the services and a gin engine with every route mounted.
func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	metrics := middleware.NewMetrics()
	middleware.SetUpMiddleware(r, opts.Logger, opts.CORSOrigins, metrics)

	users := auth.NewService(opts.DB, auth.NewTokenIssuer(opts.JWTSecret), opts.Revoker, opts.Logger)
	lobbies := lobby.NewService(opts.DB, opts.Logger)
	SetupRoutes(r, opts.DB, users,
		lobbies,
		invite.NewService(opts.DB, lobbies, opts.Logger),
		sheet.NewService(opts.DB, lobbies, opts.Logger),
	)
	r.GET("/metrics", metrics.Handler())
	return r
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, users *auth.Service, lobbies *lobby.Service, invites *invite.Service, sheets *sheet.Service) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping(db))

	api.POST("/register", controllers.Register(users))

	api.POST("/login", controllers.Login(users))

	authenticated := api.Group("/")
	authenticated.Use(middleware.AuthRequired(users))
	{
		authenticated.DELETE("/logout", controllers.Logout(users))

		authenticated.POST("/lobbies", controllers.CreateLobby(lobbies))
		authenticated.GET("/lobbies", controllers.ListLobbies(lobbies))
		authenticated.GET("/lobbies/:id/character-sheets", controllers.ListLobbyCharacterSheets(sheets))
		authenticated.GET("/player-lobbies", controllers.ListPlayerLobbies(lobbies))

		authenticated.POST("/invites", controllers.CreateInvite(invites))
		authenticated.GET("/invites", controllers.ListInvites(invites))
		authenticated.PATCH("/invites/:id", controllers.AnswerInvite(invites))
		authenticated.DELETE("/invites/:id", controllers.DeleteInvite(invites))

		authenticated.POST("/character-sheets", controllers.CreateCharacterSheet(sheets))
		authenticated.GET("/character-sheets", controllers.ListCharacterSheets(sheets))
		authenticated.PATCH("/character-sheets/:id", controllers.UpdateCharacterSheet(sheets))
		authenticated.DELETE("/character-sheets/:id", controllers.DeleteCharacterSheet(sheets))
		authenticated.POST("/character-sheets/:id/inventory", controllers.AddInventoryItem(sheets))
	}
}
