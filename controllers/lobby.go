package controllers

import (
	"net/http"

	"RPGLobby/middleware"
	"RPGLobby/models"
	"RPGLobby/services/lobby"

	"github.com/gin-gonic/gin"
)

// @Summary Creates a new lobby
// @Description Masters only. The requester becomes the lobby's master
// @Tags lobby
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body models.LobbyCreation true "lobby name"
// @Success 201 {object} postgres.Lobby
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /lobbies [post]
// @Security ApiKeyAuth
func CreateLobby(lobbies *lobby.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.LobbyCreation
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		created, err := lobbies.Create(c.Request.Context(), id, body.Name)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary Lists the requester's lobbies
// @Tags lobby
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} postgres.Lobby
// @Failure 403 {object} object{error=string}
// @Router /lobbies [get]
// @Security ApiKeyAuth
func ListLobbies(lobbies *lobby.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		owned, err := lobbies.ListOwned(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, owned)
	}
}

// @Summary Lists the lobbies a player has joined
// @Description Each lobby carries its master and the accepted invite id
// @Tags lobby
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} lobby.Joined
// @Failure 403 {object} object{error=string}
// @Router /player-lobbies [get]
// @Security ApiKeyAuth
func ListPlayerLobbies(lobbies *lobby.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		joined, err := lobbies.ListJoined(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, joined)
	}
}
