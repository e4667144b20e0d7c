package controllers

import (
	"net/http"

	"RPGLobby/middleware"
	"RPGLobby/models"
	"RPGLobby/services/invite"
	"RPGLobby/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Invites a player to a lobby
// @Description Masters only, for lobbies they own
// @Tags invites
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body models.InviteCreation true "lobbyId and playerEmail"
// @Success 201 {object} object{message=string,invite=postgres.Invite}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /invites [post]
// @Security ApiKeyAuth
func CreateInvite(invites *invite.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.InviteCreation
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		lobbyID, ok := body.LobbyID.ParseInt()
		if !ok || lobbyID < 0 {
			lobbyID = 0
		}
		created, err := invites.Create(c.Request.Context(), id, uint(lobbyID), body.PlayerEmail)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "invite sent", "invite": created})
	}
}

// @Summary Lists invites
// @Description Masters see every invite of their lobbies, players their own
// @Tags invites
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} postgres.Invite
// @Failure 401 {object} object{error=string}
// @Router /invites [get]
// @Security ApiKeyAuth
func ListInvites(invites *invite.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		list, err := invites.List(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Accepts or rejects an invite
// @Tags invites
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Invite id"
// @Param body body models.InviteAnswer true "accepted or rejected"
// @Success 200 {object} object{message=string,invite=postgres.Invite}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /invites/{id} [patch]
// @Security ApiKeyAuth
func AnswerInvite(invites *invite.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		inviteID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.InviteAnswer
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		updated, err := invites.Respond(c.Request.Context(), id, inviteID, body.Status)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "invite " + string(updated.Status), "invite": updated})
	}
}

// @Summary Deletes an invite
// @Description Withdraws a pending invite or leaves the lobby of an accepted one
// @Tags invites
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Invite id"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /invites/{id} [delete]
// @Security ApiKeyAuth
func DeleteInvite(invites *invite.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		inviteID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		if err := invites.Delete(c.Request.Context(), id, inviteID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "invite deleted"})
	}
}
