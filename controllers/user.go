package controllers

import (
	"net/http"

	"RPGLobby/middleware"
	"RPGLobby/models"
	"RPGLobby/services/auth"

	"github.com/gin-gonic/gin"
)

// @Summary Registers a new user
// @Description Creates a player or master account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.Registration true "name, email, password and role (player or master)"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /register [post]
func Register(users *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Registration
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		_, err := users.Register(c.Request.Context(), auth.RegisterInput{
			Name:     body.Name,
			Email:    body.Email,
			Password: body.Password,
			Role:     body.Role,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
	}
}

// @Summary Logs a user in
// @Description Returns a JWT valid for one hour
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.Credentials true "email and password"
// @Success 200 {object} object{token=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /login [post]
func Login(users *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Credentials
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		token, err := users.Login(c.Request.Context(), body.Email, body.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// @Summary Logs out
// @Description Revokes the presented token until it expires
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /logout [delete]
// @Security ApiKeyAuth
func Logout(users *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := users.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
