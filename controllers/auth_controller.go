package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/logger"
	"tripmates-api/middleware"
	"tripmates-api/models"
	"tripmates-api/utils"
)

type AuthController struct {
	app       *app.App
	jwtSecret string
}

func NewAuthController(application *app.App, jwtSecret string) *AuthController {
	return &AuthController{app: application, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	user, err := ac.app.Register(c.GetString(middleware.SessionKey), req.Username, req.Password)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}

	logger.Info("User registered", "username", user.Username)
	utils.SendCreated(c, "Account created! Log in to start finding travel companions.", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	session, user, err := ac.app.Login(req.Username, req.Password)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}

	token, err := middleware.IssueToken(session.ID, ac.jwtSecret)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: *user})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.app.Logout(c.GetString(middleware.SessionKey)); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Logged out!", nil)
}
