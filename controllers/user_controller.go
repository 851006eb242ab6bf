package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/utils"
)

type UserController struct {
	app *app.App
}

func NewUserController(application *app.App) *UserController {
	return &UserController{app: application}
}

func (uc *UserController) GetSessionUser(c *gin.Context) {
	user, err := uc.app.CurrentUser(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.app.ListUsers()
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (uc *UserController) GetUserByUsername(c *gin.Context) {
	user, err := uc.app.GetUserByUsername(c.Param("username"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

func (uc *UserController) UpdateUsername(c *gin.Context) {
	var req UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := uc.app.UpdateUsername(c.GetString(middleware.SessionKey), req.Username); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Username updated successfully!", nil)
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (uc *UserController) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := uc.app.UpdatePassword(c.GetString(middleware.SessionKey), req.CurrentPassword, req.NewPassword); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Password updated successfully!", nil)
}

func (uc *UserController) DeleteAccount(c *gin.Context) {
	if err := uc.app.DeleteAccount(c.GetString(middleware.SessionKey)); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Account deleted. Safe travels!", nil)
}
