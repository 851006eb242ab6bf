package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/models"
	"tripmates-api/utils"
)

type ProfileController struct {
	app *app.App
}

func NewProfileController(application *app.App) *ProfileController {
	return &ProfileController{app: application}
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var details models.ProfileDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	profile, err := pc.app.UpdateProfile(c.GetString(middleware.SessionKey), details)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Profile updated!", profile)
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile, err := pc.app.GetProfile(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) GetProfileOf(c *gin.Context) {
	profile, err := pc.app.GetProfileOf(c.GetString(middleware.SessionKey), c.Param("user_id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) DeleteProfile(c *gin.Context) {
	if err := pc.app.DeleteProfile(c.GetString(middleware.SessionKey)); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Profile deleted.", nil)
}
