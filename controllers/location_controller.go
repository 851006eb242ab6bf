package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/utils"
)

type LocationController struct {
	app *app.App
}

func NewLocationController(application *app.App) *LocationController {
	return &LocationController{app: application}
}

type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Name      string   `json:"name" binding:"required"`
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	location, err := lc.app.UpdateLocation(c.GetString(middleware.SessionKey),
		*req.Latitude, *req.Longitude, req.Name)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Location updated successfully!", location)
}

type SetSharingRequest struct {
	Share *bool `json:"share" binding:"required"`
}

func (lc *LocationController) SetLocationSharing(c *gin.Context) {
	var req SetSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := lc.app.SetLocationSharing(c.GetString(middleware.SessionKey), *req.Share); err != nil {
		utils.SendConceptError(c, err)
		return
	}

	message := "Location sharing enabled!"
	if !*req.Share {
		message = "Location sharing disabled!"
	}
	utils.SendSuccess(c, message, nil)
}

// ViewLocation shows a user's shared location; with no user_id query it
// shows the caller's own.
func (lc *LocationController) ViewLocation(c *gin.Context) {
	location, err := lc.app.ViewLocation(c.GetString(middleware.SessionKey), c.Query("user_id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (lc *LocationController) GetLocationDetails(c *gin.Context) {
	info, err := lc.app.GetLocationDetails(c.GetString(middleware.SessionKey), c.Param("name"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
