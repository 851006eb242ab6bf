package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/utils"
)

type MeetingController struct {
	app *app.App
}

func NewMeetingController(application *app.App) *MeetingController {
	return &MeetingController{app: application}
}

type ProposeMeetingRequest struct {
	ReceiverID       string `json:"receiver_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Location         string `json:"location" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

func (mc *MeetingController) ProposeMeeting(c *gin.Context) {
	var req ProposeMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	meeting, err := mc.app.ProposeMeeting(c.GetString(middleware.SessionKey),
		req.ReceiverID, req.Date, req.Time, req.Location, req.EmergencyContact)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendCreated(c, "Meeting proposed!", meeting)
}

func (mc *MeetingController) ConfirmMeeting(c *gin.Context) {
	meeting, err := mc.app.ConfirmMeeting(c.GetString(middleware.SessionKey), c.Param("id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Meeting confirmed!", meeting)
}

func (mc *MeetingController) DenyMeeting(c *gin.Context) {
	meeting, err := mc.app.DenyMeeting(c.GetString(middleware.SessionKey), c.Param("id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Meeting denied.", meeting)
}

func (mc *MeetingController) GetMeetings(c *gin.Context) {
	meetings, err := mc.app.ListMeetings(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

func (mc *MeetingController) GetMeeting(c *gin.Context) {
	meeting, err := mc.app.GetMeeting(c.GetString(middleware.SessionKey), c.Param("id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

type SetEmergencyContactRequest struct {
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

func (mc *MeetingController) SetEmergencyContact(c *gin.Context) {
	var req SetEmergencyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	err := mc.app.SetEmergencyContact(c.GetString(middleware.SessionKey), c.Param("id"), req.EmergencyContact)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Emergency contact updated.", nil)
}
