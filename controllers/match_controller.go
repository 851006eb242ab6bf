package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/utils"
)

type MatchController struct {
	app *app.App
}

func NewMatchController(application *app.App) *MatchController {
	return &MatchController{app: application}
}

type RateUserRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
	Like         *bool  `json:"like" binding:"required"`
}

func (mc *MatchController) RateUser(c *gin.Context) {
	var req RateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	outcome, err := mc.app.RateUser(c.GetString(middleware.SessionKey), req.TargetUserID, *req.Like)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}

	message := "Rating submitted!"
	if outcome.Match != nil {
		message = "It's a match! A chat has been opened for you two."
	}
	utils.SendCreated(c, message, outcome)
}

func (mc *MatchController) GetRatings(c *gin.Context) {
	ratings, err := mc.app.GetRatings(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (mc *MatchController) GetMatches(c *gin.Context) {
	matches, err := mc.app.GetMatches(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (mc *MatchController) GetCandidates(c *gin.Context) {
	withCompatibility, _ := strconv.ParseBool(c.DefaultQuery("with_compatibility", "true"))

	candidates, err := mc.app.ListCandidates(c.GetString(middleware.SessionKey), withCompatibility)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(candidates), "candidates": candidates})
}
