package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/middleware"
	"tripmates-api/utils"
)

type ChatController struct {
	app *app.App
}

func NewChatController(application *app.App) *ChatController {
	return &ChatController{app: application}
}

type StartChatRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
}

func (cc *ChatController) StartChat(c *gin.Context) {
	var req StartChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	chat, err := cc.app.StartChat(c.GetString(middleware.SessionKey), req.TargetUserID)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendCreated(c, "Chat session began! Let's chat!", chat)
}

func (cc *ChatController) GetChats(c *gin.Context) {
	chats, err := cc.app.ListChats(c.GetString(middleware.SessionKey))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	message, err := cc.app.SendMessage(c.GetString(middleware.SessionKey), c.Param("id"), req.Text)
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendCreated(c, "Message sent!", message)
}

func (cc *ChatController) GetMessages(c *gin.Context) {
	messages, err := cc.app.GetMessages(c.GetString(middleware.SessionKey), c.Param("id"))
	if err != nil {
		utils.SendConceptError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (cc *ChatController) EndChat(c *gin.Context) {
	if err := cc.app.EndChat(c.GetString(middleware.SessionKey), c.Param("id")); err != nil {
		utils.SendConceptError(c, err)
		return
	}
	utils.SendSuccess(c, "Chat ended. Find another match soon?", nil)
}
