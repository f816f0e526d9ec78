package controller

import (
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// History godoc
// @Summary 群聊历史
// @Description 最新50条，按时间正序；客户端轮询拉取
// @Tags 聊天
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.MessageWithAuthor}
// @Router /chat [get]
func (c *ChatController) History(ctx *gin.Context) {
	messages, err := c.ChatService.History()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Send godoc
// @Summary 发送消息
// @Tags 聊天
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response
// @Router /chat [post]
func (c *ChatController) Send(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ChatService.Send(claims.UserID, req.Text); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "OK"})
}
