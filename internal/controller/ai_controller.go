package controller

import (
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService *service.AIService
}

func NewAIController(aiService *service.AIService) *AIController {
	return &AIController{AIService: aiService}
}

// swagger:model AskRequest
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask godoc
// @Summary AI 问答
// @Description 转发到AI中台并透传answer；中台故障直接体现为本请求失败
// @Tags AI
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AskRequest true "问题"
// @Success 200 {object} util.Response{data=object}
// @Failure 500 {object} util.Response "AI中台不可用"
// @Router /ai/ask [post]
func (c *AIController) Ask(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AIService.Ask(req.Question)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"answer": answer})
}
