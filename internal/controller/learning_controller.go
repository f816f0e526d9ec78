package controller

import (
	"strconv"

	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// Enroll godoc
// @Summary 报名课程
// @Description 幂等：重复报名静默忽略
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body EnrollRequest true "课程ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "仅限学生"
// @Router /enroll [post]
func (c *LearningController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningService.Enroll(claims.UserID, req.CourseID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "enrolled"})
}

// CompleteLesson godoc
// @Summary 标记课时完成
// @Tags 学习
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "课时ID"
// @Success 200 {object} util.Response
// @Router /lessons/{id}/complete [post]
func (c *LearningController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	if err := c.LearningService.CompleteLesson(claims.UserID, uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "lesson completed"})
}

// swagger:model HomeworkRequest
type HomeworkRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

// SubmitHomework godoc
// @Summary 提交作业
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "作业ID"
// @Param   body body HomeworkRequest true "答案内容"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "仅限学生"
// @Router /homeworks/{id}/submit [post]
func (c *LearningController) SubmitHomework(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid homework id")
		return
	}

	var req HomeworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningService.SubmitHomework(claims.UserID, uint(id), req.AnswerText); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "homework submitted"})
}

// swagger:model FavoriteRequest
type FavoriteRequest struct {
	LessonID uint `json:"lesson_id" binding:"required"`
}

// AddFavorite godoc
// @Summary 收藏课时
// @Description 幂等：重复收藏静默忽略；不支持服务端取消收藏
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body FavoriteRequest true "课时ID"
// @Success 200 {object} util.Response
// @Router /favorites [post]
func (c *LearningController) AddFavorite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningService.AddFavorite(claims.UserID, req.LessonID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "added to favorites"})
}
