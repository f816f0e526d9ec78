package controller

import (
	"errors"
	"strconv"

	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"
	"kernel_school_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// GetTest godoc
// @Summary 取试卷
// @Description 题目和选项；选项的正确性标记不出现在响应里
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "试卷ID"
// @Success 200 {object} util.Response{data=service.TestDetail}
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /tests/{id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid test id")
		return
	}

	detail, err := c.TestService.LoadTest(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrTestNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// swagger:model SubmitTestRequest
type SubmitTestRequest struct {
	Answers map[uint]uint `json:"answers" binding:"required"`
}

// SubmitTest godoc
// @Summary 提交测验答案
// @Description 评分并返回百分比、是否通过；不及格时附带建议
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "试卷ID"
// @Param   body body SubmitTestRequest true "题目ID到所选答案ID的映射"
// @Success 200 {object} util.Response{data=service.GradeResult}
// @Failure 400 {object} util.Response "试卷没有题目"
// @Failure 404 {object} util.Response "试卷不存在"
// @Router /tests/{id}/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid test id")
		return
	}

	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TestService.SubmitTest(uint(id), claims.UserID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTestNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrTestNoQuestions):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	outcome := "failed"
	if result.Passed {
		outcome = "passed"
	}
	monitoring.TestSubmissions.WithLabelValues(outcome).Inc()

	util.Success(ctx, result)
}
