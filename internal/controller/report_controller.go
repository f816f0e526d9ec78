package controller

import (
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// Learning godoc
// @Summary 学习成效报表
// @Description 每个用户的选课数和平均成绩，按平均分降序；无成绩的用户平均分为 null
// @Tags 管理端
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.LearningReportRow}
// @Router /admin/reports/learning [get]
func (c *ReportController) Learning(ctx *gin.Context) {
	rows, err := c.ReportService.Learning()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Activity godoc
// @Summary 活跃度报表
// @Description 按天统计操作数，最近30天，新的在前
// @Tags 管理端
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.ActivityReportRow}
// @Router /admin/reports/activity [get]
func (c *ReportController) Activity(ctx *gin.Context) {
	rows, err := c.ReportService.Activity()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Payments godoc
// @Summary 营收报表
// @Description 已支付订单按天汇总，最近30天，新的在前
// @Tags 管理端
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.PaymentReportRow}
// @Router /admin/reports/payments [get]
func (c *ReportController) Payments(ctx *gin.Context) {
	rows, err := c.ReportService.Payments()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
