package controller

import (
	"kernel_school_backend/internal/service"
	"kernel_school_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 个人仪表盘
// @Description 我的课程、最近20条测验结果、最近30条操作记录
// @Tags 仪表盘
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// GetProgress godoc
// @Summary 成绩趋势
// @Description (percent, created_at) 按时间正序
// @Tags 仪表盘
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]repository.ProgressPoint}
// @Router /progress [get]
func (c *DashboardController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	points, err := c.DashboardService.GetProgressHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, points)
}
