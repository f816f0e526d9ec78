package app

import (
	"kernel_school_backend/docs"
	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/middleware"
	"kernel_school_backend/internal/model"

	"kernel_school_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// 课程目录对游客开放
		public.GET("/courses", c.course.Catalog)
		public.GET("/courses/:id", c.course.Detail)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/progress", c.dashboard.GetProgress)

	// 测验
	rg.GET("/tests/:id", c.test.GetTest)
	rg.POST("/tests/:id/submit", c.test.SubmitTest)

	// 学习动作
	rg.POST("/enroll", middleware.RoleMiddleware(model.Student), c.learning.Enroll)
	rg.POST("/lessons/:id/complete", c.learning.CompleteLesson)
	rg.POST("/homeworks/:id/submit", middleware.RoleMiddleware(model.Student), c.learning.SubmitHomework)
	rg.POST("/favorites", c.learning.AddFavorite)

	// 群聊
	rg.GET("/chat", c.chat.History)
	rg.POST("/chat", c.chat.Send)

	// AI 问答转发
	rg.POST("/ai/ask", c.ai.Ask)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		// 报表
		admin.GET("/reports/learning", c.report.Learning)
		admin.GET("/reports/activity", c.report.Activity)
		admin.GET("/reports/payments", c.report.Payments)

		// 课程管理
		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)
		admin.POST("/upload/cover", c.course.UploadCover)
	}
}
