package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kernel_school_backend/internal/config"
	"kernel_school_backend/internal/controller"
	"kernel_school_backend/internal/repository"
	"kernel_school_backend/internal/service"
	"kernel_school_backend/pkg/database"
	"kernel_school_backend/pkg/logger"
	"kernel_school_backend/pkg/monitoring"
	"kernel_school_backend/pkg/security"
	"kernel_school_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	origins *security.OriginSet
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	test       *repository.TestRepository
	enrollment *repository.EnrollmentRepository
	favorite   *repository.FavoriteRepository
	progress   *repository.ProgressRepository
	activity   *repository.ActivityRepository
	message    *repository.MessageRepository
	report     *repository.ReportRepository
}

type services struct {
	auth      *service.AuthService
	course    *service.CourseService
	learning  *service.LearningService
	test      *service.TestService
	dashboard *service.DashboardService
	report    *service.ReportService
	chat      *service.ChatService
	ai        *service.AIService
	storage   *service.StorageService
}

type controllers struct {
	auth      *controller.AuthController
	course    *controller.CourseController
	learning  *controller.LearningController
	test      *controller.TestController
	dashboard *controller.DashboardController
	report    *controller.ReportController
	chat      *controller.ChatController
	ai        *controller.AIController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		test:       repository.NewTestRepository(db),
		enrollment: repository.NewEnrollmentRepository(db),
		favorite:   repository.NewFavoriteRepository(db),
		progress:   repository.NewProgressRepository(db),
		activity:   repository.NewActivityRepository(db),
		message:    repository.NewMessageRepository(db),
		report:     repository.NewReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course)
	s.learning = service.NewLearningService(repos.enrollment, repos.progress, repos.favorite)
	s.test = service.NewTestService(repos.test)
	s.dashboard = service.NewDashboardService(repos.enrollment, repos.progress, repos.activity)
	s.report = service.NewReportService(repos.report)
	s.chat = service.NewChatService(repos.message)
	s.ai = service.NewAIService(cfg.AI)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, repos.user),
		course:    controller.NewCourseController(s.course, s.storage),
		learning:  controller.NewLearningController(s.learning),
		test:      controller.NewTestController(s.test),
		dashboard: controller.NewDashboardController(s.dashboard),
		report:    controller.NewReportController(s.report),
		chat:      controller.NewChatController(s.chat),
		ai:        controller.NewAIController(s.ai),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginSet(cfg.CORS.AllowedOrigins)

	router.Use(security.RequestID())
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig 配置热更新回调：只动可以在运行中安全替换的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	a.origins.Replace(cfg.CORS.AllowedOrigins)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db, &cfg.Seed); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kernel-school", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
