package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/controller"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/pkg/database"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
	"skillbridge_backend/pkg/security"
	"skillbridge_backend/pkg/tracing"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	record     *repository.RecordRepository
	assessment *repository.AssessmentRepository
}

type services struct {
	auth       *service.AuthService
	profile    *service.ProfileService
	dashboard  *service.DashboardService
	assessment *service.AssessmentService
	gap        *service.GapService
	swot       *service.SwotService
	career     *service.CareerService
	roadmap    *service.RoadmapService
}

type controllers struct {
	auth       *controller.AuthController
	profile    *controller.ProfileController
	dashboard  *controller.DashboardController
	assessment *controller.AssessmentController
	analysis   *controller.AnalysisController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		record:     repository.NewRecordRepository(db),
		assessment: repository.NewAssessmentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	gen := service.NewTextGenerator(context.Background(), cfg)

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.L().Warn("storage init failed, resume archiving disabled", zap.Error(err))
		storage = &service.StorageService{}
	}

	github := service.NewGitHubService(cfg)
	resume := service.NewResumeService(gen)

	return &services{
		auth:       service.NewAuthService(repos.user, repos.record, rdb, cfg),
		profile:    service.NewProfileService(repos.record),
		dashboard:  service.NewDashboardService(repos.record, github, resume, storage),
		assessment: service.NewAssessmentService(repos.assessment, gen),
		gap:        service.NewGapService(repos.record, gen),
		swot:       service.NewSwotService(repos.record, gen),
		career:     service.NewCareerService(repos.record, gen),
		roadmap:    service.NewRoadmapService(repos.record, gen),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		profile:    controller.NewProfileController(s.profile),
		dashboard:  controller.NewDashboardController(s.dashboard),
		assessment: controller.NewAssessmentController(s.assessment),
		analysis:   controller.NewAnalysisController(s.gap, s.swot, s.career, s.roadmap),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.L().Info("logger initialized")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.L().Fatal("failed to initialize database", zap.Error(err))
	}

	// Redis only backs token revocation; without it the service still runs
	// and logout becomes a client-side operation.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.L().Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillbridge-api", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.L().Error("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

// ApplyConfig absorbs a hot-reloaded config. Only the settings read per
// request (generation model and timeout, GitHub token) take effect;
// everything else, rate limits included, needs a restart.
func (a *App) ApplyConfig(newCfg *config.Config) {
	a.Config.ApplyReloadable(newCfg)

	logger.L().Info("configuration reloaded",
		zap.String("ai_model", newCfg.AI.Model),
		zap.Int("ai_timeout_seconds", newCfg.AI.TimeoutSeconds))
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

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
