package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	feedbackapp "github.com/facultyfeedback/backend/internal/application/feedback"
	identityapp "github.com/facultyfeedback/backend/internal/application/identity"
	orgapp "github.com/facultyfeedback/backend/internal/application/organization"
	questionapp "github.com/facultyfeedback/backend/internal/application/question"
	reportapp "github.com/facultyfeedback/backend/internal/application/report"
	surveyapp "github.com/facultyfeedback/backend/internal/application/survey"
	takingapp "github.com/facultyfeedback/backend/internal/application/surveytaking"
	"github.com/facultyfeedback/backend/internal/infrastructure/auth"
	"github.com/facultyfeedback/backend/internal/infrastructure/cache"
	"github.com/facultyfeedback/backend/internal/infrastructure/config"
	"github.com/facultyfeedback/backend/internal/infrastructure/event"
	"github.com/facultyfeedback/backend/internal/infrastructure/logger"
	"github.com/facultyfeedback/backend/internal/infrastructure/migration"
	"github.com/facultyfeedback/backend/internal/infrastructure/persistence"
	"github.com/facultyfeedback/backend/internal/infrastructure/storage"
	"github.com/facultyfeedback/backend/internal/infrastructure/telemetry"
	"github.com/facultyfeedback/backend/internal/interfaces/http/handler"
	"github.com/facultyfeedback/backend/internal/interfaces/http/middleware"
	"github.com/facultyfeedback/backend/internal/interfaces/http/router"
	"github.com/facultyfeedback/backend/migrations"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/facultyfeedback/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Faculty Feedback API
//	@version		1.0
//	@description	Faculty feedback surveys: catalog administration, survey taking and reporting
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Bootstrap logger, replaced once log export is known
	logCfg := logger.FromAppConfig(cfg.Log)
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	serverCtx, stopServer := context.WithCancel(context.Background())
	defer stopServer()

	telemetry.ServiceVersion = version
	logProvider, err := telemetry.NewLoggerProvider(serverCtx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log, err := logger.New(logCfg, logProvider.Core(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()
	defer shutdown(log, "log provider", logProvider.Shutdown)

	log.Info("Starting Faculty Feedback backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(serverCtx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer shutdown(log, "tracer provider", tracerProvider.Shutdown)

	meterProvider, err := telemetry.NewMeterProvider(serverCtx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer shutdown(log, "meter provider", meterProvider.Shutdown)

	profiler, err := telemetry.NewProfiler(cfg.Profiler, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if cfg.Profiler.SpanProfiles && profiler.IsEnabled() {
		tracerProvider.EnableSpanProfiles()
	}

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithSQL(cfg.App.Env == "development"),
	)

	dbOpts := []persistence.Option{persistence.WithLogger(gormLog)}
	if cfg.Telemetry.DBTraceEnabled {
		dbOpts = append(dbOpts, persistence.WithPlugins(
			telemetry.NewDBTracingPlugin(cfg.Telemetry, cfg.Database.DBName, log),
		))
	}
	if cfg.Database.AutoMigrate {
		if err := migration.Apply(serverCtx, cfg.Database.DSN(), migrations.Files, log.Named("migrate")); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	db, err := persistence.Connect(serverCtx, &cfg.Database, dbOpts...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	poolMetrics, err := telemetry.RegisterPoolMetrics(meterProvider.Meter("facultyfeedback"), cfg.Database.DBName, db.Stats)
	if err != nil {
		log.Fatal("Failed to register pool metrics", zap.Error(err))
	}
	defer func() { _ = poolMetrics.Unregister() }()

	// Initialize repositories
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	questionRepo := persistence.NewGormQuestionRepository(db.DB)
	surveyRepo := persistence.NewGormSurveyRepository(db.DB)
	feedbackRepo := persistence.NewGormFeedbackRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	departmentService := orgapp.NewDepartmentService(departmentRepo, eventBus, log)
	questionService := questionapp.NewQuestionService(questionRepo, eventBus, log)
	surveyService := surveyapp.NewSurveyService(surveyRepo, departmentRepo, questionRepo, feedbackRepo, eventBus, log)
	feedbackService := feedbackapp.NewFeedbackService(feedbackRepo, surveyRepo, log)

	feedbackMetrics, err := telemetry.NewFeedbackMetrics(meterProvider.Meter("facultyfeedback"), surveyService.CountActive)
	if err != nil {
		log.Fatal("Failed to register feedback metrics", zap.Error(err))
	}
	defer func() {
		if err := feedbackMetrics.Stop(); err != nil {
			log.Error("Error unregistering feedback metrics", zap.Error(err))
		}
	}()
	eventBus.Subscribe(feedbackMetrics)

	if err := eventBus.Start(serverCtx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Session store
	sessionStore, err := cache.NewSessionStoreFactory(cfg.Redis, cfg.Session, cache.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create session store", zap.Error(err))
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Error("Error closing session store", zap.Error(err))
		}
	}()

	// Signed-out tokens share the session store's Redis when there is one
	var revocations auth.RevocationList = auth.NewMemoryRevocationList()
	if rs, ok := sessionStore.(*cache.RedisSessionStore); ok {
		revocations = cache.NewRedisRevocationList(rs.Client(), "")
	}
	authService := identityapp.NewAuthService(userRepo, departmentRepo, jwtService, eventBus, log,
		identityapp.WithRevocationList(revocations))

	controller := takingapp.NewController(
		sessionStore, surveyRepo, userRepo, feedbackRepo, departmentService, log,
		takingapp.WithMetrics(feedbackMetrics),
		takingapp.WithEventPublisher(eventBus),
	)

	// Report storage
	reportStorage, err := storage.New(serverCtx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize report storage", zap.Error(err))
	}
	reportService := reportapp.NewReportService(surveyRepo, feedbackRepo, departmentRepo, userRepo, reportStorage,
		reportapp.ReportServiceConfig{
			DownloadURLExpiration: cfg.Storage.PresignExpiration,
			KeyPrefix:             "exports",
		}, log)

	// Initialize HTTP handlers
	reportHandler := handler.NewReportHandler(reportService)
	if files, ok := reportStorage.(*storage.FileSystemStorage); ok {
		reportHandler.SetFileOpener(files)
	}

	systemHandler := handler.NewSystemHandler(version)
	systemHandler.AddCheck("database", db.Ping)
	if pinger, ok := sessionStore.(interface{ Ping(context.Context) error }); ok {
		systemHandler.AddCheck("sessions", pinger.Ping)
	}

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Department: handler.NewDepartmentHandler(departmentService),
		Question:   handler.NewQuestionHandler(questionService),
		Survey:     handler.NewSurveyHandler(surveyService),
		Session:    handler.NewSessionHandler(controller),
		Feedback:   handler.NewFeedbackHandler(feedbackService),
		Report:     reportHandler,
		Dashboard:  handler.NewDashboardHandler(reportService),
		System:     systemHandler,
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	httpMetrics, err := middleware.HTTPMetrics(meterProvider.Meter("facultyfeedback/http"))
	if err != nil {
		log.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	// Apply middleware stack in order:
	// RequestID first so every log line and span carries it,
	// Recovery before anything that may panic.
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		middleware.Tracing(cfg.Telemetry.ServiceName, tracerProvider.IsEnabled()),
		middleware.SpanErrorMarker(),
		logger.GinMiddleware(log, "/health", "/swagger"),
		httpMetrics,
		middleware.ProfileLabels(profiler.IsEnabled(), "/health", "/swagger"),
		middleware.Secure(),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
			AllowMethods:  cfg.HTTP.CORSAllowMethods,
			AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	authenticate := middleware.Authenticate(jwtService, log, middleware.WithRevocations(revocations))
	guards := router.Guards{
		Authenticate: authenticate,
		Identify:     middleware.Identify(jwtService, middleware.WithRevocations(revocations)),
	}
	if cfg.HTTP.AuthRateLimit > 0 {
		var limiter middleware.Limiter = middleware.NewWindowLimiter(serverCtx, cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateWindow)
		if rs, ok := sessionStore.(*cache.RedisSessionStore); ok {
			limiter = cache.NewRedisRateLimiter(rs.Client(), "", cfg.HTTP.AuthRateLimit, cfg.HTTP.AuthRateWindow)
		}
		guards.AuthLimit = middleware.RateLimit(limiter, log)
	}

	// Health check outside the API prefix for load balancers
	engine.GET("/health", systemHandler.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, authenticate),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	for _, group := range router.APIGroups(handlers, guards) {
		r.Register(group)
	}
	r.Setup()
	for _, rt := range r.Routes() {
		log.Debug("Route mounted", zap.String("group", rt.Group), zap.String("method", rt.Method), zap.String("path", rt.Path))
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	stopServer()

	log.Info("Server exited gracefully")
}

// shutdown flushes a telemetry provider with a bounded wait
func shutdown(log *zap.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
