package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appaccess "github.com/rentflow/backend/internal/application/access"
	identityapp "github.com/rentflow/backend/internal/application/identity"
	onboardingapp "github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/access"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/infrastructure/cache"
	"github.com/rentflow/backend/internal/infrastructure/config"
	"github.com/rentflow/backend/internal/infrastructure/logger"
	"github.com/rentflow/backend/internal/infrastructure/persistence"
	"github.com/rentflow/backend/internal/infrastructure/registry"
	"github.com/rentflow/backend/internal/infrastructure/storage"
	"github.com/rentflow/backend/internal/infrastructure/telemetry"
	"github.com/rentflow/backend/internal/interfaces/http/handler"
	"github.com/rentflow/backend/internal/interfaces/http/middleware"
	"github.com/rentflow/backend/internal/interfaces/http/router"

	_ "github.com/rentflow/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Rentflow Onboarding API
//	@version		1.0
//	@description	Sign-up, role selection, agency onboarding wizard and dashboards of the rentflow platform.

//	@contact.name	Rentflow Engineering
//	@contact.email	engineering@rentflow.example.com

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. The __session cookie is accepted as well. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()

	// The OTEL log bridge is created first so its core can be teed into the logger
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cfg.Log.Output,
		Service: cfg.App.Name,
	}, loggerProvider.Core())
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting rentflow backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}

	meter := meterProvider.Meter("github.com/rentflow/backend")
	onboardingMetrics, err := telemetry.NewOnboardingMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register onboarding metrics", zap.Error(err))
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:          cfg.Database.DBName,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		WithVariables:   cfg.App.Env == "development",
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis backs the role cache, the session blacklist and wizard sessions.
	// Without it everything falls back to process memory.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	var (
		roleCache identity.RoleCache
		blacklist auth.TokenBlacklist
		wizardRDB redis.Cmdable
	)
	if redisClient != nil {
		roleCache = cache.NewRedisRoleCache(redisClient)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		wizardRDB = redisClient
	} else {
		log.Warn("Redis disabled, using in-memory role cache and session blacklist")
		roleCache = cache.NewInMemoryRoleCache()
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	flows := onboarding.DefaultFlows()
	sessions, err := cache.NewSessionStoreFactory(cfg.Wizard, wizardRDB, flows, log).Create()
	if err != nil {
		log.Fatal("Failed to create wizard session store", zap.Error(err))
	}
	if closer, ok := sessions.(io.Closer); ok {
		defer func() {
			_ = closer.Close()
		}()
	}

	var documents onboarding.DocumentStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		bucketCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := s3Storage.EnsureBucket(bucketCtx); err != nil {
			log.Warn("Object storage bucket check failed", zap.String("bucket", s3Storage.GetBucket()), zap.Error(err))
		}
		cancel()
		documents = s3Storage
	} else {
		log.Warn("Object storage disabled, proofs of registration are kept in memory")
		documents = storage.NewStubObjectStorage()
	}

	// Repositories and services
	userRepo := persistence.NewGormUserRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(
		userRepo,
		roleCache,
		jwtService,
		blacklist,
		identityapp.DefaultAuthServiceConfig(),
		log,
	)
	roleService := onboardingapp.NewRoleService(authService, profileRepo, onboardingMetrics, log)
	wizardService := onboardingapp.NewAgencyWizardService(onboardingapp.AgencyWizardDeps{
		Flows:     flows,
		Sessions:  sessions,
		Profiles:  profileRepo,
		Registry:  registry.NewINSEEClient(cfg.Registry),
		Documents: documents,
		Upload: onboarding.UploadPolicy{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
		Metrics: onboardingMetrics,
	}, log)
	profileService := onboardingapp.NewProfileService(profileRepo, log)
	gateService := appaccess.NewGateService(access.DefaultPolicy(), authService, onboardingMetrics, log)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}
	engine.MaxMultipartMemory = cfg.Upload.MaxSize

	httpMetrics, err := middleware.HTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	cookie := handler.NewSessionCookie(cfg.Cookie)

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log, "/health"),
		middleware.SecureWithConfig(middleware.SecurityConfigForEnv(cfg.App.Env)),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.Use(
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		}),
		middleware.SpanErrorMarker(),
		httpMetrics,
		middleware.Profiling(cfg.Telemetry.ProfilingEnabled),
		middleware.Session(authService, cookie.Name(), log),
		middleware.TracingAttributeInjector(),
		middleware.GateRedirects(gateService),
	)

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger.Enabled),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)
	for _, registrar := range router.Routes(router.Handlers{
		Auth:      handler.NewAuthHandler(authService, cookie),
		Role:      handler.NewRoleHandler(roleService, cookie),
		Agency:    handler.NewAgencyHandler(wizardService),
		Registry:  handler.NewRegistryHandler(wizardService),
		Dashboard: handler.NewDashboardHandler(profileService),
		System:    handler.NewSystemHandler(cfg.App.Name, version, db),
	}) {
		r.Register(registrar)
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := profiler.Stop(); err != nil {
		log.Warn("Error stopping profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error shutting down meter provider", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error shutting down tracer provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
