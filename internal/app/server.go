// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"impactlink-service/internal/config"
	"impactlink-service/internal/db"
	authHandler "impactlink-service/internal/handlers/auth"
	campaignHandler "impactlink-service/internal/handlers/campaign"
	customerHandler "impactlink-service/internal/handlers/customer"
	mediaHandler "impactlink-service/internal/handlers/media"
	profileHandler "impactlink-service/internal/handlers/profile"
	"impactlink-service/internal/middleware"
	"impactlink-service/internal/pkg/jwt"
	"impactlink-service/internal/pkg/session"
	"impactlink-service/internal/repository/postgres"
	authUsecase "impactlink-service/internal/service/auth"
	campaignUsecase "impactlink-service/internal/service/campaign"
	customersvc "impactlink-service/internal/service/customer"
	mediasvc "impactlink-service/internal/service/media"
	profileUsecase "impactlink-service/internal/service/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected")

	// ----- JWT Manager -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}

	// ----- Rate Limiter -----
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	dashboardUserRepo := postgres.NewDashboardUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	cmsCustomerRepo := postgres.NewCmsCustomerRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	appUserRepo := postgres.NewAppUserRepository(pool)

	campaignStore := postgres.NewCampaignStore(companyRepo, cmsCustomerRepo, transactionRepo)
	profileStore := postgres.NewProfileStore(profileRepo, cmsCustomerRepo, transactionRepo)

	// ----- Services -----
	authService := authUsecase.NewAuthService(dashboardUserRepo, companyRepo, jwtManager, rateLimiter, logger)
	campaignService := campaignUsecase.NewCampaignService(campaignStore, logger)
	profileService := profileUsecase.NewProfileService(profileStore, logger)
	customerService := customersvc.NewCustomerService(appUserRepo, companyRepo, logger)
	mediaService := mediasvc.NewMediaService(
		s.cfg.DeliverablesBaseURL,
		s.cfg.DeliverablesSuperToken,
		s.cfg.DeliverablesFallbackPath,
		logger,
	)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	campaignHandlerInst := campaignHandler.NewCampaignHandler(
		campaignService,
		logger,
		s.cfg.CampaignReferralCode,
		s.cfg.CampaignProductName,
	)
	profileHandlerInst := profileHandler.NewProfileHandler(profileService, logger)
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService, logger)
	mediaHandlerInst := mediaHandler.NewMediaHandler(mediaService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:     authHandlerInst,
		CampaignHandler: campaignHandlerInst,
		ProfileHandler:  profileHandlerInst,
		CustomerHandler: customerHandlerInst,
		MediaHandler:    mediaHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
