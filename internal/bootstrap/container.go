package bootstrap

import (
	"context"
	"log"
	"time"

	"course-portal-be/internal/config"
	"course-portal-be/internal/controller"
	"course-portal-be/internal/pkg/logger"
	"course-portal-be/internal/pkg/serverutils"
	"course-portal-be/internal/repository/implementation"
	"course-portal-be/internal/repository/memory"
	"course-portal-be/internal/service"
	"course-portal-be/internal/websocket"
	pktNats "course-portal-be/pkg/nats"
	"course-portal-be/pkg/token"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	ApiKeyController   controller.IApiKeyController
	SurveyController   controller.ISurveyController
	ProgressController controller.IProgressController

	// Background workers (exposed for main.go to run)
	FeedService  service.IFeedService
	StatsWatcher *service.StatsWatcher

	// Infrastructure
	WebSocketHub *websocket.Hub
	Logger       logger.ILogger
	AdminGate    fiber.Handler
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	submissionRepo := implementation.NewSubmissionRepository(db)
	progressRepo := implementation.NewProgressRepository(db)
	apiKeyRepo := implementation.NewApiKeyRepository(db)
	sessionCache := memory.NewSessionCache()

	// Event bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// NATS change feed
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis (cross-instance presence fanout)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/presence.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Token codec + admin gate
	codec := token.NewCodec([]byte(cfg.Auth.JWTSecret))
	adminGate := serverutils.AdminGate(codec)

	// Services
	busService := service.NewBusService(service.TopicProgressChanged, pubSub)
	statsWatcher := service.NewStatsWatcher(
		pubSub,
		progressRepo,
		wsHub,
		time.Duration(cfg.Progress.StatsDebounceMs)*time.Millisecond,
		sysLogger,
	)

	authService := service.NewAuthService(cfg.Auth, codec, sysLogger)
	apiKeyService := service.NewApiKeyService(apiKeyRepo, sysLogger)
	surveyService := service.NewSurveyService(submissionRepo, natsPub, sysLogger)
	progressService := service.NewProgressService(
		progressRepo,
		sessionCache,
		wsHub,
		natsPub,
		busService,
		statsWatcher,
		cfg.Progress.DefaultTotalSteps,
		sysLogger,
	)

	var feedService service.IFeedService
	if natsSub != nil {
		feedService = service.NewFeedService(natsSub, wsHub, sysLogger)
	}

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		ApiKeyController:   controller.NewApiKeyController(apiKeyService),
		SurveyController:   controller.NewSurveyController(surveyService, adminGate),
		ProgressController: controller.NewProgressController(progressService, wsHub, adminGate),

		FeedService:  feedService,
		StatsWatcher: statsWatcher,

		WebSocketHub: wsHub,
		Logger:       sysLogger,
		AdminGate:    adminGate,
	}
}
