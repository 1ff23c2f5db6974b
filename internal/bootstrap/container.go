package bootstrap

import (
	"context"
	"log"

	"mindshift-be/internal/config"
	"mindshift-be/internal/controller"
	"mindshift-be/internal/handler"
	"mindshift-be/internal/pkg/logger"
	"mindshift-be/internal/repository/unitofwork"
	"mindshift-be/internal/service"
	"mindshift-be/internal/websocket"

	pktNats "mindshift-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DetectionController    controller.IDetectionController
	InterventionController controller.IInterventionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Push
	PushHandler  *handler.PushHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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
	wsLogger := logger.NewIsolatedLogger("logs/push.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Engine.StatsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Engine.StatsTopic,
		uowFactory,
	)

	detectionService := service.NewDetectionService(
		uowFactory,
		publisherService,
		natsPub,
		cfg.Engine,
		sysLogger,
	)
	interventionService := service.NewInterventionService(uowFactory, natsPub, sysLogger)

	// 3.5 Live Push
	if natsSub != nil {
		pushService := service.NewPushService(natsSub, wsHub, wsLogger)
		go pushService.Start()
	}

	pushHandler := handler.NewPushHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		PushHandler:  pushHandler,
		WebSocketHub: wsHub,

		DetectionController:    controller.NewDetectionController(detectionService),
		InterventionController: controller.NewInterventionController(interventionService),

		ConsumerService: consumerService,
	}
}
