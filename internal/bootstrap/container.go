package bootstrap

import (
	"context"
	"log"

	"edutrack-advisor-be/internal/config"
	"edutrack-advisor-be/internal/constant"
	"edutrack-advisor-be/internal/controller"
	"edutrack-advisor-be/internal/pkg/logger"
	"edutrack-advisor-be/internal/pkg/mailer"
	"edutrack-advisor-be/internal/repository/unitofwork"
	"edutrack-advisor-be/internal/service"
	"edutrack-advisor-be/internal/websocket"
	"edutrack-advisor-be/pkg/advisor"
	"edutrack-advisor-be/pkg/advisor/capability"
	"edutrack-advisor-be/pkg/advisor/group"
	"edutrack-advisor-be/pkg/dataset"
	"edutrack-advisor-be/pkg/llm/factory"

	pktNats "edutrack-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AdvisorController controller.IAdvisorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	escalationMailer := mailer.NewEscalationMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.CounselorEmail,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Advisory Core
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg),
		cfg.Ai.OpenRouterAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	registry, err := capability.NewRegistry(DefaultResponders()...)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build responder registry: %v", err)
	}

	datasets := dataset.NewCSVProvider(cfg.Dataset.BaseDir)

	orchestrator := advisor.NewOrchestrator(
		llmProvider,
		registry,
		datasets,
		group.RoundRobin{},
		log.Default(),
	)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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
		rdb = nil
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/flow_stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(constant.EventInteractionRecorded, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.EventInteractionRecorded,
		wsHub,
		escalationMailer,
	)

	advisorService := service.NewAdvisorService(
		orchestrator,
		uowFactory,
		publisherService,
		natsPub,
		rdb,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AdvisorController: controller.NewAdvisorController(advisorService, wsHub),
		ConsumerService:   consumerService,
		WebSocketHub:      wsHub,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenRouterBaseURL
}

// DefaultResponders builds the four advisory responders this deployment
// ships with.
func DefaultResponders() []*capability.Responder {
	return []*capability.Responder{
		{Name: "academic_advisor", Capability: capability.Academic, Instruction: constant.AcademicAdvisorInstructionV1},
		{Name: "career_advisor", Capability: capability.Career, Instruction: constant.CareerAdvisorInstructionV1},
		{Name: "welfare_advisor", Capability: capability.Welfare, Instruction: constant.WelfareAdvisorInstructionV1},
		{Name: "performance_advisor", Capability: capability.Performance, Instruction: constant.PerformanceAdvisorInstructionV1},
	}
}
