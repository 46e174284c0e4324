package bootstrap

import (
	"context"
	"io"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"guruvela-be/internal/config"
	"guruvela-be/internal/constant"
	"guruvela-be/internal/controller"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/internal/repository/cache"
	"guruvela-be/internal/repository/memory"
	"guruvela-be/internal/repository/unitofwork"
	"guruvela-be/internal/service"
	"guruvela-be/internal/websocket"
	"guruvela-be/pkg/dialogue"
	"guruvela-be/pkg/llm"
	"guruvela-be/pkg/llm/factory"
	pktNats "guruvela-be/pkg/nats"
)

type Container struct {
	// Controllers
	ChatbotController   controller.IChatbotController
	PredictorController controller.IPredictorController
	ContentController   controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	ChatbotService service.IChatbotService
	WebSocketHub   *websocket.Hub
	Logger         logger.ILogger

	closers []func()
}

// Core holds the pieces both the HTTP server and the terminal simulator
// need: the dialogue orchestrator and its collaborators.
type Core struct {
	Orchestrator *dialogue.Orchestrator
	Sessions     *memory.SessionRepository
	Factory      unitofwork.RepositoryFactory
	Logger       logger.ILogger
	Bus          *gochannel.GoChannel
	Closers      []func()
}

// NewCore wires the chat engine. eventPublisher may be nil.
func NewCore(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger, eventPublisher service.EventPublisher) *Core {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(context.Background())

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	llmLogger := logger.NewIsolatedLogger(cfg.App.LLMLogFilePath)
	llmProvider, err := factory.NewLLMProvider(context.Background(), factory.Settings{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		GeminiAPIKey:  cfg.Ai.GeminiAPIKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		Timeout:       cfg.Ai.Timeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	closers := []func(){func() { pubSub.Close() }}
	if llmProvider == nil {
		log.Printf("[INFO] Generative answers disabled (LLM_PROVIDER=%q)", cfg.Ai.LLMProvider)
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		if c, ok := llmProvider.(io.Closer); ok {
			closers = append(closers, func() { c.Close() })
		}
	}
	generative := llm.NewGenerative(llmProvider, cfg.Ai.MaxOutputTokens, llmLogger)

	observer := service.NewChatObserver(eventPublisher, pubSub, constant.ContentGapTopic, sysLogger)

	orchestrator := dialogue.NewOrchestrator(
		uow.JosaaCutoffRepository(),
		uow.FixedResponseRepository(),
		generative,
		observer,
		sysLogger,
		dialogue.Options{
			Dataset:         service.JosaaDataset(cfg.Prediction, cfg.Prediction.ChatLimit),
			Quota:           cfg.Prediction.ChatQuota,
			Gender:          cfg.Prediction.ChatGender,
			DefaultLanguage: cfg.Chat.DefaultLanguage,
		},
	)

	return &Core{
		Orchestrator: orchestrator,
		Sessions:     memory.NewSessionRepository(cfg.Chat.SessionTTL),
		Factory:      uowFactory,
		Logger:       sysLogger,
		Bus:          pubSub,
		Closers:      closers,
	}
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// NATS
	var eventPublisher service.EventPublisher
	var closers []func()
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		closers = append(closers, natsPub.Close)
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
		log.Printf("[WARN] Failed to connect to Redis: %v. Content pages will not be cached", err)
		rdb.Close()
		rdb = nil
	} else {
		closers = append(closers, func() { rdb.Close() })
	}

	core := NewCore(db, cfg, sysLogger, eventPublisher)
	closers = append(closers, core.Closers...)
	uow := core.Factory.NewUnitOfWork(context.Background())

	wsHub := websocket.NewHub(sysLogger)
	go wsHub.Run()

	consumerService := service.NewContentGapConsumer(core.Bus, constant.ContentGapTopic, sysLogger)

	chatbotService := service.NewChatbotService(core.Orchestrator, core.Sessions)
	predictorService := service.NewPredictorService(
		uow.JosaaCutoffRepository(),
		uow.CsabCutoffRepository(),
		cfg.Prediction,
		sysLogger,
	)
	contentService := service.NewContentService(
		uow.ContentPageRepository(),
		cache.NewContentCache(rdb, cfg.Chat.PageCacheTTL),
		cfg.Chat.DefaultLanguage,
		sysLogger,
	)

	return &Container{
		ChatbotController:   controller.NewChatbotController(chatbotService, wsHub),
		PredictorController: controller.NewPredictorController(predictorService),
		ContentController:   controller.NewContentController(contentService),

		ConsumerService: consumerService,
		ChatbotService:  chatbotService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
		closers:         closers,
	}
}

// Close releases the bus, cache and broker connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.Logger.Sync()
}
