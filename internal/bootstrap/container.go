package bootstrap

import (
	"log"
	"os"

	"ai-lifeboard-be/internal/config"
	"ai-lifeboard-be/internal/controller"
	"ai-lifeboard-be/internal/pkg/logger"
	"ai-lifeboard-be/internal/repository/contract"
	"ai-lifeboard-be/internal/repository/gormstore"
	"ai-lifeboard-be/internal/repository/memory"
	"ai-lifeboard-be/internal/service"
	"ai-lifeboard-be/pkg/assistant/modules"
	"ai-lifeboard-be/pkg/assistant/resolve"
	"ai-lifeboard-be/pkg/assistant/router"
	"ai-lifeboard-be/pkg/events"
	"ai-lifeboard-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	FinanceController   controller.IFinanceController
	TaskController      controller.ITaskController
	NoteController      controller.INoteController
	HabitController     controller.IHabitController
	StudyController     controller.IStudyController
	InventoryController controller.IInventoryController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
}

// assistantStore is the combined persistence surface the assistant needs.
// Both the gorm and the in-memory store satisfy it.
type assistantStore interface {
	contract.DomainStore
	contract.ConversationStore
}

// NewContainer wires the full dependency graph. db may be nil, in which case
// everything runs against the in-memory store (simulation, local dev without
// postgres).
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Persistence
	var store assistantStore
	if db != nil {
		gs := gormstore.NewStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("[FATAL] Failed to migrate database: %v", err)
		}
		store = gs
		log.Printf("[INFO] Using store: POSTGRES")
	} else {
		store = memory.NewStore()
		log.Printf("[INFO] Using store: IN-MEMORY")
	}

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 4. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Intent core
	registry, err := modules.DefaultRegistry(resolve.NewSubstring())
	if err != nil {
		log.Fatalf("[FATAL] Failed to build module registry: %v", err)
	}
	dispatcher := router.NewDispatcher(registry, log.New(os.Stdout, "", log.LstdFlags))

	// 6. Services
	assistantService := service.NewAssistantService(
		llmProvider,
		registry,
		dispatcher,
		store,
		store,
		pubSub,
		sysLogger,
	)
	consumerService := service.NewConsumerService(pubSub, events.TopicAssistantOutcomes, sysLogger)

	// 7. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		FinanceController:   controller.NewFinanceController(store),
		TaskController:      controller.NewTaskController(store),
		NoteController:      controller.NewNoteController(store),
		HabitController:     controller.NewHabitController(store),
		StudyController:     controller.NewStudyController(store),
		InventoryController: controller.NewInventoryController(store),

		ConsumerService: consumerService,
	}
}
