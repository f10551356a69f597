// Package wire provides dependency injection for the application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/example/kwonka/internal/adapters/memory"
	"github.com/example/kwonka/internal/adapters/sqlite"
	"github.com/example/kwonka/internal/app"
	"github.com/example/kwonka/internal/config"
	"github.com/example/kwonka/internal/db"
	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/primary"
	"github.com/example/kwonka/internal/ports/secondary"
)

var (
	cfg               *config.Config
	sessionStore      *memory.SessionStore
	notifier          *app.Notifier
	orderService      primary.OrderService
	shopService       primary.ShopService
	escalationService primary.EscalationService
	statsService      primary.StatsService
	dialogueService   primary.DialogueService
	transport         secondary.Transport
	once              sync.Once
)

// SetTransport installs the transport before the first service lookup.
// Serve mode passes the broker transport; chat mode passes the console.
func SetTransport(t secondary.Transport) {
	transport = t
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Sessions returns the singleton session store.
func Sessions() *memory.SessionStore {
	once.Do(initServices)
	return sessionStore
}

// OrderService returns the singleton OrderService instance.
func OrderService() primary.OrderService {
	once.Do(initServices)
	return orderService
}

// ShopService returns the singleton ShopService instance.
func ShopService() primary.ShopService {
	once.Do(initServices)
	return shopService
}

// EscalationService returns the singleton EscalationService instance.
func EscalationService() primary.EscalationService {
	once.Do(initServices)
	return escalationService
}

// StatsService returns the singleton StatsService instance.
func StatsService() primary.StatsService {
	once.Do(initServices)
	return statsService
}

// DialogueService returns the singleton DialogueService instance.
func DialogueService() primary.DialogueService {
	once.Do(initServices)
	return dialogueService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}
	cfg, err = config.LoadConfig(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DBPath != "" {
		db.SetDBPath(cfg.DBPath)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	orderRepo := sqlite.NewOrderRepository(database)
	shopRepo := sqlite.NewShopRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(database)
	clock := secondary.SystemClock{}

	sessionStore = memory.NewSessionStore()
	if transport == nil {
		transport = noopTransport{}
	}
	notifier = app.NewNotifier(transport, sessionStore)
	registry := app.NewAdminRegistry()

	// Services (primary ports implementation)
	orderService = app.NewOrderService(orderRepo, shopRepo, notifier, logWriter, clock)
	shopService = app.NewShopService(shopRepo)
	escalationService = app.NewEscalationService(orderRepo, notifier, registry, clock, cfg.ScanInterval(), cfg.CleanupInterval())
	statsService = app.NewStatsService(orderRepo, shopRepo, clock)
	dialogueService = app.NewDialogueService(sessionStore, orderService, shopService, escalationService, statsService, notifier)
}

// noopTransport drops notifications. One-shot CLI commands have no actor
// channels to push to.
type noopTransport struct{}

func (noopTransport) Send(_ context.Context, _ models.Role, _ int64, _ models.Prompt) error {
	return nil
}
