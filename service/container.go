package service

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"

	"github.com/jiocb86/gridflow/contracts"
)

// ServiceContainer is the DI root, grounded in the teacher's
// ServiceContainer.go: open the database, build each collaborator in
// dependency order, wire the router last.
type ServiceContainer struct {
	Database          *bbolt.DB
	ApiController     contracts.ApiController
	SheetService      contracts.SheetService
	WebhookDispatcher contracts.WebhookDispatcher
	Router            *gin.Engine
	Logger            *slog.Logger
}

// BuildServiceContainer opens webhooksDBPath (a bbolt file — it stores
// only webhook subscriptions, never cell data) and assembles every
// collaborator.
func BuildServiceContainer(webhooksDBPath string, logger *slog.Logger) (ServiceContainer, error) {
	container := ServiceContainer{Logger: logger}

	db, err := bbolt.Open(webhooksDBPath, 0600, nil)
	if err != nil {
		return container, err
	}
	container.Database = db

	canonicalizer := NewCanonicalizer()
	subscriptionStore := NewBoltWebhookSubscriptionStore(db)

	dispatcher, err := NewWebhookDispatcher(subscriptionStore, logger)
	if err != nil {
		return container, err
	}
	container.WebhookDispatcher = dispatcher

	container.SheetService = NewInMemorySheetService(canonicalizer, dispatcher)
	container.ApiController = NewApiController(container.SheetService, dispatcher)
	container.Router = SetupRouter(container.ApiController)

	return container, nil
}
