package cmd

import (
	"log/slog"

	httpadapter "bananex/internal/adapters/in/http"
	"bananex/internal/adapters/out/postgres"
	"bananex/internal/core/domain/services"
	"bananex/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRecipientService() services.RecipientService {
	return services.NewRecipientService(c.uowFactory)
}

func (c *CompositionRoot) CreateOrderService() services.OrderService {
	return services.NewOrderService(c.uowFactory)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateRecipientService(), c.CreateOrderService())
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateOrderService(), logger)
}
