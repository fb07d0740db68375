package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mirdanish6594/Rentr/config"
	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/data"
	"github.com/mirdanish6594/Rentr/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Jobs        *service.JobService
	Contractors *service.ContractorService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices builds the service container from shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobRepo := data.NewJobRepo(deps.DB)
	applicantRepo := data.NewApplicantRepo(deps.DB)
	invoiceRepo := data.NewInvoiceRepo(deps.DB)
	contractorRepo := data.NewContractorRepo(deps.DB)

	var cacheRepo core.CacheRepository
	if deps.RedisClient != nil {
		cacheRepo = data.NewRedisCacheRepo(deps.RedisClient)
	}

	return ServiceContainer{
		Jobs: service.NewJobService(service.JobServiceOptions{
			Jobs:       jobRepo,
			Applicants: applicantRepo,
			Invoices:   invoiceRepo,
		}),
		Contractors: service.NewContractorService(service.ContractorServiceOptions{
			Contractors: contractorRepo,
			Cache:       cacheRepo,
			ProfileTTL:  deps.Config.Cache.ProfileTTL,
			Logger:      logger,
		}),
	}
}
