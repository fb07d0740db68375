package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mirdanish6594/Rentr/internal/core"
	"github.com/mirdanish6594/Rentr/internal/domain/model"
)

// ContractorServiceOptions groups dependencies for ContractorService.
type ContractorServiceOptions struct {
	Contractors core.ContractorRepository
	Cache       core.CacheRepository
	ProfileTTL  time.Duration
	Logger      *slog.Logger
}

// ContractorService serves public contractor profiles. Profiles change
// rarely, so reads go through a cache-aside layer when a cache is wired.
type ContractorService struct {
	contractors core.ContractorRepository
	cache       core.CacheRepository
	profileTTL  time.Duration
	logger      *slog.Logger
}

// NewContractorService constructs a new ContractorService. Cache may be nil,
// in which case every read hits the database.
func NewContractorService(opts ContractorServiceOptions) *ContractorService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractorService{
		contractors: opts.Contractors,
		cache:       opts.Cache,
		profileTTL:  opts.ProfileTTL,
		logger:      logger,
	}
}

func contractorCacheKey(id int64) string {
	return fmt.Sprintf("contractor:profile:%d", id)
}

// GetByID returns a contractor profile. Cache failures are logged and the
// lookup falls through to the database.
func (s *ContractorService) GetByID(ctx context.Context, id int64) (*model.Contractor, error) {
	key := contractorCacheKey(id)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("contractor cache read failed", "key", key, "error", err)
		} else if raw != nil {
			var cached model.Contractor
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("contractor cache entry corrupt, evicting", "key", key)
			if _, err := s.cache.Delete(ctx, key); err != nil {
				s.logger.Warn("contractor cache evict failed", "key", key, "error", err)
			}
		}
	}

	contractor, err := s.contractors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(contractor); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.profileTTL); err != nil {
				s.logger.Warn("contractor cache write failed", "key", key, "error", err)
			}
		}
	}

	return contractor, nil
}
