package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"construction-visit-analysis/internal/history"
	"construction-visit-analysis/internal/history/repository"
	"construction-visit-analysis/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	cache *expirable.LRU[string, history.HistoricalContext]
}

// New creates a new history UseCase. Gathered contexts are cached per
// location for ttl; writes invalidate the affected location.
func New(l log.Logger, repo repository.Repository, cacheSize int, ttl time.Duration) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, history.HistoricalContext](cacheSize, nil, ttl),
	}
}
