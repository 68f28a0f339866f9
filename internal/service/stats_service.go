package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/repository"
)

// statsService backs the metrics endpoint with per-resource row counts
type statsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newStatsService creates a new StatsService
func newStatsService(repos *repository.Repositories, log zerolog.Logger) *statsService {
	return &statsService{
		repos: repos,
		log:   log.With().Str("service", "stats").Logger(),
	}
}

// Counts returns the row count for each managed resource
func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)

	counters := []struct {
		name  string
		count func(context.Context) (int, error)
	}{
		{"posts", s.repos.Post.Count},
		{"categories", s.repos.Category.Count},
		{"tags", s.repos.Tag.Count},
		{"team", s.repos.Team.Count},
		{"media", s.repos.Media.Count},
		{"users", s.repos.User.Count},
	}

	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		counts[c.name] = n
	}

	return counts, nil
}
