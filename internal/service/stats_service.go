package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/repository"
)

const overviewCacheKey = "institute:stats:overview"

// StatsService serves the institute overview dashboard numbers. Unlike the
// fee and follow-up views, these are plain aggregate counts with no
// event-derivation semantics, so a short cache TTL is acceptable.
type StatsService interface {
	Overview(ctx context.Context) (dto.InstituteOverview, error)
}

type statsService struct {
	stats  repository.StatsRepository
	cache  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewStatsService builds the overview stats service. cache may be nil, in
// which case every call hits the database.
func NewStatsService(stats repository.StatsRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) StatsService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &statsService{
		stats:  stats,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *statsService) Overview(ctx context.Context) (dto.InstituteOverview, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, overviewCacheKey).Result(); err == nil && cached != "" {
			var overview dto.InstituteOverview
			if err := json.Unmarshal([]byte(cached), &overview); err == nil {
				overview.CacheHit = true
				return overview, nil
			}
		}
	}

	totalEnquiries, err := s.stats.CountEnquiries(ctx)
	if err != nil {
		return dto.InstituteOverview{}, err
	}

	totalAdmissions, err := s.stats.CountStudents(ctx)
	if err != nil {
		return dto.InstituteOverview{}, err
	}

	enquiryByCourse, err := s.stats.EnquiriesByCourse(ctx)
	if err != nil {
		return dto.InstituteOverview{}, err
	}

	admissionByCourse, err := s.stats.AdmissionsByCourse(ctx)
	if err != nil {
		return dto.InstituteOverview{}, err
	}

	conversion := 0.0
	if totalEnquiries > 0 {
		conversion = math.Round(float64(totalAdmissions)/float64(totalEnquiries)*10000) / 100
	}

	overview := dto.InstituteOverview{
		TotalEnquiries:    totalEnquiries,
		TotalAdmissions:   totalAdmissions,
		ConversionRate:    conversion,
		EnquiryByCourse:   enquiryByCourse,
		AdmissionByCourse: admissionByCourse,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(overview); err == nil {
			if err := s.cache.Set(ctx, overviewCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to write overview cache")
			}
		}
	}

	return overview, nil
}
