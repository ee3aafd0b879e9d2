package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedService populates the course catalog with the standard offerings of
// a fresh deployment. Existing entries are left untouched.
type SeedService interface {
	SeedCourses(ctx context.Context, token string) (int, error)
}

type seedService struct {
	courses repository.CourseRepository
	enabled bool
	token   string
	logger  zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(courses repository.CourseRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		courses: courses,
		enabled: enabled,
		token:   token,
		logger:  logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) SeedCourses(ctx context.Context, token string) (int, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return 0, ErrSeedUnauthorized
	}

	created := 0
	for _, course := range defaultCourses() {
		_, err := s.courses.GetByName(ctx, course.CourseName)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		entry := course
		if err := s.courses.Create(ctx, &entry); err != nil {
			return created, err
		}
		created++
	}

	s.logger.Info().Int("created", created).Msg("course catalog seeded")
	return created, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.TrimSpace(token))) == 1
}

func defaultCourses() []models.Course {
	fee := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []models.Course{
		{CourseName: "MS-CIT", Fees: fee(2500)},
		{CourseName: "ADVANCE TALLY - CIT", Fees: fee(3500)},
		{CourseName: "ADVANCE TALLY - KLIC", Fees: fee(3000)},
		{CourseName: "ADVANCE EXCEL - CIT", Fees: fee(2000)},
		{CourseName: "ENGLISH TYPING - MKCL", Fees: fee(1500)},
		{CourseName: "ENGLISH TYPING - CIT", Fees: fee(1800)},
		{CourseName: "MARATHI TYPING - MKCL", Fees: fee(1500)},
		{CourseName: "DTP - CIT", Fees: fee(2200)},
		{CourseName: "IT - KLIC", Fees: fee(4000)},
		{CourseName: "KLIC DIPLOMA", Fees: fee(5000)},
	}
}
