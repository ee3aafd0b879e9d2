package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
)

// ErrCourseNotFound indicates the referenced catalog entry does not exist.
var ErrCourseNotFound = errors.New("course not found")

// ErrDuplicateCourse indicates the catalog already holds that course name.
var ErrDuplicateCourse = errors.New("course name already exists")

// CourseService manages the course price catalog. Catalog entries supply
// the expected fee for balance derivation; deleting one never blocks,
// because fee derivation falls back to a configured default.
type CourseService interface {
	Create(ctx context.Context, req dto.CourseCreateRequest) (dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id uint) (dto.CourseResponse, error)
	Update(ctx context.Context, id uint, req dto.CourseUpdateRequest) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type courseService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService constructs the catalog service.
func NewCourseService(courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) Create(ctx context.Context, req dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.CourseResponse{}, err
	}

	if _, err := s.courses.GetByName(ctx, req.CourseName); err == nil {
		return dto.CourseResponse{}, ErrDuplicateCourse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CourseResponse{}, err
	}

	course := models.Course{CourseName: req.CourseName, Fees: req.Fees}
	if err := s.courses.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Str("course", course.CourseName).Msg("catalog entry created")

	return newCourseResponse(course), nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, newCourseResponse(course))
	}
	return responses, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.CourseResponse{}, ErrCourseNotFound
	}
	if err != nil {
		return dto.CourseResponse{}, err
	}
	return newCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, id uint, req dto.CourseUpdateRequest) (bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return false, err
	}
	return s.courses.Update(ctx, id, repository.CoursePatch{
		CourseName: req.CourseName,
		Fees:       req.Fees,
	})
}

func (s *courseService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.courses.Delete(ctx, id)
}

func newCourseResponse(course models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:         course.ID,
		CourseName: course.CourseName,
		Fees:       course.Fees,
		CreatedAt:  course.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  course.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
