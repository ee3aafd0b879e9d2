package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
)

// AdmissionService manages admitted students. Admitting a student fixes
// the reconciliation epoch from which fee status months are counted.
type AdmissionService interface {
	Create(ctx context.Context, req dto.AdmissionCreateRequest) (dto.AdmissionResponse, error)
	List(ctx context.Context) ([]dto.AdmissionResponse, error)
	Get(ctx context.Context, id uint) (dto.AdmissionResponse, error)
}

type admissionService struct {
	students  repository.StudentRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewAdmissionService constructs the admission intake service.
func NewAdmissionService(students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) AdmissionService {
	return &admissionService{
		students:  students,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "admission_service").Logger(),
	}
}

func (s *admissionService) Create(ctx context.Context, req dto.AdmissionCreateRequest) (dto.AdmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AdmissionResponse{}, err
	}

	student := models.Student{
		PersonDetails:   mapPersonDetails(s.sanitizer, req.PersonDetailsRequest),
		CourseName:      req.CourseName,
		Timing:          req.Timing,
		CertificateName: req.CertificateName,
		ReferredBy:      s.sanitizer.Sanitize(req.ReferredBy),
	}

	if err := s.students.Create(ctx, &student); err != nil {
		return dto.AdmissionResponse{}, err
	}

	s.logger.Info().
		Uint("student_id", student.ID).
		Str("course", student.CourseName).
		Msg("student admitted")

	return newAdmissionResponse(student), nil
}

func (s *admissionService) List(ctx context.Context) ([]dto.AdmissionResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdmissionResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, newAdmissionResponse(student))
	}
	return responses, nil
}

func (s *admissionService) Get(ctx context.Context, id uint) (dto.AdmissionResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AdmissionResponse{}, ErrStudentNotFound
	}
	if err != nil {
		return dto.AdmissionResponse{}, err
	}
	return newAdmissionResponse(student), nil
}

func newAdmissionResponse(student models.Student) dto.AdmissionResponse {
	return dto.AdmissionResponse{
		ID:              student.ID,
		StudentName:     student.FullName(),
		MobileNumber:    student.MobileNumber,
		CourseName:      student.CourseName,
		Timing:          student.Timing,
		CertificateName: student.CertificateName,
		ReferredBy:      student.ReferredBy,
		AdmissionDate:   student.CreatedAt.UTC().Format(time.RFC3339),
	}
}
