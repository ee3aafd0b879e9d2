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

// EnquiryService manages prospective-student intake. An enquiry created
// here immediately appears in the follow-up tracker with status PENDING.
type EnquiryService interface {
	Create(ctx context.Context, req dto.EnquiryCreateRequest) (dto.EnquiryResponse, error)
	List(ctx context.Context) ([]dto.EnquiryResponse, error)
	Get(ctx context.Context, id uint) (dto.EnquiryResponse, error)
}

type enquiryService struct {
	enquiries repository.EnquiryRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewEnquiryService constructs the enquiry intake service.
func NewEnquiryService(enquiries repository.EnquiryRepository, validate *validator.Validate, logger zerolog.Logger) EnquiryService {
	return &enquiryService{
		enquiries: enquiries,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "enquiry_service").Logger(),
	}
}

func (s *enquiryService) Create(ctx context.Context, req dto.EnquiryCreateRequest) (dto.EnquiryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.EnquiryResponse{}, err
	}

	enquiry := models.Enquiry{
		PersonDetails: mapPersonDetails(s.sanitizer, req.PersonDetailsRequest),
		CourseName:    req.CourseName,
		Timing:        req.Timing,
		HandledBy:     s.sanitizer.Sanitize(req.HandledBy),
	}

	if err := s.enquiries.Create(ctx, &enquiry); err != nil {
		return dto.EnquiryResponse{}, err
	}

	s.logger.Info().
		Uint("enquiry_id", enquiry.ID).
		Str("course", enquiry.CourseName).
		Msg("enquiry recorded")

	return newEnquiryResponse(enquiry), nil
}

func (s *enquiryService) List(ctx context.Context) ([]dto.EnquiryResponse, error) {
	enquiries, err := s.enquiries.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EnquiryResponse, 0, len(enquiries))
	for _, enquiry := range enquiries {
		responses = append(responses, newEnquiryResponse(enquiry))
	}
	return responses, nil
}

func (s *enquiryService) Get(ctx context.Context, id uint) (dto.EnquiryResponse, error) {
	enquiry, err := s.enquiries.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.EnquiryResponse{}, ErrEnquiryNotFound
	}
	if err != nil {
		return dto.EnquiryResponse{}, err
	}
	return newEnquiryResponse(enquiry), nil
}

// mapPersonDetails copies intake identity fields, stripping markup from
// the free-text address.
func mapPersonDetails(sanitizer *bluemonday.Policy, req dto.PersonDetailsRequest) models.PersonDetails {
	return models.PersonDetails{
		FirstName:                req.FirstName,
		MiddleName:               req.MiddleName,
		LastName:                 req.LastName,
		DateOfBirth:              req.DateOfBirth,
		Gender:                   req.Gender,
		MaritalStatus:            req.MaritalStatus,
		MotherTongue:             req.MotherTongue,
		AadharNumber:             req.AadharNumber,
		CorrespondenceAddress:    sanitizer.Sanitize(req.CorrespondenceAddress),
		City:                     req.City,
		State:                    req.State,
		District:                 req.District,
		MobileNumber:             req.MobileNumber,
		AlternateMobileNumber:    req.AlternateMobileNumber,
		Category:                 req.Category,
		EducationalQualification: req.EducationalQualification,
	}
}

func newEnquiryResponse(enquiry models.Enquiry) dto.EnquiryResponse {
	return dto.EnquiryResponse{
		ID:           enquiry.ID,
		StudentName:  enquiry.FullName(),
		MobileNumber: enquiry.MobileNumber,
		CourseName:   enquiry.CourseName,
		Timing:       enquiry.Timing,
		HandledBy:    enquiry.HandledBy,
		CreatedAt:    enquiry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
