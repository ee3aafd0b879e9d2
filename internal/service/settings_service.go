package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
)

// SettingsService manages the singleton institute settings row.
type SettingsService interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.SettingsUpdateRequest) (dto.SettingsResponse, error)
}

type settingsService struct {
	settings  repository.SettingsRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewSettingsService constructs the settings service.
func NewSettingsService(settings repository.SettingsRepository, validate *validator.Validate, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settings:  settings,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "settings_service").Logger(),
	}
}

func (s *settingsService) Get(ctx context.Context) (dto.SettingsResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return dto.SettingsResponse{}, err
	}
	return newSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsUpdateRequest) (dto.SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.SettingsResponse{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return dto.SettingsResponse{}, err
	}

	settings.Name = s.sanitizer.Sanitize(req.Name)
	settings.CenterCode = req.CenterCode
	settings.Address = s.sanitizer.Sanitize(req.Address)
	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.Website = req.Website
	if req.Extra != nil {
		settings.Extra = datatypes.JSONMap(req.Extra)
	}

	if err := s.settings.Update(ctx, &settings); err != nil {
		return dto.SettingsResponse{}, err
	}

	s.logger.Info().Str("name", settings.Name).Msg("institute settings updated")

	return newSettingsResponse(settings), nil
}

func newSettingsResponse(settings models.InstituteSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		ID:         settings.ID,
		Name:       settings.Name,
		CenterCode: settings.CenterCode,
		Address:    settings.Address,
		Phone:      settings.Phone,
		Email:      settings.Email,
		Website:    settings.Website,
		Logo:       settings.Logo,
		Extra:      map[string]interface{}(settings.Extra),
		UpdatedAt:  settings.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
