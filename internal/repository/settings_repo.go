package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// SettingsRepository provides access to the singleton institute settings
// row, creating a default row on first read.
type SettingsRepository interface {
	Get(ctx context.Context) (models.InstituteSettings, error)
	Update(ctx context.Context, settings *models.InstituteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository constructs a settings repository.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.InstituteSettings, error) {
	var settings models.InstituteSettings
	err := r.db.WithContext(ctx).Order("id ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.InstituteSettings{Name: "Your Institute Name"}
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return models.InstituteSettings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return models.InstituteSettings{}, err
	}
	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.InstituteSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
