package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// EnquiryRepository provides access to prospective-student records.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
	List(ctx context.Context) ([]models.Enquiry, error)
	GetByID(ctx context.Context, id uint) (models.Enquiry, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository constructs an enquiry repository.
func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *models.Enquiry) error {
	return r.db.WithContext(ctx).Create(enquiry).Error
}

func (r *enquiryRepository) List(ctx context.Context) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *enquiryRepository) GetByID(ctx context.Context, id uint) (models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := r.db.WithContext(ctx).First(&enquiry, id).Error; err != nil {
		return models.Enquiry{}, err
	}
	return enquiry, nil
}

func (r *enquiryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Enquiry{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
