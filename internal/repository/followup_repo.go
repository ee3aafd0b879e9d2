package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// FollowupPatch lists the follow-up fields an update may legally touch.
// Nil fields are left unchanged; the patch is validated up front and
// applied in a single statement so a failed update never half-applies.
type FollowupPatch struct {
	FollowupDate     *time.Time
	Status           *string
	Notes            *string
	NextFollowupDate *time.Time
	HandledBy        *string
}

// IsEmpty reports whether the patch would touch nothing.
func (p FollowupPatch) IsEmpty() bool {
	return p.FollowupDate == nil && p.Status == nil && p.Notes == nil &&
		p.NextFollowupDate == nil && p.HandledBy == nil
}

// FollowupRepository provides access to follow-up events. This is the one
// mutable event log in the system: rows may be patched or deleted, which
// is why consumers always re-derive "latest" state from a fresh fetch.
type FollowupRepository interface {
	Create(ctx context.Context, followup *models.Followup) error
	GetByID(ctx context.Context, id uint) (models.Followup, error)
	ListByEnquiry(ctx context.Context, enquiryID uint) ([]models.Followup, error)
	ListAll(ctx context.Context) ([]models.Followup, error)
	Update(ctx context.Context, id uint, patch FollowupPatch) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type followupRepository struct {
	db *gorm.DB
}

// NewFollowupRepository constructs a follow-up repository.
func NewFollowupRepository(db *gorm.DB) FollowupRepository {
	return &followupRepository{db: db}
}

func (r *followupRepository) Create(ctx context.Context, followup *models.Followup) error {
	return r.db.WithContext(ctx).Create(followup).Error
}

func (r *followupRepository) GetByID(ctx context.Context, id uint) (models.Followup, error) {
	var followup models.Followup
	if err := r.db.WithContext(ctx).First(&followup, id).Error; err != nil {
		return models.Followup{}, err
	}
	return followup, nil
}

func (r *followupRepository) ListByEnquiry(ctx context.Context, enquiryID uint) ([]models.Followup, error) {
	var followups []models.Followup
	err := r.db.WithContext(ctx).
		Where("enquiry_id = ?", enquiryID).
		Order("followup_date DESC, id DESC").
		Find(&followups).Error
	if err != nil {
		return nil, err
	}
	return followups, nil
}

func (r *followupRepository) ListAll(ctx context.Context) ([]models.Followup, error) {
	var followups []models.Followup
	err := r.db.WithContext(ctx).
		Order("followup_date DESC, id DESC").
		Find(&followups).Error
	if err != nil {
		return nil, err
	}
	return followups, nil
}

func (r *followupRepository) Update(ctx context.Context, id uint, patch FollowupPatch) (bool, error) {
	updates := make(map[string]interface{})
	if patch.FollowupDate != nil {
		updates["followup_date"] = *patch.FollowupDate
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.NextFollowupDate != nil {
		updates["next_followup_date"] = *patch.NextFollowupDate
	}
	if patch.HandledBy != nil {
		updates["handled_by"] = *patch.HandledBy
	}
	if len(updates) == 0 {
		return false, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Followup{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followupRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Followup{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
