package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// FeePaymentRepository provides access to the append-only payment event
// log. There is deliberately no update or delete: payment rows are
// immutable once written.
type FeePaymentRepository interface {
	Create(ctx context.Context, payment *models.FeePayment) error
	ListByStudent(ctx context.Context, studentID uint) ([]models.FeePayment, error)
	ListAll(ctx context.Context) ([]models.FeePayment, error)
}

type feePaymentRepository struct {
	db *gorm.DB
}

// NewFeePaymentRepository constructs a fee payment repository.
func NewFeePaymentRepository(db *gorm.DB) FeePaymentRepository {
	return &feePaymentRepository{db: db}
}

func (r *feePaymentRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *feePaymentRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.FeePayment, error) {
	var payments []models.FeePayment
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("payment_date DESC, created_at DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *feePaymentRepository) ListAll(ctx context.Context) ([]models.FeePayment, error) {
	var payments []models.FeePayment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Order("payment_date DESC, created_at DESC, id DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
