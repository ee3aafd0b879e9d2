package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// StudentRepository provides access to admitted-student records.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]models.Student, error)
	ListByTiming(ctx context.Context, timing string) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type studentRepository struct {
	db       *gorm.DB
	idOffset uint
}

// NewStudentRepository constructs a student repository. idOffset is the
// starting value for admission numbering; the first admitted student gets
// that ID and subsequent ones continue from the current maximum.
func NewStudentRepository(db *gorm.DB, idOffset uint) StudentRepository {
	if idOffset == 0 {
		idOffset = 1
	}
	return &studentRepository{db: db, idOffset: idOffset}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID *uint
		if err := tx.Model(&models.Student{}).Select("MAX(id)").Scan(&maxID).Error; err != nil {
			return err
		}

		next := r.idOffset
		if maxID != nil && *maxID+1 > next {
			next = *maxID + 1
		}
		student.ID = next

		return tx.Create(student).Error
	})
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) ListByTiming(ctx context.Context, timing string) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Where("timing = ?", timing).Order("first_name ASC, last_name ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (r *studentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
