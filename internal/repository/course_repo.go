package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// CoursePatch lists the catalog fields an update may touch. Nil fields are
// left unchanged.
type CoursePatch struct {
	CourseName *string
	Fees       *decimal.Decimal
}

// IsEmpty reports whether the patch would touch nothing.
func (p CoursePatch) IsEmpty() bool {
	return p.CourseName == nil && p.Fees == nil
}

// CourseRepository provides access to the course price catalog.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id uint) (models.Course, error)
	GetByName(ctx context.Context, name string) (models.Course, error)
	Update(ctx context.Context, id uint, patch CoursePatch) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository constructs a course catalog repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Order("course_name ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (r *courseRepository) GetByName(ctx context.Context, name string) (models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("course_name = ?", name).First(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (r *courseRepository) Update(ctx context.Context, id uint, patch CoursePatch) (bool, error) {
	updates := make(map[string]interface{})
	if patch.CourseName != nil {
		updates["course_name"] = *patch.CourseName
	}
	if patch.Fees != nil {
		updates["fees"] = *patch.Fees
	}
	if len(updates) == 0 {
		return false, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *courseRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
