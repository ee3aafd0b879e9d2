package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/models"
)

// CourseCount pairs a course name with how many records reference it.
type CourseCount struct {
	CourseName string `json:"course"`
	Count      int64  `json:"count"`
}

// StatsRepository serves the aggregate counts behind the institute
// overview dashboard.
type StatsRepository interface {
	CountEnquiries(ctx context.Context) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	EnquiriesByCourse(ctx context.Context) ([]CourseCount, error)
	AdmissionsByCourse(ctx context.Context) ([]CourseCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository constructs a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountEnquiries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Enquiry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) EnquiriesByCourse(ctx context.Context) ([]CourseCount, error) {
	var counts []CourseCount
	err := r.db.WithContext(ctx).Model(&models.Enquiry{}).
		Select("course_name, COUNT(*) as count").
		Group("course_name").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *statsRepository) AdmissionsByCourse(ctx context.Context) ([]CourseCount, error) {
	var counts []CourseCount
	err := r.db.WithContext(ctx).Model(&models.Student{}).
		Select("course_name, COUNT(*) as count").
		Group("course_name").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
