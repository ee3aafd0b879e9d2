package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vidyadeep/institute-api/internal/models"
)

// AttendanceRepository provides access to the per-session attendance log.
type AttendanceRepository interface {
	Upsert(ctx context.Context, records []models.Attendance) error
	ListByDateBatch(ctx context.Context, day time.Time, batchTiming string) ([]models.Attendance, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert writes the records in one transaction. A record for a session that
// is already marked replaces the existing status and marker.
func (r *attendanceRepository) Upsert(ctx context.Context, records []models.Attendance) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"},
				{Name: "date"},
				{Name: "batch_timing"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"status", "marked_by", "updated_at"}),
		}).Create(&records).Error
	})
}

func (r *attendanceRepository) ListByDateBatch(ctx context.Context, day time.Time, batchTiming string) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("date = ? AND batch_timing = ?", day, batchTiming).
		Order("student_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
