package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/repository"
)

// ErrInvalidDate indicates a date string outside the YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// AttendanceService marks batch sessions and reads the attendance log.
// Marking is an upsert: one row per student per session, re-marking
// replaces the status.
type AttendanceService interface {
	Mark(ctx context.Context, req dto.AttendanceMarkRequest) (int, error)
	Roster(ctx context.Context, batchTiming string) ([]dto.BatchRosterEntry, error)
	ByDateBatch(ctx context.Context, day string, batchTiming string) ([]dto.AttendanceRecord, error)
	ByStudent(ctx context.Context, studentID uint) ([]dto.AttendanceRecord, error)
}

type attendanceService struct {
	attendance repository.AttendanceRepository
	students   repository.StudentRepository
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
	logger     zerolog.Logger
}

// NewAttendanceService constructs an attendance service.
func NewAttendanceService(attendance repository.AttendanceRepository, students repository.StudentRepository, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		attendance: attendance,
		students:   students,
		validator:  validate,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) Mark(ctx context.Context, req dto.AttendanceMarkRequest) (int, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, err
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return 0, err
	}

	// Last entry wins when a student appears twice in one request.
	byStudent := make(map[uint]dto.AttendanceEntryRequest, len(req.Entries))
	order := make([]uint, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if _, seen := byStudent[entry.StudentID]; !seen {
			order = append(order, entry.StudentID)
		}
		byStudent[entry.StudentID] = entry
	}

	markedBy := s.sanitizer.Sanitize(req.MarkedBy)
	records := make([]models.Attendance, 0, len(byStudent))
	for _, studentID := range order {
		exists, err := s.students.Exists(ctx, studentID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, ErrStudentNotFound
		}

		entry := byStudent[studentID]
		records = append(records, models.Attendance{
			StudentID:   entry.StudentID,
			Date:        day,
			BatchTiming: req.BatchTiming,
			Status:      entry.Status,
			MarkedBy:    markedBy,
		})
	}

	if err := s.attendance.Upsert(ctx, records); err != nil {
		return 0, err
	}

	s.logger.Info().
		Str("date", req.Date).
		Str("batch_timing", req.BatchTiming).
		Int("marked", len(records)).
		Msg("attendance marked")

	return len(records), nil
}

func (s *attendanceService) Roster(ctx context.Context, batchTiming string) ([]dto.BatchRosterEntry, error) {
	students, err := s.students.ListByTiming(ctx, batchTiming)
	if err != nil {
		return nil, err
	}

	roster := make([]dto.BatchRosterEntry, 0, len(students))
	for _, student := range students {
		roster = append(roster, dto.BatchRosterEntry{
			StudentID:   student.ID,
			StudentName: student.FullName(),
			CourseName:  student.CourseName,
		})
	}
	return roster, nil
}

func (s *attendanceService) ByDateBatch(ctx context.Context, day string, batchTiming string) ([]dto.AttendanceRecord, error) {
	parsed, err := parseDate(day)
	if err != nil {
		return nil, ErrInvalidDate
	}

	records, err := s.attendance.ListByDateBatch(ctx, parsed, batchTiming)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceRecord, 0, len(records))
	for _, record := range records {
		response := newAttendanceRecord(record)
		response.StudentName = record.Student.FullName()
		responses = append(responses, response)
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].StudentName < responses[j].StudentName
	})

	return responses, nil
}

func (s *attendanceService) ByStudent(ctx context.Context, studentID uint) ([]dto.AttendanceRecord, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	records, err := s.attendance.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceRecord, 0, len(records))
	for _, record := range records {
		responses = append(responses, newAttendanceRecord(record))
	}
	return responses, nil
}

func newAttendanceRecord(record models.Attendance) dto.AttendanceRecord {
	return dto.AttendanceRecord{
		ID:          record.ID,
		StudentID:   record.StudentID,
		Date:        formatDate(record.Date),
		BatchTiming: record.BatchTiming,
		Status:      record.Status,
		MarkedBy:    record.MarkedBy,
		CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
	}
}
