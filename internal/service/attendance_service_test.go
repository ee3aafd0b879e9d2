package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
)

type attendanceRepoStub struct {
	records  []models.Attendance
	students *studentRepoStub
	nextID   uint
}

func (s *attendanceRepoStub) Upsert(ctx context.Context, records []models.Attendance) error {
	for _, record := range records {
		replaced := false
		for i := range s.records {
			if s.records[i].StudentID == record.StudentID &&
				s.records[i].Date.Equal(record.Date) &&
				s.records[i].BatchTiming == record.BatchTiming {
				s.records[i].Status = record.Status
				s.records[i].MarkedBy = record.MarkedBy
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}
		s.nextID++
		record.ID = s.nextID
		record.CreatedAt = time.Now()
		s.records = append(s.records, record)
	}
	return nil
}

func (s *attendanceRepoStub) ListByDateBatch(ctx context.Context, day time.Time, batchTiming string) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, record := range s.records {
		if !record.Date.Equal(day) || record.BatchTiming != batchTiming {
			continue
		}
		if s.students != nil {
			if student, err := s.students.GetByID(ctx, record.StudentID); err == nil {
				record.Student = student
			}
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *attendanceRepoStub) ListByStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, record := range s.records {
		if record.StudentID == studentID {
			out = append(out, record)
		}
	}
	return out, nil
}

func newAttendanceFixture(t *testing.T) (*attendanceService, *attendanceRepoStub, *studentRepoStub) {
	t.Helper()

	students := &studentRepoStub{}
	attendance := &attendanceRepoStub{students: students}
	svc := NewAttendanceService(attendance, students, testValidator(), testLogger()).(*attendanceService)
	return svc, attendance, students
}

func addBatchStudent(students *studentRepoStub, id uint, firstName, lastName, timing string) {
	students.students = append(students.students, models.Student{
		ID: id,
		PersonDetails: models.PersonDetails{
			FirstName: firstName,
			LastName:  lastName,
		},
		CourseName: "MS-CIT",
		Timing:     timing,
	})
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	svc, _, _ := newAttendanceFixture(t)

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 9999, Status: models.AttendanceStatusPresent},
		},
	})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestMarkAttendanceReplacesEarlierMark(t *testing.T) {
	svc, attendance, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")

	mark := func(status string) {
		marked, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
			Date:        "2025-03-10",
			BatchTiming: "10-12",
			MarkedBy:    "Priya",
			Entries: []dto.AttendanceEntryRequest{
				{StudentID: 1001, Status: status},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 1, marked)
	}

	mark(models.AttendanceStatusAbsent)
	mark(models.AttendanceStatusPresent)

	require.Len(t, attendance.records, 1)
	require.Equal(t, models.AttendanceStatusPresent, attendance.records[0].Status)
}

func TestMarkAttendanceDeduplicatesEntries(t *testing.T) {
	svc, attendance, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")

	marked, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 1001, Status: models.AttendanceStatusAbsent},
			{StudentID: 1001, Status: models.AttendanceStatusPresent},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, marked)
	require.Len(t, attendance.records, 1)
	require.Equal(t, models.AttendanceStatusPresent, attendance.records[0].Status)
}

func TestMarkAttendanceSanitizesMarkedBy(t *testing.T) {
	svc, attendance, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    `<script>alert(1)</script>Priya`,
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 1001, Status: models.AttendanceStatusPresent},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Priya", attendance.records[0].MarkedBy)
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	svc, _, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 1001, Status: "MAYBE"},
		},
	})
	require.Error(t, err)
}

func TestAttendanceByDateBatchSortsByName(t *testing.T) {
	svc, _, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")
	addBatchStudent(students, 1002, "Asha", "Kale", "10-12")

	_, err := svc.Mark(context.Background(), dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 1001, Status: models.AttendanceStatusPresent},
			{StudentID: 1002, Status: models.AttendanceStatusAbsent},
		},
	})
	require.NoError(t, err)

	records, err := svc.ByDateBatch(context.Background(), "2025-03-10", "10-12")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, uint(1002), records[0].StudentID)
	require.Equal(t, uint(1001), records[1].StudentID)
}

func TestAttendanceByDateBatchRejectsBadDate(t *testing.T) {
	svc, _, _ := newAttendanceFixture(t)

	_, err := svc.ByDateBatch(context.Background(), "10-03-2025", "10-12")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestAttendanceByStudentUnknown(t *testing.T) {
	svc, _, _ := newAttendanceFixture(t)

	_, err := svc.ByStudent(context.Background(), 9999)
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestAttendanceRosterFiltersByTiming(t *testing.T) {
	svc, _, students := newAttendanceFixture(t)
	addBatchStudent(students, 1001, "Ravi", "More", "10-12")
	addBatchStudent(students, 1002, "Asha", "Kale", "14-16")

	roster, err := svc.Roster(context.Background(), "10-12")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, "Ravi More", roster[0].StudentName)
	require.Equal(t, "MS-CIT", roster[0].CourseName)
}
