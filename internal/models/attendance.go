package models

import "time"

// Attendance statuses.
const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
)

// Attendance is one student's mark for one batch session on one date.
// Re-marking the same student, date and batch replaces the earlier mark,
// so the log carries at most one row per session per student.
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;uniqueIndex:idx_attendance_session,priority:1" json:"student_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_session,priority:2" json:"date"`
	BatchTiming string    `gorm:"size:64;not null;uniqueIndex:idx_attendance_session,priority:3" json:"batch_timing"`
	Status      string    `gorm:"size:16;not null" json:"status"`
	MarkedBy    string    `gorm:"size:255;not null" json:"marked_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Student     Student   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// ValidAttendanceStatus reports whether status is one of the accepted tokens.
func ValidAttendanceStatus(status string) bool {
	switch status {
	case AttendanceStatusPresent, AttendanceStatusAbsent:
		return true
	}
	return false
}
