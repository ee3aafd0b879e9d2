package dto

// AttendanceEntryRequest is one student's mark within a bulk request.
type AttendanceEntryRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=PRESENT ABSENT"`
}

// AttendanceMarkRequest marks a whole batch session at once. Entries for a
// session that is already marked replace the earlier mark.
type AttendanceMarkRequest struct {
	Date        string                   `json:"date" validate:"required,datetime=2006-01-02"`
	BatchTiming string                   `json:"batch_timing" validate:"required"`
	MarkedBy    string                   `json:"marked_by" validate:"required"`
	Entries     []AttendanceEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// AttendanceRecord is one attendance row as surfaced over the API.
type AttendanceRecord struct {
	ID          uint   `json:"id"`
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	Date        string `json:"date"`
	BatchTiming string `json:"batch_timing"`
	Status      string `json:"status"`
	MarkedBy    string `json:"marked_by"`
	CreatedAt   string `json:"created_at"`
}

// BatchRosterEntry is one admitted student in a batch, for the marking UI.
type BatchRosterEntry struct {
	StudentID   uint   `json:"student_id"`
	StudentName string `json:"student_name"`
	CourseName  string `json:"course_name"`
}
