package dto

// FollowupCreateRequest records one contact attempt for an enquiry.
type FollowupCreateRequest struct {
	EnquiryID        uint   `json:"enquiry_id" validate:"required"`
	FollowupDate     string `json:"followup_date" validate:"required,datetime=2006-01-02"`
	Status           string `json:"status" validate:"required,oneof=PENDING INTERESTED NOT_INTERESTED ADMITTED"`
	Notes            string `json:"notes"`
	NextFollowupDate string `json:"next_followup_date" validate:"omitempty,datetime=2006-01-02"`
	HandledBy        string `json:"handled_by" validate:"required"`
}

// FollowupUpdateRequest patches an existing follow-up. Only non-nil fields
// are applied; an entirely empty patch is a no-op.
type FollowupUpdateRequest struct {
	FollowupDate     *string `json:"followup_date" validate:"omitempty,datetime=2006-01-02"`
	Status           *string `json:"status" validate:"omitempty,oneof=PENDING INTERESTED NOT_INTERESTED ADMITTED"`
	Notes            *string `json:"notes"`
	NextFollowupDate *string `json:"next_followup_date" validate:"omitempty,datetime=2006-01-02"`
	HandledBy        *string `json:"handled_by"`
}

// FollowupResponse is one follow-up event as surfaced over the API.
type FollowupResponse struct {
	ID               uint   `json:"id"`
	EnquiryID        uint   `json:"enquiry_id"`
	FollowupDate     string `json:"followup_date"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
	NextFollowupDate string `json:"next_followup_date,omitempty"`
	HandledBy        string `json:"handled_by"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// EnquirySummary is one tracker row: an enquiry joined with its latest
// follow-up. CurrentStatus defaults to PENDING when no follow-up exists.
type EnquirySummary struct {
	EnquiryID        uint   `json:"enquiry_id"`
	StudentName      string `json:"student_name"`
	MobileNumber     string `json:"mobile_number"`
	CourseName       string `json:"course_name"`
	EnquiryDate      string `json:"enquiry_date"`
	CurrentStatus    string `json:"current_status"`
	LastFollowupDate string `json:"last_followup_date,omitempty"`
	NextFollowupDate string `json:"next_followup_date,omitempty"`
	FollowupCount    int    `json:"followup_count"`
	LatestNotes      string `json:"latest_notes,omitempty"`
}

// OverdueEntry is one enquiry whose latest follow-up scheduled a next
// contact date that has passed.
type OverdueEntry struct {
	EnquiryID        uint   `json:"enquiry_id"`
	StudentName      string `json:"student_name"`
	MobileNumber     string `json:"mobile_number"`
	CourseName       string `json:"course_name"`
	NextFollowupDate string `json:"next_followup_date"`
	DaysOverdue      int    `json:"days_overdue"`
}

// FollowupStats aggregates the follow-up log.
type FollowupStats struct {
	TotalFollowups             int64            `json:"total_followups"`
	StatusDistribution         map[string]int64 `json:"status_distribution"`
	OverdueCount               int              `json:"overdue_count"`
	AverageFollowupsPerEnquiry float64          `json:"average_followups_per_enquiry"`
}
