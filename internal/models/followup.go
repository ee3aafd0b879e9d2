package models

import "time"

// Follow-up statuses. This is a label history, not a workflow engine: any
// status may follow any other, including ADMITTED back to NOT_INTERESTED
// when a handler logs an administrative correction.
const (
	FollowupStatusPending       = "PENDING"
	FollowupStatusInterested    = "INTERESTED"
	FollowupStatusNotInterested = "NOT_INTERESTED"
	FollowupStatusAdmitted      = "ADMITTED"
)

// Followup is one recorded contact attempt for an enquiry. Unlike fee
// payments it may be patched or deleted, so every derived view recomputes
// from the surviving rows instead of trusting anything cached.
type Followup struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EnquiryID        uint       `gorm:"index;not null" json:"enquiry_id"`
	FollowupDate     time.Time  `gorm:"type:date;not null;index" json:"followup_date"`
	Status           string     `gorm:"size:32;not null" json:"status"`
	Notes            string     `gorm:"type:text" json:"notes"`
	NextFollowupDate *time.Time `gorm:"type:date;index" json:"next_followup_date"`
	HandledBy        string     `gorm:"size:255;not null" json:"handled_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Enquiry          Enquiry    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// Supersedes reports whether f defines the enquiry's current state over
// other: the later follow-up date wins, and a same-date tie goes to the
// higher ID so re-derivation stays deterministic.
func (f Followup) Supersedes(other Followup) bool {
	if !f.FollowupDate.Equal(other.FollowupDate) {
		return f.FollowupDate.After(other.FollowupDate)
	}
	return f.ID > other.ID
}

// ValidFollowupStatus reports whether status is one of the accepted tokens.
func ValidFollowupStatus(status string) bool {
	switch status {
	case FollowupStatusPending, FollowupStatusInterested, FollowupStatusNotInterested, FollowupStatusAdmitted:
		return true
	}
	return false
}
