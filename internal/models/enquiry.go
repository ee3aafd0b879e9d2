package models

import (
	"strings"
	"time"
)

// PersonDetails holds the identity and contact fields shared between
// enquiries and admissions.
type PersonDetails struct {
	FirstName                string `gorm:"size:128;not null" json:"first_name"`
	MiddleName               string `gorm:"size:128" json:"middle_name"`
	LastName                 string `gorm:"size:128;not null" json:"last_name"`
	DateOfBirth              string `gorm:"size:16;not null" json:"date_of_birth"`
	Gender                   string `gorm:"size:16;not null" json:"gender"`
	MaritalStatus            string `gorm:"size:32;not null" json:"marital_status"`
	MotherTongue             string `gorm:"size:64;not null" json:"mother_tongue"`
	AadharNumber             string `gorm:"size:16;not null" json:"aadhar_number"`
	CorrespondenceAddress    string `gorm:"type:text;not null" json:"correspondence_address"`
	City                     string `gorm:"size:128;not null" json:"city"`
	State                    string `gorm:"size:128;not null" json:"state"`
	District                 string `gorm:"size:128;not null" json:"district"`
	MobileNumber             string `gorm:"size:16;not null" json:"mobile_number"`
	AlternateMobileNumber    string `gorm:"size:16" json:"alternate_mobile_number"`
	Category                 string `gorm:"size:64;not null" json:"category"`
	EducationalQualification string `gorm:"size:255;not null" json:"educational_qualification"`
}

// FullName joins the name parts, skipping an absent middle name.
func (p PersonDetails) FullName() string {
	parts := []string{p.FirstName, p.MiddleName, p.LastName}
	nonEmpty := parts[:0]
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// Enquiry is the identity anchor for a prospective student. It owns zero
// or more follow-up events; its creation time orders the tracker view.
type Enquiry struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	PersonDetails `gorm:"embedded"`
	CourseName    string     `gorm:"size:255;not null" json:"course_name"`
	Timing        string     `gorm:"size:64;not null" json:"timing"`
	HandledBy     string     `gorm:"size:255;not null" json:"handled_by"`
	CreatedAt     time.Time  `json:"created_at"`
	Followups     []Followup `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
