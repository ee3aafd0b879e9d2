package models

import "time"

// Student is an admitted student. The admission timestamp is the
// reconciliation epoch for fee status derivation; IDs are assigned from a
// configurable starting offset rather than plain autoincrement.
type Student struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	PersonDetails   `gorm:"embedded"`
	CourseName      string       `gorm:"size:255;not null" json:"course_name"`
	Timing          string       `gorm:"size:64;not null" json:"timing"`
	CertificateName string       `gorm:"size:255;not null" json:"certificate_name"`
	ReferredBy      string       `gorm:"size:255" json:"referred_by"`
	CreatedAt       time.Time    `json:"created_at"`
	Payments        []FeePayment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// MonthsSinceAdmission counts whole calendar months between the admission
// date and the reference date using year/month arithmetic: crossing a month
// boundary counts even when fewer than 30 days have passed.
func (s Student) MonthsSinceAdmission(reference time.Time) int {
	return (reference.Year()-s.CreatedAt.Year())*12 + int(reference.Month()) - int(s.CreatedAt.Month())
}
