package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course is a catalog entry mapping a course name to its current fee.
// Admissions reference courses by name, not by ID, so a course may be
// renamed or deleted while students enrolled under it remain.
type Course struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CourseName string          `gorm:"size:255;uniqueIndex;not null" json:"course_name"`
	Fees       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fees"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
