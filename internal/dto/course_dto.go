package dto

import "github.com/shopspring/decimal"

// CourseCreateRequest adds a catalog entry.
type CourseCreateRequest struct {
	CourseName string          `json:"course_name" validate:"required,min=1,max=255"`
	Fees       decimal.Decimal `json:"fees"`
}

// CourseUpdateRequest patches a catalog entry; nil fields are untouched.
type CourseUpdateRequest struct {
	CourseName *string          `json:"course_name" validate:"omitempty,min=1,max=255"`
	Fees       *decimal.Decimal `json:"fees"`
}

// CourseResponse is one catalog entry as surfaced over the API.
type CourseResponse struct {
	ID         uint            `json:"id"`
	CourseName string          `json:"course_name"`
	Fees       decimal.Decimal `json:"fees"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
