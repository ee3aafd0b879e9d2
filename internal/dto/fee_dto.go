package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vidyadeep/institute-api/internal/models"
)

// PaymentCreateRequest is the record-payment payload. Amount must be a
// positive decimal; the discount and late fee default to zero.
type PaymentCreateRequest struct {
	StudentID     uint                  `json:"student_id" validate:"required"`
	Amount        decimal.Decimal       `json:"amount"`
	Discount      decimal.Decimal       `json:"discount"`
	LateFee       decimal.Decimal       `json:"late_fee"`
	PaymentDate   string                `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string                `json:"payment_method" validate:"required,oneof=CASH CARD UPI BANK_TRANSFER CHEQUE"`
	TransactionID string                `json:"transaction_id"`
	ChequeNumber  string                `json:"cheque_number"`
	BankName      string                `json:"bank_name"`
	Denominations []models.Denomination `json:"denominations"`
	Notes         string                `json:"notes"`
	HandledBy     string                `json:"handled_by"`
}

// BalanceView is the derived money position for one student. Balance may
// be negative when the student has overpaid.
type BalanceView struct {
	CourseFee     decimal.Decimal `json:"course_fee"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Balance       decimal.Decimal `json:"balance"`
}

// PaymentResponse is one payment event as surfaced over the API.
type PaymentResponse struct {
	ID            uint                  `json:"id"`
	StudentID     uint                  `json:"student_id"`
	Amount        decimal.Decimal       `json:"amount"`
	Discount      decimal.Decimal       `json:"discount"`
	LateFee       decimal.Decimal       `json:"late_fee"`
	PaymentDate   string                `json:"payment_date"`
	PaymentMethod string                `json:"payment_method"`
	TransactionID string                `json:"transaction_id"`
	ChequeNumber  string                `json:"cheque_number,omitempty"`
	BankName      string                `json:"bank_name,omitempty"`
	Denominations []models.Denomination `json:"denominations,omitempty"`
	Notes         string                `json:"notes"`
	HandledBy     string                `json:"handled_by"`
	CreatedAt     string                `json:"created_at"`
}

// PaymentWithStudent augments a payment event with owner details for the
// all-payments listing.
type PaymentWithStudent struct {
	PaymentResponse
	StudentName  string `json:"student_name"`
	MobileNumber string `json:"mobile_number"`
	CourseName   string `json:"course_name"`
}

// StudentFeeSummary is one row of the portfolio view.
type StudentFeeSummary struct {
	StudentID     uint            `json:"student_id"`
	StudentName   string          `json:"student_name"`
	MobileNumber  string          `json:"mobile_number"`
	CourseName    string          `json:"course_name"`
	AdmissionDate string          `json:"admission_date"`
	CourseFee     decimal.Decimal `json:"course_fee"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	IsOverdue     bool            `json:"is_overdue"`
	MonthsOverdue int             `json:"months_overdue"`
}

// StudentFeeDetails combines the balance view with the payment history for
// the per-student fee page.
type StudentFeeDetails struct {
	StudentID     uint              `json:"student_id"`
	StudentName   string            `json:"student_name"`
	MobileNumber  string            `json:"mobile_number"`
	CourseName    string            `json:"course_name"`
	AdmissionDate string            `json:"admission_date"`
	Balance       BalanceView       `json:"balance"`
	Status        string            `json:"status"`
	Payments      []PaymentResponse `json:"payments"`
}
