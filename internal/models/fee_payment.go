package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payment methods accepted by the institute.
const (
	PaymentMethodCash         = "CASH"
	PaymentMethodCard         = "CARD"
	PaymentMethodUPI          = "UPI"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodCheque       = "CHEQUE"
)

// Derived fee statuses, in priority order: PAID always wins, OVERDUE is
// only possible while a balance remains after the first month boundary.
const (
	FeeStatusPaid    = "PAID"
	FeeStatusPartial = "PARTIAL"
	FeeStatusPending = "PENDING"
	FeeStatusOverdue = "OVERDUE"
)

// Denomination records one cash note value received, kept for audit only.
type Denomination struct {
	Value   int      `json:"value"`
	Count   int      `json:"count"`
	Serials []string `json:"serials,omitempty"`
}

// FeePayment is an immutable record of money received or forgiven for one
// student. Rows are append-only: there is no update or delete path. The
// discount counts toward satisfying the balance without being "received";
// the late fee is informational metadata and never offsets the balance.
type FeePayment struct {
	ID            uint                              `gorm:"primaryKey" json:"id"`
	StudentID     uint                              `gorm:"index;not null" json:"student_id"`
	Amount        decimal.Decimal                   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Discount      decimal.Decimal                   `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	LateFee       decimal.Decimal                   `gorm:"type:decimal(10,2);not null;default:0" json:"late_fee"`
	PaymentDate   time.Time                         `gorm:"type:date;not null;index" json:"payment_date"`
	PaymentMethod string                            `gorm:"size:32;not null" json:"payment_method"`
	TransactionID string                            `gorm:"size:128" json:"transaction_id"`
	ChequeNumber  string                            `gorm:"size:64" json:"cheque_number,omitempty"`
	BankName      string                            `gorm:"size:255" json:"bank_name,omitempty"`
	Denominations datatypes.JSONSlice[Denomination] `json:"denominations,omitempty"`
	Notes         string                            `gorm:"type:text" json:"notes"`
	HandledBy     string                            `gorm:"size:255" json:"handled_by"`
	CreatedAt     time.Time                         `json:"created_at"`
	Student       Student                           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// ValidPaymentMethod reports whether method is one of the accepted tokens.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodBankTransfer, PaymentMethodCheque:
		return true
	}
	return false
}
