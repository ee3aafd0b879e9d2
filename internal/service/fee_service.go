package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/models"
	"github.com/vidyadeep/institute-api/internal/observability"
	"github.com/vidyadeep/institute-api/internal/repository"
)

var (
	// ErrStudentNotFound indicates the referenced student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrNonPositiveAmount indicates a payment amount of zero or less.
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	// ErrNegativeAdjustment indicates a negative discount or late fee.
	ErrNegativeAdjustment = errors.New("discount and late fee must not be negative")
)

// FeeService derives balances and fee statuses from the append-only
// payment event log. Nothing derived is ever stored: every read recomputes
// from the full history, the catalog lookup and the clock.
type FeeService interface {
	RecordPayment(ctx context.Context, req dto.PaymentCreateRequest) (uint, error)
	Balance(ctx context.Context, studentID uint) (dto.BalanceView, error)
	StudentFeeDetails(ctx context.Context, studentID uint) (dto.StudentFeeDetails, error)
	PortfolioSummary(ctx context.Context) ([]dto.StudentFeeSummary, error)
	PaymentHistory(ctx context.Context, studentID uint) ([]dto.PaymentResponse, error)
	ListPayments(ctx context.Context) ([]dto.PaymentWithStudent, error)
}

type feeService struct {
	payments   repository.FeePaymentRepository
	students   repository.StudentRepository
	courses    repository.CourseRepository
	defaultFee decimal.Decimal
	validator  *validator.Validate
	logger     zerolog.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// NewFeeService constructs the fee reconciliation service. defaultFee is
// the fallback applied when a student's course has been deleted from the
// catalog after enrollment; it is a policy choice, not a computed truth.
func NewFeeService(payments repository.FeePaymentRepository, students repository.StudentRepository, courses repository.CourseRepository, defaultFee decimal.Decimal, validate *validator.Validate, logger zerolog.Logger) FeeService {
	return &feeService{
		payments:   payments,
		students:   students,
		courses:    courses,
		defaultFee: defaultFee,
		validator:  validate,
		logger:     logger.With().Str("component", "fee_service").Logger(),
		tracer:     otel.Tracer("github.com/vidyadeep/institute-api/internal/service/fee"),
		now:        time.Now,
	}
}

func (s *feeService) RecordPayment(ctx context.Context, req dto.PaymentCreateRequest) (uint, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, err
	}
	if !req.Amount.IsPositive() {
		return 0, ErrNonPositiveAmount
	}
	if req.Discount.IsNegative() || req.LateFee.IsNegative() {
		return 0, ErrNegativeAdjustment
	}

	exists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrStudentNotFound
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return 0, err
	}

	payment := models.FeePayment{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		Discount:      req.Discount,
		LateFee:       req.LateFee,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		ChequeNumber:  req.ChequeNumber,
		BankName:      req.BankName,
		Denominations: datatypes.NewJSONSlice(req.Denominations),
		Notes:         req.Notes,
		HandledBy:     req.HandledBy,
	}

	if err := s.payments.Create(ctx, &payment); err != nil {
		return 0, err
	}

	s.logger.Info().
		Uint("student_id", payment.StudentID).
		Str("amount", payment.Amount.String()).
		Str("method", payment.PaymentMethod).
		Msg("payment recorded")

	return payment.ID, nil
}

func (s *feeService) Balance(ctx context.Context, studentID uint) (dto.BalanceView, error) {
	start := time.Now()
	defer func() {
		observability.FeeDeriveLatency().WithLabelValues("balance").Observe(time.Since(start).Seconds())
	}()

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BalanceView{}, ErrStudentNotFound
		}
		return dto.BalanceView{}, err
	}

	payments, err := s.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.BalanceView{}, err
	}

	return s.balanceView(ctx, student.CourseName, payments), nil
}

func (s *feeService) StudentFeeDetails(ctx context.Context, studentID uint) (dto.StudentFeeDetails, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentFeeDetails{}, ErrStudentNotFound
		}
		return dto.StudentFeeDetails{}, err
	}

	payments, err := s.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.StudentFeeDetails{}, err
	}

	balance := s.balanceView(ctx, student.CourseName, payments)
	history := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		history = append(history, newPaymentResponse(payment))
	}

	return dto.StudentFeeDetails{
		StudentID:     student.ID,
		StudentName:   student.FullName(),
		MobileNumber:  student.MobileNumber,
		CourseName:    student.CourseName,
		AdmissionDate: formatDate(student.CreatedAt),
		Balance:       balance,
		Status:        feeStatus(balance, student.MonthsSinceAdmission(s.now())),
		Payments:      history,
	}, nil
}

func (s *feeService) PortfolioSummary(ctx context.Context) ([]dto.StudentFeeSummary, error) {
	ctx, span := s.tracer.Start(ctx, "fee.portfolio_summary")
	defer span.End()

	start := time.Now()
	defer func() {
		observability.FeeDeriveLatency().WithLabelValues("portfolio").Observe(time.Since(start).Seconds())
	}()

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	fees, err := s.catalogFees(ctx)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uint][]models.FeePayment)
	for _, payment := range payments {
		byStudent[payment.StudentID] = append(byStudent[payment.StudentID], payment)
	}

	now := s.now()
	summary := make([]dto.StudentFeeSummary, 0, len(students))
	for _, student := range students {
		courseFee, ok := fees[student.CourseName]
		if !ok {
			courseFee = s.defaultFee
		}

		totalPaid, totalDiscount := sumPayments(byStudent[student.ID])
		balance := courseFee.Sub(totalPaid).Sub(totalDiscount)
		view := dto.BalanceView{CourseFee: courseFee, TotalPaid: totalPaid, TotalDiscount: totalDiscount, Balance: balance}

		months := student.MonthsSinceAdmission(now)
		status := feeStatus(view, months)
		monthsOverdue := 0
		if status == models.FeeStatusOverdue {
			monthsOverdue = months
		}

		summary = append(summary, dto.StudentFeeSummary{
			StudentID:     student.ID,
			StudentName:   student.FullName(),
			MobileNumber:  student.MobileNumber,
			CourseName:    student.CourseName,
			AdmissionDate: formatDate(student.CreatedAt),
			CourseFee:     courseFee,
			TotalPaid:     totalPaid,
			TotalDiscount: totalDiscount,
			Balance:       balance,
			Status:        status,
			IsOverdue:     status == models.FeeStatusOverdue,
			MonthsOverdue: monthsOverdue,
		})
	}

	span.SetAttributes(attribute.Int("students", len(summary)))

	return summary, nil
}

func (s *feeService) PaymentHistory(ctx context.Context, studentID uint) ([]dto.PaymentResponse, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	payments, err := s.payments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		history = append(history, newPaymentResponse(payment))
	}
	return history, nil
}

func (s *feeService) ListPayments(ctx context.Context) ([]dto.PaymentWithStudent, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	listed := make([]dto.PaymentWithStudent, 0, len(payments))
	for _, payment := range payments {
		listed = append(listed, dto.PaymentWithStudent{
			PaymentResponse: newPaymentResponse(payment),
			StudentName:     payment.Student.FullName(),
			MobileNumber:    payment.Student.MobileNumber,
			CourseName:      payment.Student.CourseName,
		})
	}
	return listed, nil
}

// balanceView derives the money position from the event slice and the
// catalog. Late fees are recorded on payments but never enter the balance
// formula; the institute treats them as informational metadata.
func (s *feeService) balanceView(ctx context.Context, courseName string, payments []models.FeePayment) dto.BalanceView {
	courseFee := s.courseFee(ctx, courseName)
	totalPaid, totalDiscount := sumPayments(payments)
	return dto.BalanceView{
		CourseFee:     courseFee,
		TotalPaid:     totalPaid,
		TotalDiscount: totalDiscount,
		Balance:       courseFee.Sub(totalPaid).Sub(totalDiscount),
	}
}

func (s *feeService) courseFee(ctx context.Context, courseName string) decimal.Decimal {
	course, err := s.courses.GetByName(ctx, courseName)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Err(err).Str("course", courseName).Msg("catalog lookup failed, using default fee")
		}
		return s.defaultFee
	}
	return course.Fees
}

func (s *feeService) catalogFees(ctx context.Context) (map[string]decimal.Decimal, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	fees := make(map[string]decimal.Decimal, len(courses))
	for _, course := range courses {
		fees[course.CourseName] = course.Fees
	}
	return fees, nil
}

func sumPayments(payments []models.FeePayment) (totalPaid, totalDiscount decimal.Decimal) {
	for _, payment := range payments {
		totalPaid = totalPaid.Add(payment.Amount)
		totalDiscount = totalDiscount.Add(payment.Discount)
	}
	return totalPaid, totalDiscount
}

// feeStatus evaluates the ordered status decision. Paid-off always wins;
// OVERDUE requires both a remaining balance and a crossed month boundary.
func feeStatus(view dto.BalanceView, monthsElapsed int) string {
	switch {
	case view.Balance.LessThanOrEqual(decimal.Zero):
		return models.FeeStatusPaid
	case monthsElapsed > 0:
		return models.FeeStatusOverdue
	case view.TotalPaid.IsPositive() || view.TotalDiscount.IsPositive():
		return models.FeeStatusPartial
	default:
		return models.FeeStatusPending
	}
}

func newPaymentResponse(payment models.FeePayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		StudentID:     payment.StudentID,
		Amount:        payment.Amount,
		Discount:      payment.Discount,
		LateFee:       payment.LateFee,
		PaymentDate:   formatDate(payment.PaymentDate),
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		ChequeNumber:  payment.ChequeNumber,
		BankName:      payment.BankName,
		Denominations: payment.Denominations,
		Notes:         payment.Notes,
		HandledBy:     payment.HandledBy,
		CreatedAt:     payment.CreatedAt.UTC().Format(time.RFC3339),
	}
}
