package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/handler"
	"github.com/vidyadeep/institute-api/internal/service"
)

type mockFeeService struct {
	lastPayment dto.PaymentCreateRequest
	recordErr   error
	balance     dto.BalanceView
	balanceErr  error
	summary     []dto.StudentFeeSummary
}

func (m *mockFeeService) RecordPayment(_ context.Context, req dto.PaymentCreateRequest) (uint, error) {
	m.lastPayment = req
	if m.recordErr != nil {
		return 0, m.recordErr
	}
	return 1, nil
}

func (m *mockFeeService) Balance(_ context.Context, studentID uint) (dto.BalanceView, error) {
	return m.balance, m.balanceErr
}

func (m *mockFeeService) StudentFeeDetails(_ context.Context, studentID uint) (dto.StudentFeeDetails, error) {
	return dto.StudentFeeDetails{StudentID: studentID}, nil
}

func (m *mockFeeService) PortfolioSummary(_ context.Context) ([]dto.StudentFeeSummary, error) {
	return m.summary, nil
}

func (m *mockFeeService) PaymentHistory(_ context.Context, studentID uint) ([]dto.PaymentResponse, error) {
	return nil, nil
}

func (m *mockFeeService) ListPayments(_ context.Context) ([]dto.PaymentWithStudent, error) {
	return nil, nil
}

func newFeeApp(svc service.FeeService) *fiber.App {
	app := fiber.New()
	handler.NewFeeHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/fees"), nil)
	return app
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestFeeHandler_RecordPayment(t *testing.T) {
	svc := &mockFeeService{}
	app := newFeeApp(svc)

	resp := postJSON(t, app, "/api/v1/fees/payments", dto.PaymentCreateRequest{
		StudentID:     1001,
		Amount:        decimal.NewFromInt(1000),
		PaymentDate:   "2025-03-01",
		PaymentMethod: "CASH",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, uint(1001), svc.lastPayment.StudentID)
}

func TestFeeHandler_RecordPaymentUnknownStudent(t *testing.T) {
	svc := &mockFeeService{recordErr: service.ErrStudentNotFound}
	app := newFeeApp(svc)

	resp := postJSON(t, app, "/api/v1/fees/payments", dto.PaymentCreateRequest{
		StudentID:     42,
		Amount:        decimal.NewFromInt(1000),
		PaymentDate:   "2025-03-01",
		PaymentMethod: "CASH",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFeeHandler_RecordPaymentBadAmount(t *testing.T) {
	svc := &mockFeeService{recordErr: service.ErrNonPositiveAmount}
	app := newFeeApp(svc)

	resp := postJSON(t, app, "/api/v1/fees/payments", dto.PaymentCreateRequest{
		StudentID:     1001,
		PaymentDate:   "2025-03-01",
		PaymentMethod: "CASH",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeeHandler_Balance(t *testing.T) {
	svc := &mockFeeService{balance: dto.BalanceView{
		CourseFee:     decimal.NewFromInt(2500),
		TotalPaid:     decimal.NewFromInt(1000),
		TotalDiscount: decimal.NewFromInt(0),
		Balance:       decimal.NewFromInt(1500),
	}}
	app := newFeeApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/students/1001/balance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool            `json:"success"`
		Data    dto.BalanceView `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.True(t, body.Data.Balance.Equal(decimal.NewFromInt(1500)))
}

func TestFeeHandler_BalanceInvalidID(t *testing.T) {
	app := newFeeApp(&mockFeeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/students/abc/balance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFeeHandler_BalanceNotFound(t *testing.T) {
	app := newFeeApp(&mockFeeService{balanceErr: service.ErrStudentNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/students/9999/balance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFeeHandler_Summary(t *testing.T) {
	svc := &mockFeeService{summary: []dto.StudentFeeSummary{{StudentID: 1001, Status: "OVERDUE", IsOverdue: true}}}
	app := newFeeApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fees/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []dto.StudentFeeSummary `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Len(t, body.Data, 1)
	require.True(t, body.Data[0].IsOverdue)
}
