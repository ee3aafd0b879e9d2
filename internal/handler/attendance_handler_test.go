package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/handler"
	"github.com/vidyadeep/institute-api/internal/service"
)

type mockAttendanceService struct {
	lastMark  dto.AttendanceMarkRequest
	markErr   error
	roster    []dto.BatchRosterEntry
	records   []dto.AttendanceRecord
	byDateErr error
}

func (m *mockAttendanceService) Mark(_ context.Context, req dto.AttendanceMarkRequest) (int, error) {
	m.lastMark = req
	if m.markErr != nil {
		return 0, m.markErr
	}
	return len(req.Entries), nil
}

func (m *mockAttendanceService) Roster(_ context.Context, _ string) ([]dto.BatchRosterEntry, error) {
	return m.roster, nil
}

func (m *mockAttendanceService) ByDateBatch(_ context.Context, _ string, _ string) ([]dto.AttendanceRecord, error) {
	return m.records, m.byDateErr
}

func (m *mockAttendanceService) ByStudent(_ context.Context, _ uint) ([]dto.AttendanceRecord, error) {
	return m.records, nil
}

func newAttendanceApp(svc service.AttendanceService) *fiber.App {
	app := fiber.New()
	handler.NewAttendanceHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/attendance"))
	return app
}

func TestAttendanceHandler_Mark(t *testing.T) {
	svc := &mockAttendanceService{}
	app := newAttendanceApp(svc)

	resp := postJSON(t, app, "/api/v1/attendance/mark", dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 1001, Status: "PRESENT"},
			{StudentID: 1002, Status: "ABSENT"},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "10-12", svc.lastMark.BatchTiming)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Marked int `json:"marked"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.True(t, payload.Success)
	require.Equal(t, 2, payload.Data.Marked)
}

func TestAttendanceHandler_MarkUnknownStudent(t *testing.T) {
	svc := &mockAttendanceService{markErr: service.ErrStudentNotFound}
	app := newAttendanceApp(svc)

	resp := postJSON(t, app, "/api/v1/attendance/mark", dto.AttendanceMarkRequest{
		Date:        "2025-03-10",
		BatchTiming: "10-12",
		MarkedBy:    "Priya",
		Entries: []dto.AttendanceEntryRequest{
			{StudentID: 9999, Status: "PRESENT"},
		},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAttendanceHandler_RosterRequiresBatchTiming(t *testing.T) {
	app := newAttendanceApp(&mockAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/roster", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAttendanceHandler_Roster(t *testing.T) {
	svc := &mockAttendanceService{roster: []dto.BatchRosterEntry{
		{StudentID: 1001, StudentName: "Asha Pawar", CourseName: "MS-CIT"},
	}}
	app := newAttendanceApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/roster?batch_timing=10-12", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data []dto.BatchRosterEntry `json:"data"`
	}
	decodeResponse(t, resp, &payload)
	require.Len(t, payload.Data, 1)
	require.Equal(t, "Asha Pawar", payload.Data[0].StudentName)
}

func TestAttendanceHandler_ByDateBadDate(t *testing.T) {
	svc := &mockAttendanceService{byDateErr: service.ErrInvalidDate}
	app := newAttendanceApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/by-date?date=10-03-2025&batch_timing=10-12", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAttendanceHandler_ByStudentInvalidID(t *testing.T) {
	app := newAttendanceApp(&mockAttendanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/students/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
