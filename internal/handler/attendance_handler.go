package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// AttendanceHandler exposes batch rosters and the attendance log.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs an attendance handler.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register wires the attendance routes.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Post("/mark", h.mark)
	router.Get("/roster", h.roster)
	router.Get("/by-date", h.byDateBatch)
	router.Get("/students/:id", h.byStudent)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.AttendanceMarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	marked, err := h.service.Mark(withRequestContext(c), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to mark attendance")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to mark attendance")
		}
	}

	return utils.SendSuccess(c, "attendance marked", fiber.Map{"marked": marked})
}

func (h *AttendanceHandler) roster(c *fiber.Ctx) error {
	batchTiming := c.Query("batch_timing")
	if batchTiming == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "batch_timing is required")
	}

	roster, err := h.service.Roster(withRequestContext(c), batchTiming)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list batch roster")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list batch roster")
	}
	return utils.SendSuccess(c, "batch roster retrieved", roster)
}

func (h *AttendanceHandler) byDateBatch(c *fiber.Ctx) error {
	day := c.Query("date")
	batchTiming := c.Query("batch_timing")
	if day == "" || batchTiming == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "date and batch_timing are required")
	}

	records, err := h.service.ByDateBatch(withRequestContext(c), day, batchTiming)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list attendance")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list attendance")
	}
	return utils.SendSuccess(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) byStudent(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := h.service.ByStudent(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list student attendance")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list student attendance")
	}
	return utils.SendSuccess(c, "student attendance retrieved", records)
}
