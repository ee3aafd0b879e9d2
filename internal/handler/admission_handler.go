package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// AdmissionHandler exposes admitted-student endpoints.
type AdmissionHandler struct {
	service service.AdmissionService
	logger  zerolog.Logger
}

// NewAdmissionHandler constructs an admission handler.
func NewAdmissionHandler(service service.AdmissionService, logger zerolog.Logger) *AdmissionHandler {
	return &AdmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "admission_handler").Logger(),
	}
}

// Register wires the admission routes.
func (h *AdmissionHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *AdmissionHandler) create(c *fiber.Ctx) error {
	var payload dto.AdmissionCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to admit student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to admit student")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "student admitted", response)
}

func (h *AdmissionHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list students")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list students")
	}
	return utils.SendSuccess(c, "students retrieved", students)
}

func (h *AdmissionHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to get student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get student")
	}
	return utils.SendSuccess(c, "student retrieved", student)
}
