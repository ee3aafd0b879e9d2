package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// EnquiryHandler exposes prospective-student intake endpoints.
type EnquiryHandler struct {
	service service.EnquiryService
	logger  zerolog.Logger
}

// NewEnquiryHandler constructs an enquiry handler.
func NewEnquiryHandler(service service.EnquiryService, logger zerolog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
		logger:  logger.With().Str("component", "enquiry_handler").Logger(),
	}
}

// Register wires the enquiry routes.
func (h *EnquiryHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *EnquiryHandler) create(c *fiber.Ctx) error {
	var payload dto.EnquiryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create enquiry")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create enquiry")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "enquiry created", response)
}

func (h *EnquiryHandler) list(c *fiber.Ctx) error {
	enquiries, err := h.service.List(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list enquiries")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list enquiries")
	}
	return utils.SendSuccess(c, "enquiries retrieved", enquiries)
}

func (h *EnquiryHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	enquiry, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrEnquiryNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to get enquiry")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get enquiry")
	}
	return utils.SendSuccess(c, "enquiry retrieved", enquiry)
}
