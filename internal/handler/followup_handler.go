package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// FollowupHandler exposes the follow-up log and the derived engagement views.
type FollowupHandler struct {
	service service.FollowupService
	logger  zerolog.Logger
}

// NewFollowupHandler constructs a follow-up handler.
func NewFollowupHandler(service service.FollowupService, logger zerolog.Logger) *FollowupHandler {
	return &FollowupHandler{
		service: service,
		logger:  logger.With().Str("component", "followup_handler").Logger(),
	}
}

// Register wires the follow-up routes.
func (h *FollowupHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Get("/tracker", h.tracker)
	router.Get("/overdue", h.overdue)
	router.Get("/stats", h.stats)
	router.Get("/enquiry/:id", h.listByEnquiry)
}

func (h *FollowupHandler) create(c *fiber.Ctx) error {
	var payload dto.FollowupCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnquiryNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to record follow-up")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to record follow-up")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "follow-up recorded", fiber.Map{"id": id})
}

func (h *FollowupHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FollowupUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update follow-up")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update follow-up")
	}
	if !updated {
		return utils.SendError(c, fiber.StatusNotFound, "follow-up not found or nothing to update")
	}

	return utils.SendSuccess(c, "follow-up updated", nil)
}

func (h *FollowupHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := h.service.Delete(withRequestContext(c), id)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete follow-up")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete follow-up")
	}
	if !deleted {
		return utils.SendError(c, fiber.StatusNotFound, "follow-up not found")
	}

	return utils.SendSuccess(c, "follow-up deleted", nil)
}

func (h *FollowupHandler) tracker(c *fiber.Ctx) error {
	rows, err := h.service.TrackerView(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive tracker view")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive tracker view")
	}
	return utils.SendSuccess(c, "tracker retrieved", rows)
}

func (h *FollowupHandler) overdue(c *fiber.Ctx) error {
	entries, err := h.service.Overdue(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive overdue list")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive overdue list")
	}
	return utils.SendSuccess(c, "overdue follow-ups retrieved", entries)
}

func (h *FollowupHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive follow-up stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive follow-up stats")
	}
	return utils.SendSuccess(c, "follow-up stats retrieved", stats)
}

func (h *FollowupHandler) listByEnquiry(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	followups, err := h.service.ListByEnquiry(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrEnquiryNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list follow-ups")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list follow-ups")
	}
	return utils.SendSuccess(c, "follow-ups retrieved", followups)
}
