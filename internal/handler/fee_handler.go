package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/dto"
	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// FeeHandler exposes the payment ledger and the derived fee views.
type FeeHandler struct {
	service service.FeeService
	logger  zerolog.Logger
}

// NewFeeHandler constructs a fee handler.
func NewFeeHandler(service service.FeeService, logger zerolog.Logger) *FeeHandler {
	return &FeeHandler{
		service: service,
		logger:  logger.With().Str("component", "fee_handler").Logger(),
	}
}

// Register wires the fee routes. writeLimiter, when non-nil, guards the
// payment write endpoint only; derived views stay unthrottled.
func (h *FeeHandler) Register(router fiber.Router, writeLimiter fiber.Handler) {
	if writeLimiter != nil {
		router.Post("/payments", writeLimiter, h.recordPayment)
	} else {
		router.Post("/payments", h.recordPayment)
	}
	router.Get("/payments", h.listPayments)
	router.Get("/summary", h.portfolioSummary)
	router.Get("/students/:id", h.studentDetails)
	router.Get("/students/:id/balance", h.balance)
	router.Get("/students/:id/payments", h.paymentHistory)
}

func (h *FeeHandler) recordPayment(c *fiber.Ctx) error {
	var payload dto.PaymentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.RecordPayment(withRequestContext(c), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNonPositiveAmount), errors.Is(err, service.ErrNegativeAdjustment), isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to record payment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to record payment")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "payment recorded", fiber.Map{"id": id})
}

func (h *FeeHandler) listPayments(c *fiber.Ctx) error {
	payments, err := h.service.ListPayments(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list payments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list payments")
	}
	return utils.SendSuccess(c, "payments retrieved", payments)
}

func (h *FeeHandler) portfolioSummary(c *fiber.Ctx) error {
	summary, err := h.service.PortfolioSummary(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive fee summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive fee summary")
	}
	return utils.SendSuccess(c, "fee summary retrieved", summary)
}

func (h *FeeHandler) studentDetails(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	details, err := h.service.StudentFeeDetails(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive student fee details")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive student fee details")
	}
	return utils.SendSuccess(c, "student fee details retrieved", details)
}

func (h *FeeHandler) balance(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	balance, err := h.service.Balance(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to derive balance")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to derive balance")
	}
	return utils.SendSuccess(c, "balance retrieved", balance)
}

func (h *FeeHandler) paymentHistory(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	history, err := h.service.PaymentHistory(withRequestContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list payment history")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list payment history")
	}
	return utils.SendSuccess(c, "payment history retrieved", history)
}
