package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vidyadeep/institute-api/internal/service"
	"github.com/vidyadeep/institute-api/internal/utils"
)

// StatsHandler exposes the institute overview dashboard endpoint.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler constructs a stats handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register wires the stats routes.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("/overview", h.overview)
}

func (h *StatsHandler) overview(c *fiber.Ctx) error {
	overview, err := h.service.Overview(withRequestContext(c))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build overview")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return utils.SendSuccess(c, "overview retrieved", overview)
}
