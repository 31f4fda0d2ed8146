package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ttravel-backend/internal/service"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.statsService.Get(c.UserContext())
	if err != nil {
		return fail(c, h.logger, err, messages{failed: "Failed to fetch stats"})
	}
	return c.JSON(stats)
}
