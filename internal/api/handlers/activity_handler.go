package handlers

import (
	"strconv"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/internal/utils"
	"Supply-Map-Dashboard/pkg/activity"

	"github.com/gofiber/fiber/v2"
)

const defaultLogLimit = 50

type (
	ActivityHandler interface {
		GetLogs(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
	}
)

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandler{
		activityService: activityService,
	}
}

// GetLogs keeps the wire shape the dashboard polls for:
// {"success": bool, "logs": [{"timestamp", "action"}]}.
func (h *activityHandler) GetLogs(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(utils.GetConfig("LOG_LIMIT"))
	if err != nil || limit < 1 {
		limit = defaultLogLimit
	}

	logs, err := h.activityService.GetLatestLogs(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": domain.MessageFailedGetLogs,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"logs":    logs,
	})
}
