package handlers

import (
	"errors"
	"strconv"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/internal/api/presenters"
	"Supply-Map-Dashboard/pkg/mapdata"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultContainerWidth  = 800
	defaultContainerHeight = 600
)

type (
	MapHandler interface {
		GetMaps(c *fiber.Ctx) error
		GetMapItems(c *fiber.Ctx) error
		GetMapStats(c *fiber.Ctx) error
	}

	mapHandler struct {
		mapService mapdata.MapService
	}
)

func NewMapHandler(mapService mapdata.MapService) MapHandler {
	return &mapHandler{
		mapService: mapService,
	}
}

func (h *mapHandler) GetMaps(c *fiber.Ctx) error {
	maps, err := h.mapService.GetMaps(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMaps, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"maps": maps}, fiber.StatusOK, domain.MessageSuccessGetMaps)
}

func (h *mapHandler) GetMapItems(c *fiber.Ctx) error {
	name := c.Params("name")

	width, err := strconv.ParseFloat(c.Query("width", ""), 64)
	if err != nil || width <= 0 {
		width = defaultContainerWidth
	}

	height, err := strconv.ParseFloat(c.Query("height", ""), 64)
	if err != nil || height <= 0 {
		height = defaultContainerHeight
	}

	items, err := h.mapService.GetMapItems(c.Context(), name, width, height)
	if err != nil {
		if errors.Is(err, domain.ErrMapNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMapItems, err)
		}
		if errors.Is(err, domain.ErrBadContainerSize) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedContainerSize, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMapItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMapItems)
}

func (h *mapHandler) GetMapStats(c *fiber.Ctx) error {
	name := c.Params("name")

	stats, err := h.mapService.GetMapStats(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrMapNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMapStats, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMapStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetMapStats)
}
