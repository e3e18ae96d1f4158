package handlers

import (
	"strconv"

	"Supply-Map-Dashboard/domain"
	"Supply-Map-Dashboard/internal/api/presenters"
	"Supply-Map-Dashboard/pkg/supply"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SupplyHandler interface {
		CreateSupplyRequest(c *fiber.Ctx) error
		GetSupplyRequests(c *fiber.Ctx) error
	}

	supplyHandler struct {
		supplyService supply.SupplyService
		validator     *validator.Validate
	}
)

func NewSupplyHandler(supplyService supply.SupplyService, validator *validator.Validate) SupplyHandler {
	return &supplyHandler{
		supplyService: supplyService,
		validator:     validator,
	}
}

// CreateSupplyRequest keeps the wire shape the dashboard polls for:
// a bare {"success": bool} body.
func (h *supplyHandler) CreateSupplyRequest(c *fiber.Ctx) error {
	req := new(domain.CreateSupplyRequestRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": domain.MessageFailedBodyRequest,
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": domain.MessageFailedCreateSupplyRequest,
		})
	}

	if _, err := h.supplyService.CreateSupplyRequest(c.Context(), *req); err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrEmptyItemType {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": domain.MessageFailedCreateSupplyRequest,
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *supplyHandler) GetSupplyRequests(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	requests, count, err := h.supplyService.GetSupplyRequests(c.Context(), status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSupplyRequests, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"requests": requests,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSupplyRequests)
}
