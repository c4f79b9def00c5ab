package handler

import (
	"errors"

	"go-shop-pos/internal/cart"
	"go-shop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	service service.CheckoutService
}

func NewCartHandler(s service.CheckoutService) *CartHandler {
	return &CartHandler{service: s}
}

// terminalID identifies the cart slot. Single-terminal shops never send
// the header and share the default slot.
func terminalID(c *fiber.Ctx) string {
	if id := c.Get("X-Terminal-ID"); id != "" {
		return id
	}
	return "default"
}

func cartResponse(c *fiber.Ctx, crt *cart.Cart) error {
	return c.JSON(fiber.Map{
		"cart":        crt,
		"total_price": crt.TotalPrice(),
		"total_items": crt.TotalItems(),
	})
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrOutOfStock),
		errors.Is(err, service.ErrProductInactive):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	crt, err := h.service.GetCart(c.UserContext(), terminalID(c))
	if err != nil {
		return cartError(c, err)
	}
	return cartResponse(c, crt)
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == uuid.Nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product_id"})
	}

	crt, err := h.service.AddItem(c.UserContext(), terminalID(c), req.ProductID)
	if err != nil {
		return cartError(c, err)
	}
	return cartResponse(c, crt)
}

func (h *CartHandler) DecreaseItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	crt, err := h.service.DecreaseItem(c.UserContext(), terminalID(c), id)
	if err != nil {
		return cartError(c, err)
	}
	return cartResponse(c, crt)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	crt, err := h.service.RemoveItem(c.UserContext(), terminalID(c), id)
	if err != nil {
		return cartError(c, err)
	}
	return cartResponse(c, crt)
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(c.UserContext(), terminalID(c)); err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
