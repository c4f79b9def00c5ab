package handler

import (
	"errors"

	"go-shop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.CheckoutService
}

func NewPaymentHandler(s service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// GetQR returns the PromptPay payload and rendered QR for the cart total.
// An empty cart is a 409: the payment screen must send the user back to
// the catalog instead of showing a QR for zero.
func (h *PaymentHandler) GetQR(c *fiber.Ctx) error {
	qr, err := h.service.PaymentQR(c.UserContext(), terminalID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(409).JSON(fiber.Map{"error": err.Error(), "redirect": "/pos"})
		case errors.Is(err, service.ErrNoPromptPayID):
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate QR"})
		}
	}
	return c.JSON(qr)
}

// Confirm commits the checkout. The cart is cleared only on full success.
func (h *PaymentHandler) Confirm(c *fiber.Ctx) error {
	sale, err := h.service.Checkout(c.UserContext(), terminalID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInsufficientStock):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Checkout failed"})
		}
	}
	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}
