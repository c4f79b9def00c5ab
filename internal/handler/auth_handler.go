package handler

import (
	"errors"

	"go-shop-pos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	token, err := h.service.Login(req.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPasscode) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid passcode"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"token": token})
}
