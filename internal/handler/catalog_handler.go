package handler

import (
	"errors"

	"go-shop-pos/internal/model"
	"go-shop-pos/internal/service"
	"go-shop-pos/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
	images  storage.ImageStore
}

func NewCatalogHandler(s service.CatalogService, images storage.ImageStore) *CatalogHandler {
	return &CatalogHandler{service: s, images: images}
}

// catalogError maps service errors to the JSON error envelope.
func catalogError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(400).JSON(fiber.Map{"error": vErr.Error(), "fields": vErr.Fields})
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrSKUAlreadyExists),
		errors.Is(err, service.ErrCategoryExists):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Query("q"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(product)
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return catalogError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(id, &product)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateCategory(&category); err != nil {
		return catalogError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

// UploadImage stores a product image and returns its public URL.
func (h *CatalogHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing image file"})
	}

	url, err := h.images.Save(c, file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store image"})
	}
	return c.Status(201).JSON(fiber.Map{"image_url": url})
}
