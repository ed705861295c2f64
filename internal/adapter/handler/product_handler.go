package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/core/service"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	ProductCode string           `json:"product_code"`
	ProductName string           `json:"product_name"`
	Stock       *int             `json:"stock"`
	Price       *decimal.Decimal `json:"price"`
}

type updateProductRequest struct {
	ProductCode *string          `json:"product_code"`
	ProductName *string          `json:"product_name"`
	Stock       *int             `json:"stock"`
	Price       *decimal.Decimal `json:"price"`
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.products.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return writeError(c, err)
	}
	product, err := h.products.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	product, err := h.products.Create(c.Context(), service.CreateProductInput{
		Code:  req.ProductCode,
		Name:  req.ProductName,
		Stock: req.Stock,
		Price: req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	product, err := h.products.Update(c.Context(), id, service.UpdateProductInput{
		Code:  req.ProductCode,
		Name:  req.ProductName,
		Stock: req.Stock,
		Price: req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.products.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// Non-numeric ids behave like missing records.
func productID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, &domain.NotFoundError{Entity: "Product"}
	}
	return id, nil
}
