package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/core/service"
)

type SaleHandler struct {
	sales *service.SaleService
}

func NewSaleHandler(sales *service.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

type createSaleRequest struct {
	CustomerID string           `json:"customer_id"`
	ProductID  *int64           `json:"product_id"`
	OrderDate  string           `json:"order_date"`
	Quantity   *int             `json:"quantity"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

type updateSaleRequest struct {
	CustomerID *string          `json:"customer_id"`
	ProductID  *int64           `json:"product_id"`
	OrderDate  *string          `json:"order_date"`
	Quantity   *int             `json:"quantity"`
	TotalPrice *decimal.Decimal `json:"total_price"`
}

func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.sales.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sales)
}

func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return writeError(c, err)
	}
	sale, err := h.sales.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req createSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	sale, err := h.sales.Create(c.Context(), service.CreateSaleInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		OrderDate:  req.OrderDate,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	sale, err := h.sales.Update(c.Context(), id, service.UpdateSaleInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		OrderDate:  req.OrderDate,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := saleID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.sales.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sale deleted"})
}

func saleID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, &domain.NotFoundError{Entity: "Sale"}
	}
	return id, nil
}
