package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rl1809/pos-backend/internal/core/service"
)

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type createCustomerRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	Gender          string `json:"gender"`
	BirthDate       string `json:"birth_date"`
}

type updateCustomerRequest struct {
	CustomerName    *string `json:"customer_name"`
	CustomerAddress *string `json:"customer_address"`
	Gender          *string `json:"gender"`
	BirthDate       *string `json:"birth_date"`
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	customer, err := h.customers.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	customer, err := h.customers.Create(c.Context(), service.CreateCustomerInput{
		Name:      req.CustomerName,
		Address:   req.CustomerAddress,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req updateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	customer, err := h.customers.Update(c.Context(), c.Params("id"), service.UpdateCustomerInput{
		Name:      req.CustomerName,
		Address:   req.CustomerAddress,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customers.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}
