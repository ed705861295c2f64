package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/port"
)

var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

type SaleService struct {
	sales  port.SaleRepository
	events port.EventPublisher
}

func NewSaleService(sales port.SaleRepository, events port.EventPublisher) *SaleService {
	return &SaleService{sales: sales, events: events}
}

type CreateSaleInput struct {
	CustomerID string
	ProductID  *int64
	OrderDate  string
	Quantity   *int

	// TotalPrice is accepted from callers but always overwritten with
	// quantity x current product price.
	TotalPrice *decimal.Decimal
}

type UpdateSaleInput struct {
	CustomerID *string
	ProductID  *int64
	OrderDate  *string
	Quantity   *int
	TotalPrice *decimal.Decimal
}

func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.sales.ListSales(ctx)
}

func (s *SaleService) Get(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.sales.GetSale(ctx, id)
}

func (s *SaleService) Create(ctx context.Context, in CreateSaleInput) (*domain.Sale, error) {
	if in.CustomerID == "" {
		return nil, domain.Validationf("The customer id field is required.")
	}
	if in.ProductID == nil {
		return nil, domain.Validationf("The product id field is required.")
	}
	orderDate, err := parseOrderDate(in.OrderDate)
	if err != nil {
		return nil, err
	}
	if in.Quantity == nil {
		return nil, domain.Validationf("The quantity field is required.")
	}
	if *in.Quantity <= 0 {
		return nil, domain.Validationf("The quantity must be at least 1.")
	}

	sale := &domain.Sale{
		CustomerID: in.CustomerID,
		ProductID:  *in.ProductID,
		OrderDate:  orderDate,
		Quantity:   *in.Quantity,
	}
	if err := s.sales.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return nil, domain.Validationf("Stok produk tidak mencukupi.")
		}
		return nil, err
	}

	if err := s.events.PublishSaleCreated(ctx, *sale); err != nil {
		log.Printf("publish sale %d: %v", sale.ID, err)
	}
	return sale, nil
}

// Update edits the sale record only. Changing the quantity does not restore
// or re-decrement product stock; the stock ledger keeps the decrement taken
// at creation time.
func (s *SaleService) Update(ctx context.Context, id int64, in UpdateSaleInput) (*domain.Sale, error) {
	var u domain.SaleUpdate
	if in.CustomerID != nil {
		if *in.CustomerID == "" {
			return nil, domain.Validationf("The customer id field is required.")
		}
		u.CustomerID = in.CustomerID
	}
	if in.ProductID != nil {
		u.ProductID = in.ProductID
	}
	if in.OrderDate != nil {
		orderDate, err := parseOrderDate(*in.OrderDate)
		if err != nil {
			return nil, err
		}
		u.OrderDate = &orderDate
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.Validationf("The quantity must be at least 1.")
		}
		u.Quantity = in.Quantity
	}
	if in.TotalPrice != nil {
		if in.TotalPrice.IsNegative() {
			return nil, domain.Validationf("The total price must be at least 0.")
		}
		u.TotalPrice = in.TotalPrice
	}
	return s.sales.UpdateSale(ctx, id, u)
}

// Delete removes the sale without restoring the product's stock.
func (s *SaleService) Delete(ctx context.Context, id int64) error {
	return s.sales.DeleteSale(ctx, id)
}

func parseOrderDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.Validationf("The order date field is required.")
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.Validationf("The order date is not a valid date.")
}
