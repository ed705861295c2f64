package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a historical record: TotalPrice is the price snapshot taken at
// creation time and is never recomputed from the product afterwards.
type Sale struct {
	ID         int64           `json:"id"`
	CustomerID string          `json:"customer_id"`
	ProductID  int64           `json:"product_id"`
	OrderDate  time.Time       `json:"order_date"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty"`
	Product  *Product  `json:"product,omitempty"`
}

// SaleUpdate carries a partial update; nil fields are left untouched.
// Changing Quantity does not adjust product stock.
type SaleUpdate struct {
	CustomerID *string
	ProductID  *int64
	OrderDate  *time.Time
	Quantity   *int
	TotalPrice *decimal.Decimal
}

func (u SaleUpdate) Empty() bool {
	return u.CustomerID == nil && u.ProductID == nil && u.OrderDate == nil &&
		u.Quantity == nil && u.TotalPrice == nil
}
