package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64           `json:"id"`
	Code      string          `json:"product_code"`
	Name      string          `json:"product_name"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Code  *string
	Name  *string
	Stock *int
	Price *decimal.Decimal
}

func (u ProductUpdate) Empty() bool {
	return u.Code == nil && u.Name == nil && u.Stock == nil && u.Price == nil
}
