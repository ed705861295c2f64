package client

import (
	"context"
	"time"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

type LineItem struct {
	ProductID int64
	Quantity  int
}

// Cart collects line items ahead of checkout. Adding a product already in
// the cart grows that line instead of appending a duplicate.
type Cart struct {
	CustomerID string
	Items      []LineItem
}

func (c *Cart) Add(productID int64, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, LineItem{ProductID: productID, Quantity: quantity})
}

// CheckoutResult reports how far a checkout got. Sales holds the committed
// records in cart order; Failed and Err are set when a line was rejected.
type CheckoutResult struct {
	Sales  []domain.Sale
	Failed *LineItem
	Err    error
}

// Checkout submits one sale per line item, sequentially. Each line is an
// independent unit of work: a failure stops the run, lines already
// submitted stay committed, and later lines are not attempted.
func (c *Client) Checkout(ctx context.Context, cart Cart) CheckoutResult {
	orderDate := time.Now().Format("2006-01-02 15:04:05")

	var result CheckoutResult
	for i := range cart.Items {
		item := cart.Items[i]
		sale, err := c.CreateSale(ctx, SaleRequest{
			CustomerID: cart.CustomerID,
			ProductID:  item.ProductID,
			OrderDate:  orderDate,
			Quantity:   item.Quantity,
		})
		if err != nil {
			result.Failed = &cart.Items[i]
			result.Err = err
			return result
		}
		result.Sales = append(result.Sales, *sale)
	}
	return result
}
