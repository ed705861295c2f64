package port

import (
	"context"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, id string, u domain.CustomerUpdate) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// GetProductByCode returns the product owning a business code, or a
	// NotFoundError when no product carries it.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)

	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, id int64, u domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)

	// CreateSale inserts the sale and decrements the product's stock in one
	// transaction. The product row is locked for the duration so concurrent
	// creations against the same product serialize their stock checks.
	// Returns domain.ErrInsufficientStock when stock < sale.Quantity and a
	// NotFoundError when the product does not exist. Sale.TotalPrice is
	// computed here from the product's current price.
	CreateSale(ctx context.Context, sale *domain.Sale) error

	// UpdateSale and DeleteSale do not touch product stock.
	UpdateSale(ctx context.Context, id int64, u domain.SaleUpdate) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) error
}
