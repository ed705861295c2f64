package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/port"
)

type ProductService struct {
	products port.ProductRepository
}

func NewProductService(products port.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type CreateProductInput struct {
	Code  string
	Name  string
	Stock *int
	Price *decimal.Decimal
}

type UpdateProductInput struct {
	Code  *string
	Name  *string
	Stock *int
	Price *decimal.Decimal
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if in.Code == "" {
		return nil, domain.Validationf("The product code field is required.")
	}
	if in.Name == "" {
		return nil, domain.Validationf("The product name field is required.")
	}
	if in.Stock == nil {
		return nil, domain.Validationf("The stock field is required.")
	}
	if *in.Stock < 0 {
		return nil, domain.Validationf("The stock must be at least 0.")
	}
	if in.Price == nil {
		return nil, domain.Validationf("The price field is required.")
	}
	if in.Price.IsNegative() {
		return nil, domain.Validationf("The price must be at least 0.")
	}
	if err := s.checkCodeFree(ctx, in.Code, 0); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Code:  in.Code,
		Name:  in.Name,
		Stock: *in.Stock,
		Price: *in.Price,
	}
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error) {
	var u domain.ProductUpdate
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.Validationf("The product code field is required.")
		}
		if err := s.checkCodeFree(ctx, *in.Code, id); err != nil {
			return nil, err
		}
		u.Code = in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("The product name field is required.")
		}
		u.Name = in.Name
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.Validationf("The stock must be at least 0.")
		}
		u.Stock = in.Stock
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.Validationf("The price must be at least 0.")
		}
		u.Price = in.Price
	}
	return s.products.UpdateProduct(ctx, id, u)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.DeleteProduct(ctx, id)
}

// checkCodeFree enforces product code uniqueness, ignoring the record
// being updated. The unique index backs this up against races.
func (s *ProductService) checkCodeFree(ctx context.Context, code string, selfID int64) error {
	existing, err := s.products.GetProductByCode(ctx, code)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.Validationf("The product code has already been taken.")
	}
	return nil
}
