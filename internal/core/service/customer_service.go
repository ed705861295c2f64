package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/port"
)

const birthDateLayout = "2006-01-02"

type CustomerService struct {
	customers port.CustomerRepository
}

func NewCustomerService(customers port.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

type CreateCustomerInput struct {
	Name      string
	Address   string
	Gender    string
	BirthDate string
}

type UpdateCustomerInput struct {
	Name      *string
	Address   *string
	Gender    *string
	BirthDate *string
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.ListCustomers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetCustomer(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error) {
	if in.Name == "" {
		return nil, domain.Validationf("The customer name field is required.")
	}
	if in.Address == "" {
		return nil, domain.Validationf("The customer address field is required.")
	}
	gender := domain.Gender(in.Gender)
	if !gender.Valid() {
		return nil, domain.Validationf("The selected gender is invalid.")
	}
	birthDate, err := time.Parse(birthDateLayout, in.BirthDate)
	if err != nil {
		return nil, domain.Validationf("The birth date is not a valid date.")
	}

	c := &domain.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Gender:    gender,
		BirthDate: birthDate,
	}
	if err := s.customers.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in UpdateCustomerInput) (*domain.Customer, error) {
	var u domain.CustomerUpdate
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validationf("The customer name field is required.")
		}
		u.Name = in.Name
	}
	if in.Address != nil {
		if *in.Address == "" {
			return nil, domain.Validationf("The customer address field is required.")
		}
		u.Address = in.Address
	}
	if in.Gender != nil {
		gender := domain.Gender(*in.Gender)
		if !gender.Valid() {
			return nil, domain.Validationf("The selected gender is invalid.")
		}
		u.Gender = &gender
	}
	if in.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *in.BirthDate)
		if err != nil {
			return nil, domain.Validationf("The birth date is not a valid date.")
		}
		u.BirthDate = &birthDate
	}
	return s.customers.UpdateCustomer(ctx, id, u)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.DeleteCustomer(ctx, id)
}
