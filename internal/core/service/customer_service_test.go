package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

type mockCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*domain.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (m *mockCustomerRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	customers := []domain.Customer{}
	for _, c := range m.customers {
		customers = append(customers, *c)
	}
	return customers, nil
}

func (m *mockCustomerRepo) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Customer"}
	}
	copied := *c
	return &copied, nil
}

func (m *mockCustomerRepo) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *c
	m.customers[c.ID] = &copied
	return nil
}

func (m *mockCustomerRepo) UpdateCustomer(ctx context.Context, id string, u domain.CustomerUpdate) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Customer"}
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.Gender != nil {
		c.Gender = *u.Gender
	}
	if u.BirthDate != nil {
		c.BirthDate = *u.BirthDate
	}
	copied := *c
	return &copied, nil
}

func (m *mockCustomerRepo) DeleteCustomer(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return &domain.NotFoundError{Entity: "Customer"}
	}
	delete(m.customers, id)
	return nil
}

func TestCreateCustomer_Success(t *testing.T) {
	svc := NewCustomerService(newMockCustomerRepo())

	c, err := svc.Create(context.Background(), CreateCustomerInput{
		Name:      "John Doe",
		Address:   "123 Main St",
		Gender:    "Pria",
		BirthDate: "1990-01-01",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if c.ID == "" {
		t.Error("expected assigned id")
	}
	if c.Gender != domain.GenderMale {
		t.Errorf("unexpected gender: %s", c.Gender)
	}
}

func TestCreateCustomer_Validation(t *testing.T) {
	svc := NewCustomerService(newMockCustomerRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateCustomerInput
	}{
		{"missing name", CreateCustomerInput{Address: "a", Gender: "Pria", BirthDate: "1990-01-01"}},
		{"missing address", CreateCustomerInput{Name: "n", Gender: "Pria", BirthDate: "1990-01-01"}},
		{"bad gender", CreateCustomerInput{Name: "n", Address: "a", Gender: "Other", BirthDate: "1990-01-01"}},
		{"missing gender", CreateCustomerInput{Name: "n", Address: "a", BirthDate: "1990-01-01"}},
		{"bad birth date", CreateCustomerInput{Name: "n", Address: "a", Gender: "Wanita", BirthDate: "01/01/1990"}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.in); !domain.IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got: %v", tc.name, err)
		}
	}
}

func TestUpdateCustomer_Partial(t *testing.T) {
	repo := newMockCustomerRepo()
	svc := NewCustomerService(repo)
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerInput{
		Name:      "John Doe",
		Address:   "123 Main St",
		Gender:    "Pria",
		BirthDate: "1990-01-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, c.ID, UpdateCustomerInput{Address: strPtr("789 Elm St")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Address != "789 Elm St" {
		t.Errorf("expected updated address, got %q", updated.Address)
	}
	if updated.Name != "John Doe" || updated.Gender != domain.GenderMale {
		t.Errorf("partial update touched unrelated fields: %+v", updated)
	}
}

func TestUpdateCustomer_InvalidGender(t *testing.T) {
	svc := NewCustomerService(newMockCustomerRepo())
	_, err := svc.Update(context.Background(), "any", UpdateCustomerInput{Gender: strPtr("Unknown")})
	if !domain.IsValidation(err) {
		t.Errorf("expected ValidationError, got: %v", err)
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	svc := NewCustomerService(newMockCustomerRepo())
	if err := svc.Delete(context.Background(), "missing"); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got: %v", err)
	}
}
