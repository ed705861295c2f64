package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/pos-backend/internal/core/domain"
)

// Mock SaleRepository backed by an in-memory product table. CreateSale
// mirrors the MySQL adapter's contract: check stock, snapshot the price,
// decrement, insert.
type mockSaleRepo struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	sales    map[int64]*domain.Sale
	nextID   int64
}

func newMockSaleRepo(products ...*domain.Product) *mockSaleRepo {
	m := &mockSaleRepo{
		products: make(map[int64]*domain.Product),
		sales:    make(map[int64]*domain.Sale),
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockSaleRepo) ListSales(ctx context.Context) ([]domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sales := []domain.Sale{}
	for _, s := range m.sales {
		sales = append(sales, *s)
	}
	return sales, nil
}

func (m *mockSaleRepo) GetSale(ctx context.Context, id int64) (*domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Sale"}
	}
	copied := *s
	return &copied, nil
}

func (m *mockSaleRepo) CreateSale(ctx context.Context, sale *domain.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[sale.ProductID]
	if !ok {
		return &domain.NotFoundError{Entity: "Product"}
	}
	if product.Stock < sale.Quantity {
		return domain.ErrInsufficientStock
	}

	sale.TotalPrice = product.Price.Mul(decimal.NewFromInt(int64(sale.Quantity)))
	product.Stock -= sale.Quantity

	m.nextID++
	sale.ID = m.nextID
	copied := *sale
	m.sales[sale.ID] = &copied
	return nil
}

func (m *mockSaleRepo) UpdateSale(ctx context.Context, id int64, u domain.SaleUpdate) (*domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Sale"}
	}
	if u.Quantity != nil {
		s.Quantity = *u.Quantity
	}
	if u.OrderDate != nil {
		s.OrderDate = *u.OrderDate
	}
	copied := *s
	return &copied, nil
}

func (m *mockSaleRepo) DeleteSale(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sales[id]; !ok {
		return &domain.NotFoundError{Entity: "Sale"}
	}
	delete(m.sales, id)
	return nil
}

func (m *mockSaleRepo) stock(productID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[productID].Stock
}

func (m *mockSaleRepo) saleCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sales)
}

type mockPublisher struct {
	mu        sync.Mutex
	published []domain.Sale
}

func (m *mockPublisher) PublishSaleCreated(ctx context.Context, sale domain.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, sale)
	return nil
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func newLaptop() *domain.Product {
	return &domain.Product{ID: 1, Code: "P001", Name: "Laptop", Stock: 10, Price: decimal.NewFromInt(15000000)}
}

func TestCreateSale_Success(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	events := &mockPublisher{}
	svc := NewSaleService(repo, events)

	sale, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(1),
		OrderDate:  "2024-03-01 10:00:00",
		Quantity:   intPtr(3),
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	want := decimal.NewFromInt(45000000)
	if !sale.TotalPrice.Equal(want) {
		t.Errorf("expected total price %s, got %s", want, sale.TotalPrice)
	}
	if got := repo.stock(1); got != 7 {
		t.Errorf("expected stock 7, got %d", got)
	}
	if len(events.published) != 1 {
		t.Errorf("expected 1 published event, got %d", len(events.published))
	}
}

func TestCreateSale_IgnoresCallerTotalPrice(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	svc := NewSaleService(repo, &mockPublisher{})

	bogus := decimal.NewFromInt(1)
	sale, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(1),
		OrderDate:  "2024-03-01",
		Quantity:   intPtr(2),
		TotalPrice: &bogus,
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !sale.TotalPrice.Equal(decimal.NewFromInt(30000000)) {
		t.Errorf("caller total price was not overwritten: got %s", sale.TotalPrice)
	}
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	events := &mockPublisher{}
	svc := NewSaleService(repo, events)

	_, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(1),
		OrderDate:  "2024-03-01",
		Quantity:   intPtr(11),
	})

	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if err.Error() != "Stok produk tidak mencukupi." {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if got := repo.stock(1); got != 10 {
		t.Errorf("stock changed on failed sale: %d", got)
	}
	if repo.saleCount() != 0 {
		t.Errorf("sale row inserted on failed sale")
	}
	if len(events.published) != 0 {
		t.Errorf("event published on failed sale")
	}
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	repo := newMockSaleRepo()
	svc := NewSaleService(repo, &mockPublisher{})

	_, err := svc.Create(context.Background(), CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(99),
		OrderDate:  "2024-03-01",
		Quantity:   intPtr(1),
	})
	if !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got: %v", err)
	}
}

func TestCreateSale_Validation(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	svc := NewSaleService(repo, &mockPublisher{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateSaleInput
	}{
		{"missing customer", CreateSaleInput{ProductID: int64Ptr(1), OrderDate: "2024-03-01", Quantity: intPtr(1)}},
		{"missing product", CreateSaleInput{CustomerID: "c", OrderDate: "2024-03-01", Quantity: intPtr(1)}},
		{"missing order date", CreateSaleInput{CustomerID: "c", ProductID: int64Ptr(1), Quantity: intPtr(1)}},
		{"bad order date", CreateSaleInput{CustomerID: "c", ProductID: int64Ptr(1), OrderDate: "soon", Quantity: intPtr(1)}},
		{"missing quantity", CreateSaleInput{CustomerID: "c", ProductID: int64Ptr(1), OrderDate: "2024-03-01"}},
		{"zero quantity", CreateSaleInput{CustomerID: "c", ProductID: int64Ptr(1), OrderDate: "2024-03-01", Quantity: intPtr(0)}},
		{"negative quantity", CreateSaleInput{CustomerID: "c", ProductID: int64Ptr(1), OrderDate: "2024-03-01", Quantity: intPtr(-2)}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.in); !domain.IsValidation(err) {
			t.Errorf("%s: expected ValidationError, got: %v", tc.name, err)
		}
	}
	if got := repo.stock(1); got != 10 {
		t.Errorf("stock changed by rejected input: %d", got)
	}
}

func TestCreateSale_Concurrent(t *testing.T) {
	product := newLaptop()
	product.Stock = 1
	repo := newMockSaleRepo(product)
	svc := NewSaleService(repo, &mockPublisher{})

	var successCount, failCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), CreateSaleInput{
				CustomerID: "cust-1",
				ProductID:  int64Ptr(1),
				OrderDate:  "2024-03-01",
				Quantity:   intPtr(1),
			})
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 success, got %d", successCount.Load())
	}
	if failCount.Load() != 1 {
		t.Errorf("expected exactly 1 failure, got %d", failCount.Load())
	}
	if got := repo.stock(1); got != 0 {
		t.Errorf("expected stock 0, got %d", got)
	}
}

// Deleting a sale intentionally does not restore product stock.
func TestDeleteSale_KeepsStock(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	svc := NewSaleService(repo, &mockPublisher{})
	ctx := context.Background()

	sale, err := svc.Create(ctx, CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(1),
		OrderDate:  "2024-03-01",
		Quantity:   intPtr(4),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, sale.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := repo.stock(1); got != 6 {
		t.Errorf("expected stock to stay at 6 after delete, got %d", got)
	}
}

// Updating a sale's quantity intentionally does not adjust product stock.
func TestUpdateSale_KeepsStock(t *testing.T) {
	repo := newMockSaleRepo(newLaptop())
	svc := NewSaleService(repo, &mockPublisher{})
	ctx := context.Background()

	sale, err := svc.Create(ctx, CreateSaleInput{
		CustomerID: "cust-1",
		ProductID:  int64Ptr(1),
		OrderDate:  "2024-03-01",
		Quantity:   intPtr(2),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, sale.ID, UpdateSaleInput{Quantity: intPtr(5)})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", updated.Quantity)
	}
	if got := repo.stock(1); got != 8 {
		t.Errorf("expected stock to stay at 8 after update, got %d", got)
	}
}

func TestDeleteSale_NotFound(t *testing.T) {
	svc := NewSaleService(newMockSaleRepo(), &mockPublisher{})
	if err := svc.Delete(context.Background(), 42); !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got: %v", err)
	}
}

func TestParseOrderDate_Layouts(t *testing.T) {
	for _, value := range []string{"2024-03-01 10:00:00", "2024-03-01", time.Now().Format(time.RFC3339)} {
		if _, err := parseOrderDate(value); err != nil {
			t.Errorf("layout %q rejected: %v", value, err)
		}
	}
}
