package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/rl1809/pos-backend/internal/adapter/storage"
	"github.com/rl1809/pos-backend/internal/config"
	"github.com/rl1809/pos-backend/internal/core/domain"
	"github.com/rl1809/pos-backend/internal/core/service"
)

func main() {
	schemaPath := flag.String("schema", "schema.sql", "path to the DDL file")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	if err := applySchema(ctx, db, *schemaPath); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	log.Println("schema applied")

	store := storage.NewMySQLAdapter(db)

	if err := seedAdmin(ctx, store); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	customers, err := seedCustomers(ctx, store)
	if err != nil {
		log.Fatalf("failed to seed customers: %v", err)
	}

	products, err := seedProducts(ctx, store)
	if err != nil {
		log.Fatalf("failed to seed products: %v", err)
	}

	if len(customers) > 0 && len(products) > 0 {
		sale := &domain.Sale{
			CustomerID: customers[0].ID,
			ProductID:  products[0].ID,
			OrderDate:  time.Now().UTC().Truncate(time.Second),
			Quantity:   2,
		}
		if err := store.CreateSale(ctx, sale); err != nil {
			log.Fatalf("failed to seed sale: %v", err)
		}
		log.Printf("seeded sale %d (total %s)", sale.ID, sale.TotalPrice)
	}

	log.Println("done")
}

func applySchema(ctx context.Context, db *sql.DB, path string) error {
	ddl, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(ddl), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, store *storage.MySQLAdapter) error {
	const email = "admin@example.com"

	if _, err := store.GetUserByEmail(ctx, email); err == nil {
		log.Println("admin user already present")
		return nil
	} else if !domain.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &domain.User{Name: "Admin", Email: email, PasswordHash: string(hash)}
	if err := store.CreateUser(ctx, user); err != nil {
		return err
	}
	log.Printf("seeded user %s", email)
	return nil
}

func seedCustomers(ctx context.Context, store *storage.MySQLAdapter) ([]domain.Customer, error) {
	existing, err := store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("customers already present")
		return existing, nil
	}

	svc := service.NewCustomerService(store)
	inputs := []service.CreateCustomerInput{
		{Name: "John Doe", Address: "123 Main St", Gender: "Pria", BirthDate: "1990-01-01"},
		{Name: "Jane Smith", Address: "456 Oak Ave", Gender: "Wanita", BirthDate: "1992-05-10"},
	}

	customers := []domain.Customer{}
	for _, in := range inputs {
		c, err := svc.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
		log.Printf("seeded customer %s", c.Name)
	}
	return customers, nil
}

func seedProducts(ctx context.Context, store *storage.MySQLAdapter) ([]domain.Product, error) {
	existing, err := store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		log.Println("products already present")
		return existing, nil
	}

	products := []domain.Product{
		{Code: "P001", Name: "Laptop", Stock: 10, Price: decimal.NewFromInt(15000000)},
		{Code: "P002", Name: "Smartphone", Stock: 25, Price: decimal.NewFromInt(7000000)},
	}
	for i := range products {
		if err := store.CreateProduct(ctx, &products[i]); err != nil {
			return nil, err
		}
		log.Printf("seeded product %s", products[i].Code)
	}
	return products, nil
}
