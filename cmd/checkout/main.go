// Command checkout drives the cart flow against a running server: log in,
// pick a customer, add line items, submit one sale per line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/rl1809/pos-backend/internal/client"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	email := flag.String("email", "admin@example.com", "login email")
	password := flag.String("password", "password", "login password")
	customerID := flag.String("customer", "", "customer id (defaults to the first customer)")
	items := flag.String("items", "", "comma-separated product:quantity pairs, e.g. 1:3,2:1")
	flag.Parse()

	ctx := context.Background()
	c := client.New(*addr)

	if err := c.Login(ctx, *email, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	cart := client.Cart{CustomerID: *customerID}
	if cart.CustomerID == "" {
		customers, err := c.Customers(ctx)
		if err != nil {
			log.Fatalf("list customers: %v", err)
		}
		if len(customers) == 0 {
			log.Fatal("no customers available; run cmd/seed first")
		}
		cart.CustomerID = customers[0].ID
		log.Printf("using customer %s (%s)", customers[0].Name, cart.CustomerID)
	}

	if *items == "" {
		log.Fatal("no line items; pass -items, e.g. -items 1:3,2:1")
	}
	for _, pair := range strings.Split(*items, ",") {
		productID, quantity, err := parseItem(pair)
		if err != nil {
			log.Fatalf("bad line item %q: %v", pair, err)
		}
		cart.Add(productID, quantity)
	}

	result := c.Checkout(ctx, cart)
	for _, sale := range result.Sales {
		fmt.Printf("sale %d: product %d x%d = %s\n", sale.ID, sale.ProductID, sale.Quantity, sale.TotalPrice)
	}
	if result.Err != nil {
		log.Fatalf("line for product %d failed: %v (%d earlier lines stay committed)",
			result.Failed.ProductID, result.Err, len(result.Sales))
	}
	fmt.Printf("checkout complete: %d sales created\n", len(result.Sales))
}

func parseItem(pair string) (int64, int, error) {
	parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want product:quantity")
	}
	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	quantity, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return productID, quantity, nil
}
