package generator

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerId int
	Name       string
	Email      string
	City       string
}

type Product struct {
	ProductId int
	Name      string
	Category  string
	Price     decimal.Decimal
}

type Order struct {
	OrderId     int
	CustomerId  int
	OrderDate   time.Time
	TotalAmount decimal.Decimal
}

type OrderItem struct {
	OrderItemId int
	OrderId     int
	ProductId   int
	Quantity    int
}

type Review struct {
	ReviewId   int
	CustomerId int
	ProductId  int
	Rating     int
	Comment    string
}

// Dataset holds one complete generation run.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}
