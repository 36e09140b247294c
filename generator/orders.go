package generator

import (
	"time"

	"github.com/shopspring/decimal"
)

const lookbackDays = 120

// Orders generates zero to three orders per customer, each with one to four
// distinct products. Order and order item ids are monotonic counters across
// the whole customer iteration; downstream consumers rely on id order
// matching generation order.
func (s *Synthesizer) Orders(customers []Customer, products []Product) ([]Order, []OrderItem) {
	var orders []Order
	var orderItems []OrderItem

	orderId := 1
	orderItemId := 1

	for _, customer := range customers {
		customerOrders := s.Rand.Intn(4)
		for i := 0; i < customerOrders; i++ {
			orderDate := s.orderDate()
			itemCount := s.Rand.Intn(4) + 1

			subtotal := decimal.Zero
			for _, idx := range s.Rand.Perm(len(products))[:itemCount] {
				product := products[idx]
				quantity := s.Rand.Intn(3) + 1
				lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
				subtotal = subtotal.Add(lineTotal)

				orderItems = append(orderItems, OrderItem{
					OrderItemId: orderItemId,
					OrderId:     orderId,
					ProductId:   product.ProductId,
					Quantity:    quantity,
				})
				orderItemId++
			}

			orders = append(orders, Order{
				OrderId:     orderId,
				CustomerId:  customer.CustomerId,
				OrderDate:   orderDate,
				TotalAmount: subtotal.Round(2),
			})
			orderId++
		}
	}

	return orders, orderItems
}

// orderDate picks a moment up to lookbackDays days and 23 hours before the
// reference time. Only the calendar date survives serialization.
func (s *Synthesizer) orderDate() time.Time {
	days := s.Rand.Intn(lookbackDays + 1)
	hours := s.Rand.Intn(24)
	return s.Now.Add(-time.Duration(days*24+hours) * time.Hour)
}
