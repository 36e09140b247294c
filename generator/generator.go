package generator

import (
	"fmt"
	"strings"
	"time"
)

// Synthesizer produces one synthetic dataset per call to Dataset. All random
// draws come from Rand in a fixed call order (customers, then orders, then
// reviews), so a seed plus a reference time fully determines the output.
type Synthesizer struct {
	Rand Rand
	// Now is the reference time order dates are offset back from.
	Now time.Time
}

func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{
		Rand: NewSeededRand(seed),
		Now:  time.Now(),
	}
}

// Customers returns count customers with ids 1..count. Names are sampled with
// replacement, so two customers can share a name and therefore an email; that
// duplication is accepted in the synthetic data.
func (s *Synthesizer) Customers(count int) []Customer {
	customers := make([]Customer, 0, count)
	for idx := 0; idx < count; idx++ {
		first := firstNames[s.Rand.Intn(len(firstNames))]
		last := lastNames[s.Rand.Intn(len(lastNames))]
		customers = append(customers, Customer{
			CustomerId: idx + 1,
			Name:       first + " " + last,
			Email:      fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last)),
			City:       cities[s.Rand.Intn(len(cities))],
		})
	}
	return customers
}

// Products expands the catalog exhaustively: every entry of every category
// becomes one product, ids assigned sequentially in declaration order. No
// randomness is involved.
func (s *Synthesizer) Products() []Product {
	var products []Product
	productId := 1
	for _, category := range catalog {
		for _, entry := range category.Entries {
			products = append(products, Product{
				ProductId: productId,
				Name:      entry.Name,
				Category:  category.Category,
				Price:     entry.Price,
			})
			productId++
		}
	}
	return products
}

// Dataset runs the full generation: customers and products feed the order and
// review synthesizers.
func (s *Synthesizer) Dataset(customerCount, reviewAttempts int) *Dataset {
	customers := s.Customers(customerCount)
	products := s.Products()
	orders, orderItems := s.Orders(customers, products)
	reviews := s.Reviews(customers, products, reviewAttempts)

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: orderItems,
		Reviews:    reviews,
	}
}
