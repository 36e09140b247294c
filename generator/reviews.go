package generator

import "github.com/RoaringBitmap/roaring"

// Reviews makes up to attempts draws of a (customer, product) pair. A pair
// already reviewed in this run is skipped without retry, so the result may
// hold fewer than attempts reviews. Ids are small dense positive ints, so a
// pair packs into a single 32-bit bitmap key.
func (s *Synthesizer) Reviews(customers []Customer, products []Product, attempts int) []Review {
	var reviews []Review
	reviewId := 1

	seenPairs := roaring.New()
	for i := 0; i < attempts; i++ {
		customer := customers[s.Rand.Intn(len(customers))]
		product := products[s.Rand.Intn(len(products))]

		key := uint32(customer.CustomerId)<<16 | uint32(product.ProductId)
		if seenPairs.Contains(key) {
			continue
		}
		seenPairs.Add(key)

		reviews = append(reviews, Review{
			ReviewId:   reviewId,
			CustomerId: customer.CustomerId,
			ProductId:  product.ProductId,
			Rating:     s.Rand.Intn(5) + 1,
			Comment:    comments[s.Rand.Intn(len(comments))],
		})
		reviewId++
	}

	return reviews
}
