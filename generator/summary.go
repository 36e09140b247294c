package generator

import (
	"container/heap"
	"sort"
)

// Spender is a customer's total spend across all their orders.
type Spender struct {
	CustomerId int
	Total      float64
}

type spenderHeap []Spender

func (h spenderHeap) Len() int            { return len(h) }
func (h spenderHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h spenderHeap) Less(i, j int) bool  { return h[i].Total < h[j].Total } // min-heap keeps the N largest
func (h *spenderHeap) Push(x interface{}) { *h = append(*h, x.(Spender)) }
func (h *spenderHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopSpenders returns the n customers with the highest order spend, highest
// first. Customers with no orders do not appear.
func TopSpenders(orders []Order, n int) []Spender {
	if n <= 0 {
		n = 1
	}

	totals := make(map[int]float64)
	for _, order := range orders {
		total, _ := order.TotalAmount.Float64()
		totals[order.CustomerId] += total
	}

	h := make(spenderHeap, 0, n)
	heap.Init(&h)
	for customerId, total := range totals {
		entry := Spender{CustomerId: customerId, Total: total}
		if h.Len() < n {
			heap.Push(&h, entry)
			continue
		}
		if entry.Total > h[0].Total {
			h[0] = entry
			heap.Fix(&h, 0)
		}
	}

	out := make([]Spender, len(h))
	copy(out, h)
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
