package generator_test

import (
	"testing"

	"ecom-pipeline/generator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopSpenders(t *testing.T) {
	orders := []generator.Order{
		{OrderId: 1, CustomerId: 1, TotalAmount: decimal.RequireFromString("10.00")},
		{OrderId: 2, CustomerId: 2, TotalAmount: decimal.RequireFromString("50.00")},
		{OrderId: 3, CustomerId: 1, TotalAmount: decimal.RequireFromString("25.00")},
		{OrderId: 4, CustomerId: 3, TotalAmount: decimal.RequireFromString("5.00")},
	}

	top := generator.TopSpenders(orders, 2)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].CustomerId)
	assert.InDelta(t, 50.0, top[0].Total, 0.001)
	assert.Equal(t, 1, top[1].CustomerId)
	assert.InDelta(t, 35.0, top[1].Total, 0.001)
}

func TestTopSpendersWithNoOrders(t *testing.T) {
	assert.Empty(t, generator.TopSpenders(nil, 3))
}
