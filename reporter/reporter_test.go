package reporter_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ecom-pipeline/common"
	"ecom-pipeline/ingester"
	"ecom-pipeline/reporter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

// seedStore ingests a small handcrafted dataset: three products, two active
// customers and one customer with no orders and no reviews.
func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "customers.csv"),
		"customer_id,name,email,city",
		"1,Alex Smith,alex.smith@example.com,Austin",
		"2,Jordan Davis,jordan.davis@example.com,Boston",
		"3,Quinn Lopez,quinn.lopez@example.com,Seattle")
	writeFile(t, filepath.Join(dir, "products.csv"),
		"product_id,name,category,price",
		"1,Yoga Mat,Fitness,32.00",
		"2,Smartwatch,Electronics,129.99",
		"3,Modern Cooking,Books,30.00")
	writeFile(t, filepath.Join(dir, "orders.csv"),
		"order_id,customer_id,order_date,total_amount",
		"1,1,2026-08-01,193.99",
		"2,2,2026-08-10,60.00")
	writeFile(t, filepath.Join(dir, "order_items.csv"),
		"order_item_id,order_id,product_id,quantity",
		"1,1,1,2",   // yoga mat: 64.00
		"2,1,2,1",   // smartwatch: 129.99
		"3,2,3,2")   // modern cooking: 60.00
	writeFile(t, filepath.Join(dir, "reviews.csv"),
		"review_id,customer_id,product_id,rating,comment",
		"1,1,1,5,Loved it! Highly recommend.",
		"2,2,1,4,Works as expected. Would buy again.",
		"3,1,2,2,Not satisfied with the durability.")

	dbPath := filepath.Join(dir, "ecom.db")
	require.NoError(t, ingester.Run(&common.Config{DataPath: dir, DBPath: dbPath}))
	return dbPath
}

func TestMissingDatabaseIsReported(t *testing.T) {
	_, err := reporter.Open(filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, reporter.ErrMissingDatabase))
}

func TestCustomerSummaryIncludesInactiveCustomers(t *testing.T) {
	db, err := reporter.Open(seedStore(t))
	require.NoError(t, err)

	rows, err := reporter.CustomerOrderSummary(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := make(map[string]reporter.CustomerSummary)
	for _, row := range rows {
		byName[row.CustomerName] = row
	}

	inactive := byName["Quinn Lopez"]
	assert.Equal(t, 0, inactive.TotalOrders)
	assert.Nil(t, inactive.AverageRating, "customer with no reviews should have an absent rating")

	active := byName["Alex Smith"]
	assert.Equal(t, 1, active.TotalOrders)
	require.NotNil(t, active.AverageRating)
	assert.InDelta(t, 3.5, *active.AverageRating, 0.001) // ratings 5 and 2

	// ordered by order count descending, zero-order customer last
	assert.Equal(t, "Quinn Lopez", rows[len(rows)-1].CustomerName)
}

func TestTopProductsOnThreeProductDataset(t *testing.T) {
	db, err := reporter.Open(seedStore(t))
	require.NoError(t, err)

	rows, err := reporter.TopProductsByRevenue(db)
	require.NoError(t, err)
	require.Len(t, rows, 3, "top-10 over three products returns exactly three rows")

	assert.Equal(t, "Smartwatch", rows[0].Name)
	assert.InDelta(t, 129.99, rows[0].Revenue, 0.001)
	assert.Equal(t, "Yoga Mat", rows[1].Name)
	assert.InDelta(t, 64.00, rows[1].Revenue, 0.001)
	assert.Equal(t, 2, rows[1].UnitsSold)
	assert.Equal(t, "Modern Cooking", rows[2].Name)
	assert.InDelta(t, 60.00, rows[2].Revenue, 0.001)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Revenue, rows[i].Revenue)
	}
}

func TestOnlyMultiReviewProductsAreRanked(t *testing.T) {
	db, err := reporter.Open(seedStore(t))
	require.NoError(t, err)

	rows, err := reporter.AverageRatingByProduct(db)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the yoga mat has two reviews")

	assert.Equal(t, "Yoga Mat", rows[0].Name)
	assert.Equal(t, 2, rows[0].ReviewCount)
	assert.InDelta(t, 4.5, rows[0].AvgRating, 0.001)
}
