package reporter

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrMissingDatabase marks a query phase run before ingestion built the store.
var ErrMissingDatabase = errors.New("database not found")

// CustomerSummary is one row of the per-customer report. AverageRating is nil
// for customers with no reviews.
type CustomerSummary struct {
	CustomerName  string
	TotalOrders   int
	AverageRating *float64
}

// ProductRevenue is one row of the top-products report.
type ProductRevenue struct {
	Name      string
	Category  string
	UnitsSold int
	Revenue   float64
}

// ProductRating is one row of the multi-review products report.
type ProductRating struct {
	Name        string
	ReviewCount int
	AvgRating   float64
}

// Open connects read-only use of an existing store; it never creates one.
func Open(dbPath string) (*gorm.DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingDatabase, dbPath)
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	return db, nil
}

// CustomerOrderSummary reports order count and average review rating per
// customer, including customers with no orders or reviews.
func CustomerOrderSummary(db *gorm.DB) ([]CustomerSummary, error) {
	query := `
		SELECT
			c.name AS customer_name,
			COUNT(DISTINCT o.order_id) AS total_orders,
			ROUND(AVG(r.rating), 2) AS average_rating
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.customer_id
		LEFT JOIN reviews r ON r.customer_id = c.customer_id
		GROUP BY c.customer_id
		ORDER BY total_orders DESC, c.name ASC;
	`
	var rows []CustomerSummary
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("customer summary query failed: %w", err)
	}
	return rows, nil
}

// TopProductsByRevenue reports the ten highest-revenue products with units
// sold; fewer rows when fewer products have sales.
func TopProductsByRevenue(db *gorm.DB) ([]ProductRevenue, error) {
	query := `
		SELECT
			p.name,
			p.category,
			SUM(oi.quantity) AS units_sold,
			ROUND(SUM(oi.quantity * p.price), 2) AS revenue
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		GROUP BY p.product_id
		ORDER BY revenue DESC
		LIMIT 10;
	`
	var rows []ProductRevenue
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("top products query failed: %w", err)
	}
	return rows, nil
}

// AverageRatingByProduct reports products holding at least two reviews,
// best rated first, ties broken by review count.
func AverageRatingByProduct(db *gorm.DB) ([]ProductRating, error) {
	query := `
		SELECT
			p.name,
			COUNT(r.review_id) AS review_count,
			ROUND(AVG(r.rating), 2) AS avg_rating
		FROM products p
		JOIN reviews r ON r.product_id = p.product_id
		GROUP BY p.product_id
		HAVING review_count >= 2
		ORDER BY avg_rating DESC, review_count DESC;
	`
	var rows []ProductRating
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("product ratings query failed: %w", err)
	}
	return rows, nil
}
