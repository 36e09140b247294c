package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const dateFormat = "2006-01-02"

// Table is one flat output table: file base name, header and rows in final
// serialized form.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Tables flattens the dataset into the five output tables with the exact
// column order the ingester expects. Money is serialized with two decimals,
// dates as YYYY-MM-DD.
func (ds *Dataset) Tables() []Table {
	customers := Table{
		Name:   "customers",
		Header: []string{"customer_id", "name", "email", "city"},
	}
	for _, c := range ds.Customers {
		customers.Rows = append(customers.Rows, []string{
			strconv.Itoa(c.CustomerId), c.Name, c.Email, c.City,
		})
	}

	products := Table{
		Name:   "products",
		Header: []string{"product_id", "name", "category", "price"},
	}
	for _, p := range ds.Products {
		products.Rows = append(products.Rows, []string{
			strconv.Itoa(p.ProductId), p.Name, p.Category, p.Price.StringFixed(2),
		})
	}

	orders := Table{
		Name:   "orders",
		Header: []string{"order_id", "customer_id", "order_date", "total_amount"},
	}
	for _, o := range ds.Orders {
		orders.Rows = append(orders.Rows, []string{
			strconv.Itoa(o.OrderId),
			strconv.Itoa(o.CustomerId),
			o.OrderDate.Format(dateFormat),
			o.TotalAmount.StringFixed(2),
		})
	}

	orderItems := Table{
		Name:   "order_items",
		Header: []string{"order_item_id", "order_id", "product_id", "quantity"},
	}
	for _, oi := range ds.OrderItems {
		orderItems.Rows = append(orderItems.Rows, []string{
			strconv.Itoa(oi.OrderItemId),
			strconv.Itoa(oi.OrderId),
			strconv.Itoa(oi.ProductId),
			strconv.Itoa(oi.Quantity),
		})
	}

	reviews := Table{
		Name:   "reviews",
		Header: []string{"review_id", "customer_id", "product_id", "rating", "comment"},
	}
	for _, r := range ds.Reviews {
		reviews.Rows = append(reviews.Rows, []string{
			strconv.Itoa(r.ReviewId),
			strconv.Itoa(r.CustomerId),
			strconv.Itoa(r.ProductId),
			strconv.Itoa(r.Rating),
			r.Comment,
		})
	}

	return []Table{customers, products, orders, orderItems, reviews}
}

// WriteCSV writes every table as <dataPath>/<name>.csv, creating the data
// directory if needed.
func (ds *Dataset) WriteCSV(dataPath string) error {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	for _, table := range ds.Tables() {
		if err := writeTable(filepath.Join(dataPath, table.Name+".csv"), table); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(path string, table Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("could not write %s header: %w", table.Name, err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("could not write %s rows: %w", table.Name, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush %s: %w", table.Name, err)
	}
	return file.Close()
}
