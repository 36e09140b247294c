package ingester

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ecom-pipeline/common"

	"github.com/op/go-logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

var log = logging.MustGetLogger("log")

var (
	// ErrMissingInput marks a required generated file that is absent when
	// ingestion starts.
	ErrMissingInput = errors.New("missing input file")
	// ErrUnhandledTable marks a table name with no cast mapping. It signals a
	// programming error, not bad input.
	ErrUnhandledTable = errors.New("unhandled table")
)

// tableNames in insert order: referenced tables before referencing ones, so
// foreign key checks pass row by row.
var tableNames = []string{"customers", "products", "orders", "order_items", "reviews"}

const insertBatchSize = 100

// Run executes the ingestion phase: the previous database is discarded and a
// fresh one is built from the five CSV files. Running it twice over the same
// files yields the same store.
func Run(config *common.Config) error {
	paths := make(map[string]string, len(tableNames))
	for _, table := range tableNames {
		path := filepath.Join(config.DataPath, table+".csv")
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		paths[table] = path
	}

	if err := os.Remove(config.DBPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove previous database: %w", err)
	}

	db, err := openDatabase(config.DBPath)
	if err != nil {
		return err
	}

	for _, table := range tableNames {
		header, rows, err := readCSV(paths[table])
		if err != nil {
			return err
		}
		if err := checkHeader(table, header); err != nil {
			return err
		}
		if err := insertRows(db, table, rows); err != nil {
			return err
		}
		log.Infof("Loaded %d rows into %s", len(rows), table)
	}

	log.Infof("SQLite database created at %s", config.DBPath)
	return nil
}

// openDatabase opens (creating if needed) the store and migrates the five
// table schemas. Foreign key enforcement is switched on in the DSN so bad
// references fail at insert time.
func openDatabase(dbPath string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := db.AutoMigrate(&Customer{}, &Product{}, &Order{}, &OrderItem{}, &Review{}); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}
	return db, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty file: %s", path)
	}
	return records[0], records[1:], nil
}

var expectedHeaders = map[string][]string{
	"customers":   {"customer_id", "name", "email", "city"},
	"products":    {"product_id", "name", "category", "price"},
	"orders":      {"order_id", "customer_id", "order_date", "total_amount"},
	"order_items": {"order_item_id", "order_id", "product_id", "quantity"},
	"reviews":     {"review_id", "customer_id", "product_id", "rating", "comment"},
}

func checkHeader(table string, header []string) error {
	expected, ok := expectedHeaders[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnhandledTable, table)
	}
	if strings.Join(header, ",") != strings.Join(expected, ",") {
		return fmt.Errorf("unexpected header in %s: got %v, want %v", table, header, expected)
	}
	return nil
}

// insertRows casts the text rows to the table's record type and inserts them
// in batches. Associations are omitted: rows carry plain foreign key columns
// and the sqlite engine checks them.
func insertRows(db *gorm.DB, table string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	records, err := castRows(table, rows)
	if err != nil {
		return err
	}
	if err := db.Omit(clause.Associations).CreateInBatches(records, insertBatchSize).Error; err != nil {
		return fmt.Errorf("could not insert into %s: %w", table, err)
	}
	return nil
}

func castRows(table string, rows [][]string) (interface{}, error) {
	switch table {
	case "customers":
		records := make([]Customer, 0, len(rows))
		for _, row := range rows {
			id, err := strconv.Atoi(row[0])
			if err != nil {
				return nil, castError(table, row, err)
			}
			records = append(records, Customer{
				CustomerId: id,
				Name:       row[1],
				Email:      row[2],
				City:       row[3],
			})
		}
		return records, nil

	case "products":
		records := make([]Product, 0, len(rows))
		for _, row := range rows {
			id, err := strconv.Atoi(row[0])
			if err != nil {
				return nil, castError(table, row, err)
			}
			priceValue, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, castError(table, row, err)
			}
			records = append(records, Product{
				ProductId: id,
				Name:      row[1],
				Category:  row[2],
				Price:     priceValue,
			})
		}
		return records, nil

	case "orders":
		records := make([]Order, 0, len(rows))
		for _, row := range rows {
			id, err := strconv.Atoi(row[0])
			if err != nil {
				return nil, castError(table, row, err)
			}
			customerId, err := strconv.Atoi(row[1])
			if err != nil {
				return nil, castError(table, row, err)
			}
			total, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, castError(table, row, err)
			}
			records = append(records, Order{
				OrderId:     id,
				CustomerId:  customerId,
				OrderDate:   row[2],
				TotalAmount: total,
			})
		}
		return records, nil

	case "order_items":
		records := make([]OrderItem, 0, len(rows))
		for _, row := range rows {
			values := make([]int, 4)
			for i := range values {
				value, err := strconv.Atoi(row[i])
				if err != nil {
					return nil, castError(table, row, err)
				}
				values[i] = value
			}
			records = append(records, OrderItem{
				OrderItemId: values[0],
				OrderId:     values[1],
				ProductId:   values[2],
				Quantity:    values[3],
			})
		}
		return records, nil

	case "reviews":
		records := make([]Review, 0, len(rows))
		for _, row := range rows {
			values := make([]int, 4)
			for i := range values {
				value, err := strconv.Atoi(row[i])
				if err != nil {
					return nil, castError(table, row, err)
				}
				values[i] = value
			}
			records = append(records, Review{
				ReviewId:   values[0],
				CustomerId: values[1],
				ProductId:  values[2],
				Rating:     values[3],
				Comment:    row[4],
			})
		}
		return records, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnhandledTable, table)
}

func castError(table string, row []string, err error) error {
	return fmt.Errorf("bad row in %s (%v): %w", table, row, err)
}
