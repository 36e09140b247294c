package reporter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ecom-pipeline/common"

	"github.com/fatih/color"
)

var titleColor = color.New(color.FgCyan, color.Bold)

// Run executes the query phase: the three aggregate reports against the
// ingested store, rendered to stdout.
func Run(config *common.Config) error {
	db, err := Open(config.DBPath)
	if err != nil {
		return err
	}

	summaries, err := CustomerOrderSummary(db)
	if err != nil {
		return err
	}
	renderTable(os.Stdout, "Customer Orders and Ratings",
		[]string{"Customer", "Total Orders", "Average Rating"},
		customerSummaryRows(summaries))

	revenues, err := TopProductsByRevenue(db)
	if err != nil {
		return err
	}
	renderTable(os.Stdout, "Top Products by Revenue",
		[]string{"Product", "Category", "Units Sold", "Revenue ($)"},
		productRevenueRows(revenues))

	ratings, err := AverageRatingByProduct(db)
	if err != nil {
		return err
	}
	renderTable(os.Stdout, "Products with Multiple Reviews",
		[]string{"Product", "Review Count", "Average Rating"},
		productRatingRows(ratings))

	return nil
}

func customerSummaryRows(summaries []CustomerSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rating := "N/A"
		if s.AverageRating != nil {
			rating = strconv.FormatFloat(*s.AverageRating, 'g', -1, 64)
		}
		rows = append(rows, []string{s.CustomerName, strconv.Itoa(s.TotalOrders), rating})
	}
	return rows
}

func productRevenueRows(revenues []ProductRevenue) [][]string {
	rows := make([][]string, 0, len(revenues))
	for _, r := range revenues {
		rows = append(rows, []string{
			r.Name,
			r.Category,
			strconv.Itoa(r.UnitsSold),
			strconv.FormatFloat(r.Revenue, 'f', 2, 64),
		})
	}
	return rows
}

func productRatingRows(ratings []ProductRating) [][]string {
	rows := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.ReviewCount),
			strconv.FormatFloat(r.AvgRating, 'g', -1, 64),
		})
	}
	return rows
}

func renderTable(w io.Writer, title string, headers []string, rows [][]string) {
	fmt.Fprintf(w, "\n%s\n", titleColor.Sprint(title))
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	headerLine := strings.Join(headers, " | ")
	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, strings.Repeat("-", len(headerLine)))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, " | "))
	}
}
