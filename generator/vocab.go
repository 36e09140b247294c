package generator

import "github.com/shopspring/decimal"

var cities = []string{
	"New York",
	"San Francisco",
	"Chicago",
	"Austin",
	"Seattle",
	"Boston",
}

var firstNames = []string{
	"Alex",
	"Jordan",
	"Taylor",
	"Riley",
	"Casey",
	"Morgan",
	"Jamie",
	"Avery",
	"Reese",
	"Skyler",
	"Parker",
	"Rowan",
	"Hayden",
	"Quinn",
	"Elliot",
}

var lastNames = []string{
	"Smith",
	"Johnson",
	"Williams",
	"Brown",
	"Jones",
	"Garcia",
	"Miller",
	"Davis",
	"Lopez",
	"Gonzalez",
	"Wilson",
	"Anderson",
	"Thomas",
	"Jackson",
	"Martinez",
}

// CatalogEntry is one (name, price) pair inside a category.
type CatalogEntry struct {
	Name  string
	Price decimal.Decimal
}

// CatalogCategory groups the entries of one category. Declaration order of
// categories and entries fixes product id assignment, so the catalog is a
// slice rather than a map.
type CatalogCategory struct {
	Category string
	Entries  []CatalogEntry
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var catalog = []CatalogCategory{
	{
		Category: "Electronics",
		Entries: []CatalogEntry{
			{"Wireless Earbuds", price("79.99")},
			{"Smartphone Case", price("19.99")},
			{"Bluetooth Speaker", price("49.99")},
			{"Portable Charger", price("39.99")},
			{"Smartwatch", price("129.99")},
		},
	},
	{
		Category: "Home",
		Entries: []CatalogEntry{
			{"Ceramic Mug Set", price("24.99")},
			{"Throw Blanket", price("34.99")},
			{"LED Desk Lamp", price("45.50")},
			{"Aromatherapy Diffuser", price("29.99")},
			{"Indoor Plant Kit", price("27.49")},
		},
	},
	{
		Category: "Fitness",
		Entries: []CatalogEntry{
			{"Yoga Mat", price("32.00")},
			{"Resistance Bands", price("21.50")},
			{"Insulated Water Bottle", price("25.00")},
			{"Foam Roller", price("28.75")},
			{"Adjustable Dumbbell", price("199.00")},
		},
	},
	{
		Category: "Books",
		Entries: []CatalogEntry{
			{"Productivity Planner", price("18.95")},
			{"Design Thinking Guide", price("22.00")},
			{"Modern Cooking", price("30.00")},
			{"Mindfulness Workbook", price("16.50")},
			{"Startup Playbook", price("26.00")},
		},
	},
}

var comments = []string{
	"Loved it! Highly recommend.",
	"Works as expected. Would buy again.",
	"Quality could be better, but good value overall.",
	"Fantastic customer service and fast shipping.",
	"Not satisfied with the durability.",
	"Exceeded my expectations!",
	"Makes daily life so much easier.",
	"Gifted it to a friend and they loved it.",
	"Helpful addition to my routine.",
	"Packaging was damaged, but product is fine.",
}
