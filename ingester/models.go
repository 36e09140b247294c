package ingester

// Column names and constraints mirror the generator's output tables. Emails
// are deliberately not UNIQUE: duplicate customer names produce duplicate
// emails in the synthetic data, and ingestion must accept them.

type Customer struct {
	CustomerId int    `gorm:"column:customer_id;primaryKey"`
	Name       string `gorm:"column:name;not null"`
	Email      string `gorm:"column:email;not null"`
	City       string `gorm:"column:city;not null"`
}

func (Customer) TableName() string { return "customers" }

type Product struct {
	ProductId int     `gorm:"column:product_id;primaryKey"`
	Name      string  `gorm:"column:name;not null"`
	Category  string  `gorm:"column:category;not null"`
	Price     float64 `gorm:"column:price;not null"`
}

func (Product) TableName() string { return "products" }

type Order struct {
	OrderId     int      `gorm:"column:order_id;primaryKey"`
	CustomerId  int      `gorm:"column:customer_id;not null"`
	OrderDate   string   `gorm:"column:order_date;not null"`
	TotalAmount float64  `gorm:"column:total_amount;not null"`
	Customer    Customer `gorm:"foreignKey:CustomerId;references:CustomerId"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	OrderItemId int     `gorm:"column:order_item_id;primaryKey"`
	OrderId     int     `gorm:"column:order_id;not null"`
	ProductId   int     `gorm:"column:product_id;not null"`
	Quantity    int     `gorm:"column:quantity;not null"`
	Order       Order   `gorm:"foreignKey:OrderId;references:OrderId"`
	Product     Product `gorm:"foreignKey:ProductId;references:ProductId"`
}

func (OrderItem) TableName() string { return "order_items" }

type Review struct {
	ReviewId   int      `gorm:"column:review_id;primaryKey"`
	CustomerId int      `gorm:"column:customer_id;not null"`
	ProductId  int      `gorm:"column:product_id;not null"`
	Rating     int      `gorm:"column:rating;not null"`
	Comment    string   `gorm:"column:comment;not null"`
	Customer   Customer `gorm:"foreignKey:CustomerId;references:CustomerId"`
	Product    Product  `gorm:"foreignKey:ProductId;references:ProductId"`
}

func (Review) TableName() string { return "reviews" }
