package domain

// GenreSales is one row of the sales-by-genre report.
type GenreSales struct {
	Genre        string `json:"genre"`
	QuantitySold int    `json:"quantity_sold"`
}

// BookSales is one row of the top-selling-books report.
type BookSales struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	QuantitySold int    `json:"quantity_sold"`
}

// CustomerSpend is one row of the customer-spending report.
type CustomerSpend struct {
	CustomerName string  `json:"customer_name"`
	TotalSpent   float64 `json:"total_spent"`
}
