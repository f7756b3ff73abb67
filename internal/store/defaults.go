package store

// DefaultKeywordRules returns the built-in deterministic keyword table.
// Order matters: the classifier scans top to bottom and the first keyword
// found as a substring of the normalized description wins.
func DefaultKeywordRules() []Rule {
	return []Rule{
		{Keyword: "payroll", Category: "Income", SubCategory: "Salary"},
		{Keyword: "salary", Category: "Income", SubCategory: "Salary"},
		{Keyword: "direct deposit", Category: "Income", SubCategory: "Salary"},
		{Keyword: "interest", Category: "Income", SubCategory: "Interest"},
		{Keyword: "dividend", Category: "Income", SubCategory: "Investments"},
		{Keyword: "gst credit", Category: "Income", SubCategory: "Government"},
		{Keyword: "rent", Category: "Housing", SubCategory: "Rent"},
		{Keyword: "mortgage", Category: "Housing", SubCategory: "Mortgage"},
		{Keyword: "hydro", Category: "Utilities", SubCategory: "Electricity"},
		{Keyword: "enbridge", Category: "Utilities", SubCategory: "Gas"},
		{Keyword: "rogers", Category: "Utilities", SubCategory: "Telecom"},
		{Keyword: "bell", Category: "Utilities", SubCategory: "Telecom"},
		{Keyword: "telus", Category: "Utilities", SubCategory: "Telecom"},
		{Keyword: "shaw", Category: "Utilities", SubCategory: "Telecom"},
		{Keyword: "internet", Category: "Utilities", SubCategory: "Telecom"},
		{Keyword: "insurance", Category: "Insurance", SubCategory: "Premiums"},
		{Keyword: "property tax", Category: "Housing", SubCategory: "Taxes"},
		{Keyword: "scotia visa payment", Category: "Transfers", SubCategory: "Credit Card Payment"},
		{Keyword: "visa payment", Category: "Transfers", SubCategory: "Credit Card Payment"},
		{Keyword: "xfer", Category: "Transfers", SubCategory: "Internal Transfer"},
		{Keyword: "transfer", Category: "Transfers", SubCategory: "Internal Transfer"},
		{Keyword: "etfr", Category: "Transfers", SubCategory: "Internal Transfer"},
		{Keyword: "uber", Category: "Transport", SubCategory: "Ride Share"},
		{Keyword: "lyft", Category: "Transport", SubCategory: "Ride Share"},
		{Keyword: "shell", Category: "Transport", SubCategory: "Fuel"},
		{Keyword: "esso", Category: "Transport", SubCategory: "Fuel"},
		{Keyword: "petro", Category: "Transport", SubCategory: "Fuel"},
		{Keyword: "petro-canada", Category: "Transport", SubCategory: "Fuel"},
		{Keyword: "costco", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "loblaws", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "walmart", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "sobeys", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "no frills", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "shoppers", Category: "Health", SubCategory: "Pharmacy"},
		{Keyword: "starbucks", Category: "Food & Drink", SubCategory: "Coffee"},
		{Keyword: "tim hortons", Category: "Food & Drink", SubCategory: "Coffee"},
		{Keyword: "mcdonald", Category: "Food & Drink", SubCategory: "Fast Food"},
		{Keyword: "netflix", Category: "Entertainment", SubCategory: "Streaming"},
		{Keyword: "spotify", Category: "Entertainment", SubCategory: "Streaming"},
		{Keyword: "canadian tire", Category: "Living", SubCategory: "Home"},
		{Keyword: "home depot", Category: "Living", SubCategory: "Home Improvement"},
		{Keyword: "amazon", Category: "Shopping", SubCategory: "Online Retail"},
		{Keyword: "airbnb", Category: "Travel", SubCategory: "Accommodation"},
		{Keyword: "uber eats", Category: "Food & Drink", SubCategory: "Delivery"},
	}
}

// DefaultFuzzyTargets returns the built-in fuzzy-match vocabulary used when
// no deterministic keyword hits.
func DefaultFuzzyTargets() []Rule {
	return []Rule{
		{Keyword: "starbuck", Category: "Food & Drink", SubCategory: "Coffee"},
		{Keyword: "mcdonalds", Category: "Food & Drink", SubCategory: "Fast Food"},
		{Keyword: "wendys", Category: "Food & Drink", SubCategory: "Fast Food"},
		{Keyword: "subway", Category: "Food & Drink", SubCategory: "Fast Food"},
		{Keyword: "shoppers drug mart", Category: "Health", SubCategory: "Pharmacy"},
		{Keyword: "ikea", Category: "Living", SubCategory: "Home"},
		{Keyword: "canadian tire", Category: "Living", SubCategory: "Home"},
		{Keyword: "costco wholesale", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "longos", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "freshco", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "no frills", Category: "Living", SubCategory: "Groceries"},
		{Keyword: "uber trip", Category: "Transport", SubCategory: "Ride Share"},
		{Keyword: "uber eats", Category: "Food & Drink", SubCategory: "Delivery"},
	}
}
