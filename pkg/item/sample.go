package item

// SampleItems is the demo hotel inventory catalog loaded by cmd/seed.
// Tests rely on these exact records, keep codes and names stable.
var SampleItems = []StockItem{
	{
		Code:        "FISH-001",
		Name:        "Atlantic Salmon Fillet",
		Description: "Fresh Atlantic salmon fillet, skin-on, premium quality",
		Category:    "Seafood",
		Unit:        "kg",
		Price:       25.99,
		Keywords:    []string{"salmon", "fish", "seafood", "fillet", "atlantic"},
	},
	{
		Code:        "FISH-002",
		Name:        "Sea Bass Whole",
		Description: "Fresh Mediterranean sea bass, scaled and gutted",
		Category:    "Seafood",
		Unit:        "kg",
		Price:       28.50,
		Keywords:    []string{"sea bass", "fish", "seafood", "whole fish", "mediterranean"},
	},
	{
		Code:        "MEAT-001",
		Name:        "Prime Ribeye Steak",
		Description: "USDA Prime grade ribeye steak, well-marbled",
		Category:    "Meat",
		Unit:        "kg",
		Price:       45.99,
		Keywords:    []string{"beef", "steak", "ribeye", "prime", "meat"},
	},
	{
		Code:        "VEG-001",
		Name:        "Organic Baby Spinach",
		Description: "Fresh organic baby spinach leaves",
		Category:    "Vegetables",
		Unit:        "kg",
		Price:       12.99,
		Keywords:    []string{"spinach", "organic", "vegetables", "greens", "salad"},
	},
	{
		Code:        "WINE-001",
		Name:        "Château Margaux 2015",
		Description: "Premium French red wine, Bordeaux region",
		Category:    "Beverages",
		Unit:        "bottle",
		Price:       899.99,
		Keywords:    []string{"wine", "red wine", "french", "bordeaux", "premium"},
	},
	{
		Code:        "WINE-002",
		Name:        "Dom Pérignon 2012",
		Description: "Vintage champagne from the prestigious house",
		Category:    "Beverages",
		Unit:        "bottle",
		Price:       299.99,
		Keywords:    []string{"champagne", "wine", "french", "sparkling", "premium"},
	},
	{
		Code:        "SPICE-001",
		Name:        "Saffron Threads",
		Description: "Premium Spanish saffron threads",
		Category:    "Spices",
		Unit:        "gram",
		Price:       8.99,
		Keywords:    []string{"saffron", "spice", "spanish", "premium", "seasoning"},
	},
	{
		Code:        "DAIRY-001",
		Name:        "French Butter",
		Description: "Premium French butter, unsalted",
		Category:    "Dairy",
		Unit:        "kg",
		Price:       15.99,
		Keywords:    []string{"butter", "french", "dairy", "unsalted"},
	},
	{
		Code:        "FISH-003",
		Name:        "Yellowfin Tuna Steak",
		Description: "Sushi-grade yellowfin tuna steak",
		Category:    "Seafood",
		Unit:        "kg",
		Price:       39.99,
		Keywords:    []string{"tuna", "fish", "seafood", "sushi", "steak"},
	},
	{
		Code:        "MEAT-002",
		Name:        "Lamb Rack",
		Description: "New Zealand lamb rack, frenched",
		Category:    "Meat",
		Unit:        "kg",
		Price:       34.99,
		Keywords:    []string{"lamb", "meat", "rack", "new zealand"},
	},
}
