// internal/catalog/datasets.go
package catalog

import (
	"fmt"
	"time"

	"github.com/shahalmix/shahalmix-backend/internal/models"
)

// Static mock datasets. Listing times are fixed so the "newest" sort is
// deterministic; each set occupies its own day.
var (
	mainEpoch      = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	wholesaleEpoch = time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)
	thriftEpoch    = time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
)

var MockProducts = buildMainProducts()

var mainNames = []string{"Lawn Suit", "Charging Cable", "Kitchen Set", "Men Kurta", "Power Bank"}

var mainPrices = []int64{
	2400, 1150, 3800, 2950, 4200,
	1750, 5600, 1300, 2100, 3350,
	4850, 1600, 2700, 5100, 3900,
}

func buildMainProducts() []models.Product {
	products := make([]models.Product, 0, 15)
	for i := 1; i <= 15; i++ {
		category := "cat-2"
		if i%2 == 0 {
			category = "cat-1"
		}
		products = append(products, models.Product{
			ID:            fmt.Sprintf("main-%d", i),
			Name:          fmt.Sprintf("%s Standard Edition %d", mainNames[i%5], i),
			Price:         mainPrices[i-1],
			Image:         fmt.Sprintf("https://picsum.photos/seed/main%d/400/400", i),
			Category:      category,
			Seller:        fmt.Sprintf("Retail Shop %d", i),
			Rating:        4.5,
			IsVerified:    true,
			BulkAvailable: i%3 == 0,
			Origin:        models.MarketOriginStandard,
			CreatedAt:     mainEpoch.Add(time.Duration(i) * time.Hour),
		})
	}
	return products
}

var WholesaleHubProducts = buildWholesaleHubProducts()

var wholesaleNames = []string{
	"Cotton Yarn (Master Case)", "Bulk USB Cables (Box of 50)", "Industrial Spices (10kg)",
	"Wholesale Lawn Suits (Set of 10)", "Bulk Mobile Chargers", "LED Bulbs (Carton of 24)",
	"Master Box T-Shirts", "Steel Utensils (Wholesale Pack)", "Bulk Grocery Sacks", "Refined Oil (Tin of 5)",
}

var wholesalePrices = []int64{
	18500, 9200, 31000, 45500, 12800, 7600,
	26400, 38900, 15300, 52000, 21700, 33600,
}

func buildWholesaleHubProducts() []models.Product {
	products := make([]models.Product, 0, 12)
	for i := 0; i < 12; i++ {
		category := "cat-2"
		if i%2 == 0 {
			category = "cat-1"
		}
		products = append(products, models.Product{
			ID:             fmt.Sprintf("wholesale-%d", i),
			Name:           wholesaleNames[i%10],
			Price:          wholesalePrices[i],
			WholesalePrice: wholesalePrices[i] - 1000,
			MOQ:            12,
			Image:          fmt.Sprintf("https://picsum.photos/seed/bulk%d/400/400", i),
			Category:       category,
			Seller:         fmt.Sprintf("Shahalmi Master Trader %d", i),
			Rating:         4.9,
			IsVerified:     true,
			BulkAvailable:  true,
			Origin:         models.MarketOriginWholesale,
			CreatedAt:      wholesaleEpoch.Add(time.Duration(i) * time.Hour),
		})
	}
	return products
}

var ThriftProducts = buildThriftProducts()

var thriftNames = []string{
	"Vintage Denim Jacket", "Retro Polaroid Camera", "Used Leather Boots",
	"Second-hand Silk Scarf", "Antique Brass Lamp", "Old Records Collection",
	"Used Smart Watch", "Refurbished Keyboard", "Vintage Handbag", "Classic Sun-glasses",
}

var thriftPrices = []int64{
	950, 1800, 1250, 700, 1450, 600,
	1950, 850, 1100, 1600, 750, 1350,
}

func buildThriftProducts() []models.Product {
	products := make([]models.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, models.Product{
			ID:            fmt.Sprintf("thrift-%d", i),
			Name:          thriftNames[i%10],
			Price:         thriftPrices[i],
			Image:         fmt.Sprintf("https://picsum.photos/seed/thrift%d/400/400", i),
			Category:      "cat-1",
			Seller:        fmt.Sprintf("Thrift Corner %d", i),
			Rating:        4.8,
			IsVerified:    true,
			Origin:        models.MarketOriginThrift,
			CreatedAt:     thriftEpoch.Add(time.Duration(i) * time.Hour),
		})
	}
	return products
}

// Categories is the static navigation taxonomy.
var Categories = []models.Category{
	{
		ID: "cat-1", Name: "Fashion & Textiles", Icon: "Shirt",
		Subcategories: []models.SubCategory{
			{ID: "sub-1-1", Name: "Mens Fashion", MicroCategories: []models.MicroCategory{
				{ID: "mic-1-1-1", Name: "Kurtas & Shalwar"},
				{ID: "mic-1-1-2", Name: "T-Shirts"},
				{ID: "mic-1-1-3", Name: "Denim Jeans"},
			}},
			{ID: "sub-1-2", Name: "Womens Fashion", MicroCategories: []models.MicroCategory{
				{ID: "mic-1-2-1", Name: "Unstitched Lawn"},
				{ID: "mic-1-2-2", Name: "Abayas"},
			}},
		},
	},
	{
		ID: "cat-2", Name: "Electronics", Icon: "Zap",
		Subcategories: []models.SubCategory{
			{ID: "sub-2-1", Name: "Home Appliances", MicroCategories: []models.MicroCategory{
				{ID: "mic-2-1-1", Name: "Blenders & Grinders"},
				{ID: "mic-2-1-2", Name: "Steam Irons"},
			}},
		},
	},
	{
		ID: "cat-3", Name: "Mobile & Accessories", Icon: "Smartphone",
		Subcategories: []models.SubCategory{
			{ID: "sub-3-1", Name: "Charging", MicroCategories: []models.MicroCategory{
				{ID: "mic-3-1-1", Name: "Data Cables"},
				{ID: "mic-3-1-2", Name: "Adapters"},
			}},
		},
	},
	{
		ID: "cat-4", Name: "Home & Kitchen", Icon: "Home",
		Subcategories: []models.SubCategory{
			{ID: "sub-4-1", Name: "Cookware", MicroCategories: []models.MicroCategory{
				{ID: "mic-4-1-1", Name: "Non-stick Pans"},
				{ID: "mic-4-1-2", Name: "Steel Pots"},
			}},
		},
	},
	{
		ID: "cat-5", Name: "Jewelry & Cosmetics", Icon: "Sparkles",
		Subcategories: []models.SubCategory{
			{ID: "sub-5-1", Name: "Artificial Jewelry", MicroCategories: []models.MicroCategory{
				{ID: "mic-5-1-1", Name: "Bridal Sets"},
				{ID: "mic-5-1-2", Name: "Bangles"},
			}},
		},
	},
	{
		ID: "cat-6", Name: "Stationery & Toys", Icon: "Book",
		Subcategories: []models.SubCategory{
			{ID: "sub-6-1", Name: "Office Supplies", MicroCategories: []models.MicroCategory{
				{ID: "mic-6-1-1", Name: "Registers"},
				{ID: "mic-6-1-2", Name: "Bulk Pens"},
			}},
		},
	},
	{
		ID: "cat-7", Name: "Hardware & Tools", Icon: "Hammer",
		Subcategories: []models.SubCategory{
			{ID: "sub-7-1", Name: "Hand Tools", MicroCategories: []models.MicroCategory{
				{ID: "mic-7-1-1", Name: "Wrench Sets"},
			}},
		},
	},
	{
		ID: "cat-8", Name: "Auto Parts", Icon: "Car",
		Subcategories: []models.SubCategory{
			{ID: "sub-8-1", Name: "Bike Accessories", MicroCategories: []models.MicroCategory{
				{ID: "mic-8-1-1", Name: "Helmets"},
			}},
		},
	},
	{
		ID: "cat-9", Name: "Spices & Dry Fruits", Icon: "Apple",
		Subcategories: []models.SubCategory{
			{ID: "sub-9-1", Name: "Wholesale Spices", MicroCategories: []models.MicroCategory{
				{ID: "mic-9-1-1", Name: "Red Chilli Powder"},
			}},
		},
	},
	{
		ID: "cat-10", Name: "Sanitary & Bath", Icon: "Droplets",
		Subcategories: []models.SubCategory{
			{ID: "sub-10-1", Name: "Faucets", MicroCategories: []models.MicroCategory{
				{ID: "mic-10-1-1", Name: "Mixer Taps"},
			}},
		},
	},
	{
		ID: "cat-11", Name: "Lighting & Electrical", Icon: "Lightbulb",
		Subcategories: []models.SubCategory{
			{ID: "sub-11-1", Name: "LED Solutions", MicroCategories: []models.MicroCategory{
				{ID: "mic-11-1-1", Name: "SMD Panels"},
			}},
		},
	},
	{
		ID: "cat-12", Name: "Bags & Luggage", Icon: "Briefcase",
		Subcategories: []models.SubCategory{
			{ID: "sub-12-1", Name: "Travel Bags", MicroCategories: []models.MicroCategory{
				{ID: "mic-12-1-1", Name: "Trolley Bags"},
			}},
		},
	},
	{
		ID: "cat-13", Name: "Footwear", Icon: "Footprints",
		Subcategories: []models.SubCategory{
			{ID: "sub-13-1", Name: "Mens Shoes", MicroCategories: []models.MicroCategory{
				{ID: "mic-13-1-1", Name: "Peshawari Chappal"},
			}},
		},
	},
	{
		ID: "cat-14", Name: "Medical Supplies", Icon: "Activity",
		Subcategories: []models.SubCategory{
			{ID: "sub-14-1", Name: "First Aid", MicroCategories: []models.MicroCategory{
				{ID: "mic-14-1-1", Name: "Surgical Masks"},
			}},
		},
	},
	{
		ID: "cat-15", Name: "Sports & Fitness", Icon: "Dumbbell",
		Subcategories: []models.SubCategory{
			{ID: "sub-15-1", Name: "Cricket Gear", MicroCategories: []models.MicroCategory{
				{ID: "mic-15-1-1", Name: "Hardball Bats"},
			}},
		},
	},
}
