package seed

import "restaurant-bot/models"

type restaurantSeed struct {
	restaurant models.Restaurant
	menu       []models.MenuItem
}

func item(name, description string, price int64, category models.Category, veg bool) models.MenuItem {
	return models.MenuItem{Name: name, Description: description, Price: price, Category: category, IsVeg: veg}
}

var catalog = []restaurantSeed{
	{
		restaurant: models.Restaurant{
			Name:           "The Nawaabs",
			Address:        "18A, 7B/A, Fatehabad Rd, opposite Axis Bank, Bansal Nagar, Tajganj, Agra, Uttar Pradesh 282001",
			Phone:          "070270 24829",
			Hours:          "Open ⋅ Closes 12 AM",
			PriceRange:     "₹300-800",
			ServiceOptions: []string{"All you can eat", "Outdoor seating", "Vegan options"},
			Description:    "Authentic Mughlai cuisine with traditional flavors and royal dining experience.",
			Image:          "https://via.placeholder.com/400x300/8E44AD/FFFFFF?text=The+Nawaabs",
		},
		menu: []models.MenuItem{
			item("Chicken Tikka", "Tender chicken marinated in yogurt and spices, grilled to perfection", 280, models.CategoryAppetizers, false),
			item("Mutton Seekh Kebab", "Minced mutton kebabs with aromatic spices", 320, models.CategoryAppetizers, false),
			item("Paneer Tikka", "Cottage cheese cubes grilled with bell peppers and onions", 240, models.CategoryAppetizers, true),
			item("Butter Chicken", "Creamy tomato-based curry with tender chicken pieces", 380, models.CategoryMainCourse, false),
			item("Mutton Rogan Josh", "Kashmiri style mutton curry with aromatic spices", 450, models.CategoryMainCourse, false),
			item("Dal Makhani", "Rich and creamy black lentil curry", 220, models.CategoryMainCourse, true),
			item("Chicken Biryani", "Fragrant basmati rice with spiced chicken", 350, models.CategoryBiryani, false),
			item("Mutton Biryani", "Traditional mutton biryani with saffron rice", 420, models.CategoryBiryani, false),
			item("Vegetable Biryani", "Mixed vegetables with aromatic basmati rice", 280, models.CategoryBiryani, true),
		},
	},
	{
		restaurant: models.Restaurant{
			Name:           "Heart of Taj Café & Kitchen",
			Address:        "P6 Taj Nagri phase 1, near shilpgram road, Phase One Colony, Agra, Uttar Pradesh 282004",
			Phone:          "098765 43210",
			Hours:          "Open ⋅ Closes 10 PM",
			PriceRange:     "₹250-600",
			ServiceOptions: []string{"All you can eat", "Happy-hour food", "Fireplace"},
			Description:    "Multi-cuisine restaurant with cozy ambiance and fireplace dining.",
			Image:          "https://via.placeholder.com/400x300/E67E22/FFFFFF?text=Heart+of+Taj",
		},
		menu: []models.MenuItem{
			item("Chicken Tandoori", "Half chicken marinated in yogurt and tandoori spices", 320, models.CategoryTandoor, false),
			item("Fish Tikka", "Fresh fish marinated and grilled in tandoor", 380, models.CategoryTandoor, false),
			item("Tandoori Naan", "Freshly baked bread in tandoor oven", 60, models.CategoryTandoor, true),
			item("Chicken Curry", "Home-style chicken curry with onion gravy", 280, models.CategoryMainCourse, false),
			item("Palak Paneer", "Cottage cheese in spinach gravy", 240, models.CategoryMainCourse, true),
			item("Masala Chai", "Traditional Indian spiced tea", 40, models.CategoryBeverages, true),
		},
	},
	{
		restaurant: models.Restaurant{
			Name:           "Govinda's Restaurant Mathura",
			Address:        "near Deep Nursing Home, Radha Nagar, Krishna Nagar, Mathura, Uttar Pradesh 281004",
			Phone:          "063963 64690",
			Hours:          "Open ⋅ Closes 9:30 PM",
			PriceRange:     "₹200-600",
			ServiceOptions: []string{"Pure Vegetarian", "Spiritual dining", "Traditional thali"},
			Description:    "Pure vegetarian restaurant serving Krishna consciousness inspired meals.",
			Image:          "https://via.placeholder.com/400x300/27AE60/FFFFFF?text=Govindas",
		},
		menu: []models.MenuItem{
			item("Govinda Thali", "Complete vegetarian meal with dal, sabzi, rice, roti, and dessert", 180, models.CategoryMainCourse, true),
			item("Rajma Chawal", "Kidney beans curry with steamed rice", 140, models.CategoryMainCourse, true),
			item("Chole Bhature", "Spicy chickpea curry with fried bread", 120, models.CategoryMainCourse, true),
			item("Aloo Paratha", "Stuffed potato flatbread with yogurt and pickle", 100, models.CategoryMainCourse, true),
			item("Kheer", "Traditional rice pudding with cardamom", 80, models.CategoryDesserts, true),
			item("Lassi", "Sweet yogurt drink", 60, models.CategoryBeverages, true),
		},
	},
	{
		restaurant: models.Restaurant{
			Name:           "Taj Terrace",
			Address:        "Hotel taj resorts, Eastern gate of tajmahal, near shilpgram, tajganj, Agra, Uttar Pradesh 282001",
			Phone:          "070600 05331",
			Hours:          "Open ⋅ Closes 11 PM",
			PriceRange:     "₹400-1000",
			ServiceOptions: []string{"Outdoor seating", "Private dining room", "Live music"},
			Description:    "Fine dining with Taj Mahal view, live music, and premium Indian cuisine.",
			Image:          "https://via.placeholder.com/400x300/3498DB/FFFFFF?text=Taj+Terrace",
		},
		menu: []models.MenuItem{
			item("Taj Special Biryani", "Premium biryani with tender mutton and saffron", 500, models.CategoryBiryani, false),
			item("Tandoori Prawns", "Jumbo prawns marinated in tandoori spices", 450, models.CategoryTandoor, false),
			item("Paneer Makhani", "Cottage cheese in rich tomato and butter gravy", 280, models.CategoryMainCourse, true),
			item("Garlic Naan", "Naan bread topped with garlic and herbs", 80, models.CategoryTandoor, true),
			item("Gulab Jamun", "Sweet milk dumplings in sugar syrup", 120, models.CategoryDesserts, true),
			item("Fresh Lime Soda", "Refreshing lime drink with mint", 80, models.CategoryBeverages, true),
		},
	},
	{
		restaurant: models.Restaurant{
			Name:           "Treat Restaurant",
			Address:        "Tajmahal south gate, Kinari Bazar, Kaserat Bazar, Tajganj, Agra, Uttar Pradesh 282001",
			Phone:          "093190 12891",
			Hours:          "Open ⋅ Closes 11 PM",
			PriceRange:     "₹200-400",
			ServiceOptions: []string{"Reservations required", "All you can eat", "Happy-hour food"},
			Description:    "Family-friendly restaurant near Taj Mahal with affordable Indian cuisine.",
			Image:          "https://via.placeholder.com/400x300/E74C3C/FFFFFF?text=Treat+Restaurant",
		},
		menu: []models.MenuItem{
			item("Chicken Biryani", "Traditional chicken biryani with aromatic rice", 260, models.CategoryBiryani, false),
			item("Vegetable Biryani", "Mixed vegetable biryani with basmati rice", 220, models.CategoryBiryani, true),
			item("Butter Naan", "Soft naan bread with butter", 50, models.CategoryTandoor, true),
			item("Chicken Tikka Masala", "Grilled chicken in creamy tomato sauce", 300, models.CategoryMainCourse, false),
			item("Dal Tadka", "Yellow lentils tempered with spices", 150, models.CategoryMainCourse, true),
			item("Kulfi", "Traditional Indian ice cream", 70, models.CategoryDesserts, true),
		},
	},
}
