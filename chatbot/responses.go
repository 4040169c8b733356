package chatbot

const FallbackResponse = `I can help you with restaurant information, menus, reservations, and orders. ` +
	`Try asking about "menu", "restaurants", "booking a table", or "placing an order"!`

// DefaultRules is evaluated top to bottom. A message like "what time does the
// menu open" is answered as a menu question because the menu rule comes first.
var DefaultRules = []Rule{
	{
		Intent:   IntentMenu,
		Keywords: []string{"menu", "food", "dish"},
		Response: "Our restaurants offer authentic Indian cuisine including Biryani, Tandoor items, Curries, and Desserts. " +
			"Visit our menu page to see all options!",
		Refinements: []Rule{
			{
				Intent:   IntentBiryani,
				Keywords: []string{"biryani"},
				Response: "We have delicious Biryani at all our restaurants! Try our Chicken Biryani, Mutton Biryani, " +
					"or Vegetable Biryani. Which restaurant would you like to visit?",
			},
			{
				Intent:   IntentTandoor,
				Keywords: []string{"tandoor"},
				Response: "Our Tandoor specialties include Tandoori Chicken, Naan, and Kebabs. " +
					"Available at The Nawaabs and Taj Terrace with outdoor seating!",
			},
		},
	},
	{
		Intent:   IntentRestaurants,
		Keywords: []string{"restaurant", "location", "address"},
		Response: "We have 5 amazing Indian restaurants:\n" +
			"1. The Nawaabs - Agra (Mughlai cuisine)\n" +
			"2. Heart of Taj Café - Agra (Multi-cuisine)\n" +
			"3. Govinda's Restaurant - Mathura (Vegetarian)\n" +
			"4. Taj Terrace - Agra (Fine dining)\n" +
			"5. Treat Restaurant - Agra (Family dining)",
	},
	{
		Intent:   IntentBooking,
		Keywords: []string{"book", "reservation", "table"},
		Response: "I can help you book a table! Please visit our reservation page or let me know:\n" +
			"- Which restaurant?\n" +
			"- Date and time?\n" +
			"- Number of guests?\n" +
			"You can also call directly: The Nawaabs (070270 24829) or Taj Terrace (070600 05331)",
	},
	{
		Intent:   IntentOrdering,
		Keywords: []string{"order", "delivery", "takeaway"},
		Response: "You can place orders through our website! We offer both delivery and pickup options. " +
			"Browse our menu, add items to cart, and checkout with your details.",
	},
	{
		Intent:   IntentPricing,
		Keywords: []string{"price", "cost", "expensive"},
		Response: "Our restaurants have different price ranges:\n" +
			"- Govinda's Restaurant: ₹200-600 per person\n" +
			"- Treat Restaurant: ₹200-400 per person\n" +
			"- Other restaurants: Affordable family dining\n" +
			"Check individual menus for specific dish prices!",
	},
	{
		Intent:   IntentHours,
		Keywords: []string{"open", "close", "hours", "time"},
		Response: "Restaurant timings:\n" +
			"- The Nawaabs: Open until 12 AM\n" +
			"- Heart of Taj Café: Open until 10 PM\n" +
			"- Govinda's Restaurant: Open until 9:30 PM\n" +
			"- Taj Terrace: Open until 11 PM\n" +
			"- Treat Restaurant: Open until 11 PM",
	},
	{
		Intent:   IntentGreeting,
		Keywords: []string{"hello", "hi", "hey"},
		Response: "Hello! Welcome to our Indian Restaurant Bot! 🍛\n" +
			"I can help you with:\n" +
			"- Finding restaurants\n" +
			"- Viewing menus\n" +
			"- Making reservations\n" +
			"- Placing orders\n" +
			"What would you like to know?",
	},
}
