package carbon

// Category is one row of the emission reference table
type Category struct {
	Name     string
	Label    string
	Factor   float64 // kg CO2e per typical retail item
	Keywords []string
}

// DefaultCategories is the reference table used by NewEstimator.
// A longer keyword beats a shorter one from any row. Between keywords of
// the same length the earlier row wins, so specific products (meat
// alternatives, cheese) sit before broad ones (beef, dairy).
var DefaultCategories = []Category{
	{
		Name:   "meat_alternatives",
		Label:  "Plant-based meat alternatives",
		Factor: 0.6,
		Keywords: []string{"plant based", "veggie burger", "veggie burgers", "veggie sausage", "veggie sausages",
			"veggie mince", "vegan", "vegetarian", "meatless", "meat free", "beef free", "meat alternative",
			"meat substitute", "seitan", "tempeh"},
	},
	{
		Name:     "beef",
		Label:    "Beef products",
		Factor:   7.5,
		Keywords: []string{"beef", "steak", "burger", "hamburger", "veal", "mince"},
	},
	{
		Name:     "lamb",
		Label:    "Lamb and mutton",
		Factor:   5.8,
		Keywords: []string{"lamb", "mutton"},
	},
	{
		Name:     "cheese",
		Label:    "Cheese",
		Factor:   2.4,
		Keywords: []string{"cheese", "cheeses", "cheddar", "mozzarella", "parmesan", "brie", "gouda", "feta"},
	},
	{
		Name:     "plant_milk",
		Label:    "Plant-based drinks",
		Factor:   0.35,
		Keywords: []string{"oat milk", "soy milk", "almond milk", "oat drink", "soy drink", "almond drink", "plant based milk", "plant based drink"},
	},
	{
		Name:     "pork",
		Label:    "Pork products",
		Factor:   1.9,
		Keywords: []string{"pork", "bacon", "ham", "sausage", "sausages", "salami", "chorizo"},
	},
	{
		Name:     "poultry",
		Label:    "Poultry",
		Factor:   1.4,
		Keywords: []string{"chicken", "turkey", "poultry", "duck"},
	},
	{
		Name:     "seafood",
		Label:    "Fish and seafood",
		Factor:   1.6,
		Keywords: []string{"fish", "salmon", "tuna", "shrimp", "prawn", "prawns", "cod", "seafood"},
	},
	{
		Name:     "chocolate",
		Label:    "Chocolate and cocoa",
		Factor:   1.9,
		Keywords: []string{"chocolate", "cocoa", "cacao"},
	},
	{
		Name:     "coffee",
		Label:    "Coffee",
		Factor:   1.7,
		Keywords: []string{"coffee", "espresso"},
	},
	{
		Name:     "dairy",
		Label:    "Dairy",
		Factor:   1.2,
		Keywords: []string{"milk", "yogurt", "yoghurt", "butter", "cream", "dairy", "dairies"},
	},
	{
		Name:     "eggs",
		Label:    "Eggs",
		Factor:   0.9,
		Keywords: []string{"egg", "eggs"},
	},
	{
		Name:     "rice",
		Label:    "Rice",
		Factor:   0.9,
		Keywords: []string{"rice"},
	},
	{
		Name:     "snacks",
		Label:    "Snacks and sweets",
		Factor:   0.8,
		Keywords: []string{"chips", "crisps", "cookie", "cookies", "biscuit", "biscuits", "cracker", "crackers", "snack", "snacks", "candy"},
	},
	{
		Name:     "beverages",
		Label:    "Soft drinks and juices",
		Factor:   0.5,
		Keywords: []string{"soda", "cola", "juice", "lemonade", "beverage", "beverages", "drink", "drinks"},
	},
	{
		Name:     "bakery",
		Label:    "Bread and bakery",
		Factor:   0.6,
		Keywords: []string{"bread", "bagel", "baguette", "croissant", "bun", "buns", "bakery",
			"hamburger bun", "hamburger buns", "burger bun", "burger buns"},
	},
	{
		Name:     "grains",
		Label:    "Pasta, cereals and grains",
		Factor:   0.7,
		Keywords: []string{"pasta", "spaghetti", "noodle", "noodles", "cereal", "cereals", "oats", "flour", "grain", "grains"},
	},
	{
		Name:     "legumes",
		Label:    "Legumes and pulses",
		Factor:   0.4,
		Keywords: []string{"bean", "beans", "lentil", "lentils", "chickpea", "chickpeas", "tofu", "hummus", "legume", "legumes", "peas"},
	},
	{
		Name:     "nuts",
		Label:    "Nuts and seeds",
		Factor:   0.5,
		Keywords: []string{"nut", "nuts", "almond", "almonds", "peanut", "peanuts", "walnut", "walnuts", "cashew", "cashews"},
	},
	{
		Name:     "fruit",
		Label:    "Fruit",
		Factor:   0.4,
		Keywords: []string{"apple", "apples", "banana", "bananas", "orange", "oranges", "berry", "berries", "grape", "grapes", "fruit", "fruits"},
	},
	{
		Name:     "vegetables",
		Label:    "Vegetables",
		Factor:   0.3,
		Keywords: []string{"vegetable", "vegetables", "tomato", "tomatoes", "potato", "potatoes", "carrot", "carrots", "lettuce", "salad", "broccoli", "onion", "onions"},
	},
	{
		Name:     "water",
		Label:    "Bottled water",
		Factor:   0.2,
		Keywords: []string{"water"},
	},
}

// DefaultFallback is used when no keyword matches
var DefaultFallback = Category{
	Name:   "general",
	Label:  "General grocery item",
	Factor: 1.2,
}
