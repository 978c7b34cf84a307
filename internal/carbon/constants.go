package carbon

// MinPrefixKeywordLength is the shortest keyword allowed to match as a word prefix.
// Shorter keywords (ham, nut, bun) only match whole words.
const MinPrefixKeywordLength = 4

// Text fields searched for keywords, used in calculation strings
const (
	FieldName        = "product name"
	FieldCategories  = "categories"
	FieldBrand       = "brand"
	FieldIngredients = "ingredients"
)

// Calculation string templates
const (
	CalculationMatchFormat    = "%s: %.2f kg CO2e per item (matched %q in %s)"
	CalculationPartialFormat  = "%s: %.2f kg CO2e per item (partial match %q in %s)"
	CalculationFallbackFormat = "%s: %.2f kg CO2e per item (no category match, default estimate)"
)
