package carbon

import (
	"fmt"
	"strings"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// ProductText is the product description the estimator classifies
type ProductText struct {
	Name        string
	Brand       string
	Categories  string
	Ingredients string
}

// Estimate is the carbon footprint classification of one product
type Estimate struct {
	CarbonFootprint float64
	Category        string
	Confidence      domain.Confidence
	Calculation     string
}

type compiledCategory struct {
	Category
	keywords [][]string
}

// Estimator classifies products against a fixed emission reference table.
// It is safe for concurrent use and never performs I/O.
type Estimator struct {
	categories []compiledCategory
	fallback   Category
}

// NewEstimator creates an estimator over DefaultCategories
func NewEstimator() *Estimator {
	return NewEstimatorWithTable(DefaultCategories, DefaultFallback)
}

// NewEstimatorWithTable creates an estimator over a custom reference table
func NewEstimatorWithTable(categories []Category, fallback Category) *Estimator {
	compiled := make([]compiledCategory, 0, len(categories))
	for _, c := range categories {
		cc := compiledCategory{Category: c}
		for _, kw := range c.Keywords {
			if toks := tokenize(kw); len(toks) > 0 {
				cc.keywords = append(cc.keywords, toks)
			}
		}
		compiled = append(compiled, cc)
	}
	return &Estimator{categories: compiled, fallback: fallback}
}

// Estimate classifies the product. A whole-word keyword hit in the name is
// high confidence, any hit elsewhere or a word-prefix hit is medium, and no
// hit at all falls back to the default factor with low confidence.
func (e *Estimator) Estimate(p ProductText) Estimate {
	name := tokenize(p.Name)
	if c, kw, ok := e.match(name, false); ok {
		return e.result(c, domain.ConfidenceHigh, CalculationMatchFormat, kw, FieldName)
	}
	if c, kw, ok := e.match(name, true); ok {
		return e.result(c, domain.ConfidenceMedium, CalculationPartialFormat, kw, FieldName)
	}

	secondary := []struct {
		field string
		text  string
	}{
		{FieldCategories, p.Categories},
		{FieldBrand, p.Brand},
		{FieldIngredients, p.Ingredients},
	}
	for _, s := range secondary {
		tokens := tokenize(s.text)
		if len(tokens) == 0 {
			continue
		}
		if c, kw, ok := e.match(tokens, false); ok {
			return e.result(c, domain.ConfidenceMedium, CalculationMatchFormat, kw, s.field)
		}
		if c, kw, ok := e.match(tokens, true); ok {
			return e.result(c, domain.ConfidenceMedium, CalculationPartialFormat, kw, s.field)
		}
	}

	return Estimate{
		CarbonFootprint: e.fallback.Factor,
		Category:        e.fallback.Name,
		Confidence:      domain.ConfidenceLow,
		Calculation:     fmt.Sprintf(CalculationFallbackFormat, e.fallback.Label, e.fallback.Factor),
	}
}

func (e *Estimator) result(c Category, conf domain.Confidence, format, keyword, field string) Estimate {
	return Estimate{
		CarbonFootprint: c.Factor,
		Category:        c.Name,
		Confidence:      conf,
		Calculation:     fmt.Sprintf(format, c.Label, c.Factor, keyword, field),
	}
}

// match returns the category whose keyword found in tokens has the most
// words. Ties go to the earlier row.
func (e *Estimator) match(tokens []string, prefix bool) (Category, string, bool) {
	var best Category
	var bestKeyword []string
	for _, c := range e.categories {
		for _, kw := range c.keywords {
			if len(kw) <= len(bestKeyword) {
				continue
			}
			if containsSequence(tokens, kw, prefix) {
				best, bestKeyword = c.Category, kw
			}
		}
	}
	if bestKeyword == nil {
		return Category{}, "", false
	}
	return best, strings.Join(bestKeyword, " "), true
}

// containsSequence reports whether kw appears as consecutive tokens. In prefix
// mode the last keyword word may match the start of a longer token.
func containsSequence(tokens, kw []string, prefix bool) bool {
	if len(kw) == 0 || len(kw) > len(tokens) {
		return false
	}
	for i := 0; i+len(kw) <= len(tokens); i++ {
		matched := true
		for j, word := range kw {
			tok := tokens[i+j]
			if tok == word {
				continue
			}
			last := j == len(kw)-1
			if prefix && last && len(word) >= MinPrefixKeywordLength && strings.HasPrefix(tok, word) {
				continue
			}
			matched = false
			break
		}
		if matched {
			return true
		}
	}
	return false
}
