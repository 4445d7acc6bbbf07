package food

import "strings"

// Category classifies a food item into one of the fixed groups used by
// the analysis prompt and the catalog.
type Category string

const (
	CategoryFruit     Category = "fruit"
	CategoryVegetable Category = "vegetable"
	CategoryGrain     Category = "grain"
	CategoryProtein   Category = "protein"
	CategoryDairy     Category = "dairy"
	CategoryProcessed Category = "processed"
	CategoryBeverage  Category = "beverage"
	CategoryOther     Category = "other"
)

// Recommendation is the diabetic-suitability verdict for a food.
type Recommendation string

const (
	RecommendationGood     Recommendation = "good"
	RecommendationModerate Recommendation = "moderate"
	RecommendationLimit    Recommendation = "limit"
)

// Source records where a food record came from, so callers can tell a
// catalog-verified entry apart from a model-derived one.
type Source string

const (
	// SourceCatalog marks a pre-vetted entry from the static catalog.
	SourceCatalog Source = "catalog"
	// SourceAnalysis marks a record parsed from well-formed model JSON.
	SourceAnalysis Source = "analysis"
	// SourceExtracted marks a low-confidence record recovered from
	// free text after JSON parsing failed.
	SourceExtracted Source = "extracted"
)

// Record is the canonical nutrition + recommendation entity.
// All nutrition quantities are normalized per 100 g.
type Record struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	// GlycemicIndex ranges 0-100. Zero doubles as "not applicable"
	// for pure protein/fat foods; see HasGI.
	GlycemicIndex float64 `json:"giIndex"`

	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Calories float64 `json:"calories"`

	Recommendation Recommendation `json:"diabeticRecommendation"`
	Reasoning      string         `json:"reasoning"`
	Tips           string         `json:"tips"`

	Source Source `json:"source,omitempty"`
}

const (
	defaultReasoning = "No reasoning provided"
	defaultTips      = "No tips provided"
)

// Sanitize coerces the record into a valid state: negative quantities
// become 0, unknown enums fall back to their defaults, and empty free
// text gets a placeholder. External input must pass through here before
// the record is handed to callers.
func (r *Record) Sanitize() {
	r.GlycemicIndex = clampNonNegative(r.GlycemicIndex)
	r.Carbs = clampNonNegative(r.Carbs)
	r.Fiber = clampNonNegative(r.Fiber)
	r.Protein = clampNonNegative(r.Protein)
	r.Fat = clampNonNegative(r.Fat)
	r.Sugar = clampNonNegative(r.Sugar)
	r.Calories = clampNonNegative(r.Calories)

	r.Category = NormalizeCategory(string(r.Category))
	r.Recommendation = NormalizeRecommendation(string(r.Recommendation))

	if r.Name == "" {
		r.Name = "Unknown Food"
	}
	if r.Reasoning == "" {
		r.Reasoning = defaultReasoning
	}
	if r.Tips == "" {
		r.Tips = defaultTips
	}
}

// HasGI reports whether the glycemic index carries meaning. A zero GI on
// a food with no carbs means "not applicable" rather than a measured 0.
func (r *Record) HasGI() bool {
	return r.GlycemicIndex > 0 || r.Carbs > 0
}

// NormalizeCategory maps free-form category text onto the enum,
// defaulting to "other".
func NormalizeCategory(s string) Category {
	switch Category(lower(s)) {
	case CategoryFruit, CategoryVegetable, CategoryGrain, CategoryProtein,
		CategoryDairy, CategoryProcessed, CategoryBeverage:
		return Category(lower(s))
	default:
		return CategoryOther
	}
}

// NormalizeRecommendation maps free-form verdict text onto the enum,
// defaulting to "moderate".
func NormalizeRecommendation(s string) Recommendation {
	switch Recommendation(lower(s)) {
	case RecommendationGood, RecommendationLimit:
		return Recommendation(lower(s))
	default:
		return RecommendationModerate
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampNonNegative(v float64) float64 {
	if v < 0 || v != v { // v != v filters NaN
		return 0
	}
	return v
}
