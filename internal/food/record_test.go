package food

import "testing"

func TestSanitizeClampsAndDefaults(t *testing.T) {
	rec := Record{
		Name:          "Weird",
		Category:      "sweets",
		GlycemicIndex: -10,
		Carbs:         -1,
	}
	rec.Sanitize()

	if rec.GlycemicIndex != 0 || rec.Carbs != 0 {
		t.Errorf("expected negative values clamped to 0, got gi=%v carbs=%v", rec.GlycemicIndex, rec.Carbs)
	}
	if rec.Category != CategoryOther {
		t.Errorf("expected unknown category mapped to other, got %q", rec.Category)
	}
	if rec.Recommendation != RecommendationModerate {
		t.Errorf("expected missing verdict defaulted to moderate, got %q", rec.Recommendation)
	}
}

func TestHasGI(t *testing.T) {
	salmon := Record{GlycemicIndex: 0, Carbs: 0}
	if salmon.HasGI() {
		t.Error("zero GI with zero carbs means not applicable")
	}

	spinach := Record{GlycemicIndex: 0, Carbs: 3.6}
	if !spinach.HasGI() {
		t.Error("zero GI on a carb food is a measured value")
	}
}

func TestNormalizeRecommendation(t *testing.T) {
	if NormalizeRecommendation(" LIMIT ") != RecommendationLimit {
		t.Error("expected case-insensitive verdict mapping")
	}
	if NormalizeRecommendation("unknown") != RecommendationModerate {
		t.Error("expected unknown verdict defaulted to moderate")
	}
}
