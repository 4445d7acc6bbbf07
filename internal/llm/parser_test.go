package llm

import (
	"strings"
	"testing"

	"glycoscan/internal/food"
)

func TestParseRecordFencedJSON(t *testing.T) {
	raw := " ```json\n{\"name\":\"Pear\",\"category\":\"fruit\",\"giIndex\":38,\"carbs\":15,\"fiber\":3,\"protein\":0.4,\"fat\":0.2,\"sugar\":10,\"calories\":57,\"diabeticRecommendation\":\"good\",\"reasoning\":\"Low GI fruit.\",\"tips\":\"Eat whole.\"}\n```"

	rec := ParseRecord(raw)

	if rec.Name != "Pear" {
		t.Fatalf("expected name Pear, got %q", rec.Name)
	}
	if rec.GlycemicIndex != 38 {
		t.Errorf("expected giIndex 38, got %v", rec.GlycemicIndex)
	}
	if rec.Category != food.CategoryFruit {
		t.Errorf("expected category fruit, got %q", rec.Category)
	}
	if rec.Recommendation != food.RecommendationGood {
		t.Errorf("expected recommendation good, got %q", rec.Recommendation)
	}
	if rec.Source != food.SourceAnalysis {
		t.Errorf("expected source analysis, got %q", rec.Source)
	}
}

func TestParseRecordUnfencedJSON(t *testing.T) {
	raw := `{"name":"Mango","category":"fruit","giIndex":51}`

	rec := ParseRecord(raw)

	if rec.Name != "Mango" || rec.GlycemicIndex != 51 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseRecordNumericCoercion(t *testing.T) {
	raw := `{"name":"Mystery","carbs":"12.5","fiber":null,"protein":"not a number","fat":-3,"giIndex":"44"}`

	rec := ParseRecord(raw)

	if rec.Carbs != 12.5 {
		t.Errorf("expected carbs 12.5 from numeric string, got %v", rec.Carbs)
	}
	if rec.Fiber != 0 {
		t.Errorf("expected fiber 0 for null, got %v", rec.Fiber)
	}
	if rec.Protein != 0 {
		t.Errorf("expected protein 0 for non-numeric, got %v", rec.Protein)
	}
	if rec.Fat != 0 {
		t.Errorf("expected fat clamped to 0, got %v", rec.Fat)
	}
	if rec.GlycemicIndex != 44 {
		t.Errorf("expected giIndex 44 from numeric string, got %v", rec.GlycemicIndex)
	}
}

func TestParseRecordDefaulting(t *testing.T) {
	raw := `{"name":"Tofu"}`

	rec := ParseRecord(raw)

	if rec.Category != food.CategoryOther {
		t.Errorf("expected category default other, got %q", rec.Category)
	}
	if rec.Recommendation != food.RecommendationModerate {
		t.Errorf("expected recommendation default moderate, got %q", rec.Recommendation)
	}
	if rec.Reasoning != "No reasoning provided" {
		t.Errorf("expected reasoning placeholder, got %q", rec.Reasoning)
	}
	if rec.Tips != "No tips provided" {
		t.Errorf("expected tips placeholder, got %q", rec.Tips)
	}
}

func TestParseRecordProseFallback(t *testing.T) {
	raw := "I could not produce JSON. The food item in the image is a banana.\n" +
		"Its glycemic index is around 51.\n" +
		"Carbohydrates: 23 g per 100g.\n" +
		"recommendation: moderate for diabetics."

	rec := ParseRecord(raw)

	if rec == nil {
		t.Fatal("expected a record from prose fallback, got nil")
	}
	if rec.Source != food.SourceExtracted {
		t.Errorf("expected source extracted, got %q", rec.Source)
	}
	if rec.GlycemicIndex != 51 {
		t.Errorf("expected giIndex 51 from prose, got %v", rec.GlycemicIndex)
	}
	if rec.Carbs != 23 {
		t.Errorf("expected carbs 23 from prose, got %v", rec.Carbs)
	}
	if rec.Recommendation != food.RecommendationModerate {
		t.Errorf("expected recommendation moderate, got %q", rec.Recommendation)
	}
	if rec.Name == "" {
		t.Error("expected a non-empty name")
	}
}

func TestParseRecordPlaceholder(t *testing.T) {
	raw := "@@@@ ???? ####"

	rec := ParseRecord(raw)

	if rec.Name != "Unidentified Food" {
		t.Errorf("expected placeholder name, got %q", rec.Name)
	}
	if !strings.Contains(rec.Reasoning, "@@@@") {
		t.Errorf("expected reasoning to embed the raw reply, got %q", rec.Reasoning)
	}
	if rec.Source != food.SourceExtracted {
		t.Errorf("expected source extracted, got %q", rec.Source)
	}
}

func TestParseRecordPlaceholderTruncatesLongReply(t *testing.T) {
	raw := strings.Repeat("?", 5000)

	rec := ParseRecord(raw)

	if len(rec.Reasoning) > 300 {
		t.Errorf("expected truncated reasoning, got %d chars", len(rec.Reasoning))
	}
}
