package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"glycoscan/internal/food"
)

// The model is asked for bare JSON but tends to wrap it in markdown
// fences, and sometimes answers in prose. Normalization runs three
// tiers: fenced/strict JSON parse, per-field regex extraction over the
// raw text, and finally a placeholder record carrying a prefix of the
// reply for diagnosability. Only the first tier is trusted; the others
// are marked low-confidence via the record source.

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	fencedRe     = regexp.MustCompile("(?s)```\\s*\\n(.*?)\\n\\s*```")

	nameKeyRe    = regexp.MustCompile(`(?i)name["\s:]+([^"]+)"`)
	namePhraseRe = regexp.MustCompile(`(?i)food item[^\n]+?is[^\n]+?([a-zA-Z\s]+)`)
	nameIdentRe  = regexp.MustCompile(`(?i)identified as[^\n]+?([a-zA-Z\s]+)`)

	categoryKeyRe   = regexp.MustCompile(`(?i)category["\s:]+([^"]+)"`)
	categoryProseRe = regexp.MustCompile(`(?i)category[^\n]+?([a-zA-Z]+)`)

	giKeyRe   = regexp.MustCompile(`(?i)giIndex["\s:]+(\d+)`)
	giProseRe = regexp.MustCompile(`(?i)glycemic index[^\n]+?(\d+)`)

	carbsKeyRe      = regexp.MustCompile(`(?i)carbs["\s:]+(\d+\.?\d*)`)
	carbsProseRe    = regexp.MustCompile(`(?i)carbohydrates[^\n]+?(\d+\.?\d*)`)
	fiberKeyRe      = regexp.MustCompile(`(?i)fiber["\s:]+(\d+\.?\d*)`)
	fiberProseRe    = regexp.MustCompile(`(?i)dietary fiber[^\n]+?(\d+\.?\d*)`)
	proteinKeyRe    = regexp.MustCompile(`(?i)protein["\s:]+(\d+\.?\d*)`)
	proteinProseRe  = regexp.MustCompile(`(?i)protein[^\n]+?(\d+\.?\d*)`)
	fatKeyRe        = regexp.MustCompile(`(?i)fat["\s:]+(\d+\.?\d*)`)
	fatProseRe      = regexp.MustCompile(`(?i)total fat[^\n]+?(\d+\.?\d*)`)
	sugarKeyRe      = regexp.MustCompile(`(?i)sugar["\s:]+(\d+\.?\d*)`)
	sugarProseRe    = regexp.MustCompile(`(?i)sugars[^\n]+?(\d+\.?\d*)`)
	caloriesKeyRe   = regexp.MustCompile(`(?i)calories["\s:]+(\d+\.?\d*)`)
	caloriesProseRe = regexp.MustCompile(`(?i)calories[^\n]+?(\d+\.?\d*)`)

	verdictKeyRe   = regexp.MustCompile(`(?i)diabeticRecommendation["\s:]+([^"]+)"`)
	verdictProseRe = regexp.MustCompile(`(?i)recommendation[^\n]+?(good|moderate|limit)`)

	reasoningKeyRe   = regexp.MustCompile(`(?i)reasoning["\s:]+([^"]+)"`)
	reasoningProseRe = regexp.MustCompile(`(?is)reasoning:(.*?)(?:tips:|$)`)
	tipsKeyRe        = regexp.MustCompile(`(?i)tips["\s:]+([^"]+)"`)
	tipsProseRe      = regexp.MustCompile(`(?is)tips:(.*)$`)
)

// ParseRecord normalizes a raw model reply into a food record. It never
// fails: a reply with no recoverable structure yields a placeholder.
func ParseRecord(raw string) *food.Record {
	if rec, ok := parseJSONRecord(extractCandidateJSON(raw)); ok {
		return rec
	}

	if rec, ok := extractRecordFromText(raw); ok {
		return rec
	}

	return placeholderRecord(raw)
}

// extractCandidateJSON pulls the content of a fenced code block
// (labeled or bare); absent any fence the whole reply is the candidate.
func extractCandidateJSON(raw string) string {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := fencedRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

func parseJSONRecord(candidate string) (*food.Record, bool) {
	candidate = strings.TrimSpace(candidate)
	candidate = strings.TrimPrefix(candidate, "```json")
	candidate = strings.TrimSuffix(candidate, "```")
	candidate = strings.TrimSpace(candidate)

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, false
	}

	rec := &food.Record{
		Name:           stringField(fields, "name"),
		Category:       food.Category(stringField(fields, "category")),
		GlycemicIndex:  numberField(fields, "giIndex"),
		Carbs:          numberField(fields, "carbs"),
		Fiber:          numberField(fields, "fiber"),
		Protein:        numberField(fields, "protein"),
		Fat:            numberField(fields, "fat"),
		Sugar:          numberField(fields, "sugar"),
		Calories:       numberField(fields, "calories"),
		Recommendation: food.Recommendation(stringField(fields, "diabeticRecommendation")),
		Reasoning:      stringField(fields, "reasoning"),
		Tips:           stringField(fields, "tips"),
		Source:         food.SourceAnalysis,
	}
	rec.Sanitize()
	return rec, true
}

// stringField returns the trimmed string value at key, or "" for
// anything that is not a string.
func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// numberField coerces the value at key to a non-negative float. Absent,
// null, or non-numeric input yields 0; numeric strings are accepted.
func numberField(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

// extractRecordFromText is the degrade path: independent per-field
// pattern matches over the raw prose. Returns false when nothing at all
// matched, so the caller can fall through to the placeholder.
func extractRecordFromText(raw string) (*food.Record, bool) {
	matched := 0

	capture := func(res ...*regexp.Regexp) string {
		for _, re := range res {
			if m := re.FindStringSubmatch(raw); m != nil {
				matched++
				return strings.TrimSpace(m[1])
			}
		}
		return ""
	}
	number := func(res ...*regexp.Regexp) float64 {
		s := capture(res...)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	}

	rec := &food.Record{
		Name:           capture(nameKeyRe, namePhraseRe, nameIdentRe),
		Category:       food.Category(capture(categoryKeyRe, categoryProseRe)),
		GlycemicIndex:  number(giKeyRe, giProseRe),
		Carbs:          number(carbsKeyRe, carbsProseRe),
		Fiber:          number(fiberKeyRe, fiberProseRe),
		Protein:        number(proteinKeyRe, proteinProseRe),
		Fat:            number(fatKeyRe, fatProseRe),
		Sugar:          number(sugarKeyRe, sugarProseRe),
		Calories:       number(caloriesKeyRe, caloriesProseRe),
		Recommendation: food.Recommendation(capture(verdictKeyRe, verdictProseRe)),
		Reasoning:      capture(reasoningKeyRe, reasoningProseRe),
		Tips:           capture(tipsKeyRe, tipsProseRe),
		Source:         food.SourceExtracted,
	}
	if matched == 0 {
		return nil, false
	}
	if rec.Name == "" {
		rec.Name = "Unidentified Food"
	}
	rec.Sanitize()
	return rec, true
}

// placeholderRecord is the last resort: nothing recoverable in the
// reply. The reasoning carries a truncated prefix of the raw text so
// the failure stays diagnosable.
func placeholderRecord(raw string) *food.Record {
	rec := &food.Record{
		Name:           "Unidentified Food",
		Category:       food.CategoryOther,
		Recommendation: food.RecommendationModerate,
		Reasoning:      "Could not analyze this food properly. The AI provided this response: " + truncate(raw, 200) + "...",
		Tips:           "Please try again with a clearer image or manually enter the food name.",
		Source:         food.SourceExtracted,
	}
	rec.Sanitize()
	return rec
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
