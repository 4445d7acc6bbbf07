package llm

import "fmt"

const responseSchema = `Format your response as a clean JSON object with these exact fields:
{
  "name": "Food Name",
  "category": "fruit | vegetable | grain | protein | dairy | processed | beverage | other",
  "giIndex": number,
  "carbs": number,
  "fiber": number,
  "protein": number,
  "fat": number,
  "sugar": number,
  "calories": number,
  "diabeticRecommendation": "good/moderate/limit",
  "reasoning": "Detailed reasoning",
  "tips": "Specific tips"
}`

func buildImageAnalysisPrompt() string {
	return `You are a nutrition expert specializing in diabetes management. Analyze this food image in detail and provide comprehensive information:

1. IDENTIFICATION: What specific food item is shown in the image? Be precise.

2. CATEGORY: Classify it as: fruit, vegetable, grain, protein, dairy, processed, beverage, or other.

3. GLYCEMIC INDEX: Provide the estimated glycemic index (GI) value (0-100). If it's a protein or fat with no GI, use 0.

4. DETAILED NUTRITION (per 100g):
   - Carbohydrates (g)
   - Fiber (g)
   - Protein (g)
   - Fat (g)
   - Sugar (g)
   - Calories

5. DIABETIC RECOMMENDATION: Classify as "good", "moderate", or "limit" for people with diabetes.

6. REASONING: Provide a detailed explanation for your recommendation based on nutritional content.

7. TIPS: Offer specific advice for diabetics consuming this food.

IMPORTANT: If you can see a nutrition label in the image, use that data. Extract all visible nutrition information from the label.

` + responseSchema
}

func buildTextAnalysisPrompt(name string) string {
	return fmt.Sprintf(`You are a nutrition expert specializing in diabetes management. Analyze the food item %q in detail and provide comprehensive information:

1. CATEGORY: Classify it as: fruit, vegetable, grain, protein, dairy, processed, beverage, or other.

2. GLYCEMIC INDEX: Provide the estimated glycemic index (GI) value (0-100). If it's a protein or fat with no GI, use 0.

3. DETAILED NUTRITION (per 100g):
   - Carbohydrates (g)
   - Fiber (g)
   - Protein (g)
   - Fat (g)
   - Sugar (g)
   - Calories

4. DIABETIC RECOMMENDATION: Classify as "good", "moderate", or "limit" for people with diabetes.

5. REASONING: Provide a detailed explanation for your recommendation based on nutritional content.

6. TIPS: Offer specific advice for diabetics consuming this food.

Use %q as the "name" field in your response.

%s`, name, name, responseSchema)
}
