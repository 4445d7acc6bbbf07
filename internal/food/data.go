package food

// builtinRecords is the pre-vetted catalog shipped with the app.
// Nutrition values are per 100 g.
var builtinRecords = []Record{
	{
		ID: "1", Name: "Apple", Category: CategoryFruit,
		GlycemicIndex: 36, Carbs: 14, Fiber: 2.4, Protein: 0.3, Fat: 0.2, Sugar: 10.4, Calories: 52,
		Recommendation: RecommendationGood,
		Reasoning:      "Apples have a low glycemic index (36) and are high in fiber, which helps slow down sugar absorption. While they contain natural sugars (10.4g per 100g), the fiber content helps prevent blood sugar spikes.",
		Tips:           "Eat with the skin on for maximum fiber. Pair with a protein like cheese or nut butter to further reduce blood sugar impact.",
	},
	{
		ID: "2", Name: "Banana", Category: CategoryFruit,
		GlycemicIndex: 51, Carbs: 23, Fiber: 2.6, Protein: 1.1, Fat: 0.3, Sugar: 12.2, Calories: 89,
		Recommendation: RecommendationModerate,
		Reasoning:      "Bananas have a medium glycemic index (51) and higher sugar content (12.2g per 100g). Riper bananas have more sugar and a higher GI impact.",
		Tips:           "Choose slightly underripe bananas with some green on the peel. Portion control is important - half a banana may be better than a whole one.",
	},
	{
		ID: "3", Name: "Broccoli", Category: CategoryVegetable,
		GlycemicIndex: 15, Carbs: 6.6, Fiber: 2.6, Protein: 2.8, Fat: 0.4, Sugar: 1.7, Calories: 34,
		Recommendation: RecommendationGood,
		Reasoning:      "Broccoli has a very low glycemic index (15), minimal sugar (1.7g per 100g), and is high in fiber and nutrients while being low in carbs. It's an excellent choice for blood sugar management.",
		Tips:           "Steam or roast instead of boiling to preserve nutrients. Add healthy fats like olive oil to increase nutrient absorption.",
	},
	{
		ID: "4", Name: "Brown Rice", Category: CategoryGrain,
		GlycemicIndex: 50, Carbs: 23, Fiber: 1.8, Protein: 2.6, Fat: 0.9, Sugar: 0.4, Calories: 112,
		Recommendation: RecommendationModerate,
		Reasoning:      "Brown rice has a medium glycemic index (50) but contains fiber and very little sugar (0.4g per 100g). The fiber helps slow digestion and blood sugar impact.",
		Tips:           "Keep portions to 1/3-1/2 cup cooked. Pair with proteins and non-starchy vegetables to create a balanced meal with less blood sugar impact.",
	},
	{
		ID: "5", Name: "White Bread", Category: CategoryGrain,
		GlycemicIndex: 75, Carbs: 49, Fiber: 2.7, Protein: 9, Fat: 3.2, Sugar: 5.1, Calories: 265,
		Recommendation: RecommendationLimit,
		Reasoning:      "White bread has a high glycemic index (75), contains added sugars (5.1g per 100g), and can cause rapid blood sugar spikes. It's low in fiber and nutrients compared to whole grain options.",
		Tips:           "Choose whole grain bread instead, which has more fiber. If you must have white bread, limit to a small portion and pair with protein and healthy fats.",
	},
	{
		ID: "6", Name: "Salmon", Category: CategoryProtein,
		GlycemicIndex: 0, Carbs: 0, Fiber: 0, Protein: 20, Fat: 13, Sugar: 0, Calories: 208,
		Recommendation: RecommendationGood,
		Reasoning:      "Salmon has no carbs, no sugar, and thus no glycemic impact. It's rich in protein and healthy omega-3 fats that may improve insulin sensitivity.",
		Tips:           "Aim for 2-3 servings of fatty fish like salmon per week. Bake, grill, or steam rather than frying.",
	},
	{
		ID: "7", Name: "Sweet Potato", Category: CategoryVegetable,
		GlycemicIndex: 44, Carbs: 20, Fiber: 3, Protein: 1.6, Fat: 0.1, Sugar: 4.2, Calories: 86,
		Recommendation: RecommendationModerate,
		Reasoning:      "Sweet potatoes have a medium glycemic index (44), moderate natural sugar content (4.2g per 100g), but are rich in fiber and nutrients. They're a better choice than regular potatoes for blood sugar management.",
		Tips:           "Keep portions moderate (half a medium sweet potato). Cooking and cooling creates resistant starch, which has less impact on blood sugar.",
	},
	{
		ID: "8", Name: "Soda", Category: CategoryBeverage,
		GlycemicIndex: 65, Carbs: 10.6, Fiber: 0, Protein: 0, Fat: 0, Sugar: 10.6, Calories: 41,
		Recommendation: RecommendationLimit,
		Reasoning:      "Soda contains high amounts of rapidly absorbed sugars (10.6g per 100g) with no nutritional value. It's essentially pure sugar water that can cause significant blood sugar spikes.",
		Tips:           "Avoid regular soda completely. Choose water, unsweetened tea, or sparkling water with a splash of lemon or lime instead.",
	},
	{
		ID: "9", Name: "Spinach", Category: CategoryVegetable,
		GlycemicIndex: 0, Carbs: 3.6, Fiber: 2.2, Protein: 2.9, Fat: 0.4, Sugar: 0.4, Calories: 23,
		Recommendation: RecommendationGood,
		Reasoning:      "Spinach has virtually no impact on blood sugar, negligible sugar content (0.4g per 100g), and is packed with nutrients and fiber. It's an excellent choice for diabetes management.",
		Tips:           "Eat raw in salads or lightly sautéed to preserve nutrients. Add to smoothies, omelets, and soups to increase vegetable intake.",
	},
	{
		ID: "10", Name: "Chicken Breast", Category: CategoryProtein,
		GlycemicIndex: 0, Carbs: 0, Fiber: 0, Protein: 31, Fat: 3.6, Sugar: 0, Calories: 165,
		Recommendation: RecommendationGood,
		Reasoning:      "Chicken breast has no carbs, no sugar, and thus no glycemic impact. It's high in protein which helps with satiety and doesn't affect blood sugar.",
		Tips:           "Remove skin to reduce saturated fat. Grill, bake, or poach instead of frying. Pair with non-starchy vegetables for a balanced meal.",
	},
	{
		ID: "11", Name: "Avocado", Category: CategoryFruit,
		GlycemicIndex: 15, Carbs: 8.5, Fiber: 6.7, Protein: 2, Fat: 15, Sugar: 0.7, Calories: 160,
		Recommendation: RecommendationGood,
		Reasoning:      "Avocados have a very low glycemic index (15), minimal sugar (0.7g per 100g), and are rich in healthy monounsaturated fats and fiber. They can help improve insulin sensitivity.",
		Tips:           "Add to salads, sandwiches, or enjoy with eggs. The healthy fats help slow digestion and reduce blood sugar impact of other foods.",
	},
	{
		ID: "12", Name: "Greek Yogurt (Plain)", Category: CategoryDairy,
		GlycemicIndex: 11, Carbs: 3.6, Fiber: 0, Protein: 10, Fat: 0.4, Sugar: 3.6, Calories: 59,
		Recommendation: RecommendationGood,
		Reasoning:      "Plain Greek yogurt has a low glycemic index (11), is high in protein with minimal carbs and moderate natural sugar (3.6g per 100g). The protein helps with blood sugar regulation.",
		Tips:           "Choose unsweetened varieties. Add berries, nuts, or a sprinkle of cinnamon for flavor without significantly impacting blood sugar.",
	},
	{
		ID: "13", Name: "Oatmeal", Category: CategoryGrain,
		GlycemicIndex: 55, Carbs: 12, Fiber: 2, Protein: 2.4, Fat: 1.4, Sugar: 0.5, Calories: 68,
		Recommendation: RecommendationModerate,
		Reasoning:      "Steel-cut and rolled oats have a medium glycemic index (55), very low sugar content (0.5g per 100g), but are high in soluble fiber, which helps regulate blood sugar. They're better than most breakfast cereals.",
		Tips:           "Choose steel-cut or rolled oats over instant varieties. Add protein (nuts, seeds) and healthy fat to slow digestion and reduce blood sugar impact.",
	},
	{
		ID: "14", Name: "Chocolate Cake", Category: CategoryProcessed,
		GlycemicIndex: 38, Carbs: 52, Fiber: 2, Protein: 5, Fat: 20, Sugar: 36.8, Calories: 371,
		Recommendation: RecommendationLimit,
		Reasoning:      "While chocolate cake may have a moderate glycemic index (38) due to fat content slowing absorption, it's very high in sugar (36.8g per 100g) and refined carbs with little nutritional value.",
		Tips:           "Save for special occasions in very small portions. Consider almond flour or coconut flour based cakes with less sugar as alternatives.",
	},
	{
		ID: "15", Name: "Lentils", Category: CategoryProtein,
		GlycemicIndex: 32, Carbs: 20, Fiber: 7.9, Protein: 9, Fat: 0.4, Sugar: 1.8, Calories: 116,
		Recommendation: RecommendationGood,
		Reasoning:      "Lentils have a low glycemic index (32), low sugar content (1.8g per 100g), and are high in fiber and plant protein. They can help improve blood sugar regulation and provide sustained energy.",
		Tips:           "Add to soups, salads, or use as a meat substitute. The combination of protein and fiber makes them excellent for blood sugar management.",
	},
	{
		ID: "16", Name: "Orange Juice", Category: CategoryBeverage,
		GlycemicIndex: 50, Carbs: 10.4, Fiber: 0.2, Protein: 0.7, Fat: 0.2, Sugar: 8.3, Calories: 45,
		Recommendation: RecommendationLimit,
		Reasoning:      "Orange juice has a medium glycemic index (50) but is high in natural sugars (8.3g per 100g) with minimal fiber. Without the fiber of whole fruit, these sugars are rapidly absorbed, causing blood sugar spikes.",
		Tips:           "Choose whole oranges instead of juice. If you must have juice, limit to a very small portion (4oz) and have with a meal containing protein and fat.",
	},
	{
		ID: "17", Name: "Quinoa", Category: CategoryGrain,
		GlycemicIndex: 53, Carbs: 21.3, Fiber: 2.8, Protein: 4.4, Fat: 1.9, Sugar: 0.9, Calories: 120,
		Recommendation: RecommendationModerate,
		Reasoning:      "Quinoa has a medium glycemic index (53), very low sugar content (0.9g per 100g), and provides complete protein and fiber. It's a better choice than many other grains for blood sugar management.",
		Tips:           "Keep portions to 1/2-3/4 cup cooked. Rinse well before cooking to remove bitter saponins. Pair with non-starchy vegetables and healthy fats.",
	},
	{
		ID: "18", Name: "Blueberries", Category: CategoryFruit,
		GlycemicIndex: 53, Carbs: 14.5, Fiber: 2.4, Protein: 0.7, Fat: 0.3, Sugar: 10, Calories: 57,
		Recommendation: RecommendationModerate,
		Reasoning:      "Blueberries have a medium glycemic index (53) and contain natural sugars (10g per 100g), but they're rich in fiber and antioxidants that may help improve insulin sensitivity.",
		Tips:           "Limit portion size to 1/2-3/4 cup. Pair with protein sources like Greek yogurt or nuts to reduce blood sugar impact.",
	},
	{
		ID: "19", Name: "Potato Chips", Category: CategoryProcessed,
		GlycemicIndex: 75, Carbs: 52.9, Fiber: 4.8, Protein: 7, Fat: 34.6, Sugar: 0.6, Calories: 547,
		Recommendation: RecommendationLimit,
		Reasoning:      "Potato chips have a high glycemic index (75), are high in refined carbs and unhealthy fats. While sugar content is low (0.6g per 100g), the refined carbs quickly convert to glucose in the bloodstream.",
		Tips:           "Avoid or limit severely. Try air-popped popcorn, roasted chickpeas, or vegetable chips made from kale or zucchini as alternatives.",
	},
	{
		ID: "20", Name: "Dark Chocolate (70%+ cocoa)", Category: CategoryProcessed,
		GlycemicIndex: 23, Carbs: 46, Fiber: 11, Protein: 7.8, Fat: 43, Sugar: 24, Calories: 598,
		Recommendation: RecommendationModerate,
		Reasoning:      "Dark chocolate (70%+ cocoa) has a low glycemic index (23) and contains antioxidants that may improve insulin sensitivity. However, it still contains sugar (24g per 100g) and is calorie-dense.",
		Tips:           "Limit to a small square (10-15g) of 70%+ cocoa dark chocolate. Enjoy after a meal rather than on an empty stomach to reduce blood sugar impact.",
	},
}
