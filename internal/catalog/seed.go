package catalog

// seedItems is the built-in dataset used when no external catalog file is
// configured. Values are per typical serving, based on USDA survey data.
var seedItems = []FoodItem{
	// Proteins
	{ID: "chicken-breast", Name: "Chicken breast", Category: CategoryProtein, ServingSize: "120g grilled",
		PerServing: Nutrients{Calories: 198, ProteinG: 37.2, CarbsG: 0, FatG: 4.3, FiberG: 0, SugarG: 0, SodiumMg: 89, PotassiumMg: 307}},
	{ID: "salmon-fillet", Name: "Salmon fillet", Category: CategoryProtein, ServingSize: "120g baked",
		PerServing: Nutrients{Calories: 249, ProteinG: 24.6, CarbsG: 0, FatG: 16.2, FiberG: 0, SugarG: 0, SodiumMg: 70, PotassiumMg: 440}},
	{ID: "tuna-canned", Name: "Tuna, canned in water", Category: CategoryProtein, ServingSize: "100g drained",
		PerServing: Nutrients{Calories: 116, ProteinG: 25.5, CarbsG: 0, FatG: 0.8, FiberG: 0, SugarG: 0, SodiumMg: 247, IronMg: 1.6},
		Tags:       []Tag{TagHighSodium}},
	{ID: "eggs", Name: "Eggs", Category: CategoryProtein, ServingSize: "2 large",
		PerServing: Nutrients{Calories: 143, ProteinG: 12.6, CarbsG: 0.7, FatG: 9.5, FiberG: 0, SugarG: 0.4, SodiumMg: 142, IronMg: 1.8}},
	{ID: "greek-yogurt", Name: "Greek yogurt", Category: CategoryProtein, ServingSize: "170g plain",
		PerServing: Nutrients{Calories: 100, ProteinG: 17.3, CarbsG: 6.1, FatG: 0.7, FiberG: 0, SugarG: 5.5, SodiumMg: 61, CalciumMg: 187},
		Tags:       []Tag{TagContainsLactose}},
	{ID: "cottage-cheese", Name: "Cottage cheese", Category: CategoryProtein, ServingSize: "110g low-fat",
		PerServing: Nutrients{Calories: 81, ProteinG: 14, CarbsG: 3, FatG: 1.2, FiberG: 0, SugarG: 3, SodiumMg: 350, CalciumMg: 91},
		Tags:       []Tag{TagContainsLactose, TagHighSodium}},
	{ID: "tofu-firm", Name: "Tofu, firm", Category: CategoryProtein, ServingSize: "150g",
		PerServing: Nutrients{Calories: 108, ProteinG: 12.3, CarbsG: 2.6, FatG: 6.6, FiberG: 0.9, SugarG: 0.9, SodiumMg: 10, CalciumMg: 256, IronMg: 2.4}},
	{ID: "lentils-cooked", Name: "Lentils, cooked", Category: CategoryProtein, ServingSize: "200g",
		PerServing: Nutrients{Calories: 232, ProteinG: 18, CarbsG: 40, FatG: 0.8, FiberG: 15.6, SugarG: 3.6, SodiumMg: 4, IronMg: 6.6, PotassiumMg: 730}},
	{ID: "lean-beef", Name: "Lean beef sirloin", Category: CategoryProtein, ServingSize: "120g grilled",
		PerServing: Nutrients{Calories: 216, ProteinG: 31, CarbsG: 0, FatG: 9.6, FiberG: 0, SugarG: 0, SodiumMg: 66, IronMg: 3.1}},
	{ID: "whey-protein", Name: "Whey protein shake", Category: CategoryProtein, ServingSize: "1 scoop in water",
		PerServing: Nutrients{Calories: 120, ProteinG: 24, CarbsG: 3, FatG: 1.5, FiberG: 0, SugarG: 2, SodiumMg: 130, CalciumMg: 120},
		Tags:       []Tag{TagContainsLactose, TagProcessed}},

	// Carbs
	{ID: "brown-rice", Name: "Brown rice, cooked", Category: CategoryCarb, ServingSize: "195g",
		PerServing: Nutrients{Calories: 216, ProteinG: 5, CarbsG: 44.8, FatG: 1.8, FiberG: 3.5, SugarG: 0.7, SodiumMg: 10}},
	{ID: "quinoa-cooked", Name: "Quinoa, cooked", Category: CategoryCarb, ServingSize: "185g",
		PerServing: Nutrients{Calories: 222, ProteinG: 8.1, CarbsG: 39.4, FatG: 3.6, FiberG: 5.2, SugarG: 1.6, SodiumMg: 13, IronMg: 2.8}},
	{ID: "oats-rolled", Name: "Rolled oats", Category: CategoryCarb, ServingSize: "80g dry",
		PerServing: Nutrients{Calories: 303, ProteinG: 10.6, CarbsG: 54.8, FatG: 5.5, FiberG: 8.2, SugarG: 0.8, SodiumMg: 5, IronMg: 3.4},
		Tags:       []Tag{TagContainsGluten}},
	{ID: "sweet-potato", Name: "Sweet potato, baked", Category: CategoryCarb, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 103, ProteinG: 2.3, CarbsG: 23.6, FatG: 0.2, FiberG: 3.8, SugarG: 7.4, SodiumMg: 41, PotassiumMg: 542, VitaminCMg: 22}},
	{ID: "whole-wheat-bread", Name: "Whole wheat bread", Category: CategoryCarb, ServingSize: "2 slices",
		PerServing: Nutrients{Calories: 160, ProteinG: 8, CarbsG: 28, FatG: 2.4, FiberG: 4, SugarG: 3.4, SodiumMg: 292},
		Tags:       []Tag{TagContainsGluten, TagHighSodium}},
	{ID: "white-pasta", Name: "Pasta, cooked", Category: CategoryCarb, ServingSize: "140g",
		PerServing: Nutrients{Calories: 220, ProteinG: 8.1, CarbsG: 43, FatG: 1.3, FiberG: 2.5, SugarG: 0.8, SodiumMg: 1},
		Tags:       []Tag{TagContainsGluten}},
	{ID: "white-rice", Name: "White rice, cooked", Category: CategoryCarb, ServingSize: "186g",
		PerServing: Nutrients{Calories: 242, ProteinG: 4.4, CarbsG: 53.4, FatG: 0.4, FiberG: 0.6, SugarG: 0.1, SodiumMg: 0}},
	{ID: "potato-boiled", Name: "Potato, boiled", Category: CategoryCarb, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 161, ProteinG: 4.3, CarbsG: 36.6, FatG: 0.2, FiberG: 3.8, SugarG: 2, SodiumMg: 17, PotassiumMg: 926, VitaminCMg: 28}},

	// Vegetables
	{ID: "broccoli", Name: "Broccoli, steamed", Category: CategoryVegetable, ServingSize: "150g",
		PerServing: Nutrients{Calories: 52, ProteinG: 3.6, CarbsG: 10.5, FatG: 0.6, FiberG: 4.9, SugarG: 2.1, SodiumMg: 49, VitaminCMg: 97, CalciumMg: 60}},
	{ID: "spinach", Name: "Spinach, raw", Category: CategoryVegetable, ServingSize: "85g",
		PerServing: Nutrients{Calories: 20, ProteinG: 2.4, CarbsG: 3.1, FatG: 0.3, FiberG: 1.9, SugarG: 0.4, SodiumMg: 67, IronMg: 2.3, PotassiumMg: 474}},
	{ID: "kale", Name: "Kale, raw", Category: CategoryVegetable, ServingSize: "65g",
		PerServing: Nutrients{Calories: 32, ProteinG: 2.8, CarbsG: 5.7, FatG: 0.9, FiberG: 2.6, SugarG: 1.5, SodiumMg: 35, VitaminCMg: 60, CalciumMg: 164}},
	{ID: "bell-pepper", Name: "Bell pepper", Category: CategoryVegetable, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 31, ProteinG: 1.2, CarbsG: 7.2, FatG: 0.4, FiberG: 2.5, SugarG: 5, SodiumMg: 5, VitaminCMg: 152}},
	{ID: "carrots", Name: "Carrots, raw", Category: CategoryVegetable, ServingSize: "2 medium",
		PerServing: Nutrients{Calories: 50, ProteinG: 1.1, CarbsG: 11.7, FatG: 0.3, FiberG: 3.4, SugarG: 5.8, SodiumMg: 84, PotassiumMg: 390}},
	{ID: "tomatoes", Name: "Tomatoes", Category: CategoryVegetable, ServingSize: "2 medium",
		PerServing: Nutrients{Calories: 44, ProteinG: 2.2, CarbsG: 9.6, FatG: 0.5, FiberG: 3, SugarG: 6.5, SodiumMg: 12, VitaminCMg: 34, PotassiumMg: 584}},
	{ID: "mixed-salad", Name: "Mixed green salad", Category: CategoryVegetable, ServingSize: "150g",
		PerServing: Nutrients{Calories: 26, ProteinG: 1.9, CarbsG: 4.8, FatG: 0.3, FiberG: 2.7, SugarG: 1.8, SodiumMg: 33, VitaminCMg: 27}},

	// Fruits
	{ID: "banana", Name: "Banana", Category: CategoryFruit, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.4, FiberG: 3.1, SugarG: 14.4, SodiumMg: 1, PotassiumMg: 422}},
	{ID: "apple", Name: "Apple", Category: CategoryFruit, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 95, ProteinG: 0.5, CarbsG: 25.1, FatG: 0.3, FiberG: 4.4, SugarG: 18.9, SodiumMg: 2, VitaminCMg: 8},
		Tags:       []Tag{TagHighSugar}},
	{ID: "orange", Name: "Orange", Category: CategoryFruit, ServingSize: "1 medium",
		PerServing: Nutrients{Calories: 62, ProteinG: 1.2, CarbsG: 15.4, FatG: 0.2, FiberG: 3.1, SugarG: 12.2, SodiumMg: 0, VitaminCMg: 70, CalciumMg: 52},
		Tags:       []Tag{TagHighSugar}},
	{ID: "blueberries", Name: "Blueberries", Category: CategoryFruit, ServingSize: "150g",
		PerServing: Nutrients{Calories: 86, ProteinG: 1.1, CarbsG: 21.7, FatG: 0.5, FiberG: 3.6, SugarG: 14.9, SodiumMg: 2, VitaminCMg: 15},
		Tags:       []Tag{TagHighSugar}},
	{ID: "strawberries", Name: "Strawberries", Category: CategoryFruit, ServingSize: "150g",
		PerServing: Nutrients{Calories: 48, ProteinG: 1, CarbsG: 11.5, FatG: 0.5, FiberG: 3, SugarG: 7.3, SodiumMg: 2, VitaminCMg: 88}},
	{ID: "dates-dried", Name: "Dates, dried", Category: CategoryFruit, ServingSize: "4 dates",
		PerServing: Nutrients{Calories: 266, ProteinG: 1.8, CarbsG: 72, FatG: 0.4, FiberG: 6.4, SugarG: 64, SodiumMg: 2, PotassiumMg: 656},
		Tags:       []Tag{TagHighSugar}},

	// Fats
	{ID: "olive-oil", Name: "Olive oil", Category: CategoryFat, ServingSize: "1 tbsp",
		PerServing: Nutrients{Calories: 119, ProteinG: 0, CarbsG: 0, FatG: 13.5, FiberG: 0, SugarG: 0, SodiumMg: 0}},
	{ID: "almonds", Name: "Almonds", Category: CategoryFat, ServingSize: "28g",
		PerServing: Nutrients{Calories: 164, ProteinG: 6, CarbsG: 6.1, FatG: 14.2, FiberG: 3.5, SugarG: 1.2, SodiumMg: 0, CalciumMg: 76, IronMg: 1}},
	{ID: "walnuts", Name: "Walnuts", Category: CategoryFat, ServingSize: "28g",
		PerServing: Nutrients{Calories: 185, ProteinG: 4.3, CarbsG: 3.9, FatG: 18.5, FiberG: 1.9, SugarG: 0.7, SodiumMg: 1}},
	{ID: "avocado", Name: "Avocado", Category: CategoryFat, ServingSize: "half",
		PerServing: Nutrients{Calories: 161, ProteinG: 2, CarbsG: 8.6, FatG: 14.7, FiberG: 6.7, SugarG: 0.3, SodiumMg: 7, PotassiumMg: 487}},
	{ID: "chia-seeds", Name: "Chia seeds", Category: CategoryFat, ServingSize: "2 tbsp",
		PerServing: Nutrients{Calories: 138, ProteinG: 4.7, CarbsG: 11.9, FatG: 8.7, FiberG: 9.8, SugarG: 0, SodiumMg: 5, CalciumMg: 179}},
	{ID: "peanut-butter", Name: "Peanut butter", Category: CategoryFat, ServingSize: "2 tbsp",
		PerServing: Nutrients{Calories: 188, ProteinG: 8, CarbsG: 6.9, FatG: 16, FiberG: 1.9, SugarG: 2.6, SodiumMg: 152, PotassiumMg: 208},
		Tags:       []Tag{TagProcessed}},

	// Superfoods
	{ID: "green-tea", Name: "Green tea", Category: CategorySuperfood, ServingSize: "1 cup",
		PerServing: Nutrients{Calories: 2, ProteinG: 0.5, CarbsG: 0, FatG: 0, FiberG: 0, SugarG: 0, SodiumMg: 2}},
	{ID: "beetroot", Name: "Beetroot, cooked", Category: CategorySuperfood, ServingSize: "100g",
		PerServing: Nutrients{Calories: 44, ProteinG: 1.7, CarbsG: 10, FatG: 0.2, FiberG: 2, SugarG: 8, SodiumMg: 77, PotassiumMg: 305}},
	{ID: "tart-cherry-juice", Name: "Tart cherry juice", Category: CategorySuperfood, ServingSize: "240ml",
		PerServing: Nutrients{Calories: 119, ProteinG: 0.8, CarbsG: 28, FatG: 0.5, FiberG: 0, SugarG: 24, SodiumMg: 10, PotassiumMg: 410},
		Tags:       []Tag{TagHighSugar}},
	{ID: "dark-chocolate", Name: "Dark chocolate 85%", Category: CategorySuperfood, ServingSize: "20g",
		PerServing: Nutrients{Calories: 120, ProteinG: 2, CarbsG: 9.2, FatG: 8.6, FiberG: 2.2, SugarG: 3, SodiumMg: 4, IronMg: 2.4},
		Tags:       []Tag{TagProcessed}},

	// Other
	{ID: "whole-milk", Name: "Whole milk", Category: CategoryOther, ServingSize: "240ml",
		PerServing: Nutrients{Calories: 149, ProteinG: 7.7, CarbsG: 11.7, FatG: 7.9, FiberG: 0, SugarG: 12.3, SodiumMg: 105, CalciumMg: 276},
		Tags:       []Tag{TagContainsLactose, TagHighSugar}},
	{ID: "cheddar-cheese", Name: "Cheddar cheese", Category: CategoryOther, ServingSize: "28g",
		PerServing: Nutrients{Calories: 113, ProteinG: 6.4, CarbsG: 0.9, FatG: 9.3, FiberG: 0, SugarG: 0.1, SodiumMg: 180, CalciumMg: 200},
		Tags:       []Tag{TagContainsLactose, TagHighSodium}},
	{ID: "granola-bar", Name: "Granola bar", Category: CategoryOther, ServingSize: "1 bar",
		PerServing: Nutrients{Calories: 132, ProteinG: 2.9, CarbsG: 18, FatG: 5.6, FiberG: 1.4, SugarG: 7.2, SodiumMg: 82, IronMg: 0.8},
		Tags:       []Tag{TagContainsGluten, TagHighSugar, TagProcessed}},
	{ID: "hummus", Name: "Hummus", Category: CategoryOther, ServingSize: "60g",
		PerServing: Nutrients{Calories: 100, ProteinG: 4.7, CarbsG: 8.6, FatG: 5.8, FiberG: 3.6, SugarG: 0.2, SodiumMg: 228, IronMg: 1.5},
		Tags:       []Tag{TagHighSodium}},
}

// Default returns a catalog built from the embedded seed dataset.
// The seed is known-valid, so a construction failure is a programmer error.
func Default() *Catalog {
	c, err := New(seedItems)
	if err != nil {
		panic("catalog: invalid seed dataset: " + err.Error())
	}
	return c
}
