package food

// seedFoods is the built-in reference catalog. Values are per typical serving
// (100 g or 100 ml unless the name says otherwise).
var seedFoods = []FoodItem{
	// Grains
	{FoodName: "White Rice (Cooked)", Category: CategoryGrain, EnergyKcal: 130, CarbohydrateG: 28, SugarG: 0.1, ProteinG: 2.7, FatG: 0.3, SodiumMg: 1, PotassiumMg: 35, PhosphorusMg: 43, GIIndex: 73},
	{FoodName: "Brown Rice (Cooked)", Category: CategoryGrain, EnergyKcal: 110, CarbohydrateG: 23, SugarG: 0.4, ProteinG: 2.6, FatG: 0.9, SodiumMg: 2, PotassiumMg: 84, PhosphorusMg: 102, GIIndex: 68, Note: "High phosphorus content"},
	{FoodName: "Multigrain Bread", Category: CategoryGrain, EnergyKcal: 265, CarbohydrateG: 43, SugarG: 6, ProteinG: 13, FatG: 4, SodiumMg: 400, PotassiumMg: 230, PhosphorusMg: 180, GIIndex: 55, Note: "Watch for sodium and phosphorus"},
	{FoodName: "Sweet Potato (Steamed)", Category: CategoryGrain, EnergyKcal: 128, CarbohydrateG: 30, SugarG: 6, ProteinG: 1.5, FatG: 0.2, SodiumMg: 10, PotassiumMg: 380, PhosphorusMg: 50, GIIndex: 61, Note: "High Potassium!"},
	{FoodName: "Potato (Boiled)", Category: CategoryGrain, EnergyKcal: 77, CarbohydrateG: 17, SugarG: 0.8, ProteinG: 2, FatG: 0.1, SodiumMg: 6, PotassiumMg: 421, PhosphorusMg: 57, GIIndex: 78, Note: "Very High Potassium"},

	// Vegetables
	{FoodName: "Spinach (Raw)", Category: CategoryVegetable, EnergyKcal: 23, CarbohydrateG: 3.6, SugarG: 0.4, ProteinG: 2.9, FatG: 0.4, SodiumMg: 79, PotassiumMg: 558, PhosphorusMg: 49, GIIndex: 15, Note: "Extreme Potassium Caution"},
	{FoodName: "Cucumber", Category: CategoryVegetable, EnergyKcal: 15, CarbohydrateG: 3.6, SugarG: 1.7, ProteinG: 0.7, FatG: 0.1, SodiumMg: 2, PotassiumMg: 147, PhosphorusMg: 24, GIIndex: 15, Note: "Good low-potassium choice"},
	{FoodName: "Carrot (Raw)", Category: CategoryVegetable, EnergyKcal: 41, CarbohydrateG: 10, SugarG: 4.7, ProteinG: 0.9, FatG: 0.2, SodiumMg: 69, PotassiumMg: 320, PhosphorusMg: 35, GIIndex: 35, Note: "Moderate Potassium"},
	{FoodName: "Cabbage (Boiled)", Category: CategoryVegetable, EnergyKcal: 23, CarbohydrateG: 5.5, SugarG: 2.8, ProteinG: 1.3, FatG: 0.1, SodiumMg: 10, PotassiumMg: 150, PhosphorusMg: 25, GIIndex: 15, Note: "Leaching reduces potassium"},
	{FoodName: "Tomato", Category: CategoryVegetable, EnergyKcal: 18, CarbohydrateG: 3.9, SugarG: 2.6, ProteinG: 0.9, FatG: 0.2, SodiumMg: 5, PotassiumMg: 237, PhosphorusMg: 24, GIIndex: 15, Note: "Moderate-High Potassium"},
	{FoodName: "Broccoli (Boiled)", Category: CategoryVegetable, EnergyKcal: 35, CarbohydrateG: 7.2, SugarG: 1.4, ProteinG: 2.4, FatG: 0.4, SodiumMg: 41, PotassiumMg: 293, PhosphorusMg: 66, GIIndex: 15},
	{FoodName: "Lettuce", Category: CategoryVegetable, EnergyKcal: 15, CarbohydrateG: 2.9, SugarG: 0.8, ProteinG: 1.4, FatG: 0.2, SodiumMg: 28, PotassiumMg: 194, PhosphorusMg: 29, GIIndex: 15},
	{FoodName: "Mushroom (Shiitake)", Category: CategoryVegetable, EnergyKcal: 34, CarbohydrateG: 6.8, SugarG: 2.4, ProteinG: 2.2, FatG: 0.5, SodiumMg: 9, PotassiumMg: 304, PhosphorusMg: 112, GIIndex: 15, Note: "High Phosphorus/Potassium"},

	// Fruits
	{FoodName: "Banana", Category: CategoryFruit, EnergyKcal: 89, CarbohydrateG: 23, SugarG: 12, ProteinG: 1.1, FatG: 0.3, SodiumMg: 1, PotassiumMg: 358, PhosphorusMg: 22, GIIndex: 51, Note: "High Potassium"},
	{FoodName: "Apple (w/ skin)", Category: CategoryFruit, EnergyKcal: 52, CarbohydrateG: 14, SugarG: 10, ProteinG: 0.3, FatG: 0.2, SodiumMg: 1, PotassiumMg: 107, PhosphorusMg: 11, GIIndex: 36, Note: "Low Potassium choice"},
	{FoodName: "Grapes", Category: CategoryFruit, EnergyKcal: 69, CarbohydrateG: 18, SugarG: 15, ProteinG: 0.7, FatG: 0.2, SodiumMg: 2, PotassiumMg: 191, PhosphorusMg: 20, GIIndex: 59},
	{FoodName: "Watermelon", Category: CategoryFruit, EnergyKcal: 30, CarbohydrateG: 8, SugarG: 6, ProteinG: 0.6, FatG: 0.2, SodiumMg: 1, PotassiumMg: 112, PhosphorusMg: 11, GIIndex: 72, Note: "High GI but low K load per volume"},
	{FoodName: "Orange", Category: CategoryFruit, EnergyKcal: 47, CarbohydrateG: 12, SugarG: 9, ProteinG: 0.9, FatG: 0.1, SodiumMg: 0, PotassiumMg: 181, PhosphorusMg: 14, GIIndex: 43, Note: "Moderate Potassium"},
	{FoodName: "Strawberry", Category: CategoryFruit, EnergyKcal: 32, CarbohydrateG: 7.7, SugarG: 4.9, ProteinG: 0.7, FatG: 0.3, SodiumMg: 1, PotassiumMg: 153, PhosphorusMg: 24, GIIndex: 40, Note: "Low GI, Low K"},
	{FoodName: "Kiwi", Category: CategoryFruit, EnergyKcal: 61, CarbohydrateG: 15, SugarG: 9, ProteinG: 1.1, FatG: 0.5, SodiumMg: 3, PotassiumMg: 312, PhosphorusMg: 34, GIIndex: 50, Note: "High Potassium"},

	// Protein foods
	{FoodName: "Chicken Breast (Boiled)", Category: CategoryProtein, EnergyKcal: 165, CarbohydrateG: 0, SugarG: 0, ProteinG: 31, FatG: 3.6, SodiumMg: 74, PotassiumMg: 256, PhosphorusMg: 228, GIIndex: 0, Note: "High Phosphorus source"},
	{FoodName: "Pork Belly (Grilled)", Category: CategoryProtein, EnergyKcal: 518, CarbohydrateG: 0, SugarG: 0, ProteinG: 9, FatG: 53, SodiumMg: 32, PotassiumMg: 185, PhosphorusMg: 130, GIIndex: 0, Note: "High Fat"},
	{FoodName: "Tofu", Category: CategoryProtein, EnergyKcal: 76, CarbohydrateG: 1.9, SugarG: 0.6, ProteinG: 8, FatG: 4.8, SodiumMg: 7, PotassiumMg: 121, PhosphorusMg: 97, GIIndex: 15, Note: "Plant protein - generally safe"},
	{FoodName: "Egg (Whole, Boiled)", Category: CategoryProtein, EnergyKcal: 155, CarbohydrateG: 1.1, SugarG: 1.1, ProteinG: 13, FatG: 11, SodiumMg: 124, PotassiumMg: 126, PhosphorusMg: 198, GIIndex: 0, Note: "Yolk has phosphorus"},
	{FoodName: "Mackerel (Grilled)", Category: CategoryProtein, EnergyKcal: 205, CarbohydrateG: 0, SugarG: 0, ProteinG: 19, FatG: 14, SodiumMg: 90, PotassiumMg: 314, PhosphorusMg: 217, GIIndex: 0, Note: "Omega-3, but watch P/K"},
	{FoodName: "Beef (Lean)", Category: CategoryProtein, EnergyKcal: 250, CarbohydrateG: 0, SugarG: 0, ProteinG: 26, FatG: 15, SodiumMg: 72, PotassiumMg: 318, PhosphorusMg: 215, GIIndex: 0, Note: "High Phosphorus"},
	{FoodName: "Milk (Low Fat)", Category: CategoryProtein, EnergyKcal: 42, CarbohydrateG: 5, SugarG: 5, ProteinG: 3.4, FatG: 1, SodiumMg: 44, PotassiumMg: 150, PhosphorusMg: 93, GIIndex: 27, Note: "Liquid phosphorus source"},

	// Processed
	{FoodName: "Ramyeon (Instant Noodles)", Category: CategoryProcessed, EnergyKcal: 450, CarbohydrateG: 65, SugarG: 4, ProteinG: 10, FatG: 17, SodiumMg: 1700, PotassiumMg: 150, PhosphorusMg: 120, GIIndex: 73, Note: "EXTREME Sodium Warning"},
	{FoodName: "Coke (Cola)", Category: CategoryProcessed, EnergyKcal: 38, CarbohydrateG: 10.6, SugarG: 10.6, ProteinG: 0, FatG: 0, SodiumMg: 4, PotassiumMg: 0, PhosphorusMg: 15, GIIndex: 60, Note: "High Sugar, Phosphorus additive"},
	{FoodName: "Potato Chips", Category: CategoryProcessed, EnergyKcal: 536, CarbohydrateG: 53, SugarG: 0.2, ProteinG: 7, FatG: 35, SodiumMg: 525, PotassiumMg: 1275, PhosphorusMg: 164, GIIndex: 70, Note: "Very High Potassium & Sodium"},

	// Additional everyday items
	{FoodName: "Oatmeal (Cooked)", Category: CategoryGrain, EnergyKcal: 71, CarbohydrateG: 12, SugarG: 0.3, ProteinG: 2.5, FatG: 1.5, SodiumMg: 49, PotassiumMg: 70, PhosphorusMg: 77, GIIndex: 55, Note: "Whole grain, moderate phosphorus"},
	{FoodName: "White Bread", Category: CategoryGrain, EnergyKcal: 265, CarbohydrateG: 49, SugarG: 5, ProteinG: 9, FatG: 3.2, SodiumMg: 490, PotassiumMg: 115, PhosphorusMg: 100, GIIndex: 75, Note: "Refined grain, notable sodium"},
	{FoodName: "Cauliflower (Boiled)", Category: CategoryVegetable, EnergyKcal: 23, CarbohydrateG: 4.1, SugarG: 2.1, ProteinG: 1.8, FatG: 0.5, SodiumMg: 15, PotassiumMg: 142, PhosphorusMg: 32, GIIndex: 15, Note: "Kidney-friendly vegetable"},
	{FoodName: "Red Bell Pepper", Category: CategoryVegetable, EnergyKcal: 31, CarbohydrateG: 6, SugarG: 4.2, ProteinG: 1, FatG: 0.3, SodiumMg: 4, PotassiumMg: 211, PhosphorusMg: 26, GIIndex: 15},
	{FoodName: "Blueberries", Category: CategoryFruit, EnergyKcal: 57, CarbohydrateG: 14.5, SugarG: 10, ProteinG: 0.7, FatG: 0.3, SodiumMg: 1, PotassiumMg: 77, PhosphorusMg: 12, GIIndex: 53, Note: "Low potassium berry"},
	{FoodName: "Pineapple", Category: CategoryFruit, EnergyKcal: 50, CarbohydrateG: 13, SugarG: 10, ProteinG: 0.5, FatG: 0.1, SodiumMg: 1, PotassiumMg: 109, PhosphorusMg: 8, GIIndex: 59},
	{FoodName: "Salmon (Baked)", Category: CategoryProtein, EnergyKcal: 206, CarbohydrateG: 0, SugarG: 0, ProteinG: 22, FatG: 12, SodiumMg: 61, PotassiumMg: 384, PhosphorusMg: 252, GIIndex: 0, Note: "High Potassium and Phosphorus"},
	{FoodName: "Cheddar Cheese", Category: CategoryProtein, EnergyKcal: 403, CarbohydrateG: 1.3, SugarG: 0.5, ProteinG: 25, FatG: 33, SodiumMg: 621, PotassiumMg: 98, PhosphorusMg: 512, GIIndex: 0, Note: "Very High Phosphorus"},
	{FoodName: "Ham (Sliced)", Category: CategoryProcessed, EnergyKcal: 145, CarbohydrateG: 1.5, SugarG: 1.1, ProteinG: 21, FatG: 5.5, SodiumMg: 1200, PotassiumMg: 287, PhosphorusMg: 153, GIIndex: 0, Note: "Cured meat, very high sodium"},
	{FoodName: "Milk Chocolate Bar", Category: CategoryProcessed, EnergyKcal: 535, CarbohydrateG: 59, SugarG: 52, ProteinG: 7.6, FatG: 30, SodiumMg: 79, PotassiumMg: 372, PhosphorusMg: 206, GIIndex: 40, Note: "High sugar and potassium"},
}
