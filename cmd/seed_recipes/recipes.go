package main

import "github.com/recipecatalog/backend/internal/model"

func sampleRecipes() []*model.Recipe {
	return []*model.Recipe{
		{
			Title:       "Fluffy Pancakes",
			Description: "Weekend breakfast classic.",
			Ingredients: model.StringList{"2 cups flour", "2 eggs", "1.5 cups milk", "2 tbsp sugar", "1 tbsp baking powder"},
			Steps:       model.StringList{"Whisk dry ingredients", "Add eggs and milk", "Cook on a hot griddle until golden"},
			CookingTime: model.IntPtr(20),
			Difficulty:  model.DifficultyEasy,
			Category:    "Breakfast",
		},
		{
			Title:       "Tomato Basil Soup",
			Description: "Silky soup from canned tomatoes.",
			Ingredients: model.StringList{"800g canned tomatoes", "1 onion", "2 cloves garlic", "fresh basil", "500ml vegetable stock"},
			Steps:       model.StringList{"Soften onion and garlic", "Add tomatoes and stock, simmer 20 minutes", "Blend with basil"},
			CookingTime: model.IntPtr(35),
			Difficulty:  model.DifficultyEasy,
			Category:    "Lunch",
		},
		{
			Title:       "Chicken Stir-Fry",
			Ingredients: model.StringList{"2 chicken breasts", "1 bell pepper", "broccoli", "soy sauce", "ginger", "rice"},
			Steps:       model.StringList{"Cook rice", "Sear sliced chicken", "Stir-fry vegetables", "Toss with sauce"},
			CookingTime: model.IntPtr(25),
			Difficulty:  model.DifficultyMedium,
			Category:    "Dinner",
		},
		{
			Title:       "Beef Wellington",
			Description: "Showpiece roast wrapped in pastry.",
			Ingredients: model.StringList{"1kg beef fillet", "mushrooms", "prosciutto", "puff pastry", "egg yolk", "Dijon mustard"},
			Steps:       model.StringList{"Sear and chill the fillet", "Cook down the mushroom duxelles", "Wrap in prosciutto and pastry", "Bake until medium rare"},
			CookingTime: model.IntPtr(120),
			Difficulty:  model.DifficultyHard,
			Category:    "Dinner",
		},
		{
			Title:       "Guacamole",
			Ingredients: model.StringList{"3 avocados", "1 lime", "red onion", "cilantro", "salt"},
			Steps:       model.StringList{"Mash avocados", "Fold in the rest", "Season to taste"},
			CookingTime: model.IntPtr(10),
			Difficulty:  model.DifficultyEasy,
			Category:    "Snack",
		},
		{
			Title:       "Chocolate Lava Cake",
			Ingredients: model.StringList{"100g dark chocolate", "100g butter", "2 eggs", "2 egg yolks", "50g sugar", "2 tbsp flour"},
			Steps:       model.StringList{"Melt chocolate with butter", "Whisk eggs and sugar", "Fold together with flour", "Bake 12 minutes"},
			CookingTime: model.IntPtr(30),
			Difficulty:  model.DifficultyMedium,
			Category:    "Dessert",
		},
		{
			Title:       "Mango Lassi",
			Ingredients: model.StringList{"1 ripe mango", "1 cup yogurt", "1/2 cup milk", "cardamom"},
			Steps:       model.StringList{"Blend everything until smooth"},
			CookingTime: model.IntPtr(5),
			Difficulty:  model.DifficultyEasy,
			Category:    "Beverage",
		},
		{
			Title:       "Sourdough Bread",
			Description: "Needs an active starter; time depends on it.",
			Ingredients: model.StringList{"500g bread flour", "350g water", "100g starter", "10g salt"},
			Steps:       model.StringList{"Mix and autolyse", "Stretch and fold over four hours", "Shape and proof overnight", "Bake in a dutch oven"},
			Difficulty:  model.DifficultyHard,
			Category:    "Breakfast",
		},
	}
}
