package recipe

import "github.com/hammamikhairi/recipebox/internal/domain"

// Seed appends the built-in sample recipes and returns how many were added.
func (c *Collection) Seed() int {
	recipes := []*domain.Recipe{
		tomatoSoup(),
		chocolateMousse(),
	}
	for _, r := range recipes {
		c.Append(r)
	}
	c.log.Debug("seeded %d recipes", len(recipes))
	return len(recipes)
}

func tomatoSoup() *domain.Recipe {
	return &domain.Recipe{
		Name:        "Tomato Soup",
		Course:      domain.CourseAppetizer,
		ServingSize: 4,
		Ingredients: []domain.Ingredient{
			{Name: "Tomatoes", Quantity: 800, Unit: "grams"},
			{Name: "Onion", Quantity: 1, Unit: "whole"},
			{Name: "Garlic", Quantity: 2, Unit: "cloves"},
			{Name: "Vegetable stock", Quantity: 0.5, Unit: "litres"},
			{Name: "Olive oil", Quantity: 2, Unit: "tbsp"},
			{Name: "Salt", Quantity: 1, Unit: "tsp"},
		},
		Instructions: []string{
			"Chop the onion and garlic",
			"Soften them in the olive oil over a medium heat",
			"Add the tomatoes and stock and simmer for 20 minutes",
			"Blend until smooth and season with salt",
		},
		Images: []string{},
	}
}

func chocolateMousse() *domain.Recipe {
	return &domain.Recipe{
		Name:        "Chocolate Mousse",
		Course:      domain.CourseDessert,
		ServingSize: 6,
		Ingredients: []domain.Ingredient{
			{Name: "Dark chocolate", Quantity: 200, Unit: "grams"},
			{Name: "Eggs", Quantity: 6, Unit: "whole"},
			{Name: "Sugar", Quantity: 50, Unit: "grams"},
		},
		Instructions: []string{
			"Melt the chocolate over a bain-marie and let it cool",
			"Separate the eggs and whisk the whites with the sugar to stiff peaks",
			"Stir the yolks into the chocolate",
			"Fold in the whites and chill for at least 4 hours",
		},
		Images: []string{},
	}
}
