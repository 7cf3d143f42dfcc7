package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cinedelices/backend/config"
	"github.com/cinedelices/backend/internal/database"
	"github.com/cinedelices/backend/internal/models"
)

// Seeds the database with the demo catalog: two accounts, the category
// list, a set of films and series, and recipes inspired by them.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect database: %v", err)
	}
	if count > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}

func seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@cinedelices.com",
		PasswordHash: string(hashed),
		Username:     "admin",
		Role:         models.RoleAdmin,
	}
	chef := models.User{
		Email:        "user@cinedelices.com",
		PasswordHash: string(hashed),
		Username:     "ChefCinema",
		Role:         models.RoleUser,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&chef).Error; err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Appetizer", Description: "Dishes to start the meal"},
		{Name: "Main Course", Description: "Hearty main dishes"},
		{Name: "Dessert", Description: "Sweet treats to end the meal"},
		{Name: "Beverage", Description: "Cocktails and drinks inspired by cinema"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	categoryByName := map[string]*models.Category{}
	for i := range categories {
		categoryByName[categories[i].Name] = &categories[i]
	}

	media := []models.Media{
		{Title: "Ratatouille", Type: models.MediaTypeFilm, ReleaseYear: 2007, PosterURL: "https://image.tmdb.org/t/p/w500/npHNjldbeTHdKKw28bJKs7lzqzj.jpg"},
		{Title: "The Godfather", Type: models.MediaTypeFilm, ReleaseYear: 1972, PosterURL: "https://image.tmdb.org/t/p/w500/3bhkrj58Vtu7enYsRolD1fZdja1.jpg"},
		{Title: "Julie & Julia", Type: models.MediaTypeFilm, ReleaseYear: 2009, PosterURL: "https://image.tmdb.org/t/p/w500/lJxEZkvLCLwVdsMFBQFGFjQmqGx.jpg"},
		{Title: "Breaking Bad", Type: models.MediaTypeSerie, ReleaseYear: 2008, PosterURL: "https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg"},
		{Title: "Game of Thrones", Type: models.MediaTypeSerie, ReleaseYear: 2011, PosterURL: "https://image.tmdb.org/t/p/w500/u3bZgnGQ9T01sWNhyveQz0wH0Hl.jpg"},
		{Title: "Pulp Fiction", Type: models.MediaTypeFilm, ReleaseYear: 1994, PosterURL: "https://image.tmdb.org/t/p/w500/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg"},
		{Title: "Amélie", Type: models.MediaTypeFilm, ReleaseYear: 2001, PosterURL: "https://image.tmdb.org/t/p/w500/nSxDa3ppafARKLYnuX6PZvSdAq6.jpg"},
		{Title: "The Grand Budapest Hotel", Type: models.MediaTypeFilm, ReleaseYear: 2014, PosterURL: "https://image.tmdb.org/t/p/w500/eWdyYQreja6JGCzqHWXpWHDrrPo.jpg"},
	}
	if err := db.Create(&media).Error; err != nil {
		return err
	}
	mediaByTitle := map[string]*models.Media{}
	for i := range media {
		mediaByTitle[media[i].Title] = &media[i]
	}

	recipes := []models.Recipe{
		{
			Title:        "Chef Gusteau's Ratatouille",
			Description:  "The famous ratatouille from the Pixar film, reimagined as an elegant Provençal tian.",
			Ingredients:  "- 2 zucchinis\n- 2 eggplants\n- 4 tomatoes\n- 1 red bell pepper\n- Olive oil\n- Herbs de Provence",
			Instructions: "1. Preheat oven to 350°F (180°C).\n2. Cut vegetables into thin rounds.\n3. Arrange in alternating pattern in a baking dish.\n4. Bake for 45 minutes.",
			Anecdote:     "This dish allows Remy to win over the critic Anton Ego.",
			Difficulty:   models.DifficultyMedium,
			PrepTime:     30,
			CookTime:     45,
			ImageURL:     "https://images.unsplash.com/photo-1572453800999-e8d2d1589b7c?w=600&q=80",
			UserID:       admin.ID,
			CategoryID:   &categoryByName["Main Course"].ID,
			MediaID:      &mediaByTitle["Ratatouille"].ID,
		},
		{
			Title:        "Sicilian Cannoli from The Godfather",
			Description:  "The famous cannoli from the scene \"Leave the gun, take the cannoli.\"",
			Ingredients:  "- 250g flour\n- 500g ricotta\n- 150g powdered sugar\n- Chocolate chips",
			Instructions: "1. Prepare the dough.\n2. Fry the tubes.\n3. Fill with sweetened ricotta.\n4. Decorate.",
			Anecdote:     "Iconic line from The Godfather that became legendary.",
			Difficulty:   models.DifficultyHard,
			PrepTime:     60,
			CookTime:     30,
			ImageURL:     "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=600&q=80",
			UserID:       admin.ID,
			CategoryID:   &categoryByName["Dessert"].ID,
			MediaID:      &mediaByTitle["The Godfather"].ID,
		},
		{
			Title:        "Julia Child's Boeuf Bourguignon",
			Description:  "The French classic immortalized in Julie & Julia.",
			Ingredients:  "- 3 lbs beef chuck\n- 1 bottle red wine\n- 1 lb mushrooms\n- Bacon lardons",
			Instructions: "1. Sauté the bacon.\n2. Brown the beef.\n3. Add the wine.\n4. Cook for 3 hours.",
			Anecdote:     "Julia Child perfected this recipe over many years.",
			Difficulty:   models.DifficultyHard,
			PrepTime:     45,
			CookTime:     180,
			ImageURL:     "https://images.unsplash.com/photo-1534939561126-855b8675edd7?w=600&q=80",
			UserID:       chef.ID,
			CategoryID:   &categoryByName["Main Course"].ID,
			MediaID:      &mediaByTitle["Julie & Julia"].ID,
		},
		{
			Title:        "Los Pollos Hermanos Chicken",
			Description:  "Inspired by Gus Fring's restaurant in Breaking Bad.",
			Ingredients:  "- 1 whole chicken, cut up\n- 2 cups buttermilk\n- 2 cups flour\n- Secret spices",
			Instructions: "1. Marinate for 4 hours.\n2. Coat in seasoned flour.\n3. Fry for 15 minutes.\n4. Serve hot.",
			Anecdote:     "Los Pollos Hermanos actually exists at promotional events!",
			Difficulty:   models.DifficultyMedium,
			PrepTime:     30,
			CookTime:     20,
			ImageURL:     "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=600&q=80",
			UserID:       chef.ID,
			CategoryID:   &categoryByName["Main Course"].ID,
			MediaID:      &mediaByTitle["Breaking Bad"].ID,
		},
		{
			Title:        "Winterfell Pigeon Pie",
			Description:  "A royal dish worthy of the banquets of Westeros.",
			Ingredients:  "- 2 pigeons\n- 400g puff pastry\n- 200g foie gras\n- Wild mushrooms",
			Instructions: "1. Debone the pigeons.\n2. Wrap in pastry.\n3. Bake 25 min at 400°F (200°C).",
			Anecdote:     "The feasts of Game of Thrones are legendary.",
			Difficulty:   models.DifficultyHard,
			PrepTime:     45,
			CookTime:     25,
			ImageURL:     "https://images.unsplash.com/photo-1432139555190-58524dae6a55?w=600&q=80",
			UserID:       admin.ID,
			CategoryID:   &categoryByName["Main Course"].ID,
			MediaID:      &mediaByTitle["Game of Thrones"].ID,
		},
		{
			Title:        "The Big Kahuna Burger",
			Description:  "The famous burger from Pulp Fiction. \"That is a tasty burger!\"",
			Ingredients:  "- 1 lb ground beef\n- 4 brioche buns\n- American cheese\n- Bacon",
			Instructions: "1. Form the patties.\n2. Grill to perfection.\n3. Assemble with toppings.\n4. Serve with a milkshake.",
			Anecdote:     "Iconic scene with Samuel L. Jackson.",
			Difficulty:   models.DifficultyEasy,
			PrepTime:     15,
			CookTime:     10,
			ImageURL:     "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600&q=80",
			UserID:       chef.ID,
			CategoryID:   &categoryByName["Main Course"].ID,
			MediaID:      &mediaByTitle["Pulp Fiction"].ID,
		},
		{
			Title:        "Amélie's Crème Brûlée",
			Description:  "Amélie Poulain's favorite dessert.",
			Ingredients:  "- 2 cups heavy cream\n- 6 egg yolks\n- 1/2 cup sugar\n- Vanilla bean",
			Instructions: "1. Infuse the vanilla.\n2. Mix with egg yolks.\n3. Bake in a water bath.\n4. Caramelize with a torch.",
			Anecdote:     "Amélie loves cracking the caramelized top of her crème brûlée.",
			Difficulty:   models.DifficultyMedium,
			PrepTime:     20,
			CookTime:     45,
			ImageURL:     "https://images.unsplash.com/photo-1470324161839-ce2bb6fa6bc3?w=600&q=80",
			UserID:       admin.ID,
			CategoryID:   &categoryByName["Dessert"].ID,
			MediaID:      &mediaByTitle["Amélie"].ID,
		},
		{
			Title:        "Mendl's Courtesan au Chocolat",
			Description:  "The signature pastry from The Grand Budapest Hotel.",
			Ingredients:  "- Choux pastry\n- Pastry cream\n- Chocolate\n- Powdered sugar",
			Instructions: "1. Prepare the choux pastry.\n2. Form the éclairs.\n3. Bake and cool.\n4. Fill and glaze with chocolate.",
			Anecdote:     "Mendl's is Madame D.'s favorite pastry shop.",
			Difficulty:   models.DifficultyHard,
			PrepTime:     60,
			CookTime:     30,
			ImageURL:     "https://images.unsplash.com/photo-1587314168485-3236d6710814?w=600&q=80",
			UserID:       chef.ID,
			CategoryID:   &categoryByName["Dessert"].ID,
			MediaID:      &mediaByTitle["The Grand Budapest Hotel"].ID,
		},
	}
	return db.Create(&recipes).Error
}
