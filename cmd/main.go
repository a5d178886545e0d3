package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	_ "github.com/platewise/gin-mealplan-api/docs" // generated docs
	"github.com/platewise/gin-mealplan-api/internal/auth"
	"github.com/platewise/gin-mealplan-api/internal/config"
	"github.com/platewise/gin-mealplan-api/internal/controllers"
	"github.com/platewise/gin-mealplan-api/internal/database"
	"github.com/platewise/gin-mealplan-api/internal/middleware"
	"github.com/platewise/gin-mealplan-api/internal/models"
	"github.com/platewise/gin-mealplan-api/internal/services"
)

var (
	db            *gorm.DB
	configuration *config.Config

	authController       *controllers.AuthController
	profileController    *controllers.ProfileController
	mealController       *controllers.MealController
	ingredientController *controllers.IngredientController
	planController       *controllers.PlanController
	groceryController    *controllers.GroceryController
	pantryController     *controllers.PantryController
	clientController     *controllers.ClientController
	oauthService         *auth.OAuthService
)

// @title Meal Plan API
// @version 1.0
// @description Weekly meal planning and grocery list API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	loadDotenvFile()
	setUpLogger()

	configuration = loadConfig()

	setupDatabase(configuration)

	setupServices()

	router := setupRouter()

	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file.
// If the file is not found, it logs a warning and uses system environment variables.
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database, migrates the schema and
// seeds the catalog when enabled and empty.
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Ingredient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.MealPlan{},
		&models.MealPlanItem{},
		&models.GroceryList{},
		&models.GroceryListItem{},
		&models.PantryItem{},
		&models.OAuthClient{},
		&models.OAuthCode{},
		&models.OAuthToken{},
	)
	checkPanicErr(err)

	if conf.SeedCatalog {
		var count int64
		db.Model(&models.Meal{}).Count(&count)
		if count == 0 {
			log.Info("Meal catalog is empty, seeding initial data")
			seedCatalog()
		} else {
			log.Info("Meal catalog already seeded")
		}
	}
}

func setupServices() {
	userService := services.NewUserService(db)
	profileService := services.NewProfileService(db)
	mealService := services.NewMealService(db)
	ingredientService := services.NewIngredientService(db)
	planService := services.NewPlanService(db, profileService, mealService)
	groceryService := services.NewGroceryService(db, planService, mealService)
	pantryService := services.NewPantryService(db)
	clientService := services.NewClientService(db)

	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	profileController = controllers.NewProfileController(profileService)
	mealController = controllers.NewMealController(mealService)
	ingredientController = controllers.NewIngredientController(ingredientService)
	planController = controllers.NewPlanController(planService)
	groceryController = controllers.NewGroceryController(groceryService)
	pantryController = controllers.NewPantryController(pantryService)
	clientController = controllers.NewClientController(clientService)
	oauthService = auth.NewOAuthService(db, configuration.JWTSecret)
}

// seedCatalog loads a starter set of ingredients and dinners so a fresh
// install can generate a plan right away.
func seedCatalog() {
	ingredients := []models.Ingredient{
		{Name: "Chicken Breast", Category: "Meat"},
		{Name: "Salmon Fillet", Category: "Seafood"},
		{Name: "Brown Rice", Category: "Grains"},
		{Name: "Quinoa", Category: "Grains"},
		{Name: "Broccoli", Category: "Produce"},
		{Name: "Bell Pepper", Category: "Produce"},
		{Name: "Spinach", Category: "Produce"},
		{Name: "Chickpeas", Category: "Canned Goods"},
		{Name: "Black Beans", Category: "Canned Goods"},
		{Name: "Olive Oil", Category: "Pantry"},
		{Name: "Soy Sauce", Category: "Pantry"},
		{Name: "Cheddar Cheese", Category: "Dairy"},
		{Name: "Greek Yogurt", Category: "Dairy"},
		{Name: "Eggs", Category: "Dairy"},
		{Name: "Tortillas", Category: "Bakery"},
	}
	for i := range ingredients {
		if err := db.Create(&ingredients[i]).Error; err != nil {
			log.WithError(err).Warnf("Failed to seed ingredient %s", ingredients[i].Name)
		}
	}

	byName := make(map[string]uint, len(ingredients))
	for _, ing := range ingredients {
		byName[ing.Name] = ing.ID
	}

	amount := func(v float64) *float64 { return &v }
	unit := func(u string) *string { return &u }

	meals := []struct {
		meal  models.Meal
		lines []models.MealIngredient
	}{
		{
			meal: models.Meal{
				Name:            "Grilled Chicken Bowl",
				Description:     "Grilled chicken over brown rice with steamed broccoli",
				PrepTime:        15,
				CookTime:        25,
				Servings:        4,
				DietaryTags:     datatypes.NewJSONSlice([]string{"gluten-free", "high-protein"}),
				CuisineType:     "american",
				DifficultyLevel: "easy",
			},
			lines: []models.MealIngredient{
				{IngredientID: byName["Chicken Breast"], Amount: amount(1.5), Unit: unit("lb")},
				{IngredientID: byName["Brown Rice"], Amount: amount(2), Unit: unit("cup")},
				{IngredientID: byName["Broccoli"], Amount: amount(1), Unit: unit("head")},
				{IngredientID: byName["Olive Oil"], Amount: amount(2), Unit: unit("tbsp")},
			},
		},
		{
			meal: models.Meal{
				Name:            "Chickpea Curry",
				Description:     "Weeknight chickpea and spinach curry",
				PrepTime:        10,
				CookTime:        30,
				Servings:        4,
				DietaryTags:     datatypes.NewJSONSlice([]string{"vegetarian", "vegan", "gluten-free"}),
				CuisineType:     "indian",
				DifficultyLevel: "easy",
			},
			lines: []models.MealIngredient{
				{IngredientID: byName["Chickpeas"], Amount: amount(2), Unit: unit("can")},
				{IngredientID: byName["Spinach"], Amount: amount(4), Unit: unit("cup")},
				{IngredientID: byName["Brown Rice"], Amount: amount(1.5), Unit: unit("cup")},
			},
		},
		{
			meal: models.Meal{
				Name:            "Teriyaki Salmon",
				Description:     "Pan-seared salmon with quinoa and peppers",
				PrepTime:        10,
				CookTime:        20,
				Servings:        2,
				DietaryTags:     datatypes.NewJSONSlice([]string{"pescatarian", "high-protein"}),
				CuisineType:     "japanese",
				DifficultyLevel: "medium",
			},
			lines: []models.MealIngredient{
				{IngredientID: byName["Salmon Fillet"], Amount: amount(2), Unit: unit("piece")},
				{IngredientID: byName["Quinoa"], Amount: amount(1), Unit: unit("cup")},
				{IngredientID: byName["Bell Pepper"], Amount: amount(2)},
				{IngredientID: byName["Soy Sauce"], Amount: amount(3), Unit: unit("tbsp")},
			},
		},
		{
			meal: models.Meal{
				Name:            "Black Bean Quesadillas",
				Description:     "Crispy quesadillas with black beans and cheddar",
				PrepTime:        10,
				CookTime:        15,
				Servings:        4,
				DietaryTags:     datatypes.NewJSONSlice([]string{"vegetarian"}),
				CuisineType:     "mexican",
				DifficultyLevel: "easy",
			},
			lines: []models.MealIngredient{
				{IngredientID: byName["Black Beans"], Amount: amount(1), Unit: unit("can")},
				{IngredientID: byName["Tortillas"], Amount: amount(8)},
				{IngredientID: byName["Cheddar Cheese"], Amount: amount(2), Unit: unit("cup")},
				{IngredientID: byName["Bell Pepper"], Amount: amount(1)},
			},
		},
		{
			meal: models.Meal{
				Name:            "Veggie Scramble",
				Description:     "Eggs scrambled with spinach and peppers, breakfast for dinner",
				PrepTime:        5,
				CookTime:        10,
				Servings:        2,
				DietaryTags:     datatypes.NewJSONSlice([]string{"vegetarian", "gluten-free", "keto"}),
				CuisineType:     "american",
				DifficultyLevel: "easy",
			},
			lines: []models.MealIngredient{
				{IngredientID: byName["Eggs"], Amount: amount(6)},
				{IngredientID: byName["Spinach"], Amount: amount(2), Unit: unit("cup")},
				{IngredientID: byName["Bell Pepper"], Amount: amount(1)},
				{IngredientID: byName["Cheddar Cheese"], Amount: amount(0.5), Unit: unit("cup")},
			},
		},
	}

	for _, entry := range meals {
		if err := db.Create(&entry.meal).Error; err != nil {
			log.WithError(err).Warnf("Failed to seed meal %s", entry.meal.Name)
			continue
		}
		for i := range entry.lines {
			entry.lines[i].MealID = entry.meal.ID
		}
		if err := db.Create(&entry.lines).Error; err != nil {
			log.WithError(err).Warnf("Failed to seed recipe lines for %s", entry.meal.Name)
		}
	}
	log.Info("Catalog seeded successfully")
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	setupRoutes(router)
	return router
}

func setupRoutes(router *gin.Engine) {
	router.GET("/health", healthCheckHandler)

	// OAuth2 endpoints for third-party integrations
	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.POST("/auth/register", authController.Register)
			publicApi.POST("/auth/login", authController.Login)

			// The meal catalog is browsable without an account
			publicApi.GET("/meals", mealController.ListMeals)
			publicApi.GET("/meals/:id", mealController.GetMeal)
		}

		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.Auth([]byte(configuration.JWTSecret)))
		{
			protectedApi.GET("/oauth/authorize", oauthService.HandleAuthorize)

			protectedApi.GET("/profile", profileController.GetProfile)
			protectedApi.PUT("/profile", profileController.UpsertProfile)

			protectedApi.GET("/meals", mealController.ListMeals)
			protectedApi.GET("/meals/:id", mealController.GetMeal)
			protectedApi.POST("/meals", mealController.CreateMeal)
			protectedApi.PUT("/meals/:id", mealController.UpdateMeal)
			protectedApi.PUT("/meals/:id/ingredients", mealController.ReplaceIngredients)
			protectedApi.DELETE("/meals/:id", mealController.DeleteMeal)

			protectedApi.GET("/ingredients", ingredientController.ListIngredients)

			protectedApi.GET("/plans", planController.ListPlans)
			protectedApi.GET("/plans/current", planController.GetCurrentPlan)
			protectedApi.GET("/plans/:id", planController.GetPlan)
			protectedApi.POST("/plans", planController.CreatePlan)
			protectedApi.POST("/plans/generate", planController.GeneratePlan)
			protectedApi.POST("/plans/:id/items", planController.AddItem)
			protectedApi.DELETE("/plans/items/:itemId", planController.RemoveItem)
			protectedApi.DELETE("/plans/:id", planController.DeletePlan)

			protectedApi.GET("/grocery-lists", groceryController.ListLists)
			protectedApi.GET("/grocery-lists/:id", groceryController.GetList)
			protectedApi.GET("/grocery-lists/:id/grouped", groceryController.GetGroupedItems)
			protectedApi.GET("/grocery-lists/:id/export", groceryController.ExportList)
			protectedApi.POST("/grocery-lists/generate", groceryController.GenerateFromPlan)
			protectedApi.PATCH("/grocery-lists/items/:itemId", groceryController.ToggleItem)
			protectedApi.DELETE("/grocery-lists/items/:itemId", groceryController.DeleteItem)
			protectedApi.DELETE("/grocery-lists/:id", groceryController.DeleteList)

			protectedApi.GET("/pantry", pantryController.ListItems)
			protectedApi.POST("/pantry", pantryController.AddItem)
			protectedApi.PUT("/pantry/:id", pantryController.UpdateItem)
			protectedApi.DELETE("/pantry/:id", pantryController.DeleteItem)

			protectedApi.POST("/clients", clientController.CreateClient)
			protectedApi.GET("/clients", clientController.ListClients)
			protectedApi.DELETE("/clients/:id", clientController.DeleteClient)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.POST("/ingredients", ingredientController.CreateIngredient)
				adminApi.PUT("/ingredients/:id", ingredientController.UpdateIngredient)
				adminApi.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-mealplan-api",
	})
}
