package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/pizzashop/pizza-shop-api/docs" // Import generated docs
	"github.com/pizzashop/pizza-shop-api/internal/auth"
	"github.com/pizzashop/pizza-shop-api/internal/config"
	"github.com/pizzashop/pizza-shop-api/internal/controllers"
	"github.com/pizzashop/pizza-shop-api/internal/database"
	"github.com/pizzashop/pizza-shop-api/internal/middleware"
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

var (
	db              *gorm.DB
	configuration   *config.Config
	tokenService    *auth.TokenService
	userService     services.UserService
	catalogService  services.CatalogService
	orderService    services.OrderService
	authController  *controllers.AuthController
	pizzaController controllers.PizzaController
	orderController controllers.OrderController
)

// @title Pizza Shop API
// @version 1.0
// @description Pizza ordering backend with server-computed pricing
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	tokenService = auth.NewTokenService(configuration.JWTSecret)
	userService = services.NewUserService(db)
	catalogService = services.NewCatalogService(db)
	orderService = services.NewOrderService(db)
	authController = controllers.NewAuthController(userService, tokenService)
	pizzaController = controllers.NewPizzaController(catalogService)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
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

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema
// and seeds the catalog when the database is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(conf.Database)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	// Seed only if empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the database with the demo catalog and two accounts
func seedDatabase() {
	log.Info("Seeding database with initial data")

	users := []models.User{
		{Email: "test@example.com", Password: "password123", Name: "Test User", Role: models.RoleUser},
		{Email: "admin@pizzashop.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
	}
	for i := range users {
		checkPanicErr(users[i].HashPassword())
		db.Create(&users[i])
	}

	sizes := []models.Size{{Name: "Small"}, {Name: "Medium"}, {Name: "Large"}}
	for i := range sizes {
		db.Create(&sizes[i])
	}

	pizzas := []models.Pizza{
		{Name: "Margherita", Description: "Classic tomato sauce, mozzarella, and fresh basil"},
		{Name: "Pepperoni", Description: "Classic pepperoni with mozzarella cheese"},
		{Name: "Veggie Supreme", Description: "Mushrooms, onions, bell peppers, and black olives"},
		{Name: "Meat Lovers", Description: "Pepperoni, sausage, bacon, and ham"},
		{Name: "Hawaiian", Description: "Ham and pineapple with mozzarella cheese"},
	}
	// Small/Medium/Large price per pizza, same order as above
	prices := [][3]float64{
		{12.99, 15.99, 18.99},
		{14.99, 17.99, 20.99},
		{13.99, 16.99, 19.99},
		{16.99, 19.99, 22.99},
		{15.99, 18.99, 21.99},
	}
	for i := range pizzas {
		for j := range sizes {
			pizzas[i].Prices = append(pizzas[i].Prices, models.PizzaPrice{
				SizeID: sizes[j].ID,
				Price:  prices[i][j],
			})
		}
		db.Create(&pizzas[i])
	}

	toppings := []models.Topping{
		{Name: "Extra Cheese", IsExtraCharge: true},
		{Name: "Pepperoni", IsExtraCharge: false},
		{Name: "Mushrooms", IsExtraCharge: false},
		{Name: "Onions", IsExtraCharge: false},
		{Name: "Sausage", IsExtraCharge: true},
		{Name: "Bacon", IsExtraCharge: true},
		{Name: "Olives", IsExtraCharge: false},
		{Name: "Bell Peppers", IsExtraCharge: false},
		{Name: "Pineapple", IsExtraCharge: false},
		{Name: "Ham", IsExtraCharge: false},
	}
	for i := range toppings {
		db.Create(&toppings[i])
	}

	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	authRequired := middleware.JWTAuth(tokenService, userService)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	api := router.Group("/api")
	{
		authApi := api.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		pizzaApi := api.Group("/pizzas")
		{
			// Public catalog reads. The sizes/toppings routes must be
			// registered before /:id.
			pizzaApi.GET("", pizzaController.GetAllPizzas)
			pizzaApi.GET("/sizes", pizzaController.GetAllSizes)
			pizzaApi.GET("/toppings", pizzaController.GetAllToppings)
			pizzaApi.GET("/:id", pizzaController.GetPizzaByID)

			// Catalog mutations are admin-only
			pizzaApi.POST("", authRequired, adminOnly, pizzaController.CreatePizza)
			pizzaApi.PUT("/:id", authRequired, adminOnly, pizzaController.UpdatePizza)
			pizzaApi.DELETE("/:id", authRequired, adminOnly, pizzaController.DeletePizza)
			pizzaApi.POST("/sizes", authRequired, adminOnly, pizzaController.CreateSize)
			pizzaApi.POST("/toppings", authRequired, adminOnly, pizzaController.CreateTopping)
		}

		orderApi := api.Group("/orders")
		orderApi.Use(authRequired)
		{
			orderApi.POST("", orderController.CreateOrder)
			orderApi.GET("/my-orders", orderController.GetMyOrders)
			orderApi.GET("/:id", orderController.GetOrderByID)

			orderApi.GET("", adminOnly, orderController.GetAllOrders)
			orderApi.PUT("/:id/status", adminOnly, orderController.UpdateOrderStatus)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-shop-api",
	})
}
