package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pizzashop/pizza-shop-api/internal/auth"
	"github.com/pizzashop/pizza-shop-api/internal/middleware"
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

// setupTestAPI wires the full route table against an in-memory database,
// mirroring the wiring in cmd/main.go.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB, *auth.TokenService) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Size{},
		&models.Pizza{},
		&models.PizzaPrice{},
		&models.Topping{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemTopping{},
	))

	tokens := auth.NewTokenService("test-jwt-secret-key-32-characters")
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)

	authController := NewAuthController(userService, tokens)
	pizzaController := NewPizzaController(catalogService)
	orderController := NewOrderController(orderService)

	authRequired := middleware.JWTAuth(tokens, userService)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router := gin.New()
	api := router.Group("/api")
	{
		authApi := api.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		pizzaApi := api.Group("/pizzas")
		{
			pizzaApi.GET("", pizzaController.GetAllPizzas)
			pizzaApi.GET("/sizes", pizzaController.GetAllSizes)
			pizzaApi.GET("/toppings", pizzaController.GetAllToppings)
			pizzaApi.GET("/:id", pizzaController.GetPizzaByID)
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

	return router, db, tokens
}

// performJSON runs one request against the router and returns the recorder
func performJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func seedAccount(t *testing.T, db *gorm.DB, tokens *auth.TokenService, email, role string) (*models.User, string) {
	user := &models.User{
		Email:    email,
		Password: "password123",
		Name:     "Seeded User",
		Role:     role,
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)

	token, err := tokens.Generate(user.ID)
	require.NoError(t, err)
	return user, token
}

// seedCatalog creates one pizza priced at 15.99 (medium only) plus one
// extra-charge and one free topping.
type catalogSeed struct {
	pizza       models.Pizza
	medium      models.Size
	large       models.Size
	extraCheese models.Topping
	mushrooms   models.Topping
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogSeed {
	seed := catalogSeed{
		pizza:       models.Pizza{Name: "Margherita", Description: "Classic"},
		medium:      models.Size{Name: "Medium"},
		large:       models.Size{Name: "Large"},
		extraCheese: models.Topping{Name: "Extra Cheese", IsExtraCharge: true},
		mushrooms:   models.Topping{Name: "Mushrooms"},
	}
	require.NoError(t, db.Create(&seed.medium).Error)
	require.NoError(t, db.Create(&seed.large).Error)
	require.NoError(t, db.Create(&seed.extraCheese).Error)
	require.NoError(t, db.Create(&seed.mushrooms).Error)

	seed.pizza.Prices = []models.PizzaPrice{{SizeID: seed.medium.ID, Price: 15.99}}
	require.NoError(t, db.Create(&seed.pizza).Error)
	return seed
}
