package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

// PizzaController handles HTTP requests for the catalog: pizzas with their
// per-size prices, sizes and toppings
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas with prices
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza with its price rows
	CreatePizza(c *gin.Context)
	// UpdatePizza partially updates a pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
	// GetAllSizes retrieves all sizes
	GetAllSizes(c *gin.Context)
	// CreateSize creates a new size
	CreateSize(c *gin.Context)
	// GetAllToppings retrieves all toppings
	GetAllToppings(c *gin.Context)
	// CreateTopping creates a new topping
	CreateTopping(c *gin.Context)
}

type pizzaController struct {
	service services.CatalogService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.CatalogService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get all pizzas with their per-size prices
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/pizzas [get]
func (p *pizzaController) GetAllPizzas(c *gin.Context) {
	pizzas, err := p.service.GetAllPizzas()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with its per-size prices
// @Tags pizzas
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/{id} [get]
func (p *pizzaController) GetPizzaByID(c *gin.Context) {
	pizza, err := p.service.GetPizzaByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewAPIError("Pizza not found"))
		return
	}
	c.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a pizza
// @Description Create a pizza together with at least one per-size price
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaRequest true "Pizza details"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas [post]
func (p *pizzaController) CreatePizza(c *gin.Context) {
	var req models.CreatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	pizza, err := p.service.CreatePizza(req)
	if err != nil {
		log.WithError(err).Error("Failed to create pizza")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusCreated, pizza)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Partially update a pizza's name and/or description
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Param pizza body models.UpdatePizzaRequest true "Fields to update"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [put]
func (p *pizzaController) UpdatePizza(c *gin.Context) {
	var req models.UpdatePizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	pizza, err := p.service.UpdatePizza(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewAPIError("Pizza not found"))
		return
	}
	c.JSON(http.StatusOK, pizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and its price rows
// @Tags pizzas
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [delete]
func (p *pizzaController) DeletePizza(c *gin.Context) {
	if err := p.service.DeletePizza(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, models.NewAPIError("Pizza not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pizza deleted successfully"})
}

// GetAllSizes godoc
// @Summary Get all sizes
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Size
// @Failure 500 {object} models.APIError
// @Router /api/pizzas/sizes [get]
func (p *pizzaController) GetAllSizes(c *gin.Context) {
	sizes, err := p.service.GetAllSizes()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve sizes")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, sizes)
}

// CreateSize godoc
// @Summary Create a size
// @Tags pizzas
// @Accept json
// @Produce json
// @Param size body models.CreateSizeRequest true "Size details"
// @Success 201 {object} models.Size
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/sizes [post]
func (p *pizzaController) CreateSize(c *gin.Context) {
	var req models.CreateSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	size, err := p.service.CreateSize(req)
	if err != nil {
		log.WithError(err).Error("Failed to create size")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusCreated, size)
}

// GetAllToppings godoc
// @Summary Get all toppings
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Topping
// @Failure 500 {object} models.APIError
// @Router /api/pizzas/toppings [get]
func (p *pizzaController) GetAllToppings(c *gin.Context) {
	toppings, err := p.service.GetAllToppings()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve toppings")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, toppings)
}

// CreateTopping godoc
// @Summary Create a topping
// @Tags pizzas
// @Accept json
// @Produce json
// @Param topping body models.CreateToppingRequest true "Topping details"
// @Success 201 {object} models.Topping
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/toppings [post]
func (p *pizzaController) CreateTopping(c *gin.Context) {
	var req models.CreateToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	topping, err := p.service.CreateTopping(req)
	if err != nil {
		log.WithError(err).Error("Failed to create topping")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusCreated, topping)
}
