package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pizzashop/pizza-shop-api/internal/middleware"
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

// OrderController handles order placement and the ownership-gated order
// queries
type OrderController interface {
	// CreateOrder prices a cart and places the order
	CreateOrder(c *gin.Context)
	// GetMyOrders lists the caller's own orders
	GetMyOrders(c *gin.Context)
	// GetAllOrders lists every order (admin)
	GetAllOrders(c *gin.Context)
	// GetOrderByID returns one order, owner-or-admin gated
	GetOrderByID(c *gin.Context)
	// UpdateOrderStatus sets an order's status (admin)
	UpdateOrderStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Price the submitted cart and persist the order atomically
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Cart items"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders [post]
func (o *orderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
		return
	}

	order, totalPrice, err := o.service.PlaceOrder(user.ID, req.Items)
	if err != nil {
		var priceErr *services.PriceNotFoundError
		if errors.As(err, &priceErr) {
			c.JSON(http.StatusBadRequest, models.NewAPIError(priceErr.Error()))
			return
		}
		log.WithError(err).Error("Failed to create order")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order created successfully",
		"order":      order,
		"totalPrice": totalPrice,
	})
}

// GetMyOrders godoc
// @Summary List own orders
// @Description List the caller's orders, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/my-orders [get]
func (o *orderController) GetMyOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
		return
	}

	orders, err := o.service.ListUserOrders(user.ID)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve orders")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders godoc
// @Summary List all orders
// @Description List every order across all users, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders [get]
func (o *orderController) GetAllOrders(c *gin.Context) {
	orders, err := o.service.ListAllOrders()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve orders")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get an order
// @Description Get one order. Orders owned by other users read as not found.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id} [get]
func (o *orderController) GetOrderByID(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewAPIError("User not authenticated"))
		return
	}

	order, err := o.service.GetOrder(c.Param("id"), user)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.NewAPIError("Order not found"))
			return
		}
		log.WithError(err).Error("Failed to retrieve order")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set an order's status to any of the six known values
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/orders/{id}/status [put]
func (o *orderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	order, err := o.service.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.NewAPIError("Order not found"))
			return
		}
		log.WithError(err).Error("Failed to update order status")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
