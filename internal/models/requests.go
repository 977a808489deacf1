package models

// Request bodies for the JSON API. Validation happens through Gin's
// binding tags; violations surface as 400 responses at the controllers.

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PizzaPriceInput struct {
	SizeID string  `json:"sizeId" binding:"required"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

type CreatePizzaRequest struct {
	Name        string            `json:"name" binding:"required,min=2"`
	Description string            `json:"description"`
	Prices      []PizzaPriceInput `json:"prices" binding:"required,min=1,dive"`
}

type UpdatePizzaRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2"`
	Description *string `json:"description"`
}

type CreateSizeRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}

type CreateToppingRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	IsExtraCharge bool   `json:"isExtraCharge"`
}

type OrderItemInput struct {
	PizzaID    string   `json:"pizzaId" binding:"required"`
	SizeID     string   `json:"sizeId" binding:"required"`
	ToppingIDs []string `json:"toppingIds"`
}

type CreateOrderRequest struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED PREPARING READY DELIVERED CANCELLED"`
}
