package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Any status may follow any other; there is no
// transition graph, an admin sets the value directly.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

type Order struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"index;not null" json:"userId"`
	User      *PublicUser `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    string      `gorm:"default:'PENDING'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// TotalPrice sums the snapshotted line-item prices.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// OrderItem is one line of an order. Price is snapshotted at order time
// (catalog price plus topping surcharges) and never recomputed.
type OrderItem struct {
	ID       string             `gorm:"primaryKey" json:"id"`
	OrderID  string             `gorm:"index;not null" json:"orderId"`
	PizzaID  string             `gorm:"not null" json:"pizzaId"`
	Pizza    Pizza              `gorm:"foreignKey:PizzaID" json:"pizza"`
	SizeID   string             `gorm:"not null" json:"sizeId"`
	Size     Size               `gorm:"foreignKey:SizeID" json:"size"`
	Price    float64            `gorm:"not null" json:"price"`
	Toppings []OrderItemTopping `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"toppings"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// OrderItemTopping records one topping selection on one order line.
// The surcharge, if any, is folded into OrderItem.Price.
type OrderItemTopping struct {
	OrderItemID string  `gorm:"primaryKey" json:"orderItemId"`
	ToppingID   string  `gorm:"primaryKey" json:"toppingId"`
	Topping     Topping `gorm:"foreignKey:ToppingID" json:"topping"`
}
