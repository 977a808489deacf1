package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pizza is a menu entry. Per-size prices live in PizzaPrice rows.
type Pizza struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Prices      []PizzaPrice `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"prices,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (p *Pizza) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Size struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Topping is a selectable extra. Only extra-charge toppings affect pricing.
type Topping struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	IsExtraCharge bool   `json:"isExtraCharge"`
}

func (t *Topping) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// PizzaPrice holds the price of a pizza at a given size.
// At most one row exists per (pizza, size) pair.
type PizzaPrice struct {
	ID      string  `gorm:"primaryKey" json:"id"`
	PizzaID string  `gorm:"uniqueIndex:idx_pizza_size;not null" json:"pizzaId"`
	SizeID  string  `gorm:"uniqueIndex:idx_pizza_size;not null" json:"sizeId"`
	Size    Size    `gorm:"foreignKey:SizeID" json:"size"`
	Price   float64 `gorm:"not null" json:"price"`
}

func (p *PizzaPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
