package services

import (
	"errors"
	"fmt"

	"github.com/pizzashop/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// ExtraToppingCharge is the flat surcharge applied per selected
// extra-charge topping on a line item.
const ExtraToppingCharge = 2.0

// ErrOrderNotFound covers both a missing order and an ownership mismatch,
// so callers cannot tell the two apart.
var ErrOrderNotFound = errors.New("order not found")

// PriceNotFoundError rejects a cart item whose pizza has no price row for
// the requested size. The whole order is aborted, nothing is written.
type PriceNotFoundError struct {
	PizzaID string
	SizeID  string
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("price not found for pizza %s with size %s", e.PizzaID, e.SizeID)
}

// OrderService implements order placement with server-computed pricing,
// plus the role- and ownership-gated order queries.
type OrderService interface {
	// PlaceOrder prices a cart and persists the resulting order tree
	// atomically. It returns the created order, fully expanded, together
	// with the computed total.
	PlaceOrder(userID string, items []models.OrderItemInput) (*models.Order, float64, error)
	// ListUserOrders returns the user's own orders, newest first
	ListUserOrders(userID string) ([]models.Order, error)
	// ListAllOrders returns every order with its owning user, newest first
	ListAllOrders() ([]models.Order, error)
	// GetOrder returns an order if the requester owns it or is an admin;
	// otherwise ErrOrderNotFound
	GetOrder(orderID string, requester *models.User) (*models.Order, error)
	// UpdateOrderStatus sets the status unconditionally; any of the six
	// enumerated values may follow any other
	UpdateOrderStatus(orderID, status string) (*models.Order, error)
}

type orderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) PlaceOrder(userID string, items []models.OrderItemInput) (*models.Order, float64, error) {
	order := models.Order{
		UserID: userID,
		Status: models.StatusPending,
	}
	var totalPrice float64

	// Price resolution and the order-tree write share one transaction so
	// a late failure can never leave a partial order behind.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var pizzaPrice models.PizzaPrice
			err := tx.Where("pizza_id = ? AND size_id = ?", item.PizzaID, item.SizeID).
				First(&pizzaPrice).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &PriceNotFoundError{PizzaID: item.PizzaID, SizeID: item.SizeID}
			}
			if err != nil {
				return err
			}

			itemPrice := pizzaPrice.Price

			orderItem := models.OrderItem{
				PizzaID: item.PizzaID,
				SizeID:  item.SizeID,
			}

			if len(item.ToppingIDs) > 0 {
				// Unknown topping ids resolve to nothing here and are
				// dropped from both the surcharge and the selection rows.
				var toppings []models.Topping
				if err := tx.Where("id IN ?", item.ToppingIDs).Find(&toppings).Error; err != nil {
					return err
				}
				for _, topping := range toppings {
					if topping.IsExtraCharge {
						itemPrice += ExtraToppingCharge
					}
					orderItem.Toppings = append(orderItem.Toppings, models.OrderItemTopping{
						ToppingID: topping.ID,
					})
				}
			}

			orderItem.Price = itemPrice
			totalPrice += itemPrice
			order.Items = append(order.Items, orderItem)
		}

		// Nested create persists the order, its items and their topping
		// rows as one unit.
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, 0, err
	}

	created, err := s.loadOrder(order.ID)
	if err != nil {
		return nil, 0, err
	}
	return created, totalPrice, nil
}

func (s *orderService) ListUserOrders(userID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.withDetail(s.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) ListAllOrders() ([]models.Order, error) {
	orders := []models.Order{}
	err := s.withDetail(s.db).
		Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrder(orderID string, requester *models.User) (*models.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	// Ownership failure is reported exactly like nonexistence
	if order.UserID != requester.ID && requester.Role != models.RoleAdmin {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(orderID, status string) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return s.loadOrder(orderID)
}

// loadOrder fetches one order with all catalog joins and the owner expanded
func (s *orderService) loadOrder(orderID string) (*models.Order, error) {
	var order models.Order
	err := s.withDetail(s.db).
		Preload("User").
		First(&order, "id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderService) withDetail(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items.Pizza").
		Preload("Items.Size").
		Preload("Items.Toppings.Topping")
}
