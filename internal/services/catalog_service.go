package services

import (
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// CatalogService provides access to the reference data: pizzas with their
// per-size prices, sizes and toppings. Reads are public; mutations are
// gated to admins at the route level.
type CatalogService interface {
	// GetAllPizzas retrieves all pizzas with prices and sizes expanded
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a single pizza with prices and sizes expanded
	GetPizzaByID(id string) (models.Pizza, error)
	// CreatePizza creates a pizza together with its initial price rows
	CreatePizza(req models.CreatePizzaRequest) (models.Pizza, error)
	// UpdatePizza applies a partial update to name and/or description
	UpdatePizza(id string, req models.UpdatePizzaRequest) (models.Pizza, error)
	// DeletePizza removes a pizza and its price rows
	DeletePizza(id string) error

	GetAllSizes() ([]models.Size, error)
	CreateSize(req models.CreateSizeRequest) (models.Size, error)

	GetAllToppings() ([]models.Topping, error)
	CreateTopping(req models.CreateToppingRequest) (models.Topping, error)
}

type catalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Preload("Prices.Size").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *catalogService) GetPizzaByID(id string) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.Preload("Prices.Size").First(&pizza, "id = ?", id).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *catalogService) CreatePizza(req models.CreatePizzaRequest) (models.Pizza, error) {
	pizza := models.Pizza{
		Name:        req.Name,
		Description: req.Description,
	}
	for _, price := range req.Prices {
		pizza.Prices = append(pizza.Prices, models.PizzaPrice{
			SizeID: price.SizeID,
			Price:  price.Price,
		})
	}

	// Nested create writes the pizza and its price rows in one transaction
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return s.GetPizzaByID(pizza.ID)
}

func (s *catalogService) UpdatePizza(id string, req models.UpdatePizzaRequest) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, "id = ?", id).Error; err != nil {
		return models.Pizza{}, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(&pizza).Updates(updates).Error; err != nil {
			return models.Pizza{}, err
		}
	}
	return s.GetPizzaByID(id)
}

func (s *catalogService) DeletePizza(id string) error {
	var pizza models.Pizza
	if err := s.db.First(&pizza, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.Select("Prices").Delete(&pizza).Error
}

func (s *catalogService) GetAllSizes() ([]models.Size, error) {
	sizes := []models.Size{}
	if err := s.db.Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *catalogService) CreateSize(req models.CreateSizeRequest) (models.Size, error) {
	size := models.Size{Name: req.Name}
	if err := s.db.Create(&size).Error; err != nil {
		return models.Size{}, err
	}
	return size, nil
}

func (s *catalogService) GetAllToppings() ([]models.Topping, error) {
	toppings := []models.Topping{}
	if err := s.db.Find(&toppings).Error; err != nil {
		return nil, err
	}
	return toppings, nil
}

func (s *catalogService) CreateTopping(req models.CreateToppingRequest) (models.Topping, error) {
	topping := models.Topping{Name: req.Name, IsExtraCharge: req.IsExtraCharge}
	if err := s.db.Create(&topping).Error; err != nil {
		return models.Topping{}, err
	}
	return topping, nil
}
