package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzashop/pizza-shop-api/internal/models"
)

func TestCreatePizzaWithPrices(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	small, err := catalog.CreateSize(models.CreateSizeRequest{Name: "Small"})
	require.NoError(t, err)
	large, err := catalog.CreateSize(models.CreateSizeRequest{Name: "Large"})
	require.NoError(t, err)

	pizza, err := catalog.CreatePizza(models.CreatePizzaRequest{
		Name:        "Quattro Formaggi",
		Description: "Four cheeses",
		Prices: []models.PizzaPriceInput{
			{SizeID: small.ID, Price: 13.50},
			{SizeID: large.ID, Price: 19.50},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pizza.ID)
	require.Len(t, pizza.Prices, 2)
	// Price rows come back with the size expanded
	for _, price := range pizza.Prices {
		assert.NotEmpty(t, price.Size.Name)
	}
}

func TestUpdatePizzaPartial(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	size, err := catalog.CreateSize(models.CreateSizeRequest{Name: "Medium"})
	require.NoError(t, err)
	pizza, err := catalog.CreatePizza(models.CreatePizzaRequest{
		Name:        "Calzone",
		Description: "Folded",
		Prices:      []models.PizzaPriceInput{{SizeID: size.ID, Price: 11.00}},
	})
	require.NoError(t, err)

	newName := "Calzone Classico"
	updated, err := catalog.UpdatePizza(pizza.ID, models.UpdatePizzaRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Calzone Classico", updated.Name)
	// Untouched fields survive a partial update
	assert.Equal(t, "Folded", updated.Description)
	assert.Len(t, updated.Prices, 1)
}

func TestDeletePizzaRemovesPrices(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	size, err := catalog.CreateSize(models.CreateSizeRequest{Name: "Medium"})
	require.NoError(t, err)
	pizza, err := catalog.CreatePizza(models.CreatePizzaRequest{
		Name:   "Diavola",
		Prices: []models.PizzaPriceInput{{SizeID: size.ID, Price: 14.00}},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DeletePizza(pizza.ID))

	_, err = catalog.GetPizzaByID(pizza.ID)
	assert.Error(t, err)

	var priceCount int64
	require.NoError(t, db.Model(&models.PizzaPrice{}).Where("pizza_id = ?", pizza.ID).Count(&priceCount).Error)
	assert.Zero(t, priceCount)
}

func TestDeletePizzaMissing(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	assert.Error(t, catalog.DeletePizza("no-such-pizza"))
}

func TestToppings(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.CreateTopping(models.CreateToppingRequest{Name: "Extra Cheese", IsExtraCharge: true})
	require.NoError(t, err)
	_, err = catalog.CreateTopping(models.CreateToppingRequest{Name: "Mushrooms"})
	require.NoError(t, err)

	toppings, err := catalog.GetAllToppings()
	require.NoError(t, err)
	require.Len(t, toppings, 2)

	byName := map[string]bool{}
	for _, topping := range toppings {
		byName[topping.Name] = topping.IsExtraCharge
	}
	assert.True(t, byName["Extra Cheese"])
	assert.False(t, byName["Mushrooms"])
}
