package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzashop/pizza-shop-api/internal/models"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	rec := performJSON(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "password123",
		"name":     "New User",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "new@example.com", user["email"])
	assert.Equal(t, models.RoleUser, user["role"])
	// The password hash never leaves the server
	assert.NotContains(t, rec.Body.String(), "password")

	rec = performJSON(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)

	// The issued token passes the authorization gate
	rec = performJSON(router, http.MethodGet, "/api/orders/my-orders", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "malformed email", body: map[string]interface{}{"email": "not-an-email", "password": "password123", "name": "X"}},
		{name: "short password", body: map[string]interface{}{"email": "a@b.com", "password": "123", "name": "X"}},
		{name: "missing name", body: map[string]interface{}{"email": "a@b.com", "password": "password123"}},
		{name: "empty body", body: map[string]interface{}{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := performJSON(router, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Validation error", decodeBody(t, rec)["error"])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, db, _ := setupTestAPI(t)

	rec := performJSON(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "dup@example.com",
		"password": "password123",
		"name":     "Original",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performJSON(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "dup@example.com",
		"password": "different456",
		"name":     "Impostor",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["error"])

	// The original record is unchanged
	var user models.User
	require.NoError(t, db.Where("email = ?", "dup@example.com").First(&user).Error)
	assert.Equal(t, "Original", user.Name)
	assert.True(t, user.CheckPassword("password123"))
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _, _ := setupTestAPI(t)

	rec := performJSON(router, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "known@example.com",
		"password": "password123",
		"name":     "Known",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := performJSON(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "known@example.com",
		"password": "wrong-password",
	})
	unknownEmail := performJSON(router, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "unknown@example.com",
		"password": "password123",
	})

	// Both failure modes are indistinguishable
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}
