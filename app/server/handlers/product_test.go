package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-sathi/app/server/models"
	"krishi-sathi/app/server/types"
)

func createProduct(t *testing.T, s *testServer, token, name, category string) types.ProductInfo {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/product/addProduct", map[string]any{
		"name":        name,
		"category":    category,
		"price":       120.5,
		"unit":        "kg",
		"description": "fresh " + name,
		"rating":      4.5,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return *decode[types.ProductResponse](t, rec).Product
}

func TestProduct_PublicReads(t *testing.T) {
	s := newTestServer(t)
	seller, token := s.addUser(t, "Seller", models.RoleFarmer)

	wheat := createProduct(t, s, token, "Wheat seeds", "Seeds")
	createProduct(t, s, token, "Hand hoe", "Tools")
	assert.Equal(t, seller.ID, wheat.Seller.ID)

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?category=All%20Products", 2},
		{"?category=Seeds", 1},
		{"?search=HOE", 1},
		{"?category=Livestock", 0},
	}
	for _, tt := range tests {
		rec := s.do(t, http.MethodGet, "/api/product"+tt.query, nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[types.ProductListResponse](t, rec).Products, tt.want, tt.query)
	}

	rec := s.do(t, http.MethodGet, fmt.Sprintf("/api/product/%d", wheat.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wheat seeds", decode[types.ProductResponse](t, rec).Product.Name)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/product/999", nil, "").Code)
}

func TestProduct_CreateValidation(t *testing.T) {
	s := newTestServer(t)
	_, token := s.addUser(t, "Seller", models.RoleFarmer)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/product/addProduct", map[string]any{}, "").Code)

	tests := []map[string]any{
		{"category": "Seeds", "price": 1, "unit": "kg", "description": "d"},
		{"name": "n", "category": "Gadgets", "price": 1, "unit": "kg", "description": "d"},
		{"name": "n", "category": "Seeds", "price": 0, "unit": "kg", "description": "d"},
		{"name": "n", "category": "Seeds", "price": 1, "unit": "kg", "description": "d", "rating": 6},
	}
	for _, body := range tests {
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/product/addProduct", body, token).Code, body)
	}
	assert.Empty(t, s.products.products)
}

func TestProduct_UpdateAndDeletePermissions(t *testing.T) {
	s := newTestServer(t)
	_, sellerToken := s.addUser(t, "Seller", models.RoleFarmer)
	_, otherToken := s.addUser(t, "Other", models.RoleFarmer)
	_, modToken := s.addUser(t, "Mod", models.RoleModerator)
	_, adminToken := s.addUser(t, "Admin", models.RoleAdmin)

	product := createProduct(t, s, sellerToken, "Urea", "Fertilizers")
	path := fmt.Sprintf("/api/product/update/%d", product.ID)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPut, path, map[string]any{"price": 1}, otherToken).Code)
	// 版主不能修改商品
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPut, path, map[string]any{"price": 1}, modToken).Code)

	rec := s.do(t, http.MethodPut, path, map[string]any{"price": 99.0, "rating": 3}, sellerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[types.ProductResponse](t, rec).Product
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, 3.0, updated.Rating)
	assert.Equal(t, "Urea", updated.Name)

	deletePath := fmt.Sprintf("/api/product/delete/%d", product.ID)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, deletePath, nil, otherToken).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, deletePath, nil, adminToken).Code)
	assert.Empty(t, s.products.products)
}
