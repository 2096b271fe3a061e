package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopwave/shopwave-backend/pkg/enums"
	"github.com/shopwave/shopwave-backend/pkg/types"
)

func TestProductListSaleFilter(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?sale=true", nil)
	resp := httptest.NewRecorder()
	ProductList(testCatalog(), testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	products := decodeEnvelope[[]types.Product](t, resp.Body.Bytes())
	if len(products) != 1 || products[0].ID != "prod-2" {
		t.Fatalf("unexpected sale products: %+v", products)
	}
}

func TestProductListRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Gadgets", nil)
	resp := httptest.NewRecorder()
	ProductList(testCatalog(), testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProductDetailNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-404", nil)
	req = withURLParam(req, "productId", "prod-404")
	resp := httptest.NewRecorder()
	ProductDetail(testCatalog(), testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCategoryList(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp := httptest.NewRecorder()
	CategoryList(testCatalog())(resp, req)

	categories := decodeEnvelope[[]enums.Category](t, resp.Body.Bytes())
	if len(categories) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(categories))
	}
}
