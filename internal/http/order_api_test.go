package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedOrderWorld(t *testing.T, app *fiber.App) (customerID, productID int64) {
	t.Helper()
	status, body, raw := doJSON(t, app, "POST", "/customer", map[string]any{
		"name": "Buyer", "email": "buyer@shopcore.test", "password": "buyer-pw",
	})
	wantStatus(t, status, 200, raw)
	customerID = int64(body["customer_id"].(float64))

	status, body, raw = doJSON(t, app, "POST", "/product", map[string]any{
		"name": "Widget", "description": "A widget", "stock": 5, "MRP": 100, "costPrice": 60, "discount": 10,
	})
	wantStatus(t, status, 200, raw)
	productID = int64(body["product_id"].(float64))
	return customerID, productID
}

func TestOrderPlaceDecrementsStock(t *testing.T) {
	app := newTestApp(t)
	customerID, productID := seedOrderWorld(t, app)

	status, body, raw := doJSON(t, app, "POST", "/order", map[string]any{
		"customer_id": customerID, "product_id": productID, "quantity": 2,
	})
	wantStatus(t, status, 200, raw)
	if body["detail"] != "Order created successfully." || body["order_id"] == nil {
		t.Fatalf("bad confirmation: %s", raw)
	}
	status, body, raw = doJSON(t, app, "GET", "/product/1", nil)
	wantStatus(t, status, 200, raw)
	if body["stock"].(float64) != 3 {
		t.Fatalf("want stock=3 after placement, got %s", raw)
	}

	// total fixed at (100-10)*2
	status, body, raw = doJSON(t, app, "GET", "/order/1", nil)
	wantStatus(t, status, 200, raw)
	if body["total_price"].(float64) != 180 {
		t.Fatalf("want total_price=180, got %s", raw)
	}

	// q > s fails, stock unchanged, no second order
	status, _, raw = doJSON(t, app, "POST", "/order", map[string]any{
		"customer_id": customerID, "product_id": productID, "quantity": 10,
	})
	wantStatus(t, status, 400, raw)
	status, body, raw = doJSON(t, app, "GET", "/product/1", nil)
	wantStatus(t, status, 200, raw)
	if body["stock"].(float64) != 3 {
		t.Fatalf("failed placement changed stock: %s", raw)
	}

	// cancel removes the row and never restocks
	status, body, raw = doJSON(t, app, "DELETE", "/order/1", nil)
	wantStatus(t, status, 200, raw)
	if body["detail"] != "Order cancelled successfully." {
		t.Fatalf("bad confirmation: %s", raw)
	}
	status, _, raw = doJSON(t, app, "DELETE", "/order/1", nil)
	wantStatus(t, status, 404, raw)
	status, body, raw = doJSON(t, app, "GET", "/product/1", nil)
	wantStatus(t, status, 200, raw)
	if body["stock"].(float64) != 3 {
		t.Fatalf("cancel restocked: %s", raw)
	}
}

func TestOrderMissingReferences(t *testing.T) {
	app := newTestApp(t)
	customerID, _ := seedOrderWorld(t, app)

	status, _, raw := doJSON(t, app, "POST", "/order", map[string]any{
		"customer_id": 999, "product_id": 1, "quantity": 1,
	})
	wantStatus(t, status, 404, raw)

	status, _, raw = doJSON(t, app, "POST", "/order", map[string]any{
		"customer_id": customerID, "product_id": 999, "quantity": 1,
	})
	wantStatus(t, status, 404, raw)

	status, _, raw = doJSON(t, app, "POST", "/order", map[string]any{
		"customer_id": customerID, "product_id": 1, "quantity": 0,
	})
	wantStatus(t, status, 400, raw)
}

func TestProductCRUDAndHealth(t *testing.T) {
	app := newTestApp(t)

	status, _, raw := doJSON(t, app, "GET", "/products", nil)
	wantStatus(t, status, 200, raw)
	if string(raw) != "[]" {
		t.Fatalf("empty catalog should list as [], got %s", raw)
	}

	status, _, raw = doJSON(t, app, "GET", "/product/1", nil)
	wantStatus(t, status, 404, raw)

	status, _, raw = doJSON(t, app, "POST", "/product", map[string]any{
		"name": "Gadget", "stock": 3, "MRP": 50, "costPrice": 25,
	})
	wantStatus(t, status, 200, raw)

	status, body, raw := doJSON(t, app, "PUT", "/product/update/1", map[string]any{
		"name": "Gadget v2", "stock": 8, "MRP": 60, "costPrice": 30, "discount": 5,
	})
	wantStatus(t, status, 200, raw)
	if body["detail"] != "Product updated successfully." {
		t.Fatalf("bad confirmation: %s", raw)
	}

	status, _, raw = doJSON(t, app, "DELETE", "/product/1", nil)
	wantStatus(t, status, 200, raw)
	status, _, raw = doJSON(t, app, "DELETE", "/product/1", nil)
	wantStatus(t, status, 404, raw)

	status, body, raw = doJSON(t, app, "GET", "/healthz", nil)
	wantStatus(t, status, 200, raw)
	if body["ok"] != true {
		t.Fatalf("healthz: %s", raw)
	}

	status, _, raw = doJSON(t, app, "GET", "/no-such-route", nil)
	wantStatus(t, status, 404, raw)
}
