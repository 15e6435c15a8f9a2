package handlers_test

import (
	"strings"
	"testing"
)

func TestCustomerCreateConflictAndProfileShape(t *testing.T) {
	app := newTestApp(t)

	status, body, raw := doJSON(t, app, "POST", "/customer", map[string]any{
		"name": "Alice", "email": "alice@shopcore.test", "password": "S3cret!pw",
		"phone_number": "555-0100", "address": "1 Main St",
	})
	wantStatus(t, status, 200, raw)
	if body["customer_id"] == nil || body["email"] != "alice@shopcore.test" {
		t.Fatalf("bad profile: %s", raw)
	}
	// the password never appears in a response, hashed or otherwise
	if strings.Contains(string(raw), "password") || strings.Contains(string(raw), "S3cret!pw") {
		t.Fatalf("password leaked: %s", raw)
	}

	// duplicate email -> 400, set still has one row
	status, _, raw = doJSON(t, app, "POST", "/customer", map[string]any{
		"name": "Mallory", "email": "alice@shopcore.test", "password": "other",
	})
	wantStatus(t, status, 400, raw)

	status, _, raw = doJSON(t, app, "GET", "/customers", nil)
	wantStatus(t, status, 200, raw)
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") || strings.Count(string(raw), "customer_id") != 1 {
		t.Fatalf("want one profile in list, got %s", raw)
	}
}

func TestCustomerNotFoundAndBadID(t *testing.T) {
	app := newTestApp(t)

	status, _, raw := doJSON(t, app, "GET", "/customer/99", nil)
	wantStatus(t, status, 404, raw)
	status, _, raw = doJSON(t, app, "DELETE", "/customer/99", nil)
	wantStatus(t, status, 404, raw)
	status, _, raw = doJSON(t, app, "PUT", "/customer/update/99", map[string]any{
		"name": "X", "email": "x@shopcore.test",
	})
	wantStatus(t, status, 404, raw)
	status, _, raw = doJSON(t, app, "GET", "/customer/not-a-number", nil)
	wantStatus(t, status, 400, raw)
}

func TestCustomerLoginAndPasswordChange(t *testing.T) {
	app := newTestApp(t)

	status, body, raw := doJSON(t, app, "POST", "/customer", map[string]any{
		"name": "Bob", "email": "bob@shopcore.test", "password": "old-pass",
	})
	wantStatus(t, status, 200, raw)
	id := int64(body["customer_id"].(float64))

	status, _, raw = doJSON(t, app, "POST", "/customer/get", map[string]any{
		"customer_id": id, "password": "wrong",
	})
	wantStatus(t, status, 400, raw)

	status, body, raw = doJSON(t, app, "POST", "/customer/get", map[string]any{
		"customer_id": id, "password": "old-pass",
	})
	wantStatus(t, status, 200, raw)
	if body["name"] != "Bob" {
		t.Fatalf("bad login profile: %s", raw)
	}

	status, _, raw = doJSON(t, app, "PUT", "/customer/change-password/99", map[string]any{
		"old_password": "old-pass", "new_password": "new-pass",
	})
	wantStatus(t, status, 404, raw)

	status, _, raw = doJSON(t, app, "PUT", "/customer/change-password/1", map[string]any{
		"old_password": "wrong", "new_password": "new-pass",
	})
	wantStatus(t, status, 400, raw)

	status, body, raw = doJSON(t, app, "PUT", "/customer/change-password/1", map[string]any{
		"old_password": "old-pass", "new_password": "new-pass",
	})
	wantStatus(t, status, 200, raw)
	if body["detail"] != "Password updated successfully." {
		t.Fatalf("bad confirmation: %s", raw)
	}

	status, _, raw = doJSON(t, app, "POST", "/customer/get", map[string]any{
		"customer_id": id, "password": "new-pass",
	})
	wantStatus(t, status, 200, raw)
}

func TestManufacturerMirror(t *testing.T) {
	app := newTestApp(t)

	status, body, raw := doJSON(t, app, "POST", "/manufacturer", map[string]any{
		"name": "Makers Inc", "email": "makers@shopcore.test", "password": "maker-pw", "address": "HQ",
	})
	wantStatus(t, status, 200, raw)
	if body["manufacturer_id"] == nil {
		t.Fatalf("missing manufacturer_id: %s", raw)
	}

	status, _, raw = doJSON(t, app, "POST", "/manufacturer", map[string]any{
		"name": "Copy Cat", "email": "makers@shopcore.test", "password": "x",
	})
	wantStatus(t, status, 400, raw)

	status, _, raw = doJSON(t, app, "POST", "/manufacturer/get", map[string]any{
		"manufacturer_id": 1, "password": "maker-pw",
	})
	wantStatus(t, status, 200, raw)

	status, body, raw = doJSON(t, app, "PUT", "/manufacturer/update/1", map[string]any{
		"name": "Makers Intl", "email": "makers@shopcore.test", "address": "New HQ",
	})
	wantStatus(t, status, 200, raw)
	if body["detail"] != "Manufacturer updated successfully." {
		t.Fatalf("bad confirmation: %s", raw)
	}

	status, _, raw = doJSON(t, app, "DELETE", "/manufacturer/1", nil)
	wantStatus(t, status, 200, raw)
	status, _, raw = doJSON(t, app, "GET", "/manufacturer/1", nil)
	wantStatus(t, status, 404, raw)
}
