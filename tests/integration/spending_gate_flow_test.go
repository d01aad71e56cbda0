package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func errorCode(t *testing.T, result map[string]interface{}) string {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %v", result)
	}
	return errObj["code"].(string)
}

func TestSpendingGateFlow(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "gate@test.com", "password123")

	salaryID := app.categoryID(t, token, "Salary")
	groceriesID := app.categoryID(t, token, "Groceries")

	// Step 1: expense before any income is rejected
	rec := app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":5000,"description":"Too early"}`, groceriesID), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 before income, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, parseJSON(t, rec)); code != "NO_INCOME_RECORDED" {
		t.Errorf("expected NO_INCOME_RECORDED, got %s", code)
	}

	// Step 2: record income of $1000
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"income","amount":100000,"description":"Paycheck"}`, salaryID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for income, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 3: expense over the balance is rejected
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":120000,"description":"Splurge"}`, groceriesID), token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 over balance, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, parseJSON(t, rec)); code != "INSUFFICIENT_BALANCE" {
		t.Errorf("expected INSUFFICIENT_BALANCE, got %s", code)
	}

	// Step 4: expense within the balance succeeds
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"category_id":%q,"type":"expense","amount":40000,"description":"Weekly shop"}`, groceriesID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 within balance, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 5: balance reflects both entries
	rec = app.request("GET", "/api/v1/transactions/balance", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if balance := parseJSON(t, rec)["balance"].(float64); balance != 60000 {
		t.Errorf("expected balance 60000, got %.0f", balance)
	}

	// Step 6: both ledger entries earned activity points
	rec = app.request("GET", "/api/v1/profile", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]interface{})
	if user["points"].(float64) != 20 {
		t.Errorf("expected 20 points, got %.0f", user["points"].(float64))
	}
}

func TestSpendingGateFlow_DefaultCategories(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "defaults@test.com", "password123")

	rec := app.request("GET", "/api/v1/categories?page_size=100", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 12 {
		t.Errorf("expected 12 default categories, got %.0f", result["total_items"].(float64))
	}

	// Reserved categories cannot be renamed or deleted
	savingsID := app.categoryID(t, token, "Savings")
	rec = app.request("PUT", "/api/v1/categories/"+savingsID, `{"name":"My Stash"}`, token)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 renaming Savings, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/categories/"+savingsID, "", token)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 deleting Savings, got %d", rec.Code)
	}
}
