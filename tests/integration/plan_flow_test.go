package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestPlanFlow_DefaultsFromActiveConfig(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	// Step 1: Create a configuration with plan defaults and a savings line
	// that only applies from October onward.
	rec := app.request("POST", "/api/v1/configs",
		`{"initial_balance":500000,"start_date":"2025-07-01T00:00:00Z","simulation_months":6,
		  "default_salary":300000,"default_food":40000,
		  "savings_enabled":true,"savings_amount":30000,"savings_start_month":"2025-10"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating config, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 2: A bare plan before the savings start month gets salary and
	// food defaults but no savings.
	rec = app.request("POST", "/api/v1/plans", `{"year_month":"2025-08"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	plan := parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["salary"].(float64) != 300000 {
		t.Errorf("expected default salary 300000, got %v", plan["salary"])
	}
	if plan["food"].(float64) != 40000 {
		t.Errorf("expected default food 40000, got %v", plan["food"])
	}
	if plan["savings"].(float64) != 0 {
		t.Errorf("expected no savings before start month, got %v", plan["savings"])
	}

	// Step 3: A plan from the savings start month includes the savings line.
	rec = app.request("POST", "/api/v1/plans", `{"year_month":"2025-10"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	plan = parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["savings"].(float64) != 30000 {
		t.Errorf("expected savings 30000 from start month, got %v", plan["savings"])
	}

	// Step 4: Explicit amounts win over defaults.
	rec = app.request("POST", "/api/v1/plans",
		`{"year_month":"2025-09","salary":350000,"rent":85000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	plan = parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["salary"].(float64) != 350000 {
		t.Errorf("expected explicit salary 350000, got %v", plan["salary"])
	}
	if plan["rent"].(float64) != 85000 {
		t.Errorf("expected rent 85000, got %v", plan["rent"])
	}

	// Step 5: Plans can be fetched by month.
	rec = app.request("GET", "/api/v1/plans/month/2025-09", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching by month, got %d: %s", rec.Code, rec.Body.String())
	}
	plan = parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["year_month"] != "2025-09" {
		t.Errorf("expected plan for 2025-09, got %v", plan["year_month"])
	}
	rec = app.request("GET", "/api/v1/plans/month/2025-12", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a month without a plan, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPlanFlow_CrudAndSummary(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	rec := app.request("POST", "/api/v1/configs",
		`{"initial_balance":0,"start_date":"2025-07-01T00:00:00Z","simulation_months":3}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating config, got %d: %s", rec.Code, rec.Body.String())
	}

	// Create
	rec = app.request("POST", "/api/v1/plans",
		`{"year_month":"2025-07","salary":300000,"rent":85000,"food":40000}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	planID := parseJSON(t, rec)["plan"].(map[string]interface{})["id"].(string)

	// Duplicate month is rejected
	rec = app.request("POST", "/api/v1/plans", `{"year_month":"2025-07"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate month, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "DUPLICATE_PLAN_MONTH" {
		t.Errorf("expected DUPLICATE_PLAN_MONTH, got %s", code)
	}

	// List
	rec = app.request("GET", "/api/v1/plans", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing plans, got %d: %s", rec.Code, rec.Body.String())
	}
	list := parseJSON(t, rec)
	if list["total_items"].(float64) != 1 {
		t.Errorf("expected 1 plan, got %v", list["total_items"])
	}

	// Update one column
	rec = app.request("PUT", "/api/v1/plans/"+planID, `{"rent":90000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	plan := parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["rent"].(float64) != 90000 {
		t.Errorf("expected rent 90000 after update, got %v", plan["rent"])
	}
	if plan["salary"].(float64) != 300000 {
		t.Errorf("expected salary untouched by partial update, got %v", plan["salary"])
	}

	// Summary
	rec = app.request("GET", fmt.Sprintf("/api/v1/plans/%s/summary", planID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for summary, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_income"].(float64) != 300000 {
		t.Errorf("expected total income 300000, got %v", summary["total_income"])
	}
	if summary["total_expenses"].(float64) != 130000 {
		t.Errorf("expected total expenses 130000 (90000+40000), got %v", summary["total_expenses"])
	}
	if summary["net_income"].(float64) != 170000 {
		t.Errorf("expected net income 170000, got %v", summary["net_income"])
	}

	// Delete
	rec = app.request("DELETE", "/api/v1/plans/"+planID, "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 deleting plan, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/plans/"+planID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPlanFlow_NoActiveConfigMeansNoDefaults(t *testing.T) {
	app := setupApp(t)
	token := app.login(t)

	rec := app.request("POST", "/api/v1/plans", `{"year_month":"2025-07"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating plan, got %d: %s", rec.Code, rec.Body.String())
	}
	plan := parseJSON(t, rec)["plan"].(map[string]interface{})
	if plan["salary"].(float64) != 0 {
		t.Errorf("expected zero salary without an active config, got %v", plan["salary"])
	}
	if plan["food"].(float64) != 0 {
		t.Errorf("expected zero food without an active config, got %v", plan["food"])
	}
}
