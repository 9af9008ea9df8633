package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/calendar"
	"github.com/y2-world/future-budget-simulator/internal/config"
	"github.com/y2-world/future-budget-simulator/internal/handlers"
	"github.com/y2-world/future-budget-simulator/internal/logger"
	"github.com/y2-world/future-budget-simulator/internal/middleware"
	"github.com/y2-world/future-budget-simulator/internal/services"
	"github.com/y2-world/future-budget-simulator/internal/testutil"
	"github.com/y2-world/future-budget-simulator/internal/validator"
)

const (
	testUsername = "owner"
	testPassword = "integration-secret"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	os.Setenv("AUTH_USERNAME", testUsername)
	os.Setenv("AUTH_PASSWORD", testPassword)
	os.Setenv("JWT_SECRET", "integration-test-secret")

	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	if _, err := config.Load(); err != nil {
		panic(err)
	}
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database. The business-day resolver treats only weekends as
// non-business days so test dates stay deterministic.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	resolver := calendar.NewResolver(calendar.NewFixedHolidays())
	configService := services.NewConfigService(db)
	planService := services.NewPlanService(db, configService)
	cardService := services.NewCardService(db)
	estimateService := services.NewEstimateService(db, cardService)
	chargeService := services.NewChargeService(db)
	simulationService := services.NewSimulationService(db, configService, estimateService, chargeService, resolver)
	eventService := services.NewEventService(db)

	authHandler := handlers.NewAuthHandler()
	configHandler := handlers.NewConfigHandler(configService)
	planHandler := handlers.NewPlanHandler(planService)
	cardHandler := handlers.NewCardHandler(cardService)
	estimateHandler := handlers.NewEstimateHandler(estimateService)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	eventHandler := handlers.NewEventHandler(eventService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	configs := protected.Group("/configs")
	configs.POST("", configHandler.CreateConfig)
	configs.GET("", configHandler.GetConfigs)
	configs.GET("/active", configHandler.GetActiveConfig)
	configs.PUT("/active/balance", configHandler.UpdateBalance)
	configs.PUT("/:id", configHandler.UpdateConfig)
	configs.POST("/:id/activate", configHandler.ActivateConfig)

	plans := protected.Group("/plans")
	plans.POST("", planHandler.CreatePlan)
	plans.GET("", planHandler.GetPlans)
	plans.GET("/:id", planHandler.GetPlan)
	plans.GET("/month/:month", planHandler.GetPlanByMonth)
	plans.PUT("/:id", planHandler.UpdatePlan)
	plans.DELETE("/:id", planHandler.DeletePlan)
	plans.GET("/:id/summary", planHandler.GetPlanSummary)

	cards := protected.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCard)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	estimates := protected.Group("/estimates")
	estimates.POST("", estimateHandler.CreateEstimate)
	estimates.GET("", estimateHandler.GetEstimates)
	estimates.PUT("/:id", estimateHandler.UpdateEstimate)
	estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	estimates.GET("/summary/:month", estimateHandler.GetMonthlySummary)

	charges := protected.Group("/charges")
	charges.POST("", chargeHandler.CreateCharge)
	charges.GET("", chargeHandler.GetCharges)
	charges.PUT("/:id", chargeHandler.UpdateCharge)
	charges.DELETE("/:id", chargeHandler.DeleteCharge)
	charges.POST("/:id/overrides", chargeHandler.CreateOverride)
	charges.DELETE("/:id/overrides/:month", chargeHandler.DeleteOverride)

	protected.POST("/simulation/run", simulationHandler.RunSimulation)
	events := protected.Group("/events")
	events.GET("", eventHandler.GetEvents)
	events.GET("/export", eventHandler.ExportEvents)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts the error code from an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// login authenticates with the owner credentials and returns the token.
func (app *testApp) login(t *testing.T) string {
	t.Helper()
	body := `{"username":"` + testUsername + `","password":"` + testPassword + `"}`
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	token, _ := result["token"].(string)
	if token == "" {
		t.Fatal("expected non-empty token from login")
	}
	return token
}
