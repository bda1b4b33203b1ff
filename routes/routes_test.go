package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestore/database"
	"gamestore/models"
	"gamestore/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "xliunx")
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db
	database.SeedAdmin(db)

	app := fiber.New()
	routes.Setup(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func adminLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doRequest(t, app, "POST", "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "xliunx",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func registerUser(t *testing.T, app *fiber.App, username, email string) string {
	t.Helper()
	status, body := doRequest(t, app, "POST", "/api/users/register", "", map[string]string{
		"username":  username,
		"email":     email,
		"password":  "secret123",
		"full_name": "Test Customer",
		"phone":     "777000111",
	})
	require.Equal(t, http.StatusCreated, status)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAdminLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, "POST", "/api/admin/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", body["detail"])
	assert.NotContains(t, body, "token")
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	app := setupApp(t)

	status, _ := doRequest(t, app, "GET", "/api/admin/games", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, "GET", "/api/admin/orders", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTokenDomainsAreSeparate(t *testing.T) {
	app := setupApp(t)
	adminToken := adminLogin(t, app)
	userToken := registerUser(t, app, "crossdomain", "cross@example.com")

	status, _ := doRequest(t, app, "GET", "/api/admin/games", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "user token must not open admin endpoints")

	status, _ = doRequest(t, app, "GET", "/api/users/me", adminToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "admin token must not open user endpoints")
}

func gamePayload(name string, active bool) map[string]any {
	return map[string]any{
		"name":           name,
		"name_ar":        name + " ar",
		"description":    "desc",
		"description_ar": "desc ar",
		"image_url":      "https://img.example/x.jpg",
		"is_active":      active,
		"prices": []map[string]string{
			{"amount": "100 coins", "price": "10", "currency": "SAR"},
		},
	}
}

func listNames(body map[string]any, key string) []string {
	items, _ := body[key].([]any)
	names := make([]string, 0, len(items))
	for _, it := range items {
		m := it.(map[string]any)
		if n, ok := m["name"].(string); ok {
			names = append(names, n)
		} else if n, ok := m["title"].(string); ok {
			names = append(names, n)
		}
	}
	return names
}

func TestGameCreateListVisibility(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	status, body := doRequest(t, app, "POST", "/api/admin/games", token, gamePayload("Active Game", true))
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, body["success"])
	require.NotEmpty(t, body["id"])

	status, body = doRequest(t, app, "POST", "/api/admin/games", token, gamePayload("Hidden Game", false))
	require.Equal(t, http.StatusCreated, status)
	hiddenID := body["id"].(string)

	status, body = doRequest(t, app, "GET", "/api/admin/games", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.ElementsMatch(t, []string{"Active Game", "Hidden Game"}, listNames(body, "games"))

	status, body = doRequest(t, app, "GET", "/api/games", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Active Game"}, listNames(body, "games"))

	// flipping the flag moves the record across the public fence
	payload := gamePayload("Hidden Game", true)
	status, _ = doRequest(t, app, "PUT", "/api/admin/games/"+hiddenID, token, payload)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, "GET", "/api/games", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.ElementsMatch(t, []string{"Active Game", "Hidden Game"}, listNames(body, "games"))

	status, _ = doRequest(t, app, "DELETE", "/api/admin/games/"+hiddenID, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, "DELETE", "/api/admin/games/"+hiddenID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGameValidation(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	payload := gamePayload("No Prices", true)
	payload["prices"] = []map[string]string{}
	status, body := doRequest(t, app, "POST", "/api/admin/games", token, payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "at least one price package is required", body["detail"])
}

func TestNewsCRUD(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	payload := map[string]any{
		"title":      "Launch",
		"title_ar":   "إطلاق",
		"content":    "We are live",
		"content_ar": "نحن هنا",
		"is_active":  true,
	}
	status, body := doRequest(t, app, "POST", "/api/admin/news", token, payload)
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	status, body = doRequest(t, app, "GET", "/api/news", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Launch"}, listNames(body, "news"))

	payload["is_active"] = false
	status, _ = doRequest(t, app, "PUT", "/api/admin/news/"+id, token, payload)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, "GET", "/api/news", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, listNames(body, "news"))

	status, _ = doRequest(t, app, "PUT", "/api/admin/news/unknown-id", token, payload)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBannerCRUD(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	payload := map[string]any{
		"title":     "Sale",
		"title_ar":  "تخفيضات",
		"image_url": "https://img.example/banner.jpg",
		"is_active": true,
	}
	status, body := doRequest(t, app, "POST", "/api/admin/banners", token, payload)
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	status, body = doRequest(t, app, "GET", "/api/banners", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"Sale"}, listNames(body, "banners"))

	status, _ = doRequest(t, app, "DELETE", "/api/admin/banners/"+id, token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, "GET", "/api/banners", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, listNames(body, "banners"))
}

func TestPublicGameByID(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	status, body := doRequest(t, app, "POST", "/api/admin/games", token, gamePayload("Solo", true))
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	status, body = doRequest(t, app, "GET", "/api/games/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Solo", body["name"])

	status, _ = doRequest(t, app, "GET", "/api/games/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOrderRoundTripVerbatim(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	payload := gamePayload("PUBG UC", true)
	payload["prices"] = []map[string]string{
		{"amount": "60 يوسي", "price": "150", "currency": "ريال"},
	}
	status, body := doRequest(t, app, "POST", "/api/admin/games", token, payload)
	require.Equal(t, http.StatusCreated, status)
	gameID := body["id"].(string)

	status, body = doRequest(t, app, "POST", "/api/orders", "", map[string]string{
		"game_id":        gameID,
		"game_name":      "PUBG UC",
		"player_id":      "5551234",
		"amount":         "60 يوسي",
		"price":          "150",
		"currency":       "ريال",
		"customer_name":  "Ahmed",
		"customer_phone": "777123456",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	require.NotEmpty(t, body["order_id"])
	whatsapp, _ := body["whatsapp_url"].(string)
	assert.Contains(t, whatsapp, "https://wa.me/")

	// catalog edits after the fact must not touch the snapshot
	payload["name"] = "Renamed Game"
	payload["prices"] = []map[string]string{
		{"amount": "60 يوسي", "price": "999", "currency": "USD"},
	}
	status, _ = doRequest(t, app, "PUT", "/api/admin/games/"+gameID, token, payload)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, "GET", "/api/admin/orders", token, nil)
	require.Equal(t, http.StatusOK, status)
	ordersList, _ := body["orders"].([]any)
	require.Len(t, ordersList, 1)
	order := ordersList[0].(map[string]any)
	assert.Equal(t, "PUBG UC", order["game_name"])
	assert.Equal(t, "150", order["price"])
	assert.Equal(t, "ريال", order["currency"])
	assert.Equal(t, "60 يوسي", order["amount"])
	assert.Equal(t, models.OrderStatusPending, order["status"])
}

func TestOrderValidation(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, "POST", "/api/orders", "", map[string]string{
		"game_id":        "some-game",
		"amount":         "100",
		"price":          "5",
		"currency":       "SAR",
		"customer_name":  "Ahmed",
		"customer_phone": "777123456",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "player_id is required", body["detail"])
}

func TestUserRegisterLoginMe(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "ahmed", "ahmed@example.com")

	status, body := doRequest(t, app, "GET", "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ahmed", body["username"])
	assert.Equal(t, "ahmed@example.com", body["email"])
	assert.Equal(t, "Test Customer", body["full_name"])
	assert.NotContains(t, body, "password")

	// duplicate username surfaces the server detail verbatim
	status, body = doRequest(t, app, "POST", "/api/users/register", "", map[string]string{
		"username":  "ahmed",
		"email":     "other@example.com",
		"password":  "secret123",
		"full_name": "Someone Else",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Username already taken", body["detail"])

	status, body = doRequest(t, app, "POST", "/api/users/login", "", map[string]string{
		"username": "ahmed",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid username or password", body["detail"])

	status, body = doRequest(t, app, "POST", "/api/users/login", "", map[string]string{
		"username": "ahmed",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["access_token"])

	status, body = doRequest(t, app, "GET", "/api/users/me", body["access_token"].(string), nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["last_login"])
}

func TestUserOrderHistoryScoping(t *testing.T) {
	app := setupApp(t)
	adminToken := adminLogin(t, app)

	status, body := doRequest(t, app, "POST", "/api/admin/games", adminToken, gamePayload("Coins", true))
	require.Equal(t, http.StatusCreated, status)
	gameID := body["id"].(string)

	ahmedToken := registerUser(t, app, "ahmed", "ahmed@example.com")
	registerUser(t, app, "sara", "sara@example.com")

	orderBody := map[string]string{
		"game_id":        gameID,
		"player_id":      "111",
		"amount":         "100 coins",
		"price":          "10",
		"currency":       "SAR",
		"customer_name":  "Ahmed",
		"customer_phone": "777123456",
	}

	// logged-in order
	status, _ = doRequest(t, app, "POST", "/api/orders", ahmedToken, orderBody)
	require.Equal(t, http.StatusOK, status)

	// anonymous order tied to the account's email
	anon := map[string]string{}
	for k, v := range orderBody {
		anon[k] = v
	}
	anon["player_id"] = "222"
	anon["customer_email"] = "ahmed@example.com"
	status, _ = doRequest(t, app, "POST", "/api/orders", "", anon)
	require.Equal(t, http.StatusOK, status)

	// someone else's anonymous order
	other := map[string]string{}
	for k, v := range orderBody {
		other[k] = v
	}
	other["player_id"] = "333"
	status, _ = doRequest(t, app, "POST", "/api/orders", "", other)
	require.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, "GET", "/api/users/orders", ahmedToken, nil)
	require.Equal(t, http.StatusOK, status)
	ordersList, _ := body["orders"].([]any)
	require.Len(t, ordersList, 2)
	players := []string{}
	for _, o := range ordersList {
		players = append(players, o.(map[string]any)["player_id"].(string))
	}
	assert.ElementsMatch(t, []string{"111", "222"}, players)
}

func TestAdminStats(t *testing.T) {
	app := setupApp(t)
	token := adminLogin(t, app)

	orders := []models.Order{
		{GameID: "g1", GameName: "G1", PlayerID: "1", Amount: "a", Price: "150", Currency: "ريال", CustomerName: "x", CustomerPhone: "1"},
		{GameID: "g1", GameName: "G1", PlayerID: "2", Amount: "a", Price: "20", Currency: "ريال", CustomerName: "x", CustomerPhone: "1"},
		{GameID: "g2", GameName: "G2", PlayerID: "3", Amount: "a", Price: "free", Currency: "USD", CustomerName: "x", CustomerPhone: "1", Status: models.OrderStatusCompleted},
	}
	for i := range orders {
		require.NoError(t, database.DB.Create(&orders[i]).Error)
	}

	status, body := doRequest(t, app, "GET", "/api/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["total_orders"])
	assert.Equal(t, float64(2), body["pending_orders"])
	revenue, _ := body["revenue"].(map[string]any)
	assert.Equal(t, "170", revenue["ريال"])
	assert.NotContains(t, revenue, "USD")
}
