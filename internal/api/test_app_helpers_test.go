package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mealtrail/internal/db"
	"github.com/terraincognita07/mealtrail/internal/session"
	"gorm.io/gorm"
)

const testCookieName = "mealtrail_session"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	testLogger := logrus.New()
	testLogger.SetOutput(io.Discard)

	databasePath := filepath.Join(t.TempDir(), "mealtrail-api-test.db")
	database, err := db.OpenSQLite(databasePath, testLogger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, SessionCookieSettings{
		Name: testCookieName,
		TTL:  session.TTL,
	}, testLogger)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, body string, sessionCookie string) *http.Response {
	t.Helper()

	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, path, nil)
	} else {
		request = httptest.NewRequest(method, path, strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		request.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionCookie})
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func sessionCookieValue(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == testCookieName {
			return cookie.Value
		}
	}
	return ""
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer func() {
		_ = response.Body.Close()
	}()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// registerTestUser creates a user through the API and returns the session
// token the server bound it to.
func registerTestUser(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/users", `{"name":"`+name+`","email":"`+email+`"}`, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating user %s, got %d", email, response.StatusCode)
	}
	token := sessionCookieValue(t, response)
	if token == "" {
		t.Fatal("expected a session cookie on user creation")
	}
	return token
}

func createTestMealViaAPI(t *testing.T, app *fiber.App, token string, body string) mealView {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/meals", body, token)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating meal, got %d", response.StatusCode)
	}
	view := mealView{}
	decodeJSONBody(t, response, &view)
	return view
}
