package payments

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupHandlerApp(t *testing.T) *fiber.App {
	t.Helper()
	h := NewHandler(newTestService(t, nil))
	app := fiber.New()
	app.Post("/links", h.CreateLink)
	app.Get("/providers", h.ListProviders)
	return app
}

func postLink(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/links", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(payload, &decoded)
	return resp.StatusCode, decoded
}

func TestCreateLinkHandler(t *testing.T) {
	app := setupHandlerApp(t)

	status, body := postLink(t, app, `{"provider":"basic","order_id":1,"amount":5}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected %d got %d", fiber.StatusCreated, status)
	}
	if body["link"] != "pay.system1.ru/order?id=1&amount=5&hash=9bf31c7ff062936a96d3c8bd1f8f2ff3" {
		t.Fatalf("unexpected link %v", body["link"])
	}
}

func TestCreateLinkHandlerErrors(t *testing.T) {
	app := setupHandlerApp(t)

	cases := []struct {
		body string
		want int
	}{
		{`{"provider":"nope","order_id":1,"amount":5}`, fiber.StatusNotFound},
		{`{"provider":"basic","order_id":-1,"amount":5}`, fiber.StatusBadRequest},
		{`{"provider":"signed","order_id":1,"amount":0}`, fiber.StatusBadRequest},
		{`not json`, fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		if status, _ := postLink(t, app, tc.body); status != tc.want {
			t.Fatalf("body %s: expected %d got %d", tc.body, tc.want, status)
		}
	}
}

func TestListProvidersHandler(t *testing.T) {
	app := setupHandlerApp(t)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/providers", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Providers []string `json:"providers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(body.Providers, ",") != "basic,priced,signed" {
		t.Fatalf("unexpected providers %v", body.Providers)
	}
}
