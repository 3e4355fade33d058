package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"as-production-store/cart"
	"as-production-store/models"

	"github.com/gin-gonic/gin"
)

type fakeCatalog struct {
	products map[string]*models.Product
}

func (f *fakeCatalog) FindActiveByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return p, nil
}

type fakeSettings struct {
	settings *models.EnquirySettings
	err      error
}

func (f *fakeSettings) GetEnquirySettings(_ context.Context) (*models.EnquirySettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
}

func newTestRouter(catalog ProductFinder, settings EnquirySettingsSource) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewCartController(cart.NewStore(), catalog, settings)

	router := gin.New()
	router.GET("/cart", ctrl.GetCart)
	router.DELETE("/cart", ctrl.ClearCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items/:id", ctrl.UpdateItem)
	router.DELETE("/cart/items/:id", ctrl.RemoveItem)
	router.POST("/cart/enquiry", ctrl.ComposeEnquiry)
	return router
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]*models.Product{
		"p-1": {ID: "p-1", Name: "Shirt", Price: 500, Category: "Apparel", ImageURLs: []string{"https://img/shirt.jpg"}, ShowPrice: true},
		"p-2": {ID: "p-2", Name: "Gift Card", Price: 250, Category: "Gifts", ShowPrice: false},
	}}
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(SessionHeader, token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func cartData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	data, ok := decodeBody(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatal("response has no data object")
	}
	return data
}

func TestGetCartIssuesSessionToken(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	w := doRequest(t, router, http.MethodGet, "/cart", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	token := w.Header().Get(SessionHeader)
	if token == "" {
		t.Error("expected a session token on the response")
	}

	data := cartData(t, w)
	if data["count"].(float64) != 0 {
		t.Errorf("expected empty cart, got count %v", data["count"])
	}
}

func TestGetCartEchoesExistingToken(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	w := doRequest(t, router, http.MethodGet, "/cart", "existing-token", "")
	if got := w.Header().Get(SessionHeader); got != "existing-token" {
		t.Errorf("expected token to be echoed, got %q", got)
	}
}

func TestAddItemMergesByProduct(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	w := doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := cartData(t, w)
	items := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if data["count"].(float64) != 2 {
		t.Errorf("expected count 2, got %v", data["count"])
	}
	if data["total_formatted"].(string) != "₹1,000.00" {
		t.Errorf("expected total ₹1,000.00, got %v", data["total_formatted"])
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	w := doRequest(t, router, http.MethodPost, "/cart/items", "session-a", `{"product_id":"missing"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAddItemMissingProductID(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	w := doRequest(t, router, http.MethodPost, "/cart/items", "session-a", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	doRequest(t, router, http.MethodPost, "/cart/items", "session-a", `{"product_id":"p-1"}`)

	w := doRequest(t, router, http.MethodGet, "/cart", "session-b", "")
	data := cartData(t, w)
	if data["count"].(float64) != 0 {
		t.Errorf("expected session-b cart to be empty, got count %v", data["count"])
	}
}

func TestUpdateItemQuantity(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	w := doRequest(t, router, http.MethodPatch, "/cart/items/p-1", token, `{"quantity":5}`)

	data := cartData(t, w)
	if data["count"].(float64) != 5 {
		t.Errorf("expected count 5, got %v", data["count"])
	}
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	w := doRequest(t, router, http.MethodPatch, "/cart/items/p-1", token, `{"quantity":0}`)

	data := cartData(t, w)
	if items := data["items"].([]any); len(items) != 0 {
		t.Errorf("expected empty cart after zero quantity, got %d items", len(items))
	}
}

func TestRemoveItem(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-2"}`)

	w := doRequest(t, router, http.MethodDelete, "/cart/items/p-1", token, "")
	data := cartData(t, w)
	items := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one remaining item, got %d", len(items))
	}
}

func TestClearCart(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	w := doRequest(t, router, http.MethodDelete, "/cart", token, "")

	data := cartData(t, w)
	if data["count"].(float64) != 0 {
		t.Errorf("expected cleared cart, got count %v", data["count"])
	}
}

func TestComposeEnquiryEmptyCart(t *testing.T) {
	router := newTestRouter(testCatalog(), &fakeSettings{})

	w := doRequest(t, router, http.MethodPost, "/cart/enquiry", "session-a", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty cart, got %d", w.Code)
	}
}

func TestComposeEnquiryUsesStoredSettings(t *testing.T) {
	settings := &fakeSettings{settings: &models.EnquirySettings{
		WhatsAppNumber: "919876543210",
		PrefilledText:  "Order:\n{{items}}\nTotal: {{total}}",
	}}
	router := newTestRouter(testCatalog(), settings)
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)
	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)

	w := doRequest(t, router, http.MethodPost, "/cart/enquiry", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := cartData(t, w)
	message := data["message"].(string)
	if message != "Order:\nShirt (x2) - ₹1,000.00\nTotal: ₹1,000.00" {
		t.Errorf("unexpected message: %q", message)
	}

	link := data["whatsapp_url"].(string)
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Errorf("unexpected deep link: %q", link)
	}
}

func TestComposeEnquiryFallsBackOnSettingsError(t *testing.T) {
	settings := &fakeSettings{err: errors.New("no rows in result set")}
	router := newTestRouter(testCatalog(), settings)
	token := "session-a"

	doRequest(t, router, http.MethodPost, "/cart/items", token, `{"product_id":"p-1"}`)

	w := doRequest(t, router, http.MethodPost, "/cart/enquiry", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	link := cartData(t, w)["whatsapp_url"].(string)
	if !strings.HasPrefix(link, "https://wa.me/"+cart.DefaultWhatsAppNumber+"?text=") {
		t.Errorf("expected default number in deep link, got %q", link)
	}
}
