package order_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/handlers/order"
	"dmac_back_end/internal/models"
	"dmac_back_end/internal/paynow"
	"dmac_back_end/internal/routes"
	"dmac_back_end/internal/storage"
)

// fakeGateway remplace le client Paynow dans les tests.
type fakeGateway struct {
	sendResp  *paynow.InitResponse
	sendErr   error
	pollResp  *paynow.StatusResponse
	pollErr   error
	verifyOK  bool
	sendCalls int
	pollCalls int
}

func (f *fakeGateway) Send(p *paynow.Payment) (*paynow.InitResponse, error) {
	f.sendCalls++
	return f.sendResp, f.sendErr
}

func (f *fakeGateway) PollTransaction(pollURL string) (*paynow.StatusResponse, error) {
	f.pollCalls++
	return f.pollResp, f.pollErr
}

func (f *fakeGateway) VerifyWebhook(values url.Values) bool {
	return f.verifyOK
}

func setupRouter(t *testing.T) (*gin.Engine, *storage.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := storage.NewMemory()
	storage.Store = mem
	order.Gateway = nil
	t.Cleanup(func() {
		storage.Store = nil
		order.Gateway = nil
	})

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, mem
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCheckout() map[string]any {
	return map[string]any{
		"customerName":  "Tatenda Mhizha",
		"customerEmail": "tatenda@example.com",
		"customerPhone": "+263771234567",
		"items": []map[string]any{
			{"productId": "p1", "productName": "Premium Yoga Mat", "quantity": 2, "price": 10.00},
			{"productId": "p2", "productName": "Organic Herbal Tea Collection", "quantity": 1, "price": 5.50},
		},
	}
}

func singleOrder(t *testing.T, mem *storage.MemoryStorage) *models.Order {
	t.Helper()
	orders, err := mem.GetOrders(context.Background())
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("len(orders) = %d, attendu 1", len(orders))
	}
	return &orders[0]
}

func TestCheckoutSuccess(t *testing.T) {
	r, mem := setupRouter(t)
	order.Gateway = &fakeGateway{
		sendResp: &paynow.InitResponse{
			Success:     true,
			RedirectURL: "https://www.paynow.co.zw/payment/xyz",
			PollURL:     "https://www.paynow.co.zw/interface/poll/xyz",
		},
	}

	w := postJSON(r, "/api/orders/checkout", validCheckout())
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, corps: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["redirectUrl"] != "https://www.paynow.co.zw/payment/xyz" {
		t.Errorf("redirectUrl = %v", resp["redirectUrl"])
	}
	if resp["qrCode"] == nil {
		t.Error("qrCode absent de la réponse")
	}
	if resp["error"] != nil {
		t.Errorf("error inattendu: %v", resp["error"])
	}

	o := singleOrder(t, mem)
	// total = 10.00×2 + 5.50×1
	if o.TotalAmount != 25.50 {
		t.Errorf("TotalAmount = %v, attendu 25.50", o.TotalAmount)
	}
	if o.Status != models.OrderStatusAwaitingPayment {
		t.Errorf("Status = %q", o.Status)
	}
	if o.PollURL == nil || *o.PollURL != "https://www.paynow.co.zw/interface/poll/xyz" {
		t.Errorf("PollURL = %v", o.PollURL)
	}

	items, _ := mem.GetOrderItems(context.Background(), o.ID)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d", len(items))
	}
	if items[0].ProductName != "Premium Yoga Mat" || items[0].Quantity != 2 {
		t.Errorf("ligne dénormalisée inattendue: %+v", items[0])
	}
}

func TestCheckoutMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"nom manquant", func(m map[string]any) { m["customerName"] = "" }},
		{"email manquant", func(m map[string]any) { delete(m, "customerEmail") }},
		{"téléphone manquant", func(m map[string]any) { m["customerPhone"] = "" }},
		{"panier vide", func(m map[string]any) { m["items"] = []map[string]any{} }},
		{"items absents", func(m map[string]any) { delete(m, "items") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mem := setupRouter(t)

			body := validCheckout()
			tt.mutate(body)

			w := postJSON(r, "/api/orders/checkout", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("code = %d, attendu 400", w.Code)
			}

			// Aucune persistance avant validation
			orders, _ := mem.GetOrders(context.Background())
			if len(orders) != 0 {
				t.Errorf("%d commande(s) créée(s) malgré le rejet", len(orders))
			}
		})
	}
}

func TestCheckoutGatewayNotConfigured(t *testing.T) {
	r, mem := setupRouter(t)
	// Gateway nil = identifiants Paynow absents

	w := postJSON(r, "/api/orders/checkout", validCheckout())
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == nil {
		t.Error("message de fallback attendu")
	}
	if resp["redirectUrl"] != nil {
		t.Errorf("redirectUrl présent: %v", resp["redirectUrl"])
	}

	if o := singleOrder(t, mem); o.Status != models.OrderStatusPendingPayment {
		t.Errorf("Status = %q, attendu pending_payment", o.Status)
	}
}

func TestCheckoutGatewayUnavailable(t *testing.T) {
	r, mem := setupRouter(t)
	order.Gateway = &fakeGateway{sendErr: context.DeadlineExceeded}

	w := postJSON(r, "/api/orders/checkout", validCheckout())
	// L'échec transport ne remonte jamais en 5xx
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] == nil {
		t.Error("message de fallback attendu")
	}

	if o := singleOrder(t, mem); o.Status != models.OrderStatusPendingPayment {
		t.Errorf("Status = %q, attendu pending_payment", o.Status)
	}
}

func TestCheckoutGatewayRejection(t *testing.T) {
	r, mem := setupRouter(t)
	order.Gateway = &fakeGateway{
		sendResp: &paynow.InitResponse{Success: false, Error: "Insufficient merchant limits"},
	}

	w := postJSON(r, "/api/orders/checkout", validCheckout())
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Insufficient merchant limits" {
		t.Errorf("error = %v", resp["error"])
	}

	if o := singleOrder(t, mem); o.Status != models.OrderStatusPaymentFailed {
		t.Errorf("Status = %q, attendu payment_failed", o.Status)
	}
}

func TestCheckoutRoundsTotal(t *testing.T) {
	r, mem := setupRouter(t)

	body := validCheckout()
	body["items"] = []map[string]any{
		{"productId": "p1", "productName": "A", "quantity": 3, "price": 0.10},
	}

	w := postJSON(r, "/api/orders/checkout", body)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	// 0.1×3 en flottant = 0.30000000000000004 → arrondi à 0.30
	if o := singleOrder(t, mem); o.TotalAmount != 0.30 {
		t.Errorf("TotalAmount = %v, attendu 0.30", o.TotalAmount)
	}
}
