package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/models"
	"dmac_back_end/internal/routes"
	"dmac_back_end/internal/storage"
	"dmac_back_end/internal/utils"
)

const testAdminPassword = "dmac-admin-2024"

func setupRouter(t *testing.T) (*gin.Engine, *storage.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("ADMIN_PASSWORD", testAdminPassword)
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	mem := storage.NewMemory()
	storage.Store = mem
	t.Cleanup(func() { storage.Store = nil })

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, mem
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, password string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/admin/login", "", map[string]string{"password": password})
	var resp map[string]any
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestLoginSuccess(t *testing.T) {
	r, _ := setupRouter(t)

	w, resp := login(t, r, testAdminPassword)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if resp["success"] != true {
		t.Error("success != true")
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("token absent")
	}
	if !utils.ParseAdminToken(token) {
		t.Error("le token émis ne se valide pas")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w, resp := login(t, r, "mauvais-mot-de-passe")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, attendu 401", w.Code)
	}
	if resp["success"] != false {
		t.Error("success != false")
	}
	if _, ok := resp["token"]; ok {
		t.Error("token présent dans une réponse de refus")
	}
}

func TestLoginMissingPassword(t *testing.T) {
	r, _ := setupRouter(t)

	w, _ := login(t, r, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, attendu 400", w.Code)
	}
}

func TestLoginNoPasswordConfigured(t *testing.T) {
	r, _ := setupRouter(t)
	t.Setenv("ADMIN_PASSWORD", "")

	// Sans secret configuré, tout login est refusé, y compris le vide
	w, _ := login(t, r, "")
	if w.Code == http.StatusOK {
		t.Fatal("login accepté sans mot de passe configuré")
	}
}

func TestLoginArgon2Hash(t *testing.T) {
	r, _ := setupRouter(t)

	hash, err := utils.HashPassword(testAdminPassword)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	// Le hash prime : le clair n'est plus consulté
	t.Setenv("ADMIN_PASSWORD", "autre-valeur")

	if w, _ := login(t, r, testAdminPassword); w.Code != http.StatusOK {
		t.Errorf("code = %d avec le bon mot de passe", w.Code)
	}
	if w, _ := login(t, r, "autre-valeur"); w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d avec le clair non hashé", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := setupRouter(t)

	tests := []struct {
		name  string
		token string
	}{
		{"sans token", ""},
		{"token corrompu", "n-importe-quoi"},
		{"ancien token statique", "dmac-admin-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/admin/events", tt.token, map[string]any{
				"title": "Yoga Retreat", "date": "2025-09-01",
			})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, attendu 401", w.Code)
			}
		})
	}
}

func TestEventLifecycle(t *testing.T) {
	r, mem := setupRouter(t)
	_, resp := login(t, r, testAdminPassword)
	token := resp["token"].(string)

	// Création avec défauts (venue et catégorie)
	w := doJSON(r, http.MethodPost, "/api/admin/events", token, map[string]any{
		"title":       "Full Moon Sound Bath",
		"date":        "2025-09-12",
		"startTime":   "18:00",
		"ticketPrice": 15.0,
		"capacity":    40,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("création: code = %d, corps: %s", w.Code, w.Body.String())
	}

	var created models.Event
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID == "" {
		t.Fatal("ID absent")
	}
	if created.Venue != "DMAC Lifestyle Centre" {
		t.Errorf("Venue = %q", created.Venue)
	}
	if created.Category != "General" {
		t.Errorf("Category = %q", created.Category)
	}
	if created.Images == nil {
		t.Error("Images devrait être un tableau vide, pas null")
	}

	// Lecture publique
	wGet := doJSON(r, http.MethodGet, "/api/events/"+created.ID, "", nil)
	if wGet.Code != http.StatusOK {
		t.Fatalf("lecture: code = %d", wGet.Code)
	}

	// Mise à jour
	w = doJSON(r, http.MethodPut, "/api/admin/events/"+created.ID, token, map[string]any{
		"title": "Full Moon Sound Bath (complet)",
		"date":  "2025-09-12",
		"venue": "Jardin DMAC",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("mise à jour: code = %d", w.Code)
	}
	updated, _ := mem.GetEvent(context.Background(), created.ID)
	if updated.Title != "Full Moon Sound Bath (complet)" || updated.Venue != "Jardin DMAC" {
		t.Errorf("événement mis à jour: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt modifié par la mise à jour")
	}

	// Suppression
	w = doJSON(r, http.MethodDelete, "/api/admin/events/"+created.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("suppression: code = %d", w.Code)
	}
	if e, _ := mem.GetEvent(context.Background(), created.ID); e != nil {
		t.Error("événement toujours présent après suppression")
	}
}

func TestEventUpdateNotFound(t *testing.T) {
	r, _ := setupRouter(t)
	_, resp := login(t, r, testAdminPassword)
	token := resp["token"].(string)

	w := doJSON(r, http.MethodPut, "/api/admin/events/introuvable", token, map[string]any{
		"title": "x", "date": "2025-01-01",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, attendu 404", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/admin/events/introuvable", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("suppression: code = %d, attendu 404", w.Code)
	}
}

func TestTestimonialDefaults(t *testing.T) {
	r, mem := setupRouter(t)
	_, resp := login(t, r, testAdminPassword)
	token := resp["token"].(string)

	w := doJSON(r, http.MethodPost, "/api/admin/testimonials", token, map[string]any{
		"name":    "Rudo Chikafu",
		"content": "Le meilleur massage de Harare.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, corps: %s", w.Code, w.Body.String())
	}

	list, _ := mem.GetTestimonials(context.Background())
	if len(list) != 1 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Rating != 5 {
		t.Errorf("Rating = %d, attendu 5 par défaut", list[0].Rating)
	}
}

func TestAdminOrdersListing(t *testing.T) {
	r, mem := setupRouter(t)
	_, resp := login(t, r, testAdminPassword)
	token := resp["token"].(string)

	o := &models.Order{
		ID:            "order-1",
		CustomerName:  "Tatenda Mhizha",
		CustomerEmail: "tatenda@example.com",
		CustomerPhone: "+263771234567",
		TotalAmount:   25.50,
		Status:        models.OrderStatusPendingPayment,
		CreatedAt:     time.Now(),
	}
	mem.CreateOrder(context.Background(), o)
	mem.CreateOrderItem(context.Background(), &models.OrderItem{
		ID: "item-1", OrderID: "order-1", ProductID: "p1",
		ProductName: "Premium Yoga Mat", Quantity: 2, Price: 10.00,
	})

	w := doJSON(r, http.MethodGet, "/api/admin/orders", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var resp2 struct {
		Orders []map[string]any `json:"orders"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp2)
	if len(resp2.Orders) != 1 {
		t.Fatalf("len = %d", len(resp2.Orders))
	}
	items, _ := resp2.Orders[0]["items"].([]any)
	if len(items) != 1 {
		t.Errorf("items = %v", resp2.Orders[0]["items"])
	}
}
