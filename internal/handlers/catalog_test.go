package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/models"
	"dmac_back_end/internal/routes"
	"dmac_back_end/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *storage.MemoryStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := storage.NewMemory()
	storage.Store = mem
	t.Cleanup(func() { storage.Store = nil })

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, mem
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "ok" {
		t.Errorf("status = %q", resp["status"])
	}
}

func TestGetServices(t *testing.T) {
	r, mem := setupRouter(t)
	mem.CreateService(context.Background(), &models.Service{
		ID: "s1", Name: "Deep Tissue Massage", Price: 45, Category: "Massage",
	})
	mem.CreateService(context.Background(), &models.Service{
		ID: "s2", Name: "Hot Yoga Class", Price: 12, Category: "Fitness",
	})

	w := get(r, "/api/services")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var services []models.Service
	json.Unmarshal(w.Body.Bytes(), &services)
	if len(services) != 2 {
		t.Fatalf("len = %d", len(services))
	}
	if services[0].Name != "Deep Tissue Massage" {
		t.Errorf("services[0] = %+v", services[0])
	}
}

func TestGetServicesEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	w := get(r, "/api/services")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	// Tableau vide, jamais null
	if body := w.Body.String(); body != "[]" {
		t.Errorf("corps = %q", body)
	}
}

func TestGetServiceNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	if w := get(r, "/api/services/introuvable"); w.Code != http.StatusNotFound {
		t.Fatalf("code = %d, attendu 404", w.Code)
	}
}

func TestGetProduct(t *testing.T) {
	r, mem := setupRouter(t)
	mem.CreateProduct(context.Background(), &models.Product{
		ID: "p1", Name: "Premium Yoga Mat", Price: 55, InStock: true,
	})

	w := get(r, "/api/products/p1")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var p models.Product
	json.Unmarshal(w.Body.Bytes(), &p)
	if p.Name != "Premium Yoga Mat" || !p.InStock {
		t.Errorf("produit = %+v", p)
	}
}

func TestGetEventsSortedByDate(t *testing.T) {
	r, mem := setupRouter(t)
	mem.CreateEvent(context.Background(), &models.Event{
		ID: "e2", Title: "Wellness Workshop", Date: "2025-10-01", StartTime: "09:00",
	})
	mem.CreateEvent(context.Background(), &models.Event{
		ID: "e1", Title: "Sound Bath", Date: "2025-09-12", StartTime: "18:00",
	})

	w := get(r, "/api/events")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var events []models.Event
	json.Unmarshal(w.Body.Bytes(), &events)
	if len(events) != 2 {
		t.Fatalf("len = %d", len(events))
	}
	if events[0].Title != "Sound Bath" {
		t.Errorf("tri par date cassé: %q en premier", events[0].Title)
	}
}

func TestGetTestimonials(t *testing.T) {
	r, mem := setupRouter(t)
	mem.CreateTestimonial(context.Background(), &models.Testimonial{
		ID: "t1", Name: "Rudo Chikafu", Content: "Excellent.", Rating: 5,
	})

	w := get(r, "/api/testimonials")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var list []models.Testimonial
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0].Rating != 5 {
		t.Errorf("témoignages = %+v", list)
	}
}
