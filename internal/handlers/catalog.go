package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/cache"
	"dmac_back_end/internal/models"
	"dmac_back_end/internal/storage"
)

// Health sert de readiness check (utilisé par cmd/gateway).
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func GetServices(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Vérifie le cache Redis
	var cached []models.Service
	if cache.GetJSON(ctx, cache.KeyServices, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	services, err := storage.Store.GetServices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture services"})
		return
	}

	cache.SetJSON(ctx, cache.KeyServices, services)
	c.JSON(http.StatusOK, services)
}

func GetService(c *gin.Context) {
	service, err := storage.Store.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture service"})
		return
	}
	if service == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Product
	if cache.GetJSON(ctx, cache.KeyProducts, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	products, err := storage.Store.GetProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	cache.SetJSON(ctx, cache.KeyProducts, products)
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	product, err := storage.Store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func GetTestimonials(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Testimonial
	if cache.GetJSON(ctx, cache.KeyTestimonials, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	testimonials, err := storage.Store.GetTestimonials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture témoignages"})
		return
	}

	cache.SetJSON(ctx, cache.KeyTestimonials, testimonials)
	c.JSON(http.StatusOK, testimonials)
}

func GetEvents(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Event
	if cache.GetJSON(ctx, cache.KeyEvents, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	events, err := storage.Store.GetEvents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture événements"})
		return
	}

	cache.SetJSON(ctx, cache.KeyEvents, events)
	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	event, err := storage.Store.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture événement"})
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}
