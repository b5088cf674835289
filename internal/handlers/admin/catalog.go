package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dmac_back_end/internal/cache"
	"dmac_back_end/internal/models"
	"dmac_back_end/internal/storage"
)

// CRUD catalogue côté admin. Chaque mutation invalide la clé de cache de
// l'entité touchée.

func CreateService(c *gin.Context) {
	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.ID = uuid.NewString()

	if err := storage.Store.CreateService(c.Request.Context(), &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création service"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyServices)
	c.JSON(http.StatusOK, s)
}

func UpdateService(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := storage.Store.GetService(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture service"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
		return
	}

	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.ID = existing.ID

	if err := storage.Store.UpdateService(ctx, &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour service"})
		return
	}

	cache.Invalidate(ctx, cache.KeyServices)
	c.JSON(http.StatusOK, s)
}

func DeleteService(c *gin.Context) {
	if err := storage.Store.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression service"})
		return
	}
	cache.Invalidate(c.Request.Context(), cache.KeyServices)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = uuid.NewString()

	if err := storage.Store.CreateProduct(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyProducts)
	c.JSON(http.StatusOK, p)
}

func UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := storage.Store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = existing.ID

	if err := storage.Store.UpdateProduct(ctx, &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	cache.Invalidate(ctx, cache.KeyProducts)
	c.JSON(http.StatusOK, p)
}

func DeleteProduct(c *gin.Context) {
	if err := storage.Store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}
	cache.Invalidate(c.Request.Context(), cache.KeyProducts)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = uuid.NewString()
	if t.Rating == 0 {
		t.Rating = 5
	}

	if err := storage.Store.CreateTestimonial(c.Request.Context(), &t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création témoignage"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyTestimonials)
	c.JSON(http.StatusOK, t)
}

func DeleteTestimonial(c *gin.Context) {
	if err := storage.Store.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression témoignage"})
		return
	}
	cache.Invalidate(c.Request.Context(), cache.KeyTestimonials)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
