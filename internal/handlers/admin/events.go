package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dmac_back_end/internal/cache"
	"dmac_back_end/internal/models"
	"dmac_back_end/internal/storage"
)

type eventPayload struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Venue       string   `json:"venue"`
	Date        string   `json:"date" binding:"required"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Category    string   `json:"category"`
	TicketPrice float64  `json:"ticketPrice"`
	Capacity    int      `json:"capacity"`
	Images      []string `json:"images"`
}

func (p *eventPayload) applyDefaults() {
	if p.Venue == "" {
		p.Venue = "DMAC Lifestyle Centre"
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

func CreateEvent(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.applyDefaults()

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       payload.Title,
		Description: payload.Description,
		Venue:       payload.Venue,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Category:    payload.Category,
		TicketPrice: payload.TicketPrice,
		Capacity:    payload.Capacity,
		Images:      payload.Images,
		CreatedAt:   time.Now(),
	}

	if err := storage.Store.CreateEvent(c.Request.Context(), &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création événement"})
		return
	}

	cache.Invalidate(c.Request.Context(), cache.KeyEvents)
	c.JSON(http.StatusOK, event)
}

func UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := storage.Store.GetEvent(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture événement"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.applyDefaults()

	event := models.Event{
		ID:          existing.ID,
		Title:       payload.Title,
		Description: payload.Description,
		Venue:       payload.Venue,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Category:    payload.Category,
		TicketPrice: payload.TicketPrice,
		Capacity:    payload.Capacity,
		Images:      payload.Images,
		CreatedAt:   existing.CreatedAt,
	}

	if err := storage.Store.UpdateEvent(ctx, &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour événement"})
		return
	}

	cache.Invalidate(ctx, cache.KeyEvents)
	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := storage.Store.GetEvent(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture événement"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	if err := storage.Store.DeleteEvent(ctx, existing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression événement"})
		return
	}

	cache.Invalidate(ctx, cache.KeyEvents)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
