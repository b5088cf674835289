package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/models"
	"dmac_back_end/internal/storage"
)

type orderWithItems struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

// GetOrders liste les commandes avec leurs lignes, les plus récentes d'abord.
func GetOrders(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := storage.Store.GetOrders(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes"})
		return
	}

	out := make([]orderWithItems, 0, len(orders))
	for _, o := range orders {
		items, err := storage.Store.GetOrderItems(ctx, o.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture lignes de commande"})
			return
		}
		out = append(out, orderWithItems{Order: o, Items: items})
	}

	c.JSON(http.StatusOK, gin.H{"orders": out})
}
