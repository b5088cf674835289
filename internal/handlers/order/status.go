package order

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/models"
	"dmac_back_end/internal/storage"
	"dmac_back_end/internal/utils"
)

// PaynowResult est le webhook poussé par Paynow. Corps formulaire ou JSON,
// identifié par pollurl. Réconciliation idempotente : on converge vers le
// statut annoncé par la passerelle et on ne rétrograde jamais une commande
// payée. Répond toujours 200 corps vide (500 seulement sur erreur interne).
func PaynowResult(c *gin.Context) {
	values := webhookValues(c)

	pollURL := values.Get("pollurl")
	if pollURL == "" {
		c.Status(http.StatusOK)
		return
	}

	// Vérification du hash quand la passerelle est configurée. Une notification
	// non signée ou mal signée est ignorée : n'importe qui connaissant un poll
	// URL pouvait autrefois écrire le statut d'une commande.
	if Gateway != nil && !Gateway.VerifyWebhook(values) {
		log.Println("⚠️ Notification Paynow au hash invalide — ignorée")
		c.Status(http.StatusOK)
		return
	}

	ctx := c.Request.Context()

	order, err := storage.Store.GetOrderByPollURL(ctx, pollURL)
	if err != nil {
		log.Println("❌ Erreur recherche commande par poll URL:", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if order == nil || order.Status == models.OrderStatusPaid {
		c.Status(http.StatusOK)
		return
	}

	status := strings.ToLower(values.Get("status"))
	if status == "" {
		status = "unknown"
	}

	if err := storage.Store.UpdateOrderStatus(ctx, order.ID, status); err != nil {
		log.Println("❌ Erreur mise à jour statut:", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if status == models.OrderStatusPaid {
		log.Printf("💳 Commande %s payée (webhook)", order.ID)
		items, _ := storage.Store.GetOrderItems(ctx, order.ID)
		order.Status = status
		go utils.SendPaymentConfirmation(order, items)
	}

	c.Status(http.StatusOK)
}

// webhookValues accepte le formulaire Paynow natif ou un corps JSON (utilisé
// par les outils de test de la passerelle).
func webhookValues(c *gin.Context) url.Values {
	contentType := c.ContentType()
	if strings.Contains(contentType, "json") {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			return url.Values{}
		}
		values := url.Values{}
		for k, v := range body {
			values.Set(k, v)
		}
		return values
	}

	if err := c.Request.ParseForm(); err != nil {
		return url.Values{}
	}
	return c.Request.PostForm
}

// Status renvoie le statut courant d'une commande. Si elle attend encore son
// paiement, on interroge Paynow de façon synchrone ; sur échec de poll on
// renvoie le dernier statut connu et le client repollera.
func Status(c *gin.Context) {
	ctx := c.Request.Context()

	order, err := storage.Store.GetOrder(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	if order.Status == models.OrderStatusAwaitingPayment && order.PollURL != nil && Gateway != nil {
		status, err := Gateway.PollTransaction(*order.PollURL)
		if err != nil {
			log.Println("⚠️ Erreur poll Paynow:", err)
		} else if status.Paid() {
			if err := storage.Store.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPaid); err == nil {
				log.Printf("💳 Commande %s payée (polling)", order.ID)
				order.Status = models.OrderStatusPaid
				items, _ := storage.Store.GetOrderItems(ctx, order.ID)
				go utils.SendPaymentConfirmation(order, items)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": order.Status})
}
