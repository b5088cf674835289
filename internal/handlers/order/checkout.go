package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dmac_back_end/internal/database"
	"dmac_back_end/internal/models"
	"dmac_back_end/internal/paynow"
	"dmac_back_end/internal/storage"
	"dmac_back_end/internal/utils"
)

// Messages de fallback montrés au client quand Paynow ne peut pas prendre le
// paiement — le checkout n'est jamais une impasse.
const (
	msgGatewayNotConfigured = "Payment gateway not configured. Please contact us via WhatsApp to complete your order."
	msgGatewayUnavailable   = "Payment gateway unavailable. Please contact us via WhatsApp to complete your order."
	msgInitiationFailed     = "Payment initiation failed. Please try again."
)

// Gateway est la passerelle active. nil = identifiants Paynow absents, on
// bascule en mode paiement manuel. Les tests y branchent un faux.
var Gateway paynow.Gateway

// ConfigureGatewayFromEnv branche le client Paynow si les identifiants sont
// présents. Leur absence est un état géré, pas une erreur de démarrage.
func ConfigureGatewayFromEnv() {
	integrationID := os.Getenv("PAYNOW_INTEGRATION_ID")
	integrationKey := os.Getenv("PAYNOW_INTEGRATION_KEY")

	if integrationID == "" || integrationKey == "" {
		log.Println("⚠️ Paynow non configuré — les commandes passeront en paiement manuel")
		return
	}

	Gateway = paynow.NewClient(integrationID, integrationKey)
	log.Println("✅ Passerelle Paynow initialisée")
}

type checkoutItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type checkoutRequest struct {
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerPhone string         `json:"customerPhone"`
	Items         []checkoutItem `json:"items"`
}

// baseURL reconstruit l'origine de la requête pour les URLs de retour Paynow.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// Checkout valide le panier, persiste la commande et ses lignes, puis tente
// d'ouvrir une session de paiement Paynow. Tout échec passerelle est rattrapé
// localement : la commande existe déjà et garde son dernier état connu.
func Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if req.CustomerName == "" || req.CustomerEmail == "" || req.CustomerPhone == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ctx := c.Request.Context()

	// Total = somme(prix × quantité), arrondi à 2 décimales au stockage
	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	total = math.Round(total*100) / 100

	order := &models.Order{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := storage.Store.CreateOrder(ctx, order); err != nil {
		log.Println("❌ Erreur création commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		oi := models.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
		if err := storage.Store.CreateOrderItem(ctx, &oi); err != nil {
			// La commande reste dans son dernier état ; pas de compensation
			log.Println("❌ Erreur création ligne de commande:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
			return
		}
		items = append(items, oi)
	}

	go publishNewOrder(order, items)

	// 1. Passerelle absente → fallback manuel
	if Gateway == nil {
		_ = storage.Store.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPendingPayment)
		go utils.NotifyManualOrder(order, items)
		c.JSON(http.StatusOK, gin.H{
			"orderId": order.ID,
			"error":   msgGatewayNotConfigured,
		})
		return
	}

	payment := &paynow.Payment{
		Reference: "Order-" + order.ID,
		AuthEmail: order.CustomerEmail,
		ReturnURL: fmt.Sprintf("%s/shop?order=%s", baseURL(c), order.ID),
		ResultURL: baseURL(c) + "/api/orders/paynow-result",
	}
	for _, item := range req.Items {
		payment.Add(item.ProductName, item.Price*float64(item.Quantity))
	}

	response, err := Gateway.Send(payment)
	if err != nil {
		// 2. Échec transport/SDK → fallback manuel, jamais de 5xx
		log.Println("❌ Erreur Paynow:", err)
		_ = storage.Store.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPendingPayment)
		go utils.NotifyManualOrder(order, items)
		c.JSON(http.StatusOK, gin.H{
			"orderId": order.ID,
			"error":   msgGatewayUnavailable,
		})
		return
	}

	if !response.Success {
		// Refus logique de Paynow
		errMsg := response.Error
		if errMsg == "" {
			errMsg = msgInitiationFailed
		}
		_ = storage.Store.UpdateOrderStatus(ctx, order.ID, models.OrderStatusPaymentFailed)
		c.JSON(http.StatusOK, gin.H{
			"orderId": order.ID,
			"error":   errMsg,
		})
		return
	}

	// 3. Session ouverte → la référence poll sert de clé de réconciliation
	if err := storage.Store.SetOrderPayment(ctx, order.ID,
		models.OrderStatusAwaitingPayment, response.PollURL, response.PollURL); err != nil {
		log.Println("❌ Erreur mise à jour commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process order"})
		return
	}

	log.Printf("💳 Session Paynow ouverte pour %s ($%.2f)", order.ID, total)

	resp := gin.H{
		"orderId":     order.ID,
		"redirectUrl": response.RedirectURL,
		"pollUrl":     response.PollURL,
	}
	if qr, err := utils.PaymentQR(response.RedirectURL); err == nil {
		resp["qrCode"] = qr
	}
	c.JSON(http.StatusOK, resp)
}

// publishNewOrder pousse la commande sur le canal Redis écouté par le flux
// admin temps réel. Best-effort.
func publishNewOrder(order *models.Order, items []models.OrderItem) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"order": order, "items": items})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), "orders:new", payload).Err(); err != nil {
		log.Println("⚠️ Erreur publication commande:", err)
	}
}
