package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/config"
	"dmac_back_end/internal/database"
	"dmac_back_end/internal/handlers/order"
	"dmac_back_end/internal/routes"
	"dmac_back_end/internal/storage"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.Close()

	storage.Store = storage.NewPostgres(database.Pool)

	if err := database.SeedIfEmpty(context.Background()); err != nil {
		log.Fatal("❌ Erreur seed catalogue:", err)
	}

	// L'absence d'identifiants Paynow n'est pas fatale : mode paiement manuel
	order.ConfigureGatewayFromEnv()

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur DMAC lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}
