package admin

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/services"
)

type assetPayload struct {
	Filename string `json:"filename" binding:"required"`
	// Data URL ("data:image/png;base64,...") ou base64 brut — l'admin encode
	// les images côté client avant envoi.
	Data string `json:"data" binding:"required"`
}

// UploadAsset stocke une image de site dans MinIO et renvoie son URL publique.
func UploadAsset(c *gin.Context) {
	var payload assetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename et data requis"})
		return
	}

	data := payload.Data
	contentType := "application/octet-stream"
	if strings.HasPrefix(data, "data:") {
		header, rest, ok := strings.Cut(data, ",")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data URL invalide"})
			return
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		data = rest
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Encodage base64 invalide"})
		return
	}

	url, err := services.UploadAsset(c.Request.Context(), payload.Filename, raw, contentType)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
