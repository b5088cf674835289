package admin

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"dmac_back_end/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login compare le mot de passe soumis au secret configuré et émet un JWT
// admin. ADMIN_PASSWORD_HASH (Argon2id) prime sur ADMIN_PASSWORD en clair.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Mot de passe requis"})
		return
	}

	if !checkAdminPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		log.Println("❌ Erreur génération token admin:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func checkAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		if !utils.IsArgon2Hash(hash) {
			log.Println("⚠️ ADMIN_PASSWORD_HASH n'est pas un hash Argon2id valide")
			return false
		}
		ok, err := utils.VerifyPassword(password, hash)
		return err == nil && ok
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		log.Println("⚠️ Aucun mot de passe admin configuré — login refusé")
		return false
	}
	return utils.SecureCompare(password, plain)
}
