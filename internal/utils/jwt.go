package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Durée de vie d'un token admin. Pas de refresh : on se reconnecte.
const AdminTokenTTL = 12 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// GenerateAdminToken émet un token signé HS256 avec expiration. L'ancien
// backend renvoyait une chaîne fixe comparée littéralement — remplacé ici par
// un vrai credential signé et expirable.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(AdminTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseAdminToken valide signature, expiration et rôle. Renvoie false pour
// tout token absent, corrompu, expiré ou sans rôle admin.
func ParseAdminToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
