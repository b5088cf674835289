package cache

import (
	"context"
	"encoding/json"
	"time"

	"dmac_back_end/internal/database"
)

const CatalogTTL = 10 * time.Minute

// Clés du cache catalogue
const (
	KeyServices     = "services:all"
	KeyProducts     = "products:all"
	KeyEvents       = "events:all"
	KeyTestimonials = "testimonials:all"
)

// GetJSON lit une valeur mise en cache. Renvoie false si Redis est absent,
// la clé manquante ou la valeur illisible — l'appelant retombe sur la base.
func GetJSON(ctx context.Context, key string, dest any) bool {
	if database.Redis == nil {
		return false
	}
	val, err := database.Redis.Get(ctx, key).Result()
	if err != nil || val == "" {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// SetJSON met une valeur en cache. Best-effort : les erreurs sont ignorées.
func SetJSON(ctx context.Context, key string, v any) {
	if database.Redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, key, data, CatalogTTL)
}

// Invalidate supprime des clés après une mutation admin.
func Invalidate(ctx context.Context, keys ...string) {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(ctx, keys...)
}
