package middleware

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware mirrors the CORS_ORIGINS env contract: a comma-separated
// origin list, "*" (the default) meaning any origin without credentials.
func CORSMiddleware() gin.HandlerFunc {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		raw = "*"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	if raw == "*" {
		cfg.AllowAllOrigins = true
	} else {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
