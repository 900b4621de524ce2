package middleware

import (
	"log/slog"
	"slices"

	"studio-calendar/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the booking API reads or sets. Browsers need them allowed even
// when CORS_ALLOW_HEADERS or CORS_EXPOSE_HEADERS are overridden.
var (
	bookingRequestHeaders  = []string{"Idempotency-Key"}
	bookingResponseHeaders = []string{"Idempotent-Replayed", requestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, bookingRequestHeaders),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, bookingResponseHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders)
	return cors.New(corsCfg)
}

func withHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
