package config

import (
	"os"
	"time"

	"impactlink-service/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string

	// JWT
	JWT jwt.Config

	// Campaign defaults
	CampaignReferralCode string
	CampaignProductName  string

	// Deliverables upstream
	DeliverablesBaseURL      string
	DeliverablesSuperToken   string
	DeliverablesFallbackPath string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			Secret: getEnv("IMPACT_LINK_SECRET", ""),
			Issuer: "impactlink-dashboard",
			TTL:    12 * time.Hour,
		},

		CampaignReferralCode: getEnv("CAMPAIGN_REFERRAL_CODE", "CB6aXl"),
		CampaignProductName:  getEnv("CAMPAIGN_PRODUCT_NAME", "AI untuk UMKM"),

		DeliverablesBaseURL:      getEnv("DELIVERABLES_BASE_URL", "https://createwhiz.ai/api/ext/deliverables"),
		DeliverablesSuperToken:   getEnv("CREATEWHIZ_SUPER_TOKEN", ""),
		DeliverablesFallbackPath: getEnv("DELIVERABLES_FALLBACK_PATH", "docs/api_getimage.json"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
