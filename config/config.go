package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/oauth2/microsoft"
)

const (
	defaultTenant            = "common"
	defaultScope             = "https://graph.microsoft.com/User.Read"
	defaultOAuthTimeout      = 10 * time.Second
	defaultReconcileSchedule = "@hourly"
	defaultAlertEmailSender  = "no-reply@biit.app"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	Env          string

	OAuth OAuth

	SendGridAPIKey    string
	AlertEmailFrom    string
	AlertEmailTo      string
	DiscordWebhookURL string

	StatsReconcileSchedule string
}

// OAuth holds the identity provider client settings used to refresh tokens
type OAuth struct {
	ClientID    string
	Tenant      string
	TokenURL    string
	Scope       string
	RedirectURI string
	Timeout     time.Duration
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	env := os.Getenv("ENV")
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	tenant := envOrDefault("OAUTH_TENANT", defaultTenant)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		Env:          env,
		OAuth: OAuth{
			ClientID:    os.Getenv("OAUTH_CLIENT_ID"),
			Tenant:      tenant,
			TokenURL:    envOrDefault("OAUTH_TOKEN_URL", microsoft.AzureADEndpoint(tenant).TokenURL),
			Scope:       envOrDefault("OAUTH_SCOPE", defaultScope),
			RedirectURI: os.Getenv("OAUTH_REDIRECT_URI"),
			Timeout:     durationOrDefault("OAUTH_TIMEOUT", defaultOAuthTimeout),
		},
		SendGridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		AlertEmailFrom:         envOrDefault("ALERT_EMAIL_FROM", defaultAlertEmailSender),
		AlertEmailTo:           os.Getenv("ALERT_EMAIL_TO"),
		DiscordWebhookURL:      os.Getenv("DISCORD_WEBHOOK_URL"),
		StatsReconcileSchedule: envOrDefault("STATS_RECONCILE_SCHEDULE", defaultReconcileSchedule),
	}
}

func envOrDefault(env, def string) string {
	if val, ok := os.LookupEnv(env); ok && val != "" {
		return val
	}
	return def
}

func durationOrDefault(env string, def time.Duration) time.Duration {
	val, ok := os.LookupEnv(env)
	if !ok || val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		zap.S().Warnw("invalid duration, using default", "env", env, "value", val, "default", def)
		return def
	}
	return d
}
