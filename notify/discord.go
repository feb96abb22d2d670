package notify

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DiscordNotifier posts alerts to a Discord channel webhook
type DiscordNotifier struct {
	url    string
	client *http.Client
}

// NewDiscordNotifier creates a notifier for the given webhook url
func NewDiscordNotifier(url string) *DiscordNotifier {
	return &DiscordNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify posts the alert as the message content
func (d *DiscordNotifier) Notify(message string) {
	body, err := json.Marshal(map[string]string{"content": message})
	if err != nil {
		zap.S().Errorw("failed to marshal discord alert", "error", err)
		return
	}
	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(body))
	if err != nil {
		zap.S().Errorw("failed to post discord alert", "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		zap.S().Errorw("discord webhook returned error status", "status", resp.StatusCode)
	}
}
