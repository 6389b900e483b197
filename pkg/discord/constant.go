package discord

import (
	"errors"
	"net/http"
	"time"
)

const (
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	colorInfo    = 0x3498DB
	colorSuccess = 0x2ECC71
	colorWarning = 0xF1C40F
	colorError   = 0xE74C3C

	// DefaultTimeout is the default webhook request timeout.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is the default number of webhook retries.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the base delay between webhook retries.
	DefaultRetryDelay = 500 * time.Millisecond
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		RetryCount:      DefaultRetryCount,
		RetryDelay:      DefaultRetryDelay,
		DefaultUsername: "vigil-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
