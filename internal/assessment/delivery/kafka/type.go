package kafka

// ScanSubmittedMessage is the payload published when a scan is enqueued.
type ScanSubmittedMessage struct {
	ScanID string `json:"scan_id"`
	UserID string `json:"user_id"`
}
