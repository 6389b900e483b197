package model

import "time"

// BreachRecord is a normalized breach as returned by the lookup provider.
type BreachRecord struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Domain      string   `json:"domain"`
	BreachDate  string   `json:"breachDate"`
	AddedDate   string   `json:"addedDate"`
	PwnCount    int64    `json:"pwnCount"`
	Description string   `json:"description"`
	DataClasses []string `json:"dataClasses"`
	IsVerified  bool     `json:"isVerified"`
	IsSensitive bool     `json:"isSensitive"`
	LogoPath    string   `json:"logoPath"`
}

// PasteRecord is a paste exposure from the lookup provider.
type PasteRecord struct {
	Source     string `json:"source"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	EmailCount int    `json:"emailCount"`
}

// BreachCheck is the full outcome of checking one email address.
type BreachCheck struct {
	Email         string         `json:"email"`
	Breaches      []BreachRecord `json:"breaches"`
	Pastes        []PasteRecord  `json:"pastes"`
	TotalBreaches int            `json:"totalBreaches"`
	TotalPastes   int            `json:"totalPastes"`
	RiskScore     int            `json:"riskScore"`
	RiskLevel     ThreatLevel    `json:"riskLevel"`
	CheckedAt     time.Time      `json:"checkedAt"`
	Cached        bool           `json:"cached"`
	Message       string         `json:"message,omitempty"`
}
