package http

import (
	"vigil-srv/internal/breach"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type checkReq struct {
	Email string `form:"email" binding:"required"`
}

func (r checkReq) toInput() breach.CheckInput {
	return breach.CheckInput{Email: r.Email}
}

// =====================================================
// Response DTOs
// =====================================================

type breachResp struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Domain      string   `json:"domain"`
	BreachDate  string   `json:"breach_date"`
	PwnCount    int64    `json:"pwn_count"`
	DataClasses []string `json:"data_classes"`
	IsVerified  bool     `json:"is_verified"`
	IsSensitive bool     `json:"is_sensitive"`
}

type pasteResp struct {
	Source     string `json:"source"`
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	EmailCount int    `json:"email_count"`
}

type checkResp struct {
	Email         string       `json:"email"`
	Breaches      []breachResp `json:"breaches"`
	Pastes        []pasteResp  `json:"pastes"`
	TotalBreaches int          `json:"total_breaches"`
	TotalPastes   int          `json:"total_pastes"`
	RiskScore     int          `json:"risk_score"`
	RiskLevel     string       `json:"risk_level"`
	CheckedAt     string       `json:"checked_at"`
	Cached        bool         `json:"cached"`
	Message       string       `json:"message,omitempty"`
}

func (h *handler) newCheckResp(check model.BreachCheck) checkResp {
	resp := checkResp{
		Email:         check.Email,
		Breaches:      make([]breachResp, len(check.Breaches)),
		Pastes:        make([]pasteResp, len(check.Pastes)),
		TotalBreaches: check.TotalBreaches,
		TotalPastes:   check.TotalPastes,
		RiskScore:     check.RiskScore,
		RiskLevel:     string(check.RiskLevel),
		CheckedAt:     check.CheckedAt.Format(response.DateTimeFormat),
		Cached:        check.Cached,
		Message:       check.Message,
	}

	for i, b := range check.Breaches {
		resp.Breaches[i] = breachResp{
			Name:        b.Name,
			Title:       b.Title,
			Domain:      b.Domain,
			BreachDate:  b.BreachDate,
			PwnCount:    b.PwnCount,
			DataClasses: b.DataClasses,
			IsVerified:  b.IsVerified,
			IsSensitive: b.IsSensitive,
		}
	}
	for i, p := range check.Pastes {
		resp.Pastes[i] = pasteResp{
			Source:     p.Source,
			ID:         p.ID,
			Title:      p.Title,
			Date:       p.Date,
			EmailCount: p.EmailCount,
		}
	}

	return resp
}
