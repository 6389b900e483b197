package http

import (
	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type analyzeReq struct {
	Text string `json:"text" binding:"required"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{Text: r.Text}
}

type batchReq struct {
	Texts []string `json:"texts" binding:"required"`
}

func (r batchReq) toInput() analysis.BatchInput {
	return analysis.BatchInput{Texts: r.Texts}
}

// =====================================================
// Response DTOs
// =====================================================

type sentimentResp struct {
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Neutral     []string `json:"neutral"`
}

type securityResp struct {
	Keywords    []string `json:"keywords"`
	ThreatScore int      `json:"threat_score"`
	ThreatLevel string   `json:"threat_level"`
	Confidence  float64  `json:"confidence"`
}

type entitiesResp struct {
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Numbers       []string `json:"numbers"`
	Emails        []string `json:"emails"`
	URLs          []string `json:"urls"`
	IPAddresses   []string `json:"ip_addresses"`
	PhoneNumbers  []string `json:"phone_numbers"`
}

type keyPhraseResp struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

type analyzeResp struct {
	Sentiment  sentimentResp   `json:"sentiment"`
	Security   securityResp    `json:"security"`
	Entities   entitiesResp    `json:"entities"`
	KeyPhrases []keyPhraseResp `json:"key_phrases"`
	WordCount  int             `json:"word_count"`
	AnalyzedAt string          `json:"analyzed_at"`
}

type classifyResp struct {
	PrimaryCategory string         `json:"primary_category"`
	Scores          map[string]int `json:"scores"`
	Confidence      float64        `json:"confidence"`
}

type summaryResp struct {
	Summary  string `json:"summary"`
	Language string `json:"language"`
}

type batchItemResp struct {
	Index    int          `json:"index"`
	Analysis *analyzeResp `json:"analysis,omitempty"`
	Error    string       `json:"error,omitempty"`
}

type batchResp struct {
	Items      []batchItemResp `json:"items"`
	Successful int             `json:"successful"`
	Failed     int             `json:"failed"`
}

func (h *handler) newAnalyzeResp(a model.SecurityTextAnalysis) analyzeResp {
	keyPhrases := make([]keyPhraseResp, len(a.KeyPhrases))
	for i, kp := range a.KeyPhrases {
		keyPhrases[i] = keyPhraseResp{Word: kp.Word, Frequency: kp.Frequency}
	}

	return analyzeResp{
		Sentiment: sentimentResp{
			Score:       a.Sentiment.Score,
			Comparative: a.Sentiment.Comparative,
			Positive:    a.Sentiment.Positive,
			Negative:    a.Sentiment.Negative,
			Neutral:     a.Sentiment.Neutral,
		},
		Security: securityResp{
			Keywords:    a.Security.Keywords,
			ThreatScore: a.Security.ThreatScore,
			ThreatLevel: string(a.Security.ThreatLevel),
			Confidence:  a.Security.Confidence,
		},
		Entities:   h.newEntitiesResp(a.Entities),
		KeyPhrases: keyPhrases,
		WordCount:  a.Metadata.WordCount,
		AnalyzedAt: a.Metadata.AnalyzedAt.Format(response.DateTimeFormat),
	}
}

func (h *handler) newEntitiesResp(e model.Entities) entitiesResp {
	return entitiesResp{
		Organizations: e.Organizations,
		Dates:         e.Dates,
		Numbers:       e.Numbers,
		Emails:        e.Emails,
		URLs:          e.URLs,
		IPAddresses:   e.IPAddresses,
		PhoneNumbers:  e.PhoneNumbers,
	}
}

func (h *handler) newClassifyResp(c model.TextClassification) classifyResp {
	return classifyResp{
		PrimaryCategory: c.PrimaryCategory,
		Scores:          c.Scores,
		Confidence:      c.Confidence,
	}
}

func (h *handler) newSummaryResp(s analysis.SummaryOutput) summaryResp {
	return summaryResp{Summary: s.Summary, Language: s.Language}
}

func (h *handler) newBatchResp(b model.BatchAnalysisResult) batchResp {
	resp := batchResp{
		Items:      make([]batchItemResp, len(b.Items)),
		Successful: b.Successful,
		Failed:     b.Failed,
	}
	for i, item := range b.Items {
		out := batchItemResp{Index: item.Index, Error: item.Error}
		if item.Analysis != nil {
			a := h.newAnalyzeResp(*item.Analysis)
			out.Analysis = &a
		}
		resp.Items[i] = out
	}
	return resp
}
