package usecase

import (
	"context"
	"strings"
	"testing"

	"vigil-srv/internal/analysis"
	"vigil-srv/internal/model"
	"vigil-srv/pkg/log"
)

func newTestUseCase() analysis.UseCase {
	return New(log.Init(log.ZapConfig{Level: "error", Mode: "test", Encoding: "console"}))
}

func TestAnalyzeText(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("empty text returns well-formed zero result", func(t *testing.T) {
		got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Security.ThreatScore != 0 {
			t.Errorf("threat score = %d, want 0", got.Security.ThreatScore)
		}
		if got.Security.ThreatLevel != model.ThreatLevelLow {
			t.Errorf("threat level = %s, want low", got.Security.ThreatLevel)
		}
		if len(got.Security.Keywords) != 0 || len(got.KeyPhrases) != 0 || len(got.Entities.Emails) != 0 {
			t.Errorf("expected empty keyword/phrase/entity lists, got %+v", got)
		}
		if got.Metadata.WordCount != 0 {
			t.Errorf("word count = %d, want 0", got.Metadata.WordCount)
		}
	})

	t.Run("score weighting is exact", func(t *testing.T) {
		// tokens: urgent(-2) attack(-3) -> sentiment -5, comparative -2.5
		// keyword hits: attack -> 1; urgency words: 1; threat words: 1
		got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: "urgent attack"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Sentiment.Score != -5 {
			t.Errorf("sentiment score = %d, want -5", got.Sentiment.Score)
		}
		want := 2*5 + 5*1 + 8*1 + 10*1
		if got.Security.ThreatScore != want {
			t.Errorf("threat score = %d, want %d", got.Security.ThreatScore, want)
		}
		if got.Security.ThreatLevel != model.ThreatLevelMedium {
			t.Errorf("threat level = %s, want medium", got.Security.ThreatLevel)
		}
		if got.Security.Confidence != 0.8 {
			t.Errorf("confidence = %v, want 0.8", got.Security.Confidence)
		}
	})

	t.Run("score is clamped to 100", func(t *testing.T) {
		text := "urgent critical emergency attack breach hack exploit malware"
		got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Security.ThreatScore != 100 {
			t.Errorf("threat score = %d, want 100", got.Security.ThreatScore)
		}
		if got.Security.ThreatLevel != model.ThreatLevelCritical {
			t.Errorf("threat level = %s, want critical", got.Security.ThreatLevel)
		}
	})

	t.Run("level always matches score breakpoints", func(t *testing.T) {
		texts := []string{
			"",
			"the meeting is scheduled for tomorrow",
			"possible phishing email reported by a user",
			"urgent breach detected on the payment system",
			"critical ransomware attack spreading across hosts, immediate response required",
		}
		for _, text := range texts {
			got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: text})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", text, err)
			}
			score := got.Security.ThreatScore
			if score < 0 || score > 100 {
				t.Errorf("threat score %d out of range for %q", score, text)
			}
			if got.Security.ThreatLevel != model.ThreatLevelFromScore(score) {
				t.Errorf("level %s inconsistent with score %d for %q", got.Security.ThreatLevel, score, text)
			}
			if got.Security.Confidence < 0 || got.Security.Confidence > 1 {
				t.Errorf("confidence %v out of range for %q", got.Security.Confidence, text)
			}
		}
	})

	t.Run("text over limit is rejected", func(t *testing.T) {
		_, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{Text: strings.Repeat("a", analysis.MaxTextLength+1)})
		if err != analysis.ErrTextTooLong {
			t.Errorf("err = %v, want ErrTextTooLong", err)
		}
	})
}

func TestExtractEntities(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	got, err := uc.ExtractEntities(ctx, sc, analysis.AnalyzeInput{
		Text: "Contact admin@example.com or visit https://vigil.example.com. Attacker used 192.168.1.15 and called 555-123-4567 on 2024-03-01.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.Emails) != 1 || got.Emails[0] != "admin@example.com" {
		t.Errorf("emails = %v", got.Emails)
	}
	if len(got.URLs) != 1 || !strings.HasPrefix(got.URLs[0], "https://vigil.example.com") {
		t.Errorf("urls = %v", got.URLs)
	}
	if len(got.IPAddresses) != 1 || got.IPAddresses[0] != "192.168.1.15" {
		t.Errorf("ip addresses = %v", got.IPAddresses)
	}
	if len(got.PhoneNumbers) != 1 || got.PhoneNumbers[0] != "555-123-4567" {
		t.Errorf("phone numbers = %v", got.PhoneNumbers)
	}
	if len(got.Dates) == 0 || got.Dates[0] != "2024-03-01" {
		t.Errorf("dates = %v", got.Dates)
	}
}

func TestKeyPhrases(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("stopwords and short tokens are dropped", func(t *testing.T) {
		got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{
			Text: "the firewall blocked the firewall logs an IP",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, kp := range got.KeyPhrases {
			if kp.Word == "the" || kp.Word == "an" || len(kp.Word) <= 2 {
				t.Errorf("unexpected phrase %q", kp.Word)
			}
		}
		if len(got.KeyPhrases) == 0 || got.KeyPhrases[0].Word != "firewall" || got.KeyPhrases[0].Frequency != 2 {
			t.Errorf("key phrases = %+v, want firewall first with frequency 2", got.KeyPhrases)
		}
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		got, err := uc.AnalyzeText(ctx, sc, analysis.AnalyzeInput{
			Text: "server router server router gateway",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.KeyPhrases) < 3 {
			t.Fatalf("key phrases = %+v", got.KeyPhrases)
		}
		if got.KeyPhrases[0].Word != "server" || got.KeyPhrases[1].Word != "router" {
			t.Errorf("tie order broken: %+v", got.KeyPhrases)
		}
	})
}

func TestClassifyText(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	validCategories := map[string]bool{
		"breach": true, "malware": true, "phishing": true,
		"ddos": true, "vulnerability": true, "insider": true, "general": true,
	}

	t.Run("category is always from the fixed set", func(t *testing.T) {
		texts := []string{
			"",
			"lunch is at noon",
			"ransomware infected three workstations",
			"a phishing campaign used credential harvesting",
			"ddos flood took the site down via a botnet",
		}
		for _, text := range texts {
			got, err := uc.ClassifyText(ctx, sc, analysis.AnalyzeInput{Text: text})
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", text, err)
			}
			if !validCategories[got.PrimaryCategory] {
				t.Errorf("category %q not in fixed set for %q", got.PrimaryCategory, text)
			}
		}
	})

	t.Run("no match defaults to general with zero confidence", func(t *testing.T) {
		got, err := uc.ClassifyText(ctx, sc, analysis.AnalyzeInput{Text: "quarterly budget review"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PrimaryCategory != "general" || got.Confidence != 0 {
			t.Errorf("got %+v, want general with 0 confidence", got)
		}
	})

	t.Run("confidence is winning score over category count", func(t *testing.T) {
		got, err := uc.ClassifyText(ctx, sc, analysis.AnalyzeInput{Text: "malware malware virus"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PrimaryCategory != "malware" {
			t.Errorf("category = %s, want malware", got.PrimaryCategory)
		}
		if got.Confidence != 3.0/6.0 {
			t.Errorf("confidence = %v, want %v", got.Confidence, 3.0/6.0)
		}
	})
}

func TestSummarizeText(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("two sentences or fewer pass through", func(t *testing.T) {
		text := "Short report. Nothing happened."
		got, err := uc.SummarizeText(ctx, sc, analysis.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Summary != text {
			t.Errorf("summary = %q, want unchanged input", got.Summary)
		}
	})

	t.Run("keyword sentences are kept", func(t *testing.T) {
		text := "The office party was fun. A breach hit the database. Lunch was served. The attack lasted hours."
		got, err := uc.SummarizeText(ctx, sc, analysis.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got.Summary, "breach") || !strings.Contains(got.Summary, "attack") {
			t.Errorf("summary = %q, want both keyword sentences", got.Summary)
		}
		if strings.Contains(got.Summary, "party") {
			t.Errorf("summary = %q, should not keep non-keyword sentences", got.Summary)
		}
	})

	t.Run("falls back to first sentence", func(t *testing.T) {
		text := "First plain sentence. Second plain sentence. Third plain sentence."
		got, err := uc.SummarizeText(ctx, sc, analysis.AnalyzeInput{Text: text})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Summary != "First plain sentence" {
			t.Errorf("summary = %q, want first sentence", got.Summary)
		}
	})

	t.Run("english detection", func(t *testing.T) {
		got, err := uc.SummarizeText(ctx, sc, analysis.AnalyzeInput{Text: "The server is down and the team is on it."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Language != "en" {
			t.Errorf("language = %q, want en", got.Language)
		}
	})
}

func TestAnalyzeBatch(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	sc := model.Scope{}

	t.Run("results are indexed and counts add up", func(t *testing.T) {
		texts := []string{"breach detected", "", strings.Repeat("x", analysis.MaxTextLength+1), "all clear"}
		got, err := uc.AnalyzeBatch(ctx, sc, analysis.BatchInput{Texts: texts})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != len(texts) {
			t.Fatalf("items = %d, want %d", len(got.Items), len(texts))
		}
		if got.Successful+got.Failed != len(texts) {
			t.Errorf("successful %d + failed %d != %d", got.Successful, got.Failed, len(texts))
		}
		if got.Failed != 1 {
			t.Errorf("failed = %d, want 1", got.Failed)
		}
		for i, item := range got.Items {
			if item.Index != i {
				t.Errorf("item %d has index %d", i, item.Index)
			}
		}
		if got.Items[2].Error == "" || got.Items[2].Analysis != nil {
			t.Errorf("item 2 should carry the failure: %+v", got.Items[2])
		}
	})

	t.Run("oversized batch is rejected", func(t *testing.T) {
		texts := make([]string, analysis.MaxBatchSize+1)
		_, err := uc.AnalyzeBatch(ctx, sc, analysis.BatchInput{Texts: texts})
		if err != analysis.ErrBatchTooLarge {
			t.Errorf("err = %v, want ErrBatchTooLarge", err)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := uc.AnalyzeBatch(ctx, sc, analysis.BatchInput{})
		if err != analysis.ErrEmptyBatch {
			t.Errorf("err = %v, want ErrEmptyBatch", err)
		}
	})
}
