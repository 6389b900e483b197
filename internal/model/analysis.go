package model

import "time"

// Sentiment holds the lexicon sentiment scoring of a text.
// Score is a signed integer sum; Comparative is Score / tokenCount.
type Sentiment struct {
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Neutral     []string `json:"neutral"`
}

// SecuritySignals holds the keyword-based threat scoring of a text.
type SecuritySignals struct {
	Keywords    []string    `json:"keywords"`
	ThreatScore int         `json:"threatScore"`
	ThreatLevel ThreatLevel `json:"threatLevel"`
	Confidence  float64     `json:"confidence"`
}

// Entities holds the pattern-extracted entities of a text.
type Entities struct {
	Organizations []string `json:"organizations"`
	Dates         []string `json:"dates"`
	Numbers       []string `json:"numbers"`
	Emails        []string `json:"emails"`
	URLs          []string `json:"urls"`
	IPAddresses   []string `json:"ipAddresses"`
	PhoneNumbers  []string `json:"phoneNumbers"`
}

// KeyPhrase is a frequent non-stopword token with its count.
type KeyPhrase struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// AnalysisMetadata describes the analyzed input.
type AnalysisMetadata struct {
	WordCount  int       `json:"wordCount"`
	AnalyzedAt time.Time `json:"analyzedAt"`
}

// SecurityTextAnalysis is the full result of analyzing one text.
// Constructed fresh per call; never mutated after return.
type SecurityTextAnalysis struct {
	Sentiment  Sentiment        `json:"sentiment"`
	Security   SecuritySignals  `json:"security"`
	Entities   Entities         `json:"entities"`
	KeyPhrases []KeyPhrase      `json:"keyPhrases"`
	Metadata   AnalysisMetadata `json:"metadata"`
}

// TextClassification is the category verdict for one text.
type TextClassification struct {
	PrimaryCategory string         `json:"primaryCategory"`
	Scores          map[string]int `json:"scores"`
	Confidence      float64        `json:"confidence"`
}

// BatchAnalysisItem is one indexed result within a batch.
// Exactly one of Analysis or Error is set.
type BatchAnalysisItem struct {
	Index    int                   `json:"index"`
	Analysis *SecurityTextAnalysis `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// BatchAnalysisResult reports per-item outcomes alongside aggregate counts.
// Successful + Failed always equals the number of submitted texts.
type BatchAnalysisResult struct {
	Items      []BatchAnalysisItem `json:"items"`
	Successful int                 `json:"successful"`
	Failed     int                 `json:"failed"`
}
