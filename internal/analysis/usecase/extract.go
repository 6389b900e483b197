package usecase

import (
	"regexp"
	"sort"
	"strings"

	"vigil-srv/internal/model"

	"github.com/jdkato/prose/v2"
)

var (
	tokenRe = regexp.MustCompile(`[a-zA-Z0-9']+`)

	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlRe   = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+`)
	ipv4Re  = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	dateRe  = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})\b`)
)

// tokenize lowercases and splits text into word tokens.
func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// extractEntities pulls entities by independent pattern families. The
// organization and number extraction goes through the prose tagger; the
// rest are plain regexes.
func (uc *implUseCase) extractEntities(text string) model.Entities {
	entities := model.Entities{
		Organizations: []string{},
		Dates:         dedupe(dateRe.FindAllString(text, -1)),
		Numbers:       []string{},
		Emails:        dedupe(emailRe.FindAllString(text, -1)),
		URLs:          dedupe(urlRe.FindAllString(text, -1)),
		IPAddresses:   dedupe(ipv4Re.FindAllString(text, -1)),
		PhoneNumbers:  dedupe(phoneRe.FindAllString(text, -1)),
	}

	if strings.TrimSpace(text) == "" {
		return entities
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		// Tagger failure degrades to regex-only entities.
		return entities
	}

	for _, ent := range doc.Entities() {
		if ent.Label == "ORG" || ent.Label == "GPE" {
			entities.Organizations = append(entities.Organizations, ent.Text)
		}
	}
	entities.Organizations = dedupe(entities.Organizations)

	for _, tok := range doc.Tokens() {
		if tok.Tag == "CD" {
			entities.Numbers = append(entities.Numbers, tok.Text)
		}
	}
	entities.Numbers = dedupe(entities.Numbers)

	return entities
}

// extractKeyPhrases counts non-stopword tokens longer than 2 characters and
// returns the topN by frequency. The sort is stable so ties keep their
// first-seen order.
func (uc *implUseCase) extractKeyPhrases(tokens []string, topN int) []model.KeyPhrase {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := uc.lex.stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	phrases := make([]model.KeyPhrase, 0, len(order))
	for _, word := range order {
		phrases = append(phrases, model.KeyPhrase{Word: word, Frequency: counts[word]})
	}
	sort.SliceStable(phrases, func(i, j int) bool {
		return phrases[i].Frequency > phrases[j].Frequency
	})

	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases
}

// detectLanguage is a coarse function-word ratio heuristic, not a real
// language identifier.
func (uc *implUseCase) detectLanguage(tokens []string) string {
	if len(tokens) == 0 {
		return "unknown"
	}
	matches := 0
	for _, tok := range tokens {
		if _, ok := uc.lex.functionWords[tok]; ok {
			matches++
		}
	}
	if float64(matches)/float64(len(tokens)) > 0.1 {
		return "en"
	}
	return "unknown"
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
