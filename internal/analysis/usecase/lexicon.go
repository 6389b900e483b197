package usecase

// lexicon bundles every static word list the analyzer needs. Built once by
// defaultLexicon and treated as read-only afterwards.
type lexicon struct {
	securityKeywords []string
	urgencyWords     map[string]struct{}
	threatWords      map[string]struct{}
	sentiment        map[string]int
	stopWords        map[string]struct{}
	functionWords    map[string]struct{}
	categories       map[string][]string
	categoryOrder    []string
}

func defaultLexicon() *lexicon {
	return &lexicon{
		securityKeywords: securityKeywords,
		urgencyWords:     toSet(urgencyWords),
		threatWords:      toSet(threatWords),
		sentiment:        sentimentScores,
		stopWords:        toSet(stopWords),
		functionWords:    toSet(englishFunctionWords),
		categories:       categoryPhrases,
		categoryOrder:    categoryOrder,
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// securityKeywords are matched case-insensitively as substrings against the
// whole text. Hits drive both the threat score and the summary extraction.
var securityKeywords = []string{
	"breach", "attack", "malware", "phishing", "ransomware",
	"ddos", "intrusion", "leak", "threat", "anomaly",
	"exploit", "vulnerability", "hack", "compromise", "backdoor",
	"botnet", "trojan", "spyware", "unauthorized",
}

// urgencyWords and threatWords are counted by exact-token match only.
var urgencyWords = []string{"urgent", "critical", "immediate", "emergency", "asap"}

var threatWords = []string{"attack", "breach", "hack", "exploit", "malware"}

// sentimentScores is a compact AFINN-style valence table leaning toward
// security vocabulary. Signed weights in [-5, 5].
var sentimentScores = map[string]int{
	// negative
	"attack": -3, "attacked": -3, "breach": -3, "breached": -3,
	"compromise": -3, "compromised": -3, "malicious": -3, "exploit": -3,
	"exploited": -3, "stolen": -3, "steal": -3, "leak": -2, "leaked": -2,
	"hack": -3, "hacked": -3, "infected": -3, "infection": -3,
	"ransom": -4, "ransomware": -4, "phishing": -3, "fraud": -4,
	"fraudulent": -4, "scam": -4, "suspicious": -2, "threat": -2,
	"threats": -2, "danger": -3, "dangerous": -3, "critical": -2,
	"severe": -2, "urgent": -2, "emergency": -3, "failure": -2,
	"failed": -2, "fail": -2, "loss": -2, "lost": -2, "damage": -3,
	"damaged": -3, "destroy": -3, "destroyed": -3, "corrupt": -3,
	"corrupted": -3, "unauthorized": -3, "illegal": -3, "crime": -3,
	"criminal": -3, "vulnerable": -2, "vulnerability": -2, "risk": -2,
	"risky": -2, "warning": -2, "alert": -1, "error": -2, "problem": -2,
	"bad": -3, "worst": -3, "wrong": -2, "crash": -2, "down": -1,
	"denied": -2, "blocked": -1, "infiltrate": -3, "infiltrated": -3,
	// positive
	"secure": 2, "secured": 2, "safe": 2, "protected": 2, "protect": 2,
	"resolved": 2, "fixed": 2, "patched": 2, "recovered": 2,
	"restore": 1, "restored": 2, "success": 2, "successful": 2,
	"good": 3, "great": 3, "excellent": 3, "improved": 2, "improve": 2,
	"stable": 2, "trusted": 2, "verified": 1, "clean": 2, "healthy": 2,
	"mitigated": 2, "defended": 2,
}

// stopWords are dropped before key-phrase counting.
var stopWords = []string{
	"the", "a", "an", "and", "or", "but", "if", "then", "else", "when",
	"at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "from",
	"up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "once", "here", "there", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "only", "own",
	"same", "so", "than", "too", "very", "can", "will", "just", "should",
	"now", "is", "are", "was", "were", "be", "been", "being", "have",
	"has", "had", "having", "do", "does", "did", "doing", "would",
	"could", "ought", "i", "you", "he", "she", "it", "we", "they",
	"them", "their", "this", "that", "these", "those", "of", "to", "as",
	"not", "no", "nor", "what", "which", "who", "whom", "its", "our",
}

// englishFunctionWords drive the coarse language heuristic: a match ratio
// above 0.1 classifies the text as English.
var englishFunctionWords = []string{
	"the", "is", "at", "which", "on", "and", "a", "an", "in", "of",
	"to", "for", "with", "that", "it", "was", "are", "be", "this", "have",
}

// categoryPhrases maps each attack category to the literal phrases counted
// for classification. Occurrences are counted per phrase, not per token.
var categoryPhrases = map[string][]string{
	"breach":        {"data breach", "breach", "leaked", "exposed", "stolen data", "exfiltration"},
	"malware":       {"malware", "virus", "trojan", "ransomware", "worm", "spyware", "infected"},
	"phishing":      {"phishing", "spoofed", "fake email", "credential harvesting", "social engineering", "impersonation"},
	"ddos":          {"ddos", "denial of service", "botnet", "flood", "amplification"},
	"vulnerability": {"vulnerability", "cve", "exploit", "zero-day", "unpatched", "misconfiguration"},
	"insider":       {"insider", "disgruntled employee", "privileged access", "internal threat", "policy violation"},
}

// categoryOrder fixes iteration order so ties resolve deterministically.
var categoryOrder = []string{"breach", "malware", "phishing", "ddos", "vulnerability", "insider"}
