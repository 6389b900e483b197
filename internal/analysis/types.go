package analysis

const (
	// MaxTextLength bounds a single text submission, in bytes.
	MaxTextLength = 20000
	// MaxBatchSize bounds the number of texts in one batch.
	MaxBatchSize = 50
	// TopKeyPhrases is the number of key phrases returned per analysis.
	TopKeyPhrases = 10
)

type AnalyzeInput struct {
	Text string
}

type BatchInput struct {
	Texts []string
}

type SummaryOutput struct {
	Summary  string
	Language string
}
