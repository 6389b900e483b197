package usecase

import (
	"vigil-srv/internal/analysis"
	"vigil-srv/pkg/log"
)

// implUseCase - Implementation of the analysis UseCase interface.
// All methods are pure and safe for concurrent use; the lexicons are
// loaded once at construction and never mutated.
type implUseCase struct {
	l   log.Logger
	lex *lexicon
}

// New - Factory function
func New(l log.Logger) analysis.UseCase {
	return &implUseCase{
		l:   l,
		lex: defaultLexicon(),
	}
}
