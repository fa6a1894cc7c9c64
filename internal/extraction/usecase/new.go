package usecase

import (
	"smart-task-parser/internal/extraction"
	pkgLog "smart-task-parser/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	model extraction.Extractor
	rules extraction.Extractor
}

// New creates the extraction UseCase trying model first and rules on any
// model failure. rules must never fail.
func New(l pkgLog.Logger, model extraction.Extractor, rules extraction.Extractor) extraction.UseCase {
	return &implUseCase{
		l:     l,
		model: model,
		rules: rules,
	}
}
