package usecase

import (
	"context"
	"errors"

	"smart-task-parser/internal/extraction"
)

// Resolve implements extraction.UseCase.
func (uc *implUseCase) Resolve(ctx context.Context, input string) extraction.Outcome {
	if uc.model != nil {
		task, err := uc.model.Extract(ctx, input)
		if err == nil {
			return extraction.Outcome{Task: task, Source: extraction.SourceModel}
		}
		uc.logFallback(ctx, err)
		return uc.fallback(ctx, input, err)
	}
	return uc.fallback(ctx, input, extraction.ErrCapabilityUnavailable)
}

func (uc *implUseCase) fallback(ctx context.Context, input string, reason error) extraction.Outcome {
	task, err := uc.rules.Extract(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Resolve: rule-based extractor failed: %v", err)
	}
	return extraction.Outcome{Task: task, Source: extraction.SourceRules, Reason: reason}
}

// Credential absence is expected and stays at debug level.
func (uc *implUseCase) logFallback(ctx context.Context, err error) {
	if errors.Is(err, extraction.ErrCapabilityUnavailable) {
		uc.l.Debugf(ctx, "extraction.usecase.Resolve: %s: %v", extraction.FallbackNotice, err)
		return
	}
	uc.l.Infof(ctx, "extraction.usecase.Resolve: %s: %v", extraction.FallbackNotice, err)
}
