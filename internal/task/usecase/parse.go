package usecase

import (
	"context"
	"strings"

	"smart-task-parser/internal/task"
)

// Parse resolves the input text without storing anything.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	outcome := uc.extractor.Resolve(ctx, input.Text)
	uc.l.Infof(ctx, "task.usecase.Parse: source=%s input_length=%d", outcome.Source, len(input.Text))

	return task.ParseOutput{
		Task:   outcome.Task,
		Source: outcome.Source,
		Notice: outcome.Notice(),
	}, nil
}
