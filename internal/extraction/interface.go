package extraction

import (
	"context"

	"smart-task-parser/internal/model"
)

// Extractor turns free text into a ParsedTask. It is the capability both
// strategies implement; an error tells the caller to try another strategy.
type Extractor interface {
	Extract(ctx context.Context, input string) (model.ParsedTask, error)
}

// UseCase resolves free text into a task. Resolve is total: it always
// returns a valid ParsedTask.
type UseCase interface {
	Resolve(ctx context.Context, input string) Outcome
}
