package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse resolves free text into a task without storing it.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Create resolves free text, assigns an ID and stores the task. A Google
	// Calendar event is created for tasks with a due date when configured.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
}
