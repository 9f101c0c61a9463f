package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create classifies the input and stores a new task.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	// List returns tasks sorted from critical to low, newest first within a priority.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	// Update applies a partial update, reclassifying when content changes.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
}
