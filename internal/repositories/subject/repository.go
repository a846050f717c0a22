// Package subject provides the interface for sheet subject persistence
package subject

//go:generate mockgen -destination=mock/mock_repository.go -package=subjectmock github.com/KirkDiggler/godbound-api/internal/repositories/subject Repository

import (
	"context"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
)

// Repository defines the interface for subject persistence
type Repository interface {
	// Create stores a new subject
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a subject with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a subject by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the subject doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing subject
	// Returns errors.NotFound if the subject doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a subject and its index entries
	// Returns errors.NotFound if the subject doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves every subject owned by a user
	// Returns errors.InvalidArgument for empty owner IDs
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// CreateInput defines the input for creating a subject
type CreateInput struct {
	Subject *godbound.Subject
}

// CreateOutput defines the output for creating a subject
type CreateOutput struct {
	Subject *godbound.Subject
}

// GetInput defines the input for getting a subject
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a subject
type GetOutput struct {
	Subject *godbound.Subject
}

// UpdateInput defines the input for updating a subject
type UpdateInput struct {
	Subject *godbound.Subject
}

// UpdateOutput defines the output for updating a subject
type UpdateOutput struct {
	Subject *godbound.Subject
}

// DeleteInput defines the input for deleting a subject
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a subject
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing subjects by owner
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing subjects by owner
type ListByOwnerOutput struct {
	Subjects []*godbound.Subject
}
