package interfaces

import (
	"context"

	"requisiciones_api/internal/domain/entities"
)

// IDraftRepository abstracts persistence for RequisitionDraft.
//
// Lookups return a zero-value draft (empty ID) when nothing matches; only
// infrastructure failures are returned as errors.
type IDraftRepository interface {
	Create(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error)
	GetByID(ctx context.Context, id string) (entities.RequisitionDraft, error)
	Update(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error)
	Delete(ctx context.Context, id string) error
}
