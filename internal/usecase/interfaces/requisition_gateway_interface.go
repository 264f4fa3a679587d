package interfaces

import (
	"context"

	"requisiciones_api/internal/domain/submission"
)

// CreatedRequisition is what the backend returns after persisting a requisition.
type CreatedRequisition struct {
	ID    string `json:"id"`
	Folio string `json:"folio"`
}

// IRequisitionGateway submits a finished draft to the requisitions backend.
type IRequisitionGateway interface {
	CreateRequisition(ctx context.Context, payload submission.CreationPayload) (CreatedRequisition, error)
}
