package interfaces

import (
	"context"

	"requisiciones_api/internal/domain/entities"
)

// IDeliverySiteCatalog lists the predefined delivery sites users can pick from.
type IDeliverySiteCatalog interface {
	DeliverySites(ctx context.Context) ([]entities.DeliveryLocation, error)
}
