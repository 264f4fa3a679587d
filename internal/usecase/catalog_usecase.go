package usecase

import (
	"context"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/usecase/interfaces"
)

// ICatalogUseCase exposes reference data used while capturing a draft.
type ICatalogUseCase interface {
	ListDeliverySites(ctx context.Context) ([]entities.DeliveryLocation, error)
}

type CatalogUseCase struct {
	sites interfaces.IDeliverySiteCatalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(sites interfaces.IDeliverySiteCatalog) *CatalogUseCase {
	return &CatalogUseCase{sites: sites}
}

func (u *CatalogUseCase) ListDeliverySites(ctx context.Context) ([]entities.DeliveryLocation, error) {
	sites, err := u.sites.DeliverySites(ctx)
	if err != nil {
		return nil, err
	}
	if sites == nil {
		return []entities.DeliveryLocation{}, nil
	}
	return sites, nil
}
