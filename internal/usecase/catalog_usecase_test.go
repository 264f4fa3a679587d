package usecase

import (
	"context"
	"errors"
	"testing"

	"requisiciones_api/internal/domain/entities"
	mock_interfaces "requisiciones_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListDeliverySites(t *testing.T) {
	t.Run("returns catalog sites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sites := mock_interfaces.NewMockIDeliverySiteCatalog(ctrl)
		uc := NewCatalogUseCase(sites)

		sites.EXPECT().DeliverySites(gomock.Any()).Return([]entities.DeliveryLocation{{Site: "Almacén General"}}, nil)

		got, err := uc.ListDeliverySites(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Site != "Almacén General" {
			t.Fatalf("unexpected sites %+v", got)
		}
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sites := mock_interfaces.NewMockIDeliverySiteCatalog(ctrl)
		uc := NewCatalogUseCase(sites)

		sites.EXPECT().DeliverySites(gomock.Any()).Return(nil, nil)

		got, err := uc.ListDeliverySites(context.Background())
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %v %v", got, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sites := mock_interfaces.NewMockIDeliverySiteCatalog(ctrl)
		uc := NewCatalogUseCase(sites)

		sites.EXPECT().DeliverySites(gomock.Any()).Return(nil, errors.New("read"))

		if _, err := uc.ListDeliverySites(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
