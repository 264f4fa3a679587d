package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"requisiciones_api/internal/adapter/http/handlers/mocks"
	"requisiciones_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListDeliverySites(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/catalog/delivery-sites", NewCatalogHandler(uc).ListDeliverySites)

		uc.EXPECT().ListDeliverySites(gomock.Any()).Return([]entities.DeliveryLocation{{Site: "Almacén General"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/catalog/delivery-sites", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"sede":"Almacén General"`) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/catalog/delivery-sites", NewCatalogHandler(uc).ListDeliverySites)

		uc.EXPECT().ListDeliverySites(gomock.Any()).Return(nil, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/v1/catalog/delivery-sites", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
