package usecase

import (
	"context"
	"errors"
	"testing"

	"requisiciones_api/internal/domain/documents"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/usecase/interfaces"
	mock_interfaces "requisiciones_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func draftWithGeneralData() entities.RequisitionDraft {
	d := editableDraft()
	d.GeneralData = &entities.GeneralData{
		ElaborationDate: "2024-05-10",
		ContractingType: entities.ContractingTypeAdjudicacion,
		RequestingArea:  d.AreaName,
		Requester:       d.RequesterName,
	}
	return d
}

func TestDocumentUseCase_ListKinds(t *testing.T) {
	uc := NewDocumentUseCase(nil, nil, nil)
	kinds := uc.ListKinds()
	if len(kinds) != 4 {
		t.Fatalf("expected 4 kinds, got %d", len(kinds))
	}
	if kinds[0].Code != "FO-CON-01" {
		t.Fatalf("unexpected first code %q", kinds[0].Code)
	}
}

func TestDocumentUseCase_Export(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil)
		_, err := uc.Export(context.Background(), "d-1", entities.DocumentKind("focon99"))
		if !errors.Is(err, documents.ErrUnknownDocumentKind) {
			t.Fatalf("expected ErrUnknownDocumentKind, got %v", err)
		}
	})

	t.Run("missing general data never reaches renderer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(repo, renderer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(editableDraft(), nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Export(context.Background(), "d-1", entities.DocumentKindOrder)
		if !errors.Is(err, documents.ErrMissingGeneralData) {
			t.Fatalf("expected ErrMissingGeneralData, got %v", err)
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		guard := NewInFlightGuard()
		uc := NewDocumentUseCase(repo, renderer, guard)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(draftWithGeneralData(), nil)
		renderer.EXPECT().Render(gomock.Any(), entities.DocumentKindJustification, gomock.Any(), "FOCON06_Justificacion_BORRADOR-D1").
			Return(interfaces.RenderedDocument{}, errors.New("timeout"))

		_, err := uc.Export(context.Background(), "d-1", entities.DocumentKindJustification)
		if !errors.Is(err, ErrExternalCall) {
			t.Fatalf("expected ErrExternalCall, got %v", err)
		}
		release, err := guard.Acquire("d-1", "submit")
		if err != nil {
			t.Fatalf("guard must be released after failure, got %v", err)
		}
		release()
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		uc := NewDocumentUseCase(repo, renderer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(draftWithGeneralData(), nil)
		renderer.EXPECT().Render(gomock.Any(), entities.DocumentKindOrder, gomock.AssignableToTypeOf(documents.OrderPayload{}), gomock.Any()).
			Return(interfaces.RenderedDocument{ContentType: "application/pdf", Content: []byte("%PDF")}, nil)

		doc, err := uc.Export(context.Background(), "d-1", entities.DocumentKindOrder)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Code != "FO-CON-01" || doc.ContentType != "application/pdf" || string(doc.Content) != "%PDF" {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("rejected while draft is busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
		guard := NewInFlightGuard()
		uc := NewDocumentUseCase(repo, renderer, guard)

		release, err := guard.Acquire("d-1", "submit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer release()

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(draftWithGeneralData(), nil)

		_, err = uc.Export(context.Background(), "d-1", entities.DocumentKindOrder)
		if !errors.Is(err, ErrOperationInFlight) {
			t.Fatalf("expected ErrOperationInFlight, got %v", err)
		}
	})
}
