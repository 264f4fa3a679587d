package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/usecase/interfaces"
	mock_interfaces "requisiciones_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func submittableDraft() entities.RequisitionDraft {
	d := draftWithGeneralData()
	d.LineItems = []entities.LineItem{{
		CUCOP:       "21101001",
		Description: "Hojas blancas",
		Unit:        "Caja",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("150.50"),
	}}
	d.Justification = "Abasto trimestral"
	return d
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	t.Run("validation failure never reaches backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})

		d := submittableDraft()
		d.Justification = "   "
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
		gateway.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).Times(0)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Submit(context.Background(), "d-1")
		if !errors.Is(err, submission.ErrEmptyJustification) {
			t.Fatalf("expected ErrEmptyJustification, got %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})

		d := submittableDraft()
		d.Status = entities.DraftStatusEnAutorizacion
		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		_, err := uc.Submit(context.Background(), "d-1")
		if !errors.Is(err, ErrDraftAlreadySubmitted) {
			t.Fatalf("expected ErrDraftAlreadySubmitted, got %v", err)
		}
	})

	t.Run("backend failure leaves draft untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(submittableDraft(), nil)
		gateway.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).Return(interfaces.CreatedRequisition{}, errors.New("503"))
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Submit(context.Background(), "d-1")
		if !errors.Is(err, ErrExternalCall) {
			t.Fatalf("expected ErrExternalCall, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})
		fixed := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(submittableDraft(), nil)
		gateway.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p submission.CreationPayload) (interfaces.CreatedRequisition, error) {
				if p.Status != submission.SubmittedStatusLabel {
					t.Fatalf("unexpected status %q", p.Status)
				}
				if p.UserID != 9 || p.AreaID != 3 {
					t.Fatalf("unexpected session ids %d/%d", p.UserID, p.AreaID)
				}
				if len(p.Lines) != 1 || p.Lines[0].UnitPrice != 150.5 {
					t.Fatalf("unexpected lines %+v", p.Lines)
				}
				return interfaces.CreatedRequisition{ID: "77", Folio: "REQ-2024-0001"}, nil
			})
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg)

		res, err := uc.Submit(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Draft.Status != entities.DraftStatusEnAutorizacion || res.Draft.Folio != "REQ-2024-0001" {
			t.Fatalf("unexpected draft: %+v", res.Draft)
		}
		if res.Draft.SubmittedAt == nil || !res.Draft.SubmittedAt.Equal(fixed) {
			t.Fatalf("unexpected submitted_at %v", res.Draft.SubmittedAt)
		}
		if res.Requisition.ID != "77" {
			t.Fatalf("unexpected requisition %+v", res.Requisition)
		}
	})

	t.Run("local update failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(submittableDraft(), nil)
		gateway.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).Return(interfaces.CreatedRequisition{ID: "1", Folio: "REQ-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.RequisitionDraft{}, errors.New("db down"))

		if _, err := uc.Submit(context.Background(), "d-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("retry after local update failure does not create twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDraftRepository(ctrl)
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		uc := NewSubmissionUseCase(repo, gateway, nil, submission.Options{})

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(submittableDraft(), nil).Times(2)
		gateway.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).
			Return(interfaces.CreatedRequisition{ID: "77", Folio: "REQ-2024-0001"}, nil).Times(1)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.RequisitionDraft{}, errors.New("db down")),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(returnArg),
		)

		if _, err := uc.Submit(context.Background(), "d-1"); err == nil {
			t.Fatalf("expected error on first submit")
		}
		res, err := uc.Submit(context.Background(), "d-1")
		if err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if res.Draft.Folio != "REQ-2024-0001" || res.Requisition.ID != "77" {
			t.Fatalf("unexpected retry result %+v", res)
		}
		if len(uc.pending) != 0 {
			t.Fatalf("pending entry not cleared: %+v", uc.pending)
		}
	})

	t.Run("no gateway configured", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil, nil, submission.Options{})
		if _, err := uc.Submit(context.Background(), "d-1"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("concurrent submit rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRequisitionGateway(ctrl)
		guard := NewInFlightGuard()
		uc := NewSubmissionUseCase(nil, gateway, guard, submission.Options{})

		release, _ := guard.Acquire("d-1", "export")
		defer release()

		if _, err := uc.Submit(context.Background(), "d-1"); !errors.Is(err, ErrOperationInFlight) {
			t.Fatalf("expected ErrOperationInFlight, got %v", err)
		}
	})
}

func TestSubmissionUseCase_PreviewPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDraftRepository(ctrl)
	uc := NewSubmissionUseCase(repo, nil, nil, submission.Options{PlaceholderBaseURL: "https://files.example"})

	d := submittableDraft()
	d.Attachments = []entities.Attachment{{FileName: "cotizacion.pdf"}}
	repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

	p, err := uc.PreviewPayload(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Attachments) != 1 || p.Attachments[0].URL != "https://files.example/cotizacion.pdf" {
		t.Fatalf("unexpected attachments %+v", p.Attachments)
	}
}
