package response

import (
	"testing"
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/finance"
	"requisiciones_api/internal/usecase"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func TestFromTotals(t *testing.T) {
	got := FromTotals(finance.Totals{
		Subtotal: decimal.NewFromInt(1000),
		Tax:      decimal.NewFromInt(160),
		Total:    decimal.NewFromInt(1160),
	})
	if got.Subtotal != "1000.00" || got.Tax != "160.00" || got.Total != "1160.00" {
		t.Fatalf("unexpected raw totals %+v", got)
	}
	if got.TotalFormatted != "$1,160.00" {
		t.Fatalf("unexpected formatted total %q", got.TotalFormatted)
	}
}

func TestFromDraft(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	d := entities.RequisitionDraft{
		ID:     "d-1",
		Folio:  "BORRADOR-D1",
		Status: entities.DraftStatusEnCaptura,
		GeneralData: &entities.GeneralData{
			ContractingType: entities.ContractingTypeAdjudicacion,
		},
		LineItems: []entities.LineItem{
			{CUCOP: "21101001", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(100)},
		},
		InvitedProviders: []entities.InvitedProvider{
			{ID: "p-1", Name: "Papelera", Origin: entities.ProviderOriginCompranet, InvitationSent: true, ResponseUploaded: true},
		},
		InternetSources: []entities.InternetRecord{{}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	got := FromDraft(d)
	if !got.Editable || got.Status != "en_captura" {
		t.Fatalf("unexpected status %+v", got)
	}
	if got.GeneralData.ContractingTypeLabel != "Adjudicación Directa" {
		t.Fatalf("unexpected label %q", got.GeneralData.ContractingTypeLabel)
	}
	if got.LineItems[0].Number != 1 || got.LineItems[0].Amount.StringFixed(2) != "300.00" {
		t.Fatalf("unexpected line %+v", got.LineItems[0])
	}
	if got.Totals.Total != "348.00" {
		t.Fatalf("unexpected total %q", got.Totals.Total)
	}
	p := got.Research.InvitedProviders[0]
	if p.Status != entities.ProviderStatusCotizacionRecibida || p.StatusLabel == "" || p.OriginLabel == "" {
		t.Fatalf("unexpected provider %+v", p)
	}
	if len(got.Research.Evidence) != 1 || got.Research.Evidence[0].Origin != entities.EvidenceOriginInternet {
		t.Fatalf("unexpected evidence %+v", got.Research.Evidence)
	}
	if got.Research.CompranetSources == nil || got.Attachments == nil {
		t.Fatalf("expected empty slices instead of nil")
	}
}

func TestFromDraft_WithoutGeneralData(t *testing.T) {
	got := FromDraft(entities.RequisitionDraft{ID: "d-1", Status: entities.DraftStatusEnAutorizacion})
	if got.GeneralData != nil || got.Editable {
		t.Fatalf("unexpected response %+v", got)
	}
	if got.Totals.Total != "0.00" {
		t.Fatalf("unexpected totals %+v", got.Totals)
	}
}

func TestFromSubmission(t *testing.T) {
	got := FromSubmission(usecase.SubmissionResult{
		Draft:       entities.RequisitionDraft{ID: "d-1", Folio: "REQ-2024-0001", Status: entities.DraftStatusEnAutorizacion},
		Requisition: interfaces.CreatedRequisition{ID: "42", Folio: "REQ-2024-0001"},
	})
	if got.RequisitionID != "42" || got.Folio != "REQ-2024-0001" || got.Draft.ID != "d-1" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestFromDocumentKinds(t *testing.T) {
	got := FromDocumentKinds(usecase.NewDocumentUseCase(nil, nil, nil).ListKinds())
	if len(got) != 4 || got[3].Kind != "focon06" || got[3].Code != "FO-CON-06" {
		t.Fatalf("unexpected kinds %+v", got)
	}
}
