package response

import (
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/evidence"
	"requisiciones_api/internal/domain/finance"

	"github.com/shopspring/decimal"
)

type TotalsResponse struct {
	Subtotal          string `json:"subtotal"`
	Tax               string `json:"iva"`
	Total             string `json:"total"`
	SubtotalFormatted string `json:"subtotal_formatted"`
	TaxFormatted      string `json:"iva_formatted"`
	TotalFormatted    string `json:"total_formatted"`
}

func FromTotals(t finance.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:          t.Subtotal.StringFixed(2),
		Tax:               t.Tax.StringFixed(2),
		Total:             t.Total.StringFixed(2),
		SubtotalFormatted: finance.FormatCurrency(t.Subtotal),
		TaxFormatted:      finance.FormatCurrency(t.Tax),
		TotalFormatted:    finance.FormatCurrency(t.Total),
	}
}

type GeneralDataResponse struct {
	entities.GeneralData
	ContractingTypeLabel string `json:"contracting_type_label"`
}

type LineItemResponse struct {
	entities.LineItem
	Number int             `json:"number"`
	Amount decimal.Decimal `json:"amount"`
}

type ProviderResponse struct {
	entities.InvitedProvider
	OriginLabel string                  `json:"origin_label"`
	Status      entities.ProviderStatus `json:"status"`
	StatusLabel string                  `json:"status_label"`
}

type ResearchResponse struct {
	CompranetSources    []entities.CompranetRecord `json:"compranet_sources"`
	ArchiveSources      []entities.ArchiveRecord   `json:"archive_sources"`
	ChamberSources      []entities.ChamberRecord   `json:"chamber_sources"`
	InternetSources     []entities.InternetRecord  `json:"internet_sources"`
	Evidence            []entities.EvidenceSource  `json:"evidence"`
	InvitedProviders    []ProviderResponse         `json:"invited_providers"`
	WinningProviderName *string                    `json:"winning_provider_name,omitempty"`
	SelectionRationale  *string                    `json:"selection_rationale,omitempty"`
}

type DraftResponse struct {
	ID            string                `json:"id"`
	Folio         string                `json:"folio"`
	Status        string                `json:"status"`
	Editable      bool                  `json:"editable"`
	AreaID        int64                 `json:"area_id"`
	RequesterID   int64                 `json:"requester_id"`
	AreaName      string                `json:"area_name"`
	RequesterName string                `json:"requester_name"`
	GeneralData   *GeneralDataResponse  `json:"general_data"`
	LineItems     []LineItemResponse    `json:"line_items"`
	Research      ResearchResponse      `json:"research"`
	Justification string                `json:"justification"`
	Attachments   []entities.Attachment `json:"attachments"`
	Totals        TotalsResponse        `json:"totals"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	SubmittedAt   *time.Time            `json:"submitted_at,omitempty"`
}

func FromDraft(d entities.RequisitionDraft) DraftResponse {
	var general *GeneralDataResponse
	if d.GeneralData != nil {
		general = &GeneralDataResponse{
			GeneralData:          *d.GeneralData,
			ContractingTypeLabel: d.GeneralData.ContractingType.Label(),
		}
	}

	items := make([]LineItemResponse, 0, len(d.LineItems))
	for i, it := range d.LineItems {
		items = append(items, LineItemResponse{LineItem: it, Number: i + 1, Amount: it.Amount()})
	}

	providers := make([]ProviderResponse, 0, len(d.InvitedProviders))
	for _, p := range d.InvitedProviders {
		st := p.Status()
		providers = append(providers, ProviderResponse{
			InvitedProvider: p,
			OriginLabel:     p.Origin.Label(),
			Status:          st,
			StatusLabel:     st.Label(),
		})
	}

	return DraftResponse{
		ID:            d.ID,
		Folio:         d.Folio,
		Status:        string(d.Status),
		Editable:      d.Editable(),
		AreaID:        d.AreaID,
		RequesterID:   d.RequesterID,
		AreaName:      d.AreaName,
		RequesterName: d.RequesterName,
		GeneralData:   general,
		LineItems:     items,
		Research: ResearchResponse{
			CompranetSources:    emptyIfNil(d.CompranetSources),
			ArchiveSources:      emptyIfNil(d.ArchiveSources),
			ChamberSources:      emptyIfNil(d.ChamberSources),
			InternetSources:     emptyIfNil(d.InternetSources),
			Evidence:            evidence.FromDraft(&d),
			InvitedProviders:    providers,
			WinningProviderName: d.WinningProviderName,
			SelectionRationale:  d.SelectionRationale,
		},
		Justification: d.Justification,
		Attachments:   emptyIfNil(d.Attachments),
		Totals:        FromTotals(finance.Compute(d.LineItems)),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		SubmittedAt:   d.SubmittedAt,
	}
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
