package request

import (
	"errors"
	"strings"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidContractingType = errors.New("invalid contracting type")
	ErrInvalidProviderOrigin  = errors.New("invalid provider origin")
)

// CreateDraftRequest carries the session values of the user opening a draft.
type CreateDraftRequest struct {
	AreaID        int64  `json:"area_id" binding:"required,gt=0"`
	RequesterID   int64  `json:"requester_id" binding:"required,gt=0"`
	AreaName      string `json:"area_name"`
	RequesterName string `json:"requester_name"`
}

func (r CreateDraftRequest) ToCommand() usecase.CreateDraftCommand {
	return usecase.CreateDraftCommand{
		AreaID:        r.AreaID,
		RequesterID:   r.RequesterID,
		AreaName:      strings.TrimSpace(r.AreaName),
		RequesterName: strings.TrimSpace(r.RequesterName),
	}
}

// GeneralDataRequest is a partial update of step 1; absent fields are kept.
type GeneralDataRequest struct {
	ElaborationDate   *string                      `json:"elaboration_date"`
	ContractingType   *string                      `json:"contracting_type"`
	ProgramProject    *string                      `json:"program_project"`
	AuthorizationMemo *string                      `json:"authorization_memo"`
	DeliveryLocations *[]entities.DeliveryLocation `json:"delivery_locations"`
}

func (r GeneralDataRequest) ToCommand() (usecase.GeneralDataCommand, error) {
	cmd := usecase.GeneralDataCommand{
		ElaborationDate:   r.ElaborationDate,
		ProgramProject:    r.ProgramProject,
		AuthorizationMemo: r.AuthorizationMemo,
		DeliveryLocations: r.DeliveryLocations,
	}
	if r.ContractingType != nil {
		ct := entities.ContractingType(strings.TrimSpace(*r.ContractingType))
		if !ct.Valid() {
			return usecase.GeneralDataCommand{}, ErrInvalidContractingType
		}
		cmd.ContractingType = &ct
	}
	return cmd, nil
}

type LineItemRequest struct {
	CUCOP              string           `json:"cucop"`
	Description        string           `json:"description"`
	Unit               string           `json:"unit"`
	Quantity           decimal.Decimal  `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unit_price"`
	EstimatedPrice     *decimal.Decimal `json:"estimated_price"`
	SpecificBudgetLine *string          `json:"specific_budget_line"`
}

type LineItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

func (r LineItemsRequest) ToEntities() []entities.LineItem {
	return toLineItems(r.Items)
}

func toLineItems(in []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{
			CUCOP:              strings.TrimSpace(it.CUCOP),
			Description:        strings.TrimSpace(it.Description),
			Unit:               strings.TrimSpace(it.Unit),
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			EstimatedPrice:     it.EstimatedPrice,
			SpecificBudgetLine: it.SpecificBudgetLine,
		})
	}
	return out
}

type InvitedProviderRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name" binding:"required"`
	TaxID            *string `json:"tax_id"`
	Origin           string  `json:"origin" binding:"required"`
	InvitationSent   bool    `json:"invitation_sent"`
	ResponseUploaded bool    `json:"response_uploaded"`
	Selected         bool    `json:"selected"`
}

// ResearchRequest replaces step 3 (market research) as a whole.
type ResearchRequest struct {
	CompranetSources    []entities.CompranetRecord `json:"compranet_sources"`
	ArchiveSources      []entities.ArchiveRecord   `json:"archive_sources"`
	ChamberSources      []entities.ChamberRecord   `json:"chamber_sources"`
	InternetSources     []entities.InternetRecord  `json:"internet_sources"`
	InvitedProviders    []InvitedProviderRequest   `json:"invited_providers" binding:"dive"`
	WinningProviderName *string                    `json:"winning_provider_name"`
	SelectionRationale  *string                    `json:"selection_rationale"`
}

func (r ResearchRequest) ToCommand() (usecase.ResearchCommand, error) {
	providers, err := toProviders(r.InvitedProviders)
	if err != nil {
		return usecase.ResearchCommand{}, err
	}
	return usecase.ResearchCommand{
		CompranetSources:    r.CompranetSources,
		ArchiveSources:      r.ArchiveSources,
		ChamberSources:      r.ChamberSources,
		InternetSources:     r.InternetSources,
		InvitedProviders:    providers,
		WinningProviderName: r.WinningProviderName,
		SelectionRationale:  r.SelectionRationale,
	}, nil
}

func toProviders(in []InvitedProviderRequest) ([]entities.InvitedProvider, error) {
	out := make([]entities.InvitedProvider, 0, len(in))
	for _, p := range in {
		origin := entities.ProviderOrigin(strings.TrimSpace(p.Origin))
		if !origin.Valid() {
			return nil, ErrInvalidProviderOrigin
		}
		out = append(out, entities.InvitedProvider{
			ID:               strings.TrimSpace(p.ID),
			Name:             strings.TrimSpace(p.Name),
			TaxID:            p.TaxID,
			Origin:           origin,
			InvitationSent:   p.InvitationSent,
			ResponseUploaded: p.ResponseUploaded,
			Selected:         p.Selected,
		})
	}
	return out, nil
}

type JustificationRequest struct {
	Justification string                `json:"justification"`
	Attachments   []entities.Attachment `json:"attachments"`
}

// SaveDraftRequest is the whole editable content of a draft, as sent by the
// "guardar borrador" action.
type SaveDraftRequest struct {
	GeneralData   *entities.GeneralData `json:"general_data"`
	LineItems     []LineItemRequest     `json:"line_items"`
	Research      ResearchRequest       `json:"research"`
	Justification string                `json:"justification"`
	Attachments   []entities.Attachment `json:"attachments"`
}

func (r SaveDraftRequest) ToEntity() (entities.RequisitionDraft, error) {
	research, err := r.Research.ToCommand()
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	if g := r.GeneralData; g != nil && g.ContractingType != "" && !g.ContractingType.Valid() {
		return entities.RequisitionDraft{}, ErrInvalidContractingType
	}
	return entities.RequisitionDraft{
		GeneralData:         r.GeneralData,
		LineItems:           toLineItems(r.LineItems),
		Justification:       r.Justification,
		Attachments:         r.Attachments,
		CompranetSources:    research.CompranetSources,
		ArchiveSources:      research.ArchiveSources,
		ChamberSources:      research.ChamberSources,
		InternetSources:     research.InternetSources,
		InvitedProviders:    research.InvitedProviders,
		WinningProviderName: research.WinningProviderName,
		SelectionRationale:  research.SelectionRationale,
	}, nil
}
