// Package documents projects a draft into the payload of each official form.
//
// Building never fails because of missing optional data: every absent value is
// replaced with the literal the forms expect (N/A, S/N, S/D, SIN SELECCIÓN, $0.00).
package documents

import (
	"errors"
	"fmt"
	"strings"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/finance"
)

var (
	ErrMissingGeneralData  = errors.New("draft has no general data")
	ErrUnknownDocumentKind = errors.New("unknown document kind")
)

const (
	FallbackNotApplicable = "N/A"
	FallbackNoNumber      = "S/N"
	FallbackNoBudgetLine  = "S/D"
	FallbackNoWinner      = "SIN SELECCIÓN"
)

// Request is what the rendering service receives for one document.
type Request struct {
	Kind     entities.DocumentKind
	FileName string
	Payload  any
}

// Build assembles the payload for kind. The draft must carry general data.
func Build(kind entities.DocumentKind, d *entities.RequisitionDraft) (Request, error) {
	if !kind.Valid() {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}
	if d == nil || d.GeneralData == nil {
		return Request{}, ErrMissingGeneralData
	}

	var payload any
	switch kind {
	case entities.DocumentKindOrder:
		payload = BuildOrder(d)
	case entities.DocumentKindTechnicalAnnex:
		payload = BuildTechnicalAnnex(d)
	case entities.DocumentKindMarketResearch:
		payload = BuildMarketResearch(d)
	case entities.DocumentKindJustification:
		payload = BuildJustification(d)
	}

	return Request{
		Kind:     kind,
		FileName: kind.FileName(d.Folio),
		Payload:  payload,
	}, nil
}

func BuildOrder(d *entities.RequisitionDraft) OrderPayload {
	g := general(d)
	totals := finance.Compute(d.LineItems)

	lines := make([]OrderLine, 0, len(d.LineItems))
	for _, it := range d.LineItems {
		lines = append(lines, OrderLine{
			SpecificBudgetLine: orDefault(it.SpecificBudgetLine, FallbackNoBudgetLine),
			CUCOP:              it.CUCOP,
			Description:        it.Description,
			Unit:               it.Unit,
			Quantity:           it.Quantity.String(),
			Price:              finance.FormatCurrency(it.EffectivePrice()),
			Amount:             finance.FormatCurrency(it.Amount()),
		})
	}

	return OrderPayload{
		Folio:             d.Folio,
		Date:              g.ElaborationDate,
		Area:              g.RequestingArea,
		Requester:         g.Requester,
		ContractingType:   g.ContractingType.Label(),
		Program:           orDefault(g.ProgramProject, FallbackNotApplicable),
		AuthorizationMemo: orDefault(g.AuthorizationMemo, FallbackNoNumber),
		Lines:             lines,
		Subtotal:          finance.FormatCurrency(totals.Subtotal),
		Tax:               finance.FormatCurrency(totals.Tax),
		Total:             finance.FormatCurrency(totals.Total),
	}
}

func BuildTechnicalAnnex(d *entities.RequisitionDraft) TechnicalAnnexPayload {
	lines := make([]AnnexLine, 0, len(d.LineItems))
	for i, it := range d.LineItems {
		lines = append(lines, AnnexLine{
			Index:       i + 1,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Unit:        it.Unit,
		})
	}
	return TechnicalAnnexPayload{
		Folio: d.Folio,
		Area:  general(d).RequestingArea,
		Lines: lines,
	}
}

func BuildMarketResearch(d *entities.RequisitionDraft) MarketResearchPayload {
	p := MarketResearchPayload{
		Folio:              d.Folio,
		Date:               general(d).ElaborationDate,
		WinningProvider:    orDefault(d.WinningProviderName, FallbackNoWinner),
		SelectionRationale: orDefault(d.SelectionRationale, FallbackNotApplicable),
		Compranet:          make([]CompranetEntry, 0, len(d.CompranetSources)),
		Internet:           make([]InternetEntry, 0, len(d.InternetSources)),
		Archive:            make([]ArchiveEntry, 0, len(d.ArchiveSources)),
		Chambers:           make([]ChamberEntry, 0, len(d.ChamberSources)),
	}

	for i, r := range d.CompranetSources {
		p.Compranet = append(p.Compranet, CompranetEntry{
			Index:    i + 1,
			Provider: orDefault(r.ProviderName, entities.CompranetDefaultName),
			Price:    finance.FormatOptional(r.UnitPrice),
			Contract: orDefault(r.ContractNumber, FallbackNoNumber),
		})
	}
	for i, r := range d.InternetSources {
		providers := strings.Join(r.ProvidersFound, ", ")
		if providers == "" {
			providers = FallbackNotApplicable
		}
		p.Internet = append(p.Internet, InternetEntry{
			Index:     i + 1,
			Search:    orDefault(r.SearchTerm, FallbackNotApplicable),
			Page:      orDefault(r.PageURL, FallbackNotApplicable),
			Providers: providers,
		})
	}
	for i, r := range d.ArchiveSources {
		p.Archive = append(p.Archive, ArchiveEntry{
			Index:    i + 1,
			Provider: orDefault(r.Provider, entities.ArchiveDefaultName),
			Contract: orDefault(r.PriorContractNumber, FallbackNoNumber),
		})
	}
	for i, r := range d.ChamberSources {
		inst := r.Institution
		p.Chambers = append(p.Chambers, ChamberEntry{
			Index:       i + 1,
			Institution: orDefault(&inst, FallbackNotApplicable),
			Memo:        orDefault(r.MemoFolio, FallbackNoNumber),
		})
	}
	return p
}

// BuildJustification carries the justification text as written, blank included.
func BuildJustification(d *entities.RequisitionDraft) JustificationPayload {
	g := general(d)
	return JustificationPayload{
		Folio:         d.Folio,
		Area:          g.RequestingArea,
		Date:          g.ElaborationDate,
		Justification: d.Justification,
	}
}

func general(d *entities.RequisitionDraft) entities.GeneralData {
	if d.GeneralData == nil {
		return entities.GeneralData{}
	}
	return *d.GeneralData
}

func orDefault(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
