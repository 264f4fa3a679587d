// Package preview builds the read-only summary shown before a draft is submitted.
package preview

import (
	"fmt"
	"strings"

	"requisiciones_api/internal/domain/documents"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/evidence"
	"requisiciones_api/internal/domain/finance"
)

type Summary struct {
	Folio           string            `json:"folio"`
	Status          string            `json:"status"`
	ElaborationDate string            `json:"elaboration_date"`
	ContractingType string            `json:"contracting_type"`
	RequestingArea  string            `json:"requesting_area"`
	Requester       string            `json:"requester"`
	BudgetCodes     string            `json:"budget_codes"`
	Program         string            `json:"program"`
	Memo            string            `json:"authorization_memo"`
	Lines           []Line            `json:"lines"`
	Locations       []string          `json:"delivery_locations"`
	Providers       []Provider        `json:"providers"`
	EvidenceCount   map[string]int    `json:"evidence_count"`
	WinningProvider string            `json:"winning_provider"`
	Justification   string            `json:"justification"`
	Attachments     []string          `json:"attachments"`
	Totals          map[string]string `json:"totals"`
}

type Line struct {
	Number      int    `json:"number"`
	CUCOP       string `json:"cucop"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
}

type Provider struct {
	Name     string `json:"name"`
	Origin   string `json:"origin"`
	Status   string `json:"status"`
	Selected bool   `json:"selected"`
}

// Build never fails; missing sections show the same literals the documents use.
func Build(d *entities.RequisitionDraft) Summary {
	s := Summary{
		Folio:           d.Folio,
		Status:          statusLabel(d.Status),
		Program:         documents.FallbackNotApplicable,
		Memo:            documents.FallbackNoNumber,
		WinningProvider: documents.FallbackNoWinner,
		Justification:   d.Justification,
		EvidenceCount:   map[string]int{},
		Lines:           make([]Line, 0, len(d.LineItems)),
		Locations:       []string{},
		Providers:       make([]Provider, 0, len(d.InvitedProviders)),
		Attachments:     make([]string, 0, len(d.Attachments)),
	}

	if g := d.GeneralData; g != nil {
		s.ElaborationDate = g.ElaborationDate
		s.ContractingType = g.ContractingType.Label()
		s.RequestingArea = g.RequestingArea
		s.Requester = g.Requester
		s.BudgetCodes = g.BudgetCategoryCodes
		if g.ProgramProject != nil && strings.TrimSpace(*g.ProgramProject) != "" {
			s.Program = *g.ProgramProject
		}
		if g.AuthorizationMemo != nil && strings.TrimSpace(*g.AuthorizationMemo) != "" {
			s.Memo = *g.AuthorizationMemo
		}
		for _, l := range g.DeliveryLocations {
			s.Locations = append(s.Locations, fmt.Sprintf("%s: %s", l.Site, l.Address))
		}
	}

	for i, it := range d.LineItems {
		s.Lines = append(s.Lines, Line{
			Number:      i + 1,
			CUCOP:       it.CUCOP,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Unit:        it.Unit,
			Price:       finance.FormatCurrency(it.EffectivePrice()),
			Amount:      finance.FormatCurrency(it.Amount()),
		})
	}

	for _, p := range d.InvitedProviders {
		s.Providers = append(s.Providers, Provider{
			Name:     p.Name,
			Origin:   p.Origin.Label(),
			Status:   p.Status().Label(),
			Selected: p.Selected,
		})
	}

	for origin, n := range evidence.CountByOrigin(evidence.FromDraft(d)) {
		s.EvidenceCount[string(origin)] = n
	}

	if d.WinningProviderName != nil && strings.TrimSpace(*d.WinningProviderName) != "" {
		s.WinningProvider = *d.WinningProviderName
	}
	for _, a := range d.Attachments {
		s.Attachments = append(s.Attachments, a.FileName)
	}

	totals := finance.Compute(d.LineItems)
	s.Totals = map[string]string{
		"subtotal": finance.FormatCurrency(totals.Subtotal),
		"iva":      finance.FormatCurrency(totals.Tax),
		"total":    finance.FormatCurrency(totals.Total),
	}
	return s
}

// Markdown lays the summary out as a markdown document.
func Markdown(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Requisición %s\n\n", s.Folio)
	fmt.Fprintf(&b, "**Estatus:** %s\n\n", s.Status)

	b.WriteString("## Datos generales\n\n")
	fmt.Fprintf(&b, "- **Fecha de elaboración:** %s\n", s.ElaborationDate)
	fmt.Fprintf(&b, "- **Tipo de contratación:** %s\n", s.ContractingType)
	fmt.Fprintf(&b, "- **Área requirente:** %s\n", s.RequestingArea)
	fmt.Fprintf(&b, "- **Solicitante:** %s\n", s.Requester)
	fmt.Fprintf(&b, "- **Partida presupuestal:** %s\n", s.BudgetCodes)
	fmt.Fprintf(&b, "- **Programa / proyecto:** %s\n", s.Program)
	fmt.Fprintf(&b, "- **Oficio de autorización:** %s\n\n", s.Memo)

	b.WriteString("## Partidas\n\n")
	b.WriteString("| # | CUCOP | Descripción | Cantidad | Unidad | Precio | Importe |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			l.Number, cell(l.CUCOP), cell(l.Description), l.Quantity, cell(l.Unit), l.Price, l.Amount)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Subtotal:** %s\n- **IVA (16%%):** %s\n- **Total:** %s\n\n",
		s.Totals["subtotal"], s.Totals["iva"], s.Totals["total"])

	if len(s.Locations) > 0 {
		b.WriteString("## Lugares de entrega\n\n")
		for _, l := range s.Locations {
			fmt.Fprintf(&b, "- %s\n", l)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Investigación de mercado\n\n")
	fmt.Fprintf(&b, "- **Proveedor seleccionado:** %s\n", s.WinningProvider)
	for _, origin := range []entities.EvidenceOrigin{
		entities.EvidenceOriginCompranet,
		entities.EvidenceOriginArchive,
		entities.EvidenceOriginChamber,
		entities.EvidenceOriginInternet,
	} {
		fmt.Fprintf(&b, "- **Fuentes %s:** %d\n", origin, s.EvidenceCount[string(origin)])
	}
	b.WriteString("\n")

	if len(s.Providers) > 0 {
		b.WriteString("| Proveedor | Origen | Estatus | Seleccionado |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, p := range s.Providers {
			sel := "No"
			if p.Selected {
				sel = "Sí"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(p.Name), p.Origin, p.Status, sel)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Justificación\n\n")
	b.WriteString(s.Justification)
	b.WriteString("\n")
	if len(s.Attachments) > 0 {
		b.WriteString("\n**Anexos:**\n\n")
		for _, a := range s.Attachments {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	return b.String()
}

func statusLabel(s entities.DraftStatus) string {
	switch s {
	case entities.DraftStatusEnAutorizacion:
		return "En Autorización"
	default:
		return "En captura"
	}
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}
