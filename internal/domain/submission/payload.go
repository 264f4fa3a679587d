package submission

import (
	"fmt"
	"strings"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/evidence"

	"github.com/bytedance/sonic"
)

const (
	// SubmittedStatusLabel is the backend status a new requisition starts in.
	SubmittedStatusLabel = "En Autorización"
	// AttachmentKindJustification tags attachments uploaded with the justification.
	AttachmentKindJustification = "Justificacion"

	DefaultPlaceholderBaseURL = "http://simulado.com/"
)

// CreationPayload is the body of the requisition creation call.
type CreationPayload struct {
	Folio             string               `json:"folio"`
	ElaborationDate   string               `json:"fecha_elaboracion"`
	ContractingType   string               `json:"tipo_contratacion"`
	Status            string               `json:"estatus"`
	Justification     string               `json:"justificacion"`
	UserID            int64                `json:"usuario_id"`
	AreaID            int64                `json:"area_id"`
	Lines             []CreationLine       `json:"partidas"`
	Research          CreationResearch     `json:"investigacion"`
	Attachments       []CreationAttachment `json:"anexos"`
	AuthorizationMemo *string              `json:"oficio_autorizacion"`
	BudgetCategories  string               `json:"partida_presupuestal"`
	ProgramProject    *string              `json:"programa_proyecto"`
	DeliveryLocations string               `json:"lugar_entrega"`
}

type CreationLine struct {
	Number             int      `json:"partida_numero"`
	CUCOP              string   `json:"cucop"`
	Description        string   `json:"descripcion"`
	Quantity           float64  `json:"cantidad"`
	Unit               string   `json:"unidad"`
	UnitPrice          float64  `json:"precio_unitario"`
	EstimatedPrice     *float64 `json:"precio_estimado,omitempty"`
	SpecificBudgetLine *string  `json:"partida_especifica"`
}

type CreationResearch struct {
	Sources          []CreationSource `json:"fuentes"`
	SelectedProvider *string          `json:"proveedor_seleccionado"`
	Rationale        *string          `json:"razon_seleccion"`
}

// CreationSource is entities.EvidenceSource with a numeric price on the wire.
type CreationSource struct {
	SourceName     string  `json:"nombre_fuente"`
	Origin         string  `json:"tipo_fuente"`
	URL            *string `json:"url_fuente"`
	UnitPrice      float64 `json:"precio_unitario"`
	ContractNumber *string `json:"numero_contrato"`
	ReferenceDate  *string `json:"fecha_referencia"`
	Description    string  `json:"descripcion_bien"`
}

type CreationAttachment struct {
	FileName string `json:"nombre_archivo"`
	Kind     string `json:"tipo_anexo"`
	URL      string `json:"url_archivo"`
}

type Options struct {
	PlaceholderBaseURL string
}

// deliveryLocationWire is the shape stored by the backend inside lugar_entrega.
type deliveryLocationWire struct {
	Site           string  `json:"sede"`
	Address        string  `json:"direccion"`
	Reference      string  `json:"referencia"`
	OpeningHours   string  `json:"horario"`
	Contact        string  `json:"contacto"`
	LinkGoogleMaps *string `json:"linkGoogleMaps,omitempty"`
}

// BuildCreationPayload assembles the creation body. It does not validate; call
// Validate first.
func BuildCreationPayload(d *entities.RequisitionDraft, opts Options) (CreationPayload, error) {
	g := entities.GeneralData{}
	if d.GeneralData != nil {
		g = *d.GeneralData
	}

	locations, err := encodeDeliveryLocations(g.DeliveryLocations)
	if err != nil {
		return CreationPayload{}, err
	}

	base := opts.PlaceholderBaseURL
	if base == "" {
		base = DefaultPlaceholderBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	lines := make([]CreationLine, 0, len(d.LineItems))
	for i, it := range d.LineItems {
		line := CreationLine{
			Number:             i + 1,
			CUCOP:              it.CUCOP,
			Description:        it.Description,
			Quantity:           it.Quantity.InexactFloat64(),
			Unit:               it.Unit,
			UnitPrice:          it.UnitPrice.InexactFloat64(),
			SpecificBudgetLine: it.SpecificBudgetLine,
		}
		if it.EstimatedPrice != nil {
			v := it.EstimatedPrice.InexactFloat64()
			line.EstimatedPrice = &v
		}
		lines = append(lines, line)
	}

	sources := evidence.FromDraft(d)
	wireSources := make([]CreationSource, 0, len(sources))
	for _, s := range sources {
		wireSources = append(wireSources, CreationSource{
			SourceName:     s.SourceName,
			Origin:         string(s.Origin),
			URL:            s.URL,
			UnitPrice:      s.UnitPrice.InexactFloat64(),
			ContractNumber: s.ContractNumber,
			ReferenceDate:  s.ReferenceDate,
			Description:    s.Description,
		})
	}

	attachments := make([]CreationAttachment, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		attachments = append(attachments, CreationAttachment{
			FileName: a.FileName,
			Kind:     AttachmentKindJustification,
			URL:      base + a.FileName,
		})
	}

	return CreationPayload{
		Folio:           d.Folio,
		ElaborationDate: g.ElaborationDate,
		ContractingType: string(g.ContractingType),
		Status:          SubmittedStatusLabel,
		Justification:   d.Justification,
		UserID:          d.RequesterID,
		AreaID:          d.AreaID,
		Lines:           lines,
		Research: CreationResearch{
			Sources:          wireSources,
			SelectedProvider: d.WinningProviderName,
			Rationale:        d.SelectionRationale,
		},
		Attachments:       attachments,
		AuthorizationMemo: g.AuthorizationMemo,
		BudgetCategories:  g.BudgetCategoryCodes,
		ProgramProject:    g.ProgramProject,
		DeliveryLocations: locations,
	}, nil
}

func encodeDeliveryLocations(locs []entities.DeliveryLocation) (string, error) {
	wire := make([]deliveryLocationWire, 0, len(locs))
	for _, l := range locs {
		wire = append(wire, deliveryLocationWire{
			Site:           l.Site,
			Address:        l.Address,
			Reference:      l.Reference,
			OpeningHours:   l.OpeningHours,
			Contact:        l.Contact,
			LinkGoogleMaps: l.MapLink,
		})
	}
	s, err := sonic.MarshalString(wire)
	if err != nil {
		return "", fmt.Errorf("encode delivery locations: %w", err)
	}
	return s, nil
}
