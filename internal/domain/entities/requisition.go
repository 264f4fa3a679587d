package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DraftStatus represents the lifecycle of a requisition draft.
//
// Domain notes:
//   - A draft stays "en_captura" while the requesting area edits it.
//   - A successful submission moves it to "en_autorizacion"; from there it is read-only.
type DraftStatus string

const (
	DraftStatusEnCaptura      DraftStatus = "en_captura"
	DraftStatusEnAutorizacion DraftStatus = "en_autorizacion"
)

// ContractingType is the procurement procedure requested for the requisition.
type ContractingType string

const (
	ContractingTypeAdjudicacion            ContractingType = "adjudicacion"
	ContractingTypeInvitacion              ContractingType = "invitacion"
	ContractingTypeLicitacion              ContractingType = "licitacion"
	ContractingTypeLicitacionInternacional ContractingType = "licitacion-internacional"
)

var contractingTypeLabels = map[ContractingType]string{
	ContractingTypeAdjudicacion:            "Adjudicación Directa",
	ContractingTypeInvitacion:              "Invitación a cuando menos tres personas",
	ContractingTypeLicitacion:              "Licitación Pública Nacional",
	ContractingTypeLicitacionInternacional: "Licitación Pública Internacional",
}

func (c ContractingType) Valid() bool {
	_, ok := contractingTypeLabels[c]
	return ok
}

// Label returns the human readable name, or the raw code when unknown.
func (c ContractingType) Label() string {
	if l, ok := contractingTypeLabels[c]; ok {
		return l
	}
	return string(c)
}

// RequisitionDraft is the aggregate root edited through the capture steps.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The four evidence slices keep their origin-specific shape; they are converted to
// EvidenceSource only when a document or the creation payload is assembled.
type RequisitionDraft struct {
	ID          string      `json:"id"`
	Folio       string      `json:"folio"`
	Status      DraftStatus `json:"status"`
	AreaID      int64       `json:"area_id"`
	RequesterID int64       `json:"requester_id"`

	// Session values copied into GeneralData when the first step is saved.
	AreaName      string `json:"area_name"`
	RequesterName string `json:"requester_name"`

	GeneralData   *GeneralData `json:"general_data,omitempty"`
	LineItems     []LineItem   `json:"line_items"`
	Justification string       `json:"justification"`
	Attachments   []Attachment `json:"attachments"`

	CompranetSources []CompranetRecord `json:"compranet_sources"`
	ArchiveSources   []ArchiveRecord   `json:"archive_sources"`
	ChamberSources   []ChamberRecord   `json:"chamber_sources"`
	InternetSources  []InternetRecord  `json:"internet_sources"`

	InvitedProviders    []InvitedProvider `json:"invited_providers"`
	WinningProviderName *string           `json:"winning_provider_name,omitempty"`
	SelectionRationale  *string           `json:"selection_rationale,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

func (d *RequisitionDraft) Editable() bool {
	return d.Status == DraftStatusEnCaptura
}

// PlaceholderFolio is shown until the backend assigns the real folio.
func PlaceholderFolio(id string) string {
	s := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(s) > 8 {
		s = s[:8]
	}
	return "BORRADOR-" + s
}

// GeneralData holds the "datos generales" section of the draft.
//
// BudgetCategoryCodes is derived from the line items and must only be written by
// budget.Sync.
type GeneralData struct {
	ElaborationDate     string             `json:"elaboration_date"`
	ContractingType     ContractingType    `json:"contracting_type"`
	RequestingArea      string             `json:"requesting_area"`
	Requester           string             `json:"requester"`
	BudgetCategoryCodes string             `json:"budget_category_codes"`
	ProgramProject      *string            `json:"program_project,omitempty"`
	AuthorizationMemo   *string            `json:"authorization_memo,omitempty"`
	DeliveryLocations   []DeliveryLocation `json:"delivery_locations"`
}

// DeliveryLocation is one place where the goods must be delivered.
type DeliveryLocation struct {
	Site         string  `json:"sede" yaml:"sede"`
	Address      string  `json:"direccion" yaml:"direccion"`
	Reference    string  `json:"referencia" yaml:"referencia"`
	OpeningHours string  `json:"horario" yaml:"horario"`
	Contact      string  `json:"contacto" yaml:"contacto"`
	MapLink      *string `json:"link_google_maps,omitempty" yaml:"link_google_maps,omitempty"`
}

// LineItem is a single requested good or service ("partida").
type LineItem struct {
	CUCOP              string           `json:"cucop"`
	Description        string           `json:"description"`
	Unit               string           `json:"unit"`
	Quantity           decimal.Decimal  `json:"quantity"`
	UnitPrice          decimal.Decimal  `json:"unit_price"`
	EstimatedPrice     *decimal.Decimal `json:"estimated_price,omitempty"`
	SpecificBudgetLine *string          `json:"specific_budget_line,omitempty"`
}

// EffectivePrice prefers the estimated price when present and nonzero.
func (l LineItem) EffectivePrice() decimal.Decimal {
	if l.EstimatedPrice != nil && !l.EstimatedPrice.IsZero() {
		return *l.EstimatedPrice
	}
	return l.UnitPrice
}

func (l LineItem) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.EffectivePrice())
}

// Attachment references a file uploaded with the justification step.
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	Size        int64  `json:"size,omitempty"`
}
