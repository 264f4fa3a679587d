package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EvidenceOrigin tags where a market research record was gathered.
type EvidenceOrigin string

const (
	EvidenceOriginCompranet EvidenceOrigin = "COMPRANET"
	EvidenceOriginArchive   EvidenceOrigin = "ARCHIVO"
	EvidenceOriginChamber   EvidenceOrigin = "CAMARA"
	EvidenceOriginInternet  EvidenceOrigin = "INTERNET"
)

const (
	CompranetDefaultName = "Proveedor Compranet"
	ArchiveDefaultName   = "Archivo Interno"
	InternetDefaultName  = "Búsqueda Web"
)

// EvidenceSource is the canonical shape every origin is normalized into. Field
// names on the wire follow the backend creation contract.
type EvidenceSource struct {
	Origin         EvidenceOrigin  `json:"tipo_fuente"`
	SourceName     string          `json:"nombre_fuente"`
	URL            *string         `json:"url_fuente"`
	UnitPrice      decimal.Decimal `json:"precio_unitario"`
	ContractNumber *string         `json:"numero_contrato"`
	ReferenceDate  *string         `json:"fecha_referencia"`
	Description    string          `json:"descripcion_bien"`
}

// EvidenceRecord is implemented only by the four origin-specific record types.
type EvidenceRecord interface {
	Origin() EvidenceOrigin
	Canonical() EvidenceSource
	isEvidenceRecord()
}

var (
	_ EvidenceRecord = CompranetRecord{}
	_ EvidenceRecord = ArchiveRecord{}
	_ EvidenceRecord = ChamberRecord{}
	_ EvidenceRecord = InternetRecord{}
)

// CompranetRecord is a public procurement announcement found in Compranet.
type CompranetRecord struct {
	ProviderName    *string          `json:"nombre_proveedor,omitempty"`
	AnnouncementURL *string          `json:"url_anuncio,omitempty"`
	UnitPrice       *decimal.Decimal `json:"precio_unitario,omitempty"`
	ContractNumber  *string          `json:"numero_contrato,omitempty"`
	AwardDate       *string          `json:"fecha_fallo_firma,omitempty"`
	Description     string           `json:"descripcion"`
}

func (CompranetRecord) Origin() EvidenceOrigin { return EvidenceOriginCompranet }
func (CompranetRecord) isEvidenceRecord()      {}

func (r CompranetRecord) Canonical() EvidenceSource {
	return EvidenceSource{
		Origin:         EvidenceOriginCompranet,
		SourceName:     stringOr(r.ProviderName, CompranetDefaultName),
		URL:            r.AnnouncementURL,
		UnitPrice:      decimalOrZero(r.UnitPrice),
		ContractNumber: r.ContractNumber,
		ReferenceDate:  DateOnly(r.AwardDate),
		Description:    r.Description,
	}
}

// ArchiveRecord is a prior contract found in the institution's own archive.
type ArchiveRecord struct {
	Provider            *string          `json:"proveedor,omitempty"`
	UnitPrice           *decimal.Decimal `json:"precio_unitario,omitempty"`
	PriorContractNumber *string          `json:"numero_contrato_anterior,omitempty"`
	ContractDate        *string          `json:"fecha_contrato,omitempty"`
	GoodDescription     string           `json:"descripcion_bien"`
}

func (ArchiveRecord) Origin() EvidenceOrigin { return EvidenceOriginArchive }
func (ArchiveRecord) isEvidenceRecord()      {}

func (r ArchiveRecord) Canonical() EvidenceSource {
	return EvidenceSource{
		Origin:         EvidenceOriginArchive,
		SourceName:     stringOr(r.Provider, ArchiveDefaultName),
		UnitPrice:      decimalOrZero(r.UnitPrice),
		ContractNumber: r.PriorContractNumber,
		ReferenceDate:  DateOnly(r.ContractDate),
		Description:    r.GoodDescription,
	}
}

// ChamberRecord is an official memo sent to a chamber of commerce or university.
// This origin has no price concept.
type ChamberRecord struct {
	Institution string  `json:"institucion"`
	MemoFolio   *string `json:"folio_oficio,omitempty"`
	MemoDate    *string `json:"fecha_oficio,omitempty"`
	ResponseURL *string `json:"url_respuesta_oficio,omitempty"`
}

func (ChamberRecord) Origin() EvidenceOrigin { return EvidenceOriginChamber }
func (ChamberRecord) isEvidenceRecord()      {}

func (r ChamberRecord) Canonical() EvidenceSource {
	return EvidenceSource{
		Origin:         EvidenceOriginChamber,
		SourceName:     r.Institution,
		URL:            nonEmpty(r.ResponseURL),
		UnitPrice:      decimal.Zero,
		ContractNumber: r.MemoFolio,
		ReferenceDate:  DateOnly(r.MemoDate),
		Description:    fmt.Sprintf("Solicitud a %s", r.Institution),
	}
}

// InternetRecord is a web search performed as price evidence.
type InternetRecord struct {
	SearchTerm          *string  `json:"termino_busqueda,omitempty"`
	PageURL             *string  `json:"url_pagina,omitempty"`
	ProvidersFound      []string `json:"proveedores_encontrados"`
	EvidenceDescription string   `json:"descripcion_evidencia"`
}

func (InternetRecord) Origin() EvidenceOrigin { return EvidenceOriginInternet }
func (InternetRecord) isEvidenceRecord()      {}

func (r InternetRecord) Canonical() EvidenceSource {
	name := strings.Join(r.ProvidersFound, ", ")
	if name == "" {
		name = stringOr(r.SearchTerm, InternetDefaultName)
	}
	return EvidenceSource{
		Origin:      EvidenceOriginInternet,
		SourceName:  name,
		URL:         r.PageURL,
		UnitPrice:   decimal.Zero,
		Description: r.EvidenceDescription,
	}
}

// DateOnly drops the time component of an ISO timestamp. Empty input yields nil.
func DateOnly(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return nil
	}
	return &v
}

func stringOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
