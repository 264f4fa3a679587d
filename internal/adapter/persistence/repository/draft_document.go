package repository

import (
	"fmt"
	"time"

	"requisiciones_api/internal/domain/entities"

	"github.com/bytedance/sonic"
)

// draftDocument is the editable body of a draft. Both stores keep it as one JSON
// document next to the identity columns, so new fields need no schema change.
type draftDocument struct {
	AreaName            string                     `json:"area_name"`
	RequesterName       string                     `json:"requester_name"`
	GeneralData         *entities.GeneralData      `json:"general_data,omitempty"`
	LineItems           []entities.LineItem        `json:"line_items"`
	Justification       string                     `json:"justification"`
	Attachments         []entities.Attachment      `json:"attachments"`
	CompranetSources    []entities.CompranetRecord `json:"compranet_sources"`
	ArchiveSources      []entities.ArchiveRecord   `json:"archive_sources"`
	ChamberSources      []entities.ChamberRecord   `json:"chamber_sources"`
	InternetSources     []entities.InternetRecord  `json:"internet_sources"`
	InvitedProviders    []entities.InvitedProvider `json:"invited_providers"`
	WinningProviderName *string                    `json:"winning_provider_name,omitempty"`
	SelectionRationale  *string                    `json:"selection_rationale,omitempty"`
}

func encodeDocument(d entities.RequisitionDraft) (string, error) {
	doc := draftDocument{
		AreaName:            d.AreaName,
		RequesterName:       d.RequesterName,
		GeneralData:         d.GeneralData,
		LineItems:           d.LineItems,
		Justification:       d.Justification,
		Attachments:         d.Attachments,
		CompranetSources:    d.CompranetSources,
		ArchiveSources:      d.ArchiveSources,
		ChamberSources:      d.ChamberSources,
		InternetSources:     d.InternetSources,
		InvitedProviders:    d.InvitedProviders,
		WinningProviderName: d.WinningProviderName,
		SelectionRationale:  d.SelectionRationale,
	}
	s, err := sonic.MarshalString(doc)
	if err != nil {
		return "", fmt.Errorf("encode draft document: %w", err)
	}
	return s, nil
}

// decodeDocument fills the body fields of d. Nil slices come back empty.
func decodeDocument(raw string, d *entities.RequisitionDraft) error {
	var doc draftDocument
	if raw != "" {
		if err := sonic.UnmarshalString(raw, &doc); err != nil {
			return fmt.Errorf("decode draft document: %w", err)
		}
	}
	d.AreaName = doc.AreaName
	d.RequesterName = doc.RequesterName
	d.GeneralData = doc.GeneralData
	d.LineItems = orEmpty(doc.LineItems)
	d.Justification = doc.Justification
	d.Attachments = orEmpty(doc.Attachments)
	d.CompranetSources = orEmpty(doc.CompranetSources)
	d.ArchiveSources = orEmpty(doc.ArchiveSources)
	d.ChamberSources = orEmpty(doc.ChamberSources)
	d.InternetSources = orEmpty(doc.InternetSources)
	d.InvitedProviders = orEmpty(doc.InvitedProviders)
	d.WinningProviderName = doc.WinningProviderName
	d.SelectionRationale = doc.SelectionRationale
	return nil
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
