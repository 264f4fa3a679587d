// Package evidence merges the four market research origins into one list.
package evidence

import "requisiciones_api/internal/domain/entities"

// Aggregate normalizes every record into an EvidenceSource. The result keeps
// input order within each origin, with origins in the order Compranet, archive,
// chamber, internet. Nothing is dropped.
func Aggregate(
	compranet []entities.CompranetRecord,
	archive []entities.ArchiveRecord,
	chamber []entities.ChamberRecord,
	internet []entities.InternetRecord,
) []entities.EvidenceSource {
	recs := records(compranet, archive, chamber, internet)
	out := make([]entities.EvidenceSource, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Canonical())
	}
	return out
}

func FromDraft(d *entities.RequisitionDraft) []entities.EvidenceSource {
	if d == nil {
		return []entities.EvidenceSource{}
	}
	return Aggregate(d.CompranetSources, d.ArchiveSources, d.ChamberSources, d.InternetSources)
}

// records flattens the four origins into the sum type, in aggregation order.
func records(
	compranet []entities.CompranetRecord,
	archive []entities.ArchiveRecord,
	chamber []entities.ChamberRecord,
	internet []entities.InternetRecord,
) []entities.EvidenceRecord {
	out := make([]entities.EvidenceRecord, 0, len(compranet)+len(archive)+len(chamber)+len(internet))
	for _, r := range compranet {
		out = append(out, r)
	}
	for _, r := range archive {
		out = append(out, r)
	}
	for _, r := range chamber {
		out = append(out, r)
	}
	for _, r := range internet {
		out = append(out, r)
	}
	return out
}

// CountByOrigin is used for log lines and previews.
func CountByOrigin(sources []entities.EvidenceSource) map[entities.EvidenceOrigin]int {
	counts := make(map[entities.EvidenceOrigin]int, 4)
	for _, s := range sources {
		counts[s.Origin]++
	}
	return counts
}
