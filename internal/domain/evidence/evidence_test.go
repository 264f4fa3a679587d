package evidence

import (
	"testing"

	"requisiciones_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func sampleDraft() *entities.RequisitionDraft {
	return &entities.RequisitionDraft{
		CompranetSources: []entities.CompranetRecord{
			{ProviderName: sp("C1"), Description: "a"},
			{Description: "b"},
		},
		ArchiveSources: []entities.ArchiveRecord{{Provider: sp("A1")}},
		ChamberSources: []entities.ChamberRecord{{Institution: "UNAM"}},
		InternetSources: []entities.InternetRecord{
			{ProvidersFound: []string{"X", "Y"}},
		},
	}
}

func TestAggregate_TotalAndOrdered(t *testing.T) {
	got := FromDraft(sampleDraft())
	require.Len(t, got, 5)

	wantOrigins := []entities.EvidenceOrigin{
		entities.EvidenceOriginCompranet,
		entities.EvidenceOriginCompranet,
		entities.EvidenceOriginArchive,
		entities.EvidenceOriginChamber,
		entities.EvidenceOriginInternet,
	}
	wantNames := []string{"C1", entities.CompranetDefaultName, "A1", "UNAM", "X, Y"}
	for i := range got {
		assert.Equal(t, wantOrigins[i], got[i].Origin)
		assert.Equal(t, wantNames[i], got[i].SourceName)
	}
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil, nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, FromDraft(nil))
}

func TestRecordsMatchesAggregate(t *testing.T) {
	d := sampleDraft()
	recs := records(d.CompranetSources, d.ArchiveSources, d.ChamberSources, d.InternetSources)
	agg := FromDraft(d)
	require.Len(t, recs, len(agg))
	for i, r := range recs {
		assert.Equal(t, agg[i], r.Canonical())
		assert.Equal(t, agg[i].Origin, r.Origin())
	}
}

func TestCountByOrigin(t *testing.T) {
	counts := CountByOrigin(FromDraft(sampleDraft()))
	assert.Equal(t, 2, counts[entities.EvidenceOriginCompranet])
	assert.Equal(t, 1, counts[entities.EvidenceOriginInternet])
}
