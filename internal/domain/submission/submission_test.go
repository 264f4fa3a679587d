package submission

import (
	"testing"

	"requisiciones_api/internal/domain/entities"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func readyDraft() *entities.RequisitionDraft {
	est := decimal.RequireFromString("95.5")
	price := decimal.NewFromInt(120)
	return &entities.RequisitionDraft{
		Folio:       "BORRADOR-1A2B3C4D",
		AreaID:      7,
		RequesterID: 42,
		GeneralData: &entities.GeneralData{
			ElaborationDate:     "2024-05-10",
			ContractingType:     entities.ContractingTypeInvitacion,
			RequestingArea:      "Sistemas",
			Requester:           "Luis",
			BudgetCategoryCodes: "21101",
			DeliveryLocations: []entities.DeliveryLocation{
				{Site: "Almacén General", Address: "Av. Industria Militar 1055", MapLink: sp("https://maps/1")},
			},
		},
		LineItems: []entities.LineItem{
			{CUCOP: "21101001", Description: "Hojas", Unit: "Caja", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(100), EstimatedPrice: &est},
			{CUCOP: "21101002", Description: "Lápices", Unit: "Caja", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
		},
		Justification: "Reposición de consumibles",
		Attachments:   []entities.Attachment{{FileName: "cotizacion.pdf"}},
		CompranetSources: []entities.CompranetRecord{
			{ProviderName: sp("Papelera"), UnitPrice: &price, AwardDate: sp("2024-01-01T12:00:00Z")},
		},
		ChamberSources:      []entities.ChamberRecord{{Institution: "UNAM"}},
		WinningProviderName: sp("Papelera"),
		SelectionRationale:  sp("Mejor precio"),
	}
}

func TestValidate(t *testing.T) {
	t.Run("ready draft passes", func(t *testing.T) {
		require.NoError(t, Validate(readyDraft()))
	})

	t.Run("nil draft", func(t *testing.T) {
		require.ErrorIs(t, Validate(nil), ErrMissingGeneralData)
	})

	t.Run("missing general data wins over other failures", func(t *testing.T) {
		d := readyDraft()
		d.GeneralData = nil
		d.LineItems = nil
		d.Justification = ""
		err := Validate(d)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "general_data", verr.Field)
		assert.ErrorIs(t, err, ErrMissingGeneralData)
	})

	t.Run("no line items", func(t *testing.T) {
		d := readyDraft()
		d.LineItems = []entities.LineItem{}
		d.Justification = ""
		require.ErrorIs(t, Validate(d), ErrNoLineItems)
	})

	t.Run("blank justification", func(t *testing.T) {
		d := readyDraft()
		d.Justification = "   \n\t"
		require.ErrorIs(t, Validate(d), ErrEmptyJustification)
	})
}

func TestBuildCreationPayload(t *testing.T) {
	p, err := BuildCreationPayload(readyDraft(), Options{})
	require.NoError(t, err)

	assert.Equal(t, SubmittedStatusLabel, p.Status)
	assert.Equal(t, "invitacion", p.ContractingType)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, int64(7), p.AreaID)
	assert.Equal(t, "21101", p.BudgetCategories)

	require.Len(t, p.Lines, 2)
	assert.Equal(t, 1, p.Lines[0].Number)
	assert.Equal(t, 2, p.Lines[1].Number)
	assert.Equal(t, 100.0, p.Lines[0].UnitPrice)
	require.NotNil(t, p.Lines[0].EstimatedPrice)
	assert.Equal(t, 95.5, *p.Lines[0].EstimatedPrice)
	assert.Nil(t, p.Lines[1].EstimatedPrice)

	require.Len(t, p.Research.Sources, 2)
	assert.Equal(t, "COMPRANET", p.Research.Sources[0].Origin)
	assert.Equal(t, "2024-01-01", *p.Research.Sources[0].ReferenceDate)
	assert.Equal(t, "CAMARA", p.Research.Sources[1].Origin)
	assert.Equal(t, 0.0, p.Research.Sources[1].UnitPrice)
	assert.Equal(t, "Papelera", *p.Research.SelectedProvider)

	require.Len(t, p.Attachments, 1)
	assert.Equal(t, "http://simulado.com/cotizacion.pdf", p.Attachments[0].URL)
	assert.Equal(t, AttachmentKindJustification, p.Attachments[0].Kind)

	var locs []map[string]any
	require.NoError(t, sonic.UnmarshalString(p.DeliveryLocations, &locs))
	require.Len(t, locs, 1)
	assert.Equal(t, "Almacén General", locs[0]["sede"])
	assert.Equal(t, "https://maps/1", locs[0]["linkGoogleMaps"])
}

func TestBuildCreationPayload_Options(t *testing.T) {
	d := readyDraft()
	d.GeneralData.DeliveryLocations = nil
	p, err := BuildCreationPayload(d, Options{PlaceholderBaseURL: "https://files.local/anexos"})
	require.NoError(t, err)
	assert.Equal(t, "https://files.local/anexos/cotizacion.pdf", p.Attachments[0].URL)
	assert.Equal(t, "[]", p.DeliveryLocations)
}
