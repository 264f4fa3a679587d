package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"requisiciones_api/internal/domain/budget"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/finance"
	"requisiciones_api/internal/domain/preview"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/pkg/markdown"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound     = errors.New("draft not found")
	ErrInvalidDraftID    = errors.New("invalid draft id")
	ErrInvalidDraftInput = errors.New("invalid draft input")
	ErrDraftNotEditable  = errors.New("draft is no longer editable")
)

const dateLayout = "2006-01-02"

// CreateDraftCommand carries the session values a draft is opened with.
type CreateDraftCommand struct {
	AreaID        int64
	RequesterID   int64
	AreaName      string
	RequesterName string
}

// GeneralDataCommand is a partial update; nil fields are left as they are.
// Area, requester and budget codes are not part of it: they are read-only.
type GeneralDataCommand struct {
	ElaborationDate   *string
	ContractingType   *entities.ContractingType
	ProgramProject    *string
	AuthorizationMemo *string
	DeliveryLocations *[]entities.DeliveryLocation
}

// ResearchCommand replaces the market research step as a whole.
type ResearchCommand struct {
	CompranetSources    []entities.CompranetRecord
	ArchiveSources      []entities.ArchiveRecord
	ChamberSources      []entities.ChamberRecord
	InternetSources     []entities.InternetRecord
	InvitedProviders    []entities.InvitedProvider
	WinningProviderName *string
	SelectionRationale  *string
}

// DraftPreview is the "vista previa" of a draft.
type DraftPreview struct {
	Summary preview.Summary
	HTML    []byte
}

// IDraftUseCase covers the capture steps of a requisition:
//   - step 1 general data, step 2 line items, step 3 market research, step 4 justification
//   - whole-draft save/discard, totals and preview
type IDraftUseCase interface {
	CreateDraft(ctx context.Context, cmd CreateDraftCommand) (entities.RequisitionDraft, error)
	GetDraft(ctx context.Context, id string) (entities.RequisitionDraft, error)
	UpdateGeneralData(ctx context.Context, id string, cmd GeneralDataCommand) (entities.RequisitionDraft, error)
	ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.RequisitionDraft, error)
	UpdateResearch(ctx context.Context, id string, cmd ResearchCommand) (entities.RequisitionDraft, error)
	UpdateJustification(ctx context.Context, id string, text string, attachments []entities.Attachment) (entities.RequisitionDraft, error)
	SaveDraft(ctx context.Context, id string, snapshot entities.RequisitionDraft) (entities.RequisitionDraft, error)
	DiscardDraft(ctx context.Context, id string) error
	Totals(ctx context.Context, id string) (finance.Totals, error)
	Preview(ctx context.Context, id string) (DraftPreview, error)
}

type DraftUseCase struct {
	repo interfaces.IDraftRepository
	now  func() time.Time
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(repo interfaces.IDraftRepository) *DraftUseCase {
	return &DraftUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *DraftUseCase) CreateDraft(ctx context.Context, cmd CreateDraftCommand) (entities.RequisitionDraft, error) {
	if cmd.AreaID <= 0 || cmd.RequesterID <= 0 {
		return entities.RequisitionDraft{}, fmt.Errorf("%w: area_id and requester_id are required", ErrInvalidDraftInput)
	}

	now := u.now()
	id := uuid.NewString()
	d := entities.RequisitionDraft{
		ID:            id,
		Folio:         entities.PlaceholderFolio(id),
		Status:        entities.DraftStatusEnCaptura,
		AreaID:        cmd.AreaID,
		RequesterID:   cmd.RequesterID,
		AreaName:      strings.TrimSpace(cmd.AreaName),
		RequesterName: strings.TrimSpace(cmd.RequesterName),
		LineItems:     []entities.LineItem{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		logger.Errorf(ctx, "[draft][usecase] create failed area_id=%d err=%v", cmd.AreaID, err)
		return entities.RequisitionDraft{}, err
	}
	logger.Infof(ctx, "[draft][usecase] created draft_id=%s folio=%s", created.ID, created.Folio)
	return created, nil
}

func (u *DraftUseCase) GetDraft(ctx context.Context, id string) (entities.RequisitionDraft, error) {
	return loadDraft(ctx, u.repo, id)
}

func (u *DraftUseCase) UpdateGeneralData(ctx context.Context, id string, cmd GeneralDataCommand) (entities.RequisitionDraft, error) {
	if cmd.ElaborationDate != nil {
		if _, err := time.Parse(dateLayout, strings.TrimSpace(*cmd.ElaborationDate)); err != nil {
			return entities.RequisitionDraft{}, fmt.Errorf("%w: elaboration_date must be YYYY-MM-DD", ErrInvalidDraftInput)
		}
	}
	if cmd.ContractingType != nil && !cmd.ContractingType.Valid() {
		return entities.RequisitionDraft{}, fmt.Errorf("%w: unknown contracting type %q", ErrInvalidDraftInput, *cmd.ContractingType)
	}

	return u.mutate(ctx, id, "general-data", func(d *entities.RequisitionDraft) error {
		if d.GeneralData == nil {
			d.GeneralData = &entities.GeneralData{
				ElaborationDate:   u.now().Format(dateLayout),
				ContractingType:   entities.ContractingTypeAdjudicacion,
				DeliveryLocations: []entities.DeliveryLocation{},
			}
		}
		g := d.GeneralData
		g.RequestingArea = d.AreaName
		g.Requester = d.RequesterName

		if cmd.ElaborationDate != nil {
			g.ElaborationDate = strings.TrimSpace(*cmd.ElaborationDate)
		}
		if cmd.ContractingType != nil {
			g.ContractingType = *cmd.ContractingType
		}
		if cmd.ProgramProject != nil {
			g.ProgramProject = trimmedOrNil(cmd.ProgramProject)
		}
		if cmd.AuthorizationMemo != nil {
			g.AuthorizationMemo = trimmedOrNil(cmd.AuthorizationMemo)
		}
		if cmd.DeliveryLocations != nil {
			g.DeliveryLocations = append([]entities.DeliveryLocation{}, (*cmd.DeliveryLocations)...)
		}
		budget.Sync(g, d.LineItems)
		return nil
	})
}

func (u *DraftUseCase) ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.RequisitionDraft, error) {
	if err := checkLineItems(items); err != nil {
		return entities.RequisitionDraft{}, err
	}
	return u.mutate(ctx, id, "line-items", func(d *entities.RequisitionDraft) error {
		d.LineItems = append([]entities.LineItem{}, items...)
		if budget.Sync(d.GeneralData, d.LineItems) {
			logger.Debugf(ctx, "[draft][usecase] budget codes updated draft_id=%s codes=%s", d.ID, d.GeneralData.BudgetCategoryCodes)
		}
		return nil
	})
}

func (u *DraftUseCase) UpdateResearch(ctx context.Context, id string, cmd ResearchCommand) (entities.RequisitionDraft, error) {
	for _, p := range cmd.InvitedProviders {
		if strings.TrimSpace(p.Name) == "" || !p.Origin.Valid() {
			return entities.RequisitionDraft{}, fmt.Errorf("%w: invited provider requires name and a known origin", ErrInvalidDraftInput)
		}
	}

	return u.mutate(ctx, id, "research", func(d *entities.RequisitionDraft) error {
		providers, err := mergeProviders(d.InvitedProviders, cmd.InvitedProviders)
		if err != nil {
			return err
		}
		d.CompranetSources = nonNil(cmd.CompranetSources)
		d.ArchiveSources = nonNil(cmd.ArchiveSources)
		d.ChamberSources = nonNil(cmd.ChamberSources)
		d.InternetSources = nonNil(cmd.InternetSources)
		d.InvitedProviders = providers
		d.WinningProviderName = trimmedOrNil(cmd.WinningProviderName)
		d.SelectionRationale = trimmedOrNil(cmd.SelectionRationale)
		return nil
	})
}

func (u *DraftUseCase) UpdateJustification(ctx context.Context, id string, text string, attachments []entities.Attachment) (entities.RequisitionDraft, error) {
	for _, a := range attachments {
		if strings.TrimSpace(a.FileName) == "" {
			return entities.RequisitionDraft{}, fmt.Errorf("%w: attachment file name is required", ErrInvalidDraftInput)
		}
	}
	return u.mutate(ctx, id, "justification", func(d *entities.RequisitionDraft) error {
		d.Justification = text
		d.Attachments = nonNil(attachments)
		return nil
	})
}

// SaveDraft replaces the editable content with snapshot. Identity, status,
// session values and derived budget codes always come from the stored draft.
func (u *DraftUseCase) SaveDraft(ctx context.Context, id string, snapshot entities.RequisitionDraft) (entities.RequisitionDraft, error) {
	if err := checkLineItems(snapshot.LineItems); err != nil {
		return entities.RequisitionDraft{}, err
	}
	if g := snapshot.GeneralData; g != nil {
		if g.ContractingType != "" && !g.ContractingType.Valid() {
			return entities.RequisitionDraft{}, fmt.Errorf("%w: unknown contracting type %q", ErrInvalidDraftInput, g.ContractingType)
		}
	}

	return u.mutate(ctx, id, "save", func(d *entities.RequisitionDraft) error {
		providers, err := mergeProviders(d.InvitedProviders, snapshot.InvitedProviders)
		if err != nil {
			return err
		}

		var general *entities.GeneralData
		if snapshot.GeneralData != nil {
			g := *snapshot.GeneralData
			g.RequestingArea = d.AreaName
			g.Requester = d.RequesterName
			if g.DeliveryLocations == nil {
				g.DeliveryLocations = []entities.DeliveryLocation{}
			}
			general = &g
		}

		d.GeneralData = general
		d.LineItems = nonNil(snapshot.LineItems)
		d.Justification = snapshot.Justification
		d.Attachments = nonNil(snapshot.Attachments)
		d.CompranetSources = nonNil(snapshot.CompranetSources)
		d.ArchiveSources = nonNil(snapshot.ArchiveSources)
		d.ChamberSources = nonNil(snapshot.ChamberSources)
		d.InternetSources = nonNil(snapshot.InternetSources)
		d.InvitedProviders = providers
		d.WinningProviderName = trimmedOrNil(snapshot.WinningProviderName)
		d.SelectionRationale = trimmedOrNil(snapshot.SelectionRationale)
		budget.Sync(d.GeneralData, d.LineItems)
		return nil
	})
}

func (u *DraftUseCase) DiscardDraft(ctx context.Context, id string) error {
	d, err := loadDraft(ctx, u.repo, id)
	if err != nil {
		return err
	}
	if !d.Editable() {
		return ErrDraftNotEditable
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		logger.Errorf(ctx, "[draft][usecase] discard failed draft_id=%s err=%v", d.ID, err)
		return err
	}
	logger.Infof(ctx, "[draft][usecase] discarded draft_id=%s", d.ID)
	return nil
}

func (u *DraftUseCase) Totals(ctx context.Context, id string) (finance.Totals, error) {
	d, err := loadDraft(ctx, u.repo, id)
	if err != nil {
		return finance.Totals{}, err
	}
	return finance.Compute(d.LineItems), nil
}

func (u *DraftUseCase) Preview(ctx context.Context, id string) (DraftPreview, error) {
	d, err := loadDraft(ctx, u.repo, id)
	if err != nil {
		return DraftPreview{}, err
	}
	summary := preview.Build(&d)
	page, err := markdown.Page("Requisición "+d.Folio, preview.Markdown(summary))
	if err != nil {
		return DraftPreview{}, err
	}
	return DraftPreview{Summary: summary, HTML: page}, nil
}

// mutate loads an editable draft, applies fn and persists the result.
func (u *DraftUseCase) mutate(ctx context.Context, id, step string, fn func(d *entities.RequisitionDraft) error) (entities.RequisitionDraft, error) {
	d, err := loadDraft(ctx, u.repo, id)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	if !d.Editable() {
		logger.Warnf(ctx, "[draft][usecase] rejected edit on submitted draft draft_id=%s step=%s", d.ID, step)
		return entities.RequisitionDraft{}, ErrDraftNotEditable
	}
	if err := fn(&d); err != nil {
		return entities.RequisitionDraft{}, err
	}
	d.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		logger.Errorf(ctx, "[draft][usecase] update failed draft_id=%s step=%s err=%v", d.ID, step, err)
		return entities.RequisitionDraft{}, err
	}
	if updated.ID == "" {
		return entities.RequisitionDraft{}, ErrDraftNotFound
	}
	logger.Infof(ctx, "[draft][usecase] updated draft_id=%s step=%s", updated.ID, step)
	return updated, nil
}

func loadDraft(ctx context.Context, repo interfaces.IDraftRepository, id string) (entities.RequisitionDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequisitionDraft{}, ErrInvalidDraftID
	}
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	if d.ID == "" {
		return entities.RequisitionDraft{}, ErrDraftNotFound
	}
	return d, nil
}

func checkLineItems(items []entities.LineItem) error {
	for i, it := range items {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() ||
			(it.EstimatedPrice != nil && it.EstimatedPrice.IsNegative()) {
			return fmt.Errorf("%w: line item %d has negative amounts", ErrInvalidDraftInput, i+1)
		}
	}
	return nil
}

// mergeProviders assigns ids to new providers and rejects status regressions of
// providers that already exist.
func mergeProviders(current, incoming []entities.InvitedProvider) ([]entities.InvitedProvider, error) {
	byID := make(map[string]entities.InvitedProvider, len(current))
	for _, p := range current {
		byID[p.ID] = p
	}

	out := make([]entities.InvitedProvider, 0, len(incoming))
	for _, p := range incoming {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			p.ID = uuid.NewString()
		} else if prev, ok := byID[p.ID]; ok {
			if err := entities.CheckTransition(prev.Status(), p.Status()); err != nil {
				return nil, fmt.Errorf("provider %s: %w", p.ID, err)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
