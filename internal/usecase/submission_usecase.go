package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"
)

var ErrDraftAlreadySubmitted = errors.New("draft already submitted")

type SubmissionResult struct {
	Draft       entities.RequisitionDraft
	Requisition interfaces.CreatedRequisition
}

// ISubmissionUseCase validates a draft and sends it to the backend.
//
// The draft only changes after the backend accepted it; validation failures
// never reach the network.
type ISubmissionUseCase interface {
	PreviewPayload(ctx context.Context, draftID string) (submission.CreationPayload, error)
	Submit(ctx context.Context, draftID string) (SubmissionResult, error)
}

type SubmissionUseCase struct {
	repo    interfaces.IDraftRepository
	gateway interfaces.IRequisitionGateway
	guard   *InFlightGuard
	opts    submission.Options
	now     func() time.Time

	// pending holds requisitions the backend created whose local update
	// failed, keyed by draft id, so a retry does not create them twice.
	mu      sync.Mutex
	pending map[string]interfaces.CreatedRequisition
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.IDraftRepository, gateway interfaces.IRequisitionGateway, guard *InFlightGuard, opts submission.Options) *SubmissionUseCase {
	if guard == nil {
		guard = NewInFlightGuard()
	}
	return &SubmissionUseCase{
		repo:    repo,
		gateway: gateway,
		guard:   guard,
		opts:    opts,
		now:     func() time.Time { return time.Now().UTC() },
		pending: make(map[string]interfaces.CreatedRequisition),
	}
}

func (u *SubmissionUseCase) PreviewPayload(ctx context.Context, draftID string) (submission.CreationPayload, error) {
	d, err := loadDraft(ctx, u.repo, draftID)
	if err != nil {
		return submission.CreationPayload{}, err
	}
	if err := submission.Validate(&d); err != nil {
		return submission.CreationPayload{}, err
	}
	return submission.BuildCreationPayload(&d, u.opts)
}

func (u *SubmissionUseCase) Submit(ctx context.Context, draftID string) (SubmissionResult, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return SubmissionResult{}, ErrInvalidDraftID
	}
	if u.gateway == nil {
		logger.Errorf(ctx, "[submission][usecase] gateway not configured draft_id=%s", draftID)
		return SubmissionResult{}, errors.New("requisition gateway not configured")
	}

	release, err := u.guard.Acquire(draftID, "submit")
	if err != nil {
		logger.Warnf(ctx, "[submission][usecase] rejected, operation in flight draft_id=%s", draftID)
		return SubmissionResult{}, err
	}
	defer release()

	d, err := loadDraft(ctx, u.repo, draftID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if !d.Editable() {
		u.forgetPending(d.ID)
		return SubmissionResult{}, ErrDraftAlreadySubmitted
	}

	if created, ok := u.pendingFor(d.ID); ok {
		logger.Warnf(ctx, "[submission][usecase] retrying local update for already created requisition draft_id=%s requisition_id=%s folio=%s", d.ID, created.ID, created.Folio)
		return u.markSubmitted(ctx, d, created)
	}

	if err := submission.Validate(&d); err != nil {
		logger.Infof(ctx, "[submission][usecase] validation failed draft_id=%s err=%v", d.ID, err)
		return SubmissionResult{}, err
	}

	payload, err := submission.BuildCreationPayload(&d, u.opts)
	if err != nil {
		return SubmissionResult{}, err
	}

	logger.Infof(ctx, "[submission][usecase] sending draft_id=%s lines=%d sources=%d", d.ID, len(payload.Lines), len(payload.Research.Sources))
	created, err := u.gateway.CreateRequisition(ctx, payload)
	if err != nil {
		logger.Errorf(ctx, "[submission][usecase] backend call failed draft_id=%s err=%v", d.ID, err)
		return SubmissionResult{}, fmt.Errorf("%w: create requisition: %v", ErrExternalCall, err)
	}

	return u.markSubmitted(ctx, d, created)
}

// markSubmitted stores the submitted state of d. On failure the created
// requisition is kept so the next Submit only repeats the local update.
func (u *SubmissionUseCase) markSubmitted(ctx context.Context, d entities.RequisitionDraft, created interfaces.CreatedRequisition) (SubmissionResult, error) {
	now := u.now()
	d.Status = entities.DraftStatusEnAutorizacion
	if f := strings.TrimSpace(created.Folio); f != "" {
		d.Folio = f
	}
	d.SubmittedAt = &now
	d.UpdatedAt = now

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		u.mu.Lock()
		u.pending[d.ID] = created
		u.mu.Unlock()
		logger.Errorf(ctx, "[submission][usecase] draft update after submit failed draft_id=%s requisition_id=%s folio=%s err=%v", d.ID, created.ID, created.Folio, err)
		return SubmissionResult{}, err
	}
	u.forgetPending(d.ID)
	if updated.ID == "" {
		return SubmissionResult{}, ErrDraftNotFound
	}

	logger.Infof(ctx, "[submission][usecase] submitted draft_id=%s folio=%s requisition_id=%s", updated.ID, updated.Folio, created.ID)
	return SubmissionResult{Draft: updated, Requisition: created}, nil
}

func (u *SubmissionUseCase) pendingFor(draftID string) (interfaces.CreatedRequisition, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	created, ok := u.pending[draftID]
	return created, ok
}

func (u *SubmissionUseCase) forgetPending(draftID string) {
	u.mu.Lock()
	delete(u.pending, draftID)
	u.mu.Unlock()
}
