package usecase

import (
	"context"
	"errors"
	"fmt"

	"requisiciones_api/internal/domain/documents"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"
)

// ErrExternalCall wraps any failure of the rendering service or the backend.
var ErrExternalCall = errors.New("external call failed")

type DocumentKindInfo struct {
	Kind  entities.DocumentKind `json:"kind"`
	Code  string                `json:"code"`
	Title string                `json:"title"`
}

// IDocumentUseCase exports the official forms of a draft.
type IDocumentUseCase interface {
	ListKinds() []DocumentKindInfo
	Export(ctx context.Context, draftID string, kind entities.DocumentKind) (entities.GeneratedDocument, error)
}

type DocumentUseCase struct {
	repo     interfaces.IDraftRepository
	renderer interfaces.IDocumentRenderer
	guard    *InFlightGuard
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDraftRepository, renderer interfaces.IDocumentRenderer, guard *InFlightGuard) *DocumentUseCase {
	if guard == nil {
		guard = NewInFlightGuard()
	}
	return &DocumentUseCase{repo: repo, renderer: renderer, guard: guard}
}

func (u *DocumentUseCase) ListKinds() []DocumentKindInfo {
	out := make([]DocumentKindInfo, 0, len(entities.DocumentKinds))
	for _, k := range entities.DocumentKinds {
		out = append(out, DocumentKindInfo{Kind: k, Code: k.Code(), Title: k.Title()})
	}
	return out
}

// Export never modifies the draft. A rendering failure is reported as ErrExternalCall.
func (u *DocumentUseCase) Export(ctx context.Context, draftID string, kind entities.DocumentKind) (entities.GeneratedDocument, error) {
	if !kind.Valid() {
		return entities.GeneratedDocument{}, fmt.Errorf("%w: %q", documents.ErrUnknownDocumentKind, kind)
	}

	d, err := loadDraft(ctx, u.repo, draftID)
	if err != nil {
		return entities.GeneratedDocument{}, err
	}

	release, err := u.guard.Acquire(d.ID, "export")
	if err != nil {
		logger.Warnf(ctx, "[document][usecase] export rejected, operation in flight draft_id=%s kind=%s", d.ID, kind)
		return entities.GeneratedDocument{}, err
	}
	defer release()

	req, err := documents.Build(kind, &d)
	if err != nil {
		logger.Warnf(ctx, "[document][usecase] payload build failed draft_id=%s kind=%s err=%v", d.ID, kind, err)
		return entities.GeneratedDocument{}, err
	}

	logger.Infof(ctx, "[document][usecase] rendering draft_id=%s kind=%s file=%s", d.ID, kind, req.FileName)
	rendered, err := u.renderer.Render(ctx, req.Kind, req.Payload, req.FileName)
	if err != nil {
		logger.Errorf(ctx, "[document][usecase] render failed draft_id=%s kind=%s err=%v", d.ID, kind, err)
		return entities.GeneratedDocument{}, fmt.Errorf("%w: render %s: %v", ErrExternalCall, kind, err)
	}

	logger.Infof(ctx, "[document][usecase] rendered draft_id=%s kind=%s bytes=%d", d.ID, kind, len(rendered.Content))
	return entities.GeneratedDocument{
		Kind:        kind,
		Code:        kind.Code(),
		Name:        req.FileName,
		ContentType: rendered.ContentType,
		Content:     rendered.Content,
	}, nil
}
