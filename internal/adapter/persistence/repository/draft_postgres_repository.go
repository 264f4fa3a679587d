package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const tableDrafts = "requisition_drafts"

var ErrDBNotFound = errors.New("row not found")

var draftColumns = []string{"id", "folio", "status", "area_id", "requester_id", "document", "created_at", "updated_at", "submitted_at"}

var mapping = map[error]error{pgx.ErrNoRows: ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder using Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// pgxExecutor is the subset of *pgxpool.Pool the repository needs.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DraftPostgresRepository persists requisition drafts in the requisition_drafts
// table. The editable body lives in the jsonb "document" column.
type DraftPostgresRepository struct {
	pool pgxExecutor
}

var _ interfaces.IDraftRepository = (*DraftPostgresRepository)(nil)

func NewDraftPostgresRepository(pool pgxExecutor) *DraftPostgresRepository {
	return &DraftPostgresRepository{pool: pool}
}

func (r *DraftPostgresRepository) Create(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error) {
	query, err := insertDraftQuery(d)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return entities.RequisitionDraft{}, fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		logger.Errorf(ctx, "[draft][postgres] insert failed draft_id=%s err=%v", d.ID, err)
		return entities.RequisitionDraft{}, fmt.Errorf("insert draft: %w", err)
	}
	return d, nil
}

func (r *DraftPostgresRepository) GetByID(ctx context.Context, id string) (entities.RequisitionDraft, error) {
	sql, args, err := selectDraftQuery(id).ToSql()
	if err != nil {
		return entities.RequisitionDraft{}, fmt.Errorf("build select: %w", err)
	}
	d, err := scanDraft(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, ErrDBNotFound) {
		return entities.RequisitionDraft{}, nil
	}
	return d, err
}

func (r *DraftPostgresRepository) Update(ctx context.Context, d entities.RequisitionDraft) (entities.RequisitionDraft, error) {
	query, err := updateDraftQuery(d)
	if err != nil {
		return entities.RequisitionDraft{}, err
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return entities.RequisitionDraft{}, fmt.Errorf("build update: %w", err)
	}
	updated, err := scanDraft(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, ErrDBNotFound) {
		return entities.RequisitionDraft{}, nil
	}
	return updated, err
}

func (r *DraftPostgresRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := builder().Delete(tableDrafts).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func insertDraftQuery(d entities.RequisitionDraft) (squirrel.InsertBuilder, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}
	return builder().Insert(tableDrafts).
		Columns(draftColumns...).
		Values(d.ID, d.Folio, string(d.Status), d.AreaID, d.RequesterID, doc, d.CreatedAt.UTC(), d.UpdatedAt.UTC(), utcOrNil(d.SubmittedAt)), nil
}

func selectDraftQuery(id string) squirrel.SelectBuilder {
	return builder().Select(draftColumns...).
		From(tableDrafts).
		Where(squirrel.Eq{"id": id})
}

func updateDraftQuery(d entities.RequisitionDraft) (squirrel.UpdateBuilder, error) {
	doc, err := encodeDocument(d)
	if err != nil {
		return squirrel.UpdateBuilder{}, err
	}
	return builder().Update(tableDrafts).
		Set("folio", d.Folio).
		Set("status", string(d.Status)).
		Set("document", doc).
		Set("updated_at", d.UpdatedAt.UTC()).
		Set("submitted_at", utcOrNil(d.SubmittedAt)).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING " + strings.Join(draftColumns, ", ")), nil
}

func scanDraft(row pgx.Row) (entities.RequisitionDraft, error) {
	var (
		d           entities.RequisitionDraft
		status      string
		doc         string
		submittedAt *time.Time
	)
	err := row.Scan(&d.ID, &d.Folio, &status, &d.AreaID, &d.RequesterID, &doc, &d.CreatedAt, &d.UpdatedAt, &submittedAt)
	if err != nil {
		return entities.RequisitionDraft{}, wrapErr(err)
	}
	d.Status = entities.DraftStatus(status)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	if submittedAt != nil {
		t := submittedAt.UTC()
		d.SubmittedAt = &t
	}
	if err := decodeDocument(doc, &d); err != nil {
		return entities.RequisitionDraft{}, err
	}
	return d, nil
}

func utcOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
