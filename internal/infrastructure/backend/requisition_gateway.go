package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
)

const requisitionsPath = "/requisiciones"

var ErrMissingBackendURL = errors.New("missing BACKEND_URL")
var ErrBackendGatewayNotConfigured = errors.New("requisition backend gateway not configured")

type createResponse struct {
	ID    any    `json:"id"`
	Folio string `json:"folio"`
}

// RequisitionGateway creates requisitions in the procurement backend. In mock
// mode it answers locally with sequential REQ-{year}-{n} folios.
type RequisitionGateway struct {
	baseURL  string
	token    string
	client   *http.Client
	mockMode bool
	seq      atomic.Int64
	now      func() time.Time
}

var _ interfaces.IRequisitionGateway = (*RequisitionGateway)(nil)

func NewRequisitionGateway(baseURL, token string, timeout time.Duration, mock bool) (*RequisitionGateway, error) {
	ctx := context.Background()
	if mock {
		logger.Infof(ctx, "[submission][gateway] mock mode enabled")
		return &RequisitionGateway{mockMode: true, now: time.Now}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		logger.Errorf(ctx, "[submission][gateway] missing BACKEND_URL")
		return nil, ErrMissingBackendURL
	}
	logger.Infof(ctx, "[submission][gateway] backend client initialized url=%s", baseURL)

	return &RequisitionGateway{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}, nil
}

func (g *RequisitionGateway) CreateRequisition(ctx context.Context, payload submission.CreationPayload) (interfaces.CreatedRequisition, error) {
	if g != nil && g.mockMode {
		n := g.seq.Add(1)
		created := interfaces.CreatedRequisition{
			ID:    strconv.FormatInt(g.now().UTC().UnixNano(), 10),
			Folio: fmt.Sprintf("REQ-%d-%04d", g.now().Year(), n),
		}
		logger.Infof(ctx, "[submission][gateway] mock create success id=%s folio=%s lines=%d", created.ID, created.Folio, len(payload.Lines))
		return created, nil
	}

	if g == nil || g.client == nil {
		logger.Errorf(ctx, "[submission][gateway] gateway not configured")
		return interfaces.CreatedRequisition{}, ErrBackendGatewayNotConfigured
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		logger.Errorf(ctx, "[submission][gateway] payload marshal failed err=%v", err)
		return interfaces.CreatedRequisition{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+requisitionsPath, bytes.NewReader(body))
	if err != nil {
		return interfaces.CreatedRequisition{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	logger.Infof(ctx, "[submission][gateway] create start payload_len=%d", len(body))
	resp, err := g.client.Do(req)
	if err != nil {
		logger.Errorf(ctx, "[submission][gateway] request failed err=%v", err)
		return interfaces.CreatedRequisition{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return interfaces.CreatedRequisition{}, fmt.Errorf("read backend response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Errorf(ctx, "[submission][gateway] create rejected status=%d", resp.StatusCode)
		return interfaces.CreatedRequisition{}, fmt.Errorf("backend status %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var out createResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		logger.Errorf(ctx, "[submission][gateway] response unmarshal failed err=%v", err)
		return interfaces.CreatedRequisition{}, fmt.Errorf("decode backend response: %w", err)
	}
	if strings.TrimSpace(out.Folio) == "" {
		return interfaces.CreatedRequisition{}, errors.New("backend response without folio")
	}

	created := interfaces.CreatedRequisition{ID: idString(out.ID), Folio: out.Folio}
	logger.Infof(ctx, "[submission][gateway] create success id=%s folio=%s", created.ID, created.Folio)
	return created, nil
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprint(id)
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
