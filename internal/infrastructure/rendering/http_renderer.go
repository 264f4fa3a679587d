package rendering

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
)

const (
	generatePath = "/documentos/generar"

	// DefaultContentType is assumed when the service does not send one.
	DefaultContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrMissingRendererURL = errors.New("missing RENDERER_URL")

type renderRequest struct {
	Template string `json:"tipo_plantilla"`
	Data     any    `json:"datos"`
	FileName string `json:"nombre_archivo"`
}

// HTTPRenderer calls the document rendering service, which fills the official
// template for a kind and answers with the file bytes.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IDocumentRenderer = (*HTTPRenderer)(nil)

func NewHTTPRenderer(baseURL string, timeout time.Duration) (*HTTPRenderer, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingRendererURL
	}
	return &HTTPRenderer{baseURL: baseURL, client: &http.Client{Timeout: timeout}}, nil
}

func (r *HTTPRenderer) Render(ctx context.Context, kind entities.DocumentKind, payload any, fileName string) (interfaces.RenderedDocument, error) {
	body, err := sonic.Marshal(renderRequest{Template: string(kind), Data: payload, FileName: fileName})
	if err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return interfaces.RenderedDocument{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debugf(ctx, "[document][renderer] request kind=%s file=%s bytes=%d", kind, fileName, len(body))
	resp, err := r.client.Do(req)
	if err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("renderer request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return interfaces.RenderedDocument{}, fmt.Errorf("renderer status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("read renderer response: %w", err)
	}
	if len(content) == 0 {
		return interfaces.RenderedDocument{}, errors.New("renderer returned an empty document")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}
	return interfaces.RenderedDocument{ContentType: contentType, Content: content}, nil
}
