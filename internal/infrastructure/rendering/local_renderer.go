package rendering

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/pkg/logger"
	"requisiciones_api/internal/pkg/markdown"
	"requisiciones_api/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
)

const HTMLContentType = "text/html; charset=utf-8"

// LocalRenderer lays the payload out as an HTML page instead of calling the
// rendering service. It is used when RENDERER_MOCK is enabled.
type LocalRenderer struct{}

var _ interfaces.IDocumentRenderer = (*LocalRenderer)(nil)

func NewLocalRenderer() *LocalRenderer {
	logger.Infof(context.Background(), "[document][renderer] mock mode enabled")
	return &LocalRenderer{}
}

func (LocalRenderer) Render(ctx context.Context, kind entities.DocumentKind, payload any, fileName string) (interfaces.RenderedDocument, error) {
	fields, err := toFields(payload)
	if err != nil {
		return interfaces.RenderedDocument{}, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", kind.Code(), kind.Title())
	writeFields(&b, fields)

	page, err := markdown.Page(fileName, b.String())
	if err != nil {
		return interfaces.RenderedDocument{}, err
	}
	logger.Debugf(ctx, "[document][renderer] mock rendered kind=%s bytes=%d", kind, len(page))
	return interfaces.RenderedDocument{ContentType: HTMLContentType, Content: page}, nil
}

func toFields(payload any) (map[string]any, error) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	fields := map[string]any{}
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload is not an object: %w", err)
	}
	return fields, nil
}

// writeFields prints scalars as a list and lists of objects as tables, in key order.
func writeFields(b *strings.Builder, fields map[string]any) {
	keys := sortedKeys(fields)

	for _, k := range keys {
		switch fields[k].(type) {
		case []any, map[string]any:
			continue
		}
		fmt.Fprintf(b, "- **%s:** %s\n", k, cell(fields[k]))
	}
	b.WriteString("\n")

	for _, k := range keys {
		switch v := fields[k].(type) {
		case []any:
			fmt.Fprintf(b, "## %s\n\n", k)
			writeTable(b, v)
		case map[string]any:
			fmt.Fprintf(b, "## %s\n\n", k)
			writeFields(b, v)
		}
	}
}

func writeTable(b *strings.Builder, rows []any) {
	if len(rows) == 0 {
		b.WriteString("_Sin registros_\n\n")
		return
	}
	first, ok := rows[0].(map[string]any)
	if !ok {
		for _, r := range rows {
			fmt.Fprintf(b, "- %s\n", cell(r))
		}
		b.WriteString("\n")
		return
	}

	cols := sortedKeys(first)
	b.WriteString("| " + strings.Join(cols, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(cols)) + "\n")
	for _, r := range rows {
		m, _ := r.(map[string]any)
		vals := make([]string, len(cols))
		for i, c := range cols {
			vals[i] = cell(m[c])
		}
		b.WriteString("| " + strings.Join(vals, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
