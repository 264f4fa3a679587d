package interfaces

import (
	"context"

	"requisiciones_api/internal/domain/entities"
)

// RenderedDocument is the binary file produced by the rendering service.
type RenderedDocument struct {
	ContentType string
	Content     []byte
}

// IDocumentRenderer turns a document payload into a downloadable file.
type IDocumentRenderer interface {
	Render(ctx context.Context, kind entities.DocumentKind, payload any, fileName string) (RenderedDocument, error)
}
