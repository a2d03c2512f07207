package service

import (
	"io"

	"openshop/internal/domain/entity"
)

// ProductExporter renders the catalog into a downloadable document.
type ProductExporter interface {
	// Export writes one row per variant. Products without variants get a single row.
	Export(w io.Writer, products []*entity.Product) error

	// ContentType is the MIME type of the written document.
	ContentType() string

	// FileName is the suggested attachment name.
	FileName() string
}
