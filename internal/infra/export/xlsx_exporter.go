// Package export renders catalog data as spreadsheets.
package export

import (
	"io"
	"strings"

	"openshop/internal/domain/entity"
	"openshop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName       = "Products"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	timeLayout      = "2006-01-02 15:04:05"
)

var productHeaders = []string{
	"ProductID", "ProductName", "Category", "VariantID", "VariantName",
	"SKU", "Price", "StockQuantity", "Images", "CreatedAt",
}

type xlsxExporter struct{}

// NewXLSXExporter returns a ProductExporter producing an .xlsx workbook.
func NewXLSXExporter() service.ProductExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string { return xlsxContentType }

func (e *xlsxExporter) FileName() string { return "products.xlsx" }

func (e *xlsxExporter) Export(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range productHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, product := range products {
		if len(product.Variants) == 0 {
			writeProductRow(sheet.AddRow(), product, nil)

			continue
		}
		for _, variant := range product.Variants {
			writeProductRow(sheet.AddRow(), product, variant)
		}
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

func writeProductRow(row *xlsx.Row, product *entity.Product, variant *entity.Variant) {
	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Name
	}

	row.AddCell().SetValue(product.ID.String())
	row.AddCell().SetValue(product.Name)
	row.AddCell().SetValue(categoryName)

	if variant != nil {
		row.AddCell().SetValue(variant.ID.String())
		row.AddCell().SetValue(variant.Name)
		row.AddCell().SetValue(variant.SKU)
		row.AddCell().SetValue(variant.Price.StringFixed(2))
		row.AddCell().SetValue(variant.Stock)
	} else {
		for range 5 {
			row.AddCell().SetString("")
		}
	}

	urls := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		urls = append(urls, image.URL)
	}
	row.AddCell().SetValue(strings.Join(urls, ","))
	row.AddCell().SetValue(product.CreatedAt.UTC().Format(timeLayout))
}
