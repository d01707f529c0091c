package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Field is a labelled value printed on a document.
type Field struct {
	Label string
	Value string
}

// Document describes a single printable receipt or payslip.
type Document struct {
	Title  string
	Header []Field
	Lines  Table
	Totals []Field
	Footer string
}

// PDFExporter renders documents into A4 PDFs.
type PDFExporter struct {
	orgName string
}

// NewPDFExporter constructs a PDF exporter printing orgName in the banner.
func NewPDFExporter(orgName string) *PDFExporter {
	return &PDFExporter{orgName: orgName}
}

// Render lays out the banner, header fields, line table and totals.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if e.orgName != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(e.orgName), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 12, tr(strings.ToUpper(doc.Title)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeFields(pdf, tr, doc.Header)

	if len(doc.Lines.Headers) > 0 {
		pdf.Ln(4)
		colWidth := 180.0 / float64(len(doc.Lines.Headers))
		pdf.SetFont("Arial", "B", 10)
		for _, header := range doc.Lines.Headers {
			pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, row := range doc.Lines.Rows {
			for i := range doc.Lines.Headers {
				value := ""
				if i < len(row) {
					value = row[i]
				}
				pdf.CellFormat(colWidth, 7, tr(value), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if len(doc.Totals) > 0 {
		pdf.Ln(4)
		writeFields(pdf, tr, doc.Totals)
	}

	if doc.Footer != "" {
		pdf.Ln(10)
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(0, 5, tr(doc.Footer), "", "C", false)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFields(pdf *gofpdf.Fpdf, tr func(string) string, fields []Field) {
	for _, f := range fields {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(50, 7, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, tr(f.Value), "", 1, "L", false, 0, "")
	}
}
