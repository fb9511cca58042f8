package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 10
	pdfLineHeight = 4.5
	pdfFontSize   = 8
)

// WritePDF renders the report text into a PDF at outputPath using a
// monospace font so the fenced tree and chart keep their alignment.
// Characters outside the core font's codepage (the emoji column) are
// dropped by the translator.
func WritePDF(text, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	pdf.SetFont("Courier", "", pdfFontSize)

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	width, _ := pdf.GetPageSize()
	usable := width - 2*pdfMargin

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			pdf.Ln(pdfLineHeight)
			continue
		}
		pdf.MultiCell(usable, pdfLineHeight, translate(line), "", "L", false)
	}

	return pdf.OutputFileAndClose(outputPath)
}
