package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Resume carries the localized content rendered into the PDF resume.
type Resume struct {
	Name     string
	Role     string
	Location string
	Bio      string
	Entries  []ResumeEntry
}

// ResumeEntry is a single experience line.
type ResumeEntry struct {
	Role        string
	Company     string
	Period      string
	Description string
	Tech        []string
}

// PDFExporter renders a resume document.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the resume PDF.
func (e *PDFExporter) Render(r Resume) ([]byte, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("resume requires a name")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, tr(r.Name), "", 1, "L", false, 0, "")

	if r.Role != "" {
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(0, 7, tr(r.Role), "", 1, "L", false, 0, "")
	}
	if r.Location != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, tr(r.Location), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if r.Bio != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(r.Bio), "", "L", false)
		pdf.Ln(4)
	}

	for _, entry := range r.Entries {
		pdf.SetFont("Arial", "B", 11)
		heading := entry.Role
		if entry.Company != "" {
			heading += " - " + entry.Company
		}
		pdf.CellFormat(0, 7, tr(heading), "", 1, "L", false, 0, "")

		if entry.Period != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(0, 5, tr(entry.Period), "", 1, "L", false, 0, "")
		}
		if entry.Description != "" {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, tr(entry.Description), "", "L", false)
		}
		if len(entry.Tech) > 0 {
			pdf.SetFont("Arial", "I", 9)
			line := entry.Tech[0]
			for _, t := range entry.Tech[1:] {
				line += ", " + t
			}
			pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render resume pdf: %w", err)
	}
	return buf.Bytes(), nil
}
