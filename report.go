package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// CreateReport renders the analysis report as an in-memory PDF: a header
// band, the match score, the identified gaps and the wrapped analysis body.
// Page breaks are automatic once the body runs past the page height.
func CreateReport(name string, score int, analysis string, missingSkills []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	// Header band
	pdf.SetFillColor(26, 51, 128)
	pdf.Rect(0, 0, pageWidth, 35, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(15, 10)
	pdf.Cell(0, 10, "CareerForge AI Analysis")
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetXY(15, 22)
	pdf.Cell(0, 8, fmt.Sprintf("Candidate Report for: %s", name))

	// Score
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(15, 45)
	pdf.Cell(0, 8, fmt.Sprintf("Match Score: %d%%", score))

	// Missing skills
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(15, 58)
	pdf.Cell(0, 6, "Identified Gaps / Missing Skills:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(204, 26, 26)
	skillsText := "None detected."
	if len(missingSkills) > 0 {
		skillsText = strings.Join(missingSkills, ", ")
	}
	pdf.SetXY(15, 65)
	pdf.MultiCell(pageWidth-30, 5, skillsText, "", "L", false)

	// Analysis body
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Ln(6)
	pdf.SetX(15)
	pdf.Cell(0, 6, "Detailed AI Feedback:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, paragraph := range strings.Split(analysis, "\n") {
		pdf.SetX(15)
		pdf.MultiCell(pageWidth-30, 5, paragraph, "", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}
