package export

import (
	"github.com/go-pdf/fpdf"
)

// Canvas is the document-generation surface the exporter draws on. A new
// canvas already holds its first page.
type Canvas interface {
	SetFontSize(size float64)
	Text(x, y float64, s string)
	AddPage()
	PageCount() int
	Save(path string) error
}

type pdfCanvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFCanvas starts a portrait A4 document measured in millimetres.
func NewPDFCanvas() Canvas {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", DefaultLayout.BodySize)
	pdf.AddPage()
	return &pdfCanvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (c *pdfCanvas) SetFontSize(size float64) { c.pdf.SetFontSize(size) }

func (c *pdfCanvas) Text(x, y float64, s string) { c.pdf.Text(x, y, c.tr(s)) }

func (c *pdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *pdfCanvas) PageCount() int { return c.pdf.PageCount() }

func (c *pdfCanvas) Save(path string) error { return c.pdf.OutputFileAndClose(path) }
