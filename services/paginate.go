package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// Page geometry in points (US Letter), matching the template stock the
// quote templates are produced on.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	LeftMargin   = 50.0
	TopMargin    = 50.0
	BottomMargin = 50.0

	BodyFontSize = 12.0
	LineHeight   = BodyFontSize * 1.2
)

const backgroundImageName = "quote-background"

// PageWriter owns the dynamically generated pages of a quote. It tracks a
// vertical cursor measured bottom-up, so Y shrinks as content is drawn and a
// page break is forced before the cursor would cross the bottom margin.
// Every allocated page is stamped with the background image (when one was
// supplied) before any content is drawn on it.
type PageWriter struct {
	pdf           *gofpdf.Fpdf
	y             float64
	hasBackground bool
}

// NewPageWriter allocates the first generated page. background may be nil;
// non-PNG/JPEG bytes are rejected.
func NewPageWriter(background []byte) (*PageWriter, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	w := &PageWriter{pdf: pdf}

	if len(background) > 0 {
		imgType, err := sniffImageType(background)
		if err != nil {
			return nil, err
		}
		opts := gofpdf.ImageOptions{ImageType: imgType}
		pdf.RegisterImageOptionsReader(backgroundImageName, opts, bytes.NewReader(background))
		if pdf.Err() {
			return nil, fmt.Errorf("register background image: %w", pdf.Error())
		}
		w.hasBackground = true
	}

	w.addPage()
	return w, nil
}

func sniffImageType(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG")):
		return "PNG", nil
	case bytes.HasPrefix(data, []byte("\xff\xd8")):
		return "JPG", nil
	}
	return "", fmt.Errorf("unsupported background image format")
}

func (w *PageWriter) addPage() {
	w.pdf.AddPage()
	if w.hasBackground {
		w.pdf.ImageOptions(backgroundImageName, 0, 0, PageWidth, PageHeight, false,
			gofpdf.ImageOptions{}, 0, "")
	}
	w.y = PageHeight - TopMargin
}

// Y returns the current cursor position, measured from the page bottom.
func (w *PageWriter) Y() float64 { return w.y }

// PageCount returns the number of pages allocated so far.
func (w *PageWriter) PageCount() int { return w.pdf.PageCount() }

// EnsureSpace starts a new page when drawing required points of content
// would cross the bottom margin, and reports whether a break occurred. It is
// called before each atomic unit of content, never mid-unit, so a unit never
// splits across pages.
func (w *PageWriter) EnsureSpace(required float64) bool {
	if w.y-required < BottomMargin {
		w.addPage()
		return true
	}
	return false
}

// Advance moves the cursor down by h points.
func (w *PageWriter) Advance(h float64) { w.y -= h }

// Text draws s at x on the current cursor line in the body font.
func (w *PageWriter) Text(x float64, s string) {
	w.TextSize(x, BodyFontSize, false, s)
}

// TextSize draws s at x using an explicit size and weight.
func (w *PageWriter) TextSize(x, size float64, bold bool, s string) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont("Helvetica", style, size)
	w.pdf.Text(x, PageHeight-w.y, s)
}

// TextRight draws s right-aligned so it ends at x.
func (w *PageWriter) TextRight(x, size float64, bold bool, s string) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont("Helvetica", style, size)
	w.pdf.Text(x-w.pdf.GetStringWidth(s), PageHeight-w.y, s)
}

// Rule draws a horizontal separator line across the content width at the
// current cursor position.
func (w *PageWriter) Rule() {
	w.pdf.SetDrawColor(120, 120, 120)
	w.pdf.SetLineWidth(0.5)
	y := PageHeight - w.y
	w.pdf.Line(LeftMargin, y, PageWidth-LeftMargin, y)
}

// Output serializes the generated pages.
func (w *PageWriter) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize generated pages: %w", err)
	}
	return buf.Bytes(), nil
}
