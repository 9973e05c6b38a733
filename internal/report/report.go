// Package report exports calculation results as single-page PDF documents
// with the breakdown chart embedded below the figures.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/pkg/constants"
	"github.com/iwvelando/interest-calculator/pkg/format"
	"go.uber.org/zap"
)

// Page layout in points, measured from the top-left corner of a US Letter page.
const (
	textLeft     = 50.0
	textTop      = 42.0
	fontSize     = 12.0
	lineHeight   = fontSize * 1.2
	chartLeft    = 150.0
	chartTop     = 167.0
	chartWidth   = 300.0
	chartHeight  = 225.0
	chartImageID = "breakdown-chart"
	utf8Family   = "report-utf8"
	coreFamily   = "Helvetica"
)

// ExportError reports a document that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Options controls document rendering.
type Options struct {
	// FontFile is an optional UTF-8 TrueType font used instead of the
	// Latin-1 core font, so every currency symbol renders verbatim.
	FontFile string
	// KeepChartImage also writes the chart next to the document as
	// <name>_chart.png.
	KeepChartImage bool
}

// Writer renders results to PDF files.
type Writer struct {
	logger  *zap.Logger
	options Options
}

// NewWriter constructs a Writer.
func NewWriter(logger *zap.Logger, options Options) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger, options: options}
}

// Lines returns the text block of the document for a result.
func Lines(res calculator.Result) []string {
	lines := []string{constants.ReportTitle, ""}
	for _, field := range res.Fields() {
		lines = append(lines, fmt.Sprintf("%s: %s", field.Label, format.Currency(res.Currency, field.Value)))
	}
	return append(lines, fmt.Sprintf("Currency: %s", res.Currency))
}

// DocumentPath returns path with a ".pdf" extension appended when missing.
func DocumentPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return path
	}
	return path + ".pdf"
}

// Write renders the result and optional chart PNG to path. A ".pdf"
// extension is appended when missing. The document is written to a
// temporary file in the destination directory and renamed into place.
func (w *Writer) Write(path string, res calculator.Result, chartPNG []byte) error {
	if strings.TrimSpace(path) == "" {
		return &ExportError{Path: path, Err: errors.New("no destination path given")}
	}
	if res.Empty() {
		return &ExportError{Path: path, Err: errors.New("no result to export")}
	}
	path = DocumentPath(path)

	doc, err := w.render(res, chartPNG)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if err := writeAtomically(path, doc); err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if w.options.KeepChartImage && len(chartPNG) > 0 {
		sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + constants.ChartSidecarSuffix
		if err := os.WriteFile(sidecar, chartPNG, 0644); err != nil {
			return &ExportError{Path: sidecar, Err: err}
		}
	}

	w.logger.Info("exported calculation",
		zap.String("op", "report.Write"),
		zap.String("path", path),
		zap.String("kind", string(res.Kind)),
		zap.Bool("chart", len(chartPNG) > 0),
	)
	return nil
}

func (w *Writer) render(res calculator.Result, chartPNG []byte) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(constants.ReportTitle, true)
	pdf.SetCreator("interest-calculator", true)

	encode, err := w.setFont(pdf)
	if err != nil {
		return nil, err
	}
	pdf.AddPage()

	for i, line := range Lines(res) {
		pdf.Text(textLeft, textTop+float64(i)*lineHeight, encode(line))
	}

	if len(chartPNG) > 0 {
		options := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(chartImageID, options, bytes.NewReader(chartPNG))
		pdf.ImageOptions(chartImageID, chartLeft, chartTop, chartWidth, chartHeight, false, options, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// setFont selects the configured UTF-8 font, or the Latin-1 core font with a
// cp1252 translator. The rupee sign has no cp1252 code point and is spelled
// out as "Rs." in that case.
func (w *Writer) setFont(pdf *fpdf.Fpdf) (func(string) string, error) {
	if w.options.FontFile != "" {
		fontBytes, err := os.ReadFile(w.options.FontFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", w.options.FontFile, err)
		}
		pdf.AddUTF8FontFromBytes(utf8Family, "", fontBytes)
		pdf.SetFont(utf8Family, "", fontSize)
		return func(s string) string { return s }, nil
	}

	pdf.SetFont(coreFamily, "", fontSize)
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	return func(s string) string {
		return translate(strings.ReplaceAll(s, constants.CurrencyRupee, "Rs."))
	}, nil
}

func writeAtomically(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.pdf")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
