package render

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/sfnt"
)

const MediaTypePDF = "application/pdf"

const pdfFontFamily = "DejaVu"

// ErrUnsupportedRune возвращается, если в тексте есть символ без глифа в шрифте.
var ErrUnsupportedRune = errors.New("символ не поддерживается шрифтом")

//go:embed fonts/DejaVuSansCondensed.ttf
var dejaVuSans []byte

var (
	glyphsOnce sync.Once
	glyphs     *sfnt.Font
	glyphsErr  error
)

func loadGlyphs() (*sfnt.Font, error) {
	glyphsOnce.Do(func() {
		glyphs, glyphsErr = sfnt.Parse(dejaVuSans)
	})
	return glyphs, glyphsErr
}

// PDFRenderer рисует текст на страницах A4, по блоку на строку.
type PDFRenderer struct{}

// NewPDFRenderer создаёт рендерер с встроенным шрифтом DejaVu Sans.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) MediaType() string {
	return MediaTypePDF
}

func (r *PDFRenderer) Extension() string {
	return "pdf"
}

// Render возвращает PDF документ. Пустые строки дают вертикальный отступ.
func (r *PDFRenderer) Render(ctx context.Context, text string) ([]byte, error) {
	text = strings.ReplaceAll(text, "\t", "    ")
	if err := checkCoverage(text); err != nil {
		return nil, fmt.Errorf("pdf renderer: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", dejaVuSans)
	pdf.AddPage()
	pdf.SetFont(pdfFontFamily, "", 12)

	for _, line := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r")
		if line == "" {
			pdf.Ln(10)
			continue
		}
		pdf.MultiCell(0, 10, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf renderer: %w", err)
	}
	return buf.Bytes(), nil
}

// checkCoverage проверяет, что у каждого символа есть глиф.
// gofpdf пишет текст в UTF-16 без суррогатных пар, поэтому символы вне BMP тоже отклоняются.
func checkCoverage(text string) error {
	font, err := loadGlyphs()
	if err != nil {
		return fmt.Errorf("шрифт: %w", err)
	}

	var buf sfnt.Buffer
	for _, ch := range text {
		if ch == '\n' || ch == '\r' {
			continue
		}
		if ch > 0xFFFF {
			return fmt.Errorf("%w: %q", ErrUnsupportedRune, ch)
		}
		idx, err := font.GlyphIndex(&buf, ch)
		if err != nil {
			return fmt.Errorf("шрифт: %w", err)
		}
		if idx == 0 {
			return fmt.Errorf("%w: %q", ErrUnsupportedRune, ch)
		}
	}
	return nil
}
