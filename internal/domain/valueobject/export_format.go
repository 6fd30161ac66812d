package valueobject

import "strings"

// ExportFormat - формат выгрузки заявки.
type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatDOCX ExportFormat = "docx"
)

// ParseExportFormat: всё, что не "pdf", экспортируется в DOCX.
func ParseExportFormat(raw string) ExportFormat {
	if strings.EqualFold(strings.TrimSpace(raw), string(ExportFormatPDF)) {
		return ExportFormatPDF
	}
	return ExportFormatDOCX
}

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatPDF, ExportFormatDOCX:
		return true
	}
	return false
}

func (f ExportFormat) String() string {
	return string(f)
}
