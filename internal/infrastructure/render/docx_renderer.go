package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

const MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DOCXRenderer собирает документ Word с одним абзацем.
type DOCXRenderer struct{}

func NewDOCXRenderer() *DOCXRenderer {
	return &DOCXRenderer{}
}

func (r *DOCXRenderer) MediaType() string {
	return MediaTypeDOCX
}

func (r *DOCXRenderer) Extension() string {
	return "docx"
}

// Render кладёт весь текст в один абзац, переводы строк становятся разрывами строки.
func (r *DOCXRenderer) Render(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(strings.ReplaceAll(text, "\r\n", "\n"))

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docx renderer: %w", err)
	}
	return buf.Bytes(), nil
}
