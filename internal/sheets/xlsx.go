package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// XLSXExporter пишет документ в локальный xlsx-файл и возвращает
// URL вида /exports/<файл>, по которому сервер отдаёт файл.
type XLSXExporter struct {
	dir    string
	logger *slog.Logger
}

// NewXLSXExporter создаёт экспортёр, сохраняющий файлы в dir
func NewXLSXExporter(dir string, logger *slog.Logger) *XLSXExporter {
	return &XLSXExporter{dir: dir, logger: logger}
}

func (e *XLSXExporter) Export(_ context.Context, doc Document) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range doc.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return "", err
		}
	}

	for rowIdx, row := range doc.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", err
			}
		}
	}

	name := fmt.Sprintf("%s-%s.xlsx", slugify(doc.Title), uuid.NewString())
	path := filepath.Join(e.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	e.logger.Info("spreadsheet written",
		slog.String("path", path),
		slog.Int("record_count", len(doc.Rows)),
	)

	return "/exports/" + name, nil
}

// slugify приводит заголовок документа к безопасному имени файла
func slugify(title string) string {
	if title == "" {
		return "export"
	}
	s := strings.ToLower(title)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "export"
	}
	return slug
}
