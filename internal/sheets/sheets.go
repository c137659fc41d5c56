package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Document - табличный документ для экспорта: заголовки и строки
// в фиксированном порядке колонок.
type Document struct {
	Title      string
	RangeLabel string
	Headers    []string
	Rows       [][]string
}

// Exporter - узкий интерфейс к внешнему табличному сервису
type Exporter interface {
	Export(ctx context.Context, doc Document) (string, error)
}

// StubExporter - заглушка вместо реальной интеграции с Google Sheets.
// Логирует полезную нагрузку и возвращает фиктивный URL документа;
// никакие данные никуда не сохраняются.
type StubExporter struct {
	logger *slog.Logger
}

// NewStubExporter создаёт заглушку экспортёра
func NewStubExporter(logger *slog.Logger) *StubExporter {
	return &StubExporter{logger: logger}
}

func (e *StubExporter) Export(_ context.Context, doc Document) (string, error) {
	// Текущее время используется как токен уникальности документа
	mockID := fmt.Sprintf("mock-spreadsheet-id-%d", time.Now().UnixMilli())
	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", mockID)

	preview := doc.Rows
	if len(preview) > 5 {
		preview = preview[:5]
	}
	e.logger.Info("exporting data to spreadsheet",
		slog.String("title", doc.Title),
		slog.String("range", doc.RangeLabel),
		slog.Int("record_count", len(doc.Rows)),
		slog.Any("preview", preview),
	)

	return url, nil
}
