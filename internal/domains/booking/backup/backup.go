package backup

//go:generate go run go.uber.org/mock/mockgen -source=./backup.go -destination=../mocks/backup_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/infras/s3"
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/repository"
	"bloom/shared/constant"
	"bloom/shared/timezone"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	fileTimeFormat  = "20060102T150405"
	formulaPrefixes = "=+-@\t\r"
)

// Result describes one uploaded export.
type Result struct {
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Rows     int    `json:"rows"`
}

// Backup exports the Bookings sheet as CSV to object storage.
type Backup interface {
	Run(ctx context.Context) (Result, error)
}

type backupImpl struct {
	repo    repository.RowStore
	storage s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.RowStore, storage s3.S3, cfg *config.Config, otel otel.Otel) Backup {
	return &backupImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

func (b *backupImpl) Run(ctx context.Context) (res Result, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".Backup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table, err := b.repo.ScanAll(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to scan bookings: %w", err)
	}

	data, err := Encode(table)
	if err != nil {
		return res, err
	}

	res.FileName = FileName(timezone.Now())
	res.Rows = len(table.Rows)

	res.URL, err = b.storage.Upload(ctx, b.cfg.Backup.Bucket, b.cfg.Backup.Directory, res.FileName, constant.ContentTypeCSV, data)
	if err != nil {
		return res, fmt.Errorf("failed to upload backup: %w", err)
	}

	scope.SetAttributes(map[string]any{"file_name": res.FileName, "rows": res.Rows})
	log.Info().Str("file", res.FileName).Int("rows", res.Rows).Msg("Bookings backup uploaded")

	return res, nil
}

// Encode writes the header then every row, cells rendered as text.
func Encode(table model.Table) ([]byte, error) {
	header := table.Header
	if len(header) == 0 {
		header = model.Header
	}

	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range table.Rows {
		record := make([]string, len(header))
		for i := range record {
			record[i] = csvCell(row.Cell(i))
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// csvCell renders a cell. Text that a spreadsheet would evaluate as a
// formula is prefixed with a quote. Numbers and times are written as is.
func csvCell(cell any) string {
	text := model.CellString(cell)

	if _, ok := cell.(string); ok && text != "" && strings.ContainsRune(formulaPrefixes, rune(text[0])) {
		return "'" + text
	}

	return text
}

// FileName names an export after its start time plus a random suffix.
func FileName(now time.Time) string {
	return fmt.Sprintf("bookings-%s-%s.csv", now.Format(fileTimeFormat), uuid.NewString()[:8])
}
