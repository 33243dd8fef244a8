package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/infras/postgres"
	"bloom/internal/domains/booking/model"
	"bloom/shared/constant"
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrSheetNotFound means the table backing the Bookings sheet is absent.
var ErrSheetNotFound = errors.New("sheet not found")

// RowStore is the append-only table holding booking rows.
type RowStore interface {
	// Append adds row as the last data row. No validation is done here.
	Append(ctx context.Context, row model.Row) error
	// ScanAll returns a snapshot of the table, header declared separately.
	ScanAll(ctx context.Context) (model.Table, error)
	// Exists reports whether the table is present without reading rows.
	Exists(ctx context.Context) (bool, error)
}

// New picks the store driver configured in BOOKING_STORE_DRIVER.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) RowStore {
	switch strings.ToLower(cfg.Booking.StoreDriver) {
	case constant.StoreDriverMemory:
		log.Warn().Msg("Using in-memory booking store, rows are lost on restart")

		return NewMemory()
	default:
		return NewPostgres(db, TableName(cfg.Booking.SheetName), otel)
	}
}

// TableName maps a sheet name onto its SQL table.
func TableName(sheetName string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(sheetName), " ", "_"))
}
