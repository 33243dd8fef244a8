package repository

import (
	"bloom/infras/otel"
	"bloom/infras/postgres"
	"bloom/internal/domains/booking/model"
	"bloom/shared/constant"
	"bloom/shared/logger"
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var columns = []string{
	"created_at",
	"name",
	"email",
	"phone",
	"package",
	"people_label",
	"booking_date",
	"booking_time",
	"concept",
	"background",
	"message",
	"booking_code",
	"package_price",
	"payment_type",
	"payment_amount",
	"payment_method",
	"status",
	"extra_people_count",
	"extra_people_fee",
	"total_price",
}

type postgresStore struct {
	db    *postgres.Connection
	otel  otel.Otel
	table string
}

func NewPostgres(db *postgres.Connection, table string, otel otel.Otel) RowStore {
	return &postgresStore{
		db:    db,
		otel:  otel,
		table: table,
	}
}

func (store *postgresStore) exists(ctx context.Context) (bool, error) {
	var exists bool

	err := store.db.Write.GetContext(ctx, &exists, "SELECT to_regclass($1) IS NOT NULL", store.table)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", store.table, err)
	}

	return exists, nil
}

func (store *postgresStore) Exists(ctx context.Context) (exists bool, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Exists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return store.exists(ctx)
}

func (store *postgresStore) Append(ctx context.Context, row model.Row) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := store.exists(ctx)
	if err != nil {
		return err
	}

	if !exists {
		return ErrSheetNotFound
	}

	var booking model.Booking
	booking.FromRow(row)

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(store.table),
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = store.db.Write.NamedExecContext(ctx, query, booking); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (store *postgresStore) ScanAll(ctx context.Context) (table model.Table, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ScanAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := store.exists(ctx)
	if err != nil {
		return table, err
	}

	if !exists {
		return table, ErrSheetNotFound
	}

	// id is a bigserial, so it preserves append order.
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id ASC", strings.Join(columns, ", "), pq.QuoteIdentifier(store.table))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	// Scans run on the primary so a collision check always sees the latest append.
	var bookings []model.Booking
	if err = store.db.Write.SelectContext(ctx, &bookings, query); err != nil {
		logger.ErrorWithStack(err)

		return table, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	table.Header = model.Header
	table.Rows = make([]model.Row, len(bookings))

	for i, booking := range bookings {
		table.Rows[i] = booking.ToRow()
	}

	return table, nil
}
