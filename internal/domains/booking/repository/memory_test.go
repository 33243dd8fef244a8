package repository_test

import (
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AppendKeepsOrder(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	for _, code := range []string{"BS1", "BS2", "BS3"} {
		row := make(model.Row, model.ColumnCount)
		row[model.ColBookingCode] = code

		require.NoError(t, store.Append(ctx, row))
	}

	table, err := store.ScanAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, model.Header, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "BS1", table.Rows[0][model.ColBookingCode])
	assert.Equal(t, "BS3", table.Rows[2][model.ColBookingCode])
}

func TestMemory_ScanIsSnapshot(t *testing.T) {
	row := make(model.Row, model.ColumnCount)
	row[model.ColName] = "Sari"

	store := repository.NewMemory(row)
	ctx := context.Background()

	table, err := store.ScanAll(ctx)
	require.NoError(t, err)

	table.Rows[0][model.ColName] = "changed"

	require.NoError(t, store.Append(ctx, row))

	again, err := store.ScanAll(ctx)
	require.NoError(t, err)

	assert.Len(t, table.Rows, 1)
	assert.Len(t, again.Rows, 2)
	assert.Equal(t, "Sari", again.Rows[0][model.ColName])
}

func TestMemory_Dropped(t *testing.T) {
	store := repository.NewMemory()

	exists, err := store.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)

	store.Drop()

	exists, err = store.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.ScanAll(context.Background())
	assert.ErrorIs(t, err, repository.ErrSheetNotFound)

	err = store.Append(context.Background(), model.Row{})
	assert.ErrorIs(t, err, repository.ErrSheetNotFound)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := repository.NewMemory()

	assert.ErrorIs(t, store.Append(ctx, model.Row{}), context.Canceled)
	assert.Equal(t, 0, store.Len())
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "bookings", repository.TableName("Bookings"))
	assert.Equal(t, "studio_bookings", repository.TableName(" Studio Bookings "))
}
