package backup_test

import (
	"bloom/config"
	otelMocks "bloom/infras/otel/mocks"
	s3Mocks "bloom/infras/s3/mocks"
	"bloom/internal/domains/booking/backup"
	"bloom/internal/domains/booking/mocks"
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/repository"
	"bloom/shared/constant"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backup.Bucket = "bloom-backups"
	cfg.Backup.Directory = "backups/bookings"

	return cfg
}

func TestEncode(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	table := model.Table{
		Header: model.Header,
		Rows: []model.Row{
			model.Booking{CreatedAt: createdAt, Name: "Ana, S.", Date: "2024-06-01", Time: "10:00-11:00", BookingCode: "BS1", PackagePrice: 150000, TotalPrice: 150000}.ToRow(),
			{"legacy", "Budi"},
		},
	}

	data, err := backup.Encode(table)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, model.Header, records[0])
	assert.Equal(t, "2024-06-01T09:30:00Z", records[1][0])
	assert.Equal(t, "Ana, S.", records[1][1])
	assert.Equal(t, "BS1", records[1][11])
	assert.Equal(t, "150000", records[1][12])

	assert.Len(t, records[2], len(model.Header))
	assert.Equal(t, "Budi", records[2][1])
	assert.Empty(t, records[2][19])
}

func TestEncode_QuotesFormulaText(t *testing.T) {
	formula := model.Booking{
		Name:        "=HYPERLINK(\"http://evil\",\"x\")",
		Email:       "@SUM(A1)",
		Phone:       "+6281234",
		Concept:     "-1+1",
		Message:     "plain",
		BookingCode: "BS1",
	}.ToRow()
	formula[model.ColExtraPeopleFee] = -50000.0

	data, err := backup.Encode(model.Table{Rows: []model.Row{formula}})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, `'=HYPERLINK("http://evil","x")`, records[1][model.ColName])
	assert.Equal(t, "'@SUM(A1)", records[1][model.ColEmail])
	assert.Equal(t, "'+6281234", records[1][model.ColPhone])
	assert.Equal(t, "'-1+1", records[1][model.ColConcept])
	assert.Equal(t, "plain", records[1][model.ColMessage])
	assert.Equal(t, "-50000", records[1][model.ColExtraPeopleFee])
}

func TestEncode_DefaultHeader(t *testing.T) {
	data, err := backup.Encode(model.Table{})
	require.NoError(t, err)

	assert.Equal(t, strings.Join(model.Header, ",")+"\n", string(data))
}

func TestFileName(t *testing.T) {
	name := backup.FileName(time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(name, "bookings-20240601T020000-"), name)
	assert.True(t, strings.HasSuffix(name, ".csv"), name)
	assert.NotEqual(t, name, backup.FileName(time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC)))
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	store := repository.NewMemory(model.Booking{Name: "Ana", BookingCode: "BS1"}.ToRow())
	job := backup.New(store, storage, newConfig(), otelMocks.NewOtel())

	var uploaded []byte

	storage.EXPECT().
		Upload(gomock.Any(), "bloom-backups", "backups/bookings", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			uploaded = data

			return "https://cdn.example.com/backups/bookings/" + fileName, nil
		})

	res, err := job.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rows)
	assert.Equal(t, "https://cdn.example.com/backups/bookings/"+res.FileName, res.URL)
	assert.Contains(t, string(uploaded), "Ana")
	assert.Contains(t, string(uploaded), "BS1")
}

func TestRun_Failures(t *testing.T) {
	t.Run("missing sheet", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		store := repository.NewMemory()
		store.Drop()

		_, err := backup.New(store, s3Mocks.NewMockS3(ctrl), newConfig(), otelMocks.NewOtel()).Run(context.Background())
		assert.ErrorIs(t, err, repository.ErrSheetNotFound)
	})

	t.Run("upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := s3Mocks.NewMockS3(ctrl)

		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		_, err := backup.New(repository.NewMemory(), storage, newConfig(), otelMocks.NewOtel()).Run(context.Background())
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mocks.NewMockBackup(ctrl)

	_, err := backup.NewScheduler("not a schedule", job)
	assert.Error(t, err)

	var once sync.Once

	ran := make(chan struct{})
	job.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) (backup.Result, error) {
		once.Do(func() { close(ran) })

		return backup.Result{}, nil
	}).MinTimes(1)

	scheduler, err := backup.NewScheduler("@every 1s", job)
	require.NoError(t, err)

	scheduler.Start()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("backup did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	scheduler.Stop(ctx)
}
