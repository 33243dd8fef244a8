package admin_test

import (
	otelMocks "bloom/infras/otel/mocks"
	"bloom/internal/domains/booking/backup"
	"bloom/internal/domains/booking/mocks"
	"bloom/internal/handlers/admin"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateBackup(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mocks.NewMockBackup(ctrl)

	handler := admin.New(job, mocks.NewMockBooking(ctrl), otelMocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	job.EXPECT().Run(gomock.Any()).Return(backup.Result{FileName: "bookings.csv", URL: "https://cdn/bookings.csv", Rows: 2}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/backups", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Backup uploaded","data":{"fileName":"bookings.csv","url":"https://cdn/bookings.csv","rows":2}}`, rec.Body.String())

	job.EXPECT().Run(gomock.Any()).Return(backup.Result{}, errors.New("access denied"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/backups", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "access denied", body["message"])
}

func TestClearSlotsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBooking(ctrl)

	handler := admin.New(mocks.NewMockBackup(ctrl), svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	svc.EXPECT().InvalidateSlots(gomock.Any())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/admin/cache/slots", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Booked slots cache cleared","data":null}`, rec.Body.String())
}
