package booking_test

import (
	"bloom/config"
	otelMocks "bloom/infras/otel/mocks"
	"bloom/internal/domains/booking/mocks"
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/model/dto"
	"bloom/internal/domains/booking/repository"
	"bloom/internal/domains/booking/service"
	"bloom/internal/handlers/booking"
	"bloom/shared/cache"
	"bloom/shared/failure"
	"bloom/shared/lock"
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(svc service.Booking) http.Handler {
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Exec(router)
	router.Route("/v1", handler.Router)

	return router
}

func newMemoryRouter(t *testing.T) (http.Handler, *repository.Memory) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Booking.SheetName = "Bookings"
	cfg.Booking.DefaultStatus = model.DefaultStatus
	cfg.Booking.Notifier.TimeoutSeconds = 1

	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	store := repository.NewMemory()
	svc := service.New(store, lock.NewMemory(time.Second), notifier, cfg, cache.NewRedisCache(client, otelMocks.NewOtel()), otelMocks.NewOtel())

	return newRouter(svc), store
}

func do(t *testing.T, handler http.Handler, req *http.Request) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func bookingForm(code, clock string) url.Values {
	return url.Values{
		"name":         {"Ana"},
		"email":        {"ana@example.com"},
		"package":      {"Basic"},
		"date":         {"2024-06-01"},
		"time":         {clock},
		"bookingCode":  {code},
		"packagePrice": {"150000"},
	}
}

func TestExecScenario(t *testing.T) {
	router, store := newMemoryRouter(t)

	code, env := do(t, router, postForm("/exec", bookingForm("BS1", "10:00-11:00")))
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Booking berhasil disimpan", env.Message)
	assert.Equal(t, "null", string(env.Data))

	code, env = do(t, router, postForm("/exec", bookingForm("BS2", "10:00 – 11:00")))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Jam ini sudah dibooking, silakan pilih jam lain", env.Message)
	assert.Equal(t, 1, store.Len())

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/exec?action=getBookedSlots&date=2024-06-01", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Booked slots retrieved", env.Message)
	assert.JSONEq(t, `{"bookedSlots":["10:00-11:00"]}`, string(env.Data))

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/exec?code=BS1", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "found", env.Status)
	assert.Equal(t, "Booking ditemukan", env.Message)

	var found dto.BookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &found))
	assert.Equal(t, "Ana", found.Nama)
	assert.Equal(t, "ana@example.com", found.Email)
	assert.Equal(t, 150000.0, found.TotalHarga)

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/exec?code=BS2", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", env.Status)
	assert.Equal(t, "Booking tidak ditemukan", env.Message)
	assert.Equal(t, "null", string(env.Data))

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/exec", nil))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Kode booking kosong", env.Message)
}

func TestVersionedRoutes(t *testing.T) {
	router, _ := newMemoryRouter(t)

	code, env := do(t, router, postForm("/v1/bookings", bookingForm("BS1", "10:00-11:00")))
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"bookingCode":"BS1"}`, string(env.Data))

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/v1/bookings/slots?date=2024-06-01", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"bookedSlots":["10:00-11:00"]}`, string(env.Data))

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/v1/bookings/BS1", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "found", env.Status)

	code, env = do(t, router, httptest.NewRequest(http.MethodGet, "/v1/bookings?action=getBookedSlots&date=2030-01-01", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"bookedSlots":[]}`, string(env.Data))
}

func TestCreateBooking_Encodings(t *testing.T) {
	want := dto.CreateBookingRequest{
		Name:         "Ana",
		Date:         "2024-06-01",
		Time:         "10:00-11:00",
		BookingCode:  "BS1",
		PackagePrice: "150000",
	}

	jsonReq := func() *http.Request {
		body := `{"name":"Ana","date":"2024-06-01","time":"10:00-11:00","bookingCode":"BS1","packagePrice":150000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		return req
	}

	multipartReq := func() *http.Request {
		var buf bytes.Buffer

		w := multipart.NewWriter(&buf)
		for key, value := range map[string]string{"name": "Ana", "date": "2024-06-01", "time": "10:00-11:00", "bookingCode": "BS1", "packagePrice": "150000"} {
			_ = w.WriteField(key, value)
		}
		_ = w.Close()

		req := httptest.NewRequest(http.MethodPost, "/exec", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		return req
	}

	queryReq := func() *http.Request {
		return httptest.NewRequest(http.MethodPost, "/exec?name=Ana&date=2024-06-01&time=10:00-11:00&bookingCode=BS1&packagePrice=150000", nil)
	}

	tests := map[string]struct {
		build func() *http.Request
		data  string
	}{
		"json":      {build: jsonReq, data: `{"bookingCode":"BS1"}`},
		"multipart": {build: multipartReq, data: `null`},
		"query":     {build: queryReq, data: `null`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBooking(ctrl)

			svc.EXPECT().Create(gomock.Any(), want).Return(dto.CreateBookingResponse{BookingCode: "BS1"}, nil)

			code, env := do(t, newRouter(svc), tt.build())
			assert.Equal(t, http.StatusCreated, code)
			assert.JSONEq(t, tt.data, string(env.Data))
		})
	}
}

func TestCreateBooking_BadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newRouter(mocks.NewMockBooking(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	code, env := do(t, router, req)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "error", env.Status)

	code, env = do(t, router, postForm("/v1/bookings", url.Values{"bookingCode": {strings.Repeat("X", 65)}}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bookingCode must be at most 64 characters", env.Message)
}

func TestServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		status  string
		message string
	}{
		{
			name:    "missing sheet",
			err:     failure.Misconfigured("Sheet %q tidak ditemukan", "Bookings"),
			code:    http.StatusInternalServerError,
			status:  "error",
			message: `Sheet "Bookings" tidak ditemukan`,
		},
		{
			name:    "unexpected",
			err:     errors.New("connection reset"),
			code:    http.StatusInternalServerError,
			status:  "error",
			message: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBooking(ctrl)
			router := newRouter(svc)

			svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, tt.err)
			svc.EXPECT().GetBookedSlots(gomock.Any(), "2024-06-01").Return(dto.BookedSlotsResponse{}, tt.err)
			svc.EXPECT().GetByCode(gomock.Any(), "BS1").Return(dto.BookingResponse{}, tt.err)

			for _, req := range []*http.Request{
				postForm("/exec", bookingForm("BS1", "10:00-11:00")),
				httptest.NewRequest(http.MethodGet, "/exec?action=getBookedSlots&date=2024-06-01", nil),
				httptest.NewRequest(http.MethodGet, "/exec?code=BS1", nil),
			} {
				code, env := do(t, router, req)
				assert.Equal(t, tt.code, code)
				assert.Equal(t, tt.status, env.Status)
				assert.Equal(t, tt.message, env.Message)
			}
		})
	}
}
