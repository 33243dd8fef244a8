package booking

import (
	"bloom/infras/otel"
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/model/dto"
	"bloom/internal/domains/booking/service"
	"bloom/shared/constant"
	"bloom/shared/failure"
	"bloom/shared/validator"
	"bloom/transport/http/response"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.Query)
		routerGroup.Get("/slots", handler.GetBookedSlots)
		routerGroup.Get("/{code}", handler.GetBookingByCode)
	})
}

// Exec mounts the single endpoint the booking page was written against:
// POST stores a booking, GET answers slot and status queries.
func (handler *Handler) Exec(router chi.Router) {
	router.Post("/exec", handler.ExecCreateBooking)
	router.Get("/exec", handler.Query)
}

// requestValues collects the submitted parameters from the query string and
// a form, multipart or flat JSON body.
func requestValues(request *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get(constant.RequestHeaderContentType))

	switch mediaType {
	case constant.ContentTypeJSON:
		values := request.URL.Query()

		var body map[string]any
		if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
			return nil, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
		}

		for key, value := range body {
			values.Set(key, model.CellString(value))
		}

		return values, nil
	case constant.ContentTypeMultipartFormData:
		if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return nil, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
		}
	default:
		if err := request.ParseForm(); err != nil {
			return nil, failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
		}
	}

	return request.Form, nil
}

// CreateBooking stores a booking unless its slot is already taken.
// @Summary Create a booking
// @Description Store a studio booking. Parameters may come as query string, form or JSON body.
// @Tags Booking
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param name formData string false "Customer name"
// @Param email formData string false "Customer email, receives the confirmation"
// @Param phone formData string false "Customer phone"
// @Param package formData string false "Package name"
// @Param people formData string false "People label"
// @Param date formData string false "Booking date (YYYY-MM-DD)"
// @Param time formData string false "Booking time, e.g. 10:00-11:00"
// @Param bookingCode formData string false "Booking code, generated when omitted"
// @Param packagePrice formData number false "Package price"
// @Param totalPrice formData number false "Total price, defaults to the package price"
// @Success 201 {object} response.Envelope{data=dto.CreateBookingResponse} "Booking berhasil disimpan"
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope "Jam ini sudah dibooking, silakan pilih jam lain"
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	handler.createBooking(writer, request, true)
}

// ExecCreateBooking answers like the booking page expects: no payload on success.
func (handler *Handler) ExecCreateBooking(writer http.ResponseWriter, request *http.Request) {
	handler.createBooking(writer, request, false)
}

func (handler *Handler) createBooking(writer http.ResponseWriter, request *http.Request, withCode bool) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	values, err := requestValues(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read booking parameters")

		response.WithError(writer, err)

		return
	}

	req := dto.CreateBookingRequest{}
	req.FromValues(values)

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.BookingCode)

	if !withCode {
		response.WithMessage(writer, http.StatusCreated, response.StatusSuccess, service.MessageCreated)

		return
	}

	response.WithData(writer, http.StatusCreated, response.StatusSuccess, service.MessageCreated, res)
}

// Query answers action=getBookedSlots&date=D, or else the status lookup by code.
// @Summary Query bookings
// @Description With action=getBookedSlots returns the booked times of a date, otherwise looks a booking up by code.
// @Tags Booking
// @Produce json
// @Param action query string false "getBookedSlots"
// @Param date query string false "Date (YYYY-MM-DD) for getBookedSlots"
// @Param code query string false "Booking code"
// @Success 200 {object} response.Envelope{data=dto.BookingResponse}
// @Failure 400 {object} response.Envelope "Kode booking kosong"
// @Failure 404 {object} response.Envelope "Booking tidak ditemukan"
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings [get]
func (handler *Handler) Query(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	if query.Get(constant.RequestParamAction) == constant.ActionGetBookedSlots {
		handler.bookedSlots(writer, request, query.Get(constant.RequestParamDate))

		return
	}

	handler.lookup(writer, request, query.Get(constant.RequestParamCode))
}

// GetBookedSlots lists the booked times of a date in booking order.
// @Summary Booked slots of a date
// @Tags Booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=dto.BookedSlotsResponse} "Booked slots retrieved"
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings/slots [get]
func (handler *Handler) GetBookedSlots(writer http.ResponseWriter, request *http.Request) {
	handler.bookedSlots(writer, request, request.URL.Query().Get(constant.RequestParamDate))
}

// GetBookingByCode looks a booking up by its code.
// @Summary Booking status by code
// @Tags Booking
// @Produce json
// @Param code path string true "Booking code"
// @Success 200 {object} response.Envelope{data=dto.BookingResponse} "Booking ditemukan"
// @Failure 404 {object} response.Envelope "Booking tidak ditemukan"
// @Failure 500 {object} response.Envelope
// @Router /v1/bookings/{code} [get]
func (handler *Handler) GetBookingByCode(writer http.ResponseWriter, request *http.Request) {
	handler.lookup(writer, request, chi.URLParam(request, constant.RequestParamCode))
}

func (handler *Handler) bookedSlots(writer http.ResponseWriter, request *http.Request, date string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookedSlots")
	defer scope.End()

	res, err := handler.service.GetBookedSlots(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get booked slots")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, response.StatusSuccess, service.MessageBookedSlots, res)
}

func (handler *Handler) lookup(writer http.ResponseWriter, request *http.Request, code string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByCode")
	defer scope.End()

	res, err := handler.service.GetByCode(ctx, code)
	if err != nil {
		if !failure.IsNotFound(err) {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to get booking")
		}

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusOK, response.StatusFound, service.MessageFound, res)
}
