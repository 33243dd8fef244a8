package admin

import (
	"bloom/infras/otel"
	"bloom/internal/domains/booking/backup"
	"bloom/internal/domains/booking/service"
	"bloom/shared/constant"
	"bloom/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageBackupUploaded = "Backup uploaded"
	MessageCacheCleared   = "Booked slots cache cleared"
)

type Handler struct {
	backup  backup.Backup
	booking service.Booking
	otel    otel.Otel
}

func New(backup backup.Backup, booking service.Booking, otel otel.Otel) Handler {
	return Handler{
		backup:  backup,
		booking: booking,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/backups", handler.CreateBackup)
		routerGroup.Delete("/cache/slots", handler.ClearSlotsCache)
	})
}

// CreateBackup uploads a CSV snapshot of the Bookings sheet right away.
// @Summary Back the bookings up now
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} response.Envelope{data=backup.Result}
// @Failure 403 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/admin/backups [post]
func (handler *Handler) CreateBackup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBackup")
	defer scope.End()

	res, err := handler.backup.Run(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to back bookings up")

		response.WithError(writer, err)

		return
	}

	response.WithData(writer, http.StatusCreated, response.StatusSuccess, MessageBackupUploaded, res)
}

// ClearSlotsCache forgets the cached booked slots after the table was edited by hand.
// @Summary Clear the booked slots cache
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /v1/admin/cache/slots [delete]
func (handler *Handler) ClearSlotsCache(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearSlotsCache")
	defer scope.End()

	handler.booking.InvalidateSlots(ctx)

	response.WithMessage(writer, http.StatusOK, response.StatusSuccess, MessageCacheCleared)
}
