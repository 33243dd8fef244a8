package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/model/dto"
	"bloom/internal/domains/booking/notifier"
	"bloom/internal/domains/booking/repository"
	"bloom/internal/domains/booking/slot"
	"bloom/shared"
	"bloom/shared/cache"
	"bloom/shared/constant"
	"bloom/shared/failure"
	"bloom/shared/lock"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheBookedSlots     = "booking:slots"
	cacheSlotsGeneration = "booking:generation"

	MessageCreated      = "Booking berhasil disimpan"
	MessageBookedSlots  = "Booked slots retrieved"
	MessageFound        = "Booking ditemukan"
	MessageNotFound     = "Booking tidak ditemukan"
	MessageCodeMissing  = "Kode booking kosong"
	MessageSlotTaken    = "Jam ini sudah dibooking, silakan pilih jam lain"
	messageSheetMissing = "Sheet %q tidak ditemukan"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetBookedSlots(ctx context.Context, date string) (dto.BookedSlotsResponse, error)
	GetByCode(ctx context.Context, code string) (dto.BookingResponse, error)
	// InvalidateSlots drops every cached booked-slot list, for edits made
	// to the table outside the API.
	InvalidateSlots(ctx context.Context)
}

type serviceImpl struct {
	repo     repository.RowStore
	locker   lock.Locker
	notifier notifier.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.RowStore, locker lock.Locker, notifier notifier.Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		locker:   locker,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// slotsEntry is a cached booked-slot list tagged with the generation of its
// date at the time the table was scanned.
type slotsEntry struct {
	Generation  int64    `json:"generation"`
	BookedSlots []string `json:"bookedSlots"`
}

// storeError maps a missing table onto the configuration failure every
// entry point reports.
func (s *serviceImpl) storeError(err error, action string) error {
	if errors.Is(err, repository.ErrSheetNotFound) {
		return failure.Misconfigured(messageSheetMissing, s.cfg.Booking.SheetName) // nolint:wrapcheck
	}

	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking := req.ToModel(s.cfg.Booking.DefaultStatus)
	if booking.BookingCode == constant.Empty {
		booking.BookingCode = dto.GenerateBookingCode(booking.CreatedAt)
	}

	scope.SetAttributes(map[string]any{
		"booking.date": booking.Date,
		"booking.time": booking.Time,
		"booking.code": booking.BookingCode,
	})

	if err = s.store(ctx, booking); err != nil {
		return res, err
	}

	scope.AddEvent("booking stored")

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheBookedSlots, booking.Date)); err != nil {
		log.Error().Err(err).Str("date", booking.Date).Msg("failed to invalidate booked slots cache")
	}

	s.notify(ctx, booking)

	res.BookingCode = booking.BookingCode

	return res, nil
}

// store appends booking unless its slot is taken. The slot lock is held
// across the scan and the append.
func (s *serviceImpl) store(ctx context.Context, booking model.Booking) error {
	unlock, err := s.locker.Lock(ctx, slot.Key(booking.Date, booking.Time))
	if err != nil {
		log.Error().Err(err).Str("date", booking.Date).Str("time", booking.Time).Msg("failed to lock slot")

		return fmt.Errorf("failed to lock slot: %w", err)
	}
	defer unlock()

	table, err := s.repo.ScanAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan bookings")

		return s.storeError(err, "scan bookings")
	}

	for _, row := range table.Rows {
		date, clock := slot.Of(row)
		if date == booking.Date && clock == booking.Time {
			log.Info().Str("date", date).Str("time", clock).Msg("slot already booked")

			return failure.Conflict(MessageSlotTaken) // nolint:wrapcheck
		}
	}

	if err = s.repo.Append(ctx, booking.ToRow()); err != nil {
		log.Error().Err(err).Msg("failed to append booking")

		return s.storeError(err, "append booking")
	}

	if _, err = s.cache.Incr(ctx, shared.BuildCacheKey(cacheSlotsGeneration, booking.Date)); err != nil {
		log.Error().Err(err).Str("date", booking.Date).Msg("failed to bump booked slots generation")
	}

	return nil
}

// notify sends the confirmation without letting its outcome reach the caller.
func (s *serviceImpl) notify(ctx context.Context, booking model.Booking) {
	timeout := time.Duration(s.cfg.Booking.Notifier.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	err := s.notifier.Notify(c, notifier.Confirmation{
		Email:   booking.Email,
		Name:    booking.Name,
		Phone:   booking.Phone,
		Code:    booking.BookingCode,
		Date:    booking.Date,
		Time:    booking.Time,
		Package: booking.Package,
	})
	if err != nil {
		log.Error().Err(err).Str("code", booking.BookingCode).Msg("failed to send booking confirmation")
	}
}

// GetBookedSlots lists the times booked on date in table order. A cached
// list is only served while the table exists and no booking was stored for
// date since the list was scanned.
func (s *serviceImpl) GetBookedSlots(ctx context.Context, date string) (res dto.BookedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookedSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date = slot.NormalizeDate(date)
	cacheKey := shared.BuildCacheKey(cacheBookedSlots, date)

	generation, cacheable := s.slotsGeneration(ctx, date)

	if cacheable {
		var entry slotsEntry
		if err = s.cache.Get(ctx, cacheKey, &entry); err == nil && entry.Generation == generation {
			if err = s.ensureTable(ctx); err != nil {
				return res, err
			}

			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booked slots")

			res.BookedSlots = entry.BookedSlots

			return res, nil
		}
	}

	table, err := s.repo.ScanAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan bookings")

		return res, s.storeError(err, "scan bookings")
	}

	res.BookedSlots = make([]string, 0)

	for _, row := range table.Rows {
		rowDate, rowTime := slot.Of(row)
		if rowDate == date && rowTime != constant.Empty {
			res.BookedSlots = append(res.BookedSlots, rowTime)
		}
	}

	if !cacheable {
		return res, nil
	}

	if current, ok := s.slotsGeneration(ctx, date); !ok || current != generation {
		log.Debug().Str("date", date).Msg("booking stored during scan, not caching booked slots")

		return res, nil
	}

	entry := slotsEntry{Generation: generation, BookedSlots: res.BookedSlots}
	if err := s.cache.Save(ctx, cacheKey, entry, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booked slots to cache")
	}

	return res, nil
}

// slotsGeneration reads how many bookings were stored for date. ok is false
// when caching is disabled or the counter cannot be read.
func (s *serviceImpl) slotsGeneration(ctx context.Context, date string) (generation int64, ok bool) {
	if s.cfg.Cache.TTL <= 0 {
		return 0, false
	}

	err := s.cache.Get(ctx, shared.BuildCacheKey(cacheSlotsGeneration, date), &generation)
	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("date", date).Msg("booked slots generation unavailable, bypassing cache")

		return 0, false
	}

	return generation, true
}

// ensureTable reports the missing-sheet failure without scanning rows.
func (s *serviceImpl) ensureTable(ctx context.Context) error {
	exists, err := s.repo.Exists(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to check bookings table")

		return s.storeError(err, "check bookings table")
	}

	if !exists {
		return s.storeError(repository.ErrSheetNotFound, "check bookings table")
	}

	return nil
}

func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureTable(ctx); err != nil {
		return res, err
	}

	if code == constant.Empty {
		return res, failure.BadRequestFromString(MessageCodeMissing) // nolint:wrapcheck
	}

	table, err := s.repo.ScanAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to scan bookings")

		return res, s.storeError(err, "scan bookings")
	}

	for _, row := range table.Rows {
		if cell, ok := row.Cell(model.ColBookingCode).(string); ok && cell == code {
			res.FromRow(row)

			return res, nil
		}
	}

	return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
}

func (s *serviceImpl) InvalidateSlots(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InvalidateSlots")
	defer scope.End()

	shared.InvalidateCaches(ctx, s.cache, cacheBookedSlots)
}
