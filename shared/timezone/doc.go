// Package timezone holds the studio's configured time zone.
//
// Booking dates are compared as calendar days, so every time.Time that
// reaches the booking store is formatted through this package:
//
//	day := timezone.Format(createdAt, "2006-01-02")
//
// The zone is read from APP_TIMEZONE ("Asia/Jakarta", "UTC", ...) when the
// package is first imported; tests may call Set to pin a zone.
package timezone
