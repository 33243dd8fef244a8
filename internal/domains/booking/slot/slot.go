// Package slot turns submitted and stored date/time cells into canonical
// strings so that the same studio slot always compares equal.
package slot

import (
	"bloom/internal/domains/booking/model"
	"bloom/shared/constant"
	"bloom/shared/timezone"
	"regexp"
	"strings"
	"time"
)

const (
	enDash       = "–"
	keySeparator = "|"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	spacedDash = regexp.MustCompile(`\s*-\s*`)
)

// NormalizeDate formats native times as YYYY-MM-DD in the app timezone and
// trims anything else.
func NormalizeDate(value any) string {
	switch v := value.(type) {
	case time.Time:
		return timezone.Format(v, constant.DayFormat)
	case *time.Time:
		if v == nil {
			return ""
		}

		return timezone.Format(*v, constant.DayFormat)
	}

	return strings.TrimSpace(model.CellString(value))
}

// NormalizeTime collapses whitespace, turns en dashes into hyphens and drops
// the spaces around them: "10:00 – 11:00" becomes "10:00-11:00".
func NormalizeTime(value any) string {
	text := model.CellString(value)
	text = strings.ReplaceAll(text, enDash, "-")
	text = whitespace.ReplaceAllString(text, " ")
	text = spacedDash.ReplaceAllString(text, "-")

	return strings.TrimSpace(text)
}

// Key identifies a slot for locking and cache lookups.
func Key(date, clock string) string {
	return date + keySeparator + clock
}

// Of extracts the normalized (date, time) pair of a stored row.
func Of(row model.Row) (date, clock string) {
	return NormalizeDate(row.Cell(model.ColDate)), NormalizeTime(row.Cell(model.ColTime))
}
