package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	EntityName = "booking"

	DefaultStatus = "Menunggu Konfirmasi"
)

// Column positions of a booking row. The order is the public layout of the
// Bookings sheet and must not change.
const (
	ColCreatedAt = iota
	ColName
	ColEmail
	ColPhone
	ColPackage
	ColPeople
	ColDate
	ColTime
	ColConcept
	ColBackground
	ColMessage
	ColBookingCode
	ColPackagePrice
	ColPaymentType
	ColPaymentAmount
	ColPaymentMethod
	ColStatus
	ColExtraPeople
	ColExtraPeopleFee
	ColTotalPrice

	ColumnCount
)

// Header is the declared first line of the Bookings sheet.
var Header = []string{
	"Timestamp",
	"Nama",
	"Email",
	"Telepon",
	"Paket",
	"Jumlah Orang",
	"Tanggal",
	"Waktu",
	"Konsep",
	"Background",
	"Pesan",
	"ID Booking",
	"Harga Paket",
	"Tipe Pembayaran",
	"Jumlah Bayar",
	"Metode Bayar",
	"Status",
	"Extra Orang",
	"Biaya Tambahan",
	"Total Harga",
}

// Row is one line of the sheet. Cells are whatever the backing store hands
// back: strings, numbers, or time.Time for date-typed columns.
type Row []any

// Cell returns the value at position i, or nil when the row is short.
func (r Row) Cell(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}

	return r[i]
}

// Table is a snapshot of the sheet. Rows never contain the header.
type Table struct {
	Header []string
	Rows   []Row
}

// Booking is the typed form of a row, used by stores with typed columns.
type Booking struct {
	CreatedAt      time.Time `db:"created_at"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	Package        string    `db:"package"`
	People         string    `db:"people_label"`
	Date           string    `db:"booking_date"`
	Time           string    `db:"booking_time"`
	Concept        string    `db:"concept"`
	Background     string    `db:"background"`
	Message        string    `db:"message"`
	BookingCode    string    `db:"booking_code"`
	PackagePrice   float64   `db:"package_price"`
	PaymentType    string    `db:"payment_type"`
	PaymentAmount  float64   `db:"payment_amount"`
	PaymentMethod  string    `db:"payment_method"`
	Status         string    `db:"status"`
	ExtraPeople    float64   `db:"extra_people_count"`
	ExtraPeopleFee float64   `db:"extra_people_fee"`
	TotalPrice     float64   `db:"total_price"`
}

func (b Booking) ToRow() Row {
	return Row{
		b.CreatedAt,
		b.Name,
		b.Email,
		b.Phone,
		b.Package,
		b.People,
		b.Date,
		b.Time,
		b.Concept,
		b.Background,
		b.Message,
		b.BookingCode,
		b.PackagePrice,
		b.PaymentType,
		b.PaymentAmount,
		b.PaymentMethod,
		b.Status,
		b.ExtraPeople,
		b.ExtraPeopleFee,
		b.TotalPrice,
	}
}

// FromRow fills b from a row. The date cell must already be normalized by
// the caller when it may hold a time.Time.
func (b *Booking) FromRow(row Row) {
	if createdAt, ok := row.Cell(ColCreatedAt).(time.Time); ok {
		b.CreatedAt = createdAt
	}

	b.Name = CellString(row.Cell(ColName))
	b.Email = CellString(row.Cell(ColEmail))
	b.Phone = CellString(row.Cell(ColPhone))
	b.Package = CellString(row.Cell(ColPackage))
	b.People = CellString(row.Cell(ColPeople))
	b.Date = CellString(row.Cell(ColDate))
	b.Time = CellString(row.Cell(ColTime))
	b.Concept = CellString(row.Cell(ColConcept))
	b.Background = CellString(row.Cell(ColBackground))
	b.Message = CellString(row.Cell(ColMessage))
	b.BookingCode = CellString(row.Cell(ColBookingCode))
	b.PackagePrice = CellNumber(row.Cell(ColPackagePrice))
	b.PaymentType = CellString(row.Cell(ColPaymentType))
	b.PaymentAmount = CellNumber(row.Cell(ColPaymentAmount))
	b.PaymentMethod = CellString(row.Cell(ColPaymentMethod))
	b.Status = CellString(row.Cell(ColStatus))
	b.ExtraPeople = CellNumber(row.Cell(ColExtraPeople))
	b.ExtraPeopleFee = CellNumber(row.Cell(ColExtraPeopleFee))
	b.TotalPrice = CellNumber(row.Cell(ColTotalPrice))
}

// EffectiveTotal is total_price, falling back to package_price, then 0.
// Legacy rows were written before the total column existed.
func (b Booking) EffectiveTotal() float64 {
	if b.TotalPrice != 0 {
		return b.TotalPrice
	}

	return b.PackagePrice
}

// CellString renders a cell as text.
func CellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// CellNumber reads a cell as a non-negative number. Anything that is not a
// finite number >= 0 counts as 0.
func CellNumber(value any) float64 {
	var number float64

	switch v := value.(type) {
	case float64:
		number = v
	case float32:
		number = float64(v)
	case int:
		number = float64(v)
	case int64:
		number = float64(v)
	case string:
		return ParseAmount(v)
	case []byte:
		return ParseAmount(string(v))
	}

	if math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return 0
	}

	return number
}

// ParseAmount parses a submitted numeric field with fallback 0.
func ParseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	number, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) || number < 0 {
		return 0
	}

	return number
}
