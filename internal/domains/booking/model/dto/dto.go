package dto

import (
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/slot"
	"bloom/shared/constant"
	"bloom/shared/timezone"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	bookingCodePrefix  = "BS"
	bookingCodeRandom  = 5
	bookingCodeCharset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// CreateBookingRequest holds the submitted booking parameters as sent.
// Numbers stay raw text and are coerced by ToModel.
type CreateBookingRequest struct {
	Name           string `form:"name"           validate:"max=200"`
	Email          string `form:"email"          validate:"max=254"`
	Phone          string `form:"phone"          validate:"max=50"`
	Package        string `form:"package"        validate:"max=200"`
	People         string `form:"people"         validate:"max=100"`
	Date           string `form:"date"           validate:"max=64"`
	Time           string `form:"time"           validate:"max=64"`
	Concept        string `form:"concept"        validate:"max=500"`
	Background     string `form:"background"     validate:"max=500"`
	Message        string `form:"message"        validate:"max=2000"`
	BookingCode    string `form:"bookingCode"    validate:"max=64"`
	PackagePrice   string `form:"packagePrice"   validate:"max=32"`
	PaymentType    string `form:"paymentType"    validate:"max=100"`
	PaymentAmount  string `form:"paymentAmount"  validate:"max=32"`
	PaymentMethod  string `form:"paymentMethod"  validate:"max=100"`
	Status         string `form:"status"         validate:"max=100"`
	ExtraPeople    string `form:"extraPeople"    validate:"max=32"`
	ExtraPeopleFee string `form:"extraPeopleFee" validate:"max=32"`
	TotalPrice     string `form:"totalPrice"     validate:"max=32"`
}

// FromValues reads the request from submitted key-value parameters.
func (c *CreateBookingRequest) FromValues(values url.Values) {
	c.Name = values.Get("name")
	c.Email = values.Get("email")
	c.Phone = values.Get("phone")
	c.Package = values.Get("package")
	c.People = values.Get("people")
	c.Date = values.Get(constant.RequestParamDate)
	c.Time = values.Get("time")
	c.Concept = values.Get("concept")
	c.Background = values.Get("background")
	c.Message = values.Get("message")
	c.BookingCode = values.Get("bookingCode")
	c.PackagePrice = values.Get("packagePrice")
	c.PaymentType = values.Get("paymentType")
	c.PaymentAmount = values.Get("paymentAmount")
	c.PaymentMethod = values.Get("paymentMethod")
	c.Status = values.Get("status")
	c.ExtraPeople = values.Get("extraPeople")
	c.ExtraPeopleFee = values.Get("extraPeopleFee")
	c.TotalPrice = values.Get("totalPrice")
}

// ToModel applies the storage defaults: date and time normalized, numbers
// falling back to 0, total falling back to the package price, and status
// falling back to defaultStatus.
func (c *CreateBookingRequest) ToModel(defaultStatus string) model.Booking {
	packagePrice := model.ParseAmount(c.PackagePrice)

	total := model.ParseAmount(c.TotalPrice)
	if total == 0 {
		total = packagePrice
	}

	status := c.Status
	if status == "" {
		status = defaultStatus
	}

	return model.Booking{
		CreatedAt:      timezone.Now(),
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Package:        c.Package,
		People:         c.People,
		Date:           slot.NormalizeDate(c.Date),
		Time:           slot.NormalizeTime(c.Time),
		Concept:        c.Concept,
		Background:     c.Background,
		Message:        c.Message,
		BookingCode:    c.BookingCode,
		PackagePrice:   packagePrice,
		PaymentType:    c.PaymentType,
		PaymentAmount:  model.ParseAmount(c.PaymentAmount),
		PaymentMethod:  c.PaymentMethod,
		Status:         status,
		ExtraPeople:    model.ParseAmount(c.ExtraPeople),
		ExtraPeopleFee: model.ParseAmount(c.ExtraPeopleFee),
		TotalPrice:     total,
	}
}

// GenerateBookingCode returns a code in the format the booking page uses:
// "BS", the base36 millisecond clock and five random base36 characters, upper-cased.
func GenerateBookingCode(now time.Time) string {
	var random strings.Builder

	for range bookingCodeRandom {
		random.WriteByte(bookingCodeCharset[rand.IntN(len(bookingCodeCharset))])
	}

	return strings.ToUpper(bookingCodePrefix + strconv.FormatInt(now.UnixMilli(), 36) + random.String())
}

// BookingResponse is the status lookup payload. Attribute names are part of
// the public contract of the booking page.
type BookingResponse struct {
	Timestamp      any     `json:"timestamp"`
	Nama           string  `json:"nama"`
	Email          string  `json:"email"`
	Telepon        string  `json:"telepon"`
	Paket          string  `json:"paket"`
	JumlahOrang    string  `json:"jumlahOrang"`
	Tanggal        string  `json:"tanggal"`
	Waktu          string  `json:"waktu"`
	Konsep         string  `json:"konsep"`
	Background     string  `json:"background"`
	Pesan          string  `json:"pesan"`
	KodeBooking    string  `json:"kodeBooking"`
	HargaPaket     float64 `json:"hargaPaket"`
	TipePembayaran string  `json:"tipePembayaran"`
	JumlahBayar    float64 `json:"jumlahBayar"`
	MetodeBayar    string  `json:"metodeBayar"`
	Status         string  `json:"status"`
	ExtraOrang     float64 `json:"extraOrang"`
	BiayaTambahan  float64 `json:"biayaTambahan"`
	TotalHarga     float64 `json:"totalHarga"`
}

// FromRow maps a stored row. The date and time are reported normalized.
func (r *BookingResponse) FromRow(row model.Row) {
	var booking model.Booking
	booking.FromRow(row)

	r.Timestamp = row.Cell(model.ColCreatedAt)
	r.Nama = booking.Name
	r.Email = booking.Email
	r.Telepon = booking.Phone
	r.Paket = booking.Package
	r.JumlahOrang = booking.People
	r.Tanggal = slot.NormalizeDate(row.Cell(model.ColDate))
	r.Waktu = slot.NormalizeTime(row.Cell(model.ColTime))
	r.Konsep = booking.Concept
	r.Background = booking.Background
	r.Pesan = booking.Message
	r.KodeBooking = booking.BookingCode
	r.HargaPaket = booking.PackagePrice
	r.TipePembayaran = booking.PaymentType
	r.JumlahBayar = booking.PaymentAmount
	r.MetodeBayar = booking.PaymentMethod
	r.Status = booking.Status
	r.ExtraOrang = booking.ExtraPeople
	r.BiayaTambahan = booking.ExtraPeopleFee
	r.TotalHarga = booking.EffectiveTotal()
}

type BookedSlotsResponse struct {
	BookedSlots []string `json:"bookedSlots"`
}

type CreateBookingResponse struct {
	BookingCode string `json:"bookingCode"`
}
