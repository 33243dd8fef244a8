package response

import (
	"bloom/shared/constant"
	"bloom/shared/failure"
	"bloom/shared/logger"
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusFound    = "found"
	StatusNotFound = "not_found"
)

// Envelope is the body of every response. Data is null when there is nothing to return.
type Envelope struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Booking berhasil disimpan"`
	Data    any    `json:"data"`
}

// WithMessage sends an envelope without data
func WithMessage(writer http.ResponseWriter, code int, status, message string) {
	response(writer, code, Envelope{Status: status, Message: message})
}

// WithData sends an envelope carrying data
func WithData(writer http.ResponseWriter, code int, status, message string, data any) {
	response(writer, code, Envelope{Status: status, Message: message, Data: data})
}

// WithError sends the envelope for err. A not found failure keeps its own status.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	status := StatusError
	if code == http.StatusNotFound {
		status = StatusNotFound
	}

	WithMessage(writer, code, status, err.Error())
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, StatusError, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, StatusError, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, StatusError, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body, _ = json.Marshal(Envelope{Status: StatusError, Message: err.Error()})
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
