package response

import (
	"encoding/json"
	"net/http"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/logger"
)

type Error struct {
	Detail string `json:"detail"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends the payload as the response body without an envelope
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithError sends a response with an error detail. Errors without a failure code become 500,
// and server-side details are replaced with the status text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	detail := err.Error()
	if code >= http.StatusInternalServerError {
		detail = http.StatusText(code)
	}

	response(writer, code, Error{Detail: detail})
}

// WithDetail sends an error response with the given status and detail text
func WithDetail(writer http.ResponseWriter, code int, detail string) {
	response(writer, code, Error{Detail: detail})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithDetail(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
