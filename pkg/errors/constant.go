package errors

import "net/http"

const (
	StatusBadRequest          = http.StatusBadRequest          // 400
	StatusNotFound            = http.StatusNotFound            // 404
	StatusUnprocessableEntity = http.StatusUnprocessableEntity // 422
	StatusBadGateway          = http.StatusBadGateway          // 502
	StatusServiceUnavailable  = http.StatusServiceUnavailable  // 503
)
