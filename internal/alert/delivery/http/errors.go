package http

import (
	"net/http"

	"smap-embeds/internal/alert"
	pkgErrors "smap-embeds/pkg/errors"

	"github.com/friendsofgo/errors"
)

const (
	ValidationErrorCode = 400

	ErrCodeInvalidInput   = 120001
	ErrCodeDispatchFailed = 120002
)

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, alert.ErrInvalidInput):
		return pkgErrors.NewHTTPError(ErrCodeInvalidInput, err.Error(), http.StatusBadRequest)
	case errors.Is(err, alert.ErrDispatchFailed):
		return pkgErrors.NewHTTPError(ErrCodeDispatchFailed, alert.ErrDispatchFailed.Error(), http.StatusBadGateway)
	default:
		return err
	}
}
