package http

import (
	"net/http"

	"smap-embeds/internal/embed"
	"smap-embeds/pkg/embeds"
	pkgErrors "smap-embeds/pkg/errors"

	"github.com/friendsofgo/errors"
)

const ValidationErrorCode = 400

const (
	ErrCodeLimit = 110001 + iota
	ErrCodeConflict
	ErrCodeType
	ErrCodeInvalidValue
	ErrCodeNoEmbeds
	ErrCodeStorageDisabled
	ErrCodeObjectNotFound
	ErrCodeFileTooLarge
	ErrCodeDelivery
	ErrCodeInvalidObject
	ErrCodeObjectForbidden
)

// mapError turns usecase errors into HTTP errors. Anything unmapped is
// returned as is and becomes a reported 500.
func (h *Handler) mapError(err error) error {
	var (
		limitErr    *embeds.LimitError
		conflictErr *embeds.ConflictError
		typeErr     *embeds.TypeError
	)
	switch {
	case errors.As(err, &limitErr):
		return pkgErrors.NewHTTPError(ErrCodeLimit, limitErr.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &conflictErr):
		return pkgErrors.NewHTTPError(ErrCodeConflict, conflictErr.Error(), http.StatusBadRequest)
	case errors.As(err, &typeErr):
		return pkgErrors.NewHTTPError(ErrCodeType, typeErr.Error(), http.StatusBadRequest)
	case errors.Is(err, embeds.ErrUnknownLimit),
		errors.Is(err, embeds.ErrNegativeLimit),
		errors.Is(err, embeds.ErrInvalidURL),
		errors.Is(err, embeds.ErrInvalidColour),
		errors.Is(err, embeds.ErrMissingText),
		errors.Is(err, embeds.ErrDuplicateFile):
		return pkgErrors.NewHTTPError(ErrCodeInvalidValue, err.Error(), http.StatusBadRequest)
	case errors.Is(err, embed.ErrNoEmbeds):
		return pkgErrors.NewHTTPError(ErrCodeNoEmbeds, err.Error(), http.StatusBadRequest)
	case errors.Is(err, embed.ErrStorageDisabled):
		return pkgErrors.NewHTTPError(ErrCodeStorageDisabled, embed.ErrStorageDisabled.Error(), http.StatusBadRequest)
	case errors.Is(err, embed.ErrObjectNotFound):
		return pkgErrors.NewHTTPError(ErrCodeObjectNotFound, err.Error(), http.StatusNotFound)
	case errors.Is(err, embed.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(ErrCodeFileTooLarge, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, embed.ErrInvalidObject):
		return pkgErrors.NewHTTPError(ErrCodeInvalidObject, err.Error(), http.StatusBadRequest)
	case errors.Is(err, embed.ErrObjectForbidden):
		return pkgErrors.NewHTTPError(ErrCodeObjectForbidden, err.Error(), http.StatusForbidden)
	case errors.Is(err, embed.ErrDeliveryFailed):
		return pkgErrors.NewHTTPError(ErrCodeDelivery, embed.ErrDeliveryFailed.Error(), http.StatusBadGateway)
	default:
		return err
	}
}
