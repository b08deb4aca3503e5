package embed

import "errors"

var (
	ErrNoEmbeds        = errors.New("at least one embed is required")
	ErrStorageDisabled = errors.New("uploaded files are not enabled")
	ErrObjectNotFound  = errors.New("uploaded file not found")
	ErrFileTooLarge    = errors.New("uploaded file is too large")
	ErrInvalidObject   = errors.New("invalid bucket or object name")
	ErrObjectForbidden = errors.New("uploaded file is not accessible")
	ErrDeliveryFailed  = errors.New("failed to deliver message")
)
