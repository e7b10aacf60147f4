package orgdata

import "errors"

var (
	ErrInvalidRange  = errors.New("invalid salary range")
	ErrInvalidDepth  = errors.New("level depth must be at least 1")
	ErrMissingHeader = errors.New("missing header")
	ErrMalformedRow  = errors.New("malformed row")
	ErrWriteOutput   = errors.New("write output failed")
)
