package osc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAddress  = errors.New("osc: address must be non-empty and start with '/'")
	ErrMalformed       = errors.New("osc: malformed packet")
	ErrNoMemory        = errors.New("osc: insufficient buffer capacity")
	ErrNotInitialized  = errors.New("osc: not initialized")
	ErrUnsupportedType = errors.New("osc: unsupported argument type")
	ErrInvalidString   = errors.New("osc: string contains NUL")
	ErrInvalidBlob     = errors.New("osc: invalid blob")
)

// Detail errors are built once so that failing calls never allocate.
var (
	errBadLength          = fmt.Errorf("%w: length is not a positive multiple of 4", ErrMalformed)
	errNoLeadingSlash     = fmt.Errorf("%w: address does not start with '/'", ErrMalformed)
	errUnterminatedAddr   = fmt.Errorf("%w: unterminated address", ErrMalformed)
	errUnterminatedTags   = fmt.Errorf("%w: unterminated type tags", ErrMalformed)
	errUnterminatedString = fmt.Errorf("%w: unterminated string argument", ErrMalformed)
	errUnknownTag         = fmt.Errorf("%w: unknown type tag", ErrMalformed)
	errNegativeBlob       = fmt.Errorf("%w: negative blob length", ErrMalformed)
	errTruncated          = fmt.Errorf("%w: argument overruns packet", ErrMalformed)
	errBundleHeader       = fmt.Errorf("%w: bad bundle header", ErrMalformed)
	errBundleElement      = fmt.Errorf("%w: bad bundle element length", ErrMalformed)
	errBundleContent      = fmt.Errorf("%w: bundle element is neither message nor bundle", ErrMalformed)
)
