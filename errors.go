package tim2

import "github.com/pkg/errors"

// Sentinel error kinds. Use errors.Is to test for a specific kind; wrapped
// messages carry the offending value for diagnostics.
var (
	ErrInvalidIdentifier        = errors.New("tim2: invalid identifier")
	ErrInvalidBppFormat         = errors.New("tim2: invalid bpp format code")
	ErrInvalidBpp               = errors.New("tim2: invalid normalized bit depth")
	ErrTrueColorAndPaletteFound = errors.New("tim2: true color frame declares a palette")
	ErrInvalidColorSampleSize   = errors.New("tim2: invalid color sample size")
	ErrUnexpectedEndOfInput     = errors.New("tim2: unexpected end of input")
	ErrIO                       = errors.New("tim2: i/o error")
)
