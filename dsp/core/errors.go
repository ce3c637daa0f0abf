package core

import "github.com/joomcode/errorx"

// Errors is the namespace shared by every karafx error type.
var Errors = errorx.NewNamespace("karafx")

var (
	// ErrInvalidConfiguration marks a rejected config or call argument:
	// non-positive chunk size, non-positive sample rate, negative channel count.
	// It is fatal to the call and no partial result is produced.
	ErrInvalidConfiguration = Errors.NewType("invalid_configuration")

	// ErrUnsupportedEffect marks an unrecognised effect tag. It is never
	// returned from processing; the effect degrades to a pass-through.
	ErrUnsupportedEffect = Errors.NewType("unsupported_effect")

	// ErrNumericBackend marks a failure to initialise or run a numeric backend.
	ErrNumericBackend = Errors.NewType("numeric_backend")
)
