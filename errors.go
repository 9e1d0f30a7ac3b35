package resample

import "errors"

var (
	// ErrInvalidArgument reports a violated precondition, such as too few
	// samples, too few points, or a non-positive spacing. The wrapping error
	// names the offending value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedValueType reports a dynamically typed point whose type has
	// no distance primitive. It is only returned by the dynamically typed
	// entry points; the generic API rejects such types at compile time.
	ErrUnsupportedValueType = errors.New("unsupported value type")
)
