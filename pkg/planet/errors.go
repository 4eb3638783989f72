package planet

import "errors"

// ErrInvalidArgument marks contract violations the caller controls directly
// (sample counts, interpolation factors, terraform edits). Measurement data
// is never rejected with this error; bad measurements are clamped instead.
var ErrInvalidArgument = errors.New("invalid argument")
