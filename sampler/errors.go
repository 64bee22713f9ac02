package sampler

import (
	"errors"
	"fmt"
)

// ErrConfig is matched (via errors.Is) by every configuration error returned by New.
var ErrConfig = errors.New("sampler: invalid configuration")

// Configuration errors. Each is fatal at construction time.
var (
	// ErrInvalidShape indicates a missing shape or an axis length that is not positive and finite.
	ErrInvalidShape = errors.New("sampler: shape must have at least one positive, finite axis")

	// ErrInvalidDistance indicates MinDistance ≤ 0, a non-finite value, or MaxDistance < MinDistance.
	ErrInvalidDistance = errors.New("sampler: distances must satisfy 0 < MinDistance ≤ MaxDistance")

	// ErrInvalidTries indicates a negative MaxTries.
	ErrInvalidTries = errors.New("sampler: MaxTries must not be negative")

	// ErrInvalidBias indicates a bias outside [0, 1].
	ErrInvalidBias = errors.New("sampler: Bias must lie in [0, 1]")

	// ErrDensityRequired indicates the variable-density variant was requested without a density field.
	ErrDensityRequired = errors.New("sampler: variable density requires a density field")

	// ErrDensityForbidden indicates the fixed-density variant was requested with a density field.
	ErrDensityForbidden = errors.New("sampler: fixed density does not accept a density field")

	// ErrInvalidVariant indicates a Variant value outside Auto, Fixed and Variable.
	ErrInvalidVariant = errors.New("sampler: unknown variant")

	// ErrGridTooLarge indicates the acceleration grid for shape and distances is too large to allocate.
	ErrGridTooLarge = errors.New("sampler: acceleration grid too large")
)

// ErrUnsupported is returned by operations the selected variant does not provide,
// e.g. PointsWithDensity on a fixed-density sampler. It is recoverable.
var ErrUnsupported = errors.New("sampler: operation not supported by this variant")

// configError is a configuration failure that matches both ErrConfig and its cause.
type configError struct {
	cause  error
	detail string
}

func (e *configError) Error() string {
	if e.detail == "" {
		return e.cause.Error()
	}
	return e.cause.Error() + ": " + e.detail
}

func (e *configError) Is(target error) bool { return target == ErrConfig }

func (e *configError) Unwrap() error { return e.cause }

// configErrorf wraps a configuration sentinel with formatted context.
func configErrorf(cause error, format string, args ...any) error {
	return &configError{cause: cause, detail: fmt.Sprintf(format, args...)}
}
