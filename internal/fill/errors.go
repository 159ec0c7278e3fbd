package fill

import "errors"

var (
	// ErrInvalidProbability is returned for probabilities outside the op's domain.
	ErrInvalidProbability = errors.New("invalid probability")

	// ErrInvalidStdDev is returned for negative or NaN standard deviations.
	ErrInvalidStdDev = errors.New("invalid standard deviation")

	// ErrInvalidFan is returned when fan-in or fan-out is not positive.
	ErrInvalidFan = errors.New("invalid fan-in/fan-out")
)
