package convchain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the umbrella for every construction failure of
// BuildWeightTable and New. No partial value is returned alongside it.
// Usage: if errors.Is(err, ErrInvalidConfig) { /* fix parameters */ }.
var ErrInvalidConfig = errors.New("convchain: invalid configuration")

// Refined sentinels. Each wraps ErrInvalidConfig, so errors.Is matches both.
var (
	// ErrNilExemplar indicates a nil exemplar grid.
	ErrNilExemplar = fmt.Errorf("%w: exemplar is nil", ErrInvalidConfig)

	// ErrReceptorSize indicates receptorSize outside [1, min(MaxReceptorSize,
	// outputSize, exemplar width, exemplar height)].
	ErrReceptorSize = fmt.Errorf("%w: receptor size out of range", ErrInvalidConfig)

	// ErrOutputSize indicates a non-positive output size.
	ErrOutputSize = fmt.Errorf("%w: output size must be positive", ErrInvalidConfig)

	// ErrTemperature indicates a temperature that is not a finite value > 0.
	ErrTemperature = fmt.Errorf("%w: temperature must be finite and > 0", ErrInvalidConfig)
)
