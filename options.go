package fftn

import (
	"fmt"
	"math"
	"strings"

	"github.com/astrojhgu/fftn/dft"
)

// Norm selects how transforms are scaled. Scaling is applied per lane, so a
// transform over several axes is scaled by the product of the per-axis
// factors.
type Norm int

const (
	// NormBackward leaves forward transforms unscaled and divides inverse
	// lanes by their length.
	NormBackward Norm = iota

	// NormOrtho divides lanes in both directions by the square root of
	// their length, making the transform unitary.
	NormOrtho

	// NormForward divides forward lanes by their length and leaves inverse
	// transforms unscaled.
	NormForward

	// NormNone disables scaling in both directions.
	NormNone
)

var normNames = [...]string{
	NormBackward: "backward",
	NormOrtho:    "ortho",
	NormForward:  "forward",
	NormNone:     "none",
}

// String returns the name accepted by ParseNorm.
func (n Norm) String() string {
	if n >= 0 && int(n) < len(normNames) {
		return normNames[n]
	}

	return fmt.Sprintf("Norm(%d)", int(n))
}

// ParseNorm resolves a normalization name (case-insensitive).
func ParseNorm(name string) (Norm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for n, s := range normNames {
		if s == name {
			return Norm(n), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownNorm, name)
}

// factor returns the scale applied to a lane of the given length.
func (n Norm) factor(length int, inverse bool) float64 {
	if length <= 1 {
		return 1
	}

	switch n {
	case NormBackward:
		if inverse {
			return 1 / float64(length)
		}
	case NormForward:
		if !inverse {
			return 1 / float64(length)
		}
	case NormOrtho:
		return 1 / math.Sqrt(float64(length))
	}

	return 1
}

// Config defines the transform settings of an Engine.
type Config struct {
	Backend dft.Backend
	Norm    Norm
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns automatic backend selection and backward
// normalization.
func DefaultConfig() Config {
	return Config{
		Backend: dft.BackendAuto,
		Norm:    NormBackward,
	}
}

// WithBackend selects the 1D transform implementation.
func WithBackend(b dft.Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = b
	}
}

// WithNorm selects the normalization mode. Unknown modes are ignored.
func WithNorm(n Norm) Option {
	return func(cfg *Config) {
		if n >= NormBackward && n <= NormNone {
			cfg.Norm = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
