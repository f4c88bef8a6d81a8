package tabula

import "github.com/rs/zerolog"

// WorldOption is an option that can be passed to NewWorld.
type WorldOption func(*World)

// WithLogger replaces the logger built from the environment configuration.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger = logger
	}
}
