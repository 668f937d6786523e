package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	stdin  io.Reader
	stdout io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithInput overrides the reader used for interactive prompts.
func WithInput(r io.Reader) Option {
	return func(a *application) {
		a.stdin = r
	}
}

// WithOutput overrides the writer used for interactive prompts.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.stdout = w
	}
}
