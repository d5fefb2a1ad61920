package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while waiting on an external command. A disabled
// spinner (show_progress off) is silent.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string, enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	_ = s.Color("cyan") //nolint:errcheck

	return &Spinner{s: s, enabled: true}
}

// Start starts the spinner.
func (sp *Spinner) Start() {
	if sp.enabled {
		sp.s.Start()
	}
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	if sp.enabled {
		sp.s.Stop()
	}
}

// WithSpinner runs fn behind a spinner when enabled.
func WithSpinner(message string, enabled bool, fn func() error) error {
	sp := NewSpinner(message, enabled)
	sp.Start()
	defer sp.Stop()
	return fn()
}
