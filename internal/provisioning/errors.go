package provisioning

import (
	"errors"
	"fmt"
	"time"
)

// ConfigError reports invalid or incomplete user configuration. Nothing has
// been mutated remotely when one is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

func configErrorf(format string, v ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, v...)}
}

// NotFoundError reports a selector that matched nothing in the provider
// catalog or account.
type NotFoundError struct {
	Kind     string
	Selector string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Kind, e.Selector)
}

// TimeoutError reports that a droplet never became reachable within the
// configured wait window.
type TimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("droplet %s showed no public address within %v", e.Name, e.Timeout)
}

// IsConfigError reports whether err is a configuration problem.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a failed selector lookup.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTimeout reports whether err is an expired wait window.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}
