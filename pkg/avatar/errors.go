package avatar

import "fmt"

// KindInvalidConfig classifies InvalidConfigError.
const KindInvalidConfig = "invalid_config"

// InvalidConfigError is returned when a Config handle does not resolve.
type InvalidConfigError struct {
	Handle string
	Reason string
}

// NewInvalidConfigError reports why handle cannot be bound as a Config.
func NewInvalidConfigError(handle string, reason string) error {
	return InvalidConfigError{Handle: handle, Reason: reason}
}

func (errorValue InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config %q: %s", errorValue.Handle, errorValue.Reason)
}

func (InvalidConfigError) Kind() string {
	return KindInvalidConfig
}
