package config

import "fmt"

// KindInvalidKey classifies InvalidKeyError.
const KindInvalidKey = "invalid_key"

// InvalidKeyError is returned for empty or oversized configuration keys.
type InvalidKeyError struct {
	Key string
}

// NewInvalidKeyError reports an empty or oversized key.
func NewInvalidKeyError(key string) error {
	return InvalidKeyError{Key: key}
}

func (errorValue InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid config key %q: keys must be 1-%d characters", errorValue.Key, MaxKeyLength)
}

func (InvalidKeyError) Kind() string {
	return KindInvalidKey
}
