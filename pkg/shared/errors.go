package shared

import (
	"errors"
	"fmt"
)

const (
	KindInvalidEntityID = "invalid_entity_id"
	KindInternal        = "internal"
)

// Kinded is implemented by every domain error in the SDK.
type Kinded interface {
	error
	Kind() string
}

// ErrorKind returns the kind of the first Kinded error in the chain.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return KindInternal
}

// InvalidEntityIDError is returned for a malformed or zero entity ID.
type InvalidEntityIDError struct {
	Field string
	Value string
}

// NewInvalidEntityIDError reports that field holds an invalid value.
func NewInvalidEntityIDError(field string, value string) error {
	return InvalidEntityIDError{Field: field, Value: value}
}

func (errorValue InvalidEntityIDError) Error() string {
	if errorValue.Field == "" {
		return fmt.Sprintf("invalid entity ID: %q", errorValue.Value)
	}
	return fmt.Sprintf("invalid %s entity ID: %q", errorValue.Field, errorValue.Value)
}

func (InvalidEntityIDError) Kind() string {
	return KindInvalidEntityID
}
